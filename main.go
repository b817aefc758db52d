package main

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/logging"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("budget-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err = logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debug(spew.Sdump(envConfig))
	}

	ctx := context.Background()
	fileStorage := storage.NewStorage(envConfig)
	svc := service.NewService(fileStorage, envConfig, logger)

	if _, err = svc.Category.EnsureInitialized(ctx); err != nil {
		logger.WithError(err).Fatal("Category.EnsureInitialized")
		return
	}

	transactions, err := svc.Transaction.ListTransactions(ctx, nil)
	if err != nil {
		logger.WithError(err).Fatal("Transaction.ListTransactions")
		return
	}
	categories, err := svc.Category.AllCategoryNames(ctx)
	if err != nil {
		logger.WithError(err).Fatal("Category.AllCategoryNames")
		return
	}

	logger.WithFields(logrus.Fields{
		"transactionsPath": envConfig.TransactionsPath,
		"categoriesPath":   envConfig.CategoriesPath,
		"transactions":     humanize.Comma(int64(len(transactions))),
		"categories":       len(categories),
	}).Info("budget-ledger ready")
}
