package main

import (
	"context"

	"github.com/sirupsen/logrus"

	ledger_config "github.com/carson-networks/budget-ledger/internal/config"
	"github.com/carson-networks/budget-ledger/internal/storage"
)

func main() {
	env, err := ledger_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	ctx := context.Background()
	fileStorage := storage.NewStorage(env)

	result, err := fileStorage.Initialize(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Initialize")
		return
	}

	reader := fileStorage.Read()
	transactionCount, err := reader.Transactions.Count(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Transactions.Count")
		return
	}
	categoryNames, err := reader.Categories.AllNames(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Categories.AllNames")
		return
	}

	logrus.WithFields(logrus.Fields{
		"transactionsPath":    env.TransactionsPath,
		"transactionsCreated": result.TransactionsCreated,
		"transactionCount":    transactionCount,
		"categoriesPath":      env.CategoriesPath,
		"categoriesCreated":   result.CategoriesCreated,
		"categoryCount":       len(categoryNames),
	}).Info("Ledger status")
}
