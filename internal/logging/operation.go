package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// WithLogData attaches logData to ctx so that lower layers can add fields.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the LogData carried by ctx. A context without one yields
// a LogData bound to the standard logger, so callers never check for nil.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataKey{}).(*LogData); ok {
		return logData
	}
	return NewLogData(logrus.StandardLogger())
}

// Operation runs fn with a fresh LogData and logs its outcome as
// Service.<name>.Start, Service.<name>.Complete or Service.<name>.Error.
func Operation(
	ctx context.Context,
	operationName string,
	log *logrus.Logger,
	fn func(context.Context, *LogData) error,
) error {
	logData := NewLogData(log)
	log.Debugf("Service.%v.Start", operationName)

	endTimer := logData.AddTiming("duration")
	err := fn(WithLogData(ctx, logData), logData)
	endTimer()

	if err != nil {
		logData.Log().WithError(err).Errorf("Service.%v.Error", operationName)
		return err
	}

	logData.Log().Infof("Service.%v.Complete", operationName)
	return nil
}
