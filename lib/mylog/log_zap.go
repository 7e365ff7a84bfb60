package mylog

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newZapLogger
	}
}

type zapLogger struct {
	logger *zap.SugaredLogger
}

func newZapLogger(componentName string) Logger {
	l, _ := zap.NewDevelopment()

	return zapLogger{
		logger: l.Sugar().Named(componentName),
	}
}

func (l zapLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if traceLabel != "" {
		msg = traceLabel + " - " + msg
	}

	switch severity {
	case SeverityDebug:
		l.logger.Debug(msg)
	case SeverityWarn:
		l.logger.Warn(msg)
	case SeverityError:
		l.logger.Error(msg)
	default:
		l.logger.Info(msg)
	}
}
