package logger

import (
	"context"

	"github.com/paskalex1/sochirent-crm/internal/pkg/constants"
	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger. env == "development" switches to the
// human-readable console encoder.
func Init(env string) {
	if env == "development" {
		global = zap.Must(zap.NewDevelopment()).Sugar()
		return
	}
	global = zap.Must(zap.NewProduction()).Sugar()
}

func Sync() {
	_ = global.Sync()
}

// withCtx attaches the request id, if the context carries one.
func withCtx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return global
	}
	if reqID, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && reqID != "" {
		return global.With("request_id", reqID)
	}
	return global
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, args ...interface{}) {
	withCtx(ctx).Info(args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Infof(format, args...)
}

func Error(ctx context.Context, args ...interface{}) {
	withCtx(ctx).Error(args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	withCtx(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, args ...interface{}) {
	withCtx(ctx).Fatal(args...)
}
