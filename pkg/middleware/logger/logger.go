package logger

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ServiceEnv struct {
	Platform string
	Service  string
	Env      string
}

type LogConfig struct {
	Path       string
	LogLevel   string
	ServiceEnv ServiceEnv
}

var (
	logger = otelzap.New(zap.NewNop())
	sugar  = logger.Sugar()
)

func Init(conf *LogConfig) {
	level, err := zapcore.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encConf := zap.NewProductionEncoderConfig()
	encConf.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encConf)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}
	if conf.Path != "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Path,
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
			Compress:   true,
		}), level))
	}

	z := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).With(
		zap.String("platform", conf.ServiceEnv.Platform),
		zap.String("service", conf.ServiceEnv.Service),
		zap.String("env", conf.ServiceEnv.Env),
	)
	logger = otelzap.New(z, otelzap.WithMinLevel(level))
	sugar = logger.Sugar()
}

func Close() {
	_ = logger.Sync()
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func Debugf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctxOrBackground(ctx)).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctxOrBackground(ctx)).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctxOrBackground(ctx)).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctxOrBackground(ctx)).Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	sugar.Ctx(ctxOrBackground(ctx)).Fatalf(format, args...)
}

// LogWithWriter is the access log middleware.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		logger.Ctx(ctx.Request.Context()).Info("access",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", ctx.ClientIP()),
		)
	}
}
