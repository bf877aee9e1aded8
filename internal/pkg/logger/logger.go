// Package logger provides a global, Sugared Zap logger with context-scoped
// fields. It emits JSON logs to stdout (and optionally to a rotating file),
// and automatically annotates entries with the OpenTelemetry trace and span
// identifiers found in the context.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ctxKeyType is the private type used to store a derived logger in a context.
type ctxKeyType struct{}

var (
	// ctxKey is the context key under which Derive stores its logger.
	ctxKey = ctxKeyType{}

	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// nopLogger is used when logging happens before Init, e.g. in library tests.
	nopLogger = zap.NewNop().Sugar()
)

// config holds optional sinks configured through Option values.
type config struct {
	file       string // rotating log file path; empty disables the file sink
	maxSizeMB  int    // size threshold before rotation
	maxBackups int    // rotated files to keep
}

// Option configures the logger before initialization.
type Option func(*config)

// WithFile adds a JSON sink that writes to the given path, rotating the file
// once it reaches maxSizeMB and keeping at most maxBackups old files.
func WithFile(path string, maxSizeMB, maxBackups int) Option {
	return func(c *config) {
		c.file = path
		c.maxSizeMB = maxSizeMB
		c.maxBackups = maxBackups
	}
}

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Calling Init multiple times has no
// effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string, opts ...Option) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	initBaseLoggerOnce.Do(func() {
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

		cores := []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl),
		}

		if cfg.file != "" {
			rotator := &lumberjack.Logger{
				Filename:   cfg.file,
				MaxSize:    cfg.maxSizeMB,
				MaxBackups: cfg.maxBackups,
			}
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), lvl))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	if baseLogger == nil {
		return nil
	}

	return baseLogger.Sync()
}

// root returns the initialized logger, or a no-op logger before Init.
func root() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}

	return baseLogger
}

// fromCtx returns the logger stored in ctx by Derive, or the root logger.
func fromCtx(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger); ok {
		return l
	}

	return root()
}

// Derive returns a copy of ctx carrying a logger that always includes the
// given key/value pairs. Subsequent log calls with the returned context
// inherit these fields.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, fromCtx(ctx).With(keysAndValues...))
}

// log writes msg at the given level using the logger stored in ctx. The
// trace identifiers of the span active at call time are attached here only,
// so a context derived inside a span never repeats them.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	l := fromCtx(ctx)

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		l = l.With("trace_id", spanCtx.TraceID().String())
	}
	if spanCtx.HasSpanID() {
		l = l.With("span_id", spanCtx.SpanID().String())
	}

	l.Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
