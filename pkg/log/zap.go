package log

import (
	stdlog "log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	core   zapcore.Core
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core = zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		parseLevel(os.Getenv("LOG_LEVEL")),
	)

	SetApplicationName(os.Getenv("APPLICATION_NAME"))
}

// SetApplicationName rebuilds the logger so every entry carries name as logName.
func SetApplicationName(name string) {
	logger = zap.New(core,
		zap.Fields(zap.String("logName", name)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// parseLevel maps LOG_LEVEL values to zap levels, falling back to info.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// StdLogger returns a standard library logger that writes through zap at WarnLevel.
// It is handed to libraries that only accept a *log.Logger or a Printf writer.
func StdLogger() *stdlog.Logger {
	std, err := zap.NewStdLogAt(logger, zap.WarnLevel)
	if err != nil {
		return zap.NewStdLog(logger)
	}
	return std
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel with strongly typed fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Warn logs a message at WarnLevel with strongly typed fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

func Warnf(message string, args ...interface{}) {
	Logger.Warnf(message, args...)
}

// Error logs a message at ErrorLevel with strongly typed fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Fatal logs a message at FatalLevel and then calls os.Exit(1).
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
