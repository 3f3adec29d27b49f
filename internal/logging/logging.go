// Package logging builds the CLI logger. Logs go to stderr so stdout only
// carries converted schemas.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"schema-caster/internal/diagnostic"
)

// New creates a console logger writing to stderr at the named level.
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to construct logger: %w", err)
	}

	return logger, nil
}

// LogDiagnostics writes one entry per diagnostic at the matching level.
func LogDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{zap.String("code", d.Code)}
		if d.FieldPath != "" {
			fields = append(fields, zap.String("field_path", d.FieldPath))
		}

		if d.TypePair != "" {
			fields = append(fields, zap.String("types", d.TypePair))
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			logger.Warn(d.Message, fields...)
		case diagnostic.DiagnosticInfo:
			logger.Info(d.Message, fields...)
		}
	}
}
