// Package logging builds the zap logger. The terminal UI owns stdout, so
// logs only ever go to a file.
package logging

import (
	"os"
	"path/filepath"

	"sysdash/internal/config"
	sderrors "sysdash/internal/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger for cfg. An empty cfg.File yields a no-op logger.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, sderrors.WrapWithCode(err, sderrors.ErrConfig,
			"Unknown log level "+cfg.Level,
			"Use one of debug, info, warn, error")
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, sderrors.WrapWithCode(err, sderrors.ErrConfig,
					"Cannot create log directory "+dir, "Check directory permissions")
			}
		}
	}

	var zc zap.Config
	if cfg.Production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.File}
	zc.ErrorOutputPaths = []string{cfg.File}

	logger, err := zc.Build()
	if err != nil {
		return nil, sderrors.WrapWithCode(err, sderrors.ErrConfig,
			"Cannot open log file "+cfg.File, "Check the path is writable")
	}
	return logger.Named("sysdash"), nil
}
