// Package cli holds start-up code shared by the webdoc and opdoc commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rogersnm/shotdoc/internal/annotate"
	"github.com/rogersnm/shotdoc/internal/config"
	"github.com/rogersnm/shotdoc/internal/logging"
	"go.uber.org/zap"
)

// Env is what every command needs after start-up.
type Env struct {
	BaseDir string
	Config  *config.Config
	Logger  *zap.Logger
}

// Setup resolves the base directory, loads its config and builds the logger.
// A non-empty logLevel overrides the configured level.
func Setup(baseDir, logLevel string, logOut io.Writer) (*Env, error) {
	dir, err := ResolveBaseDir(baseDir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := logging.New(cfg.Log.Level, logOut)
	if err != nil {
		return nil, err
	}
	logger.Debug("environment ready", zap.String("base_dir", dir))
	return &Env{BaseDir: dir, Config: cfg, Logger: logger}, nil
}

// ResolveBaseDir returns dir as an absolute path, or the working directory
// when dir is empty.
func ResolveBaseDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

// AnnotateOptions turns the configured highlight colour into annotator
// options.
func (e *Env) AnnotateOptions() ([]annotate.Option, error) {
	c, err := annotate.ParseColor(e.Config.Annotate.Color)
	if err != nil {
		return nil, fmt.Errorf("annotate.color: %w", err)
	}
	return []annotate.Option{annotate.WithColor(c)}, nil
}
