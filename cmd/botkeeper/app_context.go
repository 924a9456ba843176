package main

import (
	"path/filepath"

	"github.com/botkeeper/botkeeper/internal/config"
	"github.com/botkeeper/botkeeper/internal/i18n"
	"github.com/botkeeper/botkeeper/internal/logger"
)

// appContext bundles the collaborators every command needs: the persisted
// settings snapshot, the translator and the logger.
type appContext struct {
	cfg        *config.Config
	configPath string
	tr         *i18n.Translator
	log        *logger.Logger
}

func newAppContext(flags *rootFlags) (*appContext, error) {
	path := flags.configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		FilePath:      filepath.Join(filepath.Dir(path), "botkeeper.log"),
	})
	if err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, configPath: path, tr: tr, log: log}, nil
}
