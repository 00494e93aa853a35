package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gorm.io/gorm"

	"github.com/Frenkieli/car-dispatch/internal/board"
	"github.com/Frenkieli/car-dispatch/internal/config"
	"github.com/Frenkieli/car-dispatch/internal/db"
)

const defaultConfigPath = "board.yaml"

// loadConfig reads the config file. A missing file at the default path is
// not an error: the board runs fine on a local sqlite file with defaults.
func loadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if configPath == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openFromConfig loads the config, opens the snapshot database, and migrates
// it. Migration is idempotent, so every command can call this and a fresh
// sqlite file just works.
func openFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := db.Open(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// openStore opens the snapshot database and restores the persisted board.
func openStore(configPath string) (*config.Config, *board.Store, error) {
	cfg, gormDB, err := openFromConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	store := board.NewStore(board.StoreOpts{DB: gormDB, Slot: cfg.Storage.Slot})
	store.Restore()
	return cfg, store, nil
}

// openUpload opens a local spreadsheet file for import.
func openUpload(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
