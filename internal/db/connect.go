// Package db opens and migrates the snapshot database.
package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Frenkieli/car-dispatch/internal/config"
)

// DSN builds a MySQL DSN from storage settings.
func DSN(sc config.StorageConfig) string {
	cred := sc.User
	if sc.Password != "" {
		cred += ":" + sc.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4", cred, sc.Host, sc.Port, sc.Database)
}

// Open connects to the configured snapshot database. The sqlite driver is the
// default; mysql is used when storage.driver selects it.
func Open(sc config.StorageConfig) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch sc.Driver {
	case "mysql":
		db, err := gorm.Open(mysql.Open(DSN(sc)), gcfg)
		if err != nil {
			return nil, fmt.Errorf("db: connect to %s:%d/%s: %w", sc.Host, sc.Port, sc.Database, err)
		}
		return db, nil
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(sc.Path), gcfg)
		if err != nil {
			return nil, fmt.Errorf("db: open %s: %w", sc.Path, err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("db: unsupported driver %q", sc.Driver)
	}
}
