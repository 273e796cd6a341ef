package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/madr/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file at dbPath in WAL mode with foreign keys
// enforced and migrates the catalog schema. logLevel is one of silent, error, warn, info.
func NewDatabase(dbPath, logLevel string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(withConnectionParams(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(parseLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Account{},
		&entities.Author{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is still usable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// connectionParams are appended to the DSN unless the caller already set them
// (under either spelling the sqlite3 driver accepts). Every pooled connection
// enforces REFERENCES clauses, waits on a busy database instead of failing, and
// begins transactions with the write lock held so check-then-insert steps
// cannot interleave.
var connectionParams = []struct {
	keys  []string
	value string
}{
	{[]string{"_foreign_keys", "_fk"}, "on"},
	{[]string{"_journal", "_journal_mode"}, "WAL"},
	{[]string{"_busy_timeout", "_timeout"}, "5000"},
	{[]string{"_txlock"}, "immediate"},
}

func withConnectionParams(dbPath string) string {
	var params []string
	for _, p := range connectionParams {
		set := false
		for _, key := range p.keys {
			if strings.Contains(dbPath, key+"=") {
				set = true
				break
			}
		}
		if !set {
			params = append(params, p.keys[0]+"="+p.value)
		}
	}
	if len(params) == 0 {
		return dbPath
	}

	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + strings.Join(params, "&")
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
