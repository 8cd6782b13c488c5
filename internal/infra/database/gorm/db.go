package gorm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/domain/entity"
	"todo-api/pkg/log"
	"todo-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config describes how to reach the ToDo store.
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	BusyTimeout  time.Duration
	LogLevel     string
}

// ConfigFromProperties reads the app.db.* properties.
func ConfigFromProperties() Config {
	return Config{
		Driver:       resource.GetString("app.db.driver"),
		DSN:          resource.GetString("app.db.dsn"),
		MaxOpenConns: resource.GetInt("app.db.max-open-conns"),
		BusyTimeout:  resource.GetDuration("app.db.busy-timeout"),
		LogLevel:     resource.GetString("app.db.log-level"),
	}
}

// Open connects to the configured store, checks it is reachable and brings the
// todo_items table up to date.
func Open(config Config) (*gorm.DB, error) {
	dialector, err := newDialector(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", dialector.Name(), err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the todo_items table when it does not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.ToDoItem{}); err != nil {
		return fmt.Errorf("migrate %s: %w", entity.ToDoItem{}.TableName(), err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newDialector(config Config) (gorm.Dialector, error) {
	if config.DSN == "" {
		return nil, fmt.Errorf("empty database connection string")
	}

	switch strings.ToLower(config.Driver) {
	case "", DriverSQLite:
		return sqlite.Open(withBusyTimeout(config.DSN, config.BusyTimeout)), nil
	case DriverPostgres:
		return postgres.Open(config.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}

// withBusyTimeout makes SQLite wait for a locked database instead of failing right away.
func withBusyTimeout(dsn string, timeout time.Duration) string {
	if timeout <= 0 || strings.Contains(dsn, "_timeout") {
		return dsn
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "_busy_timeout=" + strconv.FormatInt(timeout.Milliseconds(), 10)
}

func newLogger(level string) logger.Interface {
	return logger.New(log.StdLogger(), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseLogLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
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
