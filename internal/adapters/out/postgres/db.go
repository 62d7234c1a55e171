package postgres

import (
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Driver   string
}

func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Open connects through pgx unless Driver is DriverPq, in which case the
// lib/pq database/sql driver is used.
func Open(cfg ConnectionConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", DriverPgx:
		dialector = gorm_postgres.Open(cfg.DSN())
	case DriverPq:
		dialector = gorm_postgres.New(gorm_postgres.Config{DriverName: DriverPq, DSN: cfg.DSN()})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}

// NewGormConfig enables error translation so unique violations arrive as
// gorm.ErrDuplicatedKey.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormLogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
