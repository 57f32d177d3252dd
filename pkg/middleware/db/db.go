package db

import (
	"context"
	"fmt"
	"time"

	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

type LogConf struct {
	Level string
}

type Config struct {
	// Driver is "postgres" or "sqlite". For sqlite DBName is the DSN.
	Driver  string
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
	// Trace installs the opentelemetry gorm plugin.
	Trace bool
}

type Datastore struct {
	db *gorm.DB
}

var datastore *Datastore

func NewDatastore(d *gorm.DB) *Datastore {
	return &Datastore{db: d}
}

func InitDB(ctx context.Context, conf *Config) {
	ds, err := Open(conf)
	if err != nil {
		logger.Fatalf(ctx, "init database fail err: %+v", err)
	}
	datastore = ds
}

func Open(conf *Config) (*Datastore, error) {
	var dial gorm.Dialector
	switch conf.Driver {
	case "", "postgres":
		dial = postgres.Open(fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			conf.Host, conf.Port, conf.User, conf.PW, conf.DBName))
	case "sqlite":
		dial = sqlite.Open(conf.DBName)
	default:
		return nil, fmt.Errorf("unsupported or unrecognized db driver: %s", conf.Driver)
	}

	d, err := gorm.Open(dial, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel(conf.LogConf.Level)),
	})
	if err != nil {
		return nil, err
	}

	if conf.Trace {
		if err := d.Use(tracing.NewPlugin()); err != nil {
			return nil, err
		}
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(time.Hour)

	return NewDatastore(d), nil
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn", "info":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

func DB() *Datastore {
	return datastore
}

func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

func (d *Datastore) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DBWithContext(ctx).Transaction(fn)
}

func (d *Datastore) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func CloseDB(ctx context.Context) {
	if datastore == nil {
		return
	}
	if err := datastore.Close(); err != nil {
		logger.Errorf(ctx, "close database err: %+v", err)
	}
}
