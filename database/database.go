package database

import (
	"context"
	"time"

	"ClinicAdmin/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the connection pool for the configured driver and checks it.
func InitDB(ctx context.Context, cfg *config.AppConfig, log *zap.Logger) (*gorm.DB, error) {
	// Configure logging level based on environment
	logMode := logger.Silent
	if cfg.IsDevelopment() {
		logMode = logger.Info
	}

	dialector, err := openDialector(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: false,
		PrepareStmt:                              true,
		Logger:                                   logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if err := configureConnectionPool(db, cfg); err != nil {
		return nil, err
	}

	if err := Ping(ctx, db); err != nil {
		return nil, err
	}

	log.Info("database initialized", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverMySQL:
		dc, err := mysqldriver.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrap(err, "invalid MySQL DSN")
		}
		// timestamps are scanned into time.Time
		dc.ParseTime = true
		return mysql.Open(dc.FormatDSN()), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
}

// configureConnectionPool sets up the connection pool settings for the database.
func configureConnectionPool(db *gorm.DB, cfg *config.AppConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	return nil
}

// Ping verifies that the database connection is functional.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// Close releases the pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	return sqlDB.Close()
}
