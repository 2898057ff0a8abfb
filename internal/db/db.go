package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"acadrec/internal/config"
	"acadrec/internal/models"
)

// Open connects to Postgres, bounds the connection pool and runs
// migrations. The handle is returned rather than stored in a package
// global so tests and the seeder can hold their own.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the schema. Parents run before children so
// foreign keys resolve.
func Migrate(gdb *gorm.DB) error {
	for _, m := range []interface{}{
		&models.User{},
		&models.Institute{},
		&models.Student{},
		&models.Course{},
		&models.Result{},
	} {
		if err := gdb.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
