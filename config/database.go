package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// Open connects to postgres with the naming strategy shared by the application and the tests.
func Open(dsn string, schemaName string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   schemaName + ".",
			SingularTable: false,
		},
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, schemaName))
	if x.Error != nil {
		return nil, x.Error
	}
	return db, nil
}

// InitDB opens the database and migrates the given models.
func InitDB(cfg *Config, models ...interface{}) (*gorm.DB, error) {
	db, err := Open(cfg.DSN(), cfg.DatabaseSchema)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models...); err != nil {
		return nil, err
	}
	return db, nil
}
