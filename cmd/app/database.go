package main

import (
	"marketplace/cmd"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	return gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
