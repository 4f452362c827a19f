package database

import (
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// Only runs against a database with no recorded migrations. AutoMigrate
		// creates the table when it is missing and leaves it alone otherwise.
		log.Println("clean database detected, running full schema initialization")

		return txn.AutoMigrate(&Message{})
	})

	return migrator
}

// EnsureSchema is safe to call on every startup.
func EnsureSchema(db *gorm.DB) error {
	return GetMigrator(db).Migrate()
}
