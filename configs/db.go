package configs

import (
	"github.com/smithbhavsar/ChatpataAI/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Only identities and session records live locally; restaurant, menu,
	// order and bill data all come from the upstream API.
	db.AutoMigrate(
		&entity.Customer{},
		&entity.Session{},
	)
}
