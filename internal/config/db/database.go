package db

import (
	"fmt"
	"log"

	"github.com/yojanasetu/portal-go/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// EnsureEnums creates the postgres enum types the models depend on.
// AutoMigrate cannot create them itself.
func EnsureEnums(g *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('Citizen', 'Coordinator', 'Admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE scheme_type AS ENUM ('Government', 'Private'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE application_status AS ENUM ('Pending', 'Approved', 'Rejected', 'More Info Required'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := g.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	EnsureEnums(DB)

	log.Println("Database connected")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
