// Package database holds the offline influencer catalog: a sqlite file that
// stands in for the model when no API key is available.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the sqlite catalog at path and migrates its tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog: %w", err)
	}

	if err := db.AutoMigrate(&InfluencerRecord{}, &ClaimRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	log.Println("Catalog connected successfully")
	return db, nil
}
