package database

import (
	"encoding/json"
	"fmt"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"influencer-trust/models"
)

// Fixture is the JSON file format accepted by Seed.
type Fixture struct {
	Influencers []FixtureInfluencer `json:"influencers"`
}

type FixtureInfluencer struct {
	Entry   models.LeaderboardEntry  `json:"entry"`
	Profile models.InfluencerProfile `json:"profile"`
}

func LoadFixture(path string) (*Fixture, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Seed replaces the catalog contents with the fixture in one transaction.
func Seed(db *gorm.DB, f *Fixture) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ClaimRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&InfluencerRecord{}).Error; err != nil {
			return err
		}
		for _, fi := range f.Influencers {
			if fi.Profile.Name == "" {
				fi.Profile.Name = fi.Entry.Name
			}
			r := NewRecord(fi.Entry, fi.Profile)
			if err := tx.Omit(clause.Associations).Create(&r).Error; err != nil {
				return fmt.Errorf("seed %q: %w", fi.Entry.Name, err)
			}
			for i := range r.Claims {
				r.Claims[i].InfluencerID = r.ID
			}
			if len(r.Claims) > 0 {
				if err := tx.Create(&r.Claims).Error; err != nil {
					return fmt.Errorf("seed claims for %q: %w", fi.Entry.Name, err)
				}
			}
		}
		return nil
	})
}
