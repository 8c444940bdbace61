package source

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"influencer-trust/database"
	"influencer-trust/models"
	"influencer-trust/slug"
)

// CatalogSource reads a seeded sqlite catalog. It never writes.
type CatalogSource struct {
	db *gorm.DB
}

func NewCatalogSource(db *gorm.DB) *CatalogSource {
	return &CatalogSource{db: db}
}

type catalogStats struct {
	Total         int64
	VerifiedTotal int64
	AvgTrust      float64
}

func (s *CatalogSource) Leaderboard(ctx context.Context) (*models.Leaderboard, error) {
	db := s.db.WithContext(ctx)

	var records []database.InfluencerRecord
	if err := db.Order("rank ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("catalog leaderboard: %w", err)
	}

	var stats catalogStats
	if err := db.Model(&database.InfluencerRecord{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	if err := db.Model(&database.InfluencerRecord{}).Select("COALESCE(SUM(verified_claims), 0)").Scan(&stats.VerifiedTotal).Error; err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	if err := db.Model(&database.InfluencerRecord{}).Select("COALESCE(AVG(trust_score), 0)").Scan(&stats.AvgTrust).Error; err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}

	lb := &models.Leaderboard{
		Stats: []models.StatCard{
			{ID: models.StatActiveInfluencers, Value: strconv.FormatInt(stats.Total, 10), Description: "Active Influencers"},
			{ID: models.StatVerifiedClaims, Value: strconv.FormatInt(stats.VerifiedTotal, 10), Description: "Verified Claims"},
			{ID: models.StatAverageTrust, Value: strconv.FormatFloat(stats.AvgTrust, 'f', 1, 64), Description: "Average Trust Score"},
		},
		Influencers: make([]models.LeaderboardEntry, 0, len(records)),
	}
	for i := range records {
		lb.Influencers = append(lb.Influencers, records[i].Entry())
	}
	return lb, nil
}

func (s *CatalogSource) Influencer(ctx context.Context, name string) (*models.InfluencerProfile, error) {
	var record database.InfluencerRecord
	err := s.db.WithContext(ctx).
		Preload("Claims", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("slug = ?", slug.FromName(name)).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalog influencer %q: %w", name, err)
	}
	return record.Profile(), nil
}
