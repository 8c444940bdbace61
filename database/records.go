package database

import (
	"influencer-trust/models"
	"influencer-trust/slug"
)

type InfluencerRecord struct {
	ID             uint   `gorm:"primaryKey"`
	Slug           string `gorm:"uniqueIndex"`
	Rank           int    `gorm:"index"`
	Name           string
	Image          string
	Category       string
	TrustScore     int
	TrendLabel     string
	Followers      string
	VerifiedClaims int

	Bio          string
	Categories   []string          `gorm:"serializer:json"`
	Products     []string          `gorm:"serializer:json"`
	Stats        []models.StatCard `gorm:"serializer:json"`
	Monetization string
	Claims       []ClaimRecord `gorm:"foreignKey:InfluencerID;constraint:OnDelete:CASCADE"`
}

type ClaimRecord struct {
	ID                 uint `gorm:"primaryKey"`
	InfluencerID       uint `gorm:"index"`
	Position           int
	VerificationStatus string
	ClaimedAt          string
	Text               string
	SourceURL          string
	TrustScore         int
	Analysis           string
	ResearchURL        string
	Category           string
}

func (r *InfluencerRecord) Entry() models.LeaderboardEntry {
	return models.LeaderboardEntry{
		Rank:           r.Rank,
		Name:           r.Name,
		Image:          r.Image,
		Category:       r.Category,
		TrustScore:     r.TrustScore,
		Trend:          models.ParseTrend(r.TrendLabel),
		TrendLabel:     r.TrendLabel,
		Followers:      r.Followers,
		VerifiedClaims: r.VerifiedClaims,
	}
}

func (r *InfluencerRecord) Profile() *models.InfluencerProfile {
	p := &models.InfluencerProfile{
		Name:         r.Name,
		Image:        r.Image,
		Bio:          r.Bio,
		Categories:   append([]string{}, r.Categories...),
		Products:     append([]string{}, r.Products...),
		Stats:        append([]models.StatCard{}, r.Stats...),
		Monetization: r.Monetization,
		Claims:       make([]models.Claim, 0, len(r.Claims)),
	}
	for _, c := range r.Claims {
		p.Claims = append(p.Claims, models.Claim{
			VerificationStatus: c.VerificationStatus,
			CreatedAt:          c.ClaimedAt,
			Text:               c.Text,
			SourceURL:          c.SourceURL,
			TrustScore:         c.TrustScore,
			Analysis:           c.Analysis,
			ResearchURL:        c.ResearchURL,
			Category:           c.Category,
		})
	}
	return p
}

// NewRecord combines a leaderboard row and its profile into one record.
func NewRecord(entry models.LeaderboardEntry, profile models.InfluencerProfile) InfluencerRecord {
	r := InfluencerRecord{
		Slug:           slug.FromName(entry.Name),
		Rank:           entry.Rank,
		Name:           entry.Name,
		Image:          entry.Image,
		Category:       entry.Category,
		TrustScore:     entry.TrustScore,
		TrendLabel:     entry.TrendLabel,
		Followers:      entry.Followers,
		VerifiedClaims: entry.VerifiedClaims,
		Bio:            profile.Bio,
		Categories:     profile.Categories,
		Products:       profile.Products,
		Stats:          profile.Stats,
		Monetization:   profile.Monetization,
	}
	for i, c := range profile.Claims {
		r.Claims = append(r.Claims, ClaimRecord{
			Position:           i,
			VerificationStatus: c.VerificationStatus,
			ClaimedAt:          c.CreatedAt,
			Text:               c.Text,
			SourceURL:          c.SourceURL,
			TrustScore:         c.TrustScore,
			Analysis:           c.Analysis,
			ResearchURL:        c.ResearchURL,
			Category:           c.Category,
		})
	}
	return r
}
