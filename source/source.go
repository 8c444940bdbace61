// Package source fetches leaderboard and profile records and reshapes them
// into view models.
package source

import (
	"context"
	"errors"

	"influencer-trust/models"
)

var ErrNotFound = errors.New("source: influencer not found")

// Source is the data access boundary used by the pages.
type Source interface {
	Leaderboard(ctx context.Context) (*models.Leaderboard, error)
	Influencer(ctx context.Context, name string) (*models.InfluencerProfile, error)
}
