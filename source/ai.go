package source

import (
	"context"
	"fmt"
	"log"

	"influencer-trust/ai"
	"influencer-trust/models"
)

// AISource asks a generator for every record. Nothing is cached.
type AISource struct {
	gen ai.Generator
}

func NewAISource(gen ai.Generator) *AISource {
	return &AISource{gen: gen}
}

const leaderboardPrompt = `Get a list of Health Influencers for these categories (Nutrition, Fitness, Medicine, Mental Health). Your response should be real data (real-time).`

func influencerPrompt(name string) string {
	return fmt.Sprintf("Get the details of the health influencer %s. Do not duplicate claims.", name)
}

func (s *AISource) Leaderboard(ctx context.Context) (*models.Leaderboard, error) {
	raw, err := s.gen.Generate(ctx, leaderboardSchema, leaderboardPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate leaderboard: %w", err)
	}
	var resp leaderboardResponse
	if err := ai.Decode(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	lb := normalizeLeaderboard(&resp)
	log.Printf("source: leaderboard with %d influencers", len(lb.Influencers))
	return lb, nil
}

func (s *AISource) Influencer(ctx context.Context, name string) (*models.InfluencerProfile, error) {
	raw, err := s.gen.Generate(ctx, influencerSchema, influencerPrompt(name))
	if err != nil {
		return nil, fmt.Errorf("generate influencer %q: %w", name, err)
	}
	var resp influencerResponse
	if err := ai.Decode(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode influencer %q: %w", name, err)
	}
	return normalizeProfile(&resp), nil
}
