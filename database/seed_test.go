package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-trust/models"
)

func TestSeed_ReplacesCatalogContents(t *testing.T) {
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)

	first := &Fixture{Influencers: []FixtureInfluencer{
		{Entry: models.LeaderboardEntry{Rank: 1, Name: "Old Name"}, Profile: models.InfluencerProfile{Claims: []models.Claim{{Text: "old"}}}},
	}}
	require.NoError(t, Seed(db, first))

	second := &Fixture{Influencers: []FixtureInfluencer{
		{Entry: models.LeaderboardEntry{Rank: 1, Name: "Mental Health Coach"}, Profile: models.InfluencerProfile{Claims: []models.Claim{{Text: "a"}, {Text: "b"}}}},
	}}
	require.NoError(t, Seed(db, second))

	var records []InfluencerRecord
	require.NoError(t, db.Preload("Claims").Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "mental-health-coach", records[0].Slug)
	assert.Len(t, records[0].Claims, 2)

	var claimCount int64
	require.NoError(t, db.Model(&ClaimRecord{}).Count(&claimCount).Error)
	assert.Equal(t, int64(2), claimCount)

	p := records[0].Profile()
	assert.Equal(t, "Mental Health Coach", p.Name)
}

func TestLoadFixture(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.json")
	body := `{"influencers":[{"entry":{"rank":1,"name":"Rhonda Patrick","category":"Nutrition"},"profile":{"bio":"Biochemist","claims":[{"claim":"Sauna use lowers mortality","verification_status":"Verified","trust_score":88}]}}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	f, err := LoadFixture(path)
	require.NoError(t, err)
	require.Len(t, f.Influencers, 1)
	assert.Equal(t, "Rhonda Patrick", f.Influencers[0].Entry.Name)
	assert.Equal(t, 88, f.Influencers[0].Profile.Claims[0].TrustScore)

	_, err = LoadFixture(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
