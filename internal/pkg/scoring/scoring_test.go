package scoring

import (
	"fmt"
	"strings"
	"testing"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"

	"github.com/stretchr/testify/require"
)

func testContext(understanding string) *adspb.Context {
	return &adspb.Context{
		Query:         "coffee maker",
		AsinId:        "B000123",
		Understanding: understanding,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewMockGenerator()
	for _, version := range []uint32{1, 2, 3, 4} {
		a := g.Generate(testContext("refined understanding"), version)
		b := g.Generate(testContext("refined understanding"), version)
		require.Equal(t, a.Version, b.Version)
		require.Len(t, b.Ads, len(a.Ads))
		for i := range a.Ads {
			require.Equal(t, a.Ads[i].AdId, b.Ads[i].AdId)
			require.Equal(t, a.Ads[i].AsinId, b.Ads[i].AsinId)
			require.Equal(t, a.Ads[i].Score, b.Ads[i].Score)
		}
	}
}

func TestGenerateCountAndOrder(t *testing.T) {
	g := NewMockGenerator()
	batch := g.Generate(testContext(""), 1)
	require.Equal(t, uint32(1), batch.Version)
	require.GreaterOrEqual(t, len(batch.Ads), MinAds)
	require.LessOrEqual(t, len(batch.Ads), MaxAds)
	for i := 1; i < len(batch.Ads); i++ {
		require.GreaterOrEqual(t, batch.Ads[i-1].Score, batch.Ads[i].Score)
	}
}

func TestGenerateScoreRange(t *testing.T) {
	g := NewMockGenerator()
	contexts := []*adspb.Context{
		testContext(""),
		testContext("refined understanding based on query analysis"),
		{Query: "", AsinId: "", Understanding: ""},
		{Query: strings.Repeat("q", 1000), AsinId: "B999999", Understanding: strings.Repeat("u", 1000)},
	}
	for _, ctx := range contexts {
		for version := uint32(0); version <= 5; version++ {
			batch := g.Generate(ctx, version)
			for _, ad := range batch.Ads {
				require.GreaterOrEqual(t, ad.Score, 0.0)
				require.LessOrEqual(t, ad.Score, 1.0)
			}
		}
	}
}

func TestGenerateAdIdentity(t *testing.T) {
	g := NewMockGenerator()
	batch := g.Generate(testContext(""), 2)
	seen := make(map[string]bool)
	for _, ad := range batch.Ads {
		require.Equal(t, "B000123", ad.AsinId)
		require.True(t, strings.HasPrefix(ad.AdId, "ad_B000123_"))
		require.True(t, strings.HasSuffix(ad.AdId, "_v2"))
		require.False(t, seen[ad.AdId], "duplicate ad id %s", ad.AdId)
		seen[ad.AdId] = true
	}
}

func TestGenerateVersionsDistinct(t *testing.T) {
	g := NewMockGenerator()
	v1 := g.Generate(testContext("x"), 1)
	v3 := g.Generate(testContext("x"), 3)
	// Same seed, same item count; only the multiplier and ids differ.
	require.Len(t, v3.Ads, len(v1.Ads))
	ids := func(batch *adspb.AdsList) []string {
		out := make([]string, len(batch.Ads))
		for i, ad := range batch.Ads {
			out[i] = ad.AdId
		}
		return out
	}
	require.NotEqual(t, ids(v1), ids(v3))
	for _, id := range ids(v3) {
		require.Contains(t, id, "_v3")
	}
}

func TestHashStringsSeparatorMatters(t *testing.T) {
	require.NotEqual(t, hashStrings("ab", "c"), hashStrings("a", "bc"))
	require.Equal(t, hashStrings("a", "b"), hashStrings("a", "b"))
}

func TestVersionMultiplier(t *testing.T) {
	require.Equal(t, 0.7, versionMultiplier(1))
	require.Equal(t, 0.9, versionMultiplier(2))
	require.Equal(t, 1.1, versionMultiplier(3))
	require.Equal(t, 1.0, versionMultiplier(0))
	require.Equal(t, 1.0, versionMultiplier(7))
}

func TestGenerateItemCountStablePerContext(t *testing.T) {
	g := NewMockGenerator()
	for i := 0; i < 5; i++ {
		ctx := &adspb.Context{Query: fmt.Sprintf("query %d", i), AsinId: "B000123"}
		// Count depends only on (query, asin_id), never on version.
		require.Len(t, g.Generate(ctx, 2).Ads, len(g.Generate(ctx, 1).Ads))
	}
}
