// Package scoring implements the mock ad generation algorithm.
//
// Scores are synthetic: they are derived from stable hashes of the request
// context and a seeded pseudo-random sequence, so that identical inputs
// always produce identical output. Progressive refinement across response
// versions is modelled with a per-version score multiplier.
package scoring

import (
	"fmt"
	"math/rand"
	"sort"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"

	"github.com/cespare/xxhash/v2"
)

// MinAds and MaxAds bound the number of ads in a generated batch.
const (
	MinAds = 5
	MaxAds = 10
)

// Version multipliers model progressive refinement: early batches are
// deliberately worse than the delayed final one.
const (
	multiplierV1 = 0.7
	multiplierV2 = 0.9
	multiplierV3 = 1.1
)

// Generator produces versioned ad batches from a request context.
type Generator interface {
	Generate(ctx *adspb.Context, version uint32) *adspb.AdsList
}

// MockGenerator is a stateless Generator producing deterministic scores.
// The zero value is ready to use.
type MockGenerator struct{}

// NewMockGenerator creates a new MockGenerator.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate builds a versioned batch of 5-10 ads for the given context.
// Identical (query, asin_id, understanding, version) inputs yield a
// bit-identical batch. Determinism is implementation-local: the seeded
// sequence is Go's math/rand source, no cross-language parity is implied.
func (g *MockGenerator) Generate(ctx *adspb.Context, version uint32) *adspb.AdsList {
	seed := hashStrings(ctx.Query, ctx.AsinId)
	rng := rand.New(rand.NewSource(int64(seed))) // nolint: gosec // deterministic mock scoring, not security

	count := MinAds + rng.Intn(MaxAds-MinAds+1)
	ads := make([]*adspb.Ad, 0, count)
	for i := 0; i < count; i++ {
		score := float64(hashStrings(ctx.Query, ctx.AsinId, fmt.Sprintf("%d", i))%1000) / 1000.0
		if ctx.Understanding != "" {
			score += float64(hashStrings(ctx.Understanding)%200) / 1000.0
		}
		score *= versionMultiplier(version)
		score += rng.Float64()*0.2 - 0.1
		score = clamp(score, 0.0, 1.0)

		ads = append(ads, &adspb.Ad{
			AsinId: ctx.AsinId,
			AdId:   fmt.Sprintf("ad_%s_%d_v%d", ctx.AsinId, i+1, version),
			Score:  score,
		})
	}

	// Stable sort keeps ties in generation order, so the full ordering
	// is reproducible too.
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].Score > ads[j].Score
	})

	return &adspb.AdsList{
		Ads:     ads,
		Version: version,
	}
}

func versionMultiplier(version uint32) float64 {
	switch version {
	case 1:
		return multiplierV1
	case 2:
		return multiplierV2
	case 3:
		return multiplierV3
	default:
		return 1.0
	}
}

// hashStrings produces a stable 64-bit hash of the given parts.
// A NUL separator keeps ("ab","c") distinct from ("a","bc").
func hashStrings(parts ...string) uint64 {
	d := xxhash.New()
	for i, part := range parts {
		if i > 0 {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.WriteString(part)
	}
	return d.Sum64()
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
