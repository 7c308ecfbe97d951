package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neharmenon05/buildathon/internal/data"
)

func TestAnalyzeBullets(t *testing.T) {
	s := NewAdvisorService(0, 1, zap.NewNop())

	advice, err := s.Analyze(context.Background(), tomato())
	require.NoError(t, err)

	require.Len(t, advice.CostSavings, 3)
	require.Len(t, advice.CostSavingsHindi, 3)
	require.Len(t, advice.SupplierTips, 3)
	require.Len(t, advice.SupplierTipsHindi, 3)

	// ₹42 x 0.15 = 6.3, rounded to 6.
	assert.Equal(t, "Direct sourcing can save ₹6 per kg", advice.CostSavings[0])
	assert.Equal(t, "Bulk buying (50+ kg) offers 10-15% discount", advice.CostSavings[1])
	assert.Contains(t, advice.CostSavingsHindi[0], "₹6")
	assert.Contains(t, advice.SupplierTips[2], "e-NAM")
}

func TestAnalyzeSchemeSubset(t *testing.T) {
	s := NewAdvisorService(0, 1, zap.NewNop())

	advice, err := s.Analyze(context.Background(), tomato())
	require.NoError(t, err)

	// The subset is random per analysis but always drawn from the
	// fixed scheme list, names and Hindi names staying aligned.
	assert.LessOrEqual(t, len(advice.GovernmentSchemes), len(data.GovernmentSchemes))
	assert.Equal(t, len(advice.GovernmentSchemes), len(advice.GovernmentSchemesHindi))

	known := make(map[string]string, len(data.GovernmentSchemes))
	for _, scheme := range data.GovernmentSchemes {
		known[scheme.Name] = scheme.NameHindi
	}
	for i, name := range advice.GovernmentSchemes {
		hindi, ok := known[name]
		require.True(t, ok, "unexpected scheme %q", name)
		assert.Equal(t, hindi, advice.GovernmentSchemesHindi[i])
	}
}

func TestAnalyzeIsDeterministicForFixedSeed(t *testing.T) {
	first, err := NewAdvisorService(0, 99, zap.NewNop()).Analyze(context.Background(), tomato())
	require.NoError(t, err)
	second, err := NewAdvisorService(0, 99, zap.NewNop()).Analyze(context.Background(), tomato())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeSchemesMayBeEmptyButNeverNil(t *testing.T) {
	// An empty subset is a legitimate outcome of the inclusion filter;
	// the JSON payload should still be [] rather than null.
	for seed := int64(1); seed <= 50; seed++ {
		advice, err := NewAdvisorService(0, seed, zap.NewNop()).Analyze(context.Background(), tomato())
		require.NoError(t, err)
		assert.NotNil(t, advice.GovernmentSchemes)
		assert.NotNil(t, advice.GovernmentSchemesHindi)
	}
}
