package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindscale/internal/model"
	"mindscale/internal/scoring"
)

func TestEveryInstrumentHasACatalogEntry(t *testing.T) {
	for _, key := range scoring.Keys() {
		e, ok := ByTestType(key)
		require.True(t, ok, "no catalog entry for %s", key)
		assert.Equal(t, key, e.TestType)
	}
}

func TestByTestTypeTranslation(t *testing.T) {
	e, ok := ByTestType("bsrs5")
	require.True(t, ok)
	assert.Equal(t, "mood-thermometer", e.ID)

	// Identity keys resolve without a mapping row.
	e, ok = ByTestType("mbti")
	require.True(t, ok)
	assert.Equal(t, "mbti", e.ID)

	_, ok = ByTestType("unknown")
	assert.False(t, ok)
}

func TestMergePopular(t *testing.T) {
	rows := []model.PopularTest{
		{TestType: "mbti", Title: "MBTI（新版）", SessionCount: 42},
		{TestType: "bsrs5", SessionCount: 7},
		{TestType: "nope", SessionCount: 99},
	}
	merged := MergePopular(rows)
	require.Len(t, merged, 2)

	assert.Equal(t, "MBTI（新版）", merged[0].Title)
	assert.Equal(t, int64(42), merged[0].SessionCount)
	assert.Equal(t, "性格分析", merged[0].Category)

	// Backend row without a title keeps the static one.
	assert.Equal(t, "心情温度计", merged[1].Title)
}
