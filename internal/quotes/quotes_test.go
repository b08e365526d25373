package quotes

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHasFiftyUniqueQuotes(t *testing.T) {
	quotes := All()
	require.Len(t, quotes, 50)

	seen := make(map[string]bool)
	for _, q := range quotes {
		assert.NotEmpty(t, q)
		assert.False(t, seen[q], "duplicate quote %q", q)
		seen[q] = true
	}
}

func TestQuotesStartWithEmoji(t *testing.T) {
	for _, q := range All() {
		r, _ := utf8.DecodeRuneInString(q)
		assert.Greater(t, r, rune(127), "quote should start with an emoji: %q", q)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	quotes := All()
	quotes[0] = "changed"
	assert.NotEqual(t, "changed", All()[0])
}

func TestRandomIsDeterministicWithSeed(t *testing.T) {
	a := Random(rand.New(rand.NewSource(7)))
	b := Random(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
	assert.Contains(t, All(), a)
}

func TestRandomSpread(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[Random(r)] = true
	}
	assert.GreaterOrEqual(t, len(seen), 10)
}

func TestRandomNilSource(t *testing.T) {
	assert.Contains(t, All(), Random(nil))
}
