package phrases

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"nl", "nl"},
		{"nl-BE", "nl"},
		{"fr", "en"},
		{"", "en"},
		{"not a locale", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, ForLocale(tt.locale).Locale)
		})
	}
}

func TestPick(t *testing.T) {
	nl := ForLocale("nl")
	assert.Equal(t, "OEPS!", nl.PickRetry(fixedRand(0)))
	assert.Equal(t, "HELAAS!", nl.PickRetry(fixedRand(3)))
	assert.Equal(t, "GOED ZO!", nl.PickPraise(fixedRand(5)))
}

func TestPick_AlwaysFromSet(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	set := ForLocale("en")
	for i := 0; i < 200; i++ {
		assert.Contains(t, set.Praise, set.PickPraise(rng))
		assert.Contains(t, set.Retry, set.PickRetry(rng))
	}
}

func TestPick_EmptySet(t *testing.T) {
	assert.Equal(t, "", Set{}.PickPraise(fixedRand(1)))
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"en", "nl"}, Locales())
}
