// Package phrases holds the short feedback lines shown after an answer.
package phrases

import (
	"golang.org/x/text/language"
)

// Rand picks phrase indices. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Set is the praise and retry vocabulary for one locale.
type Set struct {
	Locale string
	Praise []string
	Retry  []string
}

var (
	english = Set{
		Locale: "en",
		Praise: []string{"SUPER!", "AWESOME!", "FANTASTIC!", "TOP!", "PERFECT!", "WELL DONE!"},
		Retry:  []string{"OOPS!", "TRY AGAIN!", "NOT QUITE!", "TOO BAD!"},
	}
	dutch = Set{
		Locale: "nl",
		Praise: []string{"SUPER!", "GEWELDIG!", "FANTASTISCH!", "TOP!", "PERFECT!", "GOED ZO!"},
		Retry:  []string{"OEPS!", "PROBEER OPNIEUW!", "NIET JUIST!", "HELAAS!"},
	}
)

// supported lists the sets in matcher order; the first entry is the fallback.
var supported = []Set{english, dutch}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Dutch,
})

// ForLocale returns the phrase set that best matches a BCP 47 locale such
// as "nl", "nl-BE" or "en-US". Unknown or malformed locales get English.
func ForLocale(locale string) Set {
	_, idx := language.MatchStrings(matcher, locale)
	if idx < 0 || idx >= len(supported) {
		return english
	}
	return supported[idx]
}

// Locales returns the locale codes that have a phrase set.
func Locales() []string {
	out := make([]string, len(supported))
	for i, s := range supported {
		out[i] = s.Locale
	}
	return out
}

// PickPraise returns a random praise line.
func (s Set) PickPraise(rng Rand) string {
	return pick(s.Praise, rng)
}

// PickRetry returns a random retry line.
func (s Set) PickRetry(rng Rand) string {
	return pick(s.Retry, rng)
}

func pick(list []string, rng Rand) string {
	if len(list) == 0 {
		return ""
	}
	return list[rng.IntN(len(list))]
}
