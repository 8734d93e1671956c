// Package tips serves micro-saving suggestions.
package tips

import (
	"math/rand/v2"
	"time"
)

// Source picks an index in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Catalog returns the fixed suggestion list with money in the given currency.
func Catalog(currency string) []string {
	return []string{
		"Save " + currency + "20 this week by reducing coffee purchases",
		"You can save " + currency + "50 by reducing 10% spending",
		"Skip one meal out and save " + currency + "100 this week",
		"Cut entertainment by 20% to save " + currency + "30",
		"Track snacks – you could save " + currency + "15 daily",
	}
}

// Picker chooses suggestions uniformly at random from a catalog.
type Picker struct {
	src     Source
	catalog []string
}

// NewPicker returns a picker over catalog. A nil src uses a time-seeded PCG source.
func NewPicker(src Source, catalog []string) *Picker {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Picker{src: src, catalog: catalog}
}

// Pick returns one suggestion, or "" for an empty catalog.
func (p *Picker) Pick() string {
	if len(p.catalog) == 0 {
		return ""
	}
	return p.catalog[p.src.IntN(len(p.catalog))]
}
