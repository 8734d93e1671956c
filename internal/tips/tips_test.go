package tips

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestPickUsesSource(t *testing.T) {
	catalog := Catalog("₹")
	p := NewPicker(fixedSource(2), catalog)
	assert.Equal(t, "Skip one meal out and save ₹100 this week", p.Pick())
}

func TestPickSeededIsDeterministic(t *testing.T) {
	catalog := Catalog("$")
	a := NewPicker(rand.New(rand.NewPCG(7, 11)), catalog)
	b := NewPicker(rand.New(rand.NewPCG(7, 11)), catalog)
	for i := 0; i < 20; i++ {
		got := a.Pick()
		assert.Equal(t, got, b.Pick())
		assert.Contains(t, catalog, got)
	}
}

func TestPickEmptyCatalog(t *testing.T) {
	assert.Equal(t, "", NewPicker(fixedSource(0), nil).Pick())
}

func TestDefaultSource(t *testing.T) {
	p := NewPicker(nil, Catalog("€"))
	assert.Contains(t, Catalog("€"), p.Pick())
}
