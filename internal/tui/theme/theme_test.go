package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByNameFallsBackToFlexoki(t *testing.T) {
	assert.Equal(t, "tokyo-night", ByName("tokyo-night").Name)
	assert.Equal(t, FlexokiDark.Name, ByName("solarized").Name)
}

func TestSetActive(t *testing.T) {
	t.Cleanup(func() { Active = FlexokiDark })

	SetActive("terminal")
	assert.Equal(t, "terminal", Active.Name)
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(All))
	for _, n := range names {
		_, ok := Lookup(n)
		assert.True(t, ok, n)
	}
}
