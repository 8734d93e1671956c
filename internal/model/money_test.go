package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Money
	}{
		{"1", 1},
		{" 250 ", 250},
		{"1e3", 1000},
		{"5000.00", 5000},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmountRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "0", "-5", "abc", "12.5", "NaN", "Infinity", "99999999999999999999999"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "₹1250", Money(1250).Format("₹"))
	assert.Equal(t, "-$40", Money(-40).Format("$"))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Food")
	require.NoError(t, err)
	assert.Equal(t, CategoryFood, c)

	_, err = ParseCategory("emergency")
	assert.ErrorIs(t, err, ErrUnknownCategory, "emergency is not a regular spend category")

	_, err = ParseCategory("groceries")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.EqualError(t, err, `unknown category "groceries"`)
}

func TestParseMood(t *testing.T) {
	m, err := ParseMood("")
	require.NoError(t, err)
	assert.Equal(t, MoodNeutral, m)

	m, err = ParseMood("SAD")
	require.NoError(t, err)
	assert.Equal(t, MoodSad, m)

	_, err = ParseMood("angry")
	assert.ErrorIs(t, err, ErrUnknownMood)
}

func TestReportOnTrack(t *testing.T) {
	assert.True(t, ReportSnapshot{RemainingBudget: 1}.OnTrack())
	assert.False(t, ReportSnapshot{RemainingBudget: 0}.OnTrack())
}
