package search

import (
	"errors"
	"testing"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRelevanceKeepsInputOrder(t *testing.T) {
	profiles := sample()
	got, err := Sort(profiles, OrderRelevance, nil)
	require.NoError(t, err)
	assert.Equal(t, names(profiles), names(got))
}

func TestSortRatingDescending(t *testing.T) {
	got, err := Sort(sample(), OrderRating, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Chen", "Joe Wills", "Marc Demo", "Michell"}, names(got))
}

func TestSortRatingIsStable(t *testing.T) {
	profiles := sample()
	for _, p := range profiles {
		p.Rating = 4
	}
	got, err := Sort(profiles, OrderRating, nil)
	require.NoError(t, err)
	assert.Equal(t, names(profiles), names(got))
}

func TestSortRecentNewestFirst(t *testing.T) {
	got, err := Sort(sample(), OrderRecent, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Chen", "Joe Wills", "Michell", "Marc Demo"}, names(got))
}

func TestSortDistance(t *testing.T) {
	profiles := sample()
	profiles[2].Latitude = nil // Joe Wills has no coordinates

	portland := &Point{Lat: 45.5152, Lon: -122.6784}
	got, err := Sort(profiles, OrderDistance, portland)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Chen", "Marc Demo", "Michell", "Joe Wills"}, names(got))
}

func TestSortDistanceNeedsOrigin(t *testing.T) {
	_, err := Sort(sample(), OrderDistance, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderRelevance, o)

	_, err = ParseOrder("popularity")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestDistance(t *testing.T) {
	sf := Point{Lat: 37.7749, Lon: -122.4194}
	ny := Point{Lat: 40.7128, Lon: -74.0060}
	assert.InDelta(t, 4129, Distance(sf, ny), 10)
	assert.InDelta(t, 0, Distance(sf, sf), 1e-9)
}
