package browse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/gdugdh24/skillswap-backend/internal/repository/memory"
	"github.com/gdugdh24/skillswap-backend/internal/seed"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseUseCase(t *testing.T) (*BrowseUseCase, repository.SettingsRepository) {
	t.Helper()
	profiles := memory.NewProfileRepository()
	for _, p := range seed.Profiles(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		require.NoError(t, profiles.Create(context.Background(), p))
	}
	settings := memory.NewSettingsRepository()
	return NewBrowseUseCase(profiles, settings), settings
}

func names(ps []*domain.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestBrowseDefaults(t *testing.T) {
	uc, _ := newBrowseUseCase(t)
	resp, err := uc.Browse(context.Background(), &BrowseRequest{})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, DefaultLimit, resp.Limit)
	assert.Equal(t, []string{"Marc Demo", "Michell", "Joe Wills", "Sarah Chen"}, names(resp.Profiles))
}

func TestBrowseFilterSortAndPage(t *testing.T) {
	uc, _ := newBrowseUseCase(t)
	ctx := context.Background()

	resp, err := uc.Browse(ctx, &BrowseRequest{Query: "python", Order: search.OrderRating, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{"Joe Wills", "Marc Demo"}, names(resp.Profiles))

	resp, err = uc.Browse(ctx, &BrowseRequest{Query: "python", Order: search.OrderRating, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Michell"}, names(resp.Profiles))

	resp, err = uc.Browse(ctx, &BrowseRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Profiles)
	assert.Equal(t, 4, resp.Total)
}

func TestBrowseRejectsBadPaging(t *testing.T) {
	uc, _ := newBrowseUseCase(t)
	for _, req := range []*BrowseRequest{{Limit: 101}, {Limit: -1}, {Offset: -1}} {
		_, err := uc.Browse(context.Background(), req)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	}
}

func TestBrowseDistance(t *testing.T) {
	uc, _ := newBrowseUseCase(t)
	ctx := context.Background()

	resp, err := uc.Browse(ctx, &BrowseRequest{ViewerID: "4", Order: search.OrderDistance})
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Chen", "Marc Demo", "Joe Wills", "Michell"}, names(resp.Profiles))

	_, err = uc.Browse(ctx, &BrowseRequest{Order: search.OrderDistance})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestBrowseHonoursPrivacySettings(t *testing.T) {
	uc, settings := newBrowseUseCase(t)
	ctx := context.Background()

	hidden := domain.DefaultSettings("2")
	hidden.PublicProfile = false
	require.NoError(t, settings.Upsert(ctx, hidden))

	noLocation := domain.DefaultSettings("4")
	noLocation.ShowLocation = false
	require.NoError(t, settings.Upsert(ctx, noLocation))

	resp, err := uc.Browse(ctx, &BrowseRequest{ViewerID: "1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Marc Demo", "Joe Wills", "Sarah Chen"}, names(resp.Profiles))
	assert.Nil(t, resp.Profiles[2].Location)

	// Location is not searchable once hidden.
	resp, err = uc.Browse(ctx, &BrowseRequest{ViewerID: "1", Query: "seattle"})
	require.NoError(t, err)
	assert.Empty(t, resp.Profiles)

	_, err = uc.GetProfile(ctx, "2", "1")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))

	own, err := uc.GetProfile(ctx, "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "Michell", own.Name)

	sarah, err := uc.GetProfile(ctx, "4", "")
	require.NoError(t, err)
	assert.Nil(t, sarah.Location)
}
