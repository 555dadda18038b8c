package bookmark

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/gdugdh24/skillswap-backend/internal/repository/memory"
	"github.com/gdugdh24/skillswap-backend/internal/seed"
	"github.com/gdugdh24/skillswap-backend/internal/usecase/browse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookmarkFixture struct {
	uc       *BookmarkUseCase
	kv       *memory.KV
	settings repository.SettingsRepository
}

func newFixture(t *testing.T) *bookmarkFixture {
	t.Helper()
	profiles := memory.NewProfileRepository()
	for _, p := range seed.Profiles(time.Now()) {
		require.NoError(t, profiles.Create(context.Background(), p))
	}
	settings := memory.NewSettingsRepository()
	kv := memory.NewKV()
	return &bookmarkFixture{
		uc:       NewBookmarkUseCase(kv, browse.NewBrowseUseCase(profiles, settings)),
		kv:       kv,
		settings: settings,
	}
}

func (f *bookmarkFixture) hide(t *testing.T, profileID string, public, showLocation bool) {
	t.Helper()
	s := domain.DefaultSettings(profileID)
	s.PublicProfile = public
	s.ShowLocation = showLocation
	require.NoError(t, f.settings.Upsert(context.Background(), s))
}

func newBookmarkUseCase(t *testing.T) (*BookmarkUseCase, *memory.KV) {
	t.Helper()
	f := newFixture(t)
	return f.uc, f.kv
}

func TestUseCaseToggleAndList(t *testing.T) {
	uc, _ := newBookmarkUseCase(t)
	ctx := context.Background()

	resp, err := uc.Toggle(ctx, "1", "4")
	require.NoError(t, err)
	assert.Equal(t, &ToggleResponse{ProfileID: "4", Bookmarked: true}, resp)

	ok, err := uc.IsBookmarked(ctx, "1", "4")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := uc.List(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, list.IDs)
	require.Len(t, list.Profiles, 1)
	assert.Equal(t, "Sarah Chen", list.Profiles[0].Name)

	ok, err = uc.IsBookmarked(ctx, "2", "4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUseCaseRejectsUnknownProfile(t *testing.T) {
	uc, _ := newBookmarkUseCase(t)
	_, err := uc.Toggle(context.Background(), "1", "404")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestUseCaseSkipsVanishedProfiles(t *testing.T) {
	uc, kv := newBookmarkUseCase(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyPrefix+"1", `["gone","2"]`))

	list, err := uc.List(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"gone", "2"}, list.IDs)
	require.Len(t, list.Profiles, 1)
	assert.Equal(t, "Michell", list.Profiles[0].Name)

	resp, err := uc.Toggle(ctx, "1", "gone")
	require.NoError(t, err)
	assert.False(t, resp.Bookmarked)
}

func TestUseCaseLoadsStoreOnce(t *testing.T) {
	uc, kv := newBookmarkUseCase(t)
	ctx := context.Background()

	_, err := uc.List(ctx, "1")
	require.NoError(t, err)

	// Writes behind the cached store's back are not picked up.
	require.NoError(t, kv.Set(ctx, KeyPrefix+"1", `["3"]`))
	list, err := uc.List(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, list.IDs)
}

func TestUseCaseListAppliesPrivacy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Toggle(ctx, "1", "4")
	require.NoError(t, err)
	_, err = f.uc.Toggle(ctx, "1", "2")
	require.NoError(t, err)

	f.hide(t, "4", false, true)
	f.hide(t, "2", true, false)

	list, err := f.uc.List(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "2"}, list.IDs)
	require.Len(t, list.Profiles, 1)
	assert.Equal(t, "Michell", list.Profiles[0].Name)
	assert.Nil(t, list.Profiles[0].Location)
	assert.Nil(t, list.Profiles[0].Latitude)
}

func TestUseCaseHiddenProfileLooksMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.hide(t, "4", false, true)

	_, err := f.uc.Toggle(ctx, "1", "4")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))

	ok, err := f.uc.IsBookmarked(ctx, "1", "4")
	require.NoError(t, err)
	assert.False(t, ok)

	// Owners always see themselves.
	resp, err := f.uc.Toggle(ctx, "4", "4")
	require.NoError(t, err)
	assert.True(t, resp.Bookmarked)
}

func TestUseCaseConcurrentTogglesNeverReaddMissingProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, KeyPrefix+"1", `["gone"]`))

	const n = 16
	var wg sync.WaitGroup
	results := make([]*ToggleResponse, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.Toggle(ctx, "1", "gone")
		}(i)
	}
	wg.Wait()

	var removed int
	for i, err := range errs {
		if err == nil {
			assert.False(t, results[i].Bookmarked)
			removed++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrProfileNotFound), "got %v", err)
	}
	assert.Equal(t, 1, removed)

	list, err := f.uc.List(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, list.IDs)
}
