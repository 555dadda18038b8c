package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/gdugdh24/skillswap-backend/internal/repository/memory"
	"github.com/gdugdh24/skillswap-backend/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newProfileUseCase(t *testing.T) (*ProfileUseCase, repository.ProfileRepository) {
	t.Helper()
	repo := memory.NewProfileRepository()
	for _, p := range seed.Profiles(time.Now()) {
		require.NoError(t, repo.Create(context.Background(), p))
	}
	return NewProfileUseCase(repo), repo
}

func skillNames(skills []domain.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}

func TestUpdateMyProfile(t *testing.T) {
	uc, repo := newProfileUseCase(t)
	ctx := context.Background()

	p, err := uc.UpdateMyProfile(ctx, "1", &UpdateProfileRequest{
		Name:         ptr("  Marc D. "),
		Bio:          ptr(""),
		Availability: ptr(domain.AvailabilityEvenings),
	})
	require.NoError(t, err)
	assert.Equal(t, "Marc D.", p.Name)
	assert.Nil(t, p.Bio)
	assert.Equal(t, domain.AvailabilityEvenings, *p.Availability)
	require.NotNil(t, p.Location)
	assert.Equal(t, "San Francisco, CA", *p.Location)

	stored, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Marc D.", stored.Name)
}

func TestUpdateMyProfileValidation(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	for name, req := range map[string]*UpdateProfileRequest{
		"blank name":   {Name: ptr("   ")},
		"availability": {Availability: ptr(domain.Availability("mornings"))},
		"latitude":     {Latitude: ptr(91.0)},
		"longitude":    {Longitude: ptr(-181.0)},
		"social":       {SocialLinks: &[]domain.SocialLink{{Type: "myspace", URL: "https://myspace.com"}}},
		"avatar":       {AvatarURL: ptr("not a url")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.UpdateMyProfile(ctx, "1", req)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}

	_, err := uc.UpdateMyProfile(ctx, "99", &UpdateProfileRequest{})
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestAddAndRemoveSkill(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	p, err := uc.AddSkill(ctx, "1", &SkillRequest{Kind: domain.SkillOffered, Name: " Go "})
	require.NoError(t, err)
	assert.Equal(t, []string{"JavaScript", "Python", "Go"}, skillNames(p.SkillsOffered))

	p, err = uc.AddSkill(ctx, "1", &SkillRequest{Kind: domain.SkillOffered, Name: "python"})
	require.NoError(t, err)
	assert.Len(t, p.SkillsOffered, 3)

	p, err = uc.RemoveSkill(ctx, "1", &SkillRequest{Kind: domain.SkillWanted, Name: "PHOTOSHOP"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Graphic Design"}, skillNames(p.SkillsWanted))

	p, err = uc.RemoveSkill(ctx, "1", &SkillRequest{Kind: domain.SkillWanted, Name: "Cooking"})
	require.NoError(t, err)
	assert.Len(t, p.SkillsWanted, 1)
}

func TestSkillValidation(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	_, err := uc.AddSkill(ctx, "1", &SkillRequest{Kind: domain.SkillOffered, Name: "  "})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = uc.AddSkill(ctx, "1", &SkillRequest{Kind: "both", Name: "Go"})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
