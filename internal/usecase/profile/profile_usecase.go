package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	// Same tags gin binds with, so direct callers get the same checks.
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return &ProfileUseCase{
		profileRepo: profileRepo,
		validate:    v,
	}
}

// UpdateProfileRequest is a partial update; nil fields are left alone.
type UpdateProfileRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1,max=100"`
	Location     *string              `json:"location" binding:"omitempty,max=100"`
	Timezone     *string              `json:"timezone" binding:"omitempty,max=50"`
	AvatarURL    *string              `json:"avatar_url" binding:"omitempty,url"`
	Bio          *string              `json:"bio" binding:"omitempty,max=500"`
	Availability *domain.Availability `json:"availability" binding:"omitempty,oneof=weekends evenings flexible business-hours"`
	Latitude     *float64             `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64             `json:"longitude" binding:"omitempty,min=-180,max=180"`
	SocialLinks  *[]domain.SocialLink `json:"social_links"`
}

// SkillRequest names a skill on one of the two lists.
type SkillRequest struct {
	Kind domain.SkillKind `json:"kind" binding:"required,oneof=offered wanted"`
	Name string           `json:"name" binding:"required,max=100"`
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, profileID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, profileID)
}

// UpdateMyProfile applies req to the caller's profile. Requests already
// sent keep the snapshot taken when they were created.
func (uc *ProfileUseCase) UpdateMyProfile(ctx context.Context, profileID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	if err := uc.check(req); err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "must not be blank")
		}
		profile.Name = name
	}
	if req.Location != nil {
		profile.Location = optional(*req.Location)
	}
	if req.Timezone != nil {
		profile.Timezone = optional(*req.Timezone)
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = optional(*req.AvatarURL)
	}
	if req.Bio != nil {
		profile.Bio = optional(*req.Bio)
	}
	if req.Availability != nil {
		a := *req.Availability
		profile.Availability = &a
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}
	if req.SocialLinks != nil {
		for _, l := range *req.SocialLinks {
			switch l.Type {
			case domain.SocialGithub, domain.SocialLinkedIn, domain.SocialPortfolio:
			default:
				return nil, domain.NewValidationError("social_links", "unknown type %q", l.Type)
			}
		}
		profile.SocialLinks = *req.SocialLinks
	}
	if profile.HasCoordinates() != (profile.Latitude != nil || profile.Longitude != nil) {
		return nil, domain.NewValidationError("latitude", "latitude and longitude must be set together")
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// AddSkill appends a skill to the offered or wanted list. Adding a name
// that is already there, in any case, changes nothing.
func (uc *ProfileUseCase) AddSkill(ctx context.Context, profileID string, req *SkillRequest) (*domain.Profile, error) {
	name, err := uc.skillName(req)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	list := skillList(profile, req.Kind)
	if indexOf(*list, name) >= 0 {
		return profile, nil
	}
	*list = append(*list, domain.Skill{Name: name})

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to add skill: %w", err)
	}
	return profile, nil
}

// RemoveSkill drops a skill by name, ignoring case. Removing a skill that
// is not on the list is not an error.
func (uc *ProfileUseCase) RemoveSkill(ctx context.Context, profileID string, req *SkillRequest) (*domain.Profile, error) {
	name, err := uc.skillName(req)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	list := skillList(profile, req.Kind)
	i := indexOf(*list, name)
	if i < 0 {
		return profile, nil
	}
	*list = append((*list)[:i], (*list)[i+1:]...)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to remove skill: %w", err)
	}
	return profile, nil
}

func (uc *ProfileUseCase) skillName(req *SkillRequest) (string, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return "", domain.NewValidationError("name", "skill name must not be blank")
	}
	if err := uc.check(req); err != nil {
		return "", err
	}
	return req.Name, nil
}

// check runs the binding tags and reports the first failure as a
// domain.ValidationError.
func (uc *ProfileUseCase) check(req any) error {
	err := uc.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(strings.ToLower(fe.Field()), "failed %q check", fe.Tag())
	}
	return domain.NewValidationError("", "%v", err)
}

func skillList(p *domain.Profile, kind domain.SkillKind) *[]domain.Skill {
	if kind == domain.SkillWanted {
		return &p.SkillsWanted
	}
	return &p.SkillsOffered
}

func indexOf(skills []domain.Skill, name string) int {
	for i, s := range skills {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
