package domain

import (
	"encoding/json"
	"fmt"
)

type ValidationType string

const (
	ValidationPeerEndorsed ValidationType = "peer-endorsed"
	ValidationVerified     ValidationType = "verified"
	ValidationCertified    ValidationType = "certified"
)

// SkillValidation is the trust signal attached to a claimed skill.
// Count is only meaningful for peer endorsements.
type SkillValidation struct {
	Type  ValidationType `json:"type"`
	Count int            `json:"count,omitempty"`
}

func PeerEndorsed(count int) *SkillValidation {
	return &SkillValidation{Type: ValidationPeerEndorsed, Count: count}
}

func Verified() *SkillValidation {
	return &SkillValidation{Type: ValidationVerified}
}

func Certified() *SkillValidation {
	return &SkillValidation{Type: ValidationCertified}
}

func (v SkillValidation) validate() error {
	switch v.Type {
	case ValidationPeerEndorsed:
		if v.Count < 0 {
			return fmt.Errorf("endorsement count must not be negative")
		}
	case ValidationVerified, ValidationCertified:
		if v.Count != 0 {
			return fmt.Errorf("%s validation carries no count", v.Type)
		}
	default:
		return fmt.Errorf("unknown validation type %q", v.Type)
	}
	return nil
}

// UnmarshalJSON rejects unknown variants and counts on non-endorsement badges.
func (v *SkillValidation) UnmarshalJSON(data []byte) error {
	type raw SkillValidation
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	sv := SkillValidation(r)
	if err := sv.validate(); err != nil {
		return err
	}
	*v = sv
	return nil
}

type Skill struct {
	Name       string           `json:"name"`
	Validation *SkillValidation `json:"validation,omitempty"`
}

type SkillKind string

const (
	SkillOffered SkillKind = "offered"
	SkillWanted  SkillKind = "wanted"
)

func (k SkillKind) Valid() bool {
	return k == SkillOffered || k == SkillWanted
}

func cloneSkills(in []Skill) []Skill {
	if in == nil {
		return nil
	}
	out := make([]Skill, len(in))
	for i, s := range in {
		if s.Validation != nil {
			v := *s.Validation
			s.Validation = &v
		}
		out[i] = s
	}
	return out
}
