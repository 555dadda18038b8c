package search

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/gdugdh24/skillswap-backend/internal/seed"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []*domain.Profile {
	return seed.Profiles(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
}

func names(ps []*domain.Profile) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func rating(v float64) *float64 { return &v }

func TestFilterBlankQueryReturnsEverythingInOrder(t *testing.T) {
	profiles := sample()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := Filter(profiles, q, Criteria{})
		if diff := cmp.Diff(names(profiles), names(got)); diff != "" {
			t.Fatalf("query %q changed the directory (-want +got):\n%s", q, diff)
		}
	}
}

func TestFilterQueryMatchesNameLocationAndSkills(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"python", []string{"Marc Demo", "Michell", "Joe Wills"}},
		{"PYTHON", []string{"Marc Demo", "Michell", "Joe Wills"}},
		{"sarah", []string{"Sarah Chen"}},
		{"seattle", []string{"Sarah Chen"}},
		{", ny", []string{"Michell"}},
		{"photo", []string{"Marc Demo", "Michell", "Joe Wills", "Sarah Chen"}},
		{"marketing", []string{"Sarah Chen"}},
		{"  react  ", []string{"Sarah Chen"}},
		{"cobol", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(sample(), tt.query, Criteria{})
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterQuerySoundness(t *testing.T) {
	profiles := sample()
	for _, q := range []string{"a", "java", "design", "ui", "tx", "zzz"} {
		got := Filter(profiles, q, Criteria{})
		in := make(map[string]bool, len(got))
		for _, p := range got {
			in[p.ID] = true
		}
		needle := strings.ToLower(q)
		for _, p := range profiles {
			assert.Equal(t, in[p.ID], matchesQuery(p, needle), "query %q profile %s", q, p.Name)
		}
	}
}

func TestFilterPythonExcludesSarahChen(t *testing.T) {
	got := names(Filter(sample(), "python", Criteria{}))
	assert.Contains(t, got, "Marc Demo")
	assert.Contains(t, got, "Michell")
	assert.NotContains(t, got, "Sarah Chen")
}

func TestFilterAvailabilityIsExact(t *testing.T) {
	got := Filter(sample(), "", Criteria{Availability: domain.AvailabilityWeekends})
	assert.Equal(t, []string{"Marc Demo", "Sarah Chen"}, names(got))

	got = Filter(sample(), "", Criteria{Availability: "weekend"})
	assert.Empty(t, got)
}

func TestFilterSkillOnlyLooksAtSkills(t *testing.T) {
	// "Seattle" is a location, not a skill.
	assert.Empty(t, Filter(sample(), "", Criteria{Skill: "seattle"}))
	assert.Equal(t, []string{"Sarah Chen"}, names(Filter(sample(), "", Criteria{Skill: "ui/ux"})))
}

func TestFilterCombinesPredicates(t *testing.T) {
	got := Filter(sample(), "javascript", Criteria{Skill: "python", MinRating: rating(3)})
	assert.Equal(t, []string{"Marc Demo", "Joe Wills"}, names(got))

	got = Filter(sample(), "", Criteria{Skill: "design", Availability: domain.AvailabilityWeekends, MinRating: rating(4)})
	assert.Equal(t, []string{"Sarah Chen"}, names(got))
}

func TestFilterMinRatingIsSubset(t *testing.T) {
	base := Filter(sample(), "a", Criteria{})
	narrowed := Filter(base, "a", Criteria{MinRating: rating(4)})

	baseIDs := make(map[string]bool)
	for _, p := range base {
		baseIDs[p.ID] = true
	}
	require.NotEmpty(t, narrowed)
	for _, p := range narrowed {
		assert.True(t, baseIDs[p.ID])
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	cases := []struct {
		q string
		c Criteria
	}{
		{"", Criteria{}},
		{"python", Criteria{}},
		{"a", Criteria{MinRating: rating(3)}},
		{"", Criteria{Skill: "photo", Availability: domain.AvailabilityEvenings}},
	}
	for _, tc := range cases {
		once := Filter(sample(), tc.q, tc.c)
		twice := Filter(once, tc.q, tc.c)
		assert.Equal(t, names(once), names(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	profiles := sample()
	before := names(profiles)
	_ = Filter(profiles, "python", Criteria{MinRating: rating(4)})
	assert.Equal(t, before, names(profiles))
}

func TestParseCriteria(t *testing.T) {
	c, err := ParseCriteria(map[string]string{
		KeySkill:        " Python ",
		KeyAvailability: "evenings",
		KeyMinRating:    "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "Python", c.Skill)
	assert.Equal(t, domain.AvailabilityEvenings, c.Availability)
	require.NotNil(t, c.MinRating)
	assert.Equal(t, 3.0, *c.MinRating)

	c, err = ParseCriteria(map[string]string{KeyAvailability: "", KeyMinRating: ""})
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

func TestParseCriteriaRejectsBadInput(t *testing.T) {
	for _, fields := range []map[string]string{
		{"rating": "4"},
		{KeyAvailability: "mornings"},
		{KeyMinRating: "four"},
		{KeyMinRating: "7"},
	} {
		_, err := ParseCriteria(fields)
		require.Error(t, err, "%v", fields)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	}
}
