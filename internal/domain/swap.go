package domain

import "time"

type SwapStatus string

const (
	SwapActive    SwapStatus = "active"
	SwapCompleted SwapStatus = "completed"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

// ActiveSwap is an accepted request being worked on. Its ID is the ID of
// the request it came from. Requester taught SkillOffered and learns
// SkillWanted; the recipient the reverse.
type ActiveSwap struct {
	ID           string          `json:"id" db:"id"`
	Requester    ProfileSnapshot `json:"requester" db:"-"`
	Recipient    ProfileSnapshot `json:"recipient" db:"-"`
	SkillOffered string          `json:"skill_offered" db:"skill_offered"`
	SkillWanted  string          `json:"skill_wanted" db:"skill_wanted"`
	StartDate    time.Time       `json:"start_date" db:"start_date"`
	Progress     int             `json:"progress" db:"progress"`
	Status       SwapStatus      `json:"status" db:"status"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty" db:"completed_at"`
}

func (s *ActiveSwap) HasParticipant(profileID string) bool {
	return s.Requester.ID == profileID || s.Recipient.ID == profileID
}

// SwapView is an ActiveSwap as seen by one participant.
type SwapView struct {
	ID          string          `json:"id"`
	Partner     ProfileSnapshot `json:"partner"`
	YourSkill   string          `json:"your_skill"`
	TheirSkill  string          `json:"their_skill"`
	StartDate   time.Time       `json:"start_date"`
	Progress    int             `json:"progress"`
	Status      SwapStatus      `json:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// ViewFor projects the swap onto profileID. The second result is false
// when profileID is not a participant.
func (s *ActiveSwap) ViewFor(profileID string) (SwapView, bool) {
	v := SwapView{
		ID:          s.ID,
		StartDate:   s.StartDate,
		Progress:    s.Progress,
		Status:      s.Status,
		CompletedAt: s.CompletedAt,
	}
	switch profileID {
	case s.Requester.ID:
		v.Partner = s.Recipient
		v.YourSkill = s.SkillOffered
		v.TheirSkill = s.SkillWanted
	case s.Recipient.ID:
		v.Partner = s.Requester
		v.YourSkill = s.SkillWanted
		v.TheirSkill = s.SkillOffered
	default:
		return SwapView{}, false
	}
	return v, true
}

// NewActiveSwap starts a swap from an accepted request.
func NewActiveSwap(req *SwapRequest, start time.Time) *ActiveSwap {
	return &ActiveSwap{
		ID:           req.ID,
		Requester:    req.From,
		Recipient:    req.To,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		StartDate:    start,
		Progress:     MinProgress,
		Status:       SwapActive,
	}
}
