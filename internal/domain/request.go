package domain

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestDeclined  RequestStatus = "declined"
	RequestCancelled RequestStatus = "cancelled"
)

// Perspective is the side of a request a viewer is on.
type Perspective string

const (
	PerspectiveIncoming Perspective = "incoming"
	PerspectiveOutgoing Perspective = "outgoing"
)

// SwapRequest is one logical request. The sender sees it as outgoing and
// the recipient as incoming; there is no second record.
type SwapRequest struct {
	ID           string          `json:"id" db:"id"`
	From         ProfileSnapshot `json:"from" db:"-"`
	To           ProfileSnapshot `json:"to" db:"-"`
	SkillOffered string          `json:"skill_offered" db:"skill_offered"`
	SkillWanted  string          `json:"skill_wanted" db:"skill_wanted"`
	Message      string          `json:"message" db:"message"`
	Status       RequestStatus   `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// PerspectiveOf returns how profileID sees the request.
func (r *SwapRequest) PerspectiveOf(profileID string) (Perspective, bool) {
	switch profileID {
	case r.To.ID:
		return PerspectiveIncoming, true
	case r.From.ID:
		return PerspectiveOutgoing, true
	}
	return "", false
}

// Event names used in transition errors and notifications.
const (
	EventAccept   = "accept"
	EventDecline  = "decline"
	EventCancel   = "cancel"
	EventProgress = "update progress of"
	EventComplete = "complete"
)

// MaxMessageLength bounds the note attached to a request, in characters.
const MaxMessageLength = 1000

// DefaultRequestMessage is the note used when the sender leaves it blank
// and no drafter is available.
func DefaultRequestMessage(toName, skillOffered, skillWanted string) string {
	return fmt.Sprintf("Hi %s! I'd love to learn %s from you. I can teach you %s in return.", toName, skillWanted, skillOffered)
}
