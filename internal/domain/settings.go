package domain

import "time"

type Settings struct {
	ProfileID          string    `json:"-" db:"profile_id"`
	EmailNotifications bool      `json:"email_notifications" db:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications" db:"push_notifications"`
	PublicProfile      bool      `json:"public_profile" db:"public_profile"`
	ShowLocation       bool      `json:"show_location" db:"show_location"`
	AllowMessages      bool      `json:"allow_messages" db:"allow_messages"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultSettings returns the settings a profile has before it saves any.
func DefaultSettings(profileID string) *Settings {
	return &Settings{
		ProfileID:          profileID,
		EmailNotifications: true,
		PushNotifications:  false,
		PublicProfile:      true,
		ShowLocation:       true,
		AllowMessages:      true,
	}
}
