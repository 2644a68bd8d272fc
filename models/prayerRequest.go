package models

import "time"

type PrayerRequest struct {
	ID           int       `json:"id" goqu:"skipinsert"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	Request      string    `json:"request"`
	Category     string    `json:"category"`
	Is_Anonymous bool      `json:"is_anonymous"`
	Language     string    `json:"language"`
	Created_At   time.Time `json:"created_at" goqu:"skipinsert"`
	Is_Processed bool      `json:"is_processed" goqu:"skipinsert"`
	Admin_Notes  *string   `json:"admin_notes" goqu:"skipinsert"`
}

type PrayerRequestSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Request     string `json:"request"`
	Category    string `json:"category"`
	IsAnonymous bool   `json:"isAnonymous"`
	Language    string `json:"language"`
}

// ToDict returns the serialized view of a prayer request. Anonymous
// records never expose the submitter: name is replaced with a fixed
// placeholder and email is nulled even if values were stored.
func (pr PrayerRequest) ToDict() map[string]any {
	name := any(nil)
	email := any(nil)
	if pr.Is_Anonymous {
		name = "Anonymous"
	} else {
		if pr.Name != nil {
			name = *pr.Name
		}
		if pr.Email != nil {
			email = *pr.Email
		}
	}

	return map[string]any{
		"id":           pr.ID,
		"name":         name,
		"email":        email,
		"request":      pr.Request,
		"category":     pr.Category,
		"is_anonymous": pr.Is_Anonymous,
		"language":     pr.Language,
		"created_at":   pr.Created_At.Format(time.RFC3339),
		"is_processed": pr.Is_Processed,
		"admin_notes":  pr.Admin_Notes,
	}
}
