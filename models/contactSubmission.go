package models

import "time"

type ContactSubmission struct {
	ID           int       `json:"id" goqu:"skipinsert"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Language     string    `json:"language"`
	Created_At   time.Time `json:"created_at" goqu:"skipinsert"`
	Is_Responded bool      `json:"is_responded" goqu:"skipinsert"`
	Admin_Notes  *string   `json:"admin_notes" goqu:"skipinsert"`
}

type ContactSubmissionCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

// ToDict returns the serialized view of a contact submission.
func (cs ContactSubmission) ToDict() map[string]any {
	return map[string]any{
		"id":           cs.ID,
		"name":         cs.Name,
		"email":        cs.Email,
		"subject":      cs.Subject,
		"message":      cs.Message,
		"language":     cs.Language,
		"created_at":   cs.Created_At.Format(time.RFC3339),
		"is_responded": cs.Is_Responded,
		"admin_notes":  cs.Admin_Notes,
	}
}
