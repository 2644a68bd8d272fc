package controllers

import (
	"time"

	"github.com/ChatAT/models"
)

// Test fixture data for use in tests

// MockPrayerRequest creates a sample non-anonymous prayer request
func MockPrayerRequest() models.PrayerRequest {
	name := "Jo"
	email := "jo@x.com"
	return models.PrayerRequest{
		ID:           1,
		Name:         &name,
		Email:        &email,
		Request:      "Please pray",
		Category:     "general",
		Is_Anonymous: false,
		Language:     "en",
		Created_At:   time.Now().UTC(),
	}
}

// MockAnonymousPrayerRequest creates a sample anonymous prayer request
func MockAnonymousPrayerRequest() models.PrayerRequest {
	return models.PrayerRequest{
		ID:           2,
		Request:      "Please pray for healing",
		Category:     "health",
		Is_Anonymous: true,
		Language:     "ar",
		Created_At:   time.Now().UTC(),
	}
}

// MockContactSubmission creates a sample contact submission
func MockContactSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		ID:         1,
		Name:       "A",
		Email:      "a@b.com",
		Subject:    "S",
		Message:    "M",
		Language:   "en",
		Created_At: time.Now().UTC(),
	}
}
