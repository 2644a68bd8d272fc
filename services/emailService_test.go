package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ChatAT/models"
)

type recordedEmail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records sends and fails those whose index is in failOn.
type fakeMailer struct {
	failOn map[int]bool
	sent   []recordedEmail
}

func (m *fakeMailer) Send(to string, subject string, htmlBody string) error {
	index := len(m.sent)
	m.sent = append(m.sent, recordedEmail{To: to, Subject: subject, Body: htmlBody})
	if m.failOn[index] {
		return errors.New("transport failure")
	}
	return nil
}

func namedPrayerRequest() models.PrayerRequest {
	name := "Jo"
	email := "jo@x.com"
	return models.PrayerRequest{
		ID:         1,
		Name:       &name,
		Email:      &email,
		Request:    "Please pray",
		Category:   "general",
		Language:   "en",
		Created_At: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func anonymousPrayerRequest() models.PrayerRequest {
	return models.PrayerRequest{
		ID:           2,
		Request:      "Please pray for healing",
		Category:     "health",
		Is_Anonymous: true,
		Language:     "ar",
		Created_At:   time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func sampleContactSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		ID:         1,
		Name:       "A",
		Email:      "a@b.com",
		Subject:    "Question about services",
		Message:    "When do you meet?",
		Language:   "en",
		Created_At: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestRenderPrayerAdminEmail(t *testing.T) {
	subject, body := renderPrayerAdminEmail(namedPrayerRequest())

	assert.Equal(t, "New Prayer Request - General", subject)
	assert.Contains(t, body, "New Prayer Request Received")
	assert.Contains(t, body, "Jo")
	assert.Contains(t, body, "jo@x.com")
	assert.Contains(t, body, "English")
	assert.Contains(t, body, "Please pray")
	assert.Contains(t, body, "March 14, 2025 at 09:30 AM UTC")
	assert.NotContains(t, body, "Anonymous Request")
}

func TestRenderPrayerAdminEmailAnonymous(t *testing.T) {
	subject, body := renderPrayerAdminEmail(anonymousPrayerRequest())

	assert.Equal(t, "New Prayer Request - Health", subject)
	assert.Contains(t, body, "Anonymous Request")
	assert.Contains(t, body, "Arabic")
	assert.NotContains(t, body, "Name:")
	assert.NotContains(t, body, "Email:")
}

func TestRenderPrayerConfirmationEmail(t *testing.T) {
	subject, body := renderPrayerConfirmationEmail(namedPrayerRequest())

	assert.Equal(t, "Prayer Request Received - ChatAT", subject)
	assert.Contains(t, body, "Dear Jo,")
	assert.Contains(t, body, "<strong>Your prayer request category:</strong> General")
	assert.Contains(t, body, "Philippians 4:6-7")
	assert.Contains(t, body, "Submitted on March 14, 2025 at 09:30 AM UTC")
}

func TestRenderContactAdminEmail(t *testing.T) {
	subject, body := renderContactAdminEmail(sampleContactSubmission())

	assert.Equal(t, "New Contact: Question about services", subject)
	assert.Contains(t, body, "New Contact Message")
	assert.Contains(t, body, "A")
	assert.Contains(t, body, "a@b.com")
	assert.Contains(t, body, "Question about services")
	assert.Contains(t, body, "English")
	assert.Contains(t, body, "When do you meet?")
}

func TestRenderContactConfirmationEmail(t *testing.T) {
	subject, body := renderContactConfirmationEmail(sampleContactSubmission())

	assert.Equal(t, "Message Received - ChatAT", subject)
	assert.Contains(t, body, "Dear A,")
	assert.Contains(t, body, "<strong>Your message subject:</strong> Question about services")
	assert.Contains(t, body, "within 24 hours")
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", languageName("en"))
	assert.Equal(t, "Arabic", languageName("ar"))
	assert.Equal(t, "Arabic", languageName(""))
}

func TestSendPrayerRequestNotification(t *testing.T) {
	mailer := &fakeMailer{}
	service := NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin")

	ok := service.SendPrayerRequestNotification(namedPrayerRequest())

	assert.True(t, ok)
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "admin@chatat.org", mailer.sent[0].To)
	assert.Equal(t, "jo@x.com", mailer.sent[1].To)
}

func TestSendPrayerRequestNotificationAnonymous(t *testing.T) {
	mailer := &fakeMailer{}
	service := NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin")

	ok := service.SendPrayerRequestNotification(anonymousPrayerRequest())

	assert.True(t, ok)
	// no confirmation without a submitter email
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, "admin@chatat.org", mailer.sent[0].To)
}

func TestSendPrayerRequestNotificationAdminFailureStillSendsConfirmation(t *testing.T) {
	mailer := &fakeMailer{failOn: map[int]bool{0: true}}
	service := NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin")

	ok := service.SendPrayerRequestNotification(namedPrayerRequest())

	assert.False(t, ok)
	assert.Len(t, mailer.sent, 2)
}

func TestSendContactNotification(t *testing.T) {
	mailer := &fakeMailer{}
	service := NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin")

	ok := service.SendContactNotification(sampleContactSubmission())

	assert.True(t, ok)
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "admin@chatat.org", mailer.sent[0].To)
	assert.Equal(t, "a@b.com", mailer.sent[1].To)
}

func TestSendContactNotificationAllFailures(t *testing.T) {
	mailer := &fakeMailer{failOn: map[int]bool{0: true, 1: true}}
	service := NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin")

	ok := service.SendContactNotification(sampleContactSubmission())

	assert.False(t, ok)
	// both attempts were made despite the first failing
	assert.Len(t, mailer.sent, 2)
}
