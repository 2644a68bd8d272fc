package controllers

import (
	"database/sql"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/ChatAT/initializers"
	"github.com/ChatAT/services"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
)

// SetupTestDB creates a mock database and sets it as the global DB for testing
func SetupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	// Create goqu database instance
	goquDB := goqu.New("postgres", db)

	// Store original DB to restore after test
	originalDB := initializers.DB
	initializers.DB = goquDB

	// Return cleanup function
	cleanup := func() {
		db.Close()
		initializers.DB = originalDB
	}

	return db, mock, cleanup
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

// stubMailer records sends and optionally fails every attempt.
type stubMailer struct {
	failAll bool
	sent    []sentEmail
}

func (m *stubMailer) Send(to string, subject string, htmlBody string) error {
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject, Body: htmlBody})
	if m.failAll {
		return errors.New("smtp unavailable")
	}
	return nil
}

// SetupStubEmailService installs an email service backed by a stub mailer
// and returns the mailer plus a cleanup restoring the previous service.
func SetupStubEmailService(failAll bool) (*stubMailer, func()) {
	mailer := &stubMailer{failAll: failAll}
	previous := services.SetEmailService(services.NewEmailService(mailer, "admin@chatat.org", "ChatAT Admin"))
	cleanup := func() {
		services.SetEmailService(previous)
	}
	return mailer, cleanup
}
