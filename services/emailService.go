package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/resend/resend-go/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ChatAT/models"
)

// Mailer delivers a rendered message to a single recipient.
type Mailer interface {
	Send(to string, subject string, htmlBody string) error
}

type resendMailer struct {
	client *resend.Client
	from   string
}

func (m *resendMailer) Send(to string, subject string, htmlBody string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlBody,
	}

	sent, err := m.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Successfully sent email to %s. Email ID: %s", to, sent.Id)
	return nil
}

type EmailService struct {
	mailer     Mailer
	adminEmail string
	adminName  string
}

var emailService *EmailService

// InitEmailService initializes the email service with Resend API
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@chatat.org"
	}

	adminName := os.Getenv("ADMIN_NAME")
	if adminName == "" {
		adminName = "ChatAT Admin"
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = fmt.Sprintf("%s <%s>", adminName, adminEmail)
	}

	emailService = NewEmailService(&resendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}, adminEmail, adminName)

	log.Println("Email service initialized successfully with Resend")
}

// NewEmailService builds a service around an explicit mail transport.
func NewEmailService(mailer Mailer, adminEmail string, adminName string) *EmailService {
	return &EmailService{
		mailer:     mailer,
		adminEmail: adminEmail,
		adminName:  adminName,
	}
}

// GetEmailService returns the singleton email service instance
func GetEmailService() *EmailService {
	return emailService
}

// SetEmailService replaces the singleton and returns the previous value.
// Tests use it to install a stub transport.
func SetEmailService(s *EmailService) *EmailService {
	previous := emailService
	emailService = s
	return previous
}

// SendPrayerRequestNotification sends the admin notification and, for
// non-anonymous requests with an email on file, the submitter
// confirmation. The two sends are independent: a failure of one does not
// prevent the other, and neither failure rolls back the stored record.
// Returns true only if every attempted send succeeded.
func (s *EmailService) SendPrayerRequestNotification(prayerRequest models.PrayerRequest) bool {
	ok := true

	subject, body := renderPrayerAdminEmail(prayerRequest)
	if err := s.mailer.Send(s.adminEmail, subject, body); err != nil {
		log.Printf("Failed to send prayer request notification: %v", err)
		ok = false
	}

	if !prayerRequest.Is_Anonymous && prayerRequest.Email != nil && *prayerRequest.Email != "" {
		subject, body := renderPrayerConfirmationEmail(prayerRequest)
		if err := s.mailer.Send(*prayerRequest.Email, subject, body); err != nil {
			log.Printf("Failed to send prayer request confirmation: %v", err)
			ok = false
		}
	}

	return ok
}

// SendContactNotification sends the admin notification and the submitter
// confirmation for a contact submission. Same independence contract as
// SendPrayerRequestNotification.
func (s *EmailService) SendContactNotification(contactSubmission models.ContactSubmission) bool {
	ok := true

	subject, body := renderContactAdminEmail(contactSubmission)
	if err := s.mailer.Send(s.adminEmail, subject, body); err != nil {
		log.Printf("Failed to send contact notification: %v", err)
		ok = false
	}

	subject, body = renderContactConfirmationEmail(contactSubmission)
	if err := s.mailer.Send(contactSubmission.Email, subject, body); err != nil {
		log.Printf("Failed to send contact confirmation: %v", err)
		ok = false
	}

	return ok
}

const emailTimeLayout = "January 02, 2006 at 03:04 PM"

// titleCase renders a category or label the way it appears in email copy.
// A fresh Caser per call: cases.Caser is stateful and not safe to share
// across requests.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func languageName(lang string) string {
	if lang == "en" {
		return "English"
	}
	return "Arabic"
}

func renderPrayerAdminEmail(prayerRequest models.PrayerRequest) (string, string) {
	subject := fmt.Sprintf("New Prayer Request - %s", titleCase(prayerRequest.Category))

	var submitterBlock string
	if prayerRequest.Is_Anonymous {
		submitterBlock = `
                <div class="field">
                    <div class="label">Submission Type:</div>
                    <div class="value anonymous">Anonymous Request</div>
                </div>`
	} else {
		name := ""
		if prayerRequest.Name != nil {
			name = *prayerRequest.Name
		}
		email := ""
		if prayerRequest.Email != nil {
			email = *prayerRequest.Email
		}
		submitterBlock = fmt.Sprintf(`
                <div class="field">
                    <div class="label">Name:</div>
                    <div class="value">%s</div>
                </div>
                <div class="field">
                    <div class="label">Email:</div>
                    <div class="value">%s</div>
                </div>`, name, email)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; padding: 10px; background: white; border-radius: 4px; border-left: 4px solid #667eea; }
        .anonymous { color: #e74c3c; font-style: italic; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Prayer Request Received</h2>
            <p>%s</p>
        </div>
        <div class="content">%s

            <div class="field">
                <div class="label">Category:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Language:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Prayer Request:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Submitted:</div>
                <div class="value">%s</div>
            </div>
        </div>
    </div>
</body>
</html>
`,
		time.Now().Format(emailTimeLayout),
		submitterBlock,
		titleCase(prayerRequest.Category),
		languageName(prayerRequest.Language),
		prayerRequest.Request,
		prayerRequest.Created_At.Format(emailTimeLayout+" UTC"),
	)

	return subject, body
}

func renderPrayerConfirmationEmail(prayerRequest models.PrayerRequest) (string, string) {
	subject := "Prayer Request Received - ChatAT"

	name := ""
	if prayerRequest.Name != nil {
		name = *prayerRequest.Name
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
        .message { background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #667eea; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 14px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Prayer Request Received</h2>
            <p>Thank you for sharing your heart with us</p>
        </div>
        <div class="content">
            <div class="message">
                <p>Dear %s,</p>

                <p>We have received your prayer request and want you to know that you are not alone. Our community believes in the power of prayer and we are honored that you've shared your needs with us.</p>

                <p><strong>Your prayer request category:</strong> %s</p>

                <p>We will be praying for you and your situation. Remember that God hears every prayer and cares deeply about what concerns you.</p>

                <p><em>"Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God. And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus." - Philippians 4:6-7</em></p>

                <p>If you need immediate support or have additional prayer requests, please don't hesitate to reach out to us.</p>

                <p>Blessings and peace,<br>
                The ChatAT Community</p>
            </div>

            <div class="footer">
                <p>This is an automated confirmation. If you have questions, please contact us through our website.</p>
                <p>Submitted on %s</p>
            </div>
        </div>
    </div>
</body>
</html>
`,
		name,
		titleCase(prayerRequest.Category),
		prayerRequest.Created_At.Format(emailTimeLayout+" UTC"),
	)

	return subject, body
}

func renderContactAdminEmail(contactSubmission models.ContactSubmission) (string, string) {
	subject := fmt.Sprintf("New Contact: %s", contactSubmission.Subject)

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #20b2aa 0%%, #2e8b57 100%%); color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; padding: 10px; background: white; border-radius: 4px; border-left: 4px solid #20b2aa; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Contact Message</h2>
            <p>%s</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Email:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Subject:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Language:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Message:</div>
                <div class="value">%s</div>
            </div>

            <div class="field">
                <div class="label">Submitted:</div>
                <div class="value">%s</div>
            </div>
        </div>
    </div>
</body>
</html>
`,
		time.Now().Format(emailTimeLayout),
		contactSubmission.Name,
		contactSubmission.Email,
		contactSubmission.Subject,
		languageName(contactSubmission.Language),
		contactSubmission.Message,
		contactSubmission.Created_At.Format(emailTimeLayout+" UTC"),
	)

	return subject, body
}

func renderContactConfirmationEmail(contactSubmission models.ContactSubmission) (string, string) {
	subject := "Message Received - ChatAT"

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #20b2aa 0%%, #2e8b57 100%%); color: white; padding: 20px; border-radius: 8px 8px 0 0; text-align: center; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
        .message { background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #20b2aa; }
        .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 14px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>Message Received</h2>
            <p>Thank you for reaching out to us</p>
        </div>
        <div class="content">
            <div class="message">
                <p>Dear %s,</p>

                <p>Thank you for contacting ChatAT. We have received your message and appreciate you taking the time to reach out to us.</p>

                <p><strong>Your message subject:</strong> %s</p>

                <p>We typically respond to messages within 24 hours during business days. If your inquiry is urgent, please don't hesitate to follow up with us.</p>

                <p>We value your connection with our community and look forward to assisting you.</p>

                <p>Blessings,<br>
                The ChatAT Team</p>
            </div>

            <div class="footer">
                <p>This is an automated confirmation. We will respond to your message soon.</p>
                <p>Submitted on %s</p>
            </div>
        </div>
    </div>
</body>
</html>
`,
		contactSubmission.Name,
		contactSubmission.Subject,
		contactSubmission.Created_At.Format(emailTimeLayout+" UTC"),
	)

	return subject, body
}
