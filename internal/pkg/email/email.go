package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Service defines the interface for outbound notification email. All sends
// are best-effort: callers log failures and continue, they never fail the
// triggering operation.
type Service interface {
	// SendAdminNotice notifies the admin recipient about a data change.
	SendAdminNotice(entity, action, summary string) error
	// SendApplicationStatusEmail tells an applicant about a review outcome.
	SendApplicationStatusEmail(toEmail, applicantName string, status string, adminNotes string) error
	// SendContactResponseEmail answers a contact inquiry.
	SendContactResponseEmail(toEmail, contactName, originalSubject, responseMessage string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromName   string
	AdminEmail string
}

type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	dialer *gomail.Dialer
}

// NewService creates a new email Service backed by an SMTP server.
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{
		config: config,
		logger: logger,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// configured reports whether outbound mail can be attempted at all.
func (s *serviceImpl) configured() bool {
	return s.config.Password != "" && s.config.Username != ""
}

func (s *serviceImpl) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.Username, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}

// SendAdminNotice sends a change notice to the configured admin recipient.
func (s *serviceImpl) SendAdminNotice(entity, action, summary string) error {
	subject := fmt.Sprintf("[Mtendere Admin] %s %s", entity, action)
	if !s.configured() {
		s.logger.Info().Str("subject", subject).Msg("Email notification skipped (no SMTP configured)")
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Mtendere Education Consult - Admin Notification</h2>
			<p><strong>Time:</strong> %s UTC</p>
			<hr>
			<div style="margin: 20px 0;">%s</div>
			<hr>
			<p style="color: #666; font-size: 12px;">
				This is an automated notification from the Mtendere Education Admin System.
			</p>
		</body>
		</html>
	`, time.Now().UTC().Format("2006-01-02 15:04:05"), htmlEscapeLines(summary))

	if err := s.send(s.config.AdminEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send admin notice: %w", err)
	}

	s.logger.Info().Str("subject", subject).Msg("Notification email sent")
	return nil
}

// statusTemplate holds the fixed subject/message pair for a review outcome.
type statusTemplate struct {
	subject string
	message string
	color   string
}

var statusTemplates = map[string]statusTemplate{
	"approved": {
		subject: "Application Approved - Mtendere Education Consult",
		message: "Congratulations! Your application has been approved.",
		color:   "#28a745",
	},
	"rejected": {
		subject: "Application Update - Mtendere Education Consult",
		message: "Thank you for your application. After careful review, we are unable to proceed at this time.",
		color:   "#dc3545",
	},
	"under_review": {
		subject: "Application Under Review - Mtendere Education Consult",
		message: "Your application is currently under review. We will contact you soon with updates.",
		color:   "#ffc107",
	},
}

// SendApplicationStatusEmail sends a status update to the applicant. Unknown
// statuses fall back to the under_review template.
func (s *serviceImpl) SendApplicationStatusEmail(toEmail, applicantName, status, adminNotes string) error {
	if !s.configured() {
		s.logger.Info().Str("toEmail", toEmail).Str("status", status).Msg("Application status email skipped (no SMTP configured)")
		return nil
	}

	tmpl, ok := statusTemplates[status]
	if !ok {
		tmpl = statusTemplates["under_review"]
	}

	notesBlock := ""
	if adminNotes != "" {
		notesBlock = fmt.Sprintf(`<div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid %s; margin: 20px 0;"><strong>Additional Notes:</strong><br>%s</div>`,
			tmpl.color, htmlEscapeLines(adminNotes))
	}

	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h2 style="color: %s;">Mtendere Education Consult</h2>
				<h3>Application Status Update</h3>

				<p>Dear %s,</p>

				<p>%s</p>

				%s

				<p>If you have any questions, please don't hesitate to contact us.</p>

				<hr style="margin: 30px 0;">
				<p style="color: #666; font-size: 14px;">
					Best regards,<br>
					Mtendere Education Consult Team<br>
					Email: %s
				</p>
			</div>
		</body>
		</html>
	`, tmpl.color, applicantName, tmpl.message, notesBlock, s.config.AdminEmail)

	if err := s.send(toEmail, tmpl.subject, body); err != nil {
		return fmt.Errorf("failed to send application status email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("status", status).Msg("Application status email sent")
	return nil
}

// SendContactResponseEmail sends a response to a contact inquiry.
func (s *serviceImpl) SendContactResponseEmail(toEmail, contactName, originalSubject, responseMessage string) error {
	if !s.configured() {
		s.logger.Info().Str("toEmail", toEmail).Msg("Contact response email skipped (no SMTP configured)")
		return nil
	}

	subject := fmt.Sprintf("Re: %s - Mtendere Education Consult", originalSubject)

	body := fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
				<h2 style="color: #007bff;">Mtendere Education Consult</h2>
				<h3>Thank you for contacting us</h3>

				<p>Dear %s,</p>

				<p>Thank you for your inquiry. Here is our response:</p>

				<div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">%s</div>

				<p>If you have any additional questions, please feel free to reach out to us again.</p>

				<hr style="margin: 30px 0;">
				<p style="color: #666; font-size: 14px;">
					Best regards,<br>
					Mtendere Education Consult Team<br>
					Email: %s
				</p>
			</div>
		</body>
		</html>
	`, contactName, htmlEscapeLines(responseMessage), s.config.AdminEmail)

	if err := s.send(toEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send contact response email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Contact response email sent")
	return nil
}

// htmlEscapeLines converts newlines to <br> for plain-text content embedded
// in HTML bodies.
func htmlEscapeLines(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}
