package services

import "fmt"

// fakeMailer records outgoing mail for assertions. Each send kind can be
// forced to fail independently.
type fakeMailer struct {
	adminNotices []string
	statusEmails []statusEmailCall
	responses    []responseEmailCall

	adminErr    error
	statusErr   error
	responseErr error
}

type statusEmailCall struct {
	to     string
	name   string
	status string
	notes  string
}

type responseEmailCall struct {
	to      string
	name    string
	subject string
	message string
}

func (m *fakeMailer) SendAdminNotice(entity, action, summary string) error {
	if m.adminErr != nil {
		return m.adminErr
	}
	m.adminNotices = append(m.adminNotices, fmt.Sprintf("%s %s: %s", entity, action, summary))
	return nil
}

func (m *fakeMailer) SendApplicationStatusEmail(toEmail, applicantName string, status string, adminNotes string) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.statusEmails = append(m.statusEmails, statusEmailCall{toEmail, applicantName, status, adminNotes})
	return nil
}

func (m *fakeMailer) SendContactResponseEmail(toEmail, contactName, originalSubject, responseMessage string) error {
	if m.responseErr != nil {
		return m.responseErr
	}
	m.responses = append(m.responses, responseEmailCall{toEmail, contactName, originalSubject, responseMessage})
	return nil
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }
