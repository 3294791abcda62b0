package notification

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"taskdesk/pkg/logger"
)

const (
	maxSendAttempts = 3
	retryBaseDelay  = 2 * time.Second
)

// EmailSender delivers transactional mail over SMTP. Delivery is best
// effort: callers get a bool and decide whether the flow can proceed
// without the notification.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailSender(host string, port int, username, password, from string) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendVerificationCode mails a login access code to the employee.
func (s *EmailSender) SendVerificationCode(email, code string) bool {
	subject := "Your TaskDesk verification code"
	body := fmt.Sprintf(`
		<h2>TaskDesk Login Verification</h2>
		<p>Your verification code is:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>This code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
	`, code)

	return s.send(email, subject, body)
}

// SendAccountSetupLink mails the one-time account setup link to a newly
// created employee.
func (s *EmailSender) SendAccountSetupLink(email, setupLink, employeeName string) bool {
	subject := "Set up your TaskDesk account"
	body := fmt.Sprintf(`
		<h2>Welcome to TaskDesk, %s!</h2>
		<p>An account has been created for you. Click the link below to choose your username and password:</p>
		<p><a href="%s">%s</a></p>
		<p>The link expires in 24 hours.</p>
	`, employeeName, setupLink, setupLink)

	return s.send(email, subject, body)
}

func (s *EmailSender) send(to, subject, htmlBody string) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	var lastErr error
	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if lastErr = s.dialer.DialAndSend(msg); lastErr == nil {
			logger.Info("Email sent: to=%s subject=%q", to, subject)
			return true
		}
		logger.Warn("Email attempt %d/%d failed: to=%s err=%v", attempt, maxSendAttempts, to, lastErr)
		if attempt < maxSendAttempts {
			time.Sleep(time.Duration(attempt) * retryBaseDelay)
		}
	}

	logger.Error("Email delivery failed after %d attempts: to=%s err=%v", maxSendAttempts, to, lastErr)
	return false
}
