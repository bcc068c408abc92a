package email

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"tvar-backend/internal/alerts"
	"tvar-backend/internal/config"
)

// AlertMailer sends plain-text alert digests over SMTP.
type AlertMailer struct {
	config config.SMTPConfig
}

func NewAlertMailer(cfg config.SMTPConfig) *AlertMailer {
	return &AlertMailer{config: cfg}
}

// Configured reports whether enough SMTP settings are present to send.
func (m *AlertMailer) Configured() bool {
	return m.config.Host != "" && m.config.FromEmail != "" && m.config.AlertTo != ""
}

func (m *AlertMailer) SendAlertDigest(digest []alerts.Alert) error {
	if !m.Configured() {
		return errors.New("SMTP is not configured")
	}

	subject := fmt.Sprintf("TVAR: %d alerta(s) crítica(s) en la flota", len(digest))
	body := buildDigestBody(digest)

	from := m.config.FromEmail
	if m.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + m.config.AlertTo + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := m.config.Host + ":" + m.config.Port
	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	return smtp.SendMail(addr, auth, m.config.FromEmail, []string{m.config.AlertTo}, []byte(msg.String()))
}

func buildDigestBody(digest []alerts.Alert) string {
	var b strings.Builder
	b.WriteString("Se detectaron las siguientes alertas en la flota:\n\n")
	for _, alert := range digest {
		b.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(alert.Priority), alert.Message))
	}
	b.WriteString("\nEste es un mensaje automático del sistema TVAR.\n")
	return b.String()
}
