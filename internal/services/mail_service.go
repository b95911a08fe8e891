package services

import (
	"fmt"
	"net/smtp"
	"regexp"
	"strings"

	"holidays/internal/config"
	"holidays/internal/domain"
	"holidays/internal/utils"
)

var mailAddrRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// MailService relays plaintext messages through the configured SMTP host.
// The back office uses it to send visa details to an enquirer.
type MailService struct {
	RequestID string
	Env       config.Env

	// Send is swapped in tests; nil means smtp.SendMail.
	Send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// SendVisaDetails validates the recipient and relays the message. Subject and
// body arrive already rendered by the caller.
func (s MailService) SendVisaDetails(to, subject, body string) error {
	to = strings.TrimSpace(to)
	if !mailAddrRe.MatchString(to) {
		return domain.ValidationError{Field: "email", Msg: "Enter a valid email."}
	}
	if strings.TrimSpace(body) == "" {
		return domain.ValidationError{Field: "body", Msg: "Required"}
	}
	subject = utils.FirstNonEmpty(subject, "Visa details from "+companyName)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.Env.MailFrom)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", sanitizeHeader(subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	send := s.Send
	if send == nil {
		send = smtp.SendMail
	}
	var auth smtp.Auth
	if s.Env.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.Env.SMTPUser, s.Env.SMTPPass, s.Env.SMTPHost)
	}

	addr := fmt.Sprintf("%s:%d", s.Env.SMTPHost, s.Env.SMTPPort)
	if err := send(addr, auth, s.Env.MailFrom, []string{to}, []byte(msg.String())); err != nil {
		utils.LogEvent(s.RequestID, "mail", "send_failed", fmt.Sprintf("to=%s err=%v", to, err))
		return domain.InternalError{Msg: "could not send email", Err: err}
	}

	utils.LogEvent(s.RequestID, "mail", "sent", "to="+to)
	return nil
}

// sanitizeHeader strips CR/LF so user input cannot inject extra headers.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
