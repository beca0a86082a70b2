package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/gomail.v2"
)

// MailerConfig holds SMTP settings for the outbound mailer.
type MailerConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
}

// NewMailer returns an SMTP-backed Mailer, or a log-only mailer when no host
// is configured so development setups work without a mail server.
func NewMailer(cfg MailerConfig) Mailer {
	if cfg.Host == "" {
		log.Info("SMTP not configured, mail will be logged instead of sent")
		return &logMailer{frontendURL: cfg.FrontendURL}
	}
	return &smtpMailer{
		dialer:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:        cfg.From,
		frontendURL: cfg.FrontendURL,
	}
}

type smtpMailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func (m *smtpMailer) SendVerificationEmail(to, username, token string) error {
	verificationURL := verificationURL(m.frontendURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verifică-ți adresa de email - Cuvinte Banatene")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Bună ziua, %s!</p>
<p>Mulțumim că te-ai înregistrat pe <strong>Cuvinte Banatene</strong>!</p>
<p>Pentru a-ți activa contul și a putea adăuga cuvinte în dicționar, verifică adresa ta de email:</p>
<p><a href="%s">Verifică Email-ul</a></p>
<p>Dacă nu ai creat acest cont, te rugăm să ignori acest email.</p>`,
		username, verificationURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (m *smtpMailer) SendWelcomeEmail(to, username string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Bine ai venit la Cuvinte Banatene!")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Bună ziua, %s!</p>
<p>Contul tău a fost verificat cu succes! Acum poți adăuga și edita cuvinte în dicționar.</p>
<p><a href="%s/admin">Accesează Dicționarul</a></p>
<p>Mulțumim că contribui la păstrarea cuvintelor bănățene!</p>`,
		username, m.frontendURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

// logMailer writes mail to the application log instead of delivering it.
type logMailer struct {
	frontendURL string
}

func (m *logMailer) SendVerificationEmail(to, username, token string) error {
	log.Info("verification email",
		"to", to,
		"username", username,
		"url", verificationURL(m.frontendURL, token),
	)
	return nil
}

func (m *logMailer) SendWelcomeEmail(to, username string) error {
	log.Info("welcome email", "to", to, "username", username)
	return nil
}

func verificationURL(frontendURL, token string) string {
	return fmt.Sprintf("%s/verify-email?token=%s", frontendURL, token)
}
