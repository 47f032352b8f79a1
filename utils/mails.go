package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail envoie un email via SMTP. Les expéditions sont best-effort:
// l'appelant décide si l'erreur est bloquante.
func SendMail(email string, message []byte) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message); err != nil {
		return fmt.Errorf("error sending mail to %s: %w", email, err)
	}
	return nil
}
