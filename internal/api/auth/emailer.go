package auth

import (
	"errors"
	"fmt"
	"net/smtp"

	"prompt-vault/config"
)

var errSMTPNotConfigured = errors.New("smtp not configured")

func sendMail(to, subject, body string) error {
	if config.SMTP_HOST == "" || config.SMTP_FROM == "" {
		return errSMTPNotConfigured
	}

	auth := smtp.PlainAuth("", config.SMTP_FROM, config.SMTP_PASSWORD, config.SMTP_HOST)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + config.SMTP_FROM + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, config.SMTP_FROM, []string{to}, message)
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.APP_BASE_URL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

func SendPasswordResetEmail(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", config.APP_BASE_URL, token)
	body := fmt.Sprintf("Use the following link to reset your password. It expires in one hour.\n\n%s", link)
	return sendMail(to, "Reset Your Password", body)
}
