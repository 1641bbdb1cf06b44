package utils

import (
	"fmt"
	"log"

	"lms/config"
	courseModels "lms/models/course"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SendGridApiKey == "" {
		log.Printf("[EMAIL] SENDGRID_API_KEY not set, skipping email to %s", to)
		return nil
	}

	from := mail.NewEmail("LMS", cfg.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendGridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] SendGrid returned %d for %s", resp.StatusCode, to)
		return fmt.Errorf("sendgrid status %d", resp.StatusCode)
	}
	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A3C5E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A3C5E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LMS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				You are receiving this email because of activity on your learning account.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendCertificateEmail notifies a learner that their certificate was issued.
func SendCertificateEmail(email, name string, certificate *courseModels.Certificate) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You completed your course and your certificate has been issued.</p>
		<p>Certificate number: <b>%s</b></p>
		<p>You can download it at: %s</p>
	`, name, certificate.CertificateNumber, certificate.DownloadURL)

	if err := SendEmail(email, "Your certificate is ready", getEmailTemplate("Certificate Issued", body)); err != nil {
		log.Printf("[EMAIL] Failed to send certificate email to %s: %v", email, err)
	}
}
