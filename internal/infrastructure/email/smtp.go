package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailService sends buyer-facing payment emails over SMTP.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendPaymentReceipt(to, orderNo, trackingID string, amount vo.Money) error {
	subject := fmt.Sprintf("Payment Received for Order %s", orderNo)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Received</h2>
			<p>We have received your payment for order <strong>%s</strong>.</p>
			<p>Amount: <strong>%s</strong></p>
			<p>Transaction reference: %s</p>
			<p>Thank you for your purchase.</p>
		</body>
		</html>
	`, orderNo, amount.String(), trackingID)

	plainBody := fmt.Sprintf(`
Payment Received

We have received your payment for order %s.

Amount: %s
Transaction reference: %s

Thank you for your purchase.
	`, orderNo, amount.String(), trackingID)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
