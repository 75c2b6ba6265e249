// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/oopsskin/oopsskin-backend/internal/config"
	"github.com/oopsskin/oopsskin-backend/internal/models"
)

// NotificationService sends transactional email. When SMTP is not configured
// it logs and drops the message, so checkout works in development.
type NotificationService struct {
	config *config.Config
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

var orderConfirmationTemplate = template.Must(template.New("order_confirmation").Parse(`
<h2>Thank you for your order, {{.CustomerName}}!</h2>
<p>Your order <strong>{{.OrderNumber}}</strong> has been received and is being processed.</p>
<table>
  {{range .Items}}
  <tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>${{printf "%.2f" .Price}}</td></tr>
  {{end}}
</table>
<p>Subtotal: ${{printf "%.2f" .Subtotal}}<br>
Shipping: ${{printf "%.2f" .Shipping}}<br>
<strong>Total: ${{printf "%.2f" .Total}}</strong></p>
<p>Payment method: {{.PaymentMethod}}</p>
<p>You can track your order at {{.TrackingURL}}</p>
`))

func (s *NotificationService) SendOrderConfirmationEmail(order *models.Order) error {
	data := map[string]interface{}{
		"CustomerName":  order.CustomerName,
		"OrderNumber":   order.OrderNumber,
		"Items":         order.Items,
		"Subtotal":      order.Subtotal,
		"Shipping":      order.Shipping,
		"Total":         order.Total,
		"PaymentMethod": order.PaymentMethod,
		"TrackingURL":   fmt.Sprintf("%s/orders/%s", s.config.Frontend.BaseURL, order.OrderNumber),
	}

	var body bytes.Buffer
	if err := orderConfirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Order confirmation - %s", order.OrderNumber)
	return s.sendEmail(order.CustomerEmail, subject, body.String())
}

func (s *NotificationService) sendEmail(to, subject, htmlBody string) error {
	if s.config.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.config.Email.FromName, s.config.Email.FromEmail, to, subject, htmlBody)

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, []byte(msg)); err != nil {
		logrus.WithError(err).WithField("to", to).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
