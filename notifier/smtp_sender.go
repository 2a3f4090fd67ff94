package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"github.com/achraf-fouad/aura-scents/models"
)

type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender builds a sender from explicit settings; every field but
// from is required.
func NewSMTPSender(host, port, username, password, from string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP host not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP port not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP user not set")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP password not set")
	}
	if from == "" {
		from = username
	}
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}, nil
}

func (s *SMTPSender) SendOrderConfirmation(ctx context.Context, order *models.Order) (SendResult, error) {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	subject := "Votre commande Aura Scents est confirmée"
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p>"+
			"<p>Votre commande <strong>%s</strong> d'un montant de %.2f MAD a été confirmée. "+
			"Elle sera expédiée sous peu et payable à la livraison.</p>"+
			"<p>Merci de votre confiance,<br>L'équipe Aura Scents</p>",
		order.CustomerName, order.ID.String(), order.Total,
	)

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + order.Email + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, s.from, []string{order.Email}, msg); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
