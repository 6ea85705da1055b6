package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"subtrack/internal/config"
)

const smtpDialTimeout = 10 * time.Second

// SMTPNotifier emails reminders as plain text
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) NotifyRenewal(ctx context.Context, reminder RenewalReminder) error {
	recipient := strings.TrimSpace(reminder.Email)
	if recipient == "" {
		return ErrNoRecipient
	}

	client, err := n.newClient(ctx)
	if err != nil {
		return fmt.Errorf("connect smtp: %w", err)
	}
	defer client.Close()

	if err := client.Mail(n.cfg.From); err != nil {
		client.Quit()
		return fmt.Errorf("smtp MAIL: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		client.Quit()
		return fmt.Errorf("smtp RCPT: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		client.Quit()
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := wc.Write(buildEmailMessage(n.cfg.From, recipient, reminder)); err != nil {
		_ = wc.Close()
		client.Quit()
		return fmt.Errorf("write message: %w", err)
	}
	if err := wc.Close(); err != nil {
		client.Quit()
		return fmt.Errorf("finish message: %w", err)
	}

	return client.Quit()
}

func (n *SMTPNotifier) newClient(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(n.cfg.Host, fmt.Sprintf("%d", n.cfg.Port))

	dialer := &net.Dialer{Timeout: smtpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: n.cfg.Host}); err != nil {
			client.Close()
			return nil, err
		}
	}

	if strings.TrimSpace(n.cfg.Username) != "" {
		auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return nil, err
		}
	}

	return client, nil
}

func buildEmailMessage(from, to string, reminder RenewalReminder) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", reminder.Subject()))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(reminder.Body(), "\n", "\r\n"))
	return buf.Bytes()
}
