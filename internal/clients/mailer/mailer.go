package mailer

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/attendance/pkg/config"
)

const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

var htmlTag = regexp.MustCompile("<[^>]+>")

type Client struct {
	cfg    config.MailerConfig
	dialer *gomail.Dialer
}

func New(cfg config.MailerConfig) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (c *Client) SendMessage(subject, message string, recipients []string) error {
	err := c.dialer.DialAndSend(c.newMessage(subject, message, recipients))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *Client) newMessage(subject, message string, recipients []string) *gomail.Message {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody(ContentType(message), message)

	return msg
}

// ContentType guesses text/html when the body contains markup.
func ContentType(message string) string {
	if htmlTag.MatchString(message) {
		return ContentTypeHTML
	}

	return ContentTypePlain
}
