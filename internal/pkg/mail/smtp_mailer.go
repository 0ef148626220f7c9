package mail

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"time"

	"github.com/stashboxhq/stashpay/internal/pkg/env"
)

// sendTimeout bounds the whole SMTP exchange (dial plus every read/write),
// so a hung mail server can never leak the sending goroutine.
var sendTimeout = 10 * time.Second

// SendMail sends an HTML email via SMTP
func SendMail(to string, subject string, body string) error {
	return send(to, subject, body, "text/html; charset=UTF-8")
}

// SendPlainMail sends a plain-text email via SMTP
func SendPlainMail(to string, subject string, body string) error {
	return send(to, subject, body, "text/plain; charset=UTF-8")
}

func send(to string, subject string, body string, contentType string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			fmt.Sprintf("Content-Type: %s\r\n\r\n", contentType) +
			body,
	)

	err := sendWithDeadline(addr, host, auth, sender, to, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// sendWithDeadline is smtp.SendMail with a dial timeout and a deadline on
// every subsequent read/write.
func sendWithDeadline(addr, host string, auth smtp.Auth, sender, to string, msg []byte) error {
	conn, err := net.DialTimeout("tcp", addr, sendTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(sendTimeout)); err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(sender); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
