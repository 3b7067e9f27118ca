package contact

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultSMTPTimeout = 15 * time.Second

// Relay delivers a contact message to the site owner.
type Relay interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
	Timeout  time.Duration
}

func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.To != ""
}

type SMTPRelay struct {
	cfg  SMTPConfig
	dial func(ctx context.Context, network, addr string) (net.Conn, error)
}

func NewSMTPRelay(cfg SMTPConfig) (*SMTPRelay, error) {
	if !cfg.Configured() {
		return nil, errors.New("SMTP credentials not configured")
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSMTPTimeout
	}
	return &SMTPRelay{cfg: cfg, dial: (&net.Dialer{}).DialContext}, nil
}

// Send delivers msg in one SMTP session. The session is bounded by the
// relay timeout and torn down as soon as ctx is done.
func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	addr := net.JoinHostPort(r.cfg.Host, r.cfg.Port)
	if err := r.send(ctx, addr, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		} else if errors.Is(err, os.ErrDeadlineExceeded) {
			err = context.DeadlineExceeded
		}
		return fmt.Errorf("failed to send mail via %s: %w", addr, err)
	}
	return nil
}

func (r *SMTPRelay) send(ctx context.Context, addr string, msg Message) error {
	conn, err := r.dial(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, r.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: r.cfg.Host}); err != nil {
			return err
		}
	}
	if ok, _ := c.Extension("AUTH"); ok {
		if err := c.Auth(smtp.PlainAuth("", r.cfg.Username, r.cfg.Password, r.cfg.Host)); err != nil {
			return err
		}
	}
	if err := c.Mail(r.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(r.cfg.To); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(r.compose(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (r *SMTPRelay) compose(msg Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + headerValue(r.cfg.To) + "\r\n")
	b.WriteString("From: " + headerValue(r.cfg.From) + "\r\n")
	b.WriteString("Reply-To: " + headerValue(msg.Email) + "\r\n")
	b.WriteString("Subject: " + headerValue("Portfolio Contact: "+msg.Subject) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(Body(msg), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// headerValue drops CR and LF so submitted values cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// Body is the plain-text rendering shared by the relay and the mailto fallback.
func Body(msg Message) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nType: %s\nNewsletter: %s\n\nMessage:\n%s",
		msg.Name, msg.Email, msg.Type, yesNo(msg.Newsletter), msg.Message)
}

// MailtoURL builds a prefilled mail-client link addressed to to.
func MailtoURL(to string, msg Message) string {
	return "mailto:" + to +
		"?subject=" + componentEscape(msg.Subject) +
		"&body=" + componentEscape(Body(msg))
}

// componentEscape percent-encodes like a URI component; spaces become %20
// since mail clients do not decode '+'.
func componentEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
