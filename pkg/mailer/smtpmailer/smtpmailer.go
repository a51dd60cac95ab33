// Package smtpmailer delivers email over SMTP with optional STARTTLS and PLAIN
// authentication.
package smtpmailer

import (
	"bytes"
	"catconnect/pkg/domain"
	"catconnect/pkg/mailer"
	"catconnect/pkg/serrors"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var _ mailer.Mailer = (*Mailer)(nil)

// Options configures the SMTP relay.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	StartTLS bool
	// Timeout bounds the whole SMTP conversation. Defaults to 30s.
	Timeout time.Duration
}

type Mailer struct {
	opts Options
	now  func() time.Time
}

func New(opts Options) *Mailer {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	return &Mailer{opts: opts, now: time.Now}
}

// Send delivers email. 5xx replies from the server are permanent and wrapped
// in serrors.ErrBadRequest; everything else is returned as is so it can be retried.
func (m *Mailer) Send(ctx context.Context, email domain.Email) error {
	if _, err := mail.ParseAddress(email.To); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid recipient %q", email.To)
	}

	msg, err := BuildMessage(m.from(), email, m.now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
	defer cancel()

	if err := m.deliver(ctx, email.To, msg); err != nil {
		var tpErr *textproto.Error
		if errors.As(err, &tpErr) && tpErr.Code >= 500 {
			return serrors.Wrap(serrors.ErrBadRequest, err, "smtp rejected message")
		}

		return err
	}

	return nil
}

func (m *Mailer) from() mail.Address {
	return mail.Address{Name: m.opts.FromName, Address: m.opts.From}
}

func (m *Mailer) deliver(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.opts.Host, strconv.Itoa(m.opts.Port))

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("could not connect to smtp server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.opts.Host)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if m.opts.StartTLS {
		if err := client.StartTLS(&tls.Config{ServerName: m.opts.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("could not start tls: %w", err)
		}
	}

	if m.opts.Username != "" {
		auth := smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp authentication failed: %w", err)
		}
	}

	if err := client.Mail(m.opts.From); err != nil {
		return fmt.Errorf("could not set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("could not set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("could not start message: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("could not write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not finish message: %w", err)
	}

	// the message is accepted at this point
	_ = client.Quit()

	return nil
}

// BuildMessage renders an RFC 5322 message. When both text and HTML bodies
// are present a multipart/alternative message is produced.
func BuildMessage(from mail.Address, email domain.Email, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	header := func(k, v string) { buf.WriteString(k + ": " + v + "\r\n") }
	header("From", from.String())
	header("To", email.To)
	header("Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("Message-ID", "<"+uuid.NewString()+"@catconnect>")
	header("MIME-Version", "1.0")

	if email.HTML == "" {
		header("Content-Type", "text/plain; charset=UTF-8")
		header("Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQP(&buf, email.Text); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	boundary := "alt-" + uuid.NewString()
	header("Content-Type", `multipart/alternative; boundary="`+boundary+`"`)
	buf.WriteString("\r\n")

	for _, part := range []struct{ contentType, body string }{
		{"text/plain; charset=UTF-8", email.Text},
		{"text/html; charset=UTF-8", email.HTML},
	} {
		buf.WriteString("--" + boundary + "\r\n")
		header("Content-Type", part.contentType)
		header("Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQP(&buf, part.body); err != nil {
			return nil, err
		}
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes(), nil
}

func writeQP(buf *bytes.Buffer, body string) error {
	w := quotedprintable.NewWriter(buf)
	if _, err := w.Write([]byte(body)); err != nil {
		return fmt.Errorf("could not encode body: %w", err)
	}

	return w.Close()
}
