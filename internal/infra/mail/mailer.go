// Package mail implements the lifecycle notifier over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"buytrek/config"
	"buytrek/internal/domain/service"
	"buytrek/internal/errors"

	"go.uber.org/fx"
)

// messageTemplate pairs a subject with an HTML body builder for one event.
type messageTemplate struct {
	subject string
	body    func(data map[string]any) string
}

// Subject lines and bodies for every lifecycle event. The data keys are the
// ones the use cases put into dispatch payloads.
var templates = map[service.NotificationEvent]messageTemplate{
	service.EventVerifyRegistration: {
		subject: "Verify your account",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Your verification code is <b>%v</b>. It expires shortly.</p>", data["name"], data["otp"])
		},
	},
	service.EventAccountActivated: {
		subject: "Account activated",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Your account is now active. Happy shopping!</p>", data["name"])
		},
	},
	service.EventPasswordResetOTP: {
		subject: "Password reset requested",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Your password reset code is <b>%v</b>. Ignore this message if you did not request it.</p>", data["name"], data["otp"])
		},
	},
	service.EventPasswordResetComplete: {
		subject: "Password changed",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Your password was changed. Contact support if this was not you.</p>", data["name"])
		},
	},
	service.EventOrderCreated: {
		subject: "Order received",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Your order %v (%v) totals %v. Complete your payment here: <a href=\"%v\">pay now</a>.</p>",
				data["name"], data["orderNo"], data["description"], data["amount"], data["paymentUrl"])
		},
	},
	service.EventOrderPaymentCompleted: {
		subject: "Payment confirmed",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Hello %v,</p><p>Payment of %v for order %v is confirmed. We are preparing your order.</p>",
				data["name"], data["amount"], data["orderNo"])
		},
	},
	service.EventOrderAdminNewOrder: {
		subject: "New paid order",
		body: func(data map[string]any) string {
			return fmt.Sprintf("<p>Order %v (%v) for %v is paid and awaiting packaging.</p>",
				data["orderNo"], data["description"], data["amount"])
		},
	},
	service.EventOrderPackaging: {
		subject: "Order update: packaging",
		body:    statusBody("is being packaged"),
	},
	service.EventOrderPackaged: {
		subject: "Order update: packaged",
		body:    statusBody("has been packaged"),
	},
	service.EventOrderOutForDelivery: {
		subject: "Order update: out for delivery",
		body:    statusBody("is out for delivery"),
	},
	service.EventOrderDelivered: {
		subject: "Order delivered",
		body:    statusBody("has been delivered"),
	},
	service.EventOrderCancelled: {
		subject: "Order cancelled",
		body:    statusBody("has been cancelled"),
	},
}

func statusBody(phrase string) func(data map[string]any) string {
	return func(data map[string]any) string {
		return fmt.Sprintf("<p>Hello %v,</p><p>Your order %v %s.</p>", data["name"], data["orderNo"], phrase)
	}
}

// smtpNotifier implements service.Notifier over SMTP.
type smtpNotifier struct {
	cfg    *config.MailConfig
	logger *slog.Logger
}

// NotifierParams holds dependencies for the notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier is the constructor for smtpNotifier.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	if params.Config == nil || params.Config.Mail == nil {
		return nil, errors.New("mail config must be provided")
	}

	return &smtpNotifier{
		cfg:    params.Config.Mail,
		logger: params.Logger,
	}, nil
}

// Send delivers the event's template to the recipients.
func (n *smtpNotifier) Send(ctx context.Context, event service.NotificationEvent, recipients []string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "notification cancelled before send")
	}

	tmpl, ok := templates[event]
	if !ok {
		return errors.Errorf("no template for event %q", event)
	}

	raw := n.buildRaw(recipients, tmpl.subject, tmpl.body(data))
	addr := n.cfg.Host + ":" + n.cfg.Port
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	// Implicit TLS on port 465, STARTTLS otherwise.
	var err error
	if n.cfg.Port == "465" {
		err = n.sendTLS(addr, auth, recipients, raw)
	} else {
		err = smtp.SendMail(addr, auth, n.cfg.From, recipients, raw)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to send %q mail", event)
	}

	n.logger.Debug("Notification sent", slog.String("event", string(event)), slog.Int("recipients", len(recipients)))

	return nil
}

func (n *smtpNotifier) sendTLS(addr string, auth smtp.Auth, recipients []string, raw []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: n.cfg.Host})
	if err != nil {
		return errors.Wrap(err, "TLS dial failed")
	}

	client, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(n.cfg.From); err != nil {
		return err
	}
	for _, recipient := range recipients {
		if err := client.Rcpt(recipient); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = w.Write(raw)

	return err
}

func (n *smtpNotifier) buildRaw(recipients []string, subject, body string) []byte {
	from := fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.From)

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
