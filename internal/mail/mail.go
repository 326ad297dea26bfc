// Package mail is the consumer side of the subscription notification: it
// renders the organizer e-mail and transmits it over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"text/template"
	"time"

	"meetapp/internal/models"
	"meetapp/internal/queue"

	"github.com/jhillyerd/enmime"
)

// SubscriptionMailKey is the task kind for "someone subscribed to your meetup".
const SubscriptionMailKey = "SubscriptionMail"

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// SubscriptionPayload is what the subscription service enqueues.
type SubscriptionPayload struct {
	OrganizerID     int64  `json:"organizer"`
	MeetupTitle     string `json:"meetup"`
	Description     string `json:"description"`
	SubscriberName  string `json:"user"`
	SubscriberEmail string `json:"email"`
}

type OrganizerGetter interface {
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

type Config struct {
	FromName    string
	FromAddress string
}

type Mailer struct {
	log        *slog.Logger
	cfg        Config
	organizers OrganizerGetter
	sender     enmime.Sender
	now        func() time.Time
}

func New(log *slog.Logger, cfg Config, organizers OrganizerGetter, sender enmime.Sender) *Mailer {
	return &Mailer{
		log:        log,
		cfg:        cfg,
		organizers: organizers,
		sender:     sender,
		now:        time.Now,
	}
}

// NewSMTPSender returns a sender for the host:port in addr. Auth is skipped
// when username is empty.
func NewSMTPSender(addr, username, password string) enmime.Sender {
	var auth smtp.Auth
	if username != "" {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		auth = smtp.PlainAuth("", username, password, host)
	}

	return enmime.NewSMTP(addr, auth)
}

type subscriptionView struct {
	OrganizerName   string
	MeetupTitle     string
	Description     string
	SubscriberName  string
	SubscriberEmail string
}

// HandleSubscription is the queue.Handler for SubscriptionMailKey.
func (m *Mailer) HandleSubscription(ctx context.Context, task queue.Task) error {
	const op = "mail.HandleSubscription"

	var payload SubscriptionPayload
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		return fmt.Errorf("%s: decode payload: %w", op, err)
	}

	organizer, err := m.organizers.UserByID(ctx, payload.OrganizerID)
	if err != nil {
		return fmt.Errorf("%s: organizer %d: %w", op, payload.OrganizerID, err)
	}

	var body bytes.Buffer
	err = templates.ExecuteTemplate(&body, "subscription.tmpl", subscriptionView{
		OrganizerName:   organizer.Name,
		MeetupTitle:     payload.MeetupTitle,
		Description:     payload.Description,
		SubscriberName:  payload.SubscriberName,
		SubscriberEmail: payload.SubscriberEmail,
	})
	if err != nil {
		return fmt.Errorf("%s: render template: %w", op, err)
	}

	err = enmime.Builder().
		From(m.cfg.FromName, m.cfg.FromAddress).
		To(organizer.Name, organizer.Email).
		Subject(fmt.Sprintf("New subscription <%s>", payload.MeetupTitle)).
		Date(m.now()).
		Text(body.Bytes()).
		Send(m.sender)
	if err != nil {
		return fmt.Errorf("%s: send: %w", op, err)
	}

	m.log.Info("subscription mail sent",
		slog.String("op", op),
		slog.Int64("organizer_id", organizer.ID),
		slog.String("meetup", payload.MeetupTitle),
	)

	return nil
}
