package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"soluciones-site/api/pkg/clients/emailjs"
)

// Config holds the fixed EmailJS identifiers for the two sends. Injected
// into the workflow so tests can run against a fake transport without
// touching process-wide state.
type Config struct {
	ServiceID              string
	NotificationTemplateID string
	AutoReplyTemplateID    string
	PublicKey              string
}

// StatusKind tags the terminal state of a submission attempt.
type StatusKind string

const (
	// StatusNone means the attempt produced no user-visible outcome.
	// The honeypot drop ends here so bots can't tell it from success.
	StatusNone    StatusKind = "none"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the user-facing result of a submission attempt.
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// Outcome is what a submit attempt leaves behind: the status record and
// the form state after the attempt. Fields are reset to empty strings on
// success and retained on failure so the visitor can resubmit without
// retyping.
type Outcome struct {
	Status Status     `json:"status"`
	Fields FormFields `json:"fields"`
}

// ErrSubmissionInFlight is returned when a submit arrives while another
// one is still in its sending phase. The guard is in the workflow itself
// rather than relying on the frontend disabling its button.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Translator resolves user-facing strings and timestamps per language.
// Satisfied by *i18n.Translator.
type Translator interface {
	Translate(lang, key string) string
	FormatDateTime(lang string, ts time.Time) string
}

// Workflow runs the contact submission sequence: honeypot gate, field
// validation, then two strictly ordered template sends (business
// notification first, visitor autoreply second). The autoreply is never
// attempted when the notification send fails.
type Workflow struct {
	cfg    Config
	mailer emailjs.Client
	tr     Translator
	now    func() time.Time
	busy   atomic.Bool
}

// NewWorkflow creates a submission workflow with the given transport and
// translator.
func NewWorkflow(cfg Config, mailer emailjs.Client, tr Translator) (*Workflow, error) {
	if mailer == nil {
		return nil, fmt.Errorf("workflow: mailer cannot be nil")
	}
	if tr == nil {
		return nil, fmt.Errorf("workflow: translator cannot be nil")
	}
	if cfg.ServiceID == "" || cfg.NotificationTemplateID == "" || cfg.AutoReplyTemplateID == "" {
		return nil, fmt.Errorf("workflow: service and template identifiers must be configured")
	}
	return &Workflow{
		cfg:    cfg,
		mailer: mailer,
		tr:     tr,
		now:    time.Now,
	}, nil
}

// Submit runs one submission attempt and returns its outcome. Validation
// failures and transport failures are outcomes, not errors; the only
// error returned is ErrSubmissionInFlight.
func (w *Workflow) Submit(ctx context.Context, lang string, form FormFields) (*Outcome, error) {
	// Honeypot gate: a filled hidden field means automated traffic.
	// Drop it with no sends and no status so the sender learns nothing.
	if form.Honeypot != "" {
		slog.Debug("dropping automated submission", "honeypot", len(form.Honeypot))
		return &Outcome{Status: Status{Kind: StatusNone}, Fields: form}, nil
	}

	f := form.trimmed()
	if !requiredPresent(f) {
		return w.rejected(lang, "contact.error.required", form), nil
	}
	if !ValidEmail(f.Email) {
		return w.rejected(lang, "contact.error.invalid_email", form), nil
	}

	if !w.busy.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer w.busy.Store(false)

	sentAt := w.tr.FormatDateTime(lang, w.now())

	notification := emailjs.Message{
		ServiceID:  w.cfg.ServiceID,
		TemplateID: w.cfg.NotificationTemplateID,
		UserID:     w.cfg.PublicKey,
		Params: map[string]string{
			"from_name":  f.GivenName + " " + f.FamilyName,
			"from_email": f.Email,
			"reply_to":   f.Email,
			"phone":      f.Phone,
			"company":    f.Company,
			"message":    f.Message,
			"fecha":      sentAt,
		},
	}
	if err := w.mailer.Send(ctx, notification); err != nil {
		slog.Error("notification send failed", "template", w.cfg.NotificationTemplateID, "error", err)
		return w.sendFailed(lang, err, form), nil
	}

	// The autoreply template addresses its recipient from to_email; the
	// provider rejects the send with 422 when it is missing.
	autoreply := emailjs.Message{
		ServiceID:  w.cfg.ServiceID,
		TemplateID: w.cfg.AutoReplyTemplateID,
		UserID:     w.cfg.PublicKey,
		Params: map[string]string{
			"to_name":  f.GivenName,
			"to_email": f.Email,
			"message":  f.Message,
			"reply_to": f.Email,
			"fecha":    sentAt,
		},
	}
	if err := w.mailer.Send(ctx, autoreply); err != nil {
		// The business notification already went out at this point. The
		// visitor sees the same failure message either way; the log keeps
		// the distinction for operators.
		slog.Error("autoreply send failed after notification was delivered",
			"template", w.cfg.AutoReplyTemplateID, "error", err)
		return w.sendFailed(lang, err, form), nil
	}

	return &Outcome{
		Status: Status{Kind: StatusSuccess, Message: w.tr.Translate(lang, "contact.status.success")},
		Fields: FormFields{},
	}, nil
}

// rejected builds the outcome for a validation failure: no sends
// happened, the entered values stay put.
func (w *Workflow) rejected(lang, key string, fields FormFields) *Outcome {
	return &Outcome{
		Status: Status{Kind: StatusError, Message: w.tr.Translate(lang, key)},
		Fields: fields,
	}
}

// sendFailed builds the outcome for a transport failure, picking the
// message by error category. Raw provider detail stays in the logs.
func (w *Workflow) sendFailed(lang string, err error, fields FormFields) *Outcome {
	key := "contact.error.send_failed"
	if classifyTransportError(err) == categoryMissingRecipient {
		key = "contact.error.missing_recipient"
	}
	return &Outcome{
		Status: Status{Kind: StatusError, Message: w.tr.Translate(lang, key)},
		Fields: fields,
	}
}

// errorCategory buckets transport failures for message selection.
type errorCategory int

const (
	// categorySendFailed covers any transport failure without a more
	// specific remediation.
	categorySendFailed errorCategory = iota
	// categoryMissingRecipient is the known misconfiguration where the
	// autoreply template's To field is not bound to the to_email parameter.
	categoryMissingRecipient
)

// classifyTransportError maps a transport error to a category. The
// provider wording it matches on is brittle by nature, which is why the
// rule lives here and nowhere else.
func classifyTransportError(err error) errorCategory {
	var apiErr *emailjs.APIError
	if errors.As(err, &apiErr) &&
		apiErr.StatusCode == http.StatusUnprocessableEntity &&
		strings.Contains(strings.ToLower(apiErr.Text), "recipients address is empty") {
		return categoryMissingRecipient
	}
	return categorySendFailed
}
