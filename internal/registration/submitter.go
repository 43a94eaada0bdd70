// Package registration gates a submitted form on the rules checkbox and
// forwards it as one row to the external row store.
package registration

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/event-registration/internal/model"
)

// DefaultTimeout bounds a single append when none is configured.
const DefaultTimeout = 5 * time.Second

// RowAppender is the row store's only capability: append one row of
// ordered fields.  Implementations must not retry on their own.
type RowAppender interface {
	AppendRow(ctx context.Context, fields []string) error
}

// RowAppenderFunc adapts a function to RowAppender.
type RowAppenderFunc func(ctx context.Context, fields []string) error

func (f RowAppenderFunc) AppendRow(ctx context.Context, fields []string) error { return f(ctx, fields) }

// Notifier is told about every registration that reached the row store.
type Notifier interface {
	RegistrationSubmitted(ctx context.Context, sessionID string, r model.Registration) error
}

// Submitter validates and forwards registrations.  It keeps no state
// between calls: submitting the same record twice appends two rows.
type Submitter struct {
	store    RowAppender
	timeout  time.Duration
	notifier Notifier
}

// Option customises a Submitter.
type Option func(*Submitter)

// WithTimeout bounds each append call and the wait for the notifier.
// Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Submitter) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithNotifier registers n to be called after each successful append.
func WithNotifier(n Notifier) Option {
	return func(s *Submitter) { s.notifier = n }
}

// NewSubmitter returns a submitter writing to store.
func NewSubmitter(store RowAppender, opts ...Option) *Submitter {
	if store == nil {
		panic("nil row store passed to NewSubmitter")
	}
	s := &Submitter{store: store, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit appends r as one row when rulesAccepted is true.  It returns
// ErrRulesNotAccepted without touching the store when the rules were not
// accepted, and a *StoreError when the append fails or times out.
func (s *Submitter) Submit(ctx context.Context, r model.Registration, rulesAccepted bool) error {
	return s.SubmitFor(ctx, "", r, rulesAccepted)
}

// SubmitFor is Submit with the id of the session the form came from, which
// is passed on to the notifier.
func (s *Submitter) SubmitFor(ctx context.Context, sessionID string, r model.Registration, rulesAccepted bool) error {
	if !rulesAccepted {
		return ErrRulesNotAccepted
	}

	actx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.store.AppendRow(actx, r.Row()); err != nil {
		return &StoreError{Op: "append", Err: err}
	}

	if s.notifier != nil {
		s.notify(ctx, sessionID, r)
	}
	return nil
}

// notify waits at most s.timeout for the notifier.  A notifier that
// ignores its context is left to finish in the background.
func (s *Submitter) notify(ctx context.Context, sessionID string, r model.Registration) {
	nctx, cancel := context.WithTimeout(ctx, s.timeout)
	done := make(chan error, 1)
	go func() {
		defer cancel()
		done <- s.notifier.RegistrationSubmitted(nctx, sessionID, r)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("registration: notify failed for event %q: %v", r.EventName, err)
		}
	case <-nctx.Done():
		log.Printf("registration: notify for event %q abandoned: %v", r.EventName, nctx.Err())
	}
}
