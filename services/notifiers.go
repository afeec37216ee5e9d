package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

// DefaultSimulatedDelay matches the pause the site's form has always shown
// before confirming
const DefaultSimulatedDelay = 1500 * time.Millisecond

// SimulatedNotifier pretends to deliver a message by waiting Delay. It never
// contacts a backend.
type SimulatedNotifier struct {
	Delay time.Duration
}

func (n SimulatedNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	if n.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(n.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errs.NewRequestTimeoutError("contact delivery", ctx.Err())
	}
}

// LogNotifier records the submission in the application log
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	n.Logger.Info().
		Str("contactId", msg.ID.String()).
		Str("name", msg.Name).
		Str("email", msg.Email).
		Int("messageLength", len(msg.Message)).
		Msg("Contact form submitted")
	return nil
}

// MultiNotifier delivers to every notifier concurrently. All notifiers run
// to completion; their errors are joined.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, msg models.ContactMessage) error {
	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures []error
	)

	for _, n := range m {
		g.Go(func() error {
			if err := n.Notify(ctx, msg); err != nil {
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	}
	return errors.Join(failures...)
}
