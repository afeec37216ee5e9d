package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

func TestSimulatedNotifierWaits(t *testing.T) {
	n := SimulatedNotifier{Delay: 20 * time.Millisecond}
	start := time.Now()
	if err := n.Notify(context.Background(), models.ContactMessage{}); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Notify() returned after %v, want at least 20ms", elapsed)
	}
}

func TestSimulatedNotifierCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SimulatedNotifier{Delay: time.Hour}.Notify(ctx, models.ContactMessage{})
	if !errs.IsRequestTimeoutError(err) {
		t.Errorf("Notify() error = %v, want request timeout", err)
	}
}

func TestSimulatedNotifierZeroDelay(t *testing.T) {
	if err := (SimulatedNotifier{}).Notify(context.Background(), models.ContactMessage{}); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
}

type countingNotifier struct {
	calls atomic.Int32
	err   error
}

func (c *countingNotifier) Notify(context.Context, models.ContactMessage) error {
	c.calls.Add(1)
	return c.err
}

func TestMultiNotifierRunsAll(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	a := &countingNotifier{err: first}
	b := &countingNotifier{}
	c := &countingNotifier{err: second}

	err := MultiNotifier{a, b, c}.Notify(context.Background(), models.ContactMessage{})
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Errorf("Notify() error = %v, want both failures", err)
	}
	for i, n := range []*countingNotifier{a, b, c} {
		if n.calls.Load() != 1 {
			t.Errorf("notifier %d called %d times", i, n.calls.Load())
		}
	}
}

func TestMultiNotifierSingleFailureKeepsType(t *testing.T) {
	failure := errs.NewDeliveryError("resend", errors.New("down"))
	err := MultiNotifier{LogNotifier{Logger: zerolog.Nop()}, &countingNotifier{err: failure}}.
		Notify(context.Background(), models.ContactMessage{})

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) || apiErr != failure {
		t.Errorf("Notify() error = %v, want the original ApiErr", err)
	}
}

func TestMultiNotifierEmpty(t *testing.T) {
	if err := (MultiNotifier{}).Notify(context.Background(), models.ContactMessage{}); err != nil {
		t.Errorf("Notify() error = %v", err)
	}
}

func TestNewNotifierFromConfig(t *testing.T) {
	n, err := NewNotifierFromConfig(map[string]string{"CONTACT_DELAY_MS": "0"})
	if err != nil {
		t.Fatalf("NewNotifierFromConfig() error = %v", err)
	}
	multi, ok := n.(MultiNotifier)
	if !ok || len(multi) != 2 {
		t.Fatalf("notifier = %#v, want a two-element MultiNotifier", n)
	}
	if sim, ok := multi[1].(SimulatedNotifier); !ok || sim.Delay != 0 {
		t.Errorf("delivery notifier = %#v, want SimulatedNotifier with no delay", multi[1])
	}

	n, err = NewNotifierFromConfig(map[string]string{
		"RESEND_API_KEY":     "re_test",
		"RESEND_FROM_EMAIL":  "Site <site@example.com>",
		"CONTACT_RECIPIENTS": "me@example.com",
	})
	if err != nil {
		t.Fatalf("NewNotifierFromConfig() error = %v", err)
	}
	if _, ok := n.(MultiNotifier)[1].(*ResendNotifier); !ok {
		t.Errorf("delivery notifier = %#v, want *ResendNotifier", n.(MultiNotifier)[1])
	}

	if _, err := NewNotifierFromConfig(map[string]string{"RESEND_API_KEY": "re_test"}); !errs.IsConfigInvalidError(err) {
		t.Errorf("missing sender error = %v, want config invalid", err)
	}
}
