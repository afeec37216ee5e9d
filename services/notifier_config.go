package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/config"
)

// NewNotifierFromConfig logs every submission and then either emails it via
// Resend, when configured, or simulates delivery with CONTACT_DELAY_MS.
func NewNotifierFromConfig(cfg map[string]string) (Notifier, error) {
	logNotifier := LogNotifier{Logger: log.With().Str("notifier", "log").Logger()}

	resend, ok, err := NewResendNotifier(cfg)
	if err != nil {
		return nil, err
	}
	if ok {
		log.Info().Strs("recipients", resend.Recipients).Msg("Contact messages will be emailed via Resend")
		return MultiNotifier{logNotifier, resend}, nil
	}

	delay := config.GetDuration(cfg, "CONTACT_DELAY_MS", time.Millisecond, DefaultSimulatedDelay)
	log.Info().Dur("delay", delay).Msg("Contact delivery is simulated")
	return MultiNotifier{logNotifier, SimulatedNotifier{Delay: delay}}, nil
}
