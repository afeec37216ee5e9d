package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/models"
)

// ContactSentStatus is the confirmation shown to the visitor after a
// successful submission
const ContactSentStatus = "Message sent successfully!"

// Notifier delivers a contact message to the site owner
type Notifier interface {
	Notify(ctx context.Context, msg models.ContactMessage) error
}

// ContactService validates contact form submissions and hands them to a
// Notifier
type ContactService struct {
	validate *validator.Validate
	notifier Notifier
	logger   zerolog.Logger
	now      func() time.Time
}

func NewContactService(notifier Notifier) *ContactService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &ContactService{
		validate: validate,
		notifier: notifier,
		logger:   log.With().Str("service", "contact").Logger(),
		now:      time.Now,
	}
}

// Submit validates the form fields and delivers the message. The returned
// message carries the receipt id.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		Message:     strings.TrimSpace(message),
		SubmittedAt: s.now().UTC(),
	}

	if err := s.validate.Struct(msg); err != nil {
		return models.ContactMessage{}, validationError(err)
	}

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("contactId", msg.ID.String()).Msg("Failed to deliver contact message")
		return models.ContactMessage{}, err
	}

	s.logger.Info().Str("contactId", msg.ID.String()).Msg("Contact message delivered")
	return msg, nil
}

// validationError converts the first validator failure into an ApiErr
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewBadRequestError(err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(fe.Field())
	case "email":
		return errs.NewInvalidFieldError(fe.Field(), "must be a valid email address")
	case "max":
		return errs.NewInvalidFieldError(fe.Field(), "must be at most "+fe.Param()+" characters")
	}
	return errs.NewInvalidFieldError(fe.Field(), "failed "+fe.Tag()+" validation")
}
