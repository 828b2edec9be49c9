// Package validators registers ticket enum checks on gin's binding engine.
package validators

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/utils"
)

const (
	TagTicketStatus   = "ticket_status"
	TagTicketPriority = "ticket_priority"
	TagTicketSeverity = "ticket_severity"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom tags on gin's default validator. Safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(utils.JSONTagName)

	checks := map[string]validator.Func{
		TagTicketStatus: func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		},
		TagTicketPriority: func(fl validator.FieldLevel) bool {
			return vo.Priority(fl.Field().String()).IsValid()
		},
		TagTicketSeverity: func(fl validator.FieldLevel) bool {
			return vo.Severity(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range checks {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}
