package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumPayload struct {
	Status   *string `json:"status" validate:"omitempty,ticket_status"`
	Priority string  `json:"priority" validate:"required,ticket_priority"`
	Severity string  `json:"severity" validate:"required,ticket_severity"`
}

func strPtr(s string) *string { return &s }

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(enumPayload{Priority: "HIGH", Severity: "MAJOR"}))
	assert.NoError(t, v.Struct(enumPayload{Status: strPtr("IN_PROGRESS"), Priority: "LOW", Severity: "MINOR"}))

	err := v.Struct(enumPayload{Status: strPtr("DONE"), Priority: "urgent", Severity: "MINOR"})
	require.Error(t, err)

	var fieldErrors validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrors)
	tags := map[string]string{}
	for _, fe := range fieldErrors {
		tags[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{"status": TagTicketStatus, "priority": TagTicketPriority}, tags)
}

func TestRegister_Idempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}
