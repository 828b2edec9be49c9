package ticket

import (
	"bytes"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/utils"
)

// NullableID tracks whether a JSON field was present and whether it was null,
// so that `"assigneeId": null` can be told apart from an omitted field.
type NullableID struct {
	Set   bool
	Value *uint
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"required,ticket_priority"`
	Severity    string `json:"severity" binding:"required,ticket_severity"`
	ReporterID  *uint  `json:"reporterId"`
	AssigneeID  *uint  `json:"assigneeId"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Severity:    r.Severity,
		ReporterID:  r.ReporterID,
		AssigneeID:  r.AssigneeID,
	}
}

// UpdateTicketRequest leaves omitted fields untouched. reporterId is not
// accepted.
type UpdateTicketRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" binding:"omitempty,ticket_status"`
	Priority    *string    `json:"priority" binding:"omitempty,ticket_priority"`
	Severity    *string    `json:"severity" binding:"omitempty,ticket_severity"`
	AssigneeID  NullableID `json:"assigneeId" swaggertype:"integer"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Severity:    r.Severity,
	}
	if r.AssigneeID.Set {
		if r.AssigneeID.Value == nil {
			cmd.ClearAssignee = true
		} else {
			cmd.AssigneeID = r.AssigneeID.Value
		}
	}
	return cmd
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	AuthorID   uint   `json:"authorId" binding:"required"`
	AuthorName string `json:"authorName"`
}

func (r *AddCommentRequest) ToCommand(ticketID uint) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID:   ticketID,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
	}
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	reporterID, err := utils.ParseOptionalIDQuery(c, "reporterId")
	if err != nil {
		return usecases.ListTicketsQuery{}, err
	}
	return usecases.ListTicketsQuery{
		Status:     utils.OptionalQuery(c, "status"),
		Priority:   utils.OptionalQuery(c, "priority"),
		ReporterID: reporterID,
	}, nil
}
