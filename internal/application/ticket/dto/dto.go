package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	Severity         string    `json:"severity"`
	ReporterID       *uint     `json:"reporterId"`
	ReporterUsername string    `json:"reporterUsername,omitempty"`
	AssigneeID       *uint     `json:"assigneeId"`
	AssigneeUsername string    `json:"assigneeUsername,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticketId"`
	Content    string    `json:"content"`
	AuthorID   uint      `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToTicketDTO converts a ticket. usernames maps user IDs to usernames and may
// be nil or incomplete; missing names are left empty.
func ToTicketDTO(t *ticket.Ticket, usernames map[uint]string) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Severity:    t.Severity().String(),
		ReporterID:  t.ReporterID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if id := t.ReporterID(); id != nil {
		d.ReporterUsername = usernames[*id]
	}
	if id := t.AssigneeID(); id != nil {
		d.AssigneeUsername = usernames[*id]
	}
	return d
}

func ToTicketDTOs(tickets []*ticket.Ticket, usernames map[uint]string) []*TicketDTO {
	result := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, ToTicketDTO(t, usernames))
	}
	return result
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		Content:    c.Content(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []*CommentDTO {
	result := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, ToCommentDTO(c))
	}
	return result
}

// ParticipantIDs returns the distinct reporter and assignee IDs of tickets.
func ParticipantIDs(tickets ...*ticket.Ticket) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0)
	add := func(id *uint) {
		if id == nil {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	for _, t := range tickets {
		if t == nil {
			continue
		}
		add(t.ReporterID())
		add(t.AssigneeID())
	}
	return ids
}
