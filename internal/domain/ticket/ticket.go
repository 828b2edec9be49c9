package ticket

import (
	"fmt"
	"time"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/biztime"
)

// Ticket is a unit of reported work. Status starts at OPEN; reporterID is
// fixed at creation.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	severity    vo.Severity
	reporterID  *uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

// TicketChanges lists the fields an update may overwrite. Nil fields keep
// their current value; ClearAssignee removes the assignee.
type TicketChanges struct {
	Title         *string
	Description   *string
	Status        *vo.TicketStatus
	Priority      *vo.Priority
	Severity      *vo.Severity
	AssigneeID    *uint
	ClearAssignee bool
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	severity vo.Severity,
	reporterID *uint,
	assigneeID *uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		severity:    severity,
		reporterID:  copyID(reporterID),
		assigneeID:  copyID(assigneeID),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage. Enum columns are free text
// in the database, so stored values are accepted as-is.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	severity vo.Severity,
	reporterID *uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		severity:    severity,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Severity() vo.Severity {
	return t.severity
}

func (t *Ticket) ReporterID() *uint {
	return t.reporterID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ApplyChanges validates every supplied field before writing any of them and
// always refreshes updatedAt.
func (t *Ticket) ApplyChanges(c TicketChanges) error {
	if c.Title != nil && len(*c.Title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if c.Status != nil && !c.Status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if c.Priority != nil && !c.Priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if c.Severity != nil && !c.Severity.IsValid() {
		return fmt.Errorf("invalid severity")
	}

	if c.Title != nil {
		t.title = *c.Title
	}
	if c.Description != nil {
		t.description = *c.Description
	}
	if c.Status != nil {
		t.status = *c.Status
	}
	if c.Priority != nil {
		t.priority = *c.Priority
	}
	if c.Severity != nil {
		t.severity = *c.Severity
	}
	switch {
	case c.ClearAssignee:
		t.assigneeID = nil
	case c.AssigneeID != nil:
		t.assigneeID = copyID(c.AssigneeID)
	}

	t.touch()
	return nil
}

// touch keeps updatedAt non-decreasing and never earlier than createdAt.
func (t *Ticket) touch() {
	now := biztime.NowUTC()
	if now.Before(t.updatedAt) {
		now = t.updatedAt
	}
	if now.Before(t.createdAt) {
		now = t.createdAt
	}
	t.updatedAt = now
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
