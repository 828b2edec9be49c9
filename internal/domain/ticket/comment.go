package ticket

import (
	"fmt"
	"time"

	"ticketdesk/internal/shared/biztime"
)

// Comment belongs to exactly one ticket for its whole life.
type Comment struct {
	id         uint
	ticketID   uint
	content    string
	authorID   uint
	authorName string
	createdAt  time.Time
}

func NewComment(
	ticketID uint,
	content string,
	authorID uint,
	authorName string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		ticketID:   ticketID,
		content:    content,
		authorID:   authorID,
		authorName: authorName,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	content string,
	authorID uint,
	authorName string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		content:    content,
		authorID:   authorID,
		authorName: authorName,
		createdAt:  createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
