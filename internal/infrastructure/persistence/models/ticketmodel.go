package models

import (
	"ticketdesk/internal/shared/constants"
)

// Timestamps are epoch milliseconds written from the domain entity, so GORM's
// automatic time tracking is disabled.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Severity    string `gorm:"size:20;not null"`
	ReporterID  *uint  `gorm:"index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:false;not null"`

	// Reporter and assignee are unenforced references to app_user.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	AuthorID   uint   `gorm:"not null"`
	AuthorName string `gorm:"size:100"`
	CreatedAt  int64  `gorm:"autoCreateTime:false;not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
