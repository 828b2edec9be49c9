package usecases

import (
	"context"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/logger"
)

// resolveUsernames maps participant IDs to usernames. Lookup failures are
// logged and yield no names; reporter and assignee are unenforced references.
func resolveUsernames(ctx context.Context, users UserLookup, log logger.Interface, tickets ...*ticket.Ticket) map[uint]string {
	ids := dto.ParticipantIDs(tickets...)
	if len(ids) == 0 || users == nil {
		return nil
	}

	found, err := users.GetByIDs(ctx, ids)
	if err != nil {
		log.Warnw("failed to resolve ticket participants", "user_ids", ids, "error", err)
		return nil
	}

	names := make(map[uint]string, len(found))
	for _, u := range found {
		names[u.ID()] = u.Username()
	}
	return names
}
