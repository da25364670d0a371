package audit

import "context"

type AuditRepository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	ListByAction(ctx context.Context, action string, limit int) ([]Entry, error)
}
