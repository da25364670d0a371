package audit

import "time"

// Entry is an append-only audit log row. Entries are never mutated or deleted;
// Detail carries a serialized JSON payload whose shape depends on Action.
type Entry struct {
	ID        int64
	UserID    int64 // the actor performing the audited action
	Action    string
	Detail    string
	CreatedAt time.Time
}
