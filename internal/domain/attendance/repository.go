package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	// ListByUserBetween returns a user's records whose timestamps fall inside
	// [startUTC, endUTC], both ends inclusive, ordered by timestamp.
	ListByUserBetween(ctx context.Context, userID int64, startUTC, endUTC time.Time) ([]Attendance, error)
	ListBetween(ctx context.Context, startUTC, endUTC time.Time) ([]Attendance, error)
	// Annul performs the conditional state transition. The UPDATE is guarded by
	// status = 'active' so two concurrent annulment attempts cannot both win;
	// the loser gets ErrAlreadyAnnulled.
	Annul(ctx context.Context, id int64, annulledBy int64, annulledAt time.Time, reason string) error
}
