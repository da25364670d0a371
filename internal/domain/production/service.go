package production

import "context"

type ProductionService interface {
	Create(ctx context.Context, userID int64, req CreateEntryRequest) (EntryResponse, error)
	ListMine(ctx context.Context, userID int64, month, year int) ([]EntryResponse, error)
}
