package domain

import (
	"context"
	"time"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
)

// PurchaseRecord snapshots what was charged and delivered at settlement time.
// It is immutable: later catalog edits must not change recorded history.
type PurchaseRecord struct {
	ID        string
	AccountID string
	ItemID    string
	ItemName  string
	Content   string
	Price     int
	CreatedAt time.Time
}

type BalanceLocker interface {
	LockAndGetBalance(ctx context.Context, querier database.Querier, accountID string) (int, error)
}

// ContentAllocator decides which unit of content satisfies a purchase. It runs
// inside the settlement transaction and never opens its own.
type ContentAllocator interface {
	Allocate(ctx context.Context, executor database.QueryExecuter, item Item) (string, error)
}

type PurchaseSettler interface {
	SettlePurchase(ctx context.Context, executor database.QueryExecuter, accountID string, item Item, content string) (PurchaseRecord, error)
}

type PurchaseHistoryFetcher interface {
	FetchPurchaseHistory(ctx context.Context, accountID string) ([]PurchaseRecord, error)
	CountPurchases(ctx context.Context, accountID string) (int, error)
}
