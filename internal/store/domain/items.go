package domain

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
)

type DeliveryMode string

const (
	// ModeInstant items carry one shared payload, reusable across unlimited purchases.
	ModeInstant DeliveryMode = "INSTANT"
	// ModeSequential items own an ordered set of single-use inventory units.
	ModeSequential DeliveryMode = "SEQUENTIAL"
)

type Item struct {
	ID          string
	Name        string
	Description string
	Price       int
	Mode        DeliveryMode
	LogoURL     string
	Content     string
}

type InventoryUnit struct {
	ID        string
	ItemID    string
	Content   string
	Delivered bool
	Position  int
}

// ItemSummary is the catalog listing view. Remaining is nil for instant items
// (unlimited supply) and the count of undelivered units for sequential ones.
type ItemSummary struct {
	ID          string
	Name        string
	Description string
	Price       int
	Mode        DeliveryMode
	LogoURL     string
	Remaining   *int
}

type ItemDraft struct {
	Name        string
	Description string
	Price       int
	Mode        DeliveryMode
	LogoURL     string
	Content     string
}

type ItemGetter interface {
	GetItem(ctx context.Context, querier database.Querier, itemID string) (Item, error)
}

type CatalogRepository interface {
	ListItems(ctx context.Context) ([]ItemSummary, error)
	CreateItem(ctx context.Context, draft ItemDraft) (Item, error)
	UpdateItem(ctx context.Context, itemID string, draft ItemDraft) (Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	AddInventoryUnits(ctx context.Context, itemID string, contents []string) ([]InventoryUnit, error)
}
