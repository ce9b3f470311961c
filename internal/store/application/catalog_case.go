package application

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

type CatalogCase struct {
	catalog domain.CatalogRepository
}

func NewCatalogCase(catalog domain.CatalogRepository) *CatalogCase {
	return &CatalogCase{
		catalog: catalog,
	}
}

func (cc *CatalogCase) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	return cc.catalog.ListItems(ctx)
}

func (cc *CatalogCase) CreateItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error) {
	err := validateDraft(draft)
	if err != nil {
		return domain.Item{}, err
	}

	return cc.catalog.CreateItem(ctx, draft)
}

func (cc *CatalogCase) UpdateItem(ctx context.Context, itemID string, draft domain.ItemDraft) (domain.Item, error) {
	err := validateDraft(draft)
	if err != nil {
		return domain.Item{}, err
	}

	return cc.catalog.UpdateItem(ctx, itemID, draft)
}

func (cc *CatalogCase) DeleteItem(ctx context.Context, itemID string) error {
	return cc.catalog.DeleteItem(ctx, itemID)
}

func (cc *CatalogCase) AddInventoryUnits(ctx context.Context, itemID string, contents []string) ([]domain.InventoryUnit, error) {
	if len(contents) == 0 {
		return nil, &domain.InvalidArgumentsError{Msg: "at least one inventory unit is required"}
	}

	for _, content := range contents {
		if content == "" {
			return nil, &domain.InvalidArgumentsError{Msg: "inventory unit content must not be empty"}
		}
	}

	return cc.catalog.AddInventoryUnits(ctx, itemID, contents)
}

func validateDraft(draft domain.ItemDraft) error {
	if draft.Name == "" {
		return &domain.InvalidArgumentsError{Msg: "item name must not be empty"}
	}

	if draft.Price <= 0 {
		return &domain.InvalidArgumentsError{Msg: "item price must be positive"}
	}

	switch draft.Mode {
	case domain.ModeInstant:
		if draft.Content == "" {
			return &domain.InvalidArgumentsError{Msg: "instant items require a content payload"}
		}
	case domain.ModeSequential:
	default:
		return &domain.InvalidArgumentsError{Msg: "item type must be INSTANT or SEQUENTIAL"}
	}

	return nil
}
