package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type ItemsRepository struct {
	db     database.QueryTxBeginner
	logger logging.Logger
}

func NewItemsRepository(db database.QueryTxBeginner, logger logging.Logger) *ItemsRepository {
	return &ItemsRepository{
		db:     db,
		logger: logger,
	}
}

func (ir *ItemsRepository) GetItem(ctx context.Context, querier database.Querier, itemID string) (domain.Item, error) {
	findItemSQL := `SELECT id, name, COALESCE(description, ''), price, type, COALESCE(logo_url, ''), COALESCE(content, '')
FROM items WHERE id = $1`

	var item domain.Item
	var mode string
	err := querier.QueryRow(ctx, findItemSQL, itemID).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &mode, &item.LogoURL, &item.Content)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %s not found", itemID)}
		}

		return domain.Item{}, fmt.Errorf("failed to find item: %w", err)
	}

	item.Mode = domain.DeliveryMode(mode)
	return item, nil
}

func (ir *ItemsRepository) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	listItemsSQL := `SELECT i.id, i.name, COALESCE(i.description, ''), i.price, i.type, COALESCE(i.logo_url, ''),
       COUNT(u.id) FILTER (WHERE NOT u.delivered)
FROM items i
LEFT JOIN inventory_units u ON u.item_id = i.id
GROUP BY i.id
ORDER BY i.created_at DESC`

	rows, err := ir.db.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ItemSummary, 0)
	for rows.Next() {
		var summary domain.ItemSummary
		var mode string
		var undelivered int
		err = rows.Scan(&summary.ID, &summary.Name, &summary.Description, &summary.Price, &mode, &summary.LogoURL, &undelivered)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		summary.Mode = domain.DeliveryMode(mode)
		if summary.Mode == domain.ModeSequential {
			remaining := undelivered
			summary.Remaining = &remaining
		}

		items = append(items, summary)
	}

	return items, rows.Err()
}

func (ir *ItemsRepository) CreateItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error) {
	item := domain.Item{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Mode:        draft.Mode,
		LogoURL:     draft.LogoURL,
		Content:     draft.Content,
	}

	insertItemSQL := `INSERT INTO items (id, name, description, price, type, logo_url, content)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := ir.db.Exec(ctx, insertItemSQL,
		item.ID, item.Name, item.Description, item.Price, item.Mode, item.LogoURL, item.Content)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}

	return item, nil
}

func (ir *ItemsRepository) UpdateItem(ctx context.Context, itemID string, draft domain.ItemDraft) (domain.Item, error) {
	updateItemSQL := `UPDATE items
SET name = $1, description = $2, price = $3, type = $4, logo_url = $5, content = $6
WHERE id = $7`

	tag, err := ir.db.Exec(ctx, updateItemSQL,
		draft.Name, draft.Description, draft.Price, draft.Mode, draft.LogoURL, draft.Content, itemID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("failed to update item: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %s not found", itemID)}
	}

	return domain.Item{
		ID:          itemID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Mode:        draft.Mode,
		LogoURL:     draft.LogoURL,
		Content:     draft.Content,
	}, nil
}

func (ir *ItemsRepository) DeleteItem(ctx context.Context, itemID string) error {
	deleteItemSQL := `DELETE FROM items WHERE id = $1`

	tag, err := ir.db.Exec(ctx, deleteItemSQL, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %s not found", itemID)}
	}

	return nil
}

// AddInventoryUnits appends units after the item's current highest position.
// The item row is locked first so concurrent appends cannot pick the same
// positions, and so the item is guaranteed to exist for the inserts.
func (ir *ItemsRepository) AddInventoryUnits(ctx context.Context, itemID string, contents []string) ([]domain.InventoryUnit, error) {
	tx, err := ir.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			ir.logger.Error("failed to rollback inventory append transaction", "error", err)
		}
	}()

	lockItemSQL := `SELECT type FROM items WHERE id = $1 FOR UPDATE`

	var mode string
	err = tx.QueryRow(ctx, lockItemSQL, itemID).Scan(&mode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item %s not found", itemID)}
		}

		return nil, fmt.Errorf("failed to lock item row: %w", wrapConflict(err))
	}

	if domain.DeliveryMode(mode) != domain.ModeSequential {
		return nil, &domain.InvalidArgumentsError{Msg: "inventory units can only be added to sequential items"}
	}

	maxPositionSQL := `SELECT COALESCE(MAX(position), 0) FROM inventory_units WHERE item_id = $1`

	var maxPosition int
	err = tx.QueryRow(ctx, maxPositionSQL, itemID).Scan(&maxPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to read max unit position: %w", err)
	}

	insertUnitSQL := `INSERT INTO inventory_units (id, item_id, content, position) VALUES ($1, $2, $3, $4)`

	units := make([]domain.InventoryUnit, 0, len(contents))
	for i, content := range contents {
		unit := domain.InventoryUnit{
			ID:       uuid.NewString(),
			ItemID:   itemID,
			Content:  content,
			Position: maxPosition + i + 1,
		}

		_, err = tx.Exec(ctx, insertUnitSQL, unit.ID, unit.ItemID, unit.Content, unit.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to insert inventory unit: %w", err)
		}

		units = append(units, unit)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return units, nil
}
