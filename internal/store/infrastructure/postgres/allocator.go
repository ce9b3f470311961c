package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type InventoryAllocator struct {
}

func NewInventoryAllocator() *InventoryAllocator {
	return &InventoryAllocator{}
}

// Allocate picks the unit of content a purchase delivers. It operates inside the
// caller's transaction: for sequential items the chosen unit stays locked until
// the settlement commits or rolls back, so a unit is never handed out twice.
func (ia *InventoryAllocator) Allocate(ctx context.Context, executor database.QueryExecuter, item domain.Item) (string, error) {
	if item.Mode == domain.ModeInstant {
		return item.Content, nil
	}

	unit, err := lockNextUndeliveredUnit(ctx, executor, item.ID)
	if err != nil {
		return "", err
	}

	err = markUnitDelivered(ctx, executor, unit.ID)
	if err != nil {
		return "", err
	}

	return unit.Content, nil
}

func lockNextUndeliveredUnit(ctx context.Context, querier database.Querier, itemID string) (domain.InventoryUnit, error) {
	selectUnitSQL := `SELECT id, content FROM inventory_units
WHERE item_id = $1 AND delivered = false
ORDER BY position
LIMIT 1
FOR UPDATE`

	var unit domain.InventoryUnit
	err := querier.QueryRow(ctx, selectUnitSQL, itemID).Scan(&unit.ID, &unit.Content)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.InventoryUnit{}, &domain.OutOfStockError{Msg: "item is out of stock"}
		}

		return domain.InventoryUnit{}, fmt.Errorf("failed to lock inventory unit: %w", wrapConflict(err))
	}

	return unit, nil
}

func markUnitDelivered(ctx context.Context, executor database.Executor, unitID string) error {
	updateUnitSQL := `UPDATE inventory_units SET delivered = true WHERE id = $1`

	_, err := executor.Exec(ctx, updateUnitSQL, unitID)
	if err != nil {
		return fmt.Errorf("failed to mark inventory unit delivered: %w", err)
	}

	return nil
}
