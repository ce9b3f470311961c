package postgres

import (
	"context"
	"fmt"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

type PurchasesRepository struct {
	querier database.Querier
}

func NewPurchasesRepository(querier database.Querier) *PurchasesRepository {
	return &PurchasesRepository{
		querier: querier,
	}
}

func (pr *PurchasesRepository) FetchPurchaseHistory(ctx context.Context, accountID string) ([]domain.PurchaseRecord, error) {
	historySQL := `SELECT id, user_id, COALESCE(item_id::text, ''), item_name, content_delivered, price, created_at
FROM purchases
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := pr.querier.Query(ctx, historySQL, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.PurchaseRecord, 0)
	for rows.Next() {
		var record domain.PurchaseRecord
		err = rows.Scan(&record.ID, &record.AccountID, &record.ItemID, &record.ItemName, &record.Content, &record.Price, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (pr *PurchasesRepository) CountPurchases(ctx context.Context, accountID string) (int, error) {
	countSQL := `SELECT COUNT(*) FROM purchases WHERE user_id = $1`

	var count int
	err := pr.querier.QueryRow(ctx, countSQL, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	return count, nil
}
