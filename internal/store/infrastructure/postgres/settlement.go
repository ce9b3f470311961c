package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

type PurchaseSettler struct {
}

func NewPurchaseSettler() *PurchaseSettler {
	return &PurchaseSettler{}
}

// SettlePurchase debits the account and writes the immutable purchase snapshot.
// It runs inside the settlement transaction, after the balance row was locked
// and checked and after the allocator picked the delivered content.
func (ps *PurchaseSettler) SettlePurchase(ctx context.Context, executor database.QueryExecuter, accountID string, item domain.Item, content string) (domain.PurchaseRecord, error) {
	debitSQL := `UPDATE balances SET balance = balance - $1 WHERE user_id = $2 AND balance >= $1`

	tag, err := executor.Exec(ctx, debitSQL, item.Price, accountID)
	if err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("failed to debit balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.PurchaseRecord{}, &domain.InsufficientCreditsError{Msg: "insufficient credits"}
	}

	record := domain.PurchaseRecord{
		ID:        uuid.NewString(),
		AccountID: accountID,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Content:   content,
		Price:     item.Price,
	}

	insertPurchaseSQL := `INSERT INTO purchases (id, user_id, item_id, item_name, content_delivered, price)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

	err = executor.QueryRow(ctx, insertPurchaseSQL,
		record.ID, record.AccountID, record.ItemID, record.ItemName, record.Content, record.Price).
		Scan(&record.CreatedAt)
	if err != nil {
		return domain.PurchaseRecord{}, fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return record, nil
}
