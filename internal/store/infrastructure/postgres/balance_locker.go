package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type BalanceLocker struct {
}

func NewBalanceLocker() *BalanceLocker {
	return &BalanceLocker{}
}

// LockAndGetBalance takes an exclusive lock on the account's balance row for the
// rest of the surrounding transaction. Concurrent settlements for the same
// account serialize here, so no two of them can spend the same credits.
func (bl *BalanceLocker) LockAndGetBalance(ctx context.Context, querier database.Querier, accountID string) (int, error) {
	lockBalanceSQL := `SELECT balance FROM balances WHERE user_id = $1 FOR UPDATE`

	var balance int
	err := querier.QueryRow(ctx, lockBalanceSQL, accountID).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return 0, fmt.Errorf("failed to lock balance row: %w", wrapConflict(err))
	}

	return balance, nil
}
