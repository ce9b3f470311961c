package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type AccountsRepository struct {
	querier database.Querier
}

func NewAccountsRepository(querier database.Querier) *AccountsRepository {
	return &AccountsRepository{
		querier: querier,
	}
}

func (ar *AccountsRepository) FetchAccountOverview(ctx context.Context, accountID string) (domain.AccountOverview, error) {
	overviewSQL := `SELECT u.username, u.role, b.balance
FROM users u
JOIN balances b ON b.user_id = u.id
WHERE u.id = $1`

	var overview domain.AccountOverview
	err := ar.querier.QueryRow(ctx, overviewSQL, accountID).
		Scan(&overview.Username, &overview.Role, &overview.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AccountOverview{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
		}

		return domain.AccountOverview{}, fmt.Errorf("failed to fetch account overview: %w", err)
	}

	return overview, nil
}

func (ar *AccountsRepository) ListAccounts(ctx context.Context) ([]domain.AccountListing, error) {
	listAccountsSQL := `SELECT u.id, u.username, u.role, b.balance
FROM users u
JOIN balances b ON b.user_id = u.id
ORDER BY u.created_at DESC`

	rows, err := ar.querier.Query(ctx, listAccountsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.AccountListing, 0)
	for rows.Next() {
		var listing domain.AccountListing
		err = rows.Scan(&listing.ID, &listing.Username, &listing.Role, &listing.Balance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, listing)
	}

	return accounts, rows.Err()
}
