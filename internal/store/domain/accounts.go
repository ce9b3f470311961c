package domain

import "context"

type AccountOverview struct {
	Username string
	Role     string
	Balance  int
}

type AccountListing struct {
	ID       string
	Username string
	Role     string
	Balance  int
}

type AccountInfoFetcher interface {
	FetchAccountOverview(ctx context.Context, accountID string) (AccountOverview, error)
}

type AccountDirectory interface {
	ListAccounts(ctx context.Context) ([]AccountListing, error)
}
