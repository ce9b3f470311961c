package application

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"golang.org/x/sync/errgroup"
)

type Profile struct {
	Username      string
	Role          string
	Balance       int
	PurchaseCount int
}

type AccountInfoCase struct {
	accountFetcher domain.AccountInfoFetcher
	historyFetcher domain.PurchaseHistoryFetcher
	directory      domain.AccountDirectory
}

func NewAccountInfoCase(
	accountFetcher domain.AccountInfoFetcher,
	historyFetcher domain.PurchaseHistoryFetcher,
	directory domain.AccountDirectory,
) *AccountInfoCase {
	return &AccountInfoCase{
		accountFetcher: accountFetcher,
		historyFetcher: historyFetcher,
		directory:      directory,
	}
}

func (ac *AccountInfoCase) GetProfile(ctx context.Context, accountID string) (Profile, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var overview domain.AccountOverview
	var purchaseCount int

	group.Go(func() error {
		var err error
		overview, err = ac.accountFetcher.FetchAccountOverview(groupCtx, accountID)
		return err
	})

	group.Go(func() error {
		var err error
		purchaseCount, err = ac.historyFetcher.CountPurchases(groupCtx, accountID)
		return err
	})

	err := group.Wait()
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		Username:      overview.Username,
		Role:          overview.Role,
		Balance:       overview.Balance,
		PurchaseCount: purchaseCount,
	}, nil
}

func (ac *AccountInfoCase) GetPurchaseHistory(ctx context.Context, accountID string) ([]domain.PurchaseRecord, error) {
	return ac.historyFetcher.FetchPurchaseHistory(ctx, accountID)
}

func (ac *AccountInfoCase) ListAccounts(ctx context.Context) ([]domain.AccountListing, error) {
	return ac.directory.ListAccounts(ctx)
}
