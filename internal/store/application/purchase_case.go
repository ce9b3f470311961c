package application

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

// PurchaseCase is the settlement engine: one call converts a purchase intent
// into a balance debit plus content delivery, or leaves no trace at all.
type PurchaseCase struct {
	balanceLocker domain.BalanceLocker
	itemGetter    domain.ItemGetter
	allocator     domain.ContentAllocator
	settler       domain.PurchaseSettler
	txManager     database.TxManager
}

func NewPurchaseCase(
	balanceLocker domain.BalanceLocker,
	itemGetter domain.ItemGetter,
	allocator domain.ContentAllocator,
	settler domain.PurchaseSettler,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		balanceLocker: balanceLocker,
		itemGetter:    itemGetter,
		allocator:     allocator,
		settler:       settler,
		txManager:     txManager,
	}
}

func (pc *PurchaseCase) Purchase(ctx context.Context, accountID, itemID string) (domain.PurchaseRecord, error) {
	var record domain.PurchaseRecord

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		// The balance row is locked first and held until commit, so concurrent
		// purchases by the same account serialize before any funds check.
		balance, err := pc.balanceLocker.LockAndGetBalance(ctx, executor, accountID)
		if err != nil {
			return err
		}

		item, err := pc.itemGetter.GetItem(ctx, executor, itemID)
		if err != nil {
			return err
		}

		if balance < item.Price {
			return &domain.InsufficientCreditsError{Msg: "insufficient credits"}
		}

		content, err := pc.allocator.Allocate(ctx, executor, item)
		if err != nil {
			return err
		}

		record, err = pc.settler.SettlePurchase(ctx, executor, accountID, item, content)
		return err
	})

	if err != nil {
		return domain.PurchaseRecord{}, err
	}

	return record, nil
}
