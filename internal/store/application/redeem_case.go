package application

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

// RedeemCase is the redemption engine: a voucher code is consumed exactly once
// and credited exactly once, even under concurrent redemption attempts.
type RedeemCase struct {
	voucherLocker   domain.VoucherLocker
	voucherConsumer domain.VoucherConsumer
	txManager       database.TxManager
}

func NewRedeemCase(
	voucherLocker domain.VoucherLocker,
	voucherConsumer domain.VoucherConsumer,
	txManager database.TxManager,
) *RedeemCase {
	return &RedeemCase{
		voucherLocker:   voucherLocker,
		voucherConsumer: voucherConsumer,
		txManager:       txManager,
	}
}

func (rc *RedeemCase) Redeem(ctx context.Context, accountID, code string) (int, error) {
	var amount int

	err := rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		voucher, err := rc.voucherLocker.LockUnusedVoucher(ctx, executor, code)
		if err != nil {
			return err
		}

		amount = voucher.Amount
		return rc.voucherConsumer.ConsumeVoucher(ctx, executor, voucher.ID, accountID, voucher.Amount)
	})

	if err != nil {
		return 0, err
	}

	return amount, nil
}
