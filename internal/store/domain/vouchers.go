package domain

import (
	"context"
	"time"

	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
)

type Voucher struct {
	ID        string
	Code      string
	Amount    int
	Used      bool
	CreatedBy string
	CreatedAt time.Time
}

type VoucherLocker interface {
	LockUnusedVoucher(ctx context.Context, querier database.Querier, code string) (Voucher, error)
}

// VoucherConsumer credits the account and flips the voucher's used flag within
// the caller's transaction, so both happen or neither does.
type VoucherConsumer interface {
	ConsumeVoucher(ctx context.Context, executor database.Executor, voucherID, accountID string, amount int) error
}

type VoucherAdminRepository interface {
	CreateVoucher(ctx context.Context, code string, amount int, createdBy string) (Voucher, error)
	ListVouchers(ctx context.Context) ([]Voucher, error)
}
