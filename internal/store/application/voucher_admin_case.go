package application

import (
	"context"

	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

type VoucherAdminCase struct {
	vouchers domain.VoucherAdminRepository
}

func NewVoucherAdminCase(vouchers domain.VoucherAdminRepository) *VoucherAdminCase {
	return &VoucherAdminCase{
		vouchers: vouchers,
	}
}

func (vc *VoucherAdminCase) CreateVoucher(ctx context.Context, code string, amount int, createdBy string) (domain.Voucher, error) {
	if code == "" {
		return domain.Voucher{}, &domain.InvalidArgumentsError{Msg: "voucher code must not be empty"}
	}

	if amount <= 0 {
		return domain.Voucher{}, &domain.InvalidArgumentsError{Msg: "voucher amount must be positive"}
	}

	return vc.vouchers.CreateVoucher(ctx, code, amount, createdBy)
}

func (vc *VoucherAdminCase) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	return vc.vouchers.ListVouchers(ctx)
}
