package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type VouchersRepository struct {
	db database.QueryExecuter
}

func NewVouchersRepository(db database.QueryExecuter) *VouchersRepository {
	return &VouchersRepository{
		db: db,
	}
}

// LockUnusedVoucher locks the voucher row for the rest of the surrounding
// transaction. A racing redeemer blocks here; once the first redemption commits
// the used=false predicate is re-evaluated and the loser sees no rows.
func (vr *VouchersRepository) LockUnusedVoucher(ctx context.Context, querier database.Querier, code string) (domain.Voucher, error) {
	lockVoucherSQL := `SELECT id, code, amount, created_by, created_at FROM vouchers
WHERE code = $1 AND used = false
FOR UPDATE`

	voucher := domain.Voucher{Used: false}
	err := querier.QueryRow(ctx, lockVoucherSQL, code).
		Scan(&voucher.ID, &voucher.Code, &voucher.Amount, &voucher.CreatedBy, &voucher.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Voucher{}, &domain.InvalidOrUsedCodeError{Msg: "invalid or already used code"}
		}

		return domain.Voucher{}, fmt.Errorf("failed to lock voucher row: %w", wrapConflict(err))
	}

	return voucher, nil
}

func (vr *VouchersRepository) ConsumeVoucher(ctx context.Context, executor database.Executor, voucherID, accountID string, amount int) error {
	creditSQL := `UPDATE balances SET balance = balance + $1 WHERE user_id = $2`

	tag, err := executor.Exec(ctx, creditSQL, amount, accountID)
	if err != nil {
		return fmt.Errorf("failed to credit balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account %s not found", accountID)}
	}

	markUsedSQL := `UPDATE vouchers SET used = true WHERE id = $1`

	_, err = executor.Exec(ctx, markUsedSQL, voucherID)
	if err != nil {
		return fmt.Errorf("failed to mark voucher used: %w", err)
	}

	return nil
}

func (vr *VouchersRepository) CreateVoucher(ctx context.Context, code string, amount int, createdBy string) (domain.Voucher, error) {
	voucher := domain.Voucher{
		ID:        uuid.NewString(),
		Code:      code,
		Amount:    amount,
		CreatedBy: createdBy,
	}

	insertVoucherSQL := `INSERT INTO vouchers (id, code, amount, created_by)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	err := vr.db.QueryRow(ctx, insertVoucherSQL, voucher.ID, voucher.Code, voucher.Amount, voucher.CreatedBy).
		Scan(&voucher.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Voucher{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("code %s already exists", code)}
		}

		return domain.Voucher{}, fmt.Errorf("failed to insert voucher: %w", err)
	}

	return voucher, nil
}

func (vr *VouchersRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	listVouchersSQL := `SELECT id, code, amount, used, created_by, created_at FROM vouchers ORDER BY created_at DESC`

	rows, err := vr.db.Query(ctx, listVouchersSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := make([]domain.Voucher, 0)
	for rows.Next() {
		var voucher domain.Voucher
		err = rows.Scan(&voucher.ID, &voucher.Code, &voucher.Amount, &voucher.Used, &voucher.CreatedBy, &voucher.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		vouchers = append(vouchers, voucher)
	}

	return vouchers, rows.Err()
}
