package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type UsersRepository struct {
	db     database.QueryTxBeginner
	logger logging.Logger
}

func NewUsersRepository(db database.QueryTxBeginner, logger logging.Logger) *UsersRepository {
	return &UsersRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and its balance row in one transaction, so an
// account can never exist without a balance to lock during settlement.
func (r *UsersRepository) CreateUser(ctx context.Context, username, hashedPassword, role string) (domain.UserInfo, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			r.logger.Error("failed to rollback user creation transaction", "error", err)
		}
	}()

	userInfo, err := createNewUser(ctx, tx, username, hashedPassword, role)
	if err != nil {
		return domain.UserInfo{}, err
	}

	err = createUserBalance(ctx, tx, userInfo.ID)
	if err != nil {
		return domain.UserInfo{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return domain.UserInfo{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return userInfo, nil
}

func (r *UsersRepository) TryGetUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	querySQL := `SELECT id, username, password_hash, role FROM users WHERE username = $1`

	var userInfo domain.UserInfo
	row := r.db.QueryRow(ctx, querySQL, username)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash, &userInfo.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, err
	}

	return userInfo, true, nil
}

func (r *UsersRepository) CountUsers(ctx context.Context) (int, error) {
	countSQL := `SELECT COUNT(*) FROM users`

	var count int
	err := r.db.QueryRow(ctx, countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

func createNewUser(ctx context.Context, querier database.Querier, username, hashedPassword, role string) (domain.UserInfo, error) {
	creationSQL := `INSERT INTO users (id, username, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, username, password_hash, role`

	var userInfo domain.UserInfo
	row := querier.QueryRow(ctx, creationSQL, uuid.NewString(), username, hashedPassword, role)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash, &userInfo.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.UserInfo{}, &domain.UsernameTakenError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		return domain.UserInfo{}, err
	}

	return userInfo, nil
}

func createUserBalance(ctx context.Context, executor database.Executor, userID string) error {
	creationSQL := `INSERT INTO balances (user_id, balance) VALUES ($1, 0)`

	_, err := executor.Exec(ctx, creationSQL, userID)
	return err
}
