package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QueryExecuter is what repository code operating inside a transaction receives:
// it can read and write, but cannot begin or end the transaction itself.
type QueryExecuter interface {
	Querier
	Executor
}

type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// QueryTxBeginner is satisfied by *pgxpool.Pool.
type QueryTxBeginner interface {
	QueryExecuter
	TxBeginner
}

type PostgresSettings struct {
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"ebonz"`
	SSLEnabled bool   `envconfig:"DB_SSL" default:"false"`
}

func (s PostgresSettings) GetURL() string {
	sslMode := "disable"
	if s.SSLEnabled {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		s.User, s.Password, s.Host, s.Port, s.DBName, sslMode)
}
