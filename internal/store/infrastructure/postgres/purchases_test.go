package postgres

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchasesRepository_FetchPurchaseHistory(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	later := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "item_name", "content_delivered", "price", "created_at"}).
		AddRow("p2", testAccountID, testItemID, "steam-key", "KEY-0002", 80, later).
		AddRow("p1", testAccountID, "", "deleted-item", "KEY-0001", 50, earlier)
	mock.ExpectQuery("SELECT").
		WithArgs(testAccountID).
		WillReturnRows(rows)

	purchasesRepository := NewPurchasesRepository(mock)
	records, err := purchasesRepository.FetchPurchaseHistory(t.Context(), testAccountID)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "p2", records[0].ID)
	assert.Equal(t, "KEY-0002", records[0].Content)

	// Snapshot survives catalog deletion: item_id is gone but the name and
	// delivered content remain.
	assert.Equal(t, "", records[1].ItemID)
	assert.Equal(t, "deleted-item", records[1].ItemName)
	assert.Equal(t, 50, records[1].Price)
}

func TestPurchasesRepository_FetchPurchaseHistory_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	rows := pgxmock.NewRows([]string{"id", "user_id", "item_id", "item_name", "content_delivered", "price", "created_at"})
	mock.ExpectQuery("SELECT").
		WithArgs(testAccountID).
		WillReturnRows(rows)

	purchasesRepository := NewPurchasesRepository(mock)
	records, err := purchasesRepository.FetchPurchaseHistory(t.Context(), testAccountID)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestPurchasesRepository_CountPurchases(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		expectedRes int
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "count returned",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"count"}).
					AddRow(7)
				mock.ExpectQuery("SELECT").
					WithArgs(testAccountID).
					WillReturnRows(rows)
			},
			expectedRes: 7,
			expectedErr: nil,
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(testAccountID).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			purchasesRepository := NewPurchasesRepository(mock)
			res, err := purchasesRepository.CountPurchases(t.Context(), testAccountID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
