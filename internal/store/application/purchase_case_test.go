package application

import (
	"context"
	"testing"

	dbmocks "github.com/itsnaruto045-hub/EBONZ/gen/mocks/database"
	storemocks "github.com/itsnaruto045-hub/EBONZ/gen/mocks/store"
	"github.com/golang/mock/gomock"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/stretchr/testify/assert"
)

func TestPurchaseCase_Purchase(t *testing.T) {
	t.Parallel()

	const (
		accountID = "9f4f0c8e-6a3a-4f68-9a3c-62cf2f8f1a01"
		itemID    = "3f0a5c61-8f1e-4f0f-b6d5-2c7f9a2e4b02"
	)

	cheapItem := domain.Item{ID: itemID, Name: "steam-key", Price: 80, Mode: domain.ModeSequential}
	instantItem := domain.Item{ID: itemID, Name: "wallpaper-pack", Price: 30, Mode: domain.ModeInstant, Content: "https://cdn.example.com/pack.zip"}

	type deps struct {
		balanceLocker *storemocks.MockBalanceLocker
		itemGetter    *storemocks.MockItemGetter
		allocator     *storemocks.MockContentAllocator
		settler       *storemocks.MockPurchaseSettler
		txManager     *dbmocks.MockTxManager
	}

	type testCase struct {
		name string

		prepareFn func(t *testing.T, d *deps)

		expectedRecord domain.PurchaseRecord
		expectedErr    error
	}

	// executeTxFn is a helper gomock.DoAndReturn that actually invokes the TxFunc callback
	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	tests := []testCase{
		{
			name: "successful sequential purchase",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(100, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(cheapItem, nil)
				d.allocator.EXPECT().Allocate(gomock.Any(), nil, cheapItem).
					Return("KEY-0001", nil)
				d.settler.EXPECT().SettlePurchase(gomock.Any(), nil, accountID, cheapItem, "KEY-0001").
					Return(domain.PurchaseRecord{ID: "p1", AccountID: accountID, ItemID: itemID, ItemName: "steam-key", Content: "KEY-0001", Price: 80}, nil)
			},
			expectedRecord: domain.PurchaseRecord{ID: "p1", AccountID: accountID, ItemID: itemID, ItemName: "steam-key", Content: "KEY-0001", Price: 80},
			expectedErr:    nil,
		},
		{
			name: "successful instant purchase",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(30, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(instantItem, nil)
				d.allocator.EXPECT().Allocate(gomock.Any(), nil, instantItem).
					Return(instantItem.Content, nil)
				d.settler.EXPECT().SettlePurchase(gomock.Any(), nil, accountID, instantItem, instantItem.Content).
					Return(domain.PurchaseRecord{ID: "p2", AccountID: accountID, ItemID: itemID, ItemName: "wallpaper-pack", Content: instantItem.Content, Price: 30}, nil)
			},
			expectedRecord: domain.PurchaseRecord{ID: "p2", AccountID: accountID, ItemID: itemID, ItemName: "wallpaper-pack", Content: instantItem.Content, Price: 30},
			expectedErr:    nil,
		},
		{
			name: "account not found on balance lock",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(0, &domain.AccountNotFoundError{Msg: "account not found"})
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name: "item not found",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(100, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(domain.Item{}, &domain.ItemNotFoundError{Msg: "item not found"})
			},
			expectedErr: &domain.ItemNotFoundError{},
		},
		{
			name: "insufficient credits",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(79, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(cheapItem, nil)
			},
			expectedErr: &domain.InsufficientCreditsError{},
		},
		{
			name: "out of stock on allocation",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(100, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(cheapItem, nil)
				d.allocator.EXPECT().Allocate(gomock.Any(), nil, cheapItem).
					Return("", &domain.OutOfStockError{Msg: "no undelivered units left"})
			},
			expectedErr: &domain.OutOfStockError{},
		},
		{
			name: "settlement error",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(100, nil)
				d.itemGetter.EXPECT().GetItem(gomock.Any(), nil, itemID).
					Return(cheapItem, nil)
				d.allocator.EXPECT().Allocate(gomock.Any(), nil, cheapItem).
					Return("KEY-0001", nil)
				d.settler.EXPECT().SettlePurchase(gomock.Any(), nil, accountID, cheapItem, "KEY-0001").
					Return(domain.PurchaseRecord{}, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name: "transaction conflict",
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.balanceLocker.EXPECT().LockAndGetBalance(gomock.Any(), nil, accountID).
					Return(0, &domain.TransactionConflictError{Msg: "lock timeout"})
			},
			expectedErr: &domain.TransactionConflictError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				balanceLocker: storemocks.NewMockBalanceLocker(ctrl),
				itemGetter:    storemocks.NewMockItemGetter(ctrl),
				allocator:     storemocks.NewMockContentAllocator(ctrl),
				settler:       storemocks.NewMockPurchaseSettler(ctrl),
				txManager:     dbmocks.NewMockTxManager(ctrl),
			}

			tt.prepareFn(t, d)

			purchaseCase := NewPurchaseCase(d.balanceLocker, d.itemGetter, d.allocator, d.settler, d.txManager)
			record, err := purchaseCase.Purchase(t.Context(), accountID, itemID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRecord, record)
			}
		})
	}
}
