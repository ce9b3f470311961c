package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	authapp "github.com/itsnaruto045-hub/EBONZ/internal/auth/application"
	authdomain "github.com/itsnaruto045-hub/EBONZ/internal/auth/domain"
	authhttp "github.com/itsnaruto045-hub/EBONZ/internal/auth/infrastructure/http"
	authpg "github.com/itsnaruto045-hub/EBONZ/internal/auth/infrastructure/postgres"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/jwt"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/application"
	storehttp "github.com/itsnaruto045-hub/EBONZ/internal/store/infrastructure/http"
	storepg "github.com/itsnaruto045-hub/EBONZ/internal/store/infrastructure/postgres"
	"github.com/itsnaruto045-hub/EBONZ/migrations"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout = 5 * time.Second
)

type App struct {
	cfg    Config
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewApp(cfg Config, logger logging.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetURL()

	err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres")
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Bounded lock waits: a settlement stuck behind a concurrent transaction
	// fails with a retryable conflict instead of queueing indefinitely.
	poolCfg.ConnConfig.RuntimeParams["lock_timeout"] = strconv.FormatInt(a.cfg.LockTimeout.Milliseconds(), 10)

	dbpool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := authpg.NewUsersRepository(dbpool, logger)
	authCase := authapp.NewAuthCase(usersRepository, authdomain.NewArgonPasswordHasher(), jwt.NewJWTTokenIssuer(), a.cfg.JwtSecret)
	authHandler := authhttp.NewAuthHandler(authCase, logger)

	itemsRepository := storepg.NewItemsRepository(dbpool, logger)
	vouchersRepository := storepg.NewVouchersRepository(dbpool)
	purchasesRepository := storepg.NewPurchasesRepository(dbpool)
	accountsRepository := storepg.NewAccountsRepository(dbpool)

	purchaseCase := application.NewPurchaseCase(
		storepg.NewBalanceLocker(),
		itemsRepository,
		storepg.NewInventoryAllocator(),
		storepg.NewPurchaseSettler(),
		txManager,
	)
	redeemCase := application.NewRedeemCase(vouchersRepository, vouchersRepository, txManager)
	accountInfoCase := application.NewAccountInfoCase(accountsRepository, purchasesRepository, accountsRepository)
	catalogCase := application.NewCatalogCase(itemsRepository)
	voucherAdminCase := application.NewVoucherAdminCase(vouchersRepository)

	storeHandler := storehttp.NewStoreHandler(purchaseCase, redeemCase, accountInfoCase, catalogCase, logger)
	adminHandler := storehttp.NewAdminHandler(catalogCase, voucherAdminCase, accountInfoCase, logger)

	router := gin.Default()
	tokenParser := jwt.NewJWTTokenParser()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/items", storeHandler.ListItems)

		authenticated := api.Group("/", storehttp.NewAuthMiddleware(a.cfg.JwtSecret, tokenParser))
		{
			authenticated.POST("/purchase", storeHandler.Purchase)
			authenticated.GET("/purchases", storeHandler.GetPurchaseHistory)
			authenticated.POST("/redeem", storeHandler.Redeem)
			authenticated.GET("/profile", storeHandler.GetProfile)

			admin := authenticated.Group("/admin", storehttp.NewAdminMiddleware())
			{
				admin.POST("/items", adminHandler.CreateItem)
				admin.PUT("/items/:"+storehttp.ItemIDParamKey, adminHandler.UpdateItem)
				admin.DELETE("/items/:"+storehttp.ItemIDParamKey, adminHandler.DeleteItem)
				admin.POST("/items/:"+storehttp.ItemIDParamKey+"/units", adminHandler.AddInventoryUnits)
				admin.GET("/codes", adminHandler.ListVouchers)
				admin.POST("/codes", adminHandler.CreateVoucher)
				admin.GET("/users", adminHandler.ListAccounts)
			}
		}
	}

	a.server = &http.Server{
		Addr:    a.cfg.HTTPPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", a.cfg.HTTPPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *App) Shutdown() {
	if a.server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}

	a.logger.Info("http server stopped")
}
