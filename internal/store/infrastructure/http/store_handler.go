package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/application"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

type PurchaseService interface {
	Purchase(ctx context.Context, accountID, itemID string) (domain.PurchaseRecord, error)
}

type RedeemService interface {
	Redeem(ctx context.Context, accountID, code string) (int, error)
}

type AccountInfoService interface {
	GetProfile(ctx context.Context, accountID string) (application.Profile, error)
	GetPurchaseHistory(ctx context.Context, accountID string) ([]domain.PurchaseRecord, error)
}

type CatalogService interface {
	ListItems(ctx context.Context) ([]domain.ItemSummary, error)
}

type purchaseRequestBody struct {
	ItemID string `json:"itemId" binding:"required,uuid"`
}

type redeemRequestBody struct {
	Code string `json:"code" binding:"required"`
}

type purchaseResponse struct {
	PurchaseID       string    `json:"purchaseId"`
	ItemID           string    `json:"itemId"`
	ItemName         string    `json:"itemName"`
	Price            int       `json:"price"`
	DeliveredContent string    `json:"deliveredContent"`
	Timestamp        time.Time `json:"timestamp"`
}

type itemSummaryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Type        string `json:"type"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Remaining   *int   `json:"remaining,omitempty"`
}

type StoreHandler struct {
	purchases   PurchaseService
	redemptions RedeemService
	accounts    AccountInfoService
	catalog     CatalogService
	logger      logging.Logger
}

func NewStoreHandler(
	purchases PurchaseService,
	redemptions RedeemService,
	accounts AccountInfoService,
	catalog CatalogService,
	logger logging.Logger,
) *StoreHandler {
	return &StoreHandler{
		purchases:   purchases,
		redemptions: redemptions,
		accounts:    accounts,
		catalog:     catalog,
		logger:      logger,
	}
}

func (h *StoreHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	response := make([]itemSummaryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, itemSummaryResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Type:        string(item.Mode),
			LogoURL:     item.LogoURL,
			Remaining:   item.Remaining,
		})
	}

	c.JSON(http.StatusOK, response)
}

func (h *StoreHandler) Purchase(c *gin.Context) {
	var body purchaseRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	accountID := c.GetString(AccountIDContextKey)

	record, err := h.purchases.Purchase(c, accountID, body.ItemID)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchaseResponse{
		PurchaseID:       record.ID,
		ItemID:           record.ItemID,
		ItemName:         record.ItemName,
		Price:            record.Price,
		DeliveredContent: record.Content,
		Timestamp:        record.CreatedAt,
	})
}

func (h *StoreHandler) Redeem(c *gin.Context) {
	var body redeemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	accountID := c.GetString(AccountIDContextKey)

	amount, err := h.redemptions.Redeem(c, accountID, body.Code)
	if err != nil {
		if errors.Is(err, &domain.InvalidOrUsedCodeError{}) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": err.Error()})
			return
		}

		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"amountCredited": amount,
	})
}

func (h *StoreHandler) GetPurchaseHistory(c *gin.Context) {
	accountID := c.GetString(AccountIDContextKey)

	records, err := h.accounts.GetPurchaseHistory(c, accountID)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	response := make([]purchaseResponse, 0, len(records))
	for _, record := range records {
		response = append(response, purchaseResponse{
			PurchaseID:       record.ID,
			ItemID:           record.ItemID,
			ItemName:         record.ItemName,
			Price:            record.Price,
			DeliveredContent: record.Content,
			Timestamp:        record.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

func (h *StoreHandler) GetProfile(c *gin.Context) {
	accountID := c.GetString(AccountIDContextKey)

	profile, err := h.accounts.GetProfile(c, accountID)
	if err != nil {
		h.handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username":      profile.Username,
		"role":          profile.Role,
		"balance":       profile.Balance,
		"purchaseCount": profile.PurchaseCount,
	})
}

func (h *StoreHandler) handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.AccountNotFoundError{}), errors.Is(err, &domain.ItemNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientCreditsError{}), errors.Is(err, &domain.OutOfStockError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidOrUsedCodeError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TransactionConflictError{}):
		c.JSON(http.StatusServiceUnavailable, gin.H{"errors": err.Error()})
	default:
		h.logger.Error("unexpected store error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
