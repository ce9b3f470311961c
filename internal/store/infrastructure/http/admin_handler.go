package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
)

const ItemIDParamKey = "itemId"

type CatalogAdminService interface {
	CreateItem(ctx context.Context, draft domain.ItemDraft) (domain.Item, error)
	UpdateItem(ctx context.Context, itemID string, draft domain.ItemDraft) (domain.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
	AddInventoryUnits(ctx context.Context, itemID string, contents []string) ([]domain.InventoryUnit, error)
}

type VoucherAdminService interface {
	CreateVoucher(ctx context.Context, code string, amount int, createdBy string) (domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
}

type AccountAdminService interface {
	ListAccounts(ctx context.Context) ([]domain.AccountListing, error)
}

type itemRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required,gt=0"`
	Type        string `json:"type" binding:"required,oneof=INSTANT SEQUENTIAL"`
	LogoURL     string `json:"logoUrl"`
	Content     string `json:"content"`
}

type addUnitsRequestBody struct {
	Contents []string `json:"contents" binding:"required,min=1"`
}

type voucherRequestBody struct {
	Code   string `json:"code" binding:"required"`
	Amount int    `json:"amount" binding:"required,gt=0"`
}

type itemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Type        string `json:"type"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Content     string `json:"content,omitempty"`
}

type voucherResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Amount    int       `json:"amount"`
	IsUsed    bool      `json:"isUsed"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminHandler struct {
	catalog  CatalogAdminService
	vouchers VoucherAdminService
	accounts AccountAdminService
	logger   logging.Logger
}

func NewAdminHandler(
	catalog CatalogAdminService,
	vouchers VoucherAdminService,
	accounts AccountAdminService,
	logger logging.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		vouchers: vouchers,
		accounts: accounts,
		logger:   logger,
	}
}

func (h *AdminHandler) CreateItem(c *gin.Context) {
	var body itemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	item, err := h.catalog.CreateItem(c, draftFromBody(body))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, itemToResponse(item))
}

func (h *AdminHandler) UpdateItem(c *gin.Context) {
	var body itemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	item, err := h.catalog.UpdateItem(c, c.Param(ItemIDParamKey), draftFromBody(body))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, itemToResponse(item))
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	err := h.catalog.DeleteItem(c, c.Param(ItemIDParamKey))
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) AddInventoryUnits(c *gin.Context) {
	var body addUnitsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	units, err := h.catalog.AddInventoryUnits(c, c.Param(ItemIDParamKey), body.Contents)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": len(units)})
}

func (h *AdminHandler) CreateVoucher(c *gin.Context) {
	var body voucherRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	createdBy := c.GetString(UsernameContextKey)

	voucher, err := h.vouchers.CreateVoucher(c, body.Code, body.Amount, createdBy)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, voucherToResponse(voucher))
}

func (h *AdminHandler) ListVouchers(c *gin.Context) {
	vouchers, err := h.vouchers.ListVouchers(c)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response := make([]voucherResponse, 0, len(vouchers))
	for _, voucher := range vouchers {
		response = append(response, voucherToResponse(voucher))
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c)
	if err != nil {
		h.handleAdminError(c, err)
		return
	}

	response := make([]gin.H, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, gin.H{
			"id":       account.ID,
			"username": account.Username,
			"role":     account.Role,
			"balance":  account.Balance,
		})
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) handleAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.ItemNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TransactionConflictError{}):
		c.JSON(http.StatusServiceUnavailable, gin.H{"errors": err.Error()})
	default:
		h.logger.Error("unexpected admin error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}

func draftFromBody(body itemRequestBody) domain.ItemDraft {
	return domain.ItemDraft{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Mode:        domain.DeliveryMode(body.Type),
		LogoURL:     body.LogoURL,
		Content:     body.Content,
	}
}

func itemToResponse(item domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Type:        string(item.Mode),
		LogoURL:     item.LogoURL,
		Content:     item.Content,
	}
}

func voucherToResponse(voucher domain.Voucher) voucherResponse {
	return voucherResponse{
		ID:        voucher.ID,
		Code:      voucher.Code,
		Amount:    voucher.Amount,
		IsUsed:    voucher.Used,
		CreatedBy: voucher.CreatedBy,
		CreatedAt: voucher.CreatedAt,
	}
}
