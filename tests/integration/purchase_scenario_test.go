package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsnaruto045-hub/EBONZ/internal/bootstrap"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/database"
	"github.com/itsnaruto045-hub/EBONZ/internal/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	httpHost = "localhost"

	adminUsername = "storekeeper"
	adminPassword = "adminpassword"
	buyerUsername = "buyer"
	buyerPassword = "buyerpassword"

	voucherCode   = "WELCOME-500"
	voucherAmount = 500
	itemPrice     = 80
)

func TestPurchaseScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pg := setupDatabase(t)

	dbSettings := getDefaultDBSettings()
	setDBSettingsFromContainer(t, pg, &dbSettings)

	httpPort := runApp(t, dbSettings)
	waitForApp(t, httpPort, 30*time.Second)

	// REGISTER (first account becomes the administrator)
	adminInfo := registerUser(t, httpPort, adminUsername, adminPassword)
	assert.Equal(t, "ADMIN", adminInfo["role"])

	adminToken := loginUser(t, httpPort, adminUsername, adminPassword)

	// SEED CATALOG
	itemID := createItem(t, httpPort, adminToken, map[string]interface{}{
		"name":  "steam-key",
		"price": itemPrice,
		"type":  "SEQUENTIAL",
	})
	addInventoryUnits(t, httpPort, adminToken, itemID, []string{"KEY-0001"})
	createVoucher(t, httpPort, adminToken, voucherCode, voucherAmount)

	// REGISTER BUYER
	buyerInfo := registerUser(t, httpPort, buyerUsername, buyerPassword)
	assert.Equal(t, "USER", buyerInfo["role"])

	buyerToken := loginUser(t, httpPort, buyerUsername, buyerPassword)

	// FRESH ACCOUNT STARTS EMPTY
	profile := getProfile(t, httpPort, buyerToken)
	assert.Equal(t, float64(0), profile["balance"])

	// BUYER CANNOT REACH ADMIN ROUTES
	status, _ := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/admin/codes"), buyerToken, map[string]interface{}{
		"code":   "SNEAKY-1",
		"amount": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)

	// REDEEM VOUCHER
	status, redeemBody := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/redeem"), buyerToken, map[string]interface{}{
		"code": voucherCode,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, redeemBody["success"])
	assert.Equal(t, float64(voucherAmount), redeemBody["amountCredited"])

	// SECOND REDEMPTION OF THE SAME CODE FAILS
	status, redeemBody = doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/redeem"), buyerToken, map[string]interface{}{
		"code": voucherCode,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, redeemBody["success"])

	// PURCHASE
	status, purchaseBody := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/purchase"), buyerToken, map[string]interface{}{
		"itemId": itemID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "KEY-0001", purchaseBody["deliveredContent"])
	assert.Equal(t, float64(itemPrice), purchaseBody["price"])

	// BALANCE REFLECTS THE SETTLEMENT
	profile = getProfile(t, httpPort, buyerToken)
	assert.Equal(t, float64(voucherAmount-itemPrice), profile["balance"])
	assert.Equal(t, float64(1), profile["purchaseCount"])

	// STOCK IS EXHAUSTED
	status, _ = doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/purchase"), buyerToken, map[string]interface{}{
		"itemId": itemID,
	})
	assert.Equal(t, http.StatusConflict, status)

	// HISTORY HOLDS THE SINGLE PURCHASE
	history := getPurchaseHistory(t, httpPort, buyerToken)
	require.Len(t, history, 1)
	assert.Equal(t, itemID, history[0]["itemId"])
	assert.Equal(t, "steam-key", history[0]["itemName"])

	// PUBLIC CATALOG SHOWS THE DEPLETED COUNTER
	items := listItems(t, httpPort)
	require.Len(t, items, 1)
	assert.Equal(t, float64(0), items[0]["remaining"])

	// ADMIN SEES BOTH ACCOUNTS
	accounts := listAccounts(t, httpPort, adminToken)
	assert.Len(t, accounts, 2)
}

func setupDatabase(t *testing.T) *postgres.PostgresContainer {
	t.Helper()

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("ebonz"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(t.Context()) })

	return pg
}

func getDefaultDBSettings() database.PostgresSettings {
	return database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		DBName:     "ebonz",
		SSLEnabled: false,
	}
}

func setDBSettingsFromContainer(t *testing.T, pg *postgres.PostgresContainer, dbSettings *database.PostgresSettings) {
	t.Helper()

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	dbSettings.Host = dbHost
	dbSettings.Port = dbPort.Port()
}

func runApp(t *testing.T, dbSettings database.PostgresSettings) string {
	t.Helper()

	httpPort := getFreePort(t)

	cfg := bootstrap.Config{
		HTTPPort:    httpPort,
		JwtSecret:   "secret-key",
		LockTimeout: 3 * time.Second,
		DbSettings:  dbSettings,
	}
	app := bootstrap.NewApp(cfg, logging.StdoutLogger)

	go func() {
		err := app.Run(t.Context())
		assert.NoError(t, err)
	}()
	t.Cleanup(func() {
		app.Shutdown()
	})

	return httpPort
}

func getFreePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	return fmt.Sprintf(":%d", port)
}

func waitForApp(t *testing.T, httpPort string, timeout time.Duration) {
	t.Helper()

	require.Eventually(t, func() bool {
		resp, err := http.Get(apiURL(httpPort, "/items"))
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		return resp.StatusCode == http.StatusOK
	}, timeout, 500*time.Millisecond)
}

func apiURL(httpPort, path string) string {
	return "http://" + httpHost + httpPort + "/api" + path
}

func doJSONRequest(t *testing.T, method, url, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var decoded map[string]interface{}
	if len(respBody) > 0 && respBody[0] == '{' {
		require.NoError(t, json.Unmarshal(respBody, &decoded))
	}

	return resp.StatusCode, decoded
}

func doJSONListRequest(t *testing.T, method, url, token string) []map[string]interface{} {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &decoded))

	return decoded
}

func registerUser(t *testing.T, httpPort, username, password string) map[string]interface{} {
	t.Helper()

	status, body := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/auth/register"), "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	return body
}

func loginUser(t *testing.T, httpPort, username, password string) string {
	t.Helper()

	status, body := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/auth/login"), "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return token
}

func createItem(t *testing.T, httpPort, token string, body map[string]interface{}) string {
	t.Helper()

	status, respBody := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/admin/items"), token, body)
	require.Equal(t, http.StatusOK, status)

	itemID, ok := respBody["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, itemID)

	return itemID
}

func addInventoryUnits(t *testing.T, httpPort, token, itemID string, contents []string) {
	t.Helper()

	status, respBody := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/admin/items/"+itemID+"/units"), token, map[string]interface{}{
		"contents": contents,
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(len(contents)), respBody["added"])
}

func createVoucher(t *testing.T, httpPort, token, code string, amount int) {
	t.Helper()

	status, _ := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/admin/codes"), token, map[string]interface{}{
		"code":   code,
		"amount": amount,
	})
	require.Equal(t, http.StatusOK, status)
}

func getProfile(t *testing.T, httpPort, token string) map[string]interface{} {
	t.Helper()

	status, body := doJSONRequest(t, http.MethodGet, apiURL(httpPort, "/profile"), token, nil)
	require.Equal(t, http.StatusOK, status)

	return body
}

func getPurchaseHistory(t *testing.T, httpPort, token string) []map[string]interface{} {
	t.Helper()

	return doJSONListRequest(t, http.MethodGet, apiURL(httpPort, "/purchases"), token)
}

func listItems(t *testing.T, httpPort string) []map[string]interface{} {
	t.Helper()

	return doJSONListRequest(t, http.MethodGet, apiURL(httpPort, "/items"), "")
}

func listAccounts(t *testing.T, httpPort, token string) []map[string]interface{} {
	t.Helper()

	return doJSONListRequest(t, http.MethodGet, apiURL(httpPort, "/admin/users"), token)
}
