package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const raceVoucherAmount = 300

func TestConcurrentRedeemScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pg := setupDatabase(t)

	dbSettings := getDefaultDBSettings()
	setDBSettingsFromContainer(t, pg, &dbSettings)

	httpPort := runApp(t, dbSettings)
	waitForApp(t, httpPort, 30*time.Second)

	registerUser(t, httpPort, adminUsername, adminPassword)
	adminToken := loginUser(t, httpPort, adminUsername, adminPassword)
	createVoucher(t, httpPort, adminToken, "RACE-300", raceVoucherAmount)

	registerUser(t, httpPort, buyerUsername, buyerPassword)
	buyerToken := loginUser(t, httpPort, buyerUsername, buyerPassword)

	// Two requests race for the same single-use code. The row lock serializes
	// them, so exactly one may be credited.
	attempts := 2
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			status, _ := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/redeem"), buyerToken, map[string]interface{}{
				"code": "RACE-300",
			})
			statuses[idx] = status
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, status := range statuses {
		switch status {
		case http.StatusOK:
			successes++
		case http.StatusBadRequest, http.StatusServiceUnavailable:
		default:
			t.Fatalf("unexpected redeem status %d", status)
		}
	}
	assert.Equal(t, 1, successes)

	profile := getProfile(t, httpPort, buyerToken)
	assert.Equal(t, float64(raceVoucherAmount), profile["balance"])
}

func TestConcurrentPurchaseScenario(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pg := setupDatabase(t)

	dbSettings := getDefaultDBSettings()
	setDBSettingsFromContainer(t, pg, &dbSettings)

	httpPort := runApp(t, dbSettings)
	waitForApp(t, httpPort, 30*time.Second)

	registerUser(t, httpPort, adminUsername, adminPassword)
	adminToken := loginUser(t, httpPort, adminUsername, adminPassword)

	itemID := createItem(t, httpPort, adminToken, map[string]interface{}{
		"name":  "game-code",
		"price": itemPrice,
		"type":  "SEQUENTIAL",
	})
	addInventoryUnits(t, httpPort, adminToken, itemID, []string{"CODE-0001"})
	createVoucher(t, httpPort, adminToken, voucherCode, voucherAmount)

	registerUser(t, httpPort, buyerUsername, buyerPassword)
	buyerToken := loginUser(t, httpPort, buyerUsername, buyerPassword)

	status, _ := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/redeem"), buyerToken, map[string]interface{}{
		"code": voucherCode,
	})
	require.Equal(t, http.StatusOK, status)

	// Two purchases race for the last unit in stock. At most one settlement
	// may debit the balance and take the unit.
	attempts := 2
	statuses := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			st, _ := doJSONRequest(t, http.MethodPost, apiURL(httpPort, "/purchase"), buyerToken, map[string]interface{}{
				"itemId": itemID,
			})
			statuses[idx] = st
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, st := range statuses {
		switch st {
		case http.StatusOK:
			successes++
		case http.StatusConflict, http.StatusServiceUnavailable:
		default:
			t.Fatalf("unexpected purchase status %d", st)
		}
	}
	assert.Equal(t, 1, successes)

	profile := getProfile(t, httpPort, buyerToken)
	assert.Equal(t, float64(voucherAmount-itemPrice), profile["balance"])
	assert.Equal(t, float64(1), profile["purchaseCount"])

	history := getPurchaseHistory(t, httpPort, buyerToken)
	assert.Len(t, history, 1)
}
