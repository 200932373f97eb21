package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"gameblob/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderReturnsWidgetPayload(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	resp, body = app.postForm("/razorpay", formValues("game_token", token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		ID       string `json:"id"`
		GID      uint   `json:"gid"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, int64(49900), payload.Amount)
	assert.Equal(t, "INR", payload.Currency)
	assert.Equal(t, "order_test_1", payload.ID)
	assert.Equal(t, game.ID, payload.GID)
}

func TestGamePageEmbedsCheckoutKey(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, testRzpKey)
}

func TestCreateOrderWithoutGameReturns422(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	app.login("alice")

	resp, _ := app.postForm("/razorpay", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateOrderGatewayDownReturns502(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	app.breakGateway()

	resp, body = app.postForm("/razorpay", formValues("game_token", token))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "payment gateway unavailable")
}

func TestPaymentSuccessRecordsPurchaseAndOwnership(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	gamePath := fmt.Sprintf("/game/%d", game.ID)
	resp, body := app.get(gamePath)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	resp, _ = app.postForm("/razorpay/success", formValues(
		"razorpay_order_id", "order_test_1",
		"razorpay_payment_id", "pay_test_1",
		"razorpay_signature", signCallback("order_test_1", "pay_test_1"),
		"game_token", token,
	))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, gamePath, resp.Header.Get("Location"))

	var purchase models.Purchase
	require.NoError(t, app.db.First(&purchase).Error)
	assert.Equal(t, user.ID, purchase.UserID)
	assert.Equal(t, game.ID, purchase.GameID)
	assert.Equal(t, "order_test_1", purchase.OrderID)
	assert.Equal(t, "pay_test_1", purchase.PaymentID)

	owned := app.db.Model(&user).Association("OwnedGames").Count()
	assert.Equal(t, int64(1), owned)
}

func TestDuplicateSuccessCallbackRecordsOnePurchase(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	callback := formValues(
		"razorpay_order_id", "order_test_1",
		"razorpay_payment_id", "pay_test_1",
		"razorpay_signature", signCallback("order_test_1", "pay_test_1"),
		"game_token", token,
	)

	resp, _ = app.postForm("/razorpay/success", callback)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp, _ = app.postForm("/razorpay/success", callback)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	assert.Equal(t, int64(1), countRows(t, app.db, &models.Purchase{}))
	assert.Equal(t, int64(1), app.db.Model(&user).Association("OwnedGames").Count())
}

func TestPaymentSuccessRejectsBadSignature(t *testing.T) {
	app := newTestApp(t)
	app.seedUser("alice", "user")
	game := app.seedGame("Blob Quest")
	app.login("alice")

	resp, body := app.get(fmt.Sprintf("/game/%d", game.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := extractGameToken(t, body)

	resp, _ = app.postForm("/razorpay/success", formValues(
		"razorpay_order_id", "order_test_1",
		"razorpay_payment_id", "pay_test_1",
		"razorpay_signature", "forged",
		"game_token", token,
	))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, countRows(t, app.db, &models.Purchase{}))
}

func TestPaymentSuccessRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.postForm("/razorpay/success", formValues(
		"razorpay_order_id", "order_test_1",
		"razorpay_payment_id", "pay_test_1",
		"razorpay_signature", signCallback("order_test_1", "pay_test_1"),
	))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Zero(t, countRows(t, app.db, &models.Purchase{}))
}
