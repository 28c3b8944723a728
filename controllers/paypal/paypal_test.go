package paypalControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/AndyJai0908/ierg4210-project/config"
	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	cfg := &config.Config{
		Currency:      "HKD",
		MerchantEmail: "shop@example.com",
		PayPalURL:     "https://www.sandbox.paypal.com/cgi-bin/webscr",
		FrontendURL:   "http://localhost:3000",
	}

	r := gin.New()
	r.POST("/api/paypal/create-order", CreateOrderHandler(db, cfg))
	r.POST("/api/paypal/ipn", IPNHandler(db, cfg))
	r.GET("/api/paypal/success", SuccessHandler(db, cfg))
	r.GET("/api/paypal/cancel", CancelHandler(db, cfg))

	return r, db, cfg
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Category{Name: "Snacks"}).Error)
	require.NoError(t, db.Create(&models.Product{PID: 1, CatID: 1, Name: "Fish Ball", Price: 100.00}).Error)
	require.NoError(t, db.Create(&models.Product{PID: 2, CatID: 1, Name: "Egg Tart", Price: 50.00}).Error)
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(data)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postIPN(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/paypal/ipn", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestOrder(t *testing.T, r *gin.Engine) uint {
	t.Helper()
	w := postJSON(r, "/api/paypal/create-order", gin.H{
		"items": []gin.H{
			{"product_id": 1, "quantity": 2},
			{"product_id": 2, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		OrderID   uint   `json:"orderId"`
		PayPalURL string `json:"paypalUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.OrderID)
	// The SPA posts its checkout form to the gateway URL we hand back.
	require.Equal(t, "https://www.sandbox.paypal.com/cgi-bin/webscr", resp.PayPalURL)
	return resp.OrderID
}

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	r, db, cfg := newTestEnv(t)
	seedCatalog(t, db)

	orderID := createTestOrder(t, r)

	order, err := orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)

	// 2 x 100.00 + 1 x 50.00
	assert.Equal(t, 250.00, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "guest", order.Username)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 100.00, order.Items[0].Price)

	// The stored digest must be reproducible from the stored salt.
	items := make([]orderControllers.OrderItemInput, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderControllers.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	expected := GenerateDigest(cfg.Currency, cfg.MerchantEmail, order.Salt, items, order.TotalAmount)
	assert.Equal(t, expected, order.Digest)
	assert.Len(t, order.Salt, 32)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)

	w := postJSON(r, "/api/paypal/create-order", gin.H{
		"items": []gin.H{{"product_id": 999, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderRejectsEmptyAndInvalidItems(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)

	w := postJSON(r, "/api/paypal/create-order", gin.H{"items": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/paypal/create-order", gin.H{
		"items": []gin.H{{"product_id": 1, "quantity": -2}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIPNCompletesOrderAndIgnoresStaleReplay(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)
	orderID := createTestOrder(t, r)
	invoice := strconv.FormatUint(uint64(orderID), 10)

	w := postIPN(r, url.Values{
		"txn_id":         {"TXN-COMPLETE"},
		"payment_status": {"Completed"},
		"invoice":        {invoice},
		"mc_gross":       {"250.00"},
		"payer_email":    {"buyer@example.com"},
		"receiver_email": {"shop@example.com"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	order, err := orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	require.NotNil(t, order.TransactionID)
	assert.Equal(t, "TXN-COMPLETE", *order.TransactionID)

	// A late "Pending" must not drag the order back.
	w = postIPN(r, url.Values{
		"txn_id":         {"TXN-COMPLETE"},
		"payment_status": {"Pending"},
		"invoice":        {invoice},
		"receiver_email": {"shop@example.com"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	order, err = orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestIPNStatusMapping(t *testing.T) {
	cases := []struct {
		provider string
		want     models.OrderStatus
	}{
		{"Completed", models.OrderStatusCompleted},
		{"Pending", models.OrderStatusProcessing},
		{"Failed", models.OrderStatusFailed},
		{"Denied", models.OrderStatusFailed},
		{"Expired", models.OrderStatusFailed},
		{"Refunded", models.OrderStatusRefunded},
		{"Voided", models.OrderStatusPending}, // anything else stays pending
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			assert.Equal(t, tc.want, mapPaymentStatus(tc.provider))
		})
	}
}

func TestIPNRejectsWrongReceiverButStillAcks(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)
	orderID := createTestOrder(t, r)

	w := postIPN(r, url.Values{
		"txn_id":         {"TXN-EVIL"},
		"payment_status": {"Completed"},
		"invoice":        {strconv.FormatUint(uint64(orderID), 10)},
		"receiver_email": {"attacker@example.com"},
	})

	// Acknowledged so the provider does not retry-storm, but ignored.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	order, err := orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Nil(t, order.TransactionID)
}

func TestIPNUnknownOrderStillAcks(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w := postIPN(r, url.Values{
		"txn_id":         {"TXN-1"},
		"payment_status": {"Completed"},
		"invoice":        {"424242"},
		"receiver_email": {"shop@example.com"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSuccessRedirectIsProvisionalOnly(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)
	orderID := createTestOrder(t, r)
	invoice := strconv.FormatUint(uint64(orderID), 10)

	req := httptest.NewRequest(http.MethodGet, "/api/paypal/success?invoice="+invoice, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://localhost:3000/payment-success", w.Header().Get("Location"))

	order, err := orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	// Settle the order, then replay the redirect: no effect.
	postIPN(r, url.Values{
		"txn_id":         {"TXN-1"},
		"payment_status": {"Completed"},
		"invoice":        {invoice},
		"receiver_email": {"shop@example.com"},
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	order, err = orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestCancelRedirect(t *testing.T) {
	r, db, _ := newTestEnv(t)
	seedCatalog(t, db)
	orderID := createTestOrder(t, r)

	req := httptest.NewRequest(http.MethodGet,
		"/api/paypal/cancel?invoice="+strconv.FormatUint(uint64(orderID), 10), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://localhost:3000/payment-cancelled", w.Header().Get("Location"))

	order, err := orderControllers.GetOrderByID(db, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}
