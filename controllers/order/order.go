package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Validation errors --------

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be a positive integer")
)

// -------- Inputs --------

// OrderHeader carries the precomputed header fields. TotalAmount and
// Digest are always derived server-side by the checkout flow before
// this package is called.
type OrderHeader struct {
	UserID        *uint
	Username      string
	Currency      string
	MerchantEmail string
	TotalAmount   float64
	Digest        string
	Salt          string
}

// OrderItemInput is one line of the order: price already snapshotted
// from the live catalog.
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// -------- Core Logic --------

// CreateOrder writes the order header plus all of its items in one
// transaction. A failure on any row leaves nothing behind: an order
// with zero items must never be observable.
func CreateOrder(db *gorm.DB, header OrderHeader, items []OrderItemInput) (uint, error) {
	if len(items) == 0 {
		return 0, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := models.Order{
		UserID:        header.UserID,
		Username:      header.Username,
		Currency:      header.Currency,
		MerchantEmail: header.MerchantEmail,
		TotalAmount:   header.TotalAmount,
		Digest:        header.Digest,
		Salt:          header.Salt,
		Status:        models.OrderStatusPending,
		Items:         orderItems,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return 0, err
	}
	return order.OrderID, nil
}

// GetOrderByID returns the order with its items, or (nil, nil) when
// the id does not exist. Absence is a value here, not an error.
func GetOrderByID(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").First(&order, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus is an unconditional SET. An empty transactionID
// preserves whatever transaction id is already stored. Returns the
// number of rows affected; 0 means the order id did not exist.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus, transactionID string) (int64, error) {
	updates := map[string]interface{}{"status": status}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	result := db.Model(&models.Order{}).Where("order_id = ?", orderID).Updates(updates)
	return result.RowsAffected, result.Error
}

var terminalStatuses = []models.OrderStatus{
	models.OrderStatusCompleted,
	models.OrderStatusFailed,
	models.OrderStatusCancelled,
	models.OrderStatusRefunded,
}

// ApplyNotificationStatus is the guarded variant used by the payment
// notification path. Provider notifications arrive at-least-once and
// possibly out of order, so a terminal status must never move back to
// pending/processing. The guard lives in the WHERE clause: one
// statement, no read-modify-write race. Returns whether the update was
// applied; a skipped stale notification and an unknown order are both
// (false, nil).
func ApplyNotificationStatus(db *gorm.DB, orderID uint, status models.OrderStatus, transactionID string) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}

	query := db.Model(&models.Order{}).Where("order_id = ?", orderID)
	if !status.IsTerminal() {
		// pending/processing may not overwrite a settled order
		query = query.Where("status NOT IN ?", terminalStatuses)
	}

	result := query.Updates(updates)
	return result.RowsAffected > 0, result.Error
}

// ApplyProvisionalStatus serves the browser-redirect return path. The
// redirect can be replayed or skipped entirely, so it may only touch
// orders the notification stream has not settled: any terminal status
// wins over it unconditionally.
func ApplyProvisionalStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (bool, error) {
	result := db.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Where("status NOT IN ?", terminalStatuses).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}

// -------- Handlers --------

// GetOrderByIDHandler returns a single order with its items (admin).
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}
		order, err := GetOrderByID(db, uint(id))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetAllOrdersHandler lists every order, newest first (admin panel).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// MemberOrder is the flattened view the member portal renders.
type MemberOrder struct {
	OrderID     uint               `json:"orderId"`
	CreatedAt   string             `json:"createdAt"`
	Status      models.OrderStatus `json:"status"`
	TotalAmount float64            `json:"totalAmount"`
	Products    []string           `json:"products"`
	Prices      []float64          `json:"prices"`
	Quantities  []int              `json:"quantities"`
	Currency    string             `json:"currency"`
}

// GetMemberOrdersHandler returns the five most recent orders of the
// logged-in user with product names joined in. Deleted products show
// up under their stored id since item rows outlive the catalog.
func GetMemberOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get("user_id")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(5).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}

		formatted := make([]MemberOrder, 0, len(orders))
		for _, order := range orders {
			view := MemberOrder{
				OrderID:     order.OrderID,
				CreatedAt:   order.CreatedAt.Format("2006-01-02 15:04:05"),
				Status:      order.Status,
				TotalAmount: order.TotalAmount,
				Currency:    order.Currency,
				Products:    []string{},
				Prices:      []float64{},
				Quantities:  []int{},
			}
			for _, item := range order.Items {
				var product models.Product
				name := "product #" + strconv.FormatUint(uint64(item.ProductID), 10)
				if err := db.First(&product, "pid = ?", item.ProductID).Error; err == nil {
					name = product.Name
				}
				view.Products = append(view.Products, name)
				view.Prices = append(view.Prices, item.Price)
				view.Quantities = append(view.Quantities, item.Quantity)
			}
			formatted = append(formatted, view)
		}

		c.JSON(http.StatusOK, formatted)
	}
}
