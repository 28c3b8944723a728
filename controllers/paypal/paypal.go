package paypalControllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/AndyJai0908/ierg4210-project/config"
	orderControllers "github.com/AndyJai0908/ierg4210-project/controllers/order"
	"github.com/AndyJai0908/ierg4210-project/middleware"
	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items" binding:"required"`
}

type CreateOrderItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// -------- Helpers --------

// mapPaymentStatus translates PayPal's payment_status vocabulary onto
// the order lifecycle. Unknown or missing values stay pending.
func mapPaymentStatus(status string) models.OrderStatus {
	switch strings.ToLower(status) {
	case "completed":
		return models.OrderStatusCompleted
	case "pending":
		return models.OrderStatusProcessing
	case "failed", "denied", "expired":
		return models.OrderStatusFailed
	case "refunded":
		return models.OrderStatusRefunded
	default:
		return models.OrderStatusPending
	}
}

// -------- Handlers --------

// CreateOrderHandler validates the cart against the live catalog,
// prices it server-side, and records the order before the client is
// redirected to PayPal. Client-supplied prices and totals are never
// trusted. The user must see a failure here instead of being sent to
// pay for an order that does not exist.
func CreateOrderHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid items data"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid items data"})
			return
		}

		// Snapshot price and name per item; reject unknown products
		// and bad quantities before anything is written.
		var items []orderControllers.OrderItemInput
		var names []string
		var total float64
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "invalid quantity for product " + strconv.FormatUint(uint64(item.ProductID), 10),
				})
				return
			}
			var product models.Product
			if err := db.First(&product, "pid = ?", item.ProductID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "product " + strconv.FormatUint(uint64(item.ProductID), 10) + " not found",
				})
				return
			}
			items = append(items, orderControllers.OrderItemInput{
				ProductID: product.PID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
			names = append(names, product.Name)
			total += product.Price * float64(item.Quantity)
		}

		salt, err := GenerateSalt()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate salt"})
			return
		}
		digest := GenerateDigest(cfg.Currency, cfg.MerchantEmail, salt, items, total)

		header := orderControllers.OrderHeader{
			Username:      "guest",
			Currency:      cfg.Currency,
			MerchantEmail: cfg.MerchantEmail,
			TotalAmount:   total,
			Digest:        digest,
			Salt:          salt,
		}
		if id, ok := c.Get("user_id"); ok {
			userID := id.(uint)
			header.UserID = &userID
			if email, ok := c.Get("email"); ok {
				header.Username = email.(string)
			}
		}

		orderID, err := orderControllers.CreateOrder(db, header, items)
		if err != nil {
			middleware.RecordOrderOperation("create", false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		middleware.RecordOrderOperation("create", true)

		// paypalUrl tells the SPA which gateway form action to post the
		// checkout to, so sandbox/live is a server-side switch.
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"orderId":   orderID,
			"digest":    digest,
			"names":     names,
			"items":     items,
			"total":     total,
			"paypalUrl": cfg.PayPalURL,
		})
	}
}

// IPNHandler consumes PayPal's asynchronous Instant Payment
// Notification. The provider retries until it sees a 2xx, so every
// branch acknowledges: a notification we decide to ignore must not
// turn into a retry storm. Only a database failure reports an error.
func IPNHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		txnID := c.PostForm("txn_id")
		paymentStatus := c.PostForm("payment_status")
		invoice := c.PostForm("invoice")
		receiverEmail := c.PostForm("receiver_email")

		// The receiver check is the one authenticity signal available.
		if !strings.EqualFold(receiverEmail, cfg.MerchantEmail) {
			log.Printf("IPN rejected: receiver_email %q does not match merchant", receiverEmail)
			middleware.RecordOrderOperation("ipn_rejected", false)
			c.String(http.StatusOK, "OK")
			return
		}

		orderID, err := strconv.ParseUint(invoice, 10, 64)
		if err != nil {
			log.Printf("IPN rejected: invalid invoice %q", invoice)
			middleware.RecordOrderOperation("ipn_rejected", false)
			c.String(http.StatusOK, "OK")
			return
		}

		status := mapPaymentStatus(paymentStatus)
		applied, err := orderControllers.ApplyNotificationStatus(db, uint(orderID), status, txnID)
		if err != nil {
			log.Printf("IPN error for order %d: %v", orderID, err)
			middleware.RecordOrderOperation("ipn", false)
			c.String(http.StatusInternalServerError, "Error")
			return
		}
		if applied {
			log.Printf("order %d status updated to %s (txn %s)", orderID, status, txnID)
			orderControllers.BroadcastOrderStatus(uint(orderID), status)
		} else {
			// Unknown order or a stale/duplicate notification; both are
			// acknowledged no-ops by design.
			log.Printf("IPN ignored for order %d (status %s)", orderID, status)
		}
		middleware.RecordOrderOperation("ipn", true)

		c.String(http.StatusOK, "OK")
	}
}

// SuccessHandler handles the browser's synchronous return from PayPal.
// A replayable redirect is a weak signal: the order is provisionally
// marked processing and the IPN remains the authority for completion.
func SuccessHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyRedirectStatus(db, c.Query("invoice"), models.OrderStatusProcessing)
		c.Redirect(http.StatusFound, cfg.FrontendURL+"/payment-success")
	}
}

// CancelHandler handles the buyer backing out of the PayPal page.
func CancelHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		applyRedirectStatus(db, c.Query("invoice"), models.OrderStatusCancelled)
		c.Redirect(http.StatusFound, cfg.FrontendURL+"/payment-cancelled")
	}
}

func applyRedirectStatus(db *gorm.DB, invoice string, status models.OrderStatus) {
	if invoice == "" {
		return
	}
	orderID, err := strconv.ParseUint(invoice, 10, 64)
	if err != nil {
		return
	}
	// Provisional apply: the redirect must never clobber a status the
	// IPN already settled.
	if _, err := orderControllers.ApplyProvisionalStatus(db, uint(orderID), status); err != nil {
		log.Printf("redirect status update failed for order %d: %v", orderID, err)
	}
}
