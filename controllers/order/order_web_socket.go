// order_websocket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/AndyJai0908/ierg4210-project/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsMu guards wsClients and serializes writes per connection: handler
// goroutines add/remove entries while IPN request goroutines broadcast.
var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// OrderWebSocketHandler feeds the admin panel live status changes as
// payment notifications land.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

type orderStatusEvent struct {
	OrderID uint               `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

// BroadcastOrderStatus pushes a status change to every connected client.
func BroadcastOrderStatus(orderID uint, status models.OrderStatus) {
	data, err := json.Marshal(orderStatusEvent{OrderID: orderID, Status: status})
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
