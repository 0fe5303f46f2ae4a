package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/smithbhavsar/ChatpataAI/pkg/resp"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is pushed to every dashboard watching a restaurant when a
// customer checks out.
type OrderEvent struct {
	RestaurantID int64   `json:"restaurantId"`
	OrderID      string  `json:"orderId"`
	TableNumber  string  `json:"tableNumber,omitempty"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"totalAmount"`
}

// OrderHub fans incoming order confirmations out to the waiter dashboards
// subscribed to the restaurant.
type OrderHub struct {
	clients    map[int64]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID int64
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[int64]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run serves register/unregister/broadcast until the process exits.
func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an event for every subscriber of the restaurant.
func (h *OrderHub) Broadcast(ev OrderEvent) {
	h.broadcast <- ev
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:restaurantId (waiter/admin, gated by middleware)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("restaurantId"), 10, 64)
	if err != nil || restaurantID <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restaurantID}
	h.register <- sub

	// Dashboards only listen; the read loop just detects the close.
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
