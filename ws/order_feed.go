package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"restoflow/entity"
	"restoflow/utils"
)

// OrderFeed pushes every persisted order to the dashboards of its
// tenant, so the back office sees sales land without polling.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan *entity.Order
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Order, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.RestaurantID] == nil {
				f.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.RestaurantID][sub.Conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(f.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			f.mu.Unlock()

		case o := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients[o.RestaurantID] {
				if err := conn.WriteJSON(o); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[o.RestaurantID], conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// Broadcast never blocks the order path; a full buffer drops the push
// and the dashboard catches up on its next refresh.
func (f *OrderFeed) Broadcast(o *entity.Order) {
	select {
	case f.broadcast <- o:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /api/v1/ws/orders (auth + tenant middleware run first)
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	tenantID := utils.CurrentTenantID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: tenantID}
	f.register <- sub

	// reader loop only detects close; the feed is one-way
	go func() {
		defer func() { f.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
