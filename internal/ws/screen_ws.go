package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/danielhinsching/agora-signage/internal/models"
	"github.com/danielhinsching/agora-signage/internal/response"
	"github.com/danielhinsching/agora-signage/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub хранит подключения плееров вывески, сгруппированные по слагу экрана.
// Любое сообщение в комнате — сигнал плееру перечитать афишу целиком:
// инкрементальных обновлений нет, снимок всегда полный.
type Hub struct {
	// Для каждого экрана (slug) храним множество подключений.
	clients map[string]map[*Client]bool
	// Канал для регистрации нового клиента.
	register chan *Client
	// Канал для удаления клиента.
	unregister chan *Client
	// Канал для трансляции сообщений подключениям одного экрана.
	broadcast chan broadcastMessage
	// Mutex для защиты карты клиентов.
	mu sync.RWMutex
}

// WSMessage — сообщение плееру. EventType: events_updated, screen_updated,
// day_changed.
type WSMessage struct {
	EventType string                 `json:"event_type"`
	Screen    string                 `json:"screen"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

type broadcastMessage struct {
	screen  string
	payload []byte
}

// Глобальный экземпляр хаба.
var HubInstance = NewHub()

// NewHub создает новый Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMessage),
	}
}

// Run запускает цикл обработки каналов хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Screen] == nil {
				h.clients[client.Screen] = make(map[*Client]bool)
			}
			h.clients[client.Screen][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Screen]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.Screen)
					}
				}
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[message.screen]; ok {
				for client := range clients {
					select {
					case client.Send <- message.payload:
					default:
						close(client.Send)
						delete(clients, client)
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastWSMessage рассылает сообщение всем подключениям одного экрана.
func (h *Hub) BroadcastWSMessage(msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("Ошибка сериализации сообщения WebSocket:", err)
		return
	}
	h.broadcast <- broadcastMessage{screen: msg.Screen, payload: payload}
}

// BroadcastToAll рассылает сообщение во все комнаты, например о смене суток.
func (h *Hub) BroadcastToAll(eventType string, data map[string]interface{}) {
	h.mu.RLock()
	screens := make([]string, 0, len(h.clients))
	for screen := range h.clients {
		screens = append(screens, screen)
	}
	h.mu.RUnlock()

	for _, screen := range screens {
		h.BroadcastWSMessage(WSMessage{EventType: eventType, Screen: screen, Data: data})
	}
}

// Client представляет одно подключение плеера через WebSocket.
type Client struct {
	Hub    *Hub
	Conn   *websocket.Conn
	Send   chan []byte
	Screen string // слаг экрана
}

// readPump читает сообщения из WebSocket-соединения. Входящие сообщения
// плеера не обрабатываются, отслеживается только разрыв соединения.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump отправляет сообщения клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Канал закрыт.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			// Ping для поддержания соединения.
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Апгрейдер WebSocket с разрешением всех источников: плееры вывески
// подключаются с любых адресов локальной сети.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ScreenWebSocketHandler обновляет соединение до WebSocket и регистрирует
// плеер в комнате его экрана. URL-пример: /api/tv/{slug}/ws
func ScreenWebSocketHandler(c *gin.Context) {
	slug := c.Param("slug")

	var screen models.Screen
	if err := storage.DB.Where("slug = ?", slug).First(&screen).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "SCREEN_NOT_FOUND",
			Message: "Экран с таким слагом не найден",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.Error(c.Writer, "Ошибка обновления до WebSocket", http.StatusInternalServerError)
		return
	}

	client := &Client{
		Hub:    HubInstance,
		Conn:   conn,
		Send:   make(chan []byte, 256),
		Screen: slug,
	}
	HubInstance.register <- client

	go client.writePump()
	client.readPump()
}
