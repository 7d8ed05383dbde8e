package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	AdminID uint
	Conn    *websocket.Conn
}

// AdminFeed fans new-question events out to every connected admin console.
type AdminFeed struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewAdminFeed() *AdminFeed {
	return &AdminFeed{clients: make(map[*WSClient]struct{})}
}

func (f *AdminFeed) Register(c *WSClient) {
	f.mu.Lock()
	f.clients[c] = struct{}{}
	f.mu.Unlock()
}

func (f *AdminFeed) Unregister(c *WSClient) {
	f.mu.Lock()
	delete(f.clients, c)
	f.mu.Unlock()
	_ = c.Conn.Close()
}

func (f *AdminFeed) Broadcast(payload any) {
	msg, _ := json.Marshal(payload)
	f.mu.RLock()
	defer f.mu.RUnlock()
	for c := range f.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
