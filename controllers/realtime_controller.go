package controllers

import (
	"net/http"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Feed *services.AdminFeed
}

func NewRealtimeController(feed *services.AdminFeed) *RealtimeController {
	return &RealtimeController{Feed: feed}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// QuestionsWS streams new-question events to a logged-in admin console.
func (rc *RealtimeController) QuestionsWS(c *gin.Context) {
	adminID, _ := c.Get("adminID")
	id, _ := adminID.(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{AdminID: id, Conn: conn}
	rc.Feed.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Feed.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Feed.Unregister(cl)
			return
		}
	}
}
