package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/intervueapp/intervue/internal/events"
	"github.com/redis/go-redis/v9"
)

// EventsWSHandler pushes interview status changes to dashboard clients.
// It forwards the Redis events channel over a websocket; clients only
// listen.
type EventsWSHandler struct {
	redis    *redis.Client
	upgrader websocket.Upgrader
}

func NewEventsWSHandler(rdb *redis.Client) *EventsWSHandler {
	return &EventsWSHandler{
		redis: rdb,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeText(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

func (h *EventsWSHandler) InterviewEvents(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote response in most cases
		return
	}
	defer conn.Close()

	wc := &wsConn{c: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	pubsub := h.redis.Subscribe(ctx, events.Channel)
	defer pubsub.Close()

	// reader: drains control frames and detects close
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})
		for {
			if _, _, rerr := conn.ReadMessage(); rerr != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-readDone:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			wc.mu.Lock()
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			werr := conn.WriteMessage(websocket.PingMessage, nil)
			wc.mu.Unlock()
			if werr != nil {
				return
			}
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := wc.writeText([]byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
