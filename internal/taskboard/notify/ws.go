package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/gorilla/websocket"
)

const (
	// DefaultIdleTimeout is how long a connection may stay silent, pongs
	// included, before it is dropped.
	DefaultIdleTimeout = 60 * time.Second

	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Authenticator resolves a bearer token to the actor it names.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

// WSHandler upgrades /ws requests and admits a connection to the hub once it
// has sent a join message carrying a valid token.
type WSHandler struct {
	Hub         *Hub
	Auth        Authenticator
	IdleTimeout time.Duration
	Upgrader    websocket.Upgrader
}

func NewWSHandler(hub *Hub, auth Authenticator, idle time.Duration, checkOrigin func(*http.Request) bool) *WSHandler {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &WSHandler{
		Hub:         hub,
		Auth:        auth,
		IdleTimeout: idle,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		log.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	h.extendDeadline(conn)
	conn.SetPongHandler(func(string) error {
		h.extendDeadline(conn)
		return nil
	})

	userID, ok := h.awaitJoin(r.Context(), conn)
	if !ok {
		return
	}

	client := h.Hub.Register(userID)
	log = log.With(slog.String("conn_id", client.ID), slog.String("user_id", userID))
	log.Info("push client joined")

	h.Hub.sendTo(client, tasksdk.PushMessage{Event: tasksdk.EventJoined})

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writeLoop(conn, client)
	}()

	// Nothing is expected after the join; reading keeps the deadline and the
	// pong handler alive and notices the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("push client read ended", slog.Any("error", err))
			}
			break
		}
		h.extendDeadline(conn)
	}

	h.Hub.Unregister(client)
	<-writerDone
	log.Info("push client left")
}

// awaitJoin reads frames until a valid join arrives. Invalid joins are
// answered with an error frame and the client may try again.
func (h *WSHandler) awaitJoin(ctx context.Context, conn *websocket.Conn) (string, bool) {
	for {
		var msg tasksdk.JoinMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// Anything but a bad payload means the connection is gone.
			if !isDecodeError(err) || !h.reject(conn, "Malformed message") {
				return "", false
			}
			continue
		}
		h.extendDeadline(conn)

		if msg.Type != tasksdk.MessageJoin {
			if !h.reject(conn, "Join your user room first") {
				return "", false
			}
			continue
		}
		if msg.Token == "" {
			if !h.reject(conn, "Access denied. No token provided.") {
				return "", false
			}
			continue
		}

		actor, err := h.Auth.Authenticate(ctx, msg.Token)
		if err != nil {
			reason := "Invalid token."
			var derr *domain.Error
			if errors.As(err, &derr) {
				reason = derr.Message
			}
			if !h.reject(conn, reason) {
				return "", false
			}
			continue
		}
		if msg.UserID != "" && msg.UserID != actor.UserID {
			if !h.reject(conn, "Cannot join another user's room") {
				return "", false
			}
			continue
		}

		return actor.UserID, true
	}
}

func (h *WSHandler) reject(conn *websocket.Conn, reason string) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(tasksdk.PushMessage{Event: tasksdk.EventError, Message: reason})
	return err == nil
}

// writeLoop is the only writer once the client has joined. It exits when
// the client is unregistered or a write fails.
func (h *WSHandler) writeLoop(conn *websocket.Conn, c *Client) {
	ticker := time.NewTicker(h.pingPeriod())
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.Messages():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				// Unblock the reader so the client gets unregistered.
				_ = conn.Close()
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}

func (h *WSHandler) extendDeadline(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(h.IdleTimeout))
}

// pingPeriod keeps pings well inside the idle window.
func (h *WSHandler) pingPeriod() time.Duration {
	return h.IdleTimeout * 9 / 10
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
