package tasksdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// ErrJoinRejected is returned by Subscribe when the server refuses the join.
var ErrJoinRejected = errors.New("tasksdk: join rejected")

// Subscription is an open push channel.
type Subscription struct {
	conn *websocket.Conn
}

// Subscribe dials /ws and joins the session user's room. If the session
// has no cached user the server takes the id from the token.
func (s *Session) Subscribe(ctx context.Context) (*Subscription, error) {
	wsURL := s.client.url("/ws")
	switch {
	case strings.HasPrefix(wsURL, "https://"):
		wsURL = "wss://" + strings.TrimPrefix(wsURL, "https://")
	case strings.HasPrefix(wsURL, "http://"):
		wsURL = "ws://" + strings.TrimPrefix(wsURL, "http://")
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, http.Header{})
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to dial push channel (HTTP %d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to dial push channel: %w", err)
	}

	sub := &Subscription{conn: conn}
	join := JoinMessage{Type: MessageJoin, UserID: s.user.ID, Token: s.token}
	if err := conn.WriteJSON(join); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send join: %w", err)
	}

	reply, err := sub.Next(ctx)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if reply.Event != EventJoined {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrJoinRejected, reply.Message)
	}
	return sub, nil
}

// Next blocks for the next frame. The context deadline, if any, bounds the
// wait.
func (s *Subscription) Next(ctx context.Context) (PushMessage, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		return PushMessage{}, err
	}

	var msg PushMessage
	if err := s.conn.ReadJSON(&msg); err != nil {
		return PushMessage{}, fmt.Errorf("failed to read push message: %w", err)
	}
	return msg, nil
}

// Close closes the push channel.
func (s *Subscription) Close() error {
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return s.conn.Close()
}
