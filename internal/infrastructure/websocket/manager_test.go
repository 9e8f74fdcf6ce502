package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huhu/internal/domain/entity"
)

type fakeSender struct {
	mu     sync.Mutex
	inputs []entity.SendMessageInput
}

func (s *fakeSender) SendMessage(ctx context.Context, input entity.SendMessageInput) (*entity.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs = append(s.inputs, input)
	return &entity.Message{Message: input.Text, SenderID: input.SenderID}, nil
}

func TestClientSendAfterClose(t *testing.T) {
	client := NewClient("u1", nil)

	assert.True(t, client.Send([]byte("one")))
	client.Close()
	client.Close()
	assert.False(t, client.Send([]byte("two")))
}

func TestClientDropsWhenBufferFull(t *testing.T) {
	client := NewClient("u1", nil)
	for i := 0; i < sendBuffer; i++ {
		require.True(t, client.Send([]byte("x")))
	}
	assert.False(t, client.Send([]byte("overflow")))
}

func TestManagerSendToUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	first := NewClient("u1", nil)
	second := NewClient("u1", nil)
	m.Register <- first
	m.Register <- second
	m.Register <- NewClient("u2", nil)

	require.Eventually(t, func() bool { return m.ConnectedUsers() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, m.SendToUser("u1", []byte("hello")))
	assert.Equal(t, 0, m.SendToUser("nobody", []byte("hello")))

	m.Unregister <- first
	require.Eventually(t, func() bool { return m.SendToUser("u1", []byte("again")) == 1 }, time.Second, 5*time.Millisecond)
}

func TestHandleClientMessageOverConnection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)
	sender := &fakeSender{}
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient("u1", conn)
		m.Register <- client
		go client.WritePump()
		client.ReadPump(func(frame []byte) {
			m.HandleClientMessage(ctx, client, sender, frame)
		})
		m.Unregister <- client
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	readType := func() WSMessage {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg WSMessage
		require.NoError(t, json.Unmarshal(payload, &msg))
		return msg
	}

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	assert.Equal(t, MessageTypePong, readType().Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	assert.Equal(t, MessageTypeError, readType().Type)

	frame := `{"type":"send_message","chat_id":"c1","data":{"senderId":"spoofed","text":"hi","receiverId":"u2"}}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
	sent := readType()
	assert.Equal(t, MessageTypeMessageSent, sent.Type)
	assert.Equal(t, "c1", sent.ChatID)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Len(t, sender.inputs, 1)
	assert.Equal(t, "u1", sender.inputs[0].SenderID)
	assert.Equal(t, "c1", sender.inputs[0].ChatID)
}
