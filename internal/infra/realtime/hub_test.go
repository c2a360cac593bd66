package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"performiq/internal/domain/entity"
	"performiq/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func startHubServer(t *testing.T, hub *Hub) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		orgID, err := uuid.Parse(r.URL.Query().Get("org"))
		if err != nil {
			http.Error(w, "bad org", http.StatusBadRequest)

			return
		}
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Serve(r.Context(), conn, orgID)
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string, orgID uuid.UUID) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url+"?org="+orgID.String(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))

	return msg
}

func TestHub_BroadcastsToOrgClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	url := startHubServer(t, hub)

	orgA, orgB := uuid.New(), uuid.New()
	connA := dial(t, url, orgA)
	connB := dial(t, url, orgB)

	assert.Equal(t, "connected", readMessage(t, connA).Type)
	assert.Equal(t, "connected", readMessage(t, connB).Type)
	require.Eventually(t, func() bool {
		return hub.ClientCount(orgA) == 1 && hub.ClientCount(orgB) == 1
	}, time.Second, 10*time.Millisecond)

	err := hub.NotifySync(context.Background(), &service.SyncEvent{
		Type:  service.SyncEventCompleted,
		OrgID: orgA,
		Results: map[entity.Provider]*entity.SyncResult{
			entity.ProviderSlack: entity.SucceededResult(4),
		},
		CompletedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	msg := readMessage(t, connA)
	assert.Equal(t, string(service.SyncEventCompleted), msg.Type)
	data, ok := msg.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, orgA.String(), data["org_id"])

	// orgB must not see orgA's event.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, _, err = connB.Read(ctx)
	assert.Error(t, err)
}

func TestHub_RemovesClientOnDisconnect(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	url := startHubServer(t, hub)

	orgID := uuid.New()
	conn := dial(t, url, orgID)
	readMessage(t, conn)
	require.Eventually(t, func() bool { return hub.ClientCount(orgID) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))

	assert.Eventually(t, func() bool { return hub.ClientCount(orgID) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	url := startHubServer(t, hub)

	orgID := uuid.New()
	conn := dial(t, url, orgID)
	readMessage(t, conn)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
}

func TestHub_NotifyWithoutClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := hub.NotifySync(context.Background(), &service.SyncEvent{OrgID: uuid.New()})
	assert.NoError(t, err)
}
