package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petquest/internal/catalog"
	"petquest/internal/engine"
	"petquest/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *engine.Engine) {
	t.Helper()
	kv := storage.NewMemory()
	eng, err := engine.New(context.Background(), engine.Options{KV: kv, Location: time.UTC})
	require.NoError(t, err)
	t.Cleanup(func() {
		eng.Close()
		_ = kv.Close()
	})
	return New(Config{Engine: eng}), eng
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetState(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.EqualValues(t, engine.StartingPoints, got["points"])
	assert.Equal(t, "happy", got["mood"])
	assert.Equal(t, false, got["undoable"])
	pet := got["activePet"].(map[string]any)
	assert.Equal(t, catalog.StarterPetID, pet["id"])
}

func TestTaskLifecycle(t *testing.T) {
	s, eng := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/tasks", map[string]string{"title": "  Write report ", "deadline": "2h"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decode[engine.Task](t, rec)
	assert.Equal(t, "Write report", task.Title)

	rec = do(t, h, http.MethodPost, "/api/v1/tasks/"+task.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[map[string]any](t, rec)
	assert.Equal(t, true, res["completed"])
	earned := int(res["earned"].(float64))
	assert.InDelta(t, 54, earned, 1)
	assert.Equal(t, engine.StartingPoints+earned, eng.Points())

	rec = do(t, h, http.MethodPost, "/api/v1/tasks/"+task.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]any](t, rec)["completed"])

	rec = do(t, h, http.MethodPost, "/api/v1/undo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]bool{"undone": true}, decode[map[string]bool](t, rec))
	assert.Equal(t, engine.StartingPoints, eng.Points())

	rec = do(t, h, http.MethodDelete, "/api/v1/tasks/"+task.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, eng.Tasks())
}

func TestAddTaskValidation(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/tasks", map[string]string{"title": "   ", "deadline": "1h"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/tasks", map[string]string{"title": "x", "deadline": "someday"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/tasks", map[string]any{"title": "x", "bogus": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShopStatusCodes(t *testing.T) {
	s, eng := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/shop/accessories/acc_flower", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, engine.StartingPoints-50, eng.Points())

	rec = do(t, h, http.MethodPost, "/api/v1/shop/pets/no_such_pet", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/shop/themes/forest", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	rec = do(t, h, http.MethodPost, "/api/v1/shop/hats/top", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEquip(t *testing.T) {
	s, eng := newTestServer(t)
	h := s.Handler()

	require.NoError(t, eng.BuyAccessory(context.Background(), "acc_flower"))
	rec := do(t, h, http.MethodPut, "/api/v1/equip/accessory", map[string]string{"id": "acc_flower"})
	require.Equal(t, http.StatusOK, rec.Code)
	acc, ok := eng.ActiveAccessory()
	require.True(t, ok)
	assert.Equal(t, "acc_flower", acc.ID)

	rec = do(t, h, http.MethodPut, "/api/v1/equip/shoes", map[string]string{"id": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategories(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/categories", map[string]string{"name": "Errands", "color": "#ff0000"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[map[string]any](t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = do(t, h, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Errands")

	rec = do(t, h, http.MethodDelete, "/api/v1/categories/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/categories", map[string]string{"name": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFriendsAndLeaderboard(t *testing.T) {
	s, eng := newTestServer(t)
	h := s.Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/friends", map[string]string{"code": "abc123"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.True(t, strings.HasPrefix(body["message"].(string), "Added "))

	rec = do(t, h, http.MethodPost, "/api/v1/friends", map[string]string{"code": "ABC123"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/friends", map[string]string{"code": eng.UserCode()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "yourself")

	rec = do(t, h, http.MethodPost, "/api/v1/friends", map[string]string{"code": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/leaderboard?window=monthly", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	lb := decode[struct {
		Window  string           `json:"window"`
		Entries []map[string]any `json:"entries"`
	}](t, rec)
	assert.Equal(t, "monthly", lb.Window)
	require.Len(t, lb.Entries, 2)
}

func TestQuoteFallsBackWithoutGenerator(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/quote", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Let's get to work!", decode[map[string]string](t, rec)["quote"])

	rec = do(t, s.Handler(), http.MethodPost, "/api/v1/suggestions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"suggestions":[]}`, rec.Body.String())
}

func TestExportAndCatalog(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "points: 150")

	rec = do(t, s.Handler(), http.MethodGet, "/api/v1/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acc_flower")
}

func TestWebSocketReceivesEngineEvents(t *testing.T) {
	s, eng := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.startBackground(ctx)

	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration is asynchronous, so keep producing events until one arrives.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				_, _ = eng.AddTask(ctx, "ping", time.Now().Add(time.Hour), "")
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg WebSocketMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Contains(t, []string{string(engine.EventState), string(engine.EventMood)}, msg.Type)
}
