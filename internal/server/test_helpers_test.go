package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"dead-air/internal/config"
	"dead-air/internal/db"
	"dead-air/internal/mail"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// sendRecorder captures outbound mail so tests can count sends.
type sendRecorder struct {
	mu       sync.Mutex
	messages []mail.Message
	fail     bool
}

func (r *sendRecorder) Send(_ context.Context, msg mail.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return "", errors.New("notifier unavailable")
	}
	r.messages = append(r.messages, msg)
	return fmt.Sprintf("msg-%d", len(r.messages)), nil
}

func (r *sendRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func (r *sendRecorder) last() mail.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return mail.Message{}
	}
	return r.messages[len(r.messages)-1]
}

func (r *sendRecorder) setFail(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = fail
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func newTestServer(t *testing.T) (*Server, *httptest.Server, *sendRecorder) {
	t.Helper()
	return newTestServerWithConfig(t, config.Default())
}

func newTestServerWithConfig(t *testing.T, cfg config.Config) (*Server, *httptest.Server, *sendRecorder) {
	t.Helper()
	recorder := &sendRecorder{}
	srv := New(openTestDB(t), cfg, recorder)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts, recorder
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertString(t *testing.T, value any) {
	t.Helper()
	if _, ok := value.(string); !ok {
		t.Fatalf("expected string, got %T", value)
	}
}

// mockPurchase drives the purchase endpoint and hands back the identity
// triple most tests start from.
func mockPurchase(t *testing.T, ts *httptest.Server, packSize int) (redeemCode string, gameID uint, hostPin string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/mock-purchase", map[string]any{
		"packSize": packSize,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["redeemCode"].(string), uint(body["gameId"].(float64)), body["hostPin"].(string)
}

func setUpGame(t *testing.T, ts *httptest.Server, gameID uint, pin string, names []string) []map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, gamePath(gameID, "setup"), map[string]any{
		"hostPin": pin,
		"players": names,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	raw := body["players"].([]any)
	players := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		players = append(players, entry.(map[string]any))
	}
	return players
}

func gamePath(gameID uint, action string) string {
	return fmt.Sprintf("/api/games/%d/%s", gameID, action)
}

func markStoryGenerated(t *testing.T, srv *Server, gameID uint) {
	t.Helper()
	err := srv.db.Model(&db.Game{}).Where("id = ?", gameID).Update("story_generated", true).Error
	if err != nil {
		t.Fatalf("mark story generated: %v", err)
	}
}

func saveIntakeFor(t *testing.T, ts *httptest.Server, joinCode string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/intake/save", map[string]any{
		"code": joinCode,
		"answers": map[string]string{
			"socialStyle": "observer",
			"comfort":     "light",
			"drink":       "wine",
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}
