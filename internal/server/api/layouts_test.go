package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kmathur/glide/internal/store"
)

// newTestStore creates a new Store with a temporary database for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

// qwertyKeys returns three adjacent 50x50 keys q, w and e.
func qwertyKeys() []store.KeyRect {
	return []store.KeyRect{
		{KeyID: "q", Left: 0, Top: 0, Right: 50, Bottom: 50},
		{KeyID: "w", Left: 50, Top: 0, Right: 100, Bottom: 50},
		{KeyID: "e", Left: 100, Top: 0, Right: 150, Bottom: 50},
	}
}

func TestLayoutHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	layout := &store.Layout{ID: "qwerty", Name: "QWERTY"}
	if err := s.Layouts().Create(layout); err != nil {
		t.Fatalf("failed to create layout: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/layouts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var response listLayoutsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Layouts) != 1 {
		t.Fatalf("expected 1 layout, got %d", len(response.Layouts))
	}
	if response.Layouts[0].Name != "QWERTY" {
		t.Errorf("expected layout name QWERTY, got %s", response.Layouts[0].Name)
	}
}

func TestLayoutHandler_Create(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	body, _ := json.Marshal(createLayoutRequest{
		Name: "QWERTY",
		Keys: qwertyKeys(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/layouts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var response layoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ID == "" {
		t.Error("expected a generated layout ID")
	}
	if response.KeyCount != 3 {
		t.Errorf("expected key count 3, got %d", response.KeyCount)
	}

	// The keys were persisted alongside the layout
	keys, err := s.Layouts().GetKeys(response.ID)
	if err != nil {
		t.Fatalf("failed to get keys: %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("expected 3 stored keys, got %d", len(keys))
	}
}

func TestLayoutHandler_CreateRequiresName(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/layouts", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestLayoutHandler_Get(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	layout := &store.Layout{ID: "qwerty", Name: "QWERTY"}
	if err := s.Layouts().Create(layout); err != nil {
		t.Fatalf("failed to create layout: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/layouts/qwerty", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response layoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.ID != "qwerty" {
		t.Errorf("expected ID qwerty, got %s", response.ID)
	}
}

func TestLayoutHandler_GetNotFound(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	req := httptest.NewRequest(http.MethodGet, "/api/layouts/missing", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestLayoutHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	layout := &store.Layout{ID: "qwerty", Name: "QWERTY"}
	if err := s.Layouts().Create(layout); err != nil {
		t.Fatalf("failed to create layout: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/layouts/qwerty", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	if _, err := s.Layouts().GetByID("qwerty"); err == nil {
		t.Error("expected layout to be deleted")
	}
}

func TestLayoutHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewLayoutHandler(s)

	req := httptest.NewRequest(http.MethodPut, "/api/layouts", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
