package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service, _, _ := newTestService(t)
	h := NewHandler(service)

	r.POST("/session", h.Guest)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)

	return r
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)

	payload := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	}

	// First request (should succeed)
	postJSON(r, "/auth/register", payload)

	// Second request (should fail)
	w2 := postJSON(r, "/auth/register", payload)

	if w2.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w2.Code)
	}
}

func TestLoginAndGuest(t *testing.T) {
	r := setupTestRouter(t)

	postJSON(r, "/auth/register", map[string]string{
		"name": "Arjun", "email": "arjun@example.com", "password": "Password@123",
	})

	w := postJSON(r, "/auth/login", map[string]string{
		"email": "arjun@example.com", "password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}

	w = postJSON(r, "/auth/login", map[string]string{
		"email": "arjun@example.com", "password": "Password@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = postJSON(r, "/session", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var s Session
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	if s.Token == "" || s.Role != RoleGuest {
		t.Fatalf("unexpected guest session: %+v", s)
	}
}
