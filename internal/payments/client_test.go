package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_BearerAuthAndRequestID(t *testing.T) {
	var auths, requestIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		requestIDs = append(requestIDs, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`{"id":"ps-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gw-token")
	for i := 0; i < 2; i++ {
		if err := c.Post(context.Background(), "/sessions", nil, nil); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}

	for i, auth := range auths {
		if auth != "Bearer gw-token" {
			t.Errorf("call %d Authorization: want bearer token, got %q", i, auth)
		}
	}
	if requestIDs[0] == "" || requestIDs[1] == "" {
		t.Fatalf("X-Request-Id must be set on every call, got %q", requestIDs)
	}
	if requestIDs[0] == requestIDs[1] {
		t.Errorf("X-Request-Id must be fresh per call, got %q twice", requestIDs[0])
	}
}

func TestClient_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gw-token")
	if err := c.Post(context.Background(), "/sessions/ps-1/tokens", nil, nil); err == nil {
		t.Fatal("expected error for 422, got nil")
	}
}
