package schoolapi

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{API: core.APIConfig{BaseURL: srv.URL}}
	client, err := NewClient(conf, testLogger{})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return client, srv
}

func TestClient_attachesTokenAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))

	ctx := WithToken(context.Background(), "tok123")
	_, err := client.QueryAllLessons(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_noTokenNoHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.QueryAllLessons(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_listDecoding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "pagination envelope", body: `{"items": [{"id": 1}, {"id": 2}], "total": 2, "skip": 0, "limit": 100}`, want: 2},
		{name: "bare array", body: `[{"id": 1}, {"id": 2}, {"id": 3}]`, want: 3},
		{name: "empty envelope", body: `{"items": [], "total": 0}`, want: 0},
		{name: "empty array", body: `[]`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			lessons, err := client.QueryAllLessons(context.Background())
			assert.NoError(t, err)
			assert.Len(t, lessons, tt.want)
		})
	}
}

func TestClient_apiError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid payload"})
	}))

	_, err := client.GetLesson(context.Background(), 1)
	var apiErr *APIError
	assert.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid payload", apiErr.Detail)
}

func TestClient_notFoundMapsToCoreErr(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetLesson(context.Background(), 404)
	assert.True(t, stderrors.Is(err, core.ErrNotFound))
}

func TestClient_writePaths(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))

	_, err := client.MarkPayablePaid(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/contas-pagar/12/pagar", gotPath)

	err = client.DeleteLesson(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/aulas/3", gotPath)
}
