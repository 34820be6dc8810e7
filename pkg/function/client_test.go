package function

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/analyze-prompt", r.URL.Path)
		assert.Equal(t, "Bearer anon", r.Header.Get("Authorization"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a todo app", body["prompt"])

		w.Write([]byte(`{"overallScore": 61}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "", "anon", time.Second)
	out, err := c.Invoke(context.Background(), "a todo app")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 61}`, out)
}

func TestInvokeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error field", body: `{"error": "Rate limit exceeded"}`, want: "Rate limit exceeded"},
		{name: "message field", body: `{"message": "Function not found"}`, want: "Function not found"},
		{name: "opaque body", body: `<html>bad gateway</html>`, want: "Failed to analyze prompt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "analyze-prompt", "", time.Second).Invoke(context.Background(), "x")

			var fe *Error
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, http.StatusBadGateway, fe.StatusCode)
			assert.Equal(t, tt.want, fe.Error())
		})
	}
}

func TestInvokeCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "", "", time.Second).Invoke(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
