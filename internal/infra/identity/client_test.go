package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/pkg/metrics"
)

func TestClient_SignUp(t *testing.T) {
	t.Run("Should return the verification attempt handle", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/sign_up", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"attempt_id": "attempt-9"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", metrics.NewNop())
		pending, err := client.SignUp(context.Background(), "ada@example.com", "hunter22")

		assert.NoError(t, err)
		assert.Equal(t, "attempt-9", pending.AttemptID)
	})

	t.Run("Should surface the first provider error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors": [{"message": "email already taken"}, {"message": "second message"}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", metrics.NewNop())
		_, err := client.SignUp(context.Background(), "ada@example.com", "hunter22")

		assert.EqualError(t, err, "email already taken")
	})

	t.Run("Should fall back to a status error when the body is opaque", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream exploded`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", metrics.NewNop())
		_, err := client.SignUp(context.Background(), "ada@example.com", "hunter22")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestClient_Verify(t *testing.T) {
	t.Run("Should map a complete session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/sign_up/attempt-9/verify", r.URL.Path)
			w.Write([]byte(`{"status": "complete", "created_session_id": "sess-1", "user_id": "user-1"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", metrics.NewNop())
		result, err := client.Verify(context.Background(), "attempt-9", "123456")

		assert.NoError(t, err)
		assert.Equal(t, outbound.SessionComplete, result.Status)
		assert.Equal(t, "sess-1", result.SessionID)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Should map anything else to needs_steps", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "missing_requirements"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "test-key", metrics.NewNop())
		result, err := client.Verify(context.Background(), "attempt-9", "123456")

		assert.NoError(t, err)
		assert.Equal(t, outbound.SessionNeedsSteps, result.Status)
	})
}
