package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/booking-system/shared/workflow"
)

func TestHTTPTransport_InvokeReturnsResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/flights/trip-1/reserve", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var params struct {
			DepartCity string `json:"depart_city"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "Detroit", params.DepartCity)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"booking_id":"b-1"}`))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, server.Client())

	raw, err := transport.Invoke(context.Background(), "flights", "trip-1", "reserve",
		map[string]string{"depart_city": "Detroit"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"booking_id":"b-1"}`, string(raw))
}

func TestHTTPTransport_ClientErrorIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"failed to reserve the flight"}`))
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, server.Client())

	_, err := transport.Invoke(context.Background(), "flights", "trip-1", "reserve", nil)
	require.Error(t, err)
	assert.True(t, workflow.IsTerminal(err), "4xx responses must not be retried")
	assert.Contains(t, err.Error(), "failed to reserve the flight")
}

func TestHTTPTransport_ServerErrorStaysTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := NewHTTPTransport(server.URL, server.Client())

	_, err := transport.Invoke(context.Background(), "payments", "trip-1", "process", nil)
	require.Error(t, err)
	assert.False(t, workflow.IsTerminal(err), "5xx responses stay retryable")
	assert.Contains(t, err.Error(), "status 503")
}

func TestHTTPTransport_NetworkFailureStaysTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	transport := NewHTTPTransport(server.URL, nil)

	_, err := transport.Invoke(context.Background(), "cars", "trip-1", "cancel", nil)
	require.Error(t, err)
	assert.False(t, workflow.IsTerminal(err))
}
