package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JorgegrDev/medic-action/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpoSender_SendsBatch(t *testing.T) {
	var body atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body.Store(string(b))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewExpoSender(srv.URL, time.Second, 100)
	sentBefore := testutil.ToFloat64(metrics.PushSent)

	err := sender.Send(context.Background(), []string{"tokA", "tokB"}, Schedule{
		Key:   5,
		Title: "Recordatorio de medicamento",
		Body:  "Es hora de tomar Paracetamol - 500mg",
	})
	require.NoError(t, err)

	got, _ := body.Load().(string)
	assert.Contains(t, got, `"to":"tokA"`)
	assert.Contains(t, got, `"to":"tokB"`)
	assert.Contains(t, got, `"sound":"default"`)
	assert.Equal(t, sentBefore+2, testutil.ToFloat64(metrics.PushSent))
}

func TestExpoSender_NoTokensIsNoop(t *testing.T) {
	sender := NewExpoSender("http://unused.invalid", time.Second, 100)
	require.NoError(t, sender.Send(context.Background(), nil, Schedule{Key: 1}))
}

func TestExpoSender_OpenBreakerSkipsEndpoint(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sender := NewExpoSender(srv.URL, time.Second, 100)
	failedBefore := testutil.ToFloat64(metrics.PushFailed)
	rejectedBefore := testutil.ToFloat64(metrics.PushRejected)

	// Six consecutive failures trip the breaker.
	for i := 0; i < 6; i++ {
		require.Error(t, sender.Send(context.Background(), []string{"tok"}, Schedule{Key: 1}))
	}
	require.EqualValues(t, 6, hits.Load())
	assert.Equal(t, failedBefore+6, testutil.ToFloat64(metrics.PushFailed))

	// The next send is rejected without reaching the endpoint and is counted
	// as a rejection, not a delivery failure.
	require.Error(t, sender.Send(context.Background(), []string{"tok"}, Schedule{Key: 1}))
	assert.EqualValues(t, 6, hits.Load())
	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(metrics.PushRejected))
	assert.Equal(t, failedBefore+6, testutil.ToFloat64(metrics.PushFailed))
}
