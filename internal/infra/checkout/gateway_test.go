//go:build unit

package checkout

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easebooking/internal/domain/booking"
	"easebooking/internal/pkg/config"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(config.CheckoutConfig{
		PublicKey:    "rzp_test_key",
		MerchantName: "Ease My Booking",
		SDKBaseURL:   srv.URL,
		Timeout:      5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_SuccessIsLatched(t *testing.T) {
	var hits atomic.Int32
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/checkout.js", r.URL.Path)
		_, _ = w.Write([]byte("// sdk"))
	})

	require.NoError(t, gw.Load(context.Background()))
	require.NoError(t, gw.Load(context.Background()))

	assert.Equal(t, int32(1), hits.Load(), "the SDK is fetched once and reused")
}

func TestLoad_FailureIsRetryable(t *testing.T) {
	var hits atomic.Int32
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("// sdk"))
	})

	require.Error(t, gw.Load(context.Background()))
	require.NoError(t, gw.Load(context.Background()))

	assert.Equal(t, int32(2), hits.Load())
}

func TestOpen_BuildsSessionFromConfig(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("// sdk"))
	})

	sess, err := gw.Open(context.Background(), 42, "order_abc", booking.NewMoney(100000), "INR", "Booking #42")

	require.NoError(t, err)
	assert.Equal(t, int64(42), sess.BookingID)
	assert.Equal(t, "order_abc", sess.OrderID)
	assert.Equal(t, int64(100000), sess.Amount.Minor())
	assert.Equal(t, "rzp_test_key", sess.PublicKey)
	assert.Equal(t, "Ease My Booking", sess.Merchant)
	assert.Equal(t, "Booking #42", sess.Description)
}

func TestOpen_MissingKey(t *testing.T) {
	gw := NewGateway(config.CheckoutConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gw.Open(context.Background(), 42, "order_abc", booking.NewMoney(100000), "INR", "Booking #42")

	assert.Error(t, err)
}
