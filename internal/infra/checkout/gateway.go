package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"easebooking/internal/domain/booking"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/config"
)

// Session holds everything the browser needs to open the provider's
// checkout UI for one booking attempt. Ephemeral: superseded whenever
// the visitor retries "Pay Now".
type Session struct {
	BookingID   int64
	OrderID     string
	Amount      booking.Money
	Currency    string
	PublicKey   string
	Merchant    string
	Description string
}

// Gateway fronts the external checkout provider. Load fetches the
// provider SDK on demand; Open produces the checkout session for an
// already-created order.
type Gateway interface {
	Load(ctx context.Context) error
	Open(ctx context.Context, bookingID int64, orderID string, amount booking.Money, currency, description string) (*Session, error)
}

type providerGateway struct {
	cfg    config.CheckoutConfig
	client *http.Client
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
}

func NewGateway(cfg config.CheckoutConfig, logger *slog.Logger) Gateway {
	return &providerGateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Load is idempotent: the SDK is fetched once and reused across
// attempts. A failed load is retryable on the next attempt; only
// success is latched.
func (g *providerGateway) Load(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loaded {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.SDKBaseURL+"/checkout.js", nil)
	if err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindRemoteFailure, "build checkout SDK request", "", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(g.logger, infra.KindRemoteFailure, "load checkout SDK", "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapGatewayErr(g.logger, infra.KindRemoteFailure,
			fmt.Sprintf("checkout SDK responded with status %d", resp.StatusCode), "", nil)
	}

	g.loaded = true
	g.logger.Info("checkout SDK loaded", slog.String("sdk_base_url", g.cfg.SDKBaseURL))
	return nil
}

func (g *providerGateway) Open(_ context.Context, bookingID int64, orderID string, amount booking.Money, currency, description string) (*Session, error) {
	if g.cfg.PublicKey == "" {
		return nil, infra.WrapGatewayErr(g.logger, infra.KindRemoteFailure, "checkout public key missing", "", nil)
	}
	return &Session{
		BookingID:   bookingID,
		OrderID:     orderID,
		Amount:      amount,
		Currency:    currency,
		PublicKey:   g.cfg.PublicKey,
		Merchant:    g.cfg.MerchantName,
		Description: description,
	}, nil
}
