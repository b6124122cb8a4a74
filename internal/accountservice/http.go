package accountservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/fugaso-go/slot-core/internal/interfaces"
	"github.com/fugaso-go/slot-core/internal/models"
)

// HTTPConfig carries the per-user requestCfg/retryCfg knobs resolved at
// login: connect/read timeouts and the urgent retry attempt count (default
// 6, or 1 when a deferred RetryService is already covering retries).
type HTTPConfig struct {
	BaseURL        string
	ConnectTimeout time.Duration
	Timeout        time.Duration
	UrgentAttempts int
}

// DefaultHTTPConfig returns the stock timeouts and urgent retry attempts.
func DefaultHTTPConfig(baseURL string) HTTPConfig {
	return HTTPConfig{
		BaseURL:        baseURL,
		ConnectTimeout: 2 * time.Second,
		Timeout:        5 * time.Second,
		UrgentAttempts: 6,
	}
}

// HTTP is the real outbound interfaces.IAccountService implementation:
// every wallet POST retries transport failures under an exponential
// backoff bounded by the configured attempt budget.
type HTTP struct {
	cfg    HTTPConfig
	client *http.Client
}

// NewHTTP constructs an HTTP account service bound to cfg.
func NewHTTP(cfg HTTPConfig) *HTTP {
	return &HTTP{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
	}
}

// accountErrorResponse is the wire shape a failing wallet call returns.
type accountErrorResponse struct {
	RC      string `json:"rc"`
	Message string `json:"message"`
}

func (h *HTTP) newBackOff() backoff.BackOff {
	attempts := h.cfg.UrgentAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(200*time.Millisecond),
		backoff.WithMaxElapsedTime(h.cfg.Timeout*time.Duration(attempts)),
		backoff.WithMultiplier(1.5),
	), uint64(attempts-1))
}

// post retries a JSON POST to path with body, decoding into out on 2xx and
// into an accountErrorResponse otherwise. Transport-level failures
// (connection refused, timeout) are retried by backoff; a decoded
// AccountError is returned as backoff.Permanent so callers classify it
// exactly once.
func (h *HTTP) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return backoff.Permanent(err)
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.cfg.BaseURL+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := h.client.Do(req)
		if err != nil {
			return &interfaces.AccountError{RC: interfaces.RCIOError, Message: err.Error()}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return &interfaces.AccountError{RC: interfaces.RCIOError, Message: err.Error()}
		}

		if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(raw, out); err != nil {
				return backoff.Permanent(&interfaces.AccountError{RC: interfaces.RCFormatError, Message: err.Error()})
			}
			return nil
		}

		var accErr accountErrorResponse
		if err := json.Unmarshal(raw, &accErr); err != nil || accErr.RC == "" {
			return backoff.Permanent(&interfaces.AccountError{RC: interfaces.RCHTTPError, Message: fmt.Sprintf("status %d", resp.StatusCode)})
		}
		return backoff.Permanent(&interfaces.AccountError{RC: accErr.RC, Message: accErr.Message})
	}

	return backoff.Retry(operation, h.newBackOff())
}

// Login posts the resolved auth/ip/user-agent to the wallet's login
// endpoint.
func (h *HTTP) Login(ctx context.Context, req interfaces.LoginRequest) (interfaces.LoginResult, error) {
	var out interfaces.LoginResult
	if err := h.post(ctx, "/login", req, &out); err != nil {
		return interfaces.LoginResult{}, err
	}
	return out, nil
}

// wagerWireResponse is the wallet's wager-endpoint success/failure payload.
type wagerWireResponse struct {
	Balance decimal.Decimal         `json:"balance"`
	Outcome interfaces.WagerOutcome `json:"outcome"`
}

// Wager debits the wallet for a bet, unwrapping a backoff.Permanent
// AccountError into Proxy's (outcome, accErr, nil) contract instead of
// surfacing it as a transport error.
func (h *HTTP) Wager(ctx context.Context, req interfaces.WagerRequest) (decimal.Decimal, interfaces.WagerOutcome, *interfaces.AccountError, error) {
	var out wagerWireResponse
	err := h.post(ctx, "/wager", req, &out)
	if err == nil {
		return out.Balance, interfaces.WagerAccepted, nil, nil
	}
	var accErr *interfaces.AccountError
	if asAccountError(err, &accErr) {
		outcome := interfaces.WagerRemoteError
		if accErr.RC == interfaces.RCOutOfMoney {
			outcome = interfaces.WagerOutOfMoney
		}
		return decimal.Zero, outcome, accErr, nil
	}
	return decimal.Zero, interfaces.WagerRemoteError, nil, err
}

// Result credits the wallet for a win.
func (h *HTTP) Result(ctx context.Context, req interfaces.ResultRequest) (decimal.Decimal, error) {
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := h.post(ctx, "/result", req, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

// Rollback issues the compensating call after a rollback-classified wager
// failure.
func (h *HTTP) Rollback(ctx context.Context, req interfaces.WagerRequest) error {
	return h.post(ctx, "/rollback", req, nil)
}

// CheckJackpots asks the wallet whether stake hit any configured jackpot.
func (h *HTTP) CheckJackpots(ctx context.Context, req interfaces.JackpotHitRequest) (interfaces.JackpotHitResult, error) {
	var out interfaces.JackpotHitResult
	if err := h.post(ctx, "/jackpots/check", req, &out); err != nil {
		return interfaces.JackpotHitResult{}, err
	}
	return out, nil
}

// GetBalance re-reads the wallet balance.
func (h *HTTP) GetBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var out struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := h.post(ctx, "/balance", map[string]uint{"userId": userID}, &out); err != nil {
		return decimal.Zero, err
	}
	return out.Balance, nil
}

// TournamentWin commits an idempotent tournament award against the wallet.
func (h *HTTP) TournamentWin(ctx context.Context, gain *models.TournamentGain) error {
	return h.post(ctx, "/tournament/win", gain, nil)
}

// Close tears down the wallet-side session.
func (h *HTTP) Close(ctx context.Context, userID uint) error {
	return h.post(ctx, "/close", map[string]uint{"userId": userID}, nil)
}

// asAccountError unwraps the *interfaces.AccountError backoff.Retry
// eventually gives up and returns permanently.
func asAccountError(err error, target **interfaces.AccountError) bool {
	for err != nil {
		if ae, ok := err.(*interfaces.AccountError); ok {
			*target = ae
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
