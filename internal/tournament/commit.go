package tournament

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/fugaso-go/slot-core/internal/config"
	"github.com/fugaso-go/slot-core/internal/models"
)

// CommitClient posts commit-wins notifications back to the tournament
// server. It owns the auth token: the token is only read and refreshed
// under the client's lock, and an auth-rejected commit re-authenticates
// once and retries before giving up.
type CommitClient struct {
	cfg    *config.TourConfig
	client *http.Client

	mu    sync.Mutex
	token string
}

// NewCommitClient constructs a CommitClient for cfg.
func NewCommitClient(cfg *config.TourConfig) *CommitClient {
	return &CommitClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type authRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type commitRequest struct {
	RemoteID string `json:"remoteId"`
	Tour     string `json:"tour"`
	Server   string `json:"server,omitempty"`
}

// CommitWins notifies the tournament server that the given done gains have
// been settled locally. An auth failure refreshes the token and retries the
// failed gain once; any other failure is returned to the caller (which logs
// and moves on, the dispatch is fire-and-forget).
func (c *CommitClient) CommitWins(ctx context.Context, gains []*models.TournamentGain) error {
	if c.cfg.URL == "" || len(gains) == 0 {
		return nil
	}
	for _, g := range gains {
		if err := c.commitOne(ctx, g, true); err != nil {
			return err
		}
	}
	return nil
}

func (c *CommitClient) commitOne(ctx context.Context, gain *models.TournamentGain, retryAuth bool) error {
	token, err := c.currentToken(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(commitRequest{RemoteID: gain.RemoteID, Tour: gain.Tour, Server: c.cfg.Server})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/commitWins", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && retryAuth {
		c.invalidateToken()
		return c.commitOne(ctx, gain, false)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("commitWins: status %d for gain %s", resp.StatusCode, gain.RemoteID)
	}
	return nil
}

func (c *CommitClient) currentToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return c.token, nil
	}

	body, err := json.Marshal(authRequest{Name: c.cfg.Name, Password: c.cfg.Password})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/auth", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("tournament auth: status %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", err
	}
	c.token = auth.Token
	return c.token, nil
}

func (c *CommitClient) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
