package introspection

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	"github.com/riskibarqy/referee-delegation/internal/platform/cache"
	"github.com/riskibarqy/referee-delegation/internal/platform/logging"
	"github.com/riskibarqy/referee-delegation/internal/platform/resilience"
	"github.com/riskibarqy/referee-delegation/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const maxResponseBytes = 1 << 20

var errTransient = crerr.New("auth directory transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client verifies bearer tokens against the federation auth directory.
type Client struct {
	httpClient     *http.Client
	introspectURL  string
	adminKey       string
	cacheTTL       time.Duration
	tokens         *cache.Store
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	logger         *logging.Logger
	now            func() time.Time
}

func NewClient(httpClient *http.Client, cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		introspectURL:  buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:       strings.TrimSpace(cfg.AdminKey),
		cacheTTL:       cfg.CacheTTL,
		tokens:         cache.NewStore(cfg.CacheTTL),
		breaker:        resilience.NewCircuitBreakerFromConfig(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		logger:         logger.Named("introspection"),
		now:            time.Now,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := "token:" + hashToken(token)
	if c.cacheTTL > 0 {
		if cached, ok := c.tokens.Get(ctx, key); ok {
			if principal, ok := cached.(user.Principal); ok {
				c.logger.DebugContext(ctx, "principal served from cache", "user_id", principal.UserID)
				return principal, nil
			}
		}
	}

	var decoded introspectResponse
	call := func() error {
		var err error
		decoded, err = c.introspect(ctx, token)
		return err
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Do(call, isCircuitFailure)
	} else {
		err = call()
	}
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "auth directory circuit open", "state", c.breaker.State())
			return user.Principal{}, fmt.Errorf("%w: auth directory circuit open", usecase.ErrDependencyUnavailable)
		}
		return user.Principal{}, err
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response has no user_id", usecase.ErrDependencyUnavailable)
	}

	principal := user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Role:   decoded.role(),
	}
	if ttl := c.entryTTL(decoded.ExpiresAt); ttl > 0 {
		c.tokens.SetWithTTL(ctx, key, principal, ttl)
	}
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (introspectResponse, error) {
	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "marshal introspect request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, strings.NewReader(string(encoded)))
	if err != nil {
		return introspectResponse{}, crerr.Wrap(err, "create introspect request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return introspectResponse{}, fmt.Errorf("%w: %w: request introspection: %v", usecase.ErrDependencyUnavailable, errTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return introspectResponse{}, fmt.Errorf("%w: %w: read introspect response: %v", usecase.ErrDependencyUnavailable, errTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// The directory rejected our admin key, not the caller's token.
		c.logger.ErrorContext(ctx, "auth directory rejected introspection credentials", "status_code", resp.StatusCode)
		return introspectResponse{}, fmt.Errorf("%w: introspection denied with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnContext(ctx, "auth directory unavailable", "status_code", resp.StatusCode)
		return introspectResponse{}, fmt.Errorf("%w: %w: status %d", usecase.ErrDependencyUnavailable, errTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return introspectResponse{}, fmt.Errorf("%w: introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(buf.B, &decoded); err != nil {
		return introspectResponse{}, fmt.Errorf("%w: unmarshal introspect response: %v", usecase.ErrDependencyUnavailable, err)
	}
	return decoded, nil
}

// entryTTL caps the cache lifetime at the token expiry.
func (c *Client) entryTTL(expiresAt int64) time.Duration {
	ttl := c.cacheTTL
	if ttl <= 0 {
		return 0
	}
	if expiresAt > 0 {
		remaining := time.Unix(expiresAt, 0).Sub(c.now())
		if remaining < ttl {
			ttl = remaining
		}
	}
	return ttl
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active    bool     `json:"active"`
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Roles     []string `json:"roles"`
	ExpiresAt int64    `json:"exp"`
}

// role picks the first federation role the directory reports.
func (r introspectResponse) role() user.Role {
	candidates := append([]string{r.Role}, r.Roles...)
	for _, candidate := range candidates {
		if role, err := user.ParseRole(candidate); err == nil {
			return role
		}
	}
	return ""
}

func isCircuitFailure(err error) bool {
	return stderrors.Is(err, errTransient)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return baseURL + path
}
