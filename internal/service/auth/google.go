// Package auth resolves Google bearer credentials to user identities.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	drepo "WyckoffLab/internal/domain/repository"
	"WyckoffLab/pkg/cache"
	applogger "WyckoffLab/pkg/logger"
)

// GoogleVerifier verifies ID tokens against the Google tokeninfo endpoint
// and uses the verified email as the user id. Verified identities are cached
// until the session TTL so each request does not round-trip to Google.
type GoogleVerifier struct {
	tokenInfoURL string
	sessionTTL   time.Duration
	http         *http.Client
	cache        cache.Service
	logger       *applogger.Logger
}

func NewGoogleVerifier(tokenInfoURL string, sessionTTL, timeout time.Duration, c cache.Service, logger *applogger.Logger) drepo.IdentityProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if sessionTTL <= 0 {
		sessionTTL = 15 * time.Minute
	}
	return &GoogleVerifier{
		tokenInfoURL: tokenInfoURL,
		sessionTTL:   sessionTTL,
		http:         &http.Client{Timeout: timeout},
		cache:        c,
		logger:       logger,
	}
}

type tokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	ExpiresIn     string `json:"expires_in"`
}

// CurrentUserID resolves a bearer token to a user id. An absent, expired, or
// rejected token yields an empty id without an error; errors are reserved
// for verifier-side failures such as an unreachable endpoint.
func (g *GoogleVerifier) CurrentUserID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}

	key := sessionKey(token)
	var cached string
	if err := g.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		g.logger.Warn("identity cache read failed", applogger.Error(err))
	}

	email, err := g.verify(ctx, token)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", nil
	}

	if err := g.cache.Set(ctx, key, email, g.sessionTTL); err != nil {
		g.logger.Warn("identity cache write failed", applogger.Error(err))
	}
	return email, nil
}

func (g *GoogleVerifier) verify(ctx context.Context, token string) (string, error) {
	u := g.tokenInfoURL + "?id_token=" + url.QueryEscape(token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("tokeninfo request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("tokeninfo: %w", err)
	}
	defer resp.Body.Close()

	// Google answers 4xx for invalid or expired tokens.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		io.Copy(io.Discard, resp.Body)
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tokeninfo: status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("tokeninfo decode: %w", err)
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return "", nil
	}
	return info.Email, nil
}

// sessionKey hashes the raw token so credentials never appear in the cache.
func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}
