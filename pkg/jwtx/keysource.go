package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNoKeySource is returned when no JWKS source was configured at all.
var ErrNoKeySource = errors.New("jwtx: no jwks source configured")

// LoadKeySet populates a KeySet from a JWKS source. The source may be:
//
//   - an http(s) URL pointing at the identity provider's jwks.json endpoint
//   - a filesystem path to a JWKS document
//   - the literal JWKS JSON itself (handy for tests and containers)
//
// We only ever hold public keys here; signing is the identity provider's
// problem, not ours.
func LoadKeySet(ctx context.Context, source string) (*KeySet, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrNoKeySource
	}

	var raw []byte
	switch {
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		b, err := fetchJWKS(ctx, source)
		if err != nil {
			return nil, err
		}
		raw = b
	case strings.HasPrefix(source, "{"):
		raw = []byte(source)
	default:
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("jwtx: read jwks file: %w", err)
		}
		raw = b
	}

	var jwks JWKS
	if err := json.Unmarshal(raw, &jwks); err != nil {
		return nil, fmt.Errorf("jwtx: parse jwks: %w", err)
	}
	if len(jwks.Keys) == 0 {
		return nil, errors.New("jwtx: jwks contains no keys")
	}

	ks := NewKeySet()
	if err := ks.ResetFromJWKS(jwks); err != nil {
		return nil, err
	}
	return ks, nil
}

func fetchJWKS(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
