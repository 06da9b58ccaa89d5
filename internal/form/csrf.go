// internal/form/csrf.go
//
// Product forms: stateless CSRF tokens.
//
// Context
//   Rendered forms embed a hidden token that must come back on every POST.
//   The token is stateless so session eviction never invalidates an open
//   page:
//
//      base64url( nonce | unixMicro | HMAC_SHA256(key, nonce+unixMicro) )
//
//   •  nonce – 16 random bytes.
//   •  unixMicro – issue time, 8 bytes, big-endian.
//   •  HMAC – keyed by the process CSRF key.
//
//   Verification checks the signature and rejects tokens older than
//   tokenMaxAge or issued in the future beyond one minute of clock skew.
//
// Workflow
//   •  SetCSRFKey(key)  → install the configured key at startup.
//   •  GenerateToken()  → token string for the renderer.
//   •  VerifyToken(tok) → constant-time verify; false on any failure.
//
//------------------------------------------------------------------------------

package form

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CSRFFieldName is the hidden input carrying the token.
const CSRFFieldName = "csrf_token"

const (
	tokenBytes  = 16 + 8 + sha256.Size // nonce + ts + sig
	tokenMaxAge = 2 * time.Hour
	minKeyBytes = 32
)

var (
	keyMu sync.RWMutex
	key   []byte
)

// SetCSRFKey installs a base64url (unpadded) key of at least 32 bytes.
func SetCSRFKey(encoded string) error {
	b, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return err
	}
	if len(b) < minKeyBytes {
		return errors.New("csrf key shorter than 32 bytes")
	}
	keyMu.Lock()
	key = b
	keyMu.Unlock()
	return nil
}

// GenerateToken creates a new CSRF token.  Call once per form render.
func GenerateToken() (string, error) {
	sec := secret()

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	ts := make([]byte, 8)
	binary.BigEndian.PutUint64(ts, uint64(time.Now().UnixMicro()))

	buf := make([]byte, 0, tokenBytes)
	buf = append(buf, nonce...)
	buf = append(buf, ts...)
	buf = append(buf, sign(sec, nonce, ts)...)
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// VerifyToken returns true if tok passes HMAC and age checks.
func VerifyToken(tok string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil || len(raw) != tokenBytes {
		return false
	}
	nonce, ts, sig := raw[:16], raw[16:24], raw[24:]

	issued := time.UnixMicro(int64(binary.BigEndian.Uint64(ts)))
	if time.Since(issued) > tokenMaxAge || time.Until(issued) > time.Minute {
		return false
	}
	return hmac.Equal(sig, sign(secret(), nonce, ts))
}

func sign(sec, nonce, ts []byte) []byte {
	mac := hmac.New(sha256.New, sec)
	mac.Write(nonce)
	mac.Write(ts)
	return mac.Sum(nil)
}

// secret returns the installed key, generating an ephemeral one on first use
// when none was configured.
func secret() []byte {
	keyMu.RLock()
	k := key
	keyMu.RUnlock()
	if k != nil {
		return k
	}

	keyMu.Lock()
	defer keyMu.Unlock()
	if key == nil {
		key = make([]byte, minKeyBytes)
		_, _ = rand.Read(key)
		zap.S().Warnw("csrf key not configured, using an ephemeral key",
			"hint", "set http.csrf_key")
	}
	return key
}
