// Package auth covers both sides of authentication: the built-in admin
// credential that gates catalog mutations, and the signed session
// tokens handed to logged-in clients.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadToken rejects tampered, malformed or expired session tokens.
var ErrBadToken = errors.New("invalid or expired token")

// HashPassword returns a bcrypt hash of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// MustHashPassword is for seeding fixed credentials at startup, where a
// bcrypt failure is unrecoverable anyway.
func MustHashPassword(plain string) string {
	hash, err := HashPassword(plain)
	if err != nil {
		panic(err)
	}
	return hash
}

// CheckHash compares a plaintext password against a bcrypt hash.
func CheckHash(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ParseBasic decodes an "Authorization: Basic ..." header into a
// username/password pair.
func ParseBasic(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	creds := strings.SplitN(string(raw), ":", 2)
	if len(creds) != 2 {
		return "", "", false
	}
	return creds[0], creds[1], true
}

// Tokens is an HMAC-SHA256 token minter/verifier. A token is
// "id.role.expiry.sig": no server-side session table, tampering or
// expiry invalidates it.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Claims is what a verified token asserts.
type Claims struct {
	ID   int
	Role string
}

func (t *Tokens) sign(payload string) string {
	mac := hmac.New(sha256.New, t.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Mint issues a token for the given identity, expiring after the
// configured TTL.
func (t *Tokens) Mint(id int, role string) string {
	exp := time.Now().Add(t.ttl).Unix()
	payload := fmt.Sprintf("%d.%s.%d", id, role, exp)
	return payload + "." + t.sign(payload)
}

// Verify checks signature and expiry and returns the embedded claims.
func (t *Tokens) Verify(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return Claims{}, ErrBadToken
	}
	payload := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(parts[3]), []byte(t.sign(payload))) {
		return Claims{}, ErrBadToken
	}
	exp, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || time.Now().Unix() > exp {
		return Claims{}, ErrBadToken
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Claims{}, ErrBadToken
	}
	return Claims{ID: id, Role: parts[1]}, nil
}
