package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradeready/portal/internal/core/domain"
)

// TokenCodec mints session tokens and recovers the email they carry.
type TokenCodec interface {
	Encode(email string, issuedAt time.Time) (string, error)
	Decode(token string) (string, error)
}

// OpaqueTokenCodec produces base64("email:unixMillis"). Anyone holding the
// token can read it and anyone can forge one; it only marks "signed in".
type OpaqueTokenCodec struct{}

func (OpaqueTokenCodec) Encode(email string, issuedAt time.Time) (string, error) {
	raw := email + ":" + strconv.FormatInt(issuedAt.UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

func (OpaqueTokenCodec) Decode(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decode token: %w", domain.ErrInvalidToken)
	}
	s := string(raw)
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return "", domain.ErrInvalidToken
	}
	if _, err := strconv.ParseInt(s[i+1:], 10, 64); err != nil {
		return "", domain.ErrInvalidToken
	}
	return s[:i], nil
}

// JWTTokenCodec signs tokens with HS256. A zero ttl issues tokens without
// an expiry, matching the opaque codec.
type JWTTokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenCodec(secret string, ttl time.Duration) *JWTTokenCodec {
	return &JWTTokenCodec{secret: []byte(secret), ttl: ttl}
}

func (c *JWTTokenCodec) Encode(email string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iat":   issuedAt.Unix(),
	}
	if c.ttl > 0 {
		claims["exp"] = issuedAt.Add(c.ttl).Unix()
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

func (c *JWTTokenCodec) Decode(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", domain.ErrInvalidToken
	}
	return email, nil
}

// PasswordHasher turns passwords into their stored form and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}

// BcryptHasher stores bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// PlainHasher stores passwords verbatim. Demo data only.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) { return password, nil }

func (PlainHasher) Matches(stored, password string) bool { return stored == password }
