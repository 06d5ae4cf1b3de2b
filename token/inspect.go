package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when the token is not a decodable JWT. Opaque
// tokens are fully supported by the rest of the SDK; they just carry no
// displayable metadata.
var ErrNotJWT = errors.New("token: not a JWT")

// Info is displayable token metadata. Zero-value times mean the claim was
// absent.
type Info struct {
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim are never considered expired here.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Inspect decodes claims without verifying the signature. The result must
// never gate a request or replace the backend's own 401 signal.
func Inspect(raw string) (Info, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return Info{}, ErrNotJWT
	}

	info := Info{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
