package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateSessionToken(issuer, userID string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// TokenActive reports whether the session token's expiry claim is still in
// the future. The signature is deliberately not verified: the client does
// not hold the server's signing key, and a locally tampered expiry only
// shortens or lengthens the trip to the login screen.
//
// A token without an exp claim is treated as active.
func TokenActive(tokenString string) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, fmt.Errorf("parse session token: %w", err)
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("read token expiry: %w", err)
	}
	if expiry == nil {
		return true, nil
	}

	return expiry.After(time.Now()), nil
}
