package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed access token.
//
// The embedded claims carry the owner id in "sub". UserID caches the parsed
// subject so handlers do not convert it again on every request.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim as the owner id.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to user id: %w", err)
	}

	return userID, nil
}

// Bearer returns the value of an Authorization header carrying the token.
func (t *Token) Bearer() string {
	return "Bearer " + t.SignedString
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
