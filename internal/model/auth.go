package model

import "github.com/golang-jwt/jwt/v5"

// Identity is the resolved user identity attached to every authenticated
// request. The zero value means "not signed in".
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// IsZero reports whether no identity is present.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// IdentityClaims are the JWT claims carried by a guest token.
type IdentityClaims struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	jwt.RegisteredClaims
}

// GuestLoginRequest is the request body for minting a guest identity.
type GuestLoginRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// GuestLoginResponse returns the minted token and the identity it encodes.
type GuestLoginResponse struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}
