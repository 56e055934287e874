package server

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Authorizer answers whether a request may use the chat endpoint.
// Authentication itself (admin password, SSO) lives outside this
// service; the core only consumes the yes/no fact.
type Authorizer interface {
	Authorized(r *http.Request) bool
}

// TokenAuthorizer authorizes requests carrying a static bearer token.
// An empty token means the gate is open, matching deployments where an
// upstream proxy already authenticated the caller.
type TokenAuthorizer struct {
	Token string
}

func (a TokenAuthorizer) Authorized(r *http.Request) bool {
	if a.Token == "" {
		return true
	}
	header := r.Header.Get("Authorization")
	presented, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(a.Token)) == 1
}
