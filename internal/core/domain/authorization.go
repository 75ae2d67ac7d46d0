package domain

import (
	"path"
	"strings"
	"time"
)

// AuthorizationState is the outcome of the route gate for one request.
type AuthorizationState string

const (
	StateChecking     AuthorizationState = "checking"
	StateAuthorized   AuthorizationState = "authorized"
	StateUnauthorized AuthorizationState = "unauthorized"
)

// DefaultExemptPrefix is the token-management area open to every signed-in user.
const DefaultExemptPrefix = "/admin/tokens"

// AuthStatus is what the auth provider knows about a browser session.
type AuthStatus struct {
	Checking      bool
	Authenticated bool
	User          *UserSession
	// Token is the token the status was derived from; never rendered.
	Token string
}

// GateInput is everything the gate needs to decide one route.
type GateInput struct {
	AuthStatus
	Route string
}

// RoutePolicy lists the route subtrees that skip the super-admin check.
type RoutePolicy struct {
	ExemptPrefixes []string
}

// IsExempt reports whether route lies under one of the exempt prefixes.
// The route is cleaned first so "." and ".." segments cannot climb out of an
// exempt subtree. Matching stops at path-segment boundaries.
func (p RoutePolicy) IsExempt(route string) bool {
	if route == "" {
		return false
	}
	route = path.Clean(route)
	for _, prefix := range p.ExemptPrefixes {
		prefix = strings.TrimRight(prefix, "/")
		if prefix == "" {
			continue
		}
		if route == prefix || strings.HasPrefix(route, prefix+"/") {
			return true
		}
	}
	return false
}

// Authorize runs the gate:
//
//	checking                          → checking
//	signed out or no user             → unauthorized
//	exempt route                      → authorized
//	super admin                       → authorized
//	otherwise                         → unauthorized
func Authorize(in GateInput, policy RoutePolicy) AuthorizationState {
	if in.Checking {
		return StateChecking
	}
	if !in.Authenticated || in.User == nil {
		return StateUnauthorized
	}
	if policy.IsExempt(in.Route) {
		return StateAuthorized
	}
	if IsSuperAdmin(in.User.Client()) {
		return StateAuthorized
	}
	return StateUnauthorized
}

// AuthorizationDecision is the audit record for a gate evaluation.
type AuthorizationDecision struct {
	SessionID        string
	Route            string
	State            AuthorizationState
	AccountType      string
	TokenFingerprint string
	Authenticated    bool
	DecidedAt        time.Time
}
