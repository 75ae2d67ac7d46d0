package domain

import (
	"encoding/json"
	"fmt"
)

// Session store keys shared with the dashboard.
const (
	KeyAuthToken    = "authToken"
	KeyUserSession  = "user-session"
	KeyAuthChecking = "auth-checking"
)

// IsSessionKey reports whether key is one of the keys the console manages.
func IsSessionKey(key string) bool {
	switch key {
	case KeyAuthToken, KeyUserSession, KeyAuthChecking:
		return true
	}
	return false
}

// UserSession is the decoded "user-session" document.
//
// Two shapes are stored by the dashboard: a login payload with data.role,
// data.username and data.avatar, and a platform payload with message.token,
// message.client and message.user. Every accessor walks its path one hop at a
// time and reports false when a hop is missing or has the wrong type.
type UserSession struct {
	doc any
}

// DecodeUserSession parses a raw "user-session" value. The empty string and
// the JSON literal null decode to a nil session. Anything else that is not a
// single JSON document yields ErrMalformedSession.
func DecodeUserSession(raw string) (*UserSession, error) {
	if raw == "" {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}
	if doc == nil {
		return nil, nil
	}
	return &UserSession{doc: doc}, nil
}

// NewUserSession builds a session from an already decoded document.
func NewUserSession(doc map[string]any) *UserSession {
	return &UserSession{doc: doc}
}

// Lookup walks path through nested objects.
func (s *UserSession) Lookup(path ...string) Value {
	if s == nil {
		return Value{}
	}
	cur := s.doc
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Value{}
		}
		next, ok := obj[key]
		if !ok {
			return Value{}
		}
		cur = next
	}
	return ValueOf(cur)
}

func (s *UserSession) lookupString(path ...string) (string, bool) {
	return s.Lookup(path...).String()
}

// RoleID returns data.role.
func (s *UserSession) RoleID() Value { return s.Lookup("data", "role") }

// Username returns data.username.
func (s *UserSession) Username() (string, bool) { return s.lookupString("data", "username") }

// Avatar returns data.avatar.
func (s *UserSession) Avatar() (string, bool) { return s.lookupString("data", "avatar") }

// Token returns message.token when it is a non-empty string.
func (s *UserSession) Token() (string, bool) {
	tok, ok := s.lookupString("message", "token")
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}

// UserStatus returns message.user.status.
func (s *UserSession) UserStatus() (string, bool) { return s.lookupString("message", "user", "status") }

// Client returns message.client, or nil when it is absent or not an object.
func (s *UserSession) Client() *Client {
	v := s.Lookup("message", "client")
	obj, ok := v.Raw().(map[string]any)
	if !ok {
		return nil
	}
	c := &Client{}
	if at, ok := obj["account_type"].(string); ok {
		c.AccountType = at
	}
	if id, ok := obj["id"]; ok {
		c.ID = ValueOf(id)
	}
	return c
}

// MarshalJSON re-encodes the underlying document.
func (s *UserSession) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.doc)
}

// Client is the subset of message.client used for authorization.
type Client struct {
	AccountType string `json:"account_type,omitempty"`
	ID          Value  `json:"id"`
}

// AuthSnapshot is the identity view read from the session store.
type AuthSnapshot struct {
	Token       *string      `json:"token"`
	User        *UserSession `json:"user"`
	RoleID      Value        `json:"role_id"`
	DisplayName *string      `json:"display_name"`
	AvatarURL   *string      `json:"avatar_url"`
}

// NewAuthSnapshot derives the snapshot fields from a token and a session.
func NewAuthSnapshot(token *string, user *UserSession) *AuthSnapshot {
	snap := &AuthSnapshot{Token: token, User: user}
	if user == nil {
		return snap
	}
	snap.RoleID = user.RoleID()
	if name, ok := user.Username(); ok {
		snap.DisplayName = &name
	}
	if avatar, ok := user.Avatar(); ok {
		snap.AvatarURL = &avatar
	}
	return snap
}
