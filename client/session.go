package client

import (
	"encoding/json"
	"sync"
)

const (
	tokenKey    = "iskio_auth_token"
	userKey     = "iskio_auth_user"
	rememberKey = "iskio_auth_remember"
)

// User is the profile returned by /login, /me and /account.
type User struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Rol      string  `json:"rol"`
	Email    *string `json:"email,omitempty"`
}

// Session holds the bearer token and user profile. Values are mirrored into
// either the persistent or the transient store, never both.
type Session struct {
	mu         sync.Mutex
	persistent Store
	transient  Store
	token      string
	user       *User
	remember   bool
}

// NewSession reads both stores once; later reads come from memory.
func NewSession(persistent, transient Store) *Session {
	s := &Session{persistent: persistent, transient: transient}

	if token, ok := persistent.Get(tokenKey); ok && token != "" {
		s.token = token
	} else if token, ok := transient.Get(tokenKey); ok && token != "" {
		s.token = token
	}

	raw, ok := persistent.Get(userKey)
	if !ok {
		raw, ok = transient.Get(userKey)
	}
	if ok && raw != "" {
		var user User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.user = &user
		}
	}

	remember, _ := persistent.Get(rememberKey)
	s.remember = remember == "true"
	return s
}

func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Persistent reports whether the current token lives in the persistent store.
func (s *Session) Persistent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.persistent.Get(tokenKey)
	return ok && token != "" && token == s.token
}

// SetAccessToken stores token in the scope chosen by persist and removes it
// from the other one. An empty token removes it from both.
func (s *Session) SetAccessToken(token string, persist bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return place(s.persistent, s.transient, tokenKey, token, persist)
}

// StoredUser returns a copy of the cached profile, or nil.
func (s *Session) StoredUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Session) SetStoredUser(user *User, persist bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.user = nil
		return place(s.persistent, s.transient, userKey, "", persist)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	copied := *user
	s.user = &copied
	return place(s.persistent, s.transient, userKey, string(raw), persist)
}

func (s *Session) RememberSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remember
}

func (s *Session) SetRememberSession(remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remember = remember
	value := "false"
	if remember {
		value = "true"
	}
	return s.persistent.Set(rememberKey, value)
}

// Clear drops token, user and remember flag from memory and both stores.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.remember = false

	var firstErr error
	for _, store := range []Store{s.persistent, s.transient} {
		for _, key := range []string{tokenKey, userKey, rememberKey} {
			if err := store.Remove(key); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func place(persistent, transient Store, key, value string, persist bool) error {
	if value == "" {
		if err := persistent.Remove(key); err != nil {
			return err
		}
		return transient.Remove(key)
	}
	target, other := transient, persistent
	if persist {
		target, other = persistent, transient
	}
	if err := target.Set(key, value); err != nil {
		return err
	}
	return other.Remove(key)
}
