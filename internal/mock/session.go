package mock

import (
	"context"

	"famgallery/internal/session"
)

// Session is a mock implementation of the session manager.
type Session struct {
	SignInFn       func(ctx context.Context, email, password string) error
	SignUpFn       func(ctx context.Context, email, password string) error
	UserFn         func() (session.User, bool)
	SignOutFn      func()
	OAuthURLFn     func(state string) string
	ExchangeCodeFn func(ctx context.Context, code string) error
}

// SignIn proxies the request to the SignInFn that's injected when the mock
// session is created.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	return s.SignInFn(ctx, email, password)
}

// SignUp proxies the request to the SignUpFn that's injected when the mock
// session is created.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	return s.SignUpFn(ctx, email, password)
}

// User proxies the request to the UserFn that's injected when the mock
// session is created.
func (s *Session) User() (session.User, bool) {
	return s.UserFn()
}

// SignOut proxies the request to the SignOutFn that's injected when the mock
// session is created.
func (s *Session) SignOut() {
	s.SignOutFn()
}

// OAuthURL proxies the request to the OAuthURLFn that's injected when the
// mock session is created.
func (s *Session) OAuthURL(state string) string {
	return s.OAuthURLFn(state)
}

// ExchangeCode proxies the request to the ExchangeCodeFn that's injected when
// the mock session is created.
func (s *Session) ExchangeCode(ctx context.Context, code string) error {
	return s.ExchangeCodeFn(ctx, code)
}
