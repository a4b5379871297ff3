// Package session talks to the external identity provider and owns the
// current session state. It is constructed once in main and passed explicitly
// to everything that needs it; there is no hidden singleton.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/clock"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"golang.org/x/oauth2"
)

// ErrNotSignedIn is returned when a token is requested without a session.
var ErrNotSignedIn = errors.New("not signed in")

// User is the identity provider's view of the signed-in account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Config locates the identity provider and the OAuth redirect flow.
type Config struct {
	BaseURL           string
	APIKey            string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthRedirectURL  string
}

// Session holds the current user and tokens. Refresh is delegated to the
// provider's refresh_token grant; only the resulting access token is part of
// this package's surface.
type Session struct {
	mu           sync.Mutex
	cfg          Config
	http         *http.Client
	clock        clock.Clock
	logger       tools.Logger
	oauth        *oauth2.Config
	user         *User
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	onChange     []func(signedIn bool)
}

// New creates a Session against the configured identity provider.
func New(cfg Config, logger tools.Logger) *Session {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Session{
		cfg:    cfg,
		http:   httputils.NewClient(),
		clock:  &clock.Default{},
		logger: logger,
		oauth: &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuthAuthURL,
				TokenURL: cfg.OAuthTokenURL,
			},
		},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	User         User   `json:"user"`
}

// SignIn performs a password grant against the identity provider.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var res tokenResponse
	if err := s.post(ctx, "/token?grant_type=password", body, &res); err != nil {
		return errors.Wrap(err, "password sign-in")
	}
	s.setSession(res)
	return nil
}

// SignUp registers a new account and signs it in.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var res tokenResponse
	if err := s.post(ctx, "/signup", body, &res); err != nil {
		return errors.Wrap(err, "sign-up")
	}
	s.setSession(res)
	return nil
}

// OAuthURL returns the provider's consent URL for the redirect sign-in flow.
func (s *Session) OAuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// ExchangeCode completes the OAuth redirect flow with the provider-issued
// code and installs the resulting session.
func (s *Session) ExchangeCode(ctx context.Context, code string) error {
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return errors.Wrap(err, "exchange oauth code")
	}

	user, err := s.fetchUser(ctx, tok.AccessToken)
	if err != nil {
		return err
	}
	s.setSession(tokenResponse{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    int64(time.Until(tok.Expiry) / time.Second),
		User:         user,
	})
	return nil
}

// Token returns a valid access token, refreshing it through the provider
// when close to expiry. It implements backend.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	token := s.accessToken
	refresh := s.refreshToken
	expiresAt := s.expiresAt
	s.mu.Unlock()

	if token == "" {
		return "", ErrNotSignedIn
	}
	if s.clock.Now().Add(30 * time.Second).Before(expiresAt) {
		return token, nil
	}

	body := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refresh}
	var res tokenResponse
	if err := s.post(ctx, "/token?grant_type=refresh_token", body, &res); err != nil {
		return "", errors.Wrap(err, "refresh session token")
	}
	s.setSession(res)
	return res.AccessToken, nil
}

// User returns the signed-in user, or false when signed out.
func (s *Session) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// SignOut drops the session. In-flight requests holding the old token are the
// provider's problem; locally the user is gone immediately.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresAt = time.Time{}
	callbacks := append([]func(bool){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(false)
	}
}

// OnChange registers a callback fired whenever the session transitions
// between signed-in and signed-out. Route protection hangs off this.
func (s *Session) OnChange(fn func(signedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func (s *Session) setSession(res tokenResponse) {
	s.mu.Lock()
	user := res.User
	s.user = &user
	s.accessToken = res.AccessToken
	s.refreshToken = res.RefreshToken
	s.expiresAt = s.clock.Now().Add(time.Duration(res.ExpiresIn) * time.Second)
	callbacks := append([]func(bool){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(true)
	}
}

func (s *Session) fetchUser(ctx context.Context, accessToken string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/user", nil)
	if err != nil {
		return User{}, errors.Wrap(err, "build user request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", s.cfg.APIKey)

	res, err := s.http.Do(req)
	if err != nil {
		return User{}, errors.Wrap(err, "fetch user")
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return User{}, errors.Errorf("fetch user failed with status %d", res.StatusCode)
	}

	var user User
	if err := jsonutils.Decode(res.Body, &user); err != nil {
		return User{}, errors.Wrap(err, "decode user response")
	}
	return user, nil
}

func (s *Session) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.cfg.APIKey)

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var msg struct {
			Message string `json:"msg"`
			Error   string `json:"error_description"`
		}
		if err := jsonutils.Decode(res.Body, &msg); err == nil {
			if msg.Message != "" {
				return errors.New(msg.Message)
			}
			if msg.Error != "" {
				return errors.New(msg.Error)
			}
		}
		return errors.Errorf("identity provider returned status %d", res.StatusCode)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return jsonutils.Decode(res.Body, out)
}
