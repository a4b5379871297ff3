package http

import (
	"net/http"

	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"github.com/twitsprout/tools/requestid"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn performs a password sign-in against the identity provider.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req credentialsRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		_ = httputils.WriteJSONError(w, v, "email and password must be provided", http.StatusBadRequest)
		return
	}

	if err := h.Session.SignIn(ctx, req.Email, req.Password); err != nil {
		h.Logger.Error("[SignIn] sign-in failed",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusUnauthorized)
		return
	}

	user, _ := h.Session.User()
	_ = httputils.WriteJSON(w, v, user, http.StatusOK)
}

// SignUp registers a new account and signs it in.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req credentialsRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		_ = httputils.WriteJSONError(w, v, "email and password must be provided", http.StatusBadRequest)
		return
	}

	if err := h.Session.SignUp(ctx, req.Email, req.Password); err != nil {
		h.Logger.Error("[SignUp] sign-up failed",
			"request_id", reqID,
			"details", err.Error(),
		)
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	user, _ := h.Session.User()
	_ = httputils.WriteJSON(w, v, user, http.StatusCreated)
}

// CurrentUser returns the signed-in user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	user, ok := h.Session.User()
	if !ok {
		_ = httputils.WriteJSONError(w, v, "not signed in", http.StatusUnauthorized)
		return
	}
	_ = httputils.WriteJSON(w, v, user, http.StatusOK)
}

// SignOut drops the session and all cached view state.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.Session.SignOut()
	w.WriteHeader(http.StatusNoContent)
}

// OAuthURL returns the provider consent URL for the redirect sign-in flow.
func (h *Handler) OAuthURL(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	state := v.Get("state")
	if state == "" {
		_ = httputils.WriteJSONError(w, v, "state must be provided", http.StatusBadRequest)
		return
	}
	res := struct {
		URL string `json:"url"`
	}{URL: h.Session.OAuthURL(state)}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// OAuthCallback completes the redirect flow with the provider-issued code.
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	code := v.Get("code")
	if code == "" {
		_ = httputils.WriteJSONError(w, v, "code must be provided", http.StatusBadRequest)
		return
	}

	if err := h.Session.ExchangeCode(ctx, code); err != nil {
		h.respondError(w, v, "OAuthCallback", reqID, errors.Wrap(err, "completing oauth sign-in"))
		return
	}
	user, _ := h.Session.User()
	_ = httputils.WriteJSON(w, v, user, http.StatusOK)
}
