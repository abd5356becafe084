package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	stateCookie   = "taskboard_oauth_state"
	stateTTL      = 10 * time.Minute
	stateSize     = 32
	maxInfoBytes  = 1 << 20
	callbackPath  = "/api/auth/google/callback"
	googleInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// NewGoogleConfig returns the OAuth2 client for Google sign-in, or nil when
// no client id is configured.
func NewGoogleConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	if clientID == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleHandler runs the browser sign-in flow. On success the browser is
// sent to the frontend with the session token in the query string.
type GoogleHandler struct {
	AuthService *service.AuthService
	OAuth       *oauth2.Config // nil disables the flow
	FrontendURL string
	UserInfoURL string // defaults to Google's v2 userinfo endpoint
	Secure      bool   // mark the state cookie Secure
}

// Start godoc
//
//	@Summary	Begin Google sign-in
//	@Tags		Auth
//	@Success	302	"Redirect to Google"
//	@Failure	503	{object}	tasksdk.Response[any]	"Google sign-in is not configured"
//	@Router		/api/auth/google [get].
func (h *GoogleHandler) Start(w http.ResponseWriter, r *http.Request) {
	if h.OAuth == nil {
		writeFail(w, http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
		return
	}

	state, err := cryptox.GenerateToken(stateSize)
	if err != nil {
		writeError(w, r, fmt.Errorf("generate oauth state: %w", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     callbackPath,
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.OAuth.AuthCodeURL(state), http.StatusFound)
}

// Callback godoc
//
//	@Summary	Complete Google sign-in
//	@Tags		Auth
//	@Param		state	query	string	true	"OAuth state"
//	@Param		code	query	string	true	"Authorization code"
//	@Success	302		"Redirect to the frontend with a token, or to the login page on failure"
//	@Router		/api/auth/google/callback [get].
func (h *GoogleHandler) Callback(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	// The state cookie is single use.
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     callbackPath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	if h.OAuth == nil {
		h.fail(w, r)
		return
	}

	q := r.URL.Query()
	if e := q.Get("error"); e != "" {
		log.Info("google sign-in declined", slog.String("error", e))
		h.fail(w, r)
		return
	}

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || !cryptox.EqualTokens(cookie.Value, q.Get("state")) {
		log.Warn("google sign-in state mismatch")
		h.fail(w, r)
		return
	}

	token, err := h.OAuth.Exchange(r.Context(), q.Get("code"))
	if err != nil {
		log.Warn("google code exchange failed", slog.Any("error", err))
		h.fail(w, r)
		return
	}

	id, err := h.fetchIdentity(r, token)
	if err != nil {
		log.Warn("google userinfo failed", slog.Any("error", err))
		h.fail(w, r)
		return
	}

	sess, err := h.AuthService.LoginWithGoogle(r.Context(), id)
	if err != nil {
		log.Warn("google sign-in rejected", slog.Any("error", err))
		h.fail(w, r)
		return
	}

	http.Redirect(w, r, h.frontend("/auth/success", url.Values{"token": {sess.Token}}), http.StatusFound)
}

// Failure godoc
//
//	@Summary	Google sign-in failure
//	@Tags		Auth
//	@Success	302	"Redirect to the frontend login page"
//	@Router		/api/auth/google/failure [get].
func (h *GoogleHandler) Failure(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r)
}

func (h *GoogleHandler) fail(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.frontend("/login", url.Values{"error": {"oauth_failed"}}), http.StatusFound)
}

func (h *GoogleHandler) frontend(path string, q url.Values) string {
	return strings.TrimRight(h.FrontendURL, "/") + path + "?" + q.Encode()
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (h *GoogleHandler) fetchIdentity(r *http.Request, token *oauth2.Token) (service.GoogleIdentity, error) {
	infoURL := h.UserInfoURL
	if infoURL == "" {
		infoURL = googleInfoURL
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, infoURL, nil)
	if err != nil {
		return service.GoogleIdentity{}, err
	}

	resp, err := h.OAuth.Client(r.Context(), token).Do(req)
	if err != nil {
		return service.GoogleIdentity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return service.GoogleIdentity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxInfoBytes)).Decode(&info); err != nil {
		return service.GoogleIdentity{}, fmt.Errorf("decode userinfo: %w", err)
	}

	return service.GoogleIdentity{
		ID:            info.ID,
		Email:         info.Email,
		EmailVerified: info.VerifiedEmail,
		Name:          info.Name,
		Avatar:        info.Picture,
	}, nil
}
