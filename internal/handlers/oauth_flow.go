package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"englishquest/internal/security"
	"englishquest/internal/service"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var googleEndpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.google.com/o/oauth2/auth",
	TokenURL: "https://oauth2.googleapis.com/token",
}

// OAuthHandler runs the Google sign-in flow and hands back a bearer token
type OAuthHandler struct {
	authService  *service.AuthService
	config       *oauth2.Config
	redirectBase string
}

// NewOAuthHandler creates the Google OAuth handler. With empty credentials
// the endpoints report the provider as unconfigured.
func NewOAuthHandler(authService *service.AuthService, clientID, clientSecret, redirectBase string) *OAuthHandler {
	return &OAuthHandler{
		authService: authService,
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleEndpoint,
		},
		redirectBase: redirectBase,
	}
}

func (h *OAuthHandler) configured() bool {
	return h.config.ClientID != "" && h.config.ClientSecret != ""
}

func (h *OAuthHandler) redirectURL() string {
	return h.redirectBase + "/auth/google/callback"
}

// Start handles GET /auth/google/start
func (h *OAuthHandler) Start(w http.ResponseWriter, r *http.Request) {
	if !h.configured() {
		respondWithError(w, http.StatusBadRequest, "OAuth provider not configured", "", nil)
		return
	}

	state := security.NewStateToken()
	http.SetCookie(w, security.CreateStateCookie(r, "oauth_state", state, time.Now().Add(10*time.Minute)))

	config := *h.config
	config.RedirectURL = h.redirectURL()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles GET /auth/google/callback
func (h *OAuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	if !h.configured() {
		respondWithError(w, http.StatusBadRequest, "OAuth provider not configured", "", nil)
		return
	}

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if code == "" {
		respondWithError(w, http.StatusBadRequest, "Missing authorization code", "", nil)
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		respondWithError(w, http.StatusBadRequest, "Invalid OAuth state", "", nil)
		return
	}
	http.SetCookie(w, security.CreateDeleteCookie(r, "oauth_state"))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	config := *h.config
	config.RedirectURL = h.redirectURL()

	token, err := config.Exchange(ctx, code)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to exchange OAuth code", "oauth exchange failed", err)
		return
	}

	subject, email, name, err := fetchGoogleUser(ctx, token)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to fetch Google profile", "oauth userinfo failed", err)
		return
	}

	result, err := h.authService.OAuthLogin(subject, email, name)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "OAuth sign-in failed", "oauth login failed", err)
		return
	}

	// The frontend picks the token out of the URL fragment
	target := fmt.Sprintf("%s/#token=%s", h.redirectBase, url.QueryEscape(result.Token))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func fetchGoogleUser(ctx context.Context, token *oauth2.Token) (subject, email, name string, err error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to fetch Google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", "", fmt.Errorf("google user info returned status %d", resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", "", fmt.Errorf("failed to decode Google user info: %w", err)
	}
	if payload.ID == "" || payload.Email == "" {
		return "", "", "", fmt.Errorf("incomplete Google user info")
	}

	return payload.ID, payload.Email, payload.Name, nil
}
