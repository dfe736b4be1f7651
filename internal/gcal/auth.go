package gcal

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// oauthConfig builds the OAuth2 client config. The calendar is both read
// and written, so the full calendar scope is required.
func oauthConfig(clientID, clientSecret, redirectURL string) (*oauth2.Config, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("google client id and secret are required")
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}, nil
}

// loadToken reads a previously-issued OAuth2 token from disk. Obtaining the
// initial token is an out-of-band, one-time consent flow; at runtime the
// token source refreshes it transparently as long as a refresh token is
// present.
func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("parse token file: %w", err)
	}
	return &tok, nil
}
