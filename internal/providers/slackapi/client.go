package slackapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// API Docs: https://api.slack.com/methods/users.list
const (
	usersListBaseURL = "https://slack.com/api/users.list"
)

// ErrUserNotFound is returned when no member matches the requested name.
var ErrUserNotFound = errors.New("user not found")

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    usersListBaseURL,
		token:      token,
	}
}

// FindUserByName looks up a workspace member by display name. Matching is
// exact and case-sensitive; callers strip any leading "@" themselves.
func (c *Client) FindUserByName(name string) (*UserProfile, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp UsersListAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("users.list failed: %s", apiResp.Error)
	}

	for _, m := range apiResp.Members {
		if m.Deleted || m.Name != name {
			continue
		}
		profile := &UserProfile{Label: m.TzLabel}
		if m.TzOffset != nil {
			profile.UTCOffset = *m.TzOffset
			profile.HasOffset = true
		}
		return profile, nil
	}

	return nil, ErrUserNotFound
}
