package utils

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

const zoomAPIBaseURL = "https://api.zoom.us/v2"

// MeetingDetails holds the identifiers Zoom returns for a meeting resource.
type MeetingDetails struct {
	ID       string `json:"id"`
	Topic    string `json:"topic,omitempty"`
	JoinURL  string `json:"join_url"`
	StartURL string `json:"start_url"`
	Password string `json:"password"`
}

// ZoomClient talks to the Zoom v2 API using server-to-server OAuth.
type ZoomClient struct {
	AccountID    string
	ClientID     string
	ClientSecret string

	httpClient *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

var DefaultZoomClient = NewZoomClientFromEnv()

func NewZoomClientFromEnv() *ZoomClient {
	return &ZoomClient{
		AccountID:    os.Getenv("ZOOM_ACCOUNT_ID"),
		ClientID:     os.Getenv("ZOOM_CLIENT_ID"),
		ClientSecret: os.Getenv("ZOOM_CLIENT_SECRET"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateMeeting provisions a scheduled Zoom meeting and returns its
// identifiers.
func (z *ZoomClient) CreateMeeting(topic string, startTime time.Time, durationMinutes int, agenda string) (*MeetingDetails, error) {
	body := map[string]interface{}{
		"topic":      topic,
		"type":       2, // Scheduled meeting
		"start_time": formatZoomTime(startTime),
		"duration":   durationMinutes,
		"timezone":   "UTC",
		"agenda":     agenda,
		"settings": map[string]interface{}{
			"host_video":        true,
			"participant_video": true,
			"join_before_host":  true,
			"mute_upon_entry":   false,
			"auto_recording":    "none",
		},
	}

	var resp struct {
		ID       json.Number `json:"id"`
		JoinURL  string      `json:"join_url"`
		StartURL string      `json:"start_url"`
		Password string      `json:"password"`
	}
	if err := z.do(http.MethodPost, "/users/me/meetings", body, &resp); err != nil {
		return nil, err
	}

	return &MeetingDetails{
		ID:       resp.ID.String(),
		JoinURL:  resp.JoinURL,
		StartURL: resp.StartURL,
		Password: resp.Password,
	}, nil
}

func (z *ZoomClient) GetMeeting(meetingID string) (*MeetingDetails, error) {
	var resp struct {
		ID       json.Number `json:"id"`
		Topic    string      `json:"topic"`
		JoinURL  string      `json:"join_url"`
		StartURL string      `json:"start_url"`
		Password string      `json:"password"`
	}
	if err := z.do(http.MethodGet, "/meetings/"+meetingID, nil, &resp); err != nil {
		return nil, err
	}

	return &MeetingDetails{
		ID:       resp.ID.String(),
		Topic:    resp.Topic,
		JoinURL:  resp.JoinURL,
		StartURL: resp.StartURL,
		Password: resp.Password,
	}, nil
}

// UpdateMeeting patches the meeting's topic, start time, duration and agenda.
func (z *ZoomClient) UpdateMeeting(meetingID, topic string, startTime time.Time, durationMinutes int, agenda string) error {
	body := map[string]interface{}{
		"topic":      topic,
		"start_time": formatZoomTime(startTime),
		"duration":   durationMinutes,
		"agenda":     agenda,
	}
	return z.do(http.MethodPatch, "/meetings/"+meetingID, body, nil)
}

// DeleteMeeting removes the meeting resource. Zoom answers 204 on success.
func (z *ZoomClient) DeleteMeeting(meetingID string) (bool, error) {
	err := z.do(http.MethodDelete, "/meetings/"+meetingID, nil, nil)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (z *ZoomClient) do(method, path string, body interface{}, out interface{}) error {
	token, err := z.token()
	if err != nil {
		return err
	}

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, zoomAPIBaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := z.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("zoom API %s %s returned status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// token returns a cached access token, requesting a new one through the
// account_credentials grant when the cached one is missing or expiring.
func (z *ZoomClient) token() (string, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.accessToken != "" && time.Now().Before(z.tokenExpiry.Add(-1*time.Minute)) {
		return z.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", z.AccountID)

	req, err := http.NewRequest(http.MethodPost, "https://zoom.us/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	auth := base64.StdEncoding.EncodeToString([]byte(z.ClientID + ":" + z.ClientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := z.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to obtain Zoom access token: status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}

	z.accessToken = tokenResp.AccessToken
	z.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	return z.accessToken, nil
}

func formatZoomTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
