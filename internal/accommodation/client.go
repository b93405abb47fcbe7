package accommodation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable wraps every failure mode of the host lookup: transport
// errors, timeouts, non-200 responses and malformed bodies. Callers must drop
// the event on this error instead of guessing a recipient.
var ErrUnavailable = errors.New("accommodation service unavailable")

// Info identifies the host that owns an accommodation, plus the display name
// used when rendering messages.
type Info struct {
	HostID            string `json:"host_id"`
	AccommodationName string `json:"accommodation_name"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Resolve looks up the owning host of an accommodation. It never returns a
// zero HostID together with a nil error.
func (c *Client) Resolve(ctx context.Context, accommodationID string) (*Info, error) {
	url := fmt.Sprintf("%s/api/accommodations/%s/host", c.baseURL, accommodationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var info Info
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: malformed response body: %v", ErrUnavailable, err)
	}

	if info.HostID == "" {
		return nil, fmt.Errorf("%w: response missing host id", ErrUnavailable)
	}

	return &info, nil
}
