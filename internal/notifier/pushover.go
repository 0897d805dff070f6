package notifier

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultPushoverEndpoint is the Pushover message API.
	DefaultPushoverEndpoint = "https://api.pushover.net/1/messages.json"

	pushoverTimeout = 10 * time.Second
	maxSendRetries  = 3
)

// Pushover sends alerts through the Pushover push notification service.
type Pushover struct {
	userKey  string
	apiToken string
	endpoint string
	client   *http.Client
}

// NewPushoverFromEnv creates a Pushover notifier from PUSHOVER_USER_KEY
// and PUSHOVER_API_TOKEN. Returns an error when either is unset so callers
// can fall back to a dry-run notifier.
func NewPushoverFromEnv() (*Pushover, error) {
	userKey := os.Getenv("PUSHOVER_USER_KEY")
	apiToken := os.Getenv("PUSHOVER_API_TOKEN")

	if userKey == "" || apiToken == "" {
		return nil, fmt.Errorf("missing Pushover credentials in environment (set PUSHOVER_USER_KEY and PUSHOVER_API_TOKEN)")
	}

	return NewPushover(userKey, apiToken, DefaultPushoverEndpoint), nil
}

// NewPushover creates a Pushover notifier for the given credentials and
// endpoint.
func NewPushover(userKey, apiToken, endpoint string) *Pushover {
	return &Pushover{
		userKey:  userKey,
		apiToken: apiToken,
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushoverTimeout},
	}
}

// Notify posts the alert, retrying transient failures with exponential
// backoff.
func (p *Pushover) Notify(title, message string) error {
	form := url.Values{
		"token":    {p.apiToken},
		"user":     {p.userKey},
		"title":    {title},
		"message":  {message},
		"priority": {"0"},
	}

	send := func() error {
		resp, err := p.client.Post(p.endpoint, "application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("posting notification: %w", err)
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= 500 {
			return fmt.Errorf("pushover server error: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			// Client errors (bad token etc.) won't improve with retries.
			return backoff.Permanent(fmt.Errorf("pushover rejected notification: status %d", resp.StatusCode))
		}
		return nil
	}

	return backoff.Retry(send, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSendRetries))
}
