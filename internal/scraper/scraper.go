package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/match"
	"github.com/Alexvbp/league-of-legends-esports-calendar/internal/team"
)

const (
	UserAgent    = "EsportsCalendarBot/2.0 (github.com/Alexvbp/league-of-legends-esports-calendar)"
	Timeout      = 30 * time.Second
	RequestDelay = 2 * time.Second
)

// HTTPError is returned for non-2xx responses so callers can distinguish
// a missing page (404, try the next candidate) from other failures.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d fetching %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	httpErr, ok := err.(*HTTPError)
	return ok && httpErr.StatusCode == http.StatusNotFound
}

// Scraper fetches and parses wiki pages. All requests go through a shared
// rate limiter enforcing the courtesy delay between consecutive requests,
// including after a failed one.
type Scraper struct {
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a Scraper with the default timeout and request delay.
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(RequestDelay), 1),
	}
}

// Fetch retrieves a page and parses it into a queryable document.
func (s *Scraper) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

// FetchTeamMatches fetches a team's wiki page and extracts its upcoming
// and past matches.
func (s *Scraper) FetchTeamMatches(ctx context.Context, t team.Config) ([]match.Match, error) {
	doc, err := s.Fetch(ctx, t.PageURL())
	if err != nil {
		return nil, err
	}
	return ExtractMatches(doc, t), nil
}
