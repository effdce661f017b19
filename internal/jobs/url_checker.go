package jobs

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"uniassist/internal/db"
	"uniassist/internal/models"
	"uniassist/internal/validation"
)

// URLChecker performs background reachability checks on literature URLs.
type URLChecker struct {
	db       *db.DB
	interval time.Duration
	maxAge   time.Duration
	client   *http.Client
}

// NewURLChecker creates a new literature URL checker.
func NewURLChecker(database *db.DB, interval, maxAge time.Duration) *URLChecker {
	return &URLChecker{
		db:       database,
		interval: interval,
		maxAge:   maxAge,
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the background check loop.
func (u *URLChecker) Start(ctx context.Context) {
	log.Printf("Literature URL checker started (interval: %v, maxAge: %v)", u.interval, u.maxAge)

	// Run immediately on start
	u.checkAll(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Literature URL checker stopped")
			return
		case <-ticker.C:
			u.checkAll(ctx)
		}
	}
}

// checkAll checks all literature records with stale URL status.
func (u *URLChecker) checkAll(ctx context.Context) {
	items, err := u.db.GetLiteratureNeedingURLCheck(ctx, u.maxAge, 50)
	if err != nil {
		log.Printf("URL checker: failed to get literature: %v", err)
		return
	}

	if len(items) == 0 {
		return
	}

	log.Printf("URL checker: checking %d literature URLs", len(items))

	for _, item := range items {
		select {
		case <-ctx.Done():
			return
		default:
		}

		status, errorMsg := u.checkURL(ctx, item.URL)
		if err := u.db.UpdateLiteratureURLStatus(ctx, item.ID, status, errorMsg); err != nil {
			log.Printf("URL checker: failed to update %q: %v", item.Title, err)
			continue
		}

		// Delay between checks to avoid overwhelming external servers
		time.Sleep(1 * time.Second)
	}
}

// checkURL performs a HEAD request to check if a URL is reachable.
// Validates URLs before making requests to prevent SSRF.
func (u *URLChecker) checkURL(ctx context.Context, url string) (string, *string) {
	if valid, msg := validation.ValidateURLForHealthCheck(url); !valid {
		return models.URLUnhealthy, &msg
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		errMsg := "invalid URL: " + err.Error()
		return models.URLUnhealthy, &errMsg
	}

	req.Header.Set("User-Agent", "UniAssist-URLChecker/1.0")

	resp, err := u.client.Do(req)
	if err != nil {
		errMsg := "connection failed: " + err.Error()
		return models.URLUnknown, &errMsg
	}
	defer resp.Body.Close()

	// Any HTTP response means the resource is reachable
	return models.URLHealthy, nil
}
