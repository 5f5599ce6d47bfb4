package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	directTimeout = 30 * time.Second
	maxRedirects  = 5
)

// browserHeaders is the realistic header set sent on every direct fetch.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Accept-Encoding":           "gzip, deflate",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// Fetcher retrieves raw page content. The direct path is a plain GET with
// browser-like headers; when the origin answers 403 or 429 it escalates once
// to a headless-browser fetch. The escalation is reactive only — the rendered
// path launches a full browser process per call and must never run
// speculatively.
type Fetcher struct {
	headless bool
}

// NewFetcher returns a Fetcher with the headless fallback enabled.
func NewFetcher() *Fetcher {
	return &Fetcher{headless: true}
}

// NewDirectFetcher returns a Fetcher that never escalates to the headless
// path; blocked statuses surface as errors instead.
func NewDirectFetcher() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	body, status, err := f.fetchDirect(ctx, pageURL)
	if err == nil {
		return body, nil
	}

	if f.headless && blockedStatus(status) {
		rendered, rerr := fetchRendered(ctx, pageURL)
		if rerr != nil {
			return "", fmt.Errorf("stealth fetch failed: %w", rerr)
		}
		return rendered, nil
	}

	return "", fmt.Errorf("failed to fetch page: %w", err)
}

func (f *Fetcher) fetchDirect(ctx context.Context, pageURL string) (string, int, error) {
	c := colly.NewCollector()
	c.SetRequestTimeout(directTimeout)
	c.SetRedirectHandler(func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		return nil
	})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range browserHeaders {
			r.Headers.Set(k, v)
		}
	})

	var body string
	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	var status int
	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		reqErr = err
	})

	if ctx.Err() != nil {
		return "", 0, ctx.Err()
	}

	if err := c.Visit(pageURL); err != nil && reqErr == nil {
		reqErr = err
	}
	c.Wait()

	if reqErr != nil {
		return "", status, reqErr
	}
	return body, 0, nil
}

// blockedStatus reports whether a response status signals bot blocking rather
// than a plain failure.
func blockedStatus(status int) bool {
	return status == http.StatusForbidden || status == http.StatusTooManyRequests
}
