package scraper

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
)

// PageFetcher retrieves the raw HTML of a URL. Implementations own the
// transport details, including any blocked-request fallback.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Profile captures everything that differs between HTML job sites: how to
// build a query URL, where posting fragments live, and how posted dates are
// written.
type Profile struct {
	Key           string
	Name          string
	BaseURL       string
	BaseTerms     []string
	TermSeparator string
	SearchURL     func(baseURL, terms, location string) string
	Locators      Locators

	// PostedDate reads site-specific date markup from one fragment. Nil means
	// the site exposes no usable date; postings get the current time.
	PostedDate func(fragment *goquery.Selection, now time.Time) time.Time
}

// SiteScraper is the shared HTML adapter: one extraction routine
// parameterized by a site Profile.
type SiteScraper struct {
	profile Profile
	fetcher PageFetcher
	now     func() time.Time
}

func NewSiteScraper(profile Profile, fetcher PageFetcher) *SiteScraper {
	return &SiteScraper{profile: profile, fetcher: fetcher, now: time.Now}
}

func (s *SiteScraper) Name() string {
	return s.profile.Name
}

// Search fetches the site's single results page and extracts canonical
// records from its posting fragments. Fetch and parse failures degrade to
// whatever partial list was accumulated; they never propagate.
func (s *SiteScraper) Search(ctx context.Context, filter job.SearchFilter) (jobs []job.JobPosting, err error) {
	jobs = make([]job.JobPosting, 0, max(filter.MaxResults, 0))

	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s scraping panic: %v", s.profile.Name, r)
		}
	}()

	searchURL := s.buildSearchURL(filter)

	html, ferr := s.fetcher.Fetch(ctx, searchURL)
	if ferr != nil {
		log.Printf("%s scraping error: %v", s.profile.Name, ferr)
		return jobs, nil
	}

	doc, perr := goquery.NewDocumentFromReader(strings.NewReader(html))
	if perr != nil {
		log.Printf("%s parse error: %v", s.profile.Name, perr)
		return jobs, nil
	}

	doc.Find(s.profile.Locators.Container).EachWithBreak(func(i int, fragment *goquery.Selection) bool {
		if i >= filter.MaxResults {
			return false
		}

		posted := s.now()
		if s.profile.PostedDate != nil {
			posted = s.profile.PostedDate(fragment, posted)
		}

		if posting, ok := ExtractPosting(fragment, s.profile.Locators, s.profile.BaseURL, s.profile.Name, posted); ok {
			jobs = append(jobs, posting)
		}
		return true
	})

	return jobs, nil
}

func (s *SiteScraper) buildSearchURL(filter job.SearchFilter) string {
	terms := make([]string, 0, len(s.profile.BaseTerms)+len(filter.Keywords))
	terms = append(terms, s.profile.BaseTerms...)
	terms = append(terms, filter.Keywords...)

	location := filter.Location
	if location == "Remote" {
		location = ""
	}

	return s.profile.SearchURL(s.profile.BaseURL, strings.Join(terms, s.profile.TermSeparator), location)
}

func normalizeBaseURL(base, fallback string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return fallback
	}
	return strings.TrimRight(base, "/")
}
