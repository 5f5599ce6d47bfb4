package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/scraper"
)

// Adapter is one registered job source.
type Adapter interface {
	Name() string
	Search(ctx context.Context, filter job.SearchFilter) ([]job.JobPosting, error)
}

// ErrUnknownSite marks a single-site search naming an unregistered site. It
// is a user-facing input error, not a scraping failure.
var ErrUnknownSite = fmt.Errorf("unsupported job site")

// SearchService fans a query out across every registered adapter and applies
// the cross-source eligibility filter. The registry is read-only after
// construction; its order fixes the merge order of results.
type SearchService struct {
	order    []string
	adapters map[string]Adapter
	now      func() time.Time
}

func NewSearchService(fetcher scraper.PageFetcher) *SearchService {
	s := &SearchService{
		adapters: make(map[string]Adapter),
		now:      time.Now,
	}
	s.register("linkedin", scraper.NewLinkedInScraper(fetcher))
	s.register("indeed", scraper.NewIndeedScraper(fetcher))
	s.register("glassdoor", scraper.NewGlassdoorScraper(fetcher))
	s.register("ziprecruiter", scraper.NewZipRecruiterScraper(fetcher))
	s.register("monster", scraper.NewMonsterScraper(fetcher))
	s.register("greenhouse", scraper.NewGreenhouseScraper())
	return s
}

func (s *SearchService) register(key string, adapter Adapter) {
	if _, ok := s.adapters[key]; ok {
		return
	}
	s.order = append(s.order, key)
	s.adapters[key] = adapter
}

// Sites lists the registered site keys in registration order.
func (s *SearchService) Sites() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// SearchAll runs every adapter concurrently and joins all outcomes before
// merging. One adapter's failure becomes a SourceResult carrying an error
// string; it never aborts its siblings. The merged job count is capped at
// filter.MaxResults across the whole aggregate, trimming later sources in
// registration order.
func (s *SearchService) SearchAll(ctx context.Context, filter job.SearchFilter) job.AggregateResult {
	results := make([]job.SourceResult, len(s.order))

	var wg sync.WaitGroup
	for i, key := range s.order {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			results[i] = s.guardedSearch(ctx, key, filter)
		}(i, key)
	}
	wg.Wait()

	remaining := filter.MaxResults
	totalJobs := 0
	for i := range results {
		// A non-positive budget disables the aggregate cap.
		if filter.MaxResults > 0 && len(results[i].Jobs) > remaining {
			results[i].Jobs = results[i].Jobs[:remaining]
			results[i].TotalFound = remaining
		}
		remaining -= len(results[i].Jobs)
		totalJobs += len(results[i].Jobs)
	}

	return job.AggregateResult{
		Results:         results,
		TotalJobs:       totalJobs,
		SearchTimestamp: s.now().UTC().Format(time.RFC3339),
		Filters:         filter,
	}
}

// SearchSite runs one named adapter. An unknown site name returns
// ErrUnknownSite; adapter failures still produce a SourceResult with an error
// string rather than an error return.
func (s *SearchService) SearchSite(ctx context.Context, site string, filter job.SearchFilter) (job.SourceResult, error) {
	key := strings.ToLower(strings.TrimSpace(site))
	if _, ok := s.adapters[key]; !ok {
		return job.SourceResult{}, fmt.Errorf("%w: %s", ErrUnknownSite, site)
	}
	return s.guardedSearch(ctx, key, filter), nil
}

// guardedSearch isolates one adapter invocation: errors and panics become the
// result's error string.
func (s *SearchService) guardedSearch(ctx context.Context, key string, filter job.SearchFilter) (result job.SourceResult) {
	start := s.now()

	result = job.SourceResult{Site: key, Jobs: []job.JobPosting{}}
	defer func() {
		if r := recover(); r != nil {
			result.Jobs = []job.JobPosting{}
			result.TotalFound = 0
			result.Error = fmt.Sprintf("panic: %v", r)
		}
		result.SearchTime = time.Since(start).Milliseconds()
	}()

	jobs, err := s.adapters[key].Search(ctx, filter)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	filtered := FilterJobs(jobs, filter)
	if filter.MaxResults > 0 && len(filtered) > filter.MaxResults {
		filtered = filtered[:filter.MaxResults]
	}

	result.Jobs = filtered
	result.TotalFound = len(filtered)
	return result
}

// titleKeywords is the shorter keyword subset that rescues a posting whose
// own AI/ML flag is false but whose title is clearly on-topic.
var titleKeywords = []string{
	"ai", "ml", "machine learning", "artificial intelligence",
	"data science", "deep learning", "nlp", "computer vision",
}

// FilterJobs applies the cross-source eligibility rules. Every rule must
// hold for a posting to be retained.
func FilterJobs(jobs []job.JobPosting, filter job.SearchFilter) []job.JobPosting {
	out := make([]job.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if !filter.IncludeInternships && j.Type == job.TypeInternship {
			continue
		}
		if !filter.IncludeFullTime && j.Type == job.TypeFullTime {
			continue
		}

		if filter.ExperienceLevel != job.LevelAll && j.ExperienceLevel != filter.ExperienceLevel {
			continue
		}

		if len(filter.RequiredSkills) > 0 && !hasRequiredSkills(j, filter.RequiredSkills) {
			continue
		}

		if !isAIMLJob(j) {
			continue
		}

		if !matchesLocation(j, filter.Location) {
			continue
		}

		if len(filter.Keywords) > 0 && !matchesKeywords(j, filter.Keywords) {
			continue
		}

		out = append(out, j)
	}
	return out
}

func hasRequiredSkills(j job.JobPosting, required []string) bool {
	for _, skill := range required {
		want := strings.ToLower(skill)
		found := false
		for _, have := range j.Skills {
			if strings.Contains(strings.ToLower(have), want) {
				found = true
				break
			}
		}
		if !found {
			for _, req := range j.Requirements {
				if strings.Contains(strings.ToLower(req), want) {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isAIMLJob(j job.JobPosting) bool {
	if j.IsAIMLRelated {
		return true
	}
	title := strings.ToLower(j.Title)
	for _, kw := range titleKeywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

func matchesLocation(j job.JobPosting, location string) bool {
	loc := strings.ToLower(location)
	if loc == "remote" || loc == "any" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Location), loc) {
		return true
	}
	return j.IsRemote
}

func matchesKeywords(j job.JobPosting, keywords []string) bool {
	text := strings.ToLower(j.Title + " " + j.Description + " " + strings.Join(j.Requirements, " "))
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
