package scraper

import (
	"strings"
	"time"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
)

// skillVocabulary is scanned against descriptions in order; matches keep this
// order regardless of where they appear in the text.
var skillVocabulary = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "r", "sql",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy", "matplotlib",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "linux",
	"machine learning", "deep learning", "nlp", "computer vision", "data science",
	"statistics", "linear algebra", "calculus", "algorithms", "data structures",
}

var aiMLKeywords = []string{
	"artificial intelligence", "machine learning", "deep learning", "ai", "ml",
	"data science", "data scientist", "ml engineer", "ai engineer", "nlp",
	"natural language processing", "computer vision", "neural network",
	"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
}

// DetermineJobType classifies a posting by substring matching against
// title+description, first match wins: internship, contract, part-time,
// then full-time as the default.
func DetermineJobType(title, description string) job.JobType {
	text := strings.ToLower(title + " " + description)

	if strings.Contains(text, "intern") || strings.Contains(text, "internship") {
		return job.TypeInternship
	}
	if strings.Contains(text, "contract") || strings.Contains(text, "contractor") {
		return job.TypeContract
	}
	if strings.Contains(text, "part-time") || strings.Contains(text, "part time") {
		return job.TypePartTime
	}
	return job.TypeFullTime
}

// DetermineExperienceLevel buckets a posting by seniority markers, checking
// senior markers before mid before entry. Unmarked postings default to entry.
func DetermineExperienceLevel(title, description string) job.ExperienceLevel {
	text := strings.ToLower(title + " " + description)

	if strings.Contains(text, "senior") || strings.Contains(text, "sr.") ||
		strings.Contains(text, "lead") || strings.Contains(text, "principal") {
		return job.LevelSenior
	}
	if strings.Contains(text, "mid") || strings.Contains(text, "intermediate") ||
		strings.Contains(text, "2-3 years") || strings.Contains(text, "3-5 years") {
		return job.LevelMid
	}
	if strings.Contains(text, "entry") || strings.Contains(text, "junior") ||
		strings.Contains(text, "0-1 years") || strings.Contains(text, "1 year") ||
		strings.Contains(text, "recent graduate") {
		return job.LevelEntry
	}
	return job.LevelEntry
}

// ExtractSkills returns every vocabulary term appearing in the description,
// in vocabulary order, without duplicates.
func ExtractSkills(description string) []string {
	lower := strings.ToLower(description)
	found := make([]string, 0, 8)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// ExtractRequirements collects bullet lines that follow a requirements
// heading. A line mentioning "nice to have" stops the scan wherever it
// appears; "preferred" stops it only once a requirements section was entered.
func ExtractRequirements(description string) []string {
	lines := strings.Split(description, "\n")
	requirements := make([]string, 0, 8)

	inSection := false
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))

		if strings.Contains(lower, "requirements") || strings.Contains(lower, "qualifications") ||
			strings.Contains(lower, "must have") {
			inSection = true
			continue
		}

		if inSection && (strings.HasPrefix(lower, "-") || strings.HasPrefix(lower, "•") ||
			strings.HasPrefix(lower, "*")) {
			requirements = append(requirements, strings.TrimSpace(line))
		}

		if (inSection && strings.Contains(lower, "preferred")) || strings.Contains(lower, "nice to have") {
			break
		}
	}

	return requirements
}

// IsRemoteJob reports whether location or description mention remote work.
func IsRemoteJob(location, description string) bool {
	text := strings.ToLower(location + " " + description)
	return strings.Contains(text, "remote") ||
		strings.Contains(text, "work from home") ||
		strings.Contains(text, "wfh")
}

// HasPythonRequirement reports whether the description or requirements call
// for Python. The bare "py" substring matches more than Python proper
// (e.g. "copy").
func HasPythonRequirement(description string, requirements []string) bool {
	text := strings.ToLower(description + " " + strings.Join(requirements, " "))
	return strings.Contains(text, "python") || strings.Contains(text, "py")
}

// IsAIMLRelated reports whether title+description mention any fixed AI/ML
// keyword.
func IsAIMLRelated(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range aiMLKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ParseRelativeDate converts fragments like "3 days ago" or "1 week ago" to
// an absolute time by subtracting from now. Unparseable text yields now.
func ParseRelativeDate(text string, now time.Time) time.Time {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return now
	}

	n := leadingNumber(text)
	switch {
	case strings.Contains(text, "day"):
		return now.AddDate(0, 0, -n)
	case strings.Contains(text, "week"):
		return now.AddDate(0, 0, -n*7)
	}
	return now
}

func leadingNumber(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	if !seen {
		return 0
	}
	return n
}
