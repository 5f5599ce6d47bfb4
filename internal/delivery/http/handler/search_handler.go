package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/delivery/http/middleware"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/pkg/response"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/service"
)

// defaultJobTypesHint is echoed back through responses; it is not applied as
// a filter rule.
var defaultJobTypesHint = []string{"ai", "ml", "machine learning", "artificial intelligence", "data science"}

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// HandleSearchAll serves GET /search: the aggregate across every registered
// source.
func (h *SearchHandler) HandleSearchAll(c fiber.Ctx) error {
	filter := job.SearchFilter{
		Location:           c.Query("location", "Remote"),
		MaxResults:         parseQueryInt(c.Query("maxResults"), 50),
		IncludeInternships: c.Query("includeInternships", "true") == "true",
		IncludeFullTime:    c.Query("includeFullTime", "true") == "true",
		Keywords:           splitKeywords(c.Query("keywords")),
		ExperienceLevel:    job.LevelEntry,
		RequiredSkills:     []string{"python"},
		JobTypes:           defaultJobTypesHint,
	}

	result := h.svc.SearchAll(c.Context(), filter)
	return response.JSON(c, fiber.StatusOK, result)
}

// HandleSearchSite serves GET /search/:site for one named source.
func (h *SearchHandler) HandleSearchSite(c fiber.Ctx) error {
	filter := job.SearchFilter{
		Location:           c.Query("location", "Remote"),
		MaxResults:         parseQueryInt(c.Query("maxResults"), 25),
		IncludeInternships: true,
		IncludeFullTime:    true,
		Keywords:           []string{},
		ExperienceLevel:    job.LevelEntry,
		RequiredSkills:     []string{"python"},
		JobTypes:           defaultJobTypesHint,
	}

	result, err := h.svc.SearchSite(c.Context(), c.Params("site"), filter)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), err)
	}
	return response.JSON(c, fiber.StatusOK, result)
}

func parseQueryInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}

func splitKeywords(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
