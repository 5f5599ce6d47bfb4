package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/domain/job"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/service"
)

var defaultJobTypesHint = []string{"ai", "ml", "machine learning", "artificial intelligence", "data science"}

// NewServer builds the agent-tool server exposing the job search as two
// tools. Tool failures come back as error-flagged text results, never as a
// dropped connection.
func NewServer(svc *service.SearchService) *server.MCPServer {
	s := server.NewMCPServer(
		"job-search-mcp-server",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewToolWithRawSchema(
			"search_ai_ml_jobs",
			"Search for AI/ML internships and full-time roles across multiple job sites",
			searchAIMLJobsSchema,
		),
		handleSearchAIMLJobs(svc),
	)

	s.AddTool(
		mcp.NewToolWithRawSchema(
			"search_specific_job_site",
			"Search for jobs on a specific job site",
			searchSpecificSiteSchema,
		),
		handleSearchSpecificSite(svc),
	)

	return s
}

func handleSearchAIMLJobs(svc *service.SearchService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := job.SearchFilter{
			Location:           req.GetString("location", "Remote"),
			MaxResults:         positiveInt(req.GetInt("maxResults", 50), 50),
			IncludeInternships: req.GetBool("includeInternships", true),
			IncludeFullTime:    req.GetBool("includeFullTime", true),
			Keywords:           req.GetStringSlice("keywords", []string{}),
			ExperienceLevel:    job.LevelEntry,
			RequiredSkills:     []string{"python"},
			JobTypes:           defaultJobTypesHint,
		}

		result := svc.SearchAll(ctx, filter)
		return textResult(result)
	}
}

func handleSearchSpecificSite(svc *service.SearchService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		site := req.GetString("site", "")
		if site == "" {
			return mcp.NewToolResultError("Error: site is required"), nil
		}

		filter := job.SearchFilter{
			Location:           req.GetString("location", "Remote"),
			MaxResults:         positiveInt(req.GetInt("maxResults", 25), 25),
			IncludeInternships: true,
			IncludeFullTime:    true,
			Keywords:           []string{},
			ExperienceLevel:    job.LevelEntry,
			RequiredSkills:     []string{"python"},
			JobTypes:           defaultJobTypesHint,
		}

		result, err := svc.SearchSite(ctx, site, filter)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(result)
	}
}

// positiveInt rejects non-positive argument values in favor of the default,
// matching the query parsing on the HTTP surface.
func positiveInt(v, defaultVal int) int {
	if v <= 0 {
		return defaultVal
	}
	return v
}

func textResult(v interface{}) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
