package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Ritesh-sudo/MCPJobSearch/internal/fetch"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/mcptool"
	"github.com/Ritesh-sudo/MCPJobSearch/internal/service"
)

func main() {
	_ = godotenv.Load()

	svc := service.NewSearchService(fetch.NewFetcher())
	s := mcptool.NewServer(svc)

	log.Println("job search MCP server running on stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("stdio server error: %v", err)
	}
}
