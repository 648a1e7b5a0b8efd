package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "dragdeck/internal/adapters/mcp"
	"dragdeck/internal/adapters/sqlite"
	"dragdeck/internal/config"
)

func main() {
	boardFlag := flag.String("board", config.BoardPath(), "path to the board database")
	flag.Parse()

	store, err := sqlite.Open(*boardFlag)
	if err != nil {
		log.Fatalf("dragdeck-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"dragdeck-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("dragdeck-mcp: %v", err)
	}
}
