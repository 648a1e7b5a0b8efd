package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dragdeck/internal/domain"
	"dragdeck/internal/ports"
)

// RegisterReadTools adds all read-only board tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.BoardRepository) {
	s.AddTool(boardTool(), boardHandler(repo))
	s.AddTool(listCardsTool(), listCardsHandler(repo))
}

// --- board ---

func boardTool() mcp.Tool {
	return mcp.NewTool("board",
		mcp.WithDescription("Show the whole board: every list with its cards in order."),
	)
}

func boardHandler(repo ports.BoardRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		board, err := repo.Load()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, l := range board.Lists {
			sb.WriteString(fmt.Sprintf("%s  %s\n", l.ID, l.Title))
			for i, c := range l.Cards {
				sb.WriteString(formatCard(i, c))
			}
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("The board is empty."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_cards ---

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List the cards of one list in order."),
		mcp.WithString("list_id",
			mcp.Description("List ID (e.g. todo, doing, done)"),
			mcp.Required(),
		),
	)
}

func listCardsHandler(repo ports.BoardRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID := req.GetString("list_id", "")
		if listID == "" {
			return toolError(fmt.Errorf("list_id is required"))
		}

		board, err := repo.Load()
		if err != nil {
			return toolError(err)
		}
		list, ok := board.List(domain.ListID(listID))
		if !ok {
			return toolError(fmt.Errorf("list not found: %s", listID))
		}
		if len(list.Cards) == 0 {
			return mcp.NewToolResultText("No cards."), nil
		}

		var sb strings.Builder
		for i, c := range list.Cards {
			sb.WriteString(formatCard(i, c))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatCard(index int, c domain.Card) string {
	if c.Note != "" {
		return fmt.Sprintf("  [%d] %s  %s (%s)\n", index, c.ID, c.Title, c.Note)
	}
	return fmt.Sprintf("  [%d] %s  %s\n", index, c.ID, c.Title)
}
