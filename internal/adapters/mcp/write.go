package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dragdeck/internal/application/commands"
	"dragdeck/internal/ports"
)

// RegisterWriteTools adds all board-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.BoardRepository) {
	s.AddTool(moveCardTool(), moveCardHandler(repo))
	s.AddTool(addCardTool(), addCardHandler(repo))
	s.AddTool(removeCardTool(), removeCardHandler(repo))
}

// --- move_card ---

func moveCardTool() mcp.Tool {
	return mcp.NewTool("move_card",
		mcp.WithDescription("Move a card to a slot in a list. Indexes are zero-based; an index past the end appends."),
		mcp.WithString("card_id",
			mcp.Description("ID of the card to move"),
			mcp.Required(),
		),
		mcp.WithString("list_id",
			mcp.Description("Destination list ID"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Destination slot, zero-based. Defaults to 0."),
		),
	)
}

func moveCardHandler(repo ports.BoardRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cardID := req.GetString("card_id", "")
		listID := req.GetString("list_id", "")
		index := req.GetInt("index", 0)

		cmd := commands.NewMoveCardCommand(repo, cardID, listID, index)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_card ---

func addCardTool() mcp.Tool {
	return mcp.NewTool("add_card",
		mcp.WithDescription("Add a card to the end of a list."),
		mcp.WithString("list_id",
			mcp.Description("Target list ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Card title"),
			mcp.Required(),
		),
		mcp.WithString("note",
			mcp.Description("Optional note"),
		),
	)
}

func addCardHandler(repo ports.BoardRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddCardCommand(repo, req.GetString("list_id", ""), req.GetString("title", ""))
		cmd.Note = req.GetString("note", "")

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_card ---

func removeCardTool() mcp.Tool {
	return mcp.NewTool("remove_card",
		mcp.WithDescription("Delete a card from the board."),
		mcp.WithString("card_id",
			mcp.Description("ID of the card to delete"),
			mcp.Required(),
		),
	)
}

func removeCardHandler(repo ports.BoardRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRemoveCardCommand(repo, req.GetString("card_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
