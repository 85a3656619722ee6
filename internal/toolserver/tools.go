package toolserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers the greet and add tools on the MCP server.
func (s *Server) registerTools() {
	greetTool := mcp.NewTool("greet",
		mcp.WithDescription("Build a greeting message for a name. Returns 'Hello, <name>!' with the name inserted verbatim."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name to greet. May be empty."),
		),
	)
	s.mcpServer.AddTool(greetTool, s.handleGreet)

	addTool := mcp.NewTool("add",
		mcp.WithDescription("Add two numbers and return their sum."),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First addend."),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second addend."),
		),
	)
	s.mcpServer.AddTool(addTool, s.handleAdd)
}
