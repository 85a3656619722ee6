package toolserver

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/seedlinghq/seedling"
	"github.com/seedlinghq/seedling/internal/logger"
)

// handleGreet handles the greet tool call.
func (s *Server) handleGreet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("name parameter is required and must be a string"), nil
	}

	logger.Debug("greet tool called with name %q", name)
	return mcp.NewToolResultText(seedling.Greet(name)), nil
}

// handleAdd handles the add tool call.
func (s *Server) handleAdd(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	a, ok := numberArg(args, "a")
	if !ok {
		return mcp.NewToolResultError("a parameter is required and must be a number"), nil
	}
	b, ok := numberArg(args, "b")
	if !ok {
		return mcp.NewToolResultError("b parameter is required and must be a number"), nil
	}

	sum := seedling.Add(a, b)
	logger.Debug("add tool called: %v + %v = %v", a, b, sum)
	return mcp.NewToolResultText(strconv.FormatFloat(sum, 'f', s.precision, 64)), nil
}

// numberArg extracts a numeric argument. JSON numbers decode as
// float64, but direct callers may pass int.
func numberArg(args map[string]interface{}, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
