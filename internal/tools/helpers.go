// Package tools implements the MCP tool handlers.
//
// Each tool is a struct that receives its dependencies via constructor and
// exposes Definition() for registration plus Handle matching mcp-go's
// CallToolRequest signature. Tool results carry JSON documents: a typed
// report on success, or {error, status: "failed"} with isError set on
// validation failure.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult marshals a report into a text tool result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return failedResult(fmt.Sprintf("encoding response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// failedResult builds the failure payload: a JSON object with the error
// message and status "failed", flagged as an error result.
func failedResult(message string) *mcp.CallToolResult {
	payload := struct {
		Error  string `json:"error"`
		Status string `json:"status"`
	}{Error: message, Status: "failed"}

	data, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(message)
	}
	return mcp.NewToolResultError(string(data))
}
