// Noema: cognitive-annotation MCP server
//
// An MCP server that annotates free-text thoughts with domain
// classification, abstraction levels, quality scores and a cumulative
// knowledge graph, and simulates bounded multi-step planning runs.
//
// Usage:
//
//	noema serve      # Start MCP server (stdio transport)
//	noema version    # Print the version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"

	noemaserver "github.com/noema-dev/noema/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("noema v%s\n", noemaserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s := noemaserver.New()

	// Graceful shutdown on interrupt.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	_ = ctx // stdio server manages its own lifecycle

	return mcpserver.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Noema v%s — cognitive-annotation MCP server

Usage:
  noema serve      Start the MCP server (stdio transport)
  noema version    Print the version

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "noema": {
        "command": "noema",
        "args": ["serve"]
      }
    }
  }

Environment:
  NOEMA_DATA_DIR          Where session archives are written (default ~/.noema)
  NOEMA_MAX_SUGGESTIONS   Suggestion list cap in thought reports (default 3)
`, noemaserver.Version)
}
