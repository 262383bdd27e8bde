package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: artspace-mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: artspace-mcp-client ./artspace-mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "artspace-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to Art Space MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools    - List available tools")
	fmt.Println("  /list     - List every artwork")
	fmt.Println("  /show N   - Show artwork N (1-based)")
	fmt.Println("  /state    - Show the gallery session")
	fmt.Println("  /next     - Next artwork")
	fmt.Println("  /prev     - Previous artwork")
	fmt.Println("  /toggle   - Switch between info and description")
	fmt.Println("  /exit     - Exit the client")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/list":
			callTool(ctx, session, "list_artworks", map[string]any{})

		case strings.HasPrefix(input, "/show"):
			parts := strings.Fields(input)
			if len(parts) != 2 {
				fmt.Println("Usage: /show N")
				continue
			}
			n, err := strconv.Atoi(parts[1])
			if err != nil {
				fmt.Printf("Not a number: %s\n", parts[1])
				continue
			}
			callTool(ctx, session, "get_artwork", map[string]any{"index": n - 1})

		case input == "/state":
			callTool(ctx, session, "gallery_state", map[string]any{})

		case input == "/next":
			callTool(ctx, session, "gallery_next", map[string]any{})

		case input == "/prev":
			callTool(ctx, session, "gallery_previous", map[string]any{})

		case input == "/toggle":
			callTool(ctx, session, "gallery_toggle_info", map[string]any{})

		default:
			fmt.Printf("Unknown command: %s\n", input)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result: ")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(indentJSON(v.Text))
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}

// indentJSON pretty-prints text when it is a JSON document.
func indentJSON(text string) string {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return text
	}
	return string(out)
}
