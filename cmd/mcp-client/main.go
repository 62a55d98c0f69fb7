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
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptforge/internal/script"
	"scriptforge/ui/console"
)

func main() {
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client scriptforge mcp")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "scriptforge-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to Scriptforge MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools         - List available tools")
	fmt.Println("  /lengths       - List script lengths")
	fmt.Println("  /length <id>   - Set the length for the next scripts")
	fmt.Println("  /exit          - Exit the client")
	fmt.Println("  <idea>         - Generate a script")
	fmt.Println()

	length := string(script.DefaultLength)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s] > ", length)
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

		case input == "/lengths":
			if result := callTool(ctx, session, "list_lengths", map[string]any{}); result != nil {
				printResult(result)
			}

		case strings.HasPrefix(input, "/length"):
			l, err := script.ParseLength(strings.TrimSpace(strings.TrimPrefix(input, "/length")))
			if err != nil {
				fmt.Printf("❌ %v\n\n", err)
				continue
			}
			length = string(l)

		default:
			result := callTool(ctx, session, "generate_script", map[string]any{
				"prompt": input,
				"length": length,
			})
			if result == nil {
				continue
			}
			if r, ok := decodeScript(result); ok {
				console.Print(os.Stdout, r, !*noColor)
			} else {
				printResult(result)
			}
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

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) *mcp.CallToolResult {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return nil
	}
	return result
}

// decodeScript reads the structured output of generate_script.
func decodeScript(result *mcp.CallToolResult) (*script.Result, bool) {
	if result.IsError || result.StructuredContent == nil {
		return nil, false
	}
	data, err := json.Marshal(result.StructuredContent)
	if err != nil {
		return nil, false
	}
	var r script.Result
	if err := json.Unmarshal(data, &r); err != nil || r.Title == "" {
		return nil, false
	}
	return &r, true
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
			fmt.Println(v.Text)
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
