package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptforge/internal/generator"
	"scriptforge/internal/script"
	"scriptforge/ui/tui/state"
)

// MockGenerator implements generator.Service for testing
type MockGenerator struct {
	Result *script.Result
	Err    error

	Calls      int
	LastLength script.Length
	Closed     bool
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string, length script.Length) (*script.Result, error) {
	m.Calls++
	m.LastLength = length
	return m.Result, m.Err
}

func (m *MockGenerator) Close() error {
	m.Closed = true
	return nil
}

func newTestServer(gen *MockGenerator) *Server {
	return NewServer(Config{ServerName: "scriptforge-test", ServerVersion: "0.0.1"}, gen, nil)
}

func TestHandleGenerateScript_Success(t *testing.T) {
	gen := &MockGenerator{Result: &script.Result{Title: "Cloudbreak", Scenes: []script.Scene{{Number: 1}}}}
	s := newTestServer(gen)

	_, result, err := s.handleGenerateScript(context.Background(), nil, GenerateScriptArgs{Prompt: "a heist", Length: "extended"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result == nil || result.Title != "Cloudbreak" {
		t.Fatalf("Unexpected result: %+v", result)
	}
	if gen.LastLength != script.LengthExtended {
		t.Errorf("Expected extended length, got %q", gen.LastLength)
	}
}

func TestHandleGenerateScript_DefaultLength(t *testing.T) {
	gen := &MockGenerator{Result: &script.Result{Title: "T"}}
	s := newTestServer(gen)

	if _, _, err := s.handleGenerateScript(context.Background(), nil, GenerateScriptArgs{Prompt: "idea"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gen.LastLength != script.DefaultLength {
		t.Errorf("Expected default length, got %q", gen.LastLength)
	}
}

func TestHandleGenerateScript_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args GenerateScriptArgs
	}{
		{"blank prompt", GenerateScriptArgs{Prompt: "   "}},
		{"bad length", GenerateScriptArgs{Prompt: "idea", Length: "epic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &MockGenerator{}
			s := newTestServer(gen)

			if _, _, err := s.handleGenerateScript(context.Background(), nil, tt.args); err == nil {
				t.Error("Expected error")
			}
			if gen.Calls != 0 {
				t.Error("Expected generator not to be called")
			}
		})
	}
}

func TestHandleGenerateScript_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"credential", generator.ErrInvalidCredential, state.MsgInvalidAPIKey},
		{"blocked", generator.ErrBlocked, state.MsgGenerationFailed},
		{"empty", nil, state.MsgGenerationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&MockGenerator{Err: tt.err})

			_, result, err := s.handleGenerateScript(context.Background(), nil, GenerateScriptArgs{Prompt: "idea"})
			if err == nil {
				t.Fatal("Expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, err.Error())
			}
			if result != nil {
				t.Error("Expected no result on failure")
			}
		})
	}
}

func TestHandleListLengths(t *testing.T) {
	s := newTestServer(&MockGenerator{})

	_, out, err := s.handleListLengths(context.Background(), nil, ListLengthsArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(out.Lengths) != len(script.LengthOptions) {
		t.Fatalf("Expected %d lengths, got %d", len(script.LengthOptions), len(out.Lengths))
	}
	if out.Lengths[0].ID != string(script.LengthConcise) {
		t.Errorf("Expected concise first, got %q", out.Lengths[0].ID)
	}
}

func TestClose(t *testing.T) {
	gen := &MockGenerator{}
	s := newTestServer(gen)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !gen.Closed {
		t.Error("Expected generator to be closed")
	}
}

// connect wires s to an in-memory client session.
func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "scriptforge-test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestGenerateScriptOverSession(t *testing.T) {
	// Missing characters and dialogues must still satisfy the output schema.
	gen := &MockGenerator{Result: &script.Result{
		Title:  "Cloudbreak",
		Scenes: []script.Scene{{Number: 2}, {Number: 1}},
	}}
	session := connect(t, newTestServer(gen))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "generate_script",
		Arguments: map[string]any{"prompt": "a heist", "length": "concise"},
	})
	if err != nil {
		t.Fatalf("CallTool error: %v", err)
	}
	if res.IsError {
		t.Fatalf("Expected success, got error result: %+v", res.Content)
	}

	data, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatal(err)
	}
	var got script.Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decoding structured content: %v", err)
	}
	if got.Title != "Cloudbreak" || len(got.Scenes) != 2 {
		t.Fatalf("Unexpected result: %+v", got)
	}
	if got.Scenes[0].Number != 1 {
		t.Errorf("Expected scenes in order, got %d first", got.Scenes[0].Number)
	}
	if gen.Result.Scenes[0].Number != 2 || gen.Result.Characters != nil {
		t.Error("Expected the generator's result to be left untouched")
	}
}

func TestGenerateScriptOverSession_Failure(t *testing.T) {
	session := connect(t, newTestServer(&MockGenerator{Err: generator.ErrInvalidCredential}))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "generate_script",
		Arguments: map[string]any{"prompt": "a heist"},
	})
	if err != nil {
		t.Fatalf("CallTool error: %v", err)
	}
	if !res.IsError {
		t.Fatal("Expected an error result")
	}
	if len(res.Content) == 0 {
		t.Fatal("Expected error content")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok || text.Text != state.MsgInvalidAPIKey {
		t.Errorf("Expected %q, got %+v", state.MsgInvalidAPIKey, res.Content[0])
	}
}

func TestListLengthsOverSession(t *testing.T) {
	session := connect(t, newTestServer(&MockGenerator{}))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_lengths",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool error: %v", err)
	}
	if res.IsError {
		t.Fatalf("Expected success, got: %+v", res.Content)
	}
}
