package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hazyhaar/sicspell/pkg/dict"
	"github.com/hazyhaar/sicspell/pkg/kit"
	"github.com/mark3labs/mcp-go/mcp"
)

func testDictionary() *Dictionary {
	s := dict.NewStore(0)
	for _, w := range []string{"this", "is", "a", "test", "of", "program"} {
		s.Insert([]byte(w))
	}
	return &Dictionary{Source: "words.txt", Store: s}
}

func callTool(t *testing.T, ep kit.Endpoint, decode kit.MCPDecoder, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := kit.MCPHandler(ep, decode)(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("content = %d items, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content[0] = %T, want mcp.TextContent", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestAnnotateText(t *testing.T) {
	out, isErr := callTool(t, annotateEndpoint(testDictionary()), decodeAnnotateText,
		map[string]any{"text": "this is a taest of  this-proGram"})
	if isErr {
		t.Fatalf("tool error: %s", out)
	}

	var resp annotateResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if resp.Text != "this is a taest [sic] of  this-proGram" {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Stats.Unknown != 1 || resp.Stats.Words != 7 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestAnnotateText_TooLarge(t *testing.T) {
	_, err := annotateEndpoint(testDictionary())(context.Background(),
		&annotateReq{Text: strings.Repeat("a", maxTextBytes+1)})
	if err == nil {
		t.Error("expected error for oversized text")
	}
}

func TestCheckWord(t *testing.T) {
	d := testDictionary()
	tests := []struct {
		word   string
		known  bool
		policy string
	}{
		{"test", true, "exact"},
		{"Test", true, "lowercase_tail"},
		{"TEST", true, "lowercase"},
		{"proGram", true, "lowercase_tail"},
		{"taest", false, "none"},
	}
	for _, tt := range tests {
		out, isErr := callTool(t, checkWordEndpoint(d), decodeCheckWord, map[string]any{"word": tt.word})
		if isErr {
			t.Errorf("check_word(%q) tool error: %s", tt.word, out)
			continue
		}
		var resp checkWordResponse
		if err := json.Unmarshal([]byte(out), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Known != tt.known || resp.Policy != tt.policy {
			t.Errorf("check_word(%q) = (%v, %s), want (%v, %s)", tt.word, resp.Known, resp.Policy, tt.known, tt.policy)
		}
	}
}

func TestCheckWord_Missing(t *testing.T) {
	out, isErr := callTool(t, checkWordEndpoint(testDictionary()), decodeCheckWord, map[string]any{})
	if !isErr {
		t.Errorf("expected tool error for missing word, got %s", out)
	}
}

func TestDictInfo(t *testing.T) {
	resp, err := dictInfoEndpoint(testDictionary())(context.Background(), nil)
	if err != nil {
		t.Fatalf("dict_info: %v", err)
	}
	info := resp.(dictInfoResponse)
	if info.Source != "words.txt" || info.Entries != 6 {
		t.Errorf("info = %+v, want words.txt with 6 entries", info)
	}
}

func TestNewMCPServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if srv := NewMCPServer(testDictionary(), "test", logger); srv == nil {
		t.Fatal("NewMCPServer returned nil")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		ep      kit.Endpoint
		wantErr bool
	}{
		{"ok", func(context.Context, any) (any, error) { return "ok", nil }, false},
		{"panic", func(context.Context, any) (any, error) { panic("bad state") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			_, err := wrap(logger, "check_word", tt.ep)(context.Background(), nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			logged := strings.Contains(buf.String(), "endpoint=check_word")
			if logged != tt.wantErr {
				t.Errorf("warn logged = %v, want %v:\n%s", logged, tt.wantErr, buf.String())
			}
		})
	}
}
