package kit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func tag(name string, calls *[]string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			*calls = append(*calls, name)
			return next(ctx, req)
		}
	}
}

func TestChainOrder(t *testing.T) {
	var calls []string
	ep := Chain(tag("a", &calls), tag("b", &calls), tag("c", &calls))(func(context.Context, any) (any, error) {
		calls = append(calls, "endpoint")
		return "done", nil
	})

	resp, err := ep(context.Background(), nil)
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	if resp != "done" {
		t.Errorf("resp = %v, want done", resp)
	}
	if got := strings.Join(calls, ","); got != "a,b,c,endpoint" {
		t.Errorf("calls = %s, want a,b,c,endpoint", got)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	boom := errors.New("boom")

	ok := Logging(logger, "ok_tool")(func(context.Context, any) (any, error) { return 1, nil })
	fail := Logging(logger, "bad_tool")(func(context.Context, any) (any, error) { return nil, boom })

	if _, err := ok(context.Background(), nil); err != nil {
		t.Fatalf("ok: %v", err)
	}
	if _, err := fail(context.Background(), nil); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}

	out := buf.String()
	if !strings.Contains(out, "endpoint=ok_tool") || !strings.Contains(out, "level=DEBUG") {
		t.Errorf("missing debug line for ok_tool:\n%s", out)
	}
	if !strings.Contains(out, "endpoint=bad_tool") || !strings.Contains(out, "level=WARN") {
		t.Errorf("missing warn line for bad_tool:\n%s", out)
	}
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name    string
		ep      Endpoint
		want    any
		wantErr string
	}{
		{"ok", func(context.Context, any) (any, error) { return "fine", nil }, "fine", ""},
		{"error", func(context.Context, any) (any, error) { return nil, errors.New("boom") }, nil, "boom"},
		{"panic", func(context.Context, any) (any, error) { panic("kaboom") }, nil, "tool: panic: kaboom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := Recover("tool")(tt.ep)(context.Background(), nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
			if resp != tt.want {
				t.Errorf("resp = %v, want %v", resp, tt.want)
			}
		})
	}
}
