package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/sicspell/pkg/annotate"
	"github.com/hazyhaar/sicspell/pkg/dict"
	"github.com/hazyhaar/sicspell/pkg/kit"
)

// maxTextBytes bounds a single annotate_text call.
const maxTextBytes = 1 << 20

// Dictionary is a loaded, read-only Store and the identifier it came from.
type Dictionary struct {
	Source string
	Store  *dict.Store
}

// Shared request/response types.

type annotateReq struct {
	Text string
}

type annotateResponse struct {
	Text  string         `json:"text"`
	Stats annotate.Stats `json:"stats"`
}

type checkWordReq struct {
	Word string
}

type checkWordResponse struct {
	Word   string `json:"word"`
	Known  bool   `json:"known"`
	Policy string `json:"policy"`
}

type dictInfoResponse struct {
	Source  string `json:"source"`
	Entries int    `json:"entries"`
}

// Each call gets its own Annotator; the Store is only read.

func annotateEndpoint(d *Dictionary) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*annotateReq)
		if len(req.Text) > maxTextBytes {
			return nil, fmt.Errorf("text too large (max %d bytes, got %d)", maxTextBytes, len(req.Text))
		}
		out, stats, err := annotate.String(d.Store, req.Text)
		if err != nil {
			return nil, err
		}
		return annotateResponse{Text: out, Stats: stats}, nil
	}
}

func checkWordEndpoint(d *Dictionary) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*checkWordReq)
		if req.Word == "" {
			return nil, fmt.Errorf("word is empty")
		}
		p, ok := dict.Match(d.Store, []byte(req.Word))
		return checkWordResponse{Word: req.Word, Known: ok, Policy: p.String()}, nil
	}
}

func dictInfoEndpoint(d *Dictionary) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return dictInfoResponse{Source: d.Source, Entries: d.Store.Len()}, nil
	}
}
