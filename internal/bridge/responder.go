package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tijarati/tijarati_host/internal/dto"
)

// Responder delivers a correlated result back over the channel the request
// arrived on.
type Responder interface {
	Respond(ctx context.Context, id string, result any) error
}

// ScriptResponder delivers responses by injecting a script into the UI's
// execution context, where it surfaces as a message event carrying
// `{id, result}`.
type ScriptResponder struct {
	Inject func(script string) error
}

var _ Responder = (*ScriptResponder)(nil)

func (r *ScriptResponder) Respond(ctx context.Context, id string, result any) error {
	script, err := ResponseScript(id, result)
	if err != nil {
		return err
	}
	return r.Inject(script)
}

// ResponseScript serializes the response into an injectable statement.
func ResponseScript(id string, result any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dto.BridgeResponse{ID: id, Result: result}); err != nil {
		return "", fmt.Errorf("failed to serialize bridge response: %w", err)
	}
	payload := escapeLineSeparators(strings.TrimRight(buf.String(), "\n"))
	return "window.postMessage(" + payload + "); true;", nil
}

// escapeLineSeparators escapes U+2028 and U+2029: both are legal inside JSON
// strings but terminate a line in JavaScript source, so injecting them
// verbatim would break the statement.
func escapeLineSeparators(s string) string {
	s = strings.ReplaceAll(s, "\u2028", "\\u2028")
	return strings.ReplaceAll(s, "\u2029", "\\u2029")
}
