package jsonutil

import (
	"bytes"
	"encoding/json"
)

var (
	fenceJSON = []byte("```json")
	fenceBare = []byte("```")
)

// StripFence removes a markdown code fence wrapped around a JSON payload.
// Models routinely return either a "```json\n...\n```" block or a bare
// "```\n...\n```" block; both forms are tolerated, as is input with no
// fence at all, which is returned unchanged apart from whitespace trimming.
func StripFence(raw []byte) []byte {
	out := bytes.TrimSpace(raw)
	switch {
	case bytes.HasPrefix(out, fenceJSON):
		out = bytes.TrimPrefix(out, fenceJSON)
	case bytes.HasPrefix(out, fenceBare):
		out = bytes.TrimPrefix(out, fenceBare)
	default:
		return out
	}
	out = bytes.TrimSuffix(bytes.TrimSpace(out), fenceBare)
	return bytes.TrimSpace(out)
}

// Unmarshal strips any code fence and decodes the remaining bytes into v.
func Unmarshal(raw []byte, v any) error {
	return json.Unmarshal(StripFence(raw), v)
}

// UnmarshalString is Unmarshal for the raw text a completion client returns.
func UnmarshalString(raw string, v any) error {
	return Unmarshal([]byte(raw), v)
}
