package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeRequest parses one line of input as a JSON-RPC request and validates
// its shape. A failure here means the line cannot be answered on the wire: no
// id can be reliably recovered, so callers log the error and move on.
func DecodeRequest(line []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Request{}, fmt.Errorf("parse request: %w", err)
	}
	if req.JSONRPC != "2.0" {
		return Request{}, fmt.Errorf("invalid jsonrpc version %q", req.JSONRPC)
	}
	if req.Method == "" {
		return Request{}, fmt.Errorf("missing method")
	}
	return req, nil
}

// EncodeResponse serializes a response as exactly one line of UTF-8 with no
// trailing newline. HTML escaping is disabled so tool output round-trips as
// written.
func EncodeResponse(resp Response) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
