// Package api defines the Connect RPC surface of cashbench: message types,
// handler constructors and typed clients.
//
// Messages are plain Go structs carried by a JSON codec, so the API works with
// any Connect client that speaks application/json without generated code.
package api

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName is registered under the same name as Connect's built-in JSON
// codec so that application/json requests reach handlers unchanged.
const CodecName = "json"

// jsonCodec marshals plain structs with encoding/json.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return CodecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON is the option every cashbench handler and client is built with.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
