package benkyov1

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// Codec encodes messages as JSON under the "json" codec name, so Connect
// clients send and accept application/json without protobuf descriptors.
type Codec struct{}

var _ connect.Codec = Codec{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithCodec is the connect option both clients and handlers need.
func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
