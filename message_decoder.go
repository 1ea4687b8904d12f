package ytmwiki

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// MessageDecoder reads a stream of JSON messages. Each value in the stream is
// either a single message object or an array of them.
type MessageDecoder struct {
	dec     *json.Decoder
	pending []Message
}

// NewMessageDecoder returns a decoder reading from r.
func NewMessageDecoder(r io.Reader) *MessageDecoder {
	return &MessageDecoder{dec: json.NewDecoder(r)}
}

// Next returns the next message, or io.EOF when the stream is exhausted.
// Values that are not valid UTF-8 fail with ErrInvalidUTF8.
func (d *MessageDecoder) Next() (Message, error) {
	for len(d.pending) == 0 {
		var raw json.RawMessage
		if err := d.dec.Decode(&raw); err != nil {
			if err == io.EOF {
				return Message{}, io.EOF
			}
			return Message{}, fmt.Errorf("decode message: %w", err)
		}
		if err := ValidateInput(raw); err != nil {
			return Message{}, fmt.Errorf("decode message: %w", err)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			var batch []Message
			if err := json.Unmarshal(raw, &batch); err != nil {
				return Message{}, fmt.Errorf("decode message batch: %w", err)
			}
			d.pending = append(d.pending, batch...)
			continue
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return Message{}, fmt.Errorf("decode message: %w", err)
		}
		return msg, nil
	}
	msg := d.pending[0]
	d.pending = d.pending[1:]
	return msg, nil
}
