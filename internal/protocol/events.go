// Package protocol defines the wire envelope and the typed payloads of
// every signaling event. Payloads crossing the dispatch boundary are
// validated here; a payload missing required fields no-ops the
// operation instead of propagating undefined values.
package protocol

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Client → server events.
const (
	EvtJoinRoom     = "join-room"
	EvtOffer        = "offer"
	EvtAnswer       = "answer"
	EvtICECandidate = "ice-candidate"
	EvtSendMessage  = "send-message"
	EvtToggleCamera = "toggle-camera"
	EvtToggleMic    = "toggle-mic"
	EvtLeaveRoom    = "leave-room"
)

// Server → client events.
const (
	EvtExistingParticipants = "existing-participants"
	EvtUserJoined           = "user-joined"
	EvtReceiveMessage       = "receive-message"
	EvtUserToggleCamera     = "user-toggle-camera"
	EvtUserToggleMic        = "user-toggle-mic"
	EvtUserLeft             = "user-left"
)

// Envelope multiplexes named events over one connection.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

var validate = validator.New()

// Decode parses a raw frame into an envelope.
func Decode(frame []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// DecodePayload unmarshals envelope data into v and checks its
// required fields. This is the single validation point for inbound
// payloads.
func DecodePayload(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// Encode marshals a payload and wraps it in an envelope.
func Encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
