package protocol

import "encoding/json"

// SignalKind tags the three point-to-point negotiation events.
// The server relays their bodies blindly between connection ids.
type SignalKind string

const (
	SignalOffer        SignalKind = EvtOffer
	SignalAnswer       SignalKind = EvtAnswer
	SignalICECandidate SignalKind = EvtICECandidate
)

type JoinRoomPayload struct {
	RoomID   string `json:"roomId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
}

// SignalPayload carries an offer, answer or ice-candidate from a
// declared sender to one target. Exactly one body field is expected,
// matching the event name, but the server never inspects it.
type SignalPayload struct {
	To        string          `json:"to" validate:"required"`
	From      string          `json:"from" validate:"required"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// Body returns the payload field matching the signal kind.
func (p *SignalPayload) Body(kind SignalKind) json.RawMessage {
	switch kind {
	case SignalOffer:
		return p.Offer
	case SignalAnswer:
		return p.Answer
	case SignalICECandidate:
		return p.Candidate
	}
	return nil
}

// SignalForward is the server → target shape of a relayed signal.
type SignalForward struct {
	From      string          `json:"from"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

// NewSignalForward places body into the field matching kind.
func NewSignalForward(kind SignalKind, from string, body json.RawMessage) SignalForward {
	out := SignalForward{From: from}
	switch kind {
	case SignalOffer:
		out.Offer = body
	case SignalAnswer:
		out.Answer = body
	case SignalICECandidate:
		out.Candidate = body
	}
	return out
}

type ChatPayload struct {
	RoomID string `json:"roomId" validate:"required"`
	// Message is broadcast verbatim, sender included. No size limit,
	// no format validation.
	Message json.RawMessage `json:"message" validate:"required"`
}

// Toggle flags are pointers so that an explicit false survives the
// required check while an absent field still no-ops the operation.
type ToggleCameraPayload struct {
	RoomID     string `json:"roomId" validate:"required"`
	IsCameraOn *bool  `json:"isCameraOn" validate:"required"`
}

type ToggleMicPayload struct {
	RoomID  string `json:"roomId" validate:"required"`
	IsMicOn *bool  `json:"isMicOn" validate:"required"`
}

type UserToggleCamera struct {
	ID         string `json:"id"`
	IsCameraOn bool   `json:"isCameraOn"`
}

type UserToggleMic struct {
	ID      string `json:"id"`
	IsMicOn bool   `json:"isMicOn"`
}

type UserLeft struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
