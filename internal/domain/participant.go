// Package domain contains entity without logic, just meta-data
package domain

type (
	// ConnID is the opaque connection identifier assigned by the registry.
	// Stable for the lifetime of one transport connection.
	ConnID string
	// RoomID is the externally supplied room key. Not validated or normalized.
	RoomID string
)

const MaxDisplayNameLen = 64

// Participant is one connected user inside one room.
// The JSON shape matches the wire format of presence events.
type Participant struct {
	ID       ConnID `json:"id"`
	Name     string `json:"name"`
	CameraOn bool   `json:"isCameraOn"`
	MicOn    bool   `json:"isMicOn"`
}

// NewParticipant avoids raw literals in adapters. Both media flags
// start enabled; they are only mutated by the owning connection.
func NewParticipant(id ConnID, name string) *Participant {
	if len(name) > MaxDisplayNameLen {
		name = name[:MaxDisplayNameLen]
	}
	return &Participant{ID: id, Name: name, CameraOn: true, MicOn: true}
}
