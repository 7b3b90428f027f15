package core

import "github.com/peerwave/peerwave/internal/domain"

// Frame is a marshaled wire message ready to be written to a transport.
type Frame []byte

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// MemberSession binds a domain.Participant and its transport endpoint.
// This is what a room stores and fans out to.
type MemberSession interface {
	Meta() *domain.Participant
	Signal() SignalConnection
}

// PublishResult reports delivery stats for a room broadcast.
// Drops are best-effort losses (dead or backpressured connections).
type PublishResult struct {
	Sent    int
	Dropped int
}

// RoomService is the core-facing API of a room. It owns the membership
// set but never touches transport resources beyond fan-out sends.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int
	// MembersSnapshot returns every current member except the given one.
	// Pass the zero ConnID to include everybody. Order is unspecified.
	MembersSnapshot(except domain.ConnID) []domain.Participant

	// AddMember inserts or replaces the entry for sid. A re-join
	// overwrites the previous participant, resetting its flags.
	AddMember(sid domain.ConnID, ms MemberSession)
	// RemoveMember deletes sid and returns the removed participant,
	// or false if sid was not a member.
	RemoveMember(sid domain.ConnID) (*domain.Participant, bool)

	// SetCamera and SetMic mutate a member's media flag, returning
	// false (no mutation) when sid is not a member.
	SetCamera(sid domain.ConnID, on bool) bool
	SetMic(sid domain.ConnID, on bool) bool

	// Notify fans out data to every member except the given one.
	// Pass the zero ConnID to reach the whole room, sender included.
	Notify(except domain.ConnID, data Frame) PublishResult
}

type RoomInfo struct {
	ID          domain.RoomID `json:"roomId"`
	MemberCount int           `json:"memberCount"`
}
