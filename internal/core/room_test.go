package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerwave/peerwave/internal/domain"
)

type stubConn struct {
	mu     sync.Mutex
	frames []Frame
	fail   bool
}

func (s *stubConn) TrySend(f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return assert.AnError
	}
	s.frames = append(s.frames, f)
	return nil
}

func (s *stubConn) Close() {}

func (s *stubConn) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

func member(id domain.ConnID, name string) (MemberSession, *stubConn) {
	conn := &stubConn{}
	return NewMemberSession(domain.NewParticipant(id, name), conn), conn
}

func TestRoomMembershipIsASet(t *testing.T) {
	r := NewRoomService(&domain.Room{ID: "R1"})

	ms1, _ := member("c1", "Alice")
	r.AddMember("c1", ms1)
	require.Equal(t, 1, r.MemberCount())

	// Re-adding the same id overwrites instead of duplicating.
	ms1b, _ := member("c1", "Alice")
	r.AddMember("c1", ms1b)
	assert.Equal(t, 1, r.MemberCount())

	p, ok := r.RemoveMember("c1")
	require.True(t, ok)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 0, r.MemberCount())

	_, ok = r.RemoveMember("c1")
	assert.False(t, ok)
}

func TestRoomNotifyExcept(t *testing.T) {
	r := NewRoomService(&domain.Room{ID: "R1"})
	ms1, conn1 := member("c1", "Alice")
	ms2, conn2 := member("c2", "Bob")
	r.AddMember("c1", ms1)
	r.AddMember("c2", ms2)

	res := r.Notify("c1", Frame("x"))
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 0, conn1.count())
	assert.Equal(t, 1, conn2.count())

	// Zero ConnID reaches the whole room.
	res = r.Notify("", Frame("y"))
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, conn1.count())
	assert.Equal(t, 2, conn2.count())
}

func TestRoomNotifyCountsDrops(t *testing.T) {
	r := NewRoomService(&domain.Room{ID: "R1"})
	ms1, conn1 := member("c1", "Alice")
	conn1.fail = true
	ms2, _ := member("c2", "Bob")
	r.AddMember("c1", ms1)
	r.AddMember("c2", ms2)

	res := r.Notify("", Frame("x"))
	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Dropped)
}

func TestRoomSnapshotAndFlags(t *testing.T) {
	r := NewRoomService(&domain.Room{ID: "R1"})
	ms1, _ := member("c1", "Alice")
	ms2, _ := member("c2", "Bob")
	r.AddMember("c1", ms1)
	r.AddMember("c2", ms2)

	snap := r.MembersSnapshot("c2")
	require.Len(t, snap, 1)
	assert.Equal(t, domain.ConnID("c1"), snap[0].ID)
	assert.True(t, snap[0].CameraOn)
	assert.True(t, snap[0].MicOn)

	require.True(t, r.SetCamera("c1", false))
	require.True(t, r.SetMic("c1", false))
	snap = r.MembersSnapshot("c2")
	require.Len(t, snap, 1)
	assert.False(t, snap[0].CameraOn)
	assert.False(t, snap[0].MicOn)

	assert.False(t, r.SetCamera("ghost", true))
	assert.False(t, r.SetMic("ghost", true))
}
