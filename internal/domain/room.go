package domain

// Room is ephemeral: created lazily on the first join, destroyed the
// instant its member count reaches zero. Membership lives in core.
type Room struct {
	ID RoomID
}
