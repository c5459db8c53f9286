package wishlist

import (
	"time"
)

// Entry records a user's interest in a book: the user is notified when the
// book becomes available. A user may wishlist a given book at most once.
// Entries are created by an external process; this system only reads them
// during notification fan-out.
type Entry struct {
	ID        uint
	UserID    uint // externally defined, no user table owned here
	BookID    uint
	CreatedAt time.Time
}
