package comment

import "github.com/termweave/glossary-backend/internal/domain"

// View is a comment prepared for display: the stored record plus its
// markdown rendered to sanitized HTML.
type View struct {
	domain.Comment
	HTML string
}

// Thread is a top-level comment with its replies, oldest first.
type Thread struct {
	View
	Replies []View
}

// Discussion is one visibility scope's worth of threads. In the current
// entry view resolved threads are omitted and only counted; in the
// historical draft view they are included.
type Discussion struct {
	Threads       []Thread
	ResolvedCount int
}
