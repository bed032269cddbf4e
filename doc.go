// Package mdnotes is the composition root for the mdnotes application.
//
// It wires the core note logic (pkg/core) to the filesystem store adapter
// (pkg/adapters/fs) and resolves where the notes directory lives.
//
// Philosophy:
//
// mdnotes treats a flat directory of markdown files as the entire
// database. Every note is a plain text file beginning with a fixed
// four-line header (title, creation time, ID, tags); the directory plus a
// small JSON counter file is the sole source of truth. There is no index,
// no cache, and no locking: the tool is built for a single user at the
// scale of tens to low thousands of notes, and it accepts the counter and
// filename races that concurrent invocations could produce.
//
// Usage:
//
//	svc, err := mdnotes.New("",
//		mdnotes.WithLogger(logger),
//	)
//
//	created, err := svc.CreateNote(ctx, "Groceries #shopping", "")
package mdnotes
