package domain

import "time"

// Document is the stored, immutable text of one uploaded file.
// The search core only ever reads document content; uploads create
// documents and deletes destroy them, with no partial updates in between.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// ProjectID links to the owning Project.
	ProjectID string

	// Filename is the original uploaded filename, kept for display.
	Filename string

	// FileType is the lowercase file extension (".txt", ".md", ...).
	FileType string

	// Content is the full extracted text.
	Content string

	// FileSize is the size of the original upload in bytes.
	FileSize int64

	// PageCount is the page count reported by text extraction, if any.
	PageCount int

	// UploadedAt is when the document was stored.
	UploadedAt time.Time
}

// Passage is a bounded chunk of a document's text, the unit of embedding
// and retrieval. Passages are recomputed on every index build and never
// persisted.
type Passage struct {
	// DocumentID links back to the source Document.
	DocumentID string

	// Filename is the source document's filename, carried for display.
	Filename string

	// Ordinal is the passage's position in the index's global passage
	// sequence. It is the tiebreaker for equal similarity scores.
	Ordinal int

	// StartOffset is the byte offset of Text within the document content.
	StartOffset int

	// Text is the passage content, an exact substring of the document.
	Text string
}
