package domain

// ProjectIndex is the in-memory vector index for one project: passage
// vectors zipped with their passage metadata, in global ordinal order.
//
// An index is immutable once built and safe for concurrent reads. There is
// no append or remove; document changes invalidate the whole index and it
// is rebuilt from scratch.
type ProjectIndex struct {
	// ProjectID is the owning project.
	ProjectID string

	// Fingerprint identifies the document set the index was built from
	// (hash over ordered document IDs and content). Used for cache
	// invalidation.
	Fingerprint string

	// Passages holds passage metadata, parallel to Vectors.
	Passages []Passage

	// Vectors holds unit-normalized embedding vectors, parallel to Passages.
	Vectors [][]float32
}

// Len returns the number of indexed passages.
func (idx *ProjectIndex) Len() int {
	return len(idx.Passages)
}
