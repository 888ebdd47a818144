package domain

import "time"

// Project is a user-defined grouping of documents. It is the scope boundary
// for indexing and search: an index is built from exactly one project's
// documents and never shared across projects.
type Project struct {
	// ID is the unique identifier for the project.
	ID string

	// Name is the human-readable project name, unique across projects.
	Name string

	// Description is an optional free-form description.
	Description string

	// DocumentCount is the number of documents currently in the project.
	// Populated on listing; not stored.
	DocumentCount int

	// CreatedAt is when the project was created.
	CreatedAt time.Time
}
