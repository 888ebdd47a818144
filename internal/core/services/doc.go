// Package services implements the core business logic: project and
// document management, index building and semantic search.
package services
