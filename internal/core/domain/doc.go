// Package domain contains the core value types and business rules for
// project-scoped semantic document search. Types here are plain data with
// no infrastructure dependencies.
package domain
