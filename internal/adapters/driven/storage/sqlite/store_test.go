package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

// saveTestProject creates a project to hang documents off.
func saveTestProject(t *testing.T, store *Store, id, name string) {
	t.Helper()
	err := store.SaveProject(context.Background(), &domain.Project{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	})
	require.NoError(t, err)
}

func TestNewStore(t *testing.T) {
	tempDir := t.TempDir()
	store, err := NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "insyte.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)
	assert.NoError(t, store.db.Ping())
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestMigrationsIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening an existing database must not rerun applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestProjectRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	err := store.SaveProject(ctx, &domain.Project{
		ID:          "p1",
		Name:        "Research",
		Description: "Academic papers",
		CreatedAt:   created,
	})
	require.NoError(t, err)

	got, err := store.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Research", got.Name)
	assert.Equal(t, "Academic papers", got.Description)
	assert.Equal(t, 0, got.DocumentCount)
	assert.True(t, created.Equal(got.CreatedAt))

	byName, err := store.GetProjectByName(ctx, "Research")
	require.NoError(t, err)
	assert.Equal(t, "p1", byName.ID)
}

func TestProjectNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetProjectByName(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectUniqueName(t *testing.T) {
	store := setupTestStore(t)
	saveTestProject(t, store, "p1", "Notes")

	err := store.SaveProject(context.Background(), &domain.Project{
		ID:        "p2",
		Name:      "Notes",
		CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestListProjectsOrderedWithCounts(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveProject(ctx, &domain.Project{ID: "p2", Name: "Second", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, store.SaveProject(ctx, &domain.Project{ID: "p1", Name: "First", CreatedAt: base}))

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d1", ProjectID: "p1", Filename: "a.txt", Content: "text", UploadedAt: base,
	}))

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "First", projects[0].Name)
	assert.Equal(t, 1, projects[0].DocumentCount)
	assert.Equal(t, "Second", projects[1].Name)
	assert.Equal(t, 0, projects[1].DocumentCount)
}

func TestDeleteProjectCascades(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	saveTestProject(t, store, "p1", "Notes")

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d1", ProjectID: "p1", Filename: "a.txt", Content: "text", UploadedAt: time.Now().UTC(),
	}))

	require.NoError(t, store.DeleteProject(ctx, "p1"))

	_, err := store.GetProject(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetDocument(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "documents go with the project")
}

func TestDocumentRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	saveTestProject(t, store, "p1", "Notes")

	uploaded := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	doc := &domain.Document{
		ID:         "d1",
		ProjectID:  "p1",
		Filename:   "paper.pdf",
		FileType:   ".pdf",
		Content:    "Deep work is the ability to focus.",
		FileSize:   34,
		PageCount:  2,
		UploadedAt: uploaded,
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, doc.Filename, got.Filename)
	assert.Equal(t, doc.FileType, got.FileType)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, doc.FileSize, got.FileSize)
	assert.Equal(t, doc.PageCount, got.PageCount)
	assert.True(t, uploaded.Equal(got.UploadedAt))
}

func TestSaveDocumentUnknownProject(t *testing.T) {
	store := setupTestStore(t)

	err := store.SaveDocument(context.Background(), &domain.Document{
		ID: "d1", ProjectID: "missing", Filename: "a.txt", Content: "text", UploadedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListDocumentsOrdered(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	saveTestProject(t, store, "p1", "Notes")
	saveTestProject(t, store, "p2", "Other")

	base := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d2", ProjectID: "p1", Filename: "b.txt", Content: "b", UploadedAt: base.Add(time.Minute),
	}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d1", ProjectID: "p1", Filename: "a.txt", Content: "a", UploadedAt: base,
	}))
	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d3", ProjectID: "p2", Filename: "c.txt", Content: "c", UploadedAt: base,
	}))

	docs, err := store.ListDocuments(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d1", docs[0].ID)
	assert.Equal(t, "d2", docs[1].ID)
}

func TestDeleteDocument(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	saveTestProject(t, store, "p1", "Notes")

	require.NoError(t, store.SaveDocument(ctx, &domain.Document{
		ID: "d1", ProjectID: "p1", Filename: "a.txt", Content: "text", UploadedAt: time.Now().UTC(),
	}))

	require.NoError(t, store.DeleteDocument(ctx, "d1"))

	_, err := store.GetDocument(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	project, err := store.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, project.DocumentCount)
}
