package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreateCmd(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "project", "create", "Research")
	require.NoError(t, err)
	assert.Contains(t, out, `Created project "Research"`)
}

func TestProjectCreateCmdDuplicate(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "project", "create", "Notes")
	require.NoError(t, err)

	_, err = execute(t, "project", "create", "Notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestProjectListCmd(t *testing.T) {
	setupTestServices(t)
	seedProject(t, "Notes", "a.txt", "some text")

	out, err := execute(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Notes")
	assert.Contains(t, out, "Documents: 1")
	assert.Contains(t, out, "Total: 1 projects")
}

func TestProjectListCmdEmpty(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects yet")
}

func TestProjectDeleteCmd(t *testing.T) {
	setupTestServices(t)
	seedProject(t, "Notes", "a.txt", "some text")

	out, err := execute(t, "project", "delete", "Notes")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted project "Notes"`)

	out, err = execute(t, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects yet")
}

func TestProjectDeleteCmdUnknown(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "project", "delete", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProjectCmdServiceNotConfigured(t *testing.T) {
	old := projectService
	projectService = nil
	defer func() { projectService = old }()

	_, err := execute(t, "project", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project service not configured")
}
