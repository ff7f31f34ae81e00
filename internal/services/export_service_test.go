package services

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportCatalog(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	lessonID, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)
	_, err = repo.Enroll(courseID)
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkComplete(lessonID))

	admin := NewAdminService(repo)
	svc := NewExportService(repo, admin)

	var buf bytes.Buffer
	assert.NoError(t, svc.ExportCatalog(&buf))

	var export CatalogExport
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &export))

	assert.False(t, export.ExportedAt.IsZero())
	assert.Equal(t, 1, export.Statistics.TotalCourses)
	assert.Equal(t, 1, export.Statistics.TotalLessons)
	assert.Equal(t, 1, export.Statistics.TotalEnrollments)
	assert.Equal(t, 1, export.Statistics.CompletedLessons)

	assert.Len(t, export.Courses, 1)
	assert.Equal(t, "Go Basics", export.Courses[0].Title)
	assert.Len(t, export.Courses[0].Lessons, 1)
	assert.Equal(t, "One", export.Courses[0].Lessons[0].Title)
	assert.Equal(t, 1, export.Courses[0].Lessons[0].CompletionCount)
}

func TestExportToDir(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()

	_, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)

	tmpDir, err := os.MkdirTemp("", "learnhub_export_")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	admin := NewAdminService(repo)
	svc := NewExportService(repo, admin)

	path, err := svc.ExportToDir(filepath.Join(tmpDir, "exports"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "learnhub-export-"))
	assert.True(t, strings.HasSuffix(path, ".json"))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)

	var export CatalogExport
	assert.NoError(t, json.Unmarshal(raw, &export))
	assert.Equal(t, 1, export.Statistics.TotalCourses)
}
