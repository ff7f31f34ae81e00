package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"

	"learnhub/internal/config"
	"learnhub/internal/db/migrations"
	"learnhub/internal/logging"
	"learnhub/internal/repository"
	"learnhub/internal/shared"
)

func TestMain(m *testing.M) {
	logging.Silence()
	os.Exit(m.Run())
}

// setupIntegrationTest creates a real store backed by a temp file.
func setupIntegrationTest(t *testing.T) (*repository.Repository, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "learnhub_integration_")
	assert.NoError(t, err)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: filepath.Join(tmpDir, "test.db"),
		},
	}

	repo, err := repository.NewRepository(cfg)
	assert.NoError(t, err)

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to migrate integration DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, cleanup
}

func TestProgressPercent(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	var lessonIDs []int64
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		id, err := repo.CreateLesson(courseID, title, "body")
		assert.NoError(t, err)
		lessonIDs = append(lessonIDs, id)
	}

	percent, err := svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 0, percent)

	assert.NoError(t, svc.MarkComplete(lessonIDs[0]))
	assert.NoError(t, svc.MarkComplete(lessonIDs[1]))
	percent, err = svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 50, percent)

	for _, id := range lessonIDs {
		assert.NoError(t, svc.MarkComplete(id))
	}
	percent, err = svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 100, percent)
}

func TestProgressPercentRounds(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	var lessonIDs []int64
	for _, title := range []string{"One", "Two", "Three"} {
		id, err := repo.CreateLesson(courseID, title, "body")
		assert.NoError(t, err)
		lessonIDs = append(lessonIDs, id)
	}

	// 1/3 rounds to 33, 2/3 rounds to 67.
	assert.NoError(t, svc.MarkComplete(lessonIDs[0]))
	percent, err := svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 33, percent)

	assert.NoError(t, svc.MarkComplete(lessonIDs[1]))
	percent, err = svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 67, percent)
}

func TestProgressPercentEmptyCourse(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	courseID, err := repo.CreateCourse("Empty", "no lessons", "someone")
	assert.NoError(t, err)

	percent, err := svc.ProgressPercent(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 0, percent)
}

func TestListCoursesWithProgress(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	enrolledID, err := repo.CreateCourse("Enrolled", "desc", "someone")
	assert.NoError(t, err)
	browsedID, err := repo.CreateCourse("Browsed", "desc", "someone")
	assert.NoError(t, err)

	enrolledLesson, err := repo.CreateLesson(enrolledID, "One", "body")
	assert.NoError(t, err)
	browsedLesson, err := repo.CreateLesson(browsedID, "One", "body")
	assert.NoError(t, err)

	_, err = svc.Enroll(enrolledID)
	assert.NoError(t, err)
	assert.NoError(t, svc.MarkComplete(enrolledLesson))
	// Completion without enrollment stays invisible in the catalog view.
	assert.NoError(t, svc.MarkComplete(browsedLesson))

	overviews, err := svc.ListCoursesWithProgress()
	assert.NoError(t, err)
	assert.Len(t, overviews, 2)

	assert.Equal(t, enrolledID, overviews[0].ID)
	assert.True(t, overviews[0].IsEnrolled)
	assert.Equal(t, 1, overviews[0].TotalLessons)
	assert.Equal(t, 1, overviews[0].CompletedLessons)

	assert.Equal(t, browsedID, overviews[1].ID)
	assert.False(t, overviews[1].IsEnrolled)
	assert.Equal(t, 1, overviews[1].TotalLessons)
	assert.Equal(t, 0, overviews[1].CompletedLessons)
}

func TestListCoursesEmptyStore(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	overviews, err := svc.ListCoursesWithProgress()
	assert.NoError(t, err)
	assert.Empty(t, overviews)

	enrolled, err := svc.ListEnrolledCourses()
	assert.NoError(t, err)
	assert.Empty(t, enrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	_, err := svc.Enroll(999)
	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
}

func TestListEnrolledCoursesCounts(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	first, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)
	_, err = repo.CreateLesson(courseID, "Two", "body")
	assert.NoError(t, err)

	_, err = svc.Enroll(courseID)
	assert.NoError(t, err)
	assert.NoError(t, svc.MarkComplete(first))

	courses, err := svc.ListEnrolledCourses()
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, 2, courses[0].TotalLessons)
	assert.Equal(t, 1, courses[0].CompletedLessons)
}

func TestSeededCourseProgressScenario(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	seeded, err := repo.SeedIfEmpty()
	assert.NoError(t, err)
	assert.True(t, seeded)

	overviews, err := svc.ListCoursesWithProgress()
	assert.NoError(t, err)
	assert.NotEmpty(t, overviews)

	// Work through the first starter course: half done, then all done.
	course := overviews[0]
	assert.Equal(t, 4, course.TotalLessons)

	_, err = svc.Enroll(course.ID)
	assert.NoError(t, err)

	lessons, err := svc.ListLessons(course.ID)
	assert.NoError(t, err)
	assert.Len(t, lessons, 4)

	assert.NoError(t, svc.MarkComplete(lessons[0].ID))
	assert.NoError(t, svc.MarkComplete(lessons[1].ID))
	percent, err := svc.ProgressPercent(course.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50, percent)

	for _, l := range lessons {
		assert.NoError(t, svc.MarkComplete(l.ID))
	}
	percent, err = svc.ProgressPercent(course.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100, percent)
}

func TestListLessonsStatuses(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewCourseService(repo)

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	first, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)
	_, err = repo.CreateLesson(courseID, "Two", "body")
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkComplete(first))

	lessons, err := svc.ListLessons(courseID)
	assert.NoError(t, err)
	assert.Len(t, lessons, 2)
	assert.True(t, lessons[0].Completed)
	assert.False(t, lessons[1].Completed)
}
