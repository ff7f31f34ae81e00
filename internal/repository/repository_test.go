package repository

import (
	"os"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"

	"learnhub/internal/config"
	"learnhub/internal/db/migrations"
	"learnhub/internal/logging"
	"learnhub/internal/shared"
)

func TestMain(m *testing.M) {
	logging.Silence()
	os.Exit(m.Run())
}

func applyTestMigrations(t *testing.T, repo *Repository) {
	t.Helper()
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
}

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()
	const dbPath = "test_store.db"

	os.Remove(dbPath)

	dummyCfg := &config.Config{
		Database: config.DatabaseConfig{
			Path: dbPath,
		},
	}

	repo, err := NewRepository(dummyCfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}

	applyTestMigrations(t, repo)

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestNewRepository(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	tables := []string{"courses", "lessons", "enrollments", "progress"}
	for _, table := range tables {
		var name string
		err := repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table '%s' was not created: %v", table, err)
		}
	}
}

func TestCourseCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repo.CreateCourse("Go Basics", "An introduction", "R. Pike")
	assert.NoError(t, err)
	assert.NotZero(t, id)

	course, err := repo.GetCourseByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "Go Basics", course.Title)
	assert.Equal(t, "R. Pike", course.Instructor)
	assert.False(t, course.CreatedAt.IsZero())

	err = repo.UpdateCourse(id, "Go Basics", "A longer introduction", "R. Pike")
	assert.NoError(t, err)
	updated, err := repo.GetCourseByID(id)
	assert.NoError(t, err)
	assert.Equal(t, "A longer introduction", updated.Description)

	err = repo.DeleteCourse(id)
	assert.NoError(t, err)
	_, err = repo.GetCourseByID(id)
	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
}

func TestCreateCourseValidation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateCourse("", "desc", "someone")
	assert.ErrorIs(t, err, shared.ErrValidation)
	_, err = repo.CreateCourse("   ", "desc", "someone")
	assert.ErrorIs(t, err, shared.ErrValidation)
	_, err = repo.CreateCourse("Title", "desc", "")
	assert.ErrorIs(t, err, shared.ErrValidation)

	n, err := repo.CountAllCourses()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUpdateMissingCourse(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.UpdateCourse(999, "Title", "desc", "someone")
	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
}

func TestDeleteMissingCourseIsNoOp(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Keeper", "desc", "someone")
	assert.NoError(t, err)
	lessonID, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)
	_, err = repo.Enroll(courseID)
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkComplete(lessonID))

	assert.NoError(t, repo.DeleteCourse(999))

	// All four relations are untouched.
	courses, err := repo.CountAllCourses()
	assert.NoError(t, err)
	assert.Equal(t, 1, courses)
	lessons, err := repo.CountAllLessons()
	assert.NoError(t, err)
	assert.Equal(t, 1, lessons)
	enrollments, err := repo.CountAllEnrollments()
	assert.NoError(t, err)
	assert.Equal(t, 1, enrollments)
	completed, err := repo.CountAllCompletedLessons()
	assert.NoError(t, err)
	assert.Equal(t, 1, completed)
}

func TestDeleteCourseCascades(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Doomed", "gone soon", "someone")
	assert.NoError(t, err)
	otherID, err := repo.CreateCourse("Survivor", "stays", "someone")
	assert.NoError(t, err)

	lessonID, err := repo.CreateLesson(courseID, "Lesson 1", "body")
	assert.NoError(t, err)
	otherLessonID, err := repo.CreateLesson(otherID, "Other lesson", "body")
	assert.NoError(t, err)

	_, err = repo.Enroll(courseID)
	assert.NoError(t, err)
	_, err = repo.Enroll(otherID)
	assert.NoError(t, err)

	assert.NoError(t, repo.MarkComplete(lessonID))
	assert.NoError(t, repo.MarkComplete(otherLessonID))

	assert.NoError(t, repo.DeleteCourse(courseID))

	_, err = repo.GetCourseByID(courseID)
	assert.ErrorIs(t, err, shared.ErrCourseNotFound)
	_, err = repo.GetLessonByID(lessonID)
	assert.ErrorIs(t, err, shared.ErrLessonNotFound)

	enrolled, err := repo.IsEnrolled(courseID)
	assert.NoError(t, err)
	assert.False(t, enrolled)
	done, err := repo.LessonCompleted(lessonID)
	assert.NoError(t, err)
	assert.False(t, done)

	// Unrelated course keeps its lessons, enrollment and progress.
	_, err = repo.GetLessonByID(otherLessonID)
	assert.NoError(t, err)
	enrolled, err = repo.IsEnrolled(otherID)
	assert.NoError(t, err)
	assert.True(t, enrolled)
	done, err = repo.LessonCompleted(otherLessonID)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestListCoursesAdminCounts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	firstID, err := repo.CreateCourse("First", "desc", "someone")
	assert.NoError(t, err)
	secondID, err := repo.CreateCourse("Second", "desc", "someone")
	assert.NoError(t, err)

	_, err = repo.CreateLesson(firstID, "L1", "body")
	assert.NoError(t, err)
	_, err = repo.CreateLesson(firstID, "L2", "body")
	assert.NoError(t, err)
	_, err = repo.Enroll(firstID)
	assert.NoError(t, err)

	courses, err := repo.ListCoursesAdmin()
	assert.NoError(t, err)
	assert.Len(t, courses, 2)

	// Newest first.
	assert.Equal(t, secondID, courses[0].ID)
	assert.Equal(t, 0, courses[0].LessonCount)
	assert.Equal(t, 0, courses[0].EnrollmentCount)
	assert.Equal(t, firstID, courses[1].ID)
	assert.Equal(t, 2, courses[1].LessonCount)
	assert.Equal(t, 1, courses[1].EnrollmentCount)
}
