package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkCompleteUpsert(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	lessonID, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)

	done, err := repo.LessonCompleted(lessonID)
	assert.NoError(t, err)
	assert.False(t, done)

	assert.NoError(t, repo.MarkComplete(lessonID))
	assert.NoError(t, repo.MarkComplete(lessonID))

	// Repeated completion keeps a single progress row.
	var count int
	err = repo.DB.QueryRow("SELECT COUNT(*) FROM progress WHERE lesson_id = ?", lessonID).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	done, err = repo.LessonCompleted(lessonID)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestMarkIncompleteFlipsFlag(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	lessonID, err := repo.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)

	// Without a progress row this is a no-op.
	assert.NoError(t, repo.MarkIncomplete(lessonID))

	assert.NoError(t, repo.MarkComplete(lessonID))
	assert.NoError(t, repo.MarkIncomplete(lessonID))

	done, err := repo.LessonCompleted(lessonID)
	assert.NoError(t, err)
	assert.False(t, done)

	// The flag flips back on, still a single row.
	assert.NoError(t, repo.MarkComplete(lessonID))
	done, err = repo.LessonCompleted(lessonID)
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestCourseCompletionCounts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	courseID, err := repo.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	var lessonIDs []int64
	for _, title := range []string{"One", "Two", "Three", "Four"} {
		id, err := repo.CreateLesson(courseID, title, "body")
		assert.NoError(t, err)
		lessonIDs = append(lessonIDs, id)
	}

	total, err := repo.CountLessons(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 4, total)

	assert.NoError(t, repo.MarkComplete(lessonIDs[0]))
	assert.NoError(t, repo.MarkComplete(lessonIDs[1]))

	completed, err := repo.CountCompletedLessons(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 2, completed)

	// Incomplete rows do not count.
	assert.NoError(t, repo.MarkIncomplete(lessonIDs[1]))
	completed, err = repo.CountCompletedLessons(courseID)
	assert.NoError(t, err)
	assert.Equal(t, 1, completed)
}

func TestStoreWideCounts(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	firstID, err := repo.CreateCourse("First", "desc", "someone")
	assert.NoError(t, err)
	secondID, err := repo.CreateCourse("Second", "desc", "someone")
	assert.NoError(t, err)

	lessonID, err := repo.CreateLesson(firstID, "One", "body")
	assert.NoError(t, err)
	_, err = repo.CreateLesson(secondID, "Two", "body")
	assert.NoError(t, err)

	_, err = repo.Enroll(firstID)
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkComplete(lessonID))

	courses, err := repo.CountAllCourses()
	assert.NoError(t, err)
	assert.Equal(t, 2, courses)
	lessons, err := repo.CountAllLessons()
	assert.NoError(t, err)
	assert.Equal(t, 2, lessons)
	enrollments, err := repo.CountAllEnrollments()
	assert.NoError(t, err)
	assert.Equal(t, 1, enrollments)
	completed, err := repo.CountAllCompletedLessons()
	assert.NoError(t, err)
	assert.Equal(t, 1, completed)
}
