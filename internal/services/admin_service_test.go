package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learnhub/internal/models"
)

func TestStatistics(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewAdminService(repo)

	courseID, err := svc.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)
	lessonID, err := svc.CreateLesson(courseID, "One", "body")
	assert.NoError(t, err)
	_, err = svc.CreateLesson(courseID, "Two", "body")
	assert.NoError(t, err)

	_, err = repo.Enroll(courseID)
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkComplete(lessonID))

	stats := svc.Statistics()
	assert.Equal(t, 1, stats.TotalCourses)
	assert.Equal(t, 2, stats.TotalLessons)
	assert.Equal(t, 1, stats.TotalEnrollments)
	assert.Equal(t, 1, stats.CompletedLessons)
}

func TestStatisticsDegradesOnClosedStore(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewAdminService(repo)

	_, err := svc.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)

	// Each count degrades to zero instead of failing the dashboard.
	repo.Close()
	assert.Equal(t, models.Statistics{}, svc.Statistics())
}

func TestAdminCourseFacade(t *testing.T) {
	repo, cleanup := setupIntegrationTest(t)
	defer cleanup()
	svc := NewAdminService(repo)

	id, err := svc.CreateCourse("Go Basics", "desc", "someone")
	assert.NoError(t, err)

	assert.NoError(t, svc.UpdateCourse(id, "Go Basics", "updated", "someone"))
	course, err := svc.GetCourse(id)
	assert.NoError(t, err)
	assert.Equal(t, "updated", course.Description)

	courses, err := svc.ListCourses()
	assert.NoError(t, err)
	assert.Len(t, courses, 1)

	assert.NoError(t, svc.DeleteCourse(id))
	courses, err = svc.ListCourses()
	assert.NoError(t, err)
	assert.Empty(t, courses)
}
