package services

import (
	"math"

	"learnhub/internal/logging"
	"learnhub/internal/models"
	"learnhub/internal/repository"
)

var _ CourseService = (*courseService)(nil)

type courseService struct {
	Repo *repository.Repository
}

// NewCourseService creates the learner-facing service over the store.
func NewCourseService(repo *repository.Repository) *courseService {
	return &courseService{Repo: repo}
}

// ListCoursesWithProgress returns the whole catalog ordered by id, each
// course annotated with its lesson count, the learner's completed count and
// enrollment status. Completion is only meaningful once enrolled, so
// CompletedLessons stays 0 for unenrolled courses. A failed enrichment for
// one course degrades that course's derived fields to zero and moves on;
// the rest of the list still returns.
func (s *courseService) ListCoursesWithProgress() ([]models.CourseOverview, error) {
	courses, err := s.Repo.ListCourses()
	if err != nil {
		return nil, err
	}

	overviews := make([]models.CourseOverview, 0, len(courses))
	for _, course := range courses {
		overview := models.CourseOverview{Course: course}

		if total, err := s.Repo.CountLessons(course.ID); err != nil {
			logging.Log.Warnf("ListCoursesWithProgress: lesson count failed for course %d: %v", course.ID, err)
		} else {
			overview.TotalLessons = total
		}

		enrolled, err := s.Repo.IsEnrolled(course.ID)
		if err != nil {
			logging.Log.Warnf("ListCoursesWithProgress: enrollment check failed for course %d: %v", course.ID, err)
		}
		overview.IsEnrolled = enrolled

		if enrolled {
			if completed, err := s.Repo.CountCompletedLessons(course.ID); err != nil {
				logging.Log.Warnf("ListCoursesWithProgress: completion count failed for course %d: %v", course.ID, err)
			} else {
				overview.CompletedLessons = completed
			}
		}

		overviews = append(overviews, overview)
	}
	return overviews, nil
}

// ListEnrolledCourses returns the learner's courses, most recently enrolled
// first, with the same per-item degradation as ListCoursesWithProgress.
func (s *courseService) ListEnrolledCourses() ([]models.EnrolledCourse, error) {
	courses, err := s.Repo.ListEnrolledCourses()
	if err != nil {
		return nil, err
	}

	for i := range courses {
		if total, err := s.Repo.CountLessons(courses[i].ID); err != nil {
			logging.Log.Warnf("ListEnrolledCourses: lesson count failed for course %d: %v", courses[i].ID, err)
		} else {
			courses[i].TotalLessons = total
		}
		if completed, err := s.Repo.CountCompletedLessons(courses[i].ID); err != nil {
			logging.Log.Warnf("ListEnrolledCourses: completion count failed for course %d: %v", courses[i].ID, err)
		} else {
			courses[i].CompletedLessons = completed
		}
	}
	return courses, nil
}

// GetCourse retrieves a single course.
func (s *courseService) GetCourse(id int64) (*models.Course, error) {
	return s.Repo.GetCourseByID(id)
}

// IsEnrolled reports the learner's enrollment status for a course.
func (s *courseService) IsEnrolled(courseID int64) (bool, error) {
	return s.Repo.IsEnrolled(courseID)
}

// Enroll enrolls the learner in an existing course. Returns false when the
// learner was already enrolled; the duplicate call has no side effect.
func (s *courseService) Enroll(courseID int64) (bool, error) {
	if _, err := s.Repo.GetCourseByID(courseID); err != nil {
		return false, err
	}
	return s.Repo.Enroll(courseID)
}

// ListLessons returns a course's lessons in sequence order with the
// learner's completion flag. A failed progress fetch for one lesson degrades
// that lesson to not-completed and continues; this partial-failure tolerance
// is part of the contract, not an accident.
func (s *courseService) ListLessons(courseID int64) ([]models.LessonStatus, error) {
	lessons, err := s.Repo.ListLessonsByCourse(courseID)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.LessonStatus, 0, len(lessons))
	for _, lesson := range lessons {
		completed, err := s.Repo.LessonCompleted(lesson.ID)
		if err != nil {
			logging.Log.Warnf("ListLessons: progress check failed for lesson %d, using default: %v", lesson.ID, err)
			completed = false
		}
		statuses = append(statuses, models.LessonStatus{Lesson: lesson, Completed: completed})
	}
	return statuses, nil
}

// GetLesson retrieves a lesson with its course title and completion flag.
func (s *courseService) GetLesson(lessonID int64) (*models.LessonView, error) {
	return s.Repo.GetLessonView(lessonID)
}

// MarkComplete flips a lesson's completion flag to 1.
func (s *courseService) MarkComplete(lessonID int64) error {
	return s.Repo.MarkComplete(lessonID)
}

// MarkIncomplete flips a lesson's completion flag back to 0.
func (s *courseService) MarkIncomplete(lessonID int64) error {
	return s.Repo.MarkIncomplete(lessonID)
}

// ProgressPercent returns the learner's progress through a course as a
// rounded percentage in [0,100]. A course with no lessons is 0% by
// definition.
func (s *courseService) ProgressPercent(courseID int64) (int, error) {
	total, err := s.Repo.CountLessons(courseID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	completed, err := s.Repo.CountCompletedLessons(courseID)
	if err != nil {
		return 0, err
	}

	return int(math.Round(float64(completed) / float64(total) * 100)), nil
}
