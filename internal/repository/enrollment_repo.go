package repository

import (
	"fmt"
	"time"

	"learnhub/internal/logging"
	"learnhub/internal/models"
)

// IsEnrolled reports whether the learner has an enrollment row for the course.
func (s *Repository) IsEnrolled(courseID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM enrollments WHERE course_id = ?", courseID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Enroll records the learner's enrollment in a course. The UNIQUE constraint
// on course_id makes this a single atomic statement: enrolling twice is an
// idempotent no-op and returns false with no side effect.
func (s *Repository) Enroll(courseID int64) (bool, error) {
	query := `INSERT INTO enrollments (course_id, enrolled_at) VALUES (?, ?)
	          ON CONFLICT(course_id) DO NOTHING`
	result, err := s.DB.Exec(query, courseID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to enroll in course %d: %w", courseID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	logging.Log.Debugf("Enroll: learner enrolled in course %d", courseID)
	return true, nil
}

// ListEnrolledCourses returns the courses the learner enrolled in, most
// recently enrolled first. Lesson and completion counts are filled in by the
// service layer so a failed aggregation cannot sink the whole list.
func (s *Repository) ListEnrolledCourses() ([]models.EnrolledCourse, error) {
	query := s.Builder.
		Select("c.id", "c.title", "c.description", "c.instructor", "c.created_at", "e.enrolled_at").
		From("courses c").
		Join("enrollments e ON c.id = e.course_id").
		OrderBy("e.enrolled_at DESC", "e.id DESC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build enrolled course query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.EnrolledCourse, 0)
	for rows.Next() {
		var c models.EnrolledCourse
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.CreatedAt, &c.EnrolledAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
