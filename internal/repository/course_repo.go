package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"learnhub/internal/logging"
	"learnhub/internal/models"
	"learnhub/internal/shared"
)

// CreateCourse inserts a new course and returns its generated id.
// All three fields must be non-empty after trimming.
func (s *Repository) CreateCourse(title, description, instructor string) (int64, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	instructor = strings.TrimSpace(instructor)
	if title == "" || description == "" || instructor == "" {
		return 0, shared.ErrValidation
	}

	query := "INSERT INTO courses (title, description, instructor, created_at) VALUES (?, ?, ?, ?)"
	result, err := s.DB.Exec(query, title, description, instructor, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	logging.Log.Debugf("CreateCourse: course %q created with ID %d", title, id)
	return id, nil
}

// GetCourseByID retrieves a single course, using a cache for repeated lookups.
// Returns shared.ErrCourseNotFound when the id does not exist.
func (s *Repository) GetCourseByID(id int64) (*models.Course, error) {
	cacheKey := fmt.Sprintf("course_%d", id)
	if course, found := s.Cache.Get(cacheKey); found {
		return course.(*models.Course), nil
	}

	query := "SELECT id, title, description, instructor, created_at FROM courses WHERE id = ?"
	row := s.DB.QueryRow(query, id)

	var course models.Course
	if err := row.Scan(&course.ID, &course.Title, &course.Description, &course.Instructor, &course.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrCourseNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, &course, 0)
	return &course, nil
}

// UpdateCourse replaces a course's fields. Returns shared.ErrCourseNotFound
// when no row was affected, so callers can tell a missing id apart from a
// successful write.
func (s *Repository) UpdateCourse(id int64, title, description, instructor string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	instructor = strings.TrimSpace(instructor)
	if title == "" || description == "" || instructor == "" {
		return shared.ErrValidation
	}

	query := "UPDATE courses SET title = ?, description = ?, instructor = ? WHERE id = ?"
	result, err := s.DB.Exec(query, title, description, instructor, id)
	if err != nil {
		return fmt.Errorf("failed to update course %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrCourseNotFound
	}

	s.Cache.Delete(fmt.Sprintf("course_%d", id))
	return nil
}

// DeleteCourse removes a course together with its lessons, their progress
// rows and the course's enrollment row, all inside one transaction so a
// crash mid-delete cannot leave orphans. Deleting a nonexistent id is a
// silent no-op.
func (s *Repository) DeleteCourse(id int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Collect lesson ids first so their cache entries can be invalidated
	// after the commit.
	rows, err := tx.Query("SELECT id FROM lessons WHERE course_id = ?", id)
	if err != nil {
		return err
	}
	var lessonIDs []int64
	for rows.Next() {
		var lid int64
		if err := rows.Scan(&lid); err != nil {
			rows.Close()
			return err
		}
		lessonIDs = append(lessonIDs, lid)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	// Progress first, then enrollments, then lessons, then the course itself.
	if _, err := tx.Exec(
		`DELETE FROM progress WHERE lesson_id IN (SELECT id FROM lessons WHERE course_id = ?)`, id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM enrollments WHERE course_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM lessons WHERE course_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM courses WHERE id = ?", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course deletion: %w", err)
	}

	s.Cache.Delete(fmt.Sprintf("course_%d", id))
	for _, lid := range lessonIDs {
		s.Cache.Delete(fmt.Sprintf("lesson_%d", lid))
	}

	logging.Log.Debugf("DeleteCourse: course %d and %d lessons removed", id, len(lessonIDs))
	return nil
}

// ListCourses returns the whole catalog ordered by id ascending.
func (s *Repository) ListCourses() ([]models.Course, error) {
	query := "SELECT id, title, description, instructor, created_at FROM courses ORDER BY id"
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Description, &course.Instructor, &course.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// ListCoursesAdmin returns the catalog for the admin console: newest course
// first, each row annotated with its lesson and enrollment counts.
func (s *Repository) ListCoursesAdmin() ([]models.AdminCourse, error) {
	query := s.Builder.
		Select(
			"c.id", "c.title", "c.description", "c.instructor", "c.created_at",
			"(SELECT COUNT(*) FROM lessons l WHERE l.course_id = c.id) AS lesson_count",
			"(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count",
		).
		From("courses c").
		OrderBy("c.id DESC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin course query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.AdminCourse, 0)
	for rows.Next() {
		var c models.AdminCourse
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.CreatedAt,
			&c.LessonCount, &c.EnrollmentCount); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
