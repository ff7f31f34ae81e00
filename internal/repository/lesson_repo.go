package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"learnhub/internal/logging"
	"learnhub/internal/models"
	"learnhub/internal/shared"
)

// CreateLesson inserts a new lesson under an existing course and returns its
// generated id. The lesson sequence within a course is creation order.
func (s *Repository) CreateLesson(courseID int64, title, content string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return 0, shared.ErrValidation
	}
	if _, err := s.GetCourseByID(courseID); err != nil {
		return 0, err
	}

	query := "INSERT INTO lessons (course_id, title, content) VALUES (?, ?, ?)"
	result, err := s.DB.Exec(query, courseID, title, content)
	if err != nil {
		return 0, fmt.Errorf("failed to create lesson: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	logging.Log.Debugf("CreateLesson: lesson %q created with ID %d under course %d", title, id, courseID)
	return id, nil
}

// GetLessonByID retrieves a single lesson, using a cache for repeated lookups.
// Returns shared.ErrLessonNotFound when the id does not exist.
func (s *Repository) GetLessonByID(id int64) (*models.Lesson, error) {
	cacheKey := fmt.Sprintf("lesson_%d", id)
	if lesson, found := s.Cache.Get(cacheKey); found {
		return lesson.(*models.Lesson), nil
	}

	query := "SELECT id, course_id, title, content FROM lessons WHERE id = ?"
	row := s.DB.QueryRow(query, id)

	var lesson models.Lesson
	if err := row.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Content); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrLessonNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, &lesson, 0)
	return &lesson, nil
}

// GetLessonView retrieves a lesson annotated with its course title and the
// learner's completion flag, for the reader screen. The course title degrades
// to "" when the parent course is gone; a missing progress row reads as not
// completed.
func (s *Repository) GetLessonView(id int64) (*models.LessonView, error) {
	lesson, err := s.GetLessonByID(id)
	if err != nil {
		return nil, err
	}

	view := models.LessonView{Lesson: *lesson}

	var title string
	err = s.DB.QueryRow("SELECT title FROM courses WHERE id = ?", lesson.CourseID).Scan(&title)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	view.CourseTitle = title

	completed, err := s.LessonCompleted(id)
	if err != nil {
		// Degrade to not-completed rather than failing the whole read.
		logging.Log.Warnf("GetLessonView: progress check failed for lesson %d: %v", id, err)
		completed = false
	}
	view.Completed = completed

	return &view, nil
}

// UpdateLesson replaces a lesson's title and content. Returns
// shared.ErrLessonNotFound when no row was affected.
func (s *Repository) UpdateLesson(id int64, title, content string) error {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return shared.ErrValidation
	}

	query := "UPDATE lessons SET title = ?, content = ? WHERE id = ?"
	result, err := s.DB.Exec(query, title, content, id)
	if err != nil {
		return fmt.Errorf("failed to update lesson %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrLessonNotFound
	}

	s.Cache.Delete(fmt.Sprintf("lesson_%d", id))
	return nil
}

// DeleteLesson removes a lesson and its progress row in one transaction.
// Deleting a nonexistent id is a silent no-op.
func (s *Repository) DeleteLesson(id int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM progress WHERE lesson_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM lessons WHERE id = ?", id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lesson deletion: %w", err)
	}

	s.Cache.Delete(fmt.Sprintf("lesson_%d", id))
	return nil
}

// ListLessonsByCourse returns a course's lessons in sequence order
// (ascending id). An unknown course id yields an empty list, not an error.
func (s *Repository) ListLessonsByCourse(courseID int64) ([]models.Lesson, error) {
	query := "SELECT id, course_id, title, content FROM lessons WHERE course_id = ? ORDER BY id"
	rows, err := s.DB.Query(query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.Content); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}

// ListLessonsAdmin returns a course's lessons for the admin console, each
// annotated with its completion count.
func (s *Repository) ListLessonsAdmin(courseID int64) ([]models.AdminLesson, error) {
	query := s.Builder.
		Select(
			"l.id", "l.course_id", "l.title", "l.content",
			"(SELECT COUNT(*) FROM progress p WHERE p.lesson_id = l.id AND p.completed = 1) AS completion_count",
		).
		From("lessons l").
		Where("l.course_id = ?", courseID).
		OrderBy("l.id ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin lesson query: %w", err)
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]models.AdminLesson, 0)
	for rows.Next() {
		var l models.AdminLesson
		if err := rows.Scan(&l.ID, &l.CourseID, &l.Title, &l.Content, &l.CompletionCount); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// IsNotFound reports whether err is one of the store's not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrCourseNotFound) || errors.Is(err, shared.ErrLessonNotFound)
}
