package repository

import (
	"database/sql"
	"fmt"

	"learnhub/internal/logging"
)

// MarkComplete sets a lesson's completion flag to 1, creating the progress
// row lazily on first use. The UNIQUE constraint on lesson_id makes the
// old check-then-insert an atomic upsert.
func (s *Repository) MarkComplete(lessonID int64) error {
	query := `INSERT INTO progress (lesson_id, completed) VALUES (?, 1)
	          ON CONFLICT(lesson_id) DO UPDATE SET completed = 1`
	if _, err := s.DB.Exec(query, lessonID); err != nil {
		return fmt.Errorf("failed to mark lesson %d complete: %w", lessonID, err)
	}
	logging.Log.Debugf("MarkComplete: lesson %d marked complete", lessonID)
	return nil
}

// MarkIncomplete resets a lesson's completion flag to 0. When no progress
// row exists this affects zero rows, which is fine: absence already means
// incomplete.
func (s *Repository) MarkIncomplete(lessonID int64) error {
	if _, err := s.DB.Exec("UPDATE progress SET completed = 0 WHERE lesson_id = ?", lessonID); err != nil {
		return fmt.Errorf("failed to mark lesson %d incomplete: %w", lessonID, err)
	}
	return nil
}

// LessonCompleted reports the completion flag for a lesson. A missing
// progress row reads as not completed.
func (s *Repository) LessonCompleted(lessonID int64) (bool, error) {
	var completed int
	err := s.DB.QueryRow("SELECT completed FROM progress WHERE lesson_id = ?", lessonID).Scan(&completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return completed == 1, nil
}

// CountLessons returns the number of lessons a course has.
func (s *Repository) CountLessons(courseID int64) (int, error) {
	var total int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM lessons WHERE course_id = ?", courseID).Scan(&total)
	return total, err
}

// CountCompletedLessons returns how many of a course's lessons the learner
// has completed.
func (s *Repository) CountCompletedLessons(courseID int64) (int, error) {
	query := `SELECT COUNT(*)
	          FROM lessons l
	          INNER JOIN progress p ON l.id = p.lesson_id
	          WHERE l.course_id = ? AND p.completed = 1`
	var completed int
	err := s.DB.QueryRow(query, courseID).Scan(&completed)
	return completed, err
}
