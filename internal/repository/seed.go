package repository

import (
	"fmt"
	"time"

	"learnhub/internal/logging"
)

// SeedIfEmpty inserts the fixed starter catalog, but only when the courses
// relation holds no rows at all. Once any course exists, however it got
// there, seeding is a permanent no-op; the check makes this idempotent
// across app launches. Returns whether the catalog was inserted.
func (s *Repository) SeedIfEmpty() (bool, error) {
	count, err := s.CountAllCourses()
	if err != nil {
		return false, fmt.Errorf("failed to count courses before seeding: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to start seed transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, course := range seedCatalog {
		result, err := tx.Exec(
			"INSERT INTO courses (title, description, instructor, created_at) VALUES (?, ?, ?, ?)",
			course.Title, course.Description, course.Instructor, now,
		)
		if err != nil {
			return false, fmt.Errorf("failed to seed course %q: %w", course.Title, err)
		}
		courseID, err := result.LastInsertId()
		if err != nil {
			return false, err
		}

		for _, lesson := range course.Lessons {
			if _, err := tx.Exec(
				"INSERT INTO lessons (course_id, title, content) VALUES (?, ?, ?)",
				courseID, lesson.Title, lesson.Content,
			); err != nil {
				return false, fmt.Errorf("failed to seed lesson %q: %w", lesson.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	logging.Log.Infof("SeedIfEmpty: inserted starter catalog (%d courses)", len(seedCatalog))
	return true, nil
}
