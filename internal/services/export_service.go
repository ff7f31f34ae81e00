package services

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"learnhub/internal/models"
	"learnhub/internal/repository"
)

var _ ExportService = (*exportService)(nil)

type exportService struct {
	Repo  *repository.Repository
	Admin AdminService
}

// NewExportService creates the catalog export service.
func NewExportService(repo *repository.Repository, admin AdminService) *exportService {
	return &exportService{Repo: repo, Admin: admin}
}

// CatalogExport is the on-disk layout of an export file.
type CatalogExport struct {
	ExportedAt time.Time         `json:"exported_at"`
	Statistics models.Statistics `json:"statistics"`
	Courses    []ExportedCourse  `json:"courses"`
}

// ExportedCourse bundles a course with its lessons.
type ExportedCourse struct {
	models.AdminCourse
	Lessons []models.AdminLesson `json:"lessons"`
}

// ExportCatalog writes the full catalog, per-course lessons and the
// dashboard statistics as pretty-printed JSON.
func (s *exportService) ExportCatalog(w io.Writer) error {
	courses, err := s.Admin.ListCourses()
	if err != nil {
		return fmt.Errorf("failed to list courses for export: %w", err)
	}

	export := CatalogExport{
		ExportedAt: time.Now().UTC(),
		Statistics: s.Admin.Statistics(),
		Courses:    make([]ExportedCourse, 0, len(courses)),
	}

	for _, course := range courses {
		lessons, err := s.Admin.ListLessons(course.ID)
		if err != nil {
			return fmt.Errorf("failed to list lessons of course %d for export: %w", course.ID, err)
		}
		export.Courses = append(export.Courses, ExportedCourse{AdminCourse: course, Lessons: lessons})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// ExportToDir writes the catalog export into dir under a collision-free
// ULID-stamped name and returns the resulting path.
func (s *exportService) ExportToDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("learnhub-export-%s.json", strings.ToLower(ulid.Make().String()))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := s.ExportCatalog(f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
