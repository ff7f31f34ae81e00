package services

import (
	"learnhub/internal/logging"
	"learnhub/internal/models"
	"learnhub/internal/repository"
)

var _ AdminService = (*adminService)(nil)

type adminService struct {
	Repo *repository.Repository
}

// NewAdminService creates the content-management facade over the store.
func NewAdminService(repo *repository.Repository) *adminService {
	return &adminService{Repo: repo}
}

func (s *adminService) CreateCourse(title, description, instructor string) (int64, error) {
	return s.Repo.CreateCourse(title, description, instructor)
}

func (s *adminService) UpdateCourse(id int64, title, description, instructor string) error {
	return s.Repo.UpdateCourse(id, title, description, instructor)
}

func (s *adminService) DeleteCourse(id int64) error {
	return s.Repo.DeleteCourse(id)
}

func (s *adminService) ListCourses() ([]models.AdminCourse, error) {
	return s.Repo.ListCoursesAdmin()
}

func (s *adminService) GetCourse(id int64) (*models.Course, error) {
	return s.Repo.GetCourseByID(id)
}

func (s *adminService) CreateLesson(courseID int64, title, content string) (int64, error) {
	return s.Repo.CreateLesson(courseID, title, content)
}

func (s *adminService) UpdateLesson(id int64, title, content string) error {
	return s.Repo.UpdateLesson(id, title, content)
}

func (s *adminService) DeleteLesson(id int64) error {
	return s.Repo.DeleteLesson(id)
}

func (s *adminService) ListLessons(courseID int64) ([]models.AdminLesson, error) {
	return s.Repo.ListLessonsAdmin(courseID)
}

func (s *adminService) GetLesson(id int64) (*models.Lesson, error) {
	return s.Repo.GetLessonByID(id)
}

// Statistics assembles the four dashboard counts. Each count degrades
// independently to 0 on query failure so the dashboard always renders.
func (s *adminService) Statistics() models.Statistics {
	var stats models.Statistics

	if n, err := s.Repo.CountAllCourses(); err != nil {
		logging.Log.Errorf("Statistics: course count failed: %v", err)
	} else {
		stats.TotalCourses = n
	}
	if n, err := s.Repo.CountAllLessons(); err != nil {
		logging.Log.Errorf("Statistics: lesson count failed: %v", err)
	} else {
		stats.TotalLessons = n
	}
	if n, err := s.Repo.CountAllEnrollments(); err != nil {
		logging.Log.Errorf("Statistics: enrollment count failed: %v", err)
	} else {
		stats.TotalEnrollments = n
	}
	if n, err := s.Repo.CountAllCompletedLessons(); err != nil {
		logging.Log.Errorf("Statistics: completed count failed: %v", err)
	} else {
		stats.CompletedLessons = n
	}

	return stats
}
