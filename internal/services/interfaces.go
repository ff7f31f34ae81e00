package services

import (
	"io"

	"learnhub/internal/models"
)

// CourseService is the learner-facing read/write surface of the store.
// List operations degrade per-item aggregation failures to zero values
// instead of failing the whole list.
type CourseService interface {
	ListCoursesWithProgress() ([]models.CourseOverview, error)
	ListEnrolledCourses() ([]models.EnrolledCourse, error)
	GetCourse(id int64) (*models.Course, error)
	IsEnrolled(courseID int64) (bool, error)
	Enroll(courseID int64) (bool, error)
	ListLessons(courseID int64) ([]models.LessonStatus, error)
	GetLesson(lessonID int64) (*models.LessonView, error)
	MarkComplete(lessonID int64) error
	MarkIncomplete(lessonID int64) error
	ProgressPercent(courseID int64) (int, error)
}

// AdminService is the write-oriented facade used by the content-management
// surface. It operates on the same schema as the learner-facing paths.
type AdminService interface {
	CreateCourse(title, description, instructor string) (int64, error)
	UpdateCourse(id int64, title, description, instructor string) error
	DeleteCourse(id int64) error
	ListCourses() ([]models.AdminCourse, error)
	GetCourse(id int64) (*models.Course, error)

	CreateLesson(courseID int64, title, content string) (int64, error)
	UpdateLesson(id int64, title, content string) error
	DeleteLesson(id int64) error
	ListLessons(courseID int64) ([]models.AdminLesson, error)
	GetLesson(id int64) (*models.Lesson, error)

	Statistics() models.Statistics
}

// AuthService performs the trivial local credential match for the admin
// console and manages its session tokens.
type AuthService interface {
	Login(username, password string) (string, error)
	Verify(token string) (string, error)
}

// ExportService dumps the catalog and statistics for backup.
type ExportService interface {
	ExportCatalog(w io.Writer) error
	ExportToDir(dir string) (string, error)
}
