// Package models contains the core data structures for the application.
// Only plain value structs cross the store boundary; nothing in here has
// behavior beyond trivial accessors.
package models

import "time"

// Course is a top-level catalog item containing lessons.
type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Instructor  string    `json:"instructor"`
	CreatedAt   time.Time `json:"created_at"`
}

// Lesson is an ordered content unit within a course. Lesson order is
// creation order: ascending id.
type Lesson struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// Enrollment records that the local learner enrolled in a course.
// The store models a single-user device, so there is no user column.
type Enrollment struct {
	ID         int64     `json:"id"`
	CourseID   int64     `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Progress is the per-lesson completion flag. A missing row means the same
// thing as Completed == false.
type Progress struct {
	ID        int64 `json:"id"`
	LessonID  int64 `json:"lesson_id"`
	Completed bool  `json:"completed"`
}

// CourseOverview is a course annotated for the learner-facing catalog view.
// CompletedLessons is always 0 for courses the learner is not enrolled in.
type CourseOverview struct {
	Course
	TotalLessons     int  `json:"total_lessons"`
	CompletedLessons int  `json:"completed_lessons"`
	IsEnrolled       bool `json:"is_enrolled"`
}

// EnrolledCourse is a course annotated for the "my courses" view.
type EnrolledCourse struct {
	Course
	EnrolledAt       time.Time `json:"enrolled_at"`
	TotalLessons     int       `json:"total_lessons"`
	CompletedLessons int       `json:"completed_lessons"`
}

// AdminCourse is a course annotated for the admin console list.
type AdminCourse struct {
	Course
	LessonCount     int `json:"lesson_count"`
	EnrollmentCount int `json:"enrollment_count"`
}

// AdminLesson is a lesson annotated with how many times it was completed.
// On a single-user device the count is 0 or 1, but the query does not
// assume that.
type AdminLesson struct {
	Lesson
	CompletionCount int `json:"completion_count"`
}

// LessonView is a lesson annotated for the reader screen.
type LessonView struct {
	Lesson
	CourseTitle string `json:"course_title"`
	Completed   bool   `json:"completed"`
}

// LessonStatus pairs a lesson with the learner's completion flag.
type LessonStatus struct {
	Lesson
	Completed bool `json:"completed"`
}

// Statistics summarizes the whole store for the admin dashboard.
type Statistics struct {
	TotalCourses     int `json:"total_courses"`
	TotalLessons     int `json:"total_lessons"`
	TotalEnrollments int `json:"total_enrollments"`
	CompletedLessons int `json:"completed_lessons"`
}
