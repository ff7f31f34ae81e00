package repository

// CountAllCourses returns the number of courses in the store.
func (s *Repository) CountAllCourses() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM courses").Scan(&n)
	return n, err
}

// CountAllLessons returns the number of lessons in the store.
func (s *Repository) CountAllLessons() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM lessons").Scan(&n)
	return n, err
}

// CountAllEnrollments returns the number of enrollment rows in the store.
func (s *Repository) CountAllEnrollments() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM enrollments").Scan(&n)
	return n, err
}

// CountAllCompletedLessons returns the number of lessons marked complete.
func (s *Repository) CountAllCompletedLessons() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM progress WHERE completed = 1").Scan(&n)
	return n, err
}
