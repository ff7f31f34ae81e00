package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// store errors
const (
	ErrCourseNotFound = Error("course not found")
	ErrLessonNotFound = Error("lesson not found")
	ErrValidation     = Error("title, description and instructor must not be empty")
)

// auth errors
const (
	ErrInvalidCredentials = Error("invalid username or password")
	ErrInvalidToken       = Error("invalid or expired session token")
	ErrNotLoggedIn        = Error("not logged in; run 'learnhub admin login' first")
)
