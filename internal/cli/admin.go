package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"learnhub/internal/services"
	"learnhub/internal/shared"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Content-management console (login required)",
}

//------------------
// Session handling
//------------------

// The admin session is a signed token in a local file, written by
// 'admin login' and checked by every admin write command.

func writeSession(token string) error {
	return os.WriteFile(cfg.Admin.SessionFile, []byte(token), 0o600)
}

func readSession() (string, error) {
	raw, err := os.ReadFile(cfg.Admin.SessionFile)
	if err != nil {
		return "", shared.ErrNotLoggedIn
	}
	return strings.TrimSpace(string(raw)), nil
}

func requireAdmin() error {
	token, err := readSession()
	if err != nil {
		return err
	}
	auth := services.NewAuthService(cfg)
	if _, err := auth.Verify(token); err != nil {
		return err
	}
	return nil
}

//------------------
// Login / logout
//------------------

var (
	loginUsername string
	loginPassword string
)

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		// First run generates and persists the default credentials.
		if err := services.EnsureAdminCredentials(cfg, cfgFile); err != nil {
			return err
		}

		username := loginUsername
		if username == "" {
			username = cfg.Admin.Username
		}
		password := loginPassword
		if password == "" {
			fmt.Print("Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimSpace(line)
		}

		auth := services.NewAuthService(cfg)
		token, err := auth.Login(username, password)
		if err != nil {
			return err
		}
		if err := writeSession(token); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s.\n", username)
		return nil
	},
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the admin console",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.Remove(cfg.Admin.SessionFile); err != nil && !os.IsNotExist(err) {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var adminPasswdCmd = &cobra.Command{
	Use:   "passwd <new-password>",
	Short: "Change the admin password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		if err := services.UpdatePassword(cfg, cfgFile, args[0]); err != nil {
			return err
		}
		fmt.Println("Password updated.")
		return nil
	},
}

//------------------
// Dashboard
//------------------

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store-wide statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		stats := services.NewAdminService(repo).Statistics()
		fmt.Printf("Courses:           %d\n", stats.TotalCourses)
		fmt.Printf("Lessons:           %d\n", stats.TotalLessons)
		fmt.Printf("Enrollments:       %d\n", stats.TotalEnrollments)
		fmt.Printf("Completed lessons: %d\n", stats.CompletedLessons)
		return nil
	},
}

var exportDir string

var adminExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog and statistics to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		dir := exportDir
		if dir == "" {
			dir = cfg.Export.Dir
		}
		admin := services.NewAdminService(repo)
		path, err := services.NewExportService(repo, admin).ExportToDir(dir)
		if err != nil {
			return err
		}
		fmt.Printf("Catalog exported to %s\n", path)
		return nil
	},
}

//------------------
// Course management
//------------------

var adminCoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage courses",
}

// registerCourseFlags wires the shared course field flags onto a flag set.
func registerCourseFlags(fs *pflag.FlagSet, title, description, instructor *string) {
	fs.StringVar(title, "title", "", "course title")
	fs.StringVar(description, "description", "", "course description")
	fs.StringVar(instructor, "instructor", "", "course instructor")
}

var (
	courseTitle       string
	courseDescription string
	courseInstructor  string
)

var adminCoursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		courses, err := services.NewAdminService(repo).ListCourses()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLESSONS\tENROLLMENTS")
		for _, c := range courses {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", c.ID, c.Title, c.Instructor, c.LessonCount, c.EnrollmentCount)
		}
		return w.Flush()
	},
}

var adminCoursesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a course",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		id, err := services.NewAdminService(repo).CreateCourse(courseTitle, courseDescription, courseInstructor)
		if err != nil {
			return err
		}
		fmt.Printf("Course created with ID %d.\n", id)
		return nil
	},
}

var adminCoursesEditCmd = &cobra.Command{
	Use:   "edit <course-id>",
	Short: "Update a course's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewAdminService(repo)

		// Unspecified fields keep their current value.
		course, err := svc.GetCourse(id)
		if err != nil {
			return err
		}
		title, description, instructor := course.Title, course.Description, course.Instructor
		if cmd.Flags().Changed("title") {
			title = courseTitle
		}
		if cmd.Flags().Changed("description") {
			description = courseDescription
		}
		if cmd.Flags().Changed("instructor") {
			instructor = courseInstructor
		}

		if err := svc.UpdateCourse(id, title, description, instructor); err != nil {
			return err
		}
		fmt.Printf("Course %d updated.\n", id)
		return nil
	},
}

var adminCoursesDeleteCmd = &cobra.Command{
	Use:   "delete <course-id>",
	Short: "Delete a course and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := services.NewAdminService(repo).DeleteCourse(id); err != nil {
			return err
		}
		fmt.Printf("Course %d and its lessons, progress and enrollment removed.\n", id)
		return nil
	},
}

//------------------
// Lesson management
//------------------

var adminLessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Manage lessons",
}

var (
	lessonTitle       string
	lessonContent     string
	lessonContentFile string
)

func registerLessonFlags(fs *pflag.FlagSet) {
	fs.StringVar(&lessonTitle, "title", "", "lesson title")
	fs.StringVar(&lessonContent, "content", "", "lesson body text")
	fs.StringVar(&lessonContentFile, "content-file", "", "read the lesson body from a file")
}

// resolveLessonContent prefers --content-file over --content.
func resolveLessonContent() (string, error) {
	if lessonContentFile != "" {
		raw, err := os.ReadFile(lessonContentFile)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(raw), nil
	}
	return lessonContent, nil
}

var adminLessonsListCmd = &cobra.Command{
	Use:   "list <course-id>",
	Short: "List a course's lessons with completion counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		courseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		lessons, err := services.NewAdminService(repo).ListLessons(courseID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCOMPLETIONS")
		for _, l := range lessons {
			fmt.Fprintf(w, "%d\t%s\t%d\n", l.ID, l.Title, l.CompletionCount)
		}
		return w.Flush()
	},
}

var adminLessonsAddCmd = &cobra.Command{
	Use:   "add <course-id>",
	Short: "Create a lesson under a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		courseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id: %s", args[0])
		}
		body, err := resolveLessonContent()
		if err != nil {
			return err
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		id, err := services.NewAdminService(repo).CreateLesson(courseID, lessonTitle, body)
		if err != nil {
			return err
		}
		fmt.Printf("Lesson created with ID %d.\n", id)
		return nil
	},
}

var adminLessonsEditCmd = &cobra.Command{
	Use:   "edit <lesson-id>",
	Short: "Update a lesson's title or body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewAdminService(repo)
		lesson, err := svc.GetLesson(id)
		if err != nil {
			return err
		}

		title, body := lesson.Title, lesson.Content
		if cmd.Flags().Changed("title") {
			title = lessonTitle
		}
		if cmd.Flags().Changed("content") || cmd.Flags().Changed("content-file") {
			body, err = resolveLessonContent()
			if err != nil {
				return err
			}
		}

		if err := svc.UpdateLesson(id, title, body); err != nil {
			return err
		}
		fmt.Printf("Lesson %d updated.\n", id)
		return nil
	},
}

var adminLessonsDeleteCmd = &cobra.Command{
	Use:   "delete <lesson-id>",
	Short: "Delete a lesson and its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAdmin(); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := services.NewAdminService(repo).DeleteLesson(id); err != nil {
			return err
		}
		fmt.Printf("Lesson %d removed.\n", id)
		return nil
	},
}

func init() {
	adminLoginCmd.Flags().StringVar(&loginUsername, "username", "", "admin username (default from config)")
	adminLoginCmd.Flags().StringVar(&loginPassword, "password", "", "admin password (prompted when omitted)")
	adminExportCmd.Flags().StringVar(&exportDir, "dir", "", "export directory (default from config)")

	registerCourseFlags(adminCoursesAddCmd.Flags(), &courseTitle, &courseDescription, &courseInstructor)
	registerCourseFlags(adminCoursesEditCmd.Flags(), &courseTitle, &courseDescription, &courseInstructor)
	registerLessonFlags(adminLessonsAddCmd.Flags())
	registerLessonFlags(adminLessonsEditCmd.Flags())

	adminCoursesCmd.AddCommand(adminCoursesListCmd, adminCoursesAddCmd, adminCoursesEditCmd, adminCoursesDeleteCmd)
	adminLessonsCmd.AddCommand(adminLessonsListCmd, adminLessonsAddCmd, adminLessonsEditCmd, adminLessonsDeleteCmd)
	adminCmd.AddCommand(adminLoginCmd, adminLogoutCmd, adminPasswdCmd, adminStatsCmd, adminExportCmd, adminCoursesCmd, adminLessonsCmd)
	RootCmd.AddCommand(adminCmd)
}
