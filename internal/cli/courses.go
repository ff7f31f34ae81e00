package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"learnhub/internal/logging"
	"learnhub/internal/services"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog with your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewCourseService(repo)
		courses, err := svc.ListCoursesWithProgress()
		if err != nil {
			// Browsing must not block on a degraded store; render empty.
			logging.Log.Errorf("courses: listing failed: %v", err)
			courses = nil
		}

		if len(courses) == 0 {
			fmt.Println("No courses available.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tINSTRUCTOR\tLESSONS\tSTATUS")
		for _, c := range courses {
			status := "-"
			if c.IsEnrolled {
				status = fmt.Sprintf("enrolled %d/%d", c.CompletedLessons, c.TotalLessons)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", c.ID, c.Title, c.Instructor, c.TotalLessons, status)
		}
		return w.Flush()
	},
}

var courseShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show one course with its lesson list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid course id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewCourseService(repo)
		course, err := svc.GetCourse(id)
		if err != nil {
			return err
		}

		enrolled, err := svc.IsEnrolled(id)
		if err != nil {
			logging.Log.Warnf("course show: enrollment check failed: %v", err)
		}
		percent, err := svc.ProgressPercent(id)
		if err != nil {
			logging.Log.Warnf("course show: progress failed: %v", err)
			percent = 0
		}

		fmt.Printf("%s\n", course.Title)
		fmt.Printf("Instructor: %s\n", course.Instructor)
		fmt.Printf("\n%s\n\n", course.Description)
		if enrolled {
			fmt.Printf("Progress: %d%%\n\n", percent)
		} else {
			fmt.Printf("Not enrolled. Run 'learnhub enroll %d' to start.\n\n", id)
		}

		lessons, err := svc.ListLessons(id)
		if err != nil {
			logging.Log.Errorf("course show: lesson listing failed: %v", err)
			return nil
		}
		for i, l := range lessons {
			mark := " "
			if l.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %d. %s (lesson %d)\n", mark, i+1, l.Title, l.ID)
		}
		return nil
	},
}

func init() {
	coursesCmd.AddCommand(courseShowCmd)
	RootCmd.AddCommand(coursesCmd)
}
