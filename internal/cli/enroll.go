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

var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
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
		enrolled, err := svc.Enroll(id)
		if err != nil {
			return err
		}
		if !enrolled {
			fmt.Println("Already enrolled in this course.")
			return nil
		}
		fmt.Printf("Enrolled in course %d.\n", id)
		return nil
	},
}

var myCoursesCmd = &cobra.Command{
	Use:   "my",
	Short: "List your enrolled courses, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewCourseService(repo)
		courses, err := svc.ListEnrolledCourses()
		if err != nil {
			logging.Log.Errorf("my: listing failed: %v", err)
			courses = nil
		}

		if len(courses) == 0 {
			fmt.Println("You are not enrolled in any courses yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPROGRESS\tENROLLED")
		for _, c := range courses {
			fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\n",
				c.ID, c.Title, c.CompletedLessons, c.TotalLessons,
				c.EnrolledAt.Local().Format("2006-01-02"))
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(enrollCmd)
	RootCmd.AddCommand(myCoursesCmd)
}
