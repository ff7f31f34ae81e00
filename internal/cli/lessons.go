package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"learnhub/internal/content"
	"learnhub/internal/logging"
	"learnhub/internal/services"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons <course-id>",
	Short: "List a course's lessons in sequence",
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
		lessons, err := svc.ListLessons(id)
		if err != nil {
			logging.Log.Errorf("lessons: listing failed: %v", err)
			lessons = nil
		}

		if len(lessons) == 0 {
			fmt.Println("No lessons in this course.")
			return nil
		}
		for i, l := range lessons {
			mark := " "
			if l.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %d. %s (lesson %d)\n", mark, i+1, l.Title, l.ID)
		}
		return nil
	},
}

var lessonRaw bool

var lessonCmd = &cobra.Command{
	Use:   "lesson <lesson-id>",
	Short: "Read one lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson id: %s", args[0])
		}

		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()

		svc := services.NewCourseService(repo)
		lesson, err := svc.GetLesson(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s / %s\n", lesson.CourseTitle, lesson.Title)
		if lesson.Completed {
			fmt.Println("(completed)")
		}
		fmt.Println()

		if lessonRaw {
			fmt.Println(lesson.Content)
			return nil
		}
		renderBlocks(content.Parse(lesson.Content))
		return nil
	},
}

// renderBlocks prints parsed lesson blocks in a terminal-friendly layout.
func renderBlocks(blocks []content.Block) {
	for _, b := range blocks {
		switch b.Type {
		case content.Heading:
			fmt.Printf("\n%s\n%s\n", b.Text, strings.Repeat("-", len(b.Text)))
		case content.BulletList:
			for _, item := range b.Items {
				fmt.Printf("  • %s\n", item)
			}
		case content.KeyPrinciple:
			fmt.Printf("\n>> %s\n", b.Text)
		case content.Paragraph:
			fmt.Printf("%s\n", b.Text)
		}
	}
}

var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleLesson(args[0], true)
	},
}

var incompleteCmd = &cobra.Command{
	Use:   "incomplete <lesson-id>",
	Short: "Mark a lesson as not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggleLesson(args[0], false)
	},
}

func toggleLesson(arg string, completed bool) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid lesson id: %s", arg)
	}

	repo, err := openStore()
	if err != nil {
		return err
	}
	defer repo.Close()

	svc := services.NewCourseService(repo)
	if completed {
		if err := svc.MarkComplete(id); err != nil {
			return err
		}
		fmt.Printf("Lesson %d marked complete.\n", id)
	} else {
		if err := svc.MarkIncomplete(id); err != nil {
			return err
		}
		fmt.Printf("Lesson %d marked incomplete.\n", id)
	}
	return nil
}

var progressCmd = &cobra.Command{
	Use:   "progress <course-id>",
	Short: "Show your progress through a course",
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
		percent, err := svc.ProgressPercent(id)
		if err != nil {
			logging.Log.Errorf("progress: query failed: %v", err)
			percent = 0
		}
		fmt.Printf("%d%%\n", percent)
		return nil
	},
}

func init() {
	lessonCmd.Flags().BoolVar(&lessonRaw, "raw", false, "print the lesson body without block formatting")
	RootCmd.AddCommand(lessonsCmd)
	RootCmd.AddCommand(lessonCmd)
	RootCmd.AddCommand(completeCmd)
	RootCmd.AddCommand(incompleteCmd)
	RootCmd.AddCommand(progressCmd)
}
