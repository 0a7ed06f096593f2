package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/db"
	"github.com/LavenderBridge/studyplan/internal/models"
)

var (
	assignCourse   string
	assignDue      string
	assignMinutes  int
	assignCategory string
	assignUrgency  string
	assignWeight   float64
	assignLocked   bool
	assignAll      bool
	assignForceRm  bool
)

var assignmentCmd = &cobra.Command{
	Use:     "assignment",
	Aliases: []string{"assign"},
	Short:   "Manage assignments",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var assignmentAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add an assignment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		due, err := parseDueDate(assignDue)
		if err != nil {
			fmt.Println("❌", err)
			return
		}
		if assignMinutes <= 0 {
			fmt.Println("❌ --minutes must be positive")
			return
		}
		category, err := models.ParseCategory(assignCategory)
		if err != nil {
			fmt.Println("❌", err)
			return
		}
		urgency, err := models.ParseUrgency(assignUrgency)
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		a := models.Assignment{
			ID:               uuid.New(),
			Course:           assignCourse,
			Title:            args[0],
			DueDate:          due,
			EstimatedMinutes: assignMinutes,
			Category:         category,
			Urgency:          urgency,
			Locked:           assignLocked,
			CreatedAt:        time.Now(),
		}
		if cmd.Flags().Changed("weight") {
			w := assignWeight
			a.WeightPercent = &w
		}

		if err := store.AddAssignment(a); err != nil {
			fmt.Println("❌ Error adding assignment:", err)
			return
		}

		fmt.Printf("✅ Added '%s' (due %s, ~%d min)\n", a.Title, due.Format("2006-01-02 15:04"), a.EstimatedMinutes)
	},
}

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		assignments, err := store.ListAssignments(!assignAll, time.Now())
		if err != nil {
			fmt.Println("❌ Error listing assignments:", err)
			return
		}

		if len(assignments) == 0 {
			fmt.Println("✅ Nothing pending. Enjoy it while it lasts.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTitle\tCourse\tDue\tEst\tCategory\tUrgency\tLocked")
		fmt.Fprintln(w, "--\t-----\t------\t---\t---\t--------\t-------\t------")

		for _, a := range assignments {
			locked := ""
			if a.Locked {
				locked = "🔒"
			}
			done := ""
			if a.CompletedAt != nil {
				done = " ✓"
			}
			fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%dm\t%s\t%s\t%s\n",
				shortID(a.ID), a.Title, done, a.Course,
				a.DueDate.Format("2006-01-02"), a.EstimatedMinutes,
				a.Category, a.Urgency, locked)
		}
		w.Flush()
	},
}

var assignmentDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark an assignment complete",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		a, err := store.FindAssignmentByPrefix(args[0])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		if err := store.CompleteAssignment(a.ID, time.Now()); err != nil {
			fmt.Println("❌ Error completing assignment:", err)
			return
		}

		fmt.Printf("🎉 Done: %s\n", a.Title)
	},
}

var assignmentRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete an assignment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		a, err := store.FindAssignmentByPrefix(args[0])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		if !assignForceRm {
			fmt.Printf("⚠️  Delete assignment '%s'? (y/N): ", a.Title)
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "y" && input != "yes" {
				fmt.Println("❌ Cancelled.")
				return
			}
		}

		if err := store.DeleteAssignment(a.ID); err != nil {
			fmt.Println("❌ Error deleting assignment:", err)
			return
		}

		fmt.Println("✅ Assignment deleted.")
	},
}

// parseDueDate accepts "2006-01-02 15:04" or a bare date. A bare date means
// end of that day, so the due day itself stays usable for scheduling.
func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("--due is required (e.g. --due 2026-09-15)")
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse due date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
	}
	return t.Add(23*time.Hour + 59*time.Minute), nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func init() {
	rootCmd.AddCommand(assignmentCmd)
	assignmentCmd.AddCommand(assignmentAddCmd)
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentDoneCmd)
	assignmentCmd.AddCommand(assignmentRmCmd)

	assignmentAddCmd.Flags().StringVarP(&assignCourse, "course", "c", "", "Course code")
	assignmentAddCmd.Flags().StringVarP(&assignDue, "due", "d", "", "Due date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	assignmentAddCmd.Flags().IntVarP(&assignMinutes, "minutes", "m", 0, "Estimated total effort in minutes")
	assignmentAddCmd.Flags().StringVar(&assignCategory, "category", "homework", "Category (exam, quiz, homework, reading, review, project)")
	assignmentAddCmd.Flags().StringVar(&assignUrgency, "urgency", "medium", "Urgency (low, medium, high, critical)")
	assignmentAddCmd.Flags().Float64Var(&assignWeight, "weight", 0, "Grade weight percent")
	assignmentAddCmd.Flags().BoolVar(&assignLocked, "locked", false, "Keep study sessions close to the due date")
	assignmentAddCmd.MarkFlagRequired("due")
	assignmentAddCmd.MarkFlagRequired("minutes")

	assignmentListCmd.Flags().BoolVarP(&assignAll, "all", "a", false, "Include completed and past-due assignments")
	assignmentRmCmd.Flags().BoolVarP(&assignForceRm, "force", "f", false, "Skip confirmation")
}
