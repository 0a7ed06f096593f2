package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/config"
	"github.com/LavenderBridge/studyplan/internal/db"
	"github.com/LavenderBridge/studyplan/internal/logging"
	"github.com/LavenderBridge/studyplan/internal/models"
	"github.com/LavenderBridge/studyplan/internal/planner"
)

var planVerbose bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Auto-schedule study sessions for pending assignments",
	Long: `Decompose every pending assignment into study sessions and place
them into free hours across the scheduling horizon. Sessions that cannot
fit before their deadline land in the overflow list: they still need
doing, they just could not be time-boxed automatically.`,
	Run: func(cmd *cobra.Command, args []string) {
		level := "info"
		if planVerbose {
			level = "debug"
		}
		log := logging.New(level)

		settings, energy, err := config.Load()
		if err != nil {
			fmt.Println("❌ Config error:", err)
			return
		}

		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		now := time.Now()
		assignments, err := store.ListAssignments(true, now)
		if err != nil {
			fmt.Println("❌ Error listing assignments:", err)
			return
		}
		if len(assignments) == 0 {
			fmt.Println("✅ Nothing to plan.")
			return
		}

		var sessions []models.StudySession
		for _, a := range assignments {
			sessions = append(sessions, planner.DecomposeAssignment(a, settings)...)
		}

		result, err := planner.Schedule(sessions, settings, energy, now, log)
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		if err := store.SavePlan(result.Scheduled, result.Overflow); err != nil {
			fmt.Println("❌ Error saving plan:", err)
			return
		}

		printPlan(result)
	},
}

func printPlan(result planner.Result) {
	if len(result.Scheduled) == 0 && len(result.Overflow) == 0 {
		fmt.Println("✅ Nothing to plan.")
		return
	}

	if len(result.Scheduled) > 0 {
		fmt.Printf("📅 Scheduled %d study sessions:\n\n", len(result.Scheduled))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "When\tAssignment\tPart\tMinutes\tCategory")
		fmt.Fprintln(w, "----\t----------\t----\t-------\t--------")

		lastDay := ""
		for _, p := range result.Scheduled {
			day := p.Start.Format("Mon Jan 02")
			if day == lastDay {
				day = ""
			} else {
				lastDay = day
			}
			fmt.Fprintf(w, "%s %s\t%s\t%d\t%dm\t%s\n",
				day, p.Start.Format("15:04"), p.Title, p.Index+1, p.Minutes, p.Category)
		}
		w.Flush()
	}

	if len(result.Overflow) > 0 {
		fmt.Printf("\n⚠️  %d sessions did not fit before their deadlines:\n", len(result.Overflow))
		for _, o := range result.Overflow {
			fmt.Printf("  - %s (part %d, %dm, due %s)\n",
				o.Title, o.Index+1, o.Minutes, o.DueDate.Format("2006-01-02"))
		}
		fmt.Println("\nConsider extending your workday window or starting earlier.")
	} else {
		fmt.Println("\n✅ Everything fits before its deadline.")
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Log placement decisions")
}
