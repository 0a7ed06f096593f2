package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/db"
)

var agendaDays int

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show the saved study plan, grouped by day",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		scheduled, overflow, err := store.LoadPlan()
		if err != nil {
			fmt.Println("❌ Error loading plan:", err)
			return
		}

		if len(scheduled) == 0 && len(overflow) == 0 {
			fmt.Println("No plan saved yet. Run 'studyplan plan' first.")
			return
		}

		cutoff := time.Now().AddDate(0, 0, agendaDays)
		shown := 0

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		lastDay := ""
		for _, p := range scheduled {
			if p.Start.After(cutoff) {
				continue
			}
			day := p.Start.Format("Mon Jan 02")
			if day != lastDay {
				if lastDay != "" {
					fmt.Fprintln(w, "\t\t")
				}
				fmt.Fprintf(w, "%s\t\t\n", day)
				lastDay = day
			}
			fmt.Fprintf(w, "  %s–%s\t%s (part %d)\t%dm\n",
				p.Start.Format("15:04"), p.End.Format("15:04"), p.Title, p.Index+1, p.Minutes)
			shown++
		}
		w.Flush()

		if shown == 0 {
			fmt.Printf("Nothing scheduled in the next %d days.\n", agendaDays)
		}

		if len(overflow) > 0 {
			fmt.Printf("\n⚠️  %d sessions in overflow (run 'studyplan plan' after freeing up time).\n", len(overflow))
		}
	},
}

func init() {
	rootCmd.AddCommand(agendaCmd)
	agendaCmd.Flags().IntVar(&agendaDays, "days", 7, "How many days ahead to show")
}
