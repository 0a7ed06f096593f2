package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/algorithm"
	"github.com/LavenderBridge/studyplan/internal/db"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review statistics and deck distribution",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		stats, err := store.GetReviewStats()
		if err != nil {
			fmt.Println("❌ Error fetching stats:", err)
			return
		}

		fmt.Println("\n📊 Review Statistics")
		fmt.Println("====================")
		fmt.Printf("Total Reviews:   %d\n", stats.TotalReviews)
		fmt.Printf("Reviews Last 7D: %d\n", stats.ReviewsLast7Days)

		fmt.Println("\nGrades:")
		for _, g := range algorithm.Grades {
			count := stats.CountByGrade[int(g)]
			bar := ""
			for j := 0; j < count; j++ {
				bar += "█"
			}
			fmt.Printf("  %-6s %d %s\n", g, count, bar)
		}

		decks, err := store.ListDecks()
		if err != nil {
			fmt.Println("❌ Error listing decks:", err)
			return
		}
		if len(decks) == 0 {
			return
		}

		fmt.Println("\n📚 Deck Distribution")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Deck\tNew\tLearning\tReview")
		fmt.Fprintln(w, "----\t---\t--------\t------")

		for _, d := range decks {
			cards, err := store.ListCards(d.ID)
			if err != nil {
				fmt.Println("❌ Error reading deck:", err)
				return
			}
			var newCount, learning, review int
			for _, c := range cards {
				switch algorithm.CardStage(c) {
				case algorithm.StageNew:
					newCount++
				case algorithm.StageLearning:
					learning++
				default:
					review++
				}
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", d.Title, newCount, learning, review)
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
