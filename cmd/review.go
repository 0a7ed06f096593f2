package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/algorithm"
	"github.com/LavenderBridge/studyplan/internal/db"
	"github.com/LavenderBridge/studyplan/internal/models"
)

var reviewCmd = &cobra.Command{
	Use:   "review [deck]",
	Short: "Start a review session",
	Long: `Start a review session over the deck's due cards.
Each card shows its front, then the back, then a preview of what every
grade would do to the review interval before you commit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		deck, err := store.GetDeckByTitle(args[0])
		if err != nil {
			fmt.Println("❌", err)
			return
		}

		cards, err := store.DueCards(deck.ID, time.Now())
		if err != nil {
			fmt.Println("❌ Error fetching due cards:", err)
			return
		}
		if len(cards) == 0 {
			fmt.Println("✅ No cards due in this deck!")
			return
		}

		reader := bufio.NewReader(os.Stdin)

		for i, card := range cards {
			fmt.Println("\n========================================")
			fmt.Printf("Card [%d/%d]: %s\n", i+1, len(cards), card.Front)
			fmt.Println("========================================")
			fmt.Println("Press Enter to reveal...")
			reader.ReadString('\n')

			fmt.Printf("→ %s\n\n", card.Back)
			fmt.Println(previewLine(card))
			fmt.Print("Grade (again/hard/good/easy, blank to skip): ")

			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)
			if input == "" {
				fmt.Println("⏭  Skipped.")
				continue
			}

			grade, err := algorithm.ParseGrade(input)
			if err != nil {
				fmt.Println("⚠️ ", err, "(skipping this card)")
				continue
			}

			now := time.Now()
			updated := algorithm.Review(card, grade, now)
			if err := store.UpdateCard(updated); err != nil {
				fmt.Printf("❌ Error updating card: %v\n", err)
				continue
			}
			review := models.Review{
				CardID:       card.ID,
				Grade:        int(grade),
				ReviewedAt:   now,
				IntervalDays: updated.IntervalDays,
				EaseFactor:   updated.EaseFactor,
			}
			if err := store.AddReview(review); err != nil {
				fmt.Printf("❌ Error recording review: %v\n", err)
				continue
			}

			fmt.Printf("✅ Next review: %s.\n", algorithm.FormatInterval(updated.IntervalDays))
		}

		fmt.Println("\n🎉 Review session complete!")
	},
}

// previewLine shows what each grade would do before the learner commits.
func previewLine(card models.Flashcard) string {
	parts := make([]string, 0, len(algorithm.Grades))
	for _, g := range algorithm.Grades {
		days := algorithm.EstimateInterval(card, g)
		parts = append(parts, fmt.Sprintf("%s: %s", g, algorithm.FormatInterval(days)))
	}
	return strings.Join(parts, " · ")
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
