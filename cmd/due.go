package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/algorithm"
	"github.com/LavenderBridge/studyplan/internal/db"
	"github.com/LavenderBridge/studyplan/internal/models"
)

var dueCmd = &cobra.Command{
	Use:   "due [deck]",
	Short: "Show cards due for review",
	Long: `Show cards with a due date at or before now.
With a deck name, only that deck; otherwise all decks.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		now := time.Now()
		type deckCards struct {
			deck  models.Deck
			cards []models.Flashcard
		}
		var all []deckCards

		if len(args) > 0 {
			deck, err := store.GetDeckByTitle(args[0])
			if err != nil {
				fmt.Println("❌", err)
				return
			}
			cards, err := store.DueCards(deck.ID, now)
			if err != nil {
				fmt.Println("❌ Error fetching due cards:", err)
				return
			}
			all = append(all, deckCards{*deck, cards})
		} else {
			decks, err := store.ListDecks()
			if err != nil {
				fmt.Println("❌ Error listing decks:", err)
				return
			}
			for _, d := range decks {
				cards, err := store.DueCards(d.ID, now)
				if err != nil {
					fmt.Println("❌ Error fetching due cards:", err)
					return
				}
				all = append(all, deckCards{d, cards})
			}
		}

		total := 0
		for _, dc := range all {
			total += len(dc.cards)
		}
		if total == 0 {
			fmt.Println("✅ No cards due. Brain = fresh.")
			return
		}

		fmt.Printf("🔥 %d cards due:\n\n", total)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Deck\tFront\tStage\tDue")
		fmt.Fprintln(w, "----\t-----\t-----\t---")
		for _, dc := range all {
			for _, c := range dc.cards {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					dc.deck.Title, c.Front, algorithm.CardStage(c), c.DueDate.Format("2006-01-02"))
			}
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
