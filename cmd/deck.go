package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/db"
)

var (
	deckCourse  string
	deckForceRm bool
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage flashcard decks",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var deckAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a new deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		deck, err := store.CreateDeck(args[0], deckCourse)
		if err != nil {
			fmt.Println("❌ Error creating deck:", err)
			return
		}

		fmt.Printf("✅ Created deck '%s'\n", deck.Title)
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all decks",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := db.NewStore()
		if err != nil {
			fmt.Println("❌ Database error:", err)
			return
		}
		defer store.Close()

		decks, err := store.ListDecks()
		if err != nil {
			fmt.Println("❌ Error listing decks:", err)
			return
		}

		if len(decks) == 0 {
			fmt.Println("No decks yet. Create one with 'studyplan deck add'.")
			return
		}

		now := time.Now()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Deck\tCourse\tCards\tDue")
		fmt.Fprintln(w, "----\t------\t-----\t---")

		for _, d := range decks {
			cards, err := store.ListCards(d.ID)
			if err != nil {
				fmt.Println("❌ Error reading deck:", err)
				return
			}
			due, err := store.DueCards(d.ID, now)
			if err != nil {
				fmt.Println("❌ Error reading deck:", err)
				return
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", d.Title, d.Course, len(cards), len(due))
		}
		w.Flush()
	},
}

var deckRmCmd = &cobra.Command{
	Use:   "rm [title]",
	Short: "Delete a deck and all its cards",
	Args:  cobra.ExactArgs(1),
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

		if !deckForceRm {
			fmt.Printf("⚠️  Delete deck '%s' and all its cards? (y/N): ", deck.Title)
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "y" && input != "yes" {
				fmt.Println("❌ Cancelled.")
				return
			}
		}

		if err := store.DeleteDeck(deck.ID); err != nil {
			fmt.Println("❌ Error deleting deck:", err)
			return
		}

		fmt.Println("✅ Deck deleted.")
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckRmCmd)

	deckAddCmd.Flags().StringVarP(&deckCourse, "course", "c", "", "Course code this deck belongs to")
	deckRmCmd.Flags().BoolVarP(&deckForceRm, "force", "f", false, "Skip confirmation")
}
