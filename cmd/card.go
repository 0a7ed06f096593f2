package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/algorithm"
	"github.com/LavenderBridge/studyplan/internal/db"
	"github.com/LavenderBridge/studyplan/internal/models"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var cardAddCmd = &cobra.Command{
	Use:   "add [deck] [front] [back]",
	Short: "Add a card to a deck",
	Args:  cobra.ExactArgs(3),
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

		now := time.Now()
		card := models.Flashcard{
			ID:        uuid.New(),
			DeckID:    deck.ID,
			Front:     args[1],
			Back:      args[2],
			CreatedAt: now,
		}
		card = algorithm.InitCard(card, now)

		if err := store.AddCard(card); err != nil {
			fmt.Println("❌ Error adding card:", err)
			return
		}

		fmt.Printf("✅ Added card to '%s' (due now)\n", deck.Title)
	},
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardAddCmd)
}
