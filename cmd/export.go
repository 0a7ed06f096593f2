package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/studyplan/internal/db"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [deck]",
	Short: "Export a deck as Anki-compatible CSV",
	Long: `Write a deck's cards as front,back CSV rows, the format Anki's
importer expects. Defaults to stdout.`,
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

		cards, err := store.ListCards(deck.ID)
		if err != nil {
			fmt.Println("❌ Error reading cards:", err)
			return
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				fmt.Println("❌ Error creating file:", err)
				return
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		for _, c := range cards {
			if err := w.Write([]string{c.Front, c.Back}); err != nil {
				fmt.Println("❌ Error writing CSV:", err)
				return
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			fmt.Println("❌ Error writing CSV:", err)
			return
		}

		if exportOut != "" {
			fmt.Printf("✅ Exported %d cards to %s\n", len(cards), exportOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to a file instead of stdout")
}
