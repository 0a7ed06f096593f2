package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "A study planner with spaced repetition and auto-scheduling",
	Long: `Studyplan is a CLI for students: flashcard review using a spaced
repetition algorithm (SM-2), and an auto-scheduler that turns assignments
into bounded study sessions placed on your calendar.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
