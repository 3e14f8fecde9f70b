package main

import (
	"github.com/spf13/cobra"
	"github.com/terraincognita07/florette/internal/cli"
)

var (
	predictHistory    string
	predictTargetDate string
	predictNow        string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict tomorrow's symptoms from a JSON history file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPredictCommand(cli.PredictOptions{
			HistoryPath: predictHistory,
			TargetDate:  predictTargetDate,
			Now:         predictNow,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
	predictCmd.Flags().StringVar(&predictHistory, "history", "", "Path to a JSON array of symptom records")
	predictCmd.Flags().StringVar(&predictTargetDate, "target-date", "", "Date YYYY-MM-DD to predict (default tomorrow)")
	predictCmd.Flags().StringVar(&predictNow, "now", "", "Day YYYY-MM-DD or RFC 3339 timestamp treated as now (default now)")
	_ = predictCmd.MarkFlagRequired("history")
}
