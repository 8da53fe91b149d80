package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teatak/charstat/analysis"
	"github.com/teatak/charstat/report"
)

var topLen int

func init() {
	topCmd.Flags().IntVarP(&topLen, "length", "n", 0, "Only list n-grams of this length (0 lists every length)")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top <language>",
	Short: "List the most frequent n-grams of a language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lang, err := cfg.Find(args[0])
		if err != nil {
			return err
		}
		lang.Histories = nil

		r, err := analysis.Run(cfg, lang, nil)
		if err != nil {
			return err
		}
		if topLen == 0 {
			return report.WriteTop(os.Stdout, r)
		}
		for _, e := range r.Table.TopKEntries(cfg.TopK, topLen) {
			fmt.Printf("%s %d\n", e.Gram, e.Count)
		}
		return nil
	},
}
