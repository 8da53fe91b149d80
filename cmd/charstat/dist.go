package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/teatak/charstat/analysis"
	"github.com/teatak/charstat/report"
)

var distPlotDir string

func init() {
	distCmd.Flags().StringVarP(&distPlotDir, "plot-dir", "p", "", "Also save PNG charts into this directory")
	rootCmd.AddCommand(distCmd)
}

var distCmd = &cobra.Command{
	Use:   "dist <language> <history>...",
	Short: "Show next-character distributions for the given histories",
	Long: `Show next-character distributions for the given histories.
Pass "" for the empty history.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lang, err := cfg.Find(args[0])
		if err != nil {
			return err
		}
		lang.Histories = args[1:]

		r, err := analysis.Run(cfg, lang, nil)
		if err != nil {
			return err
		}

		sinks := []report.Sink{&report.TextSink{W: os.Stdout}}
		if distPlotDir != "" {
			sinks = append(sinks, &report.PlotSink{Dir: distPlotDir})
		}
		for _, s := range sinks {
			if err := report.RenderAll(s, r); err != nil {
				return err
			}
		}
		fmt.Println()
		return report.WriteEntropies(os.Stdout, r)
	},
}
