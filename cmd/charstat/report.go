package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/teatak/charstat/analysis"
	"github.com/teatak/charstat/report"
)

var (
	plotDir   string
	textChart bool
)

func init() {
	reportCmd.Flags().StringVarP(&plotDir, "plot-dir", "p", "plots", "Directory for PNG charts of languages with plot enabled")
	reportCmd.Flags().BoolVar(&textChart, "chart", false, "Also draw charts on stdout")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis for every configured language",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func runReport() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for _, lang := range cfg.Languages {
		log.Printf("=== %s (%s) ===", lang.Name, lang.Corpus)
		r, err := analysis.Run(cfg, lang, nil)
		if err != nil {
			return err
		}
		if err := report.WriteTop(os.Stdout, r); err != nil {
			return err
		}

		var sinks []report.Sink
		if lang.Plot && plotDir != "" {
			sinks = append(sinks, &report.PlotSink{Dir: plotDir})
		}
		if textChart {
			sinks = append(sinks, &report.TextSink{W: os.Stdout})
		}
		for _, s := range sinks {
			if err := report.RenderAll(s, r); err != nil {
				log.Printf("Warning: rendering %s charts failed: %v", lang.Name, err)
			}
		}

		if err := report.WriteEntropies(os.Stdout, r); err != nil {
			return err
		}
	}
	return nil
}
