package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teatak/charstat/config"
)

var (
	cfgFile string
	v       = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "charstat",
	Short: "Character n-gram statistics",
	Long: `charstat counts character n-grams in text corpora and estimates
the distribution and entropy of the next character given a history.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().Int("max-len", config.DefaultMaxLen, "Maximum n-gram length")
	rootCmd.PersistentFlags().Int("top-k", config.DefaultTopK, "Number of most frequent n-grams to list")
	bindFlag(v, "max_len", rootCmd, "max-len")
	bindFlag(v, "top_k", rootCmd, "top-k")
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		log.Fatalf("Failed to bind flag %s: %v", name, err)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(v, cfgFile)
}

func main() {
	log.SetPrefix("[charstat] ")
	log.SetFlags(log.LstdFlags)
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
