package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tailconsole/internal/source"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show synthetic output for trying out scrolling",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Duration("interval", 0, "delay between lines (overrides demo.interval)")
	demoCmd.Flags().Int("loops", 0, "stop after this many runs, 0 for forever")

	_ = viper.BindPFlag("demo.interval", demoCmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("demo.loops", demoCmd.Flags().Lookup("loops"))
}

func runDemo(_ *cobra.Command, _ []string) error {
	return runConsole(&source.Demo{Interval: cfg.Demo.Interval, Loops: cfg.Demo.Loops})
}
