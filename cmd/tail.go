package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tailconsole/internal/source"
)

var tailCmd = &cobra.Command{
	Use:   "tail FILE",
	Short: "Follow a file as it grows",
	Long: `Follow a file as it grows, like tail -f.

Rotation (the file being replaced) and truncation are detected and the new
content is shown from its start.`,
	Args: cobra.ExactArgs(1),
	RunE: runTail,
}

func init() {
	rootCmd.AddCommand(tailCmd)

	tailCmd.Flags().Bool("from-start", false, "show existing content first")
	tailCmd.Flags().Duration("poll", 0, "fallback re-check interval (overrides tail.poll)")

	_ = viper.BindPFlag("tail.from_start", tailCmd.Flags().Lookup("from-start"))
	_ = viper.BindPFlag("tail.poll", tailCmd.Flags().Lookup("poll"))
}

func runTail(_ *cobra.Command, args []string) error {
	return runConsole(&source.Tail{
		Path:      args[0],
		FromStart: cfg.Tail.FromStart,
		Poll:      cfg.Tail.Poll,
		ChunkSize: cfg.Source.ChunkSize,
	})
}
