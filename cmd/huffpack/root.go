package main

import (
	"github.com/spf13/cobra"
)

type config struct {
	Verbose bool
	Output  string
	Table   string
	Trim    bool
}

func newRootCommand() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "huffpack",
		Short:         "compresses and decompresses text files with Huffman codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(cfg.Verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newCompressCommand(cfg),
		newDecompressCommand(cfg),
		newRoundTripCommand(cfg),
		newDumpCommand(cfg),
	)
	return root
}

func addOutputFlags(cmd *cobra.Command, cfg *config) {
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "output file (default: derived from the input name)")
	cmd.Flags().StringVarP(&cfg.Table, "table", "t", "", "code table file (default: derived from the input name)")
}
