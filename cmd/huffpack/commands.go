package main

import (
	"fmt"

	"github.com/chronos-tachyon/huffpack"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCompressCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress FILE",
		Short: "compresses FILE, writing the packed data and its code table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cfg, args[0])
		},
	}
	addOutputFlags(cmd, cfg)
	cmd.Flags().BoolVar(&cfg.Trim, "trim", false, "strip trailing whitespace before compressing")
	return cmd
}

func newDecompressCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompress FILE",
		Short: "decompresses FILE using its code table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(cfg, args[0])
		},
	}
	addOutputFlags(cmd, cfg)
	return cmd
}

func newRoundTripCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip FILE",
		Short: "compresses FILE, then decompresses the result with the same code table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, cfg, args[0])
		},
	}
	cmd.Flags().BoolVar(&cfg.Trim, "trim", false, "strip trailing whitespace before compressing")
	return cmd
}

func newDumpCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "prints the Huffman code table for FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args[0], cfg.Trim)
			if err != nil {
				return err
			}
			table, err := huffpack.BuildTable(text)
			if err != nil {
				return err
			}
			_, err = table.Dump(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&cfg.Trim, "trim", false, "strip trailing whitespace before building the table")
	return cmd
}

func runCompress(cfg *config, input string) error {
	text, err := readText(input, cfg.Trim)
	if err != nil {
		return err
	}

	c := huffpack.NewCodec()
	buf, err := c.Compress(text)
	if err != nil {
		return err
	}
	logger.Infof("compressed %d bytes from %q into %d bytes", len(text), input, len(buf))

	table := c.Table()
	if table == nil {
		table, _ = huffpack.LoadTable(nil)
	}
	if err := saveTable(orDefault(cfg.Table, tablePath(input)), table); err != nil {
		return err
	}
	return writeFile(orDefault(cfg.Output, packedPath(input)), buf)
}

func runDecompress(cfg *config, input string) error {
	buf, err := readText(input, false)
	if err != nil {
		return err
	}

	table, err := loadTable(orDefault(cfg.Table, tablePath(input)))
	if err != nil {
		return err
	}

	text, err := huffpack.NewCodecWithTable(table).Decompress([]byte(buf))
	if err != nil {
		return err
	}
	logger.Infof("decompressed %d bytes from %q into %d bytes", len(buf), input, len(text))
	return writeFile(orDefault(cfg.Output, decompressedPath(input)), []byte(text))
}

func runRoundTrip(cmd *cobra.Command, cfg *config, input string) error {
	text, err := readText(input, cfg.Trim)
	if err != nil {
		return err
	}

	c := huffpack.NewCodec()
	buf, err := c.Compress(text)
	if err != nil {
		return err
	}
	packed := packedPath(input)
	if err := writeFile(packed, buf); err != nil {
		return err
	}

	decoded, err := c.Decompress(buf)
	if err != nil {
		return err
	}
	if decoded != text {
		return errors.Errorf("round trip of %q does not reproduce the input", input)
	}
	if err := writeFile(decompressedPath(packed), []byte(decoded)); err != nil {
		return err
	}

	ratio := 0.0
	if len(text) != 0 {
		ratio = float64(len(buf)) / float64(len(text))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d -> %d bytes (%.1f%%), %d distinct symbols\n",
		input, len(text), len(buf), 100*ratio, c.Table().Len())
	return nil
}
