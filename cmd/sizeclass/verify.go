package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sizeclass/cmd/sizeclass/logger"
	"github.com/joshuapare/sizeclass/sizeclass/export"
)

var verifyEncoding string

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().StringVar(&verifyEncoding, "encoding", "utf8", "Table encoding (utf8, utf16le, windows1252)")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <table.csv>",
		Short: "Check an exported table against the size class mapping",
		Long: `The verify command parses an exported table and checks that it holds
exactly one correct record for every size from 1 to 3968, in order.

Example:
  sizeclass verify sizes.csv
  sizeclass verify sizes.csv --encoding utf16le --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	tablePath := args[0]

	enc, err := export.ParseEncoding(verifyEncoding)
	if err != nil {
		return err
	}

	printVerbose("Verifying table: %s (%s)\n", tablePath, enc)

	if err := export.VerifyFile(tablePath, enc); err != nil {
		logger.Warn("verify failed", "path", tablePath, "error", err)
		return fmt.Errorf("verify failed: %w", err)
	}
	logger.Info("verify passed", "path", tablePath)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"table":    tablePath,
			"encoding": enc.String(),
			"records":  export.NumRecords,
			"valid":    true,
		})
	}

	printInfo("✓ %s: %d records match\n", tablePath, export.NumRecords)
	return nil
}
