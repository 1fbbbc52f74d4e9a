package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sizeclass/cmd/sizeclass/logger"
	"github.com/joshuapare/sizeclass/internal/writer"
	"github.com/joshuapare/sizeclass/sizeclass/export"
)

var (
	exportEncoding string
	exportBOM      bool
	exportStdout   bool
	exportNoSync   bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVar(&exportEncoding, "encoding", "utf8", "Output encoding (utf8, utf16le, windows1252)")
	cmd.Flags().BoolVar(&exportBOM, "with-bom", false, "Include byte-order mark")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().BoolVar(&exportNoSync, "no-sync", false, "Skip flushing the file to disk before renaming it into place")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [output.csv]",
		Short: "Export the size to class index table",
		Long: `The export command writes one "<size>, <index>" line for every size from
1 to 3968. An existing output file is replaced atomically.

Example:
  sizeclass export sizes.csv
  sizeclass export --stdout > sizes.csv
  sizeclass export sizes.csv --encoding utf16le --with-bom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	var outputPath string
	if len(args) > 0 {
		outputPath = args[0]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need either output file or stdout
	if outputPath == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	enc, err := export.ParseEncoding(exportEncoding)
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.Encoding = enc
	opts.WithBOM = exportBOM
	opts.Sync = !exportNoSync

	if exportStdout {
		// Buffer the whole table so a failed export leaves stdout empty
		mw := &writer.MemWriter{}
		if err := export.WriteSink(mw, opts); err != nil {
			return err
		}
		_, err := os.Stdout.Write(mw.Buf)
		return err
	}

	printVerbose("Exporting %d records to %s (%s)\n", export.NumRecords, outputPath, enc)
	logger.Info("export start", "path", outputPath, "encoding", enc.String(), "bom", opts.WithBOM)

	if err := export.WriteFile(outputPath, opts); err != nil {
		logger.Error("export failed", "path", outputPath, "error", err)
		return fmt.Errorf("export failed: %w", err)
	}
	logger.Info("export finished", "path", outputPath, "records", export.NumRecords)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"output":   outputPath,
			"records":  export.NumRecords,
			"encoding": enc.String(),
			"bom":      opts.WithBOM,
			"success":  true,
		})
	}

	printInfo("Wrote %d records to %s\n", export.NumRecords, outputPath)
	return nil
}
