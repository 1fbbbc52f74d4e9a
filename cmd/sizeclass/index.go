package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sizeclass/cmd/sizeclass/logger"
	"github.com/joshuapare/sizeclass/sizeclass"
)

func init() {
	rootCmd.AddCommand(newIndexCmd())
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <size>...",
		Short: "Print the size class of one or more sizes",
		Long: `The index command maps each size (1-3968 bytes) to its size class index
and the block size that class serves.

Example:
  sizeclass index 1 128 129 3968
  sizeclass index 200 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(args)
		},
	}
	return cmd
}

type indexResult struct {
	Size      int `json:"size"`
	Index     int `json:"index"`
	ClassSize int `json:"class_size"`
}

func runIndex(args []string) error {
	results := make([]indexResult, 0, len(args))
	for _, arg := range args {
		size, err := parseInt("size", arg)
		if err != nil {
			return err
		}

		// Range check before narrowing to int
		switch {
		case size < sizeclass.MinSize:
			err = fmt.Errorf("%w: got %d", sizeclass.ErrInvalidSize, size)
		case size > sizeclass.MaxSize:
			err = fmt.Errorf("%w: %d > %d", sizeclass.ErrOutOfRange, size, sizeclass.MaxSize)
		}
		var idx int
		if err == nil {
			idx, err = sizeclass.Index(int(size))
		}
		if err != nil {
			logger.Warn("size rejected", "size", size, "error", err)
			return fmt.Errorf("size %d: %w", size, err)
		}
		blk, err := sizeclass.ClassSize(idx)
		if err != nil {
			return err
		}
		results = append(results, indexResult{Size: int(size), Index: idx, ClassSize: blk})
	}

	if jsonOut {
		return printJSON(results)
	}

	for _, r := range results {
		printInfo("%d -> %d (class size %d)\n", r.Size, r.Index, r.ClassSize)
	}
	return nil
}
