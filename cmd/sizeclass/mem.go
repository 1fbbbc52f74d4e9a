package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/sizeclass/sizeclass"
)

func init() {
	rootCmd.AddCommand(newMemCmd())
}

func newMemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mem <start> <step> <size>",
		Short: "Sum i*size over 16 values of i starting at start",
		Long: `The mem command computes (start + k*step) * size summed over k = 0..15.
With start and step set to a band's first class size and granularity, and
size set to its object count, the result is the band's memory footprint.

Example:
  sizeclass mem 0 1 5          # 600
  sizeclass mem 144 16 32      # footprint of the 16-byte band`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMem(args)
		},
	}
	return cmd
}

func runMem(args []string) error {
	start, err := parseInt("start", args[0])
	if err != nil {
		return err
	}
	step, err := parseInt("step", args[1])
	if err != nil {
		return err
	}
	size, err := parseInt("size", args[2])
	if err != nil {
		return err
	}

	mem := sizeclass.ComputeMem(start, step, size)

	if jsonOut {
		return printJSON(map[string]int64{
			"start": start,
			"step":  step,
			"size":  size,
			"mem":   mem,
		})
	}

	printVerbose("Summing (%d + k*%d) * %d for k = 0..15\n", start, step, size)
	printInfo("%d\n", mem)
	return nil
}
