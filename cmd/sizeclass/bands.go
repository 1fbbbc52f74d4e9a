package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/sizeclass/sizeclass"
)

var bandsClasses bool

var (
	primaryColor = lipgloss.Color("#7D56F4")
	borderColor  = lipgloss.Color("#383838")

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func init() {
	cmd := newBandsCmd()
	cmd.Flags().BoolVar(&bandsClasses, "classes", false, "List every size class instead of bands")
	rootCmd.AddCommand(cmd)
}

func newBandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Show size class bands and their memory footprint",
		Long: `The bands command lists the five size class bands with their class range,
size range, granularity, objects per class and memory footprint.

Example:
  sizeclass bands
  sizeclass bands --classes
  sizeclass bands --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBands()
		},
	}
	return cmd
}

type bandInfo struct {
	Band        int   `json:"band"`
	FirstClass  int   `json:"first_class"`
	LastClass   int   `json:"last_class"`
	MinSize     int   `json:"min_size"`
	MaxSize     int   `json:"max_size"`
	Granularity int   `json:"granularity"`
	Count       int   `json:"count"`
	Footprint   int64 `json:"footprint"`
}

type classInfo struct {
	Index int `json:"index"`
	Size  int `json:"size"`
	Count int `json:"count"`
}

func collectBands() ([]bandInfo, int64) {
	var total int64
	bands := sizeclass.Bands()
	out := make([]bandInfo, 0, len(bands))
	for i, b := range bands {
		fp := b.Footprint()
		total += fp
		out = append(out, bandInfo{
			Band:        i,
			FirstClass:  b.Base,
			LastClass:   b.Base + b.NumClasses() - 1,
			MinSize:     b.Lo + 1,
			MaxSize:     b.Hi,
			Granularity: b.Granularity,
			Count:       b.Count,
			Footprint:   fp,
		})
	}
	return out, total
}

func runBands() error {
	if bandsClasses {
		return runClasses()
	}

	bands, total := collectBands()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"bands":           bands,
			"total_footprint": total,
		})
	}

	t := newTable("BAND", "CLASSES", "SIZES", "STEP", "COUNT", "FOOTPRINT")
	for _, b := range bands {
		t.Row(
			strconv.Itoa(b.Band),
			fmt.Sprintf("%d-%d", b.FirstClass, b.LastClass),
			fmt.Sprintf("%d-%d", b.MinSize, b.MaxSize),
			strconv.Itoa(b.Granularity),
			strconv.Itoa(b.Count),
			formatBytes(b.Footprint),
		)
	}

	printInfo("%s\n", t.String())
	printInfo("Total footprint: %s (%d bytes)\n", formatBytes(total), total)
	return nil
}

func runClasses() error {
	classes := sizeclass.Classes()

	if jsonOut {
		out := make([]classInfo, 0, len(classes))
		for _, c := range classes {
			out = append(out, classInfo{Index: c.Index, Size: c.Size, Count: c.Count})
		}
		return printJSON(out)
	}

	t := newTable("INDEX", "SIZE", "COUNT", "BYTES")
	for _, c := range classes {
		t.Row(
			strconv.Itoa(c.Index),
			strconv.Itoa(c.Size),
			strconv.Itoa(c.Count),
			strconv.Itoa(c.Size*c.Count),
		)
	}

	printInfo("%s\n", t.String())
	return nil
}

// newTable returns a bordered table, styled unless --no-color is set
func newTable(headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	if noColor {
		return t.StyleFunc(func(row, col int) lipgloss.Style {
			return tableCellStyle
		})
	}

	return t.
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

// formatBytes renders n as bytes, KB or MB
func formatBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
