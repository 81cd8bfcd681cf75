// Command gdsdump prints a structured debug dump of one or more GDSII
// stream files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/layoutkit/gdsii"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gdsdump [file ...]",
		Short: "Dump the structure of GDSII stream files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := dumpFile(cmd, path); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				}
			}
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func dumpFile(cmd *cobra.Command, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lib, err := gdsii.Parse(buf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "library %q  user-unit=%g  precision=%g\n", lib.Name, lib.UserUnit, lib.Precision)
	for _, top := range lib.TopCells() {
		dumpCell(out, lib, top, 0)
	}
	return nil
}

func dumpCell(out io.Writer, lib *gdsii.Library, id gdsii.CellID, depth int) {
	cell := lib.Cell(id)
	if cell == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(out, "%scell %q  polygons=%d paths=%d refs=%d texts=%d\n",
		indent, cell.Name, len(cell.Polygons), len(cell.Paths), len(cell.References), len(cell.Texts))
	for _, ref := range cell.References {
		if resolved, ok := ref.Target.(gdsii.ResolvedReference); ok {
			dumpCell(out, lib, resolved.CellID, depth+1)
		}
	}
}
