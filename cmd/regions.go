package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zalepa/ourvoice/catalog"
)

func regionsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions [state-id]",
		Short: "List states, or the districts of one state",
		Example: `  ourvoice regions
  ourvoice regions UP`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cat, err := opts.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				listRegions(out, cat.Regions())
				return nil
			}
			r, err := cat.FindRegion(args[0])
			if err != nil {
				return err
			}
			listDistricts(out, r)
			return nil
		},
	}
}

func listRegions(w io.Writer, regions []catalog.Region) {
	nameWidth := 10
	for _, r := range regions {
		nameWidth = max(nameWidth, len(r.Name))
	}
	rowFmt := fmt.Sprintf("%%-4s  %%-%ds  %%s\n", nameWidth)
	for _, r := range regions {
		fmt.Fprintf(w, rowFmt, r.ID, r.Name, r.NameHi)
	}
}

func listDistricts(w io.Writer, r catalog.Region) {
	fmt.Fprintf(w, "%s (%s)\n", r.Name, r.NameHi)
	nameWidth := 10
	for _, d := range r.SubRegions {
		nameWidth = max(nameWidth, len(d.Name))
	}
	rowFmt := fmt.Sprintf("  %%-4s  %%-%ds  %%s\n", nameWidth)
	for _, d := range r.SubRegions {
		fmt.Fprintf(w, rowFmt, d.ID, d.Name, d.NameHi)
	}
}
