package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/report"
)

func reportCmd(opts *rootOptions) *cobra.Command {
	var (
		lang   string
		output string
		seed   seedFlag
	)

	cmd := &cobra.Command{
		Use:   "report <state-id> <district-id>",
		Short: "Write a district's dashboard as a PDF report",
		Example: `  ourvoice report UP LKO -o lucknow.pdf
  ourvoice report MH PUN --seed 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cat, err := opts.load()
			if err != nil {
				return err
			}
			l, err := language(lang, cfg)
			if err != nil {
				return err
			}
			r, d, err := cat.FindSubRegion(args[0], args[1])
			if err != nil {
				return err
			}
			seed.resolve(cmd)

			// The embedded PDF fonts have no Devanagari glyphs.
			if l == i18n.Hindi {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: PDF fonts cannot render Hindi, writing English labels")
				l = i18n.English
			}

			path := output
			if path == "" {
				path = strings.ToLower(d.ID) + ".pdf"
			}

			s := seed.generator().Generate(d.ID, d.Name, r.Name)
			opts.logf(cmd, "rendering %d-page report for %s/%s", report.PageCount, r.ID, d.ID)
			if err := report.WriteFile(path, s, l); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d pages)\n", path, report.PageCount)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (default <district-id>.pdf)")
	cmd.Flags().StringVar(&lang, "lang", "", "label language: en or hi (default from config)")
	seed.register(cmd)
	return cmd
}
