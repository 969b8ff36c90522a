package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zalepa/ourvoice/catalog"
	"github.com/zalepa/ourvoice/i18n"
)

func showCmd(opts *rootOptions) *cobra.Command {
	var (
		lang string
		seed seedFlag
	)

	cmd := &cobra.Command{
		Use:   "show <state-id> <district-id>",
		Short: "Show a district's dashboard in the terminal",
		Example: `  ourvoice show UP LKO
  ourvoice show BR PAT --lang hi --seed 7`,
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

			s := seed.generator().Generate(d.ID, d.Name, r.Name)
			opts.logf(cmd, "generated snapshot for %s/%s", r.ID, d.ID)
			renderDashboard(cmd.OutOrStdout(), s, l)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "display language: en or hi (default from config)")
	seed.register(cmd)
	return cmd
}

func detectCmd(opts *rootOptions) *cobra.Command {
	var (
		lang string
		seed seedFlag
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect a district and show its dashboard",
		Long:  "Simulates location detection: waits for the configured locate delay and picks a district at random.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cat, err := opts.load()
			if err != nil {
				return err
			}
			l, err := language(lang, cfg)
			if err != nil {
				return err
			}
			seed.resolve(cmd)

			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T(l, i18n.MsgDetecting))
			loc := catalog.NewLocator(cat, seed.source(), cfg.Dashboard.LocateDelay)
			r, d, err := loc.Locate(cmd.Context())
			if err != nil {
				return fmt.Errorf("detect district: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s / %s (%s/%s)\n\n", r.DisplayName(l), d.DisplayName(l), r.ID, d.ID)

			s := seed.generator().Generate(d.ID, d.Name, r.Name)
			renderDashboard(cmd.OutOrStdout(), s, l)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "display language: en or hi (default from config)")
	seed.register(cmd)
	return cmd
}
