// Package cmd implements the ourvoice command-line interface.
package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/zalepa/ourvoice/catalog"
	"github.com/zalepa/ourvoice/config"
	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

var version = "dev"

type rootOptions struct {
	configPath  string
	catalogPath string
	verbose     bool
}

// NewRootCmd builds the ourvoice command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "ourvoice",
		Short:         "MGNREGA district performance dashboard",
		Long:          "Browse states and districts and view how a district is performing under MGNREGA,\nin the terminal, as a PDF report or as a web dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog of states and districts (default: built-in)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(versionCmd())
	root.AddCommand(regionsCmd(opts))
	root.AddCommand(showCmd(opts))
	root.AddCommand(detectCmd(opts))
	root.AddCommand(reportCmd(opts))
	root.AddCommand(serveCmd(opts))

	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (o *rootOptions) load() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	path := o.catalogPath
	if path == "" {
		path = cfg.Dashboard.Catalog
	}
	if path == "" {
		return cfg, catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}

func (o *rootOptions) logf(cmd *cobra.Command, format string, args ...any) {
	if o.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

// language resolves a --lang flag value, falling back to the configured default.
func language(flag string, cfg *config.Config) (i18n.Language, error) {
	if flag == "" {
		return cfg.Language(), nil
	}
	return i18n.Parse(flag)
}

// seedFlag is shared by the commands that draw random numbers.
type seedFlag struct {
	seed uint64
	set  bool
}

func (s *seedFlag) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&s.seed, "seed", 0, "random seed for reproducible output")
}

func (s *seedFlag) resolve(cmd *cobra.Command) {
	s.set = cmd.Flags().Changed("seed")
}

func (s *seedFlag) generator() *metrics.Generator {
	if s.set {
		return metrics.NewSeededGenerator(s.seed, nil)
	}
	return metrics.NewDefaultGenerator()
}

func (s *seedFlag) source() *rand.Rand {
	if s.set {
		return rand.New(rand.NewPCG(s.seed, ^s.seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
