package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	schemagen "github.com/chirino/graphql-schemagen"
	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/relay"
	"github.com/chirino/graphql-schemagen/typeref"
	"github.com/chirino/graphql-schemagen/typeref/gotypes"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "schemagen",
		Short:        "Derive GraphQL schemas from Go types",
		SilenceUsage: true,
	}
	root.AddCommand(PrintCmd())
	return root
}

type printOptions struct {
	config   string
	naming   string
	query    string
	mutation string
	logLevel string
}

func PrintCmd() *cobra.Command {
	o := &printOptions{}
	cmd := &cobra.Command{
		Use:   "print [flags] package...",
		Short: "Print the schema of each package in SDL",
		Long: `Loads each package, maps its query type, and its mutation type when given,
to a GraphQL schema and prints the schema in SDL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd.Context(), cmd.OutOrStdout(), o, args)
		},
	}
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&o.naming, "naming", "", "Naming strategy (simple, full, relay)")
	cmd.Flags().StringVarP(&o.query, "query", "q", "Query", "Name of the query root type")
	cmd.Flags().StringVarP(&o.mutation, "mutation", "m", "", "Name of the mutation root type")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	return cmd
}

func loadConfig(o *printOptions) (schemagen.Config, error) {
	cfg := schemagen.DefaultConfig()
	if o.config != "" {
		data, err := os.ReadFile(o.config)
		if err != nil {
			return cfg, errors.Wrapf(err, "cannot read %s", o.config)
		}
		if cfg, err = schemagen.ReadConfig(data); err != nil {
			return cfg, err
		}
	}
	if o.naming != "" {
		cfg.Naming = o.naming
	}
	if o.logLevel != "" {
		cfg.Log.Level = log.Level(o.logLevel)
	}
	return cfg, cfg.Validate()
}

// runPrint builds the schema of every package concurrently and prints them
// in argument order.
func runPrint(ctx context.Context, out io.Writer, o *printOptions, packages []string) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	printed := make([]string, len(packages))
	g, gctx := errgroup.WithContext(ctx)
	for i, pkg := range packages {
		g.Go(func() error {
			sdl, err := printPackage(gctx, cfg, o, pkg)
			if err != nil {
				return errors.Wrapf(err, "package %s", pkg)
			}
			printed[i] = sdl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, sdl := range printed {
		if len(packages) > 1 {
			fmt.Fprintf(out, "# %s\n", packages[i])
		}
		fmt.Fprintln(out, sdl)
	}
	return nil
}

func printPackage(ctx context.Context, cfg schemagen.Config, o *printOptions, pkg string) (string, error) {
	b := schemagen.New(cfg)
	relay.Declare(b.Universe)
	classes, err := gotypes.Load(b.Universe, pkg)
	if err != nil {
		return "", err
	}
	query := find(classes, o.query)
	if query == nil {
		return "", errors.Errorf("query type %s not found", o.query)
	}
	var mutation typeref.Type
	if o.mutation != "" {
		c := find(classes, o.mutation)
		if c == nil {
			return "", errors.Errorf("mutation type %s not found", o.mutation)
		}
		mutation = c
	}
	result, err := b.Build(ctx, query, mutation)
	if err != nil {
		return "", err
	}
	return result.Schema.String(), nil
}

// find returns the class named name, either by its simple name or by its
// package qualified name.
func find(classes []*typeref.Class, name string) *typeref.Class {
	for _, c := range classes {
		if c.Name == name || c.String() == name {
			return c
		}
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return find(classes, name[i+1:])
	}
	return nil
}
