package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/types"
)

// Version is set at build time.
var Version = "dev"

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formschema <file>",
		Short: "Validate and normalize form schema documents",
		Long: `formschema reads a schema document (JSON or YAML) with enum, model and
view sections, checks every field type against the declared enums, and writes
the normalized document as JSON.

Subcommands render view forms, export OpenAPI components and edit model
values interactively.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing schema file argument")
			}
			return normalize(cmd, a, args[0])
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./formschema.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output for debugging")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newOpenAPICmd(a))
	cmd.AddCommand(newEditCmd(a))
	return cmd
}

func normalize(cmd *cobra.Command, a *app, location string) error {
	doc, err := a.document(cmd.Context(), location)
	if err != nil {
		return err
	}
	raw, err := doc.Decode()
	if err != nil {
		return err
	}

	opts := []schema.NormalizerOption{schema.WithEnumPolicy(a.cfg.EnumPolicy)}
	if !a.cfg.StrictTypes {
		opts = append(opts, schema.WithKnownTypes(types.BuiltinNames()...))
	}
	normalized, err := schema.NewNormalizer(opts...).Normalize(raw)
	if err != nil {
		return err
	}

	data, err := schema.EncodeJSON(normalized)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
