package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/openapi"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var title, version, description, outputPath string

	cmd := &cobra.Command{
		Use:   "openapi <file>",
		Short: "Export models and enums as OpenAPI component schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.container(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			result, err := openapi.Export(cmd.Context(), c,
				openapi.WithTitle(title),
				openapi.WithVersion(version),
				openapi.WithDescription(description),
			)
			if err != nil {
				return err
			}
			a.printer.Verbose("exported models " + joinNames(c.ModelNames()))
			return a.writeResult(outputPath, result.JSON)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "info.title of the exported document")
	cmd.Flags().StringVar(&version, "version", "", "info.version of the exported document")
	cmd.Flags().StringVar(&description, "description", "", "info.description of the exported document")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
