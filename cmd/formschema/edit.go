package main

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/renderers/tui"
	"github.com/goliatone/go-formschema/pkg/schema"
	"github.com/goliatone/go-formschema/pkg/view"
)

func newEditCmd(a *app) *cobra.Command {
	var viewName, formKind, outputPath string

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit model values through a view form",
		Long: `Prompt for every field of a view form, validate each answer against the
field type, and print the resulting model values as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.container(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			editor, err := tui.NewEditor(c, tui.WithPromptDriver(a.driver))
			if err != nil {
				return err
			}
			changed, err := editor.Edit(cmd.Context(), viewName, view.FormKind(formKind))
			if err != nil {
				return err
			}
			a.printer.Verbose("updated " + joinNames(sortedKeys(changed)))

			data, err := schema.EncodeJSON(c.Values())
			if err != nil {
				return err
			}
			return a.writeResult(outputPath, data)
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "", "view to edit (required)")
	cmd.Flags().StringVar(&formKind, "form", string(view.FormBasic), "form kind: basic or advanced")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("view")
	return cmd
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
