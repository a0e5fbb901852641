package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formschema/pkg/orchestrator"
	"github.com/goliatone/go-formschema/pkg/render"
	"github.com/goliatone/go-formschema/pkg/renderers/html"
	"github.com/goliatone/go-formschema/pkg/renderers/tui"
	"github.com/goliatone/go-formschema/pkg/view"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		viewName, formKind, rendererName string
		themeName, variant               string
		presetPath, outputPath           string
		engine                           string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a view form",
		Long: `Render one form of a view. The html renderer writes an HTML fragment; the
tui renderer prompts for every field and prints the answers as JSON.

Examples:
  formschema render dog.json --view dog
  formschema render dog.yaml --view dog --form advanced --theme default --variant dark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.container(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			registry := render.NewRegistry()
			if engine == "" {
				engine = a.cfg.TemplateEngine
			}
			htmlRenderer, err := html.New(html.WithEngine(engine))
			if err != nil {
				return err
			}
			registry.MustRegister(htmlRenderer)
			registry.MustRegister(tui.New(tui.WithPromptDriver(a.driver), tui.WithContainer(c)))

			opts := []orchestrator.Option{
				orchestrator.WithRegistry(registry),
				orchestrator.WithDefaultRenderer(a.cfg.Renderer),
				orchestrator.WithLogger(a.logger),
				orchestrator.WithThemeSelector(orchestrator.NewStaticThemes(orchestrator.DefaultTheme())),
				orchestrator.WithThemeDefaults(a.cfg.Theme, a.cfg.Variant),
			}
			if presetPath != "" {
				data, err := os.ReadFile(presetPath)
				if err != nil {
					return fmt.Errorf("read preset: %w", err)
				}
				preset, err := orchestrator.NewPresetTransformer(data)
				if err != nil {
					return err
				}
				opts = append(opts, orchestrator.WithTransformer(preset))
			}

			out, err := orchestrator.New(opts...).Generate(cmd.Context(), orchestrator.Request{
				Container:    c,
				View:         viewName,
				Form:         view.FormKind(formKind),
				Renderer:     rendererName,
				ThemeName:    themeName,
				ThemeVariant: variant,
			})
			if err != nil {
				return err
			}
			return a.writeResult(outputPath, out)
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "", "view to render (required)")
	cmd.Flags().StringVar(&formKind, "form", string(view.FormBasic), "form kind: basic or advanced")
	cmd.Flags().StringVar(&rendererName, "renderer", "", "renderer name (html, tui); defaults to the configured renderer")
	cmd.Flags().StringVar(&engine, "engine", "", "html template engine (pongo2, go-template); defaults to the configured engine")
	cmd.Flags().StringVar(&themeName, "theme", "", "theme name")
	cmd.Flags().StringVar(&variant, "variant", "", "theme variant")
	cmd.Flags().StringVar(&presetPath, "preset", "", "JSON or YAML file with title and field overrides")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (stdout if empty)")
	_ = cmd.MarkFlagRequired("view")
	return cmd
}
