package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randalmurphal/captionkit/counter"
)

var flagRenderStore string

var renderCmd = &cobra.Command{
	Use:   "render [TEMPLATE]",
	Short: "Render a caption template and advance its counters",
	Long: "Render a template against the resolved counter scope: the --store " +
		"override if given, else the user's active store, else the user's " +
		"local counters. Without a TEMPLATE argument the configured " +
		"default_template is rendered.",
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagRenderStore, "store", "s", "", "render against this named store regardless of scope state")
}

func runRender(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	template := e.cfg.DefaultTemplate
	if len(args) == 1 {
		template = args[0]
	}
	if template == "" {
		return fmt.Errorf("no template given and no default_template configured")
	}

	sc := e.resolver.Resolve(flagUser)
	if flagRenderStore != "" {
		sc = counter.NamedScope(flagRenderStore)
	}

	rendered, snap, err := e.seq.Render(cmd.Context(), sc, template)
	if err != nil {
		return err
	}
	e.log.Debug("rendered",
		zap.String("scope", sc.Key()),
		zap.String("counters", snap.String()))

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
