package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-patterns/pkg/render"
)

// newRenderCmd prints the demo page through a registered renderer.
func newRenderCmd(opts *rootOptions) *cobra.Command {
	var renderer string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a page through an adapted renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.env.RunRender(renderer)
		},
	}
	cmd.Flags().StringVarP(&renderer, "renderer", "r", render.RendererText, "renderer to use (text, markdown)")
	return cmd
}

// newFormBuilderCmd writes the login form, or prints it from every builder
// in regression mode.
func newFormBuilderCmd(opts *rootOptions) *cobra.Command {
	var regression bool
	cmd := &cobra.Command{
		Use:   "formbuilder",
		Short: "Build a login form with the HTML and terminal builders",
		Long: `formbuilder writes login.html into the output directory and prints its path.

With -P every builder prints its form to stdout instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.env.RunFormBuilder(regression)
		},
	}
	cmd.Flags().BoolVarP(&regression, "regression", "P", false, "print every builder's form instead of writing a file")
	return cmd
}

// newGameBoardCmd prints checkers and chess boards.
func newGameBoardCmd(opts *rootOptions) *cobra.Command {
	var (
		variant string
		toFile  bool
	)
	cmd := &cobra.Command{
		Use:   "gameboard",
		Short: "Print game boards built by factory methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.env.RunGameBoard(variant, toFile)
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "board to print (checkers, chess, all); defaults to the configured board")
	cmd.Flags().BoolVar(&toFile, "file", false, "also write the plain boards to gameboard.txt")
	return cmd
}

// newCapabilitiesCmd reports which renderers provide the renderer methods.
func newCapabilitiesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Check registered renderers against the required method set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.env.RunCapabilities()
		},
	}
}
