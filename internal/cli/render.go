package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avelorn/marklite/internal/parse"
	"github.com/avelorn/marklite/internal/present"
)

func newRenderCmd() *cobra.Command {
	var (
		mode    string
		variant string
		width   int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown-lite document",
		Long:  "Render a markdown-lite document from a file or stdin.\nModes: ansi (terminal), html, json, plain, tui.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts := app.Opts

			if cmd.Flags().Changed("mode") {
				m, ok := present.ParseMode(mode)
				if !ok {
					return fmt.Errorf("unknown mode %q", mode)
				}
				opts.Mode = m
			}
			if cmd.Flags().Changed("variant") {
				v, ok := present.ParseVariant(variant)
				if !ok {
					return fmt.Errorf("unknown variant %q", variant)
				}
				opts.Variant = v
			}
			if cmd.Flags().Changed("width") {
				if width < 0 {
					return fmt.Errorf("width must not be negative")
				}
				opts.Width = width
			}

			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc := parse.Document(src)

			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				return present.RenderDocument(cmd.Context(), f, doc, opts)
			}

			if opts.Mode == present.ModeANSI && opts.Width == 0 {
				if f, ok := cmd.OutOrStdout().(*os.File); ok {
					if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
						opts.Width = w
					}
				}
			}
			if opts.Mode == present.ModeANSI && app.V.GetBool("pager.enabled") {
				return withPager(cmd.Context(), app, cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
					return present.RenderDocument(cmd.Context(), w, doc, opts)
				})
			}
			return present.RenderDocument(cmd.Context(), cmd.OutOrStdout(), doc, opts)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "ansi", "output mode: ansi|html|json|plain|tui")
	cmd.Flags().StringVar(&variant, "variant", "default", "display variant: default|chat")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width; 0 uses the terminal width when stdout is a tty")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to file instead of stdout")

	return cmd
}

func newBlocksCmd() *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "blocks [file]",
		Short: "Dump the parsed block tree as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := app.Opts
			opts.Mode = present.ModeJSON
			opts.Indent = indent
			return present.RenderDocument(cmd.Context(), cmd.OutOrStdout(), parse.Document(src), opts)
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")

	return cmd
}

func newPreviewCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Preview a rendered document in a scrollable TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts := app.Opts
			opts.Mode = present.ModeTUI
			if cmd.Flags().Changed("variant") {
				v, ok := present.ParseVariant(variant)
				if !ok {
					return fmt.Errorf("unknown variant %q", variant)
				}
				opts.Variant = v
			}
			return present.RenderDocument(cmd.Context(), cmd.OutOrStdout(), parse.Document(src), opts)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "default", "display variant: default|chat")

	return cmd
}
