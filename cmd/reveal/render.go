package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reveal/internal/config"
	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/tui/page"
)

type renderOptions struct {
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the whole page with every section revealed",
		Long:  `Render the page once without interaction. Images are loaded before printing and all sections are shown. This is what reveal does when its output is not a terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd, environment())
			if err != nil {
				return err
			}
			doc, err := loadDocument(cfg.ContentPath)
			if err != nil {
				return err
			}
			return writeSnapshot(cmd, cfg, doc, opts.width)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Output width in columns; defaults to the terminal width or 80")

	return cmd
}

func writeSnapshot(cmd *cobra.Command, cfg config.Config, doc *content.Document, width int) error {
	out := cmd.OutOrStdout()
	tty := isTerminal(out)
	if width <= 0 {
		width = terminalWidth(out)
	}

	mode := media.ModeASCII
	if tty {
		mode = media.ModeTrueColor
	}
	opts, err := pageOptions(cfg, mode, tty)
	if err != nil {
		return err
	}

	snapshot, err := page.Snapshot(cmd.Context(), doc, opts, width)
	if err != nil {
		return newCommandError("render", "rendering the page", err, "Retry with --remote-images=false if image loading hangs.")
	}
	_, err = io.WriteString(out, snapshot)
	return err
}
