package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reveal/internal/content"
	"github.com/alexisbeaulieu97/reveal/internal/logger"
	"github.com/alexisbeaulieu97/reveal/internal/media"
	"github.com/alexisbeaulieu97/reveal/internal/tui/page"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "reveal",
		Short:         "Reveal shows a campaign page in the terminal",
		Long:          `Reveal renders a single-page campaign: a hero, sections that appear as they scroll into view, a navigation menu and a fullscreen image viewer.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd, flags)
		},
	}

	flags.register(cmd)

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newContentCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runPage runs the interactive page. Output that is not a terminal gets a
// snapshot instead.
func runPage(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := flags.settings(cmd, environment())
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg.ContentPath)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return writeSnapshot(cmd, cfg, doc, 0)
	}

	log, closer, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return newCommandError("start", "opening the log file", err, "Check that --log-file points to a writable location.")
	}
	defer closer.Close()

	for _, w := range content.Check(doc) {
		log.WithFields(map[string]any{"field": w.Field}).Warn(w.Message)
	}

	opts, err := pageOptions(cfg, media.ModeTrueColor, true)
	if err != nil {
		return err
	}
	opts.Logger = log
	opts.Clipboard = page.SystemClipboard()

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	log.WithFields(map[string]any{
		"sections": len(doc.Sections),
		"content":  cfg.ContentPath,
	}).Info("starting page")

	final, err := tea.NewProgram(page.New(doc, opts), programOpts...).Run()
	if m, ok := final.(page.Model); ok {
		m.Unmount()
	}
	if err != nil {
		log.Error(err, "page exited with an error")
		return fmt.Errorf("run page: %w", err)
	}

	log.Info("page closed")
	return nil
}
