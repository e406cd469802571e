package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reveal/internal/content"
)

type validateOptions struct {
	strict bool
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a content document",
		Long:  `Load a content document, report schema errors and list references that do not resolve, such as navigation items without a section.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.settings(cmd, environment())
			if err != nil {
				return err
			}
			path := cfg.ContentPath
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(cmd, path, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any warning is reported")

	return cmd
}

func runValidate(cmd *cobra.Command, path string, opts *validateOptions) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	name := path
	if name == "" {
		name = "built-in content"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d sections, %d nav items\n", name, len(doc.Sections), len(doc.Nav))

	warnings := content.Check(doc)
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if len(warnings) == 0 {
		fmt.Fprintln(out, "OK")
		return nil
	}
	if opts.strict {
		return newCommandError("validate", name, fmt.Errorf("%d warning(s) reported", len(warnings)), "Fix the warnings above or run without --strict.")
	}
	return nil
}
