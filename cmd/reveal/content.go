package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reveal/internal/content"
)

type contentOptions struct {
	format string
}

func newContentCmd(flags *rootFlags) *cobra.Command {
	opts := &contentOptions{}

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Print the content document",
		Long:  `Print the document the page would show, as YAML or JSON. Without --content this is the built-in campaign, a starting point for your own file.`,
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

			data, err := content.Encode(doc, content.Format(strings.ToLower(opts.format)))
			if err != nil {
				return newCommandError("print content", "encoding the document", err, "Use --format yaml or --format json.")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(content.FormatYAML), "Output format: yaml or json")

	return cmd
}
