package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"datefix/internal/metadata"
)

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "extensions",
		Short:       "List the image extensions datefix will touch",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(metadata.SupportedExtensions(), "\n"))
			return nil
		},
	}
}
