package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/api"
)

func newRevealCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <path>",
		Short: "Show a file in the OS file browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				if err := svc.Reveal(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Revealed %s\n", args[0])
				return nil
			})
		},
	}
}
