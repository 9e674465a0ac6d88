package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/api"
	"shrink/internal/recents"
)

func newRecentsCommand(ctx *commandContext) *cobra.Command {
	recentsCmd := &cobra.Command{
		Use:   "recents",
		Short: "List recently modified videos in the directories you compress from",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				entries, err := svc.RecentFiles(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No recent files. Compress something first.")
					return nil
				}
				fmt.Fprintln(out, renderRecentsTable(entries))
				return nil
			})
		},
	}

	recentsCmd.AddCommand(newRecentsClearCommand(ctx))
	recentsCmd.AddCommand(newRecentsDirsCommand(ctx))

	return recentsCmd
}

func newRecentsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recorded directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				if err := svc.ClearRecentDirectories(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Recent directories cleared")
				return nil
			})
		},
	}
}

func newRecentsDirsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "List the recorded directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *api.Service) error {
				dirs, err := svc.RecentDirectories(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(dirs) == 0 {
					fmt.Fprintln(out, "No directories recorded")
					return nil
				}
				for _, dir := range dirs {
					fmt.Fprintln(out, dir)
				}
				return nil
			})
		},
	}
}

func renderRecentsTable(entries []recents.FileEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		thumb := yesNo(entry.Thumbnail != "")
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.ID),
			entry.Filename,
			entry.Folder,
			formatSize(entry.Size),
			entry.ModTime.Format("2006-01-02 15:04"),
			thumb,
		})
	}
	return renderTable(
		[]string{"#", "File", "Folder", "Size", "Modified", "Thumb"},
		rows,
		"#", "Size",
	)
}
