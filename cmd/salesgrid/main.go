package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/salesgrid/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "salesgrid: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		exportPath string
	)

	root := &cobra.Command{
		Use:   "salesgrid",
		Short: "Spreadsheet dashboard for product sales growth",
		Long: `salesgrid shows per-product, per-year sales figures in an editable
terminal grid with cell formatting and undo/redo. Data is kept in a local
store and fetched from the growth API when no local copy exists.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{ConfigPath: configPath, ExportPath: exportPath})
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "override config path (default ~/.config/salesgrid/config.toml)")
	root.Flags().StringVar(&exportPath, "export-path", "", "xlsx file written by the export key (default ./salesgrid.xlsx)")

	root.AddCommand(
		newExportCmd(&configPath),
		newShowCmd(&configPath),
		newResetCmd(&configPath),
	)
	return root
}

func newExportCmd(configPath *string) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the spreadsheet to an xlsx file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Export(cmd.Context(), app.ExportOptions{ConfigPath: *configPath, OutputPath: output})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "salesgrid.xlsx", "Output file path")
	return cmd
}

func newShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the spreadsheet as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Show(cmd.Context(), cmd.OutOrStdout(), *configPath)
		},
	}
}

func newResetCmd(configPath *string) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved spreadsheet so the next run fetches it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Reset(app.ResetOptions{ConfigPath: *configPath, All: all})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Also delete saved preferences")
	return cmd
}
