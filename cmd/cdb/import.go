package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Frenkieli/car-dispatch/internal/ingest"
)

func newImportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a dispatch spreadsheet",
		Long:  "Reads an .xlsx, .xls, or .csv dispatch sheet and replaces the board with its rows. Previous records and their confirmations are discarded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to board config file")
	return cmd
}

func runImport(cmd *cobra.Command, configPath, file string) error {
	cfg, store, err := openStore(configPath)
	if err != nil {
		return err
	}

	f, err := openUpload(file)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := ingest.ReadFile(file, f)
	if err != nil {
		return err
	}

	n, err := store.Load(rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s) into slot %q\n", n, cfg.Storage.Slot)
	return nil
}
