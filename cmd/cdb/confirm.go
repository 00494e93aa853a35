package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfirmCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "confirm ID",
		Short: "Confirm a dispatch record",
		Long:  "Marks every record carrying the given id as confirmed and stamps the confirmation time. An id that matches nothing is reported, not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfirm(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to board config file")
	return cmd
}

func runConfirm(cmd *cobra.Command, configPath, id string) error {
	_, store, err := openStore(configPath)
	if err != nil {
		return err
	}

	n, err := store.Confirm(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if n == 0 {
		fmt.Fprintf(out, "No record with id %q on the board\n", id)
		return nil
	}
	fmt.Fprintf(out, "Confirmed %d record(s) with id %q\n", n, id)
	return nil
}
