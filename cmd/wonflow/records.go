package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbdc-tools/wonflow/internal/cli"
	"github.com/sbdc-tools/wonflow/internal/common"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Raw store primitives for individual records",
	}

	cmd.AddCommand(recordsGetCmd())
	cmd.AddCommand(recordsUpdateCmd())
	cmd.AddCommand(recordsDeleteCmd())

	return cmd
}

func recordsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return common.NewUserError("failed to open the document store", err)
			}
			defer func() { _ = store.Close() }()

			record, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}
}

func recordsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update KEY",
		Short: "Patch stored fields of one record",
		Long: `Apply a JSON field patch to the stored document, e.g.

  wonflow records update KEY --patch '{"description":"corrected"}'

Patch keys address the stored field names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			patchJSON, _ := cmd.Flags().GetString("patch")

			var patch map[string]any
			if err := json.Unmarshal([]byte(patchJSON), &patch); err != nil {
				return fmt.Errorf("invalid patch: %w", err)
			}

			store, err := initStore(ctx)
			if err != nil {
				return common.NewUserError("failed to open the document store", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Update(ctx, args[0], patch); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("record updated"))
			return nil
		},
	}

	cmd.Flags().String("patch", "", "JSON object of fields to update")
	_ = cmd.MarkFlagRequired("patch")

	return cmd
}

func recordsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return common.NewUserError("failed to open the document store", err)
			}
			defer func() { _ = store.Close() }()

			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("record deleted"))
			return nil
		},
	}
}
