package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbdc-tools/wonflow/internal/cli"
	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/engine"
	"github.com/sbdc-tools/wonflow/internal/export"
	"github.com/sbdc-tools/wonflow/internal/service"
)

func withholdingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "Export the withholding statement",
		Long: `Export the payee-level withholding statement for a branch and period.

Each withholding payee becomes one row; records without payees carry no
withholding and are left out of this statement. Use --sheets to push the
statement to Google Sheets instead of writing a local file.`,
		RunE: runWithholding,
	}

	cmd.Flags().StringP("branch", "b", "", "Branch name (default: all branches)")
	cmd.Flags().String("start", "", "Start date YYYY-MM-DD (default: 30 days ago)")
	cmd.Flags().String("end", "", "End date YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("out", "o", "원천징수 명세.xlsx", "Output XLSX file")
	cmd.Flags().Bool("sheets", false, "Push to Google Sheets instead of writing a file")

	return cmd
}

func runWithholding(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	branch, _ := cmd.Flags().GetString("branch")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	outPath, _ := cmd.Flags().GetString("out")
	useSheets, _ := cmd.Flags().GetBool("sheets")

	criteria, err := criteriaFromFlags(branch, "", start, end)
	if err != nil {
		return err
	}

	store, err := initStore(ctx)
	if err != nil {
		return common.NewUserError("failed to open the document store", err)
	}
	defer func() { _ = store.Close() }()

	var sink service.ExportSink
	if useSheets {
		config := export.DefaultSheetsConfig()
		if err := config.LoadFromEnv(); err != nil {
			return common.NewUserError("Google Sheets is not configured", err)
		}
		sink, err = export.NewSheetsSink(ctx, config, slog.Default())
		if err != nil {
			return err
		}
	} else {
		sink = export.NewXLSXSink("원천징수 명세")
	}

	session := engine.NewSession(store, slog.Default())

	data, err := session.WithholdingStatement(ctx, criteria, sink)
	if errors.Is(err, common.ErrNoResults) {
		fmt.Println(cli.FormatWarning("선택한 기간 및 지점에 원천징수 대상자 데이터가 없습니다."))
		return nil
	}
	if err != nil {
		return err
	}

	if useSheets {
		fmt.Println(cli.FormatSuccess("원천징수 명세를 Google Sheets에 업로드했습니다"))
		return nil
	}

	if err := os.WriteFile(outPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s 저장 완료", outPath)))
	return nil
}
