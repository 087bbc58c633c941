package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sbdc-tools/wonflow/internal/cli"
	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/engine"
	"github.com/sbdc-tools/wonflow/internal/export"
	"github.com/sbdc-tools/wonflow/internal/model"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query expense records",
		Long: `Filter the ledger by branch, account category and date range.

Results print as a table; --export writes them to an XLSX workbook
instead. This download includes records without withholding payees.`,
		RunE: runQuery,
	}

	cmd.Flags().StringP("branch", "b", "", "Branch name (default: all branches)")
	cmd.Flags().StringP("category", "c", "", "Account category (default: all categories)")
	cmd.Flags().String("start", "", "Start date YYYY-MM-DD (default: 30 days ago)")
	cmd.Flags().String("end", "", "End date YYYY-MM-DD (default: today)")
	cmd.Flags().String("export", "", "Write results to this XLSX file instead of printing")

	return cmd
}

func runQuery(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	branch, _ := cmd.Flags().GetString("branch")
	category, _ := cmd.Flags().GetString("category")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	exportPath, _ := cmd.Flags().GetString("export")

	criteria, err := criteriaFromFlags(branch, category, start, end)
	if err != nil {
		return err
	}

	store, err := initStore(ctx)
	if err != nil {
		return common.NewUserError("failed to open the document store", err)
	}
	defer func() { _ = store.Close() }()

	session := engine.NewSession(store, slog.Default())

	if exportPath != "" {
		data, err := session.ExportSearch(ctx, criteria, export.NewXLSXSink("지출 내역"))
		if errors.Is(err, common.ErrNoResults) {
			fmt.Println(cli.FormatWarning("데이터가 없습니다."))
			return nil
		}
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportPath, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportPath, err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s 저장 완료", exportPath)))
		return nil
	}

	records, err := session.Search(ctx, criteria)
	if errors.Is(err, common.ErrNoResults) {
		fmt.Println(cli.FormatWarning("데이터가 없습니다."))
		return nil
	}
	if err != nil {
		return err
	}

	printRecordTable(records)
	return nil
}

func printRecordTable(records []model.ExpenseRecord) {
	header := []string{"지점명", "지출일자", "계정과목", "예산귀속코드", "총출금액(원천세 제외)"}
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = cli.TableHeaderStyle.Render(h)
	}
	fmt.Println(strings.Join(cells, "  "))

	for _, r := range records {
		row := []string{
			r.Branch,
			r.DateString(),
			r.Category,
			r.BudgetCode,
			r.NetAmount.String(),
		}
		for i, c := range row {
			row[i] = cli.TableCellStyle.Render(c)
		}
		fmt.Println(strings.Join(row, "  "))
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d건", len(records))))
}
