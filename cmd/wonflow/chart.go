package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sbdc-tools/wonflow/internal/chart"
	"github.com/sbdc-tools/wonflow/internal/cli"
	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/engine"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render per-category spending as a bar chart",
		RunE:  runChart,
	}

	cmd.Flags().StringP("branch", "b", "", "Branch name (default: all branches)")
	cmd.Flags().StringP("category", "c", "", "Account category (default: all categories)")
	cmd.Flags().String("start", "", "Start date YYYY-MM-DD (default: 30 days ago)")
	cmd.Flags().String("end", "", "End date YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("out", "o", "spending.png", "Output image file")

	return cmd
}

func runChart(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	branch, _ := cmd.Flags().GetString("branch")
	category, _ := cmd.Flags().GetString("category")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	outPath, _ := cmd.Flags().GetString("out")

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

	totals, err := session.CategoryTotals(ctx, criteria)
	if errors.Is(err, common.ErrNoResults) {
		fmt.Println(cli.FormatWarning("데이터가 없습니다."))
		return nil
	}
	if err != nil {
		return err
	}

	if err := chart.SaveCategoryBars(totals, outPath); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s 저장 완료", outPath)))
	return nil
}
