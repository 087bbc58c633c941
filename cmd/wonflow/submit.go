package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sbdc-tools/wonflow/internal/cli"
	"github.com/sbdc-tools/wonflow/internal/common"
	"github.com/sbdc-tools/wonflow/internal/engine"
	"github.com/sbdc-tools/wonflow/internal/model"
)

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an expense record",
		Long: `Submit one expenditure record to the ledger.

The withholding taxes are derived from the gross amount and shown for
confirmation before anything is written to the store.`,
		RunE: runSubmit,
	}

	cmd.Flags().StringP("branch", "b", "", "Branch name (e.g. 강남지점)")
	cmd.Flags().StringP("category", "c", "", "Account category")
	cmd.Flags().String("code", "", "Budget code within the category")
	cmd.Flags().StringP("date", "d", time.Now().Format(dateLayout), "Expenditure date (YYYY-MM-DD)")
	cmd.Flags().StringP("amount", "a", "", "Gross amount in won")
	cmd.Flags().BoolP("withholding", "w", false, "Withholding tax applies")
	cmd.Flags().StringArray("payee", nil, "Withholding payee as NAME=AMOUNT (repeatable)")
	cmd.Flags().String("description", "", "Free-text description")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	_ = cmd.MarkFlagRequired("branch")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("amount")

	_ = viper.BindPFlag("submit.yes", cmd.Flags().Lookup("yes"))

	return cmd
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	input, err := submissionInputFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := initStore(ctx)
	if err != nil {
		return common.NewUserError("failed to open the document store", err)
	}
	defer func() { _ = store.Close() }()

	session := engine.NewSession(store, slog.Default())

	pending, err := session.PrepareSubmission(ctx, input)
	if err != nil {
		return err
	}

	record := pending.Record
	fmt.Println(cli.RenderBox("지출 결의 내용", formatPendingRecord(record)))

	approved := cmd.Flags().Changed("yes") || viper.GetBool("submit.yes")
	if !approved {
		fmt.Print(cli.FormatPrompt("원천징수 여부를 확인하셨습니까? (y/n)"))
		reader := cli.NewReader(cmd.InOrStdin())
		approved, err = reader.Confirm(ctx)
		if err != nil {
			return err
		}
	}

	decision := engine.DecisionCancel
	if approved {
		decision = engine.DecisionConfirm
	}

	saved, err := session.Confirm(ctx, decision)
	if errors.Is(err, common.ErrCancelled) {
		fmt.Println(cli.FormatWarning("제출을 중단합니다. 원천징수 여부를 확인해주세요."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("기록이 성공적으로 저장되었습니다 (key: %s)", saved.Key)))
	return nil
}

func submissionInputFromFlags(cmd *cobra.Command) (model.RecordInput, error) {
	branch, _ := cmd.Flags().GetString("branch")
	category, _ := cmd.Flags().GetString("category")
	code, _ := cmd.Flags().GetString("code")
	dateStr, _ := cmd.Flags().GetString("date")
	amountStr, _ := cmd.Flags().GetString("amount")
	withholding, _ := cmd.Flags().GetBool("withholding")
	payeeFlags, _ := cmd.Flags().GetStringArray("payee")
	description, _ := cmd.Flags().GetString("description")

	date, err := parseDate(dateStr, "date")
	if err != nil {
		return model.RecordInput{}, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return model.RecordInput{}, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	payees, err := parsePayees(payeeFlags)
	if err != nil {
		return model.RecordInput{}, err
	}

	return model.RecordInput{
		Branch:                branch,
		Date:                  date,
		Category:              category,
		BudgetCode:            code,
		GrossAmount:           amount,
		WithholdingApplicable: withholding,
		Payees:                payees,
		Description:           description,
	}, nil
}

// parsePayees parses repeated NAME=AMOUNT flag values in order.
func parsePayees(values []string) ([]model.Payee, error) {
	if len(values) == 0 {
		return nil, nil
	}
	payees := make([]model.Payee, 0, len(values))
	for _, v := range values {
		name, amountStr, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid payee %q: expected NAME=AMOUNT", v)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
		if err != nil {
			return nil, fmt.Errorf("invalid payee amount in %q: %w", v, err)
		}
		payees = append(payees, model.Payee{
			Name:     strings.TrimSpace(name),
			Withheld: amount,
		})
	}
	return payees, nil
}

func formatPendingRecord(r *model.ExpenseRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "지점명: %s\n", r.Branch)
	fmt.Fprintf(&b, "지출일자: %s\n", r.DateString())
	fmt.Fprintf(&b, "계정과목: %s\n", r.Category)
	fmt.Fprintf(&b, "예산귀속코드: %s\n", r.BudgetCode)
	fmt.Fprintf(&b, "총출금액: %s원\n", r.GrossAmount.String())
	fmt.Fprintf(&b, "기타소득세: %s원\n", r.IncomeTax.String())
	fmt.Fprintf(&b, "기타지방소득세: %s원\n", r.LocalTax.String())
	fmt.Fprintf(&b, "총출금액(원천세 제외): %s원", r.NetAmount.String())
	for _, p := range r.Payees {
		fmt.Fprintf(&b, "\n[%s] 원천징수액: %s원", p.Name, p.Withheld.String())
	}
	return b.String()
}
