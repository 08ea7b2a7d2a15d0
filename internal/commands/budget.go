package commands

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/budget"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/output"
)

// budgetCtx opens the budget manager for a command run.
type budgetCtx struct {
	opts *options
	file string
}

func (b *budgetCtx) open() (*env, *budget.Manager, error) {
	e, err := loadEnv(b.opts)
	if err != nil {
		return nil, nil, err
	}
	m, err := budget.Open(e.dataPath(b.file, e.cfg.TransactionsPath(e.home)))
	if err != nil {
		return nil, nil, err
	}
	return e, m, nil
}

func newBudgetCommand(opts *options) *cobra.Command {
	b := &budgetCtx{opts: opts}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track income and expenses",
	}
	cmd.PersistentFlags().StringVar(&b.file, "file", "", "transactions file (default from config)")

	cmd.AddCommand(
		newBudgetListCommand(b),
		newBudgetAddCommand(b, model.TransactionIncome),
		newBudgetAddCommand(b, model.TransactionExpense),
		newBudgetTotalCommand(b),
		newBudgetBreakdownCommand(b),
		newBudgetExportCommand(b),
		newBudgetImportCommand(b),
	)
	return cmd
}

func newBudgetListCommand(b *budgetCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := b.open()
			if err != nil {
				return err
			}
			output.FormatTransactions(cmd.OutOrStdout(), m.All())
			return nil
		},
	}
}

func newBudgetAddCommand(b *budgetCtx, typ model.TransactionType) *cobra.Command {
	return &cobra.Command{
		Use:   string(typ) + " <category> <amount>",
		Short: "Add an " + string(typ) + " transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}

			e, m, err := b.open()
			if err != nil {
				return err
			}
			if err := m.Add(typ, args[0], amount); err != nil {
				return err
			}
			e.commit(fmt.Sprintf("budget: add %s %s %s", typ, args[0], output.FormatAmount(amount)), m.Path())

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newBudgetTotalCommand(b *budgetCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show income minus expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := b.open()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Income:    %s\n", output.FormatAmount(m.Income()))
			fmt.Fprintf(out, "Expenses:  %s\n", output.FormatAmount(m.Expenses()))
			fmt.Fprintf(out, "Remaining: %s\n", output.FormatAmount(m.Total()))
			return nil
		},
	}
}

func newBudgetBreakdownCommand(b *budgetCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show expenses by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := b.open()
			if err != nil {
				return err
			}
			output.FormatBreakdown(cmd.OutOrStdout(), m.Breakdown())
			return nil
		},
	}
}

func newBudgetExportCommand(b *budgetCtx) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Write transactions to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := b.open()
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := budget.WriteTransactions(f, m.All()); err != nil {
				return fmt.Errorf("exporting transactions: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", m.Len(), args[0])
			return nil
		},
	}
}

func newBudgetImportCommand(b *budgetCtx) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := importer.DefaultRegistry().Lookup(format)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			txns, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			e, m, err := b.open()
			if err != nil {
				return err
			}
			if err := m.Import(txns); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}
			e.commit(fmt.Sprintf("budget: import %d transactions", len(txns)), m.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions\n", len(txns))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "tally", "input format: tally or chase")

	return cmd
}
