package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/prompt"
	"github.com/tally-dev/tally/internal/report"
	"github.com/tally-dev/tally/internal/sessionlog"
)

const menuText = `
=== Tally Menu ===
1) Add Transaction
2) View Summary
3) View Category Report
4) View All Transactions
5) Quit
==================
`

// runMenu drives the interactive loop until the user quits or input
// ends. The ledger lives exactly as long as the loop; nothing is
// persisted.
func runMenu(in io.Reader, out io.Writer, l *ledger.Ledger, cfg *config.Config) error {
	p := prompt.New(in, out)

	for {
		fmt.Fprint(out, menuText)
		choice, err := p.Line("Enter choice: ")
		if errors.Is(err, io.EOF) {
			// End of input ends the session like an explicit quit.
			auditQuit(cfg, l)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := addTransaction(p, out, l, cfg); err != nil {
				if errors.Is(err, io.EOF) {
					auditQuit(cfg, l)
					return nil
				}
				return err
			}
		case "2":
			report.WriteSummary(out, l, cfg.Currency)
		case "3":
			report.WriteCategoryReport(out, l, cfg.Currency)
		case "4":
			report.WriteTransactions(out, l, cfg.Currency)
		case "5":
			fmt.Fprintln(out, "Goodbye!")
			auditQuit(cfg, l)
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Please try again.")
		}
	}
}

// addTransaction collects one transaction field by field and records
// it. Only the amount can fail to parse, and that re-prompts inside
// the prompter; every other answer is accepted as-is.
func addTransaction(p *prompt.Prompter, out io.Writer, l *ledger.Ledger, cfg *config.Config) error {
	description, err := p.Line("Enter description: ")
	if err != nil {
		return err
	}

	amount, err := p.Amount("Enter amount: ")
	if err != nil {
		return err
	}

	recurring, err := p.YesNo("Is this recurring? (yes/no): ")
	if err != nil {
		return err
	}

	date, err := p.Line(fmt.Sprintf("Enter date (%s): ", cfg.DateHint))
	if err != nil {
		return err
	}

	kindText, err := p.Line("Enter type (income/expense): ")
	if err != nil {
		return err
	}

	category, err := p.Line("Enter category: ")
	if err != nil {
		return err
	}

	txn := l.Add(ledger.AddParams{
		Description: description,
		Amount:      amount,
		Recurring:   recurring,
		Date:        date,
		Kind:        model.ParseKind(kindText),
		Category:    category,
	})

	logger.Debug().
		Int("id", txn.ID).
		Float64("amount", txn.Amount).
		Str("kind", string(txn.Kind)).
		Str("category", txn.Category).
		Msg("transaction added")
	fmt.Fprintln(out, "Transaction added successfully!")

	auditAdd(cfg, txn)
	return nil
}

func auditAdd(cfg *config.Config, txn model.Transaction) {
	if !cfg.SessionLog.Enabled {
		return
	}
	err := sessionlog.Append(cfg.SessionLog.Dir, []sessionlog.Entry{{
		Timestamp:     time.Now(),
		Action:        "add",
		Details:       fmt.Sprintf("%s (%s)", txn.Description, txn.Category),
		TransactionID: txn.ID,
	}})
	if err != nil {
		logger.Warn().Err(err).Msg("session log append failed")
	}
}

func auditImport(cfg *config.Config, path string, count int) {
	if !cfg.SessionLog.Enabled {
		return
	}
	err := sessionlog.Append(cfg.SessionLog.Dir, []sessionlog.Entry{{
		Timestamp: time.Now(),
		Action:    "import",
		Details:   fmt.Sprintf("%s: %d transactions", path, count),
	}})
	if err != nil {
		logger.Warn().Err(err).Msg("session log append failed")
	}
}

func auditQuit(cfg *config.Config, l *ledger.Ledger) {
	if !cfg.SessionLog.Enabled {
		return
	}
	err := sessionlog.Append(cfg.SessionLog.Dir, []sessionlog.Entry{{
		Timestamp: time.Now(),
		Action:    "quit",
		Details:   fmt.Sprintf("%d transactions this session", l.Count()),
	}})
	if err != nil {
		logger.Warn().Err(err).Msg("session log append failed")
	}
}
