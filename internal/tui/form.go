package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/rebalance/internal/cli"
	"github.com/theirongolddev/rebalance/internal/ledger"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/money"
)

// txFormValues is bound to the huh form fields, so it must outlive copies
// of App and is held by pointer.
type txFormValues struct {
	Type     string
	Amount   string
	Name     string
	Need     bool
	Feelings []string
	Note     string

	at time.Time
}

func (v *txFormValues) transactionForm() model.TransactionForm {
	return model.TransactionForm{
		Type:     model.TxType(v.Type),
		Amount:   strings.TrimSpace(v.Amount),
		Name:     strings.TrimSpace(v.Name),
		Note:     strings.TrimSpace(v.Note),
		IsNeed:   v.Need,
		Feelings: v.Feelings,
	}
}

func validateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("enter an amount")
	}
	if money.SafeInt(s) <= 0 {
		return errors.New("enter a whole amount above zero")
	}
	return nil
}

func newTxForm(v *txFormValues) *huh.Form {
	feelings := make([]huh.Option[string], len(model.FeelingTags))
	for i, f := range model.FeelingTags {
		feelings[i] = huh.NewOption(f, f)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("New transaction").
				Description("On "+cli.FormatDate(v.at)),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Expense", string(model.Expense)),
					huh.NewOption("Income", string(model.Income)),
				).
				Value(&v.Type),
			huh.NewInput().
				Title("Amount").
				Value(&v.Amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Name").
				Placeholder(ledger.DefaultTxName).
				Value(&v.Name),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Was it a need or a want?").
				Affirmative("Need").
				Negative("Want").
				Value(&v.Need),
		).WithHideFunc(func() bool { return v.Type == string(model.Income) }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("How did it feel?").
				Options(feelings...).
				Value(&v.Feelings),
			huh.NewText().
				Title("Note").
				Value(&v.Note),
		),
	)
}

// formDate is the timestamp a new transaction gets: the selected calendar
// day at the current wall-clock time when on the Calendar tab, else now.
func (a App) formDate() time.Time {
	now := a.app.Now()
	if a.activeTab != tabCalendar {
		return now
	}
	return time.Date(a.viewYear, time.Month(a.viewMonth), a.viewDay,
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
}

func (a App) openForm() (tea.Model, tea.Cmd) {
	a.formVals = &txFormValues{
		Type: string(model.Expense),
		Need: true,
		at:   a.formDate(),
	}
	a.form = newTxForm(a.formVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.height - 2)
	}
	a.notice = ""
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm()
		a.form, a.formVals = nil, nil
		return a, nil
	case huh.StateAborted:
		a.form, a.formVals = nil, nil
		a.flash("cancelled")
		return a, nil
	}
	return a, cmd
}

func (a *App) submitForm() {
	tx, _, err := a.app.SaveTransaction(a.formVals.transactionForm(), a.formVals.at, 0)
	if err != nil {
		a.warn("%v", err)
		return
	}
	a.flash("saved %s %s", tx.Name, cli.FormatTxAmount(tx))
	a.checkPersist()
}
