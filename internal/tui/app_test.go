package tui

import (
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/rebalance/internal/app"
	"github.com/theirongolddev/rebalance/internal/clock"
	"github.com/theirongolddev/rebalance/internal/model"
	"github.com/theirongolddev/rebalance/internal/store"
	"github.com/theirongolddev/rebalance/internal/tui/components"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (App, *app.App) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "rebalance.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	core := app.New(st, app.Config{
		Clock:           clock.NewFixed(testNow),
		Logger:          log.New(io.Discard, "", 0),
		Settings:        app.DefaultSettings(),
		SeedExampleDebt: true,
	})
	m := NewApp(core)
	m.width, m.height = 120, 40
	return m, core
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(App)
		if !ok {
			t.Fatalf("Update returned %T, want App", next)
		}
	}
	return m
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0
		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			if got := a.tabAtX(pos + w/2); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, pos+w/2, got, i)
			}
			pos += w + 1
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("x past the last tab -> %d, want -1", got)
		}
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	m, _ := newTestApp(t)
	x := components.TabVisualWidth(components.Tabs[0], true) + 1 + 2
	next, _ := m.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := next.(App).activeTab; got != tabCalendar {
		t.Fatalf("activeTab = %d, want %d", got, tabCalendar)
	}
}

func TestTabKeys(t *testing.T) {
	m, _ := newTestApp(t)
	cases := []struct {
		key  string
		want int
	}{
		{"d", tabDebts},
		{"i", tabInsight},
		{"r", tabReality},
		{"c", tabCalendar},
		{"h", tabHome},
		{"tab", tabCalendar},
	}
	for _, c := range cases {
		m = press(t, m, c.key)
		if m.activeTab != c.want {
			t.Fatalf("after %q activeTab = %d, want %d", c.key, m.activeTab, c.want)
		}
	}
}

func TestHomeSetsAndClearsMood(t *testing.T) {
	m, core := newTestApp(t)

	m = press(t, m, "j", "j", "enter")
	if got := core.Snapshot().Mood; got == nil || *got != model.Moods[2] {
		t.Fatalf("mood = %v, want %s", got, model.Moods[2])
	}

	m = press(t, m, "x")
	if got := core.Snapshot().Mood; got != nil {
		t.Fatalf("mood = %v after clear, want nil", *got)
	}
	if m.noticeWarn {
		t.Fatalf("unexpected warning %q", m.notice)
	}
}

func TestNewAppStartsCursorOnCurrentMood(t *testing.T) {
	_, core := newTestApp(t)
	core.SetMood(model.MoodHope)
	if got := NewApp(core).moodCursor; got != len(model.Moods)-1 {
		t.Fatalf("moodCursor = %d, want %d", got, len(model.Moods)-1)
	}
}

func TestDebtPayRequiresConfirmationWithinMonth(t *testing.T) {
	m, core := newTestApp(t)
	id := core.Snapshot().Debts[0].ID

	m = press(t, m, "d", "p")
	d, _ := core.Debt(id)
	if got := d.Remaining.Int64(); got != 232000 {
		t.Fatalf("remaining after first pay = %d, want 232000", got)
	}

	m = press(t, m, "p")
	d, _ = core.Debt(id)
	if got := d.Remaining.Int64(); got != 232000 {
		t.Fatalf("second pay in the same month should wait for confirmation, remaining = %d", got)
	}
	if !m.noticeWarn || m.confirmPay != id {
		t.Fatalf("expected a pending confirmation, got notice %q", m.notice)
	}

	m = press(t, m, "p")
	d, _ = core.Debt(id)
	if got := d.Remaining.Int64(); got != 224000 {
		t.Fatalf("remaining after confirmed pay = %d, want 224000", got)
	}
	if m.confirmPay != 0 {
		t.Fatal("confirmation should reset after paying")
	}

	if got := len(core.Snapshot().Transactions); got != 2 {
		t.Fatalf("transactions = %d, want 2 repayments", got)
	}
}

func TestDebtPayConfirmationCancelledByEsc(t *testing.T) {
	m, core := newTestApp(t)
	id := core.Snapshot().Debts[0].ID

	m = press(t, m, "d", "p", "p", "esc", "p")
	d, _ := core.Debt(id)
	if got := d.Remaining.Int64(); got != 232000 {
		t.Fatalf("remaining = %d, want 232000", got)
	}
	if m.confirmPay != id {
		t.Fatal("p after esc should ask again")
	}
}

func TestDebtPayWithoutMonthlyPaymentWarns(t *testing.T) {
	m, core := newTestApp(t)
	m = press(t, m, "d", "n", "p")
	if !m.noticeWarn {
		t.Fatalf("expected a warning, got %q", m.notice)
	}
	if got := len(core.Snapshot().Transactions); got != 0 {
		t.Fatalf("transactions = %d, want 0", got)
	}
	if m.debtCursor != 1 {
		t.Fatalf("debtCursor = %d, want the new debt", m.debtCursor)
	}
}

func TestCalendarNavigation(t *testing.T) {
	m, _ := newTestApp(t)
	m = press(t, m, "c")
	if m.viewYear != 2026 || m.viewMonth != 3 || m.viewDay != 10 {
		t.Fatalf("start = %d-%d-%d", m.viewYear, m.viewMonth, m.viewDay)
	}

	m = press(t, m, "[")
	if m.viewMonth != 2 || m.viewDay != 10 {
		t.Fatalf("after [ = %d-%d", m.viewMonth, m.viewDay)
	}

	m = press(t, m, "down", "down", "down")
	if m.viewMonth != 3 || m.viewDay != 3 {
		t.Fatalf("three weeks on from Feb 10 = %d-%d, want 3-3", m.viewMonth, m.viewDay)
	}

	m = press(t, m, "left", "left", "left")
	if m.viewMonth != 2 || m.viewDay != 28 {
		t.Fatalf("back across the month edge = %d-%d, want 2-28", m.viewMonth, m.viewDay)
	}

	m = press(t, m, "t")
	if m.viewMonth != 3 || m.viewDay != 10 {
		t.Fatalf("today = %d-%d", m.viewMonth, m.viewDay)
	}
}

func TestMonthNavClampsDay(t *testing.T) {
	m, _ := newTestApp(t)
	m.viewYear, m.viewMonth, m.viewDay = 2026, 1, 31
	m = press(t, m, "c", "]")
	if m.viewMonth != 2 || m.viewDay != 28 {
		t.Fatalf("Jan 31 + ] = %d-%d, want 2-28", m.viewMonth, m.viewDay)
	}
	m = press(t, m, "[", "[")
	if m.viewYear != 2025 || m.viewMonth != 12 {
		t.Fatalf("two months back = %d-%d, want 2025-12", m.viewYear, m.viewMonth)
	}
}

func TestRealityToggleIncludeDebt(t *testing.T) {
	m, core := newTestApp(t)
	before := core.Snapshot().Settings.IncludeDebtInSurvival

	m = press(t, m, "r", "t")
	if got := core.Snapshot().Settings.IncludeDebtInSurvival; got == before {
		t.Fatal("t should flip includeDebtInSurvival")
	}
	_ = press(t, m, "t")
	if got := core.Snapshot().Settings.IncludeDebtInSurvival; got != before {
		t.Fatal("second t should flip it back")
	}
}

func TestFormDateFollowsCalendarSelection(t *testing.T) {
	m, _ := newTestApp(t)
	if got := m.formDate(); !got.Equal(testNow) {
		t.Fatalf("formDate on Home = %v, want now", got)
	}

	m = press(t, m, "c", "left", "left")
	got := m.formDate()
	want := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("formDate on Calendar = %v, want %v", got, want)
	}
}

func TestSubmitFormSavesTransaction(t *testing.T) {
	m, core := newTestApp(t)
	core.SetMood(model.MoodCalm)

	m.formVals = &txFormValues{
		Type:     string(model.Expense),
		Amount:   " 1250 ",
		Name:     " Groceries ",
		Need:     false,
		Feelings: []string{"happy"},
		at:       testNow,
	}
	m.submitForm()

	txs := core.Snapshot().Transactions
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	tx := txs[0]
	if tx.Name != "Groceries" || tx.Amount.Int64() != 1250 {
		t.Fatalf("saved %q %d", tx.Name, tx.Amount.Int64())
	}
	if tx.IsNeed == nil || *tx.IsNeed {
		t.Fatal("expected a want")
	}
	if tx.MoodAtTime == nil || *tx.MoodAtTime != model.MoodCalm {
		t.Fatal("mood at time not captured")
	}
	if m.noticeWarn {
		t.Fatalf("unexpected warning %q", m.notice)
	}
}

func TestSubmitFormRejectsEmptyAmount(t *testing.T) {
	m, core := newTestApp(t)
	m.formVals = &txFormValues{Type: string(model.Expense), at: testNow}
	m.submitForm()
	if !m.noticeWarn {
		t.Fatal("expected a warning")
	}
	if len(core.Snapshot().Transactions) != 0 {
		t.Fatal("nothing should be saved")
	}
}

func TestValidateAmount(t *testing.T) {
	for _, ok := range []string{"1", "1250", " 40000 "} {
		if err := validateAmount(ok); err != nil {
			t.Errorf("validateAmount(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "  ", "0", "-5", "abc"} {
		if err := validateAmount(bad); err == nil {
			t.Errorf("validateAmount(%q) should fail", bad)
		}
	}
}

func TestOpenFormAndCancel(t *testing.T) {
	m, _ := newTestApp(t)
	m = press(t, m, "a")
	if m.form == nil || m.formVals == nil {
		t.Fatal("a should open the form")
	}
	if m.formVals.Type != string(model.Expense) || !m.formVals.Need {
		t.Fatalf("form defaults = %+v", *m.formVals)
	}
	// q belongs to the form while it is open.
	m = press(t, m, "q")
	if m.form == nil {
		t.Fatal("q should not close the form")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	m, core := newTestApp(t)
	_, _, err := core.SaveTransaction(model.TransactionForm{
		Type: model.Expense, Amount: "1250", Name: "Groceries", IsNeed: true, Feelings: []string{"anxious"},
	}, testNow, 0)
	if err != nil {
		t.Fatal(err)
	}

	wants := map[int]string{
		tabHome:     "How are you feeling?",
		tabCalendar: "Zero-spend days",
		tabDebts:    "Personal loan",
		tabInsight:  "Top feelings",
		tabReality:  "Runway",
	}
	for tab, want := range wants {
		m.activeTab = tab
		out := m.View()
		if !strings.Contains(out, want) {
			t.Errorf("tab %d view missing %q", tab, want)
		}
		if h := strings.Count(out, "\n") + 1; h != m.height {
			t.Errorf("tab %d view height = %d, want %d", tab, h, m.height)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	m, _ := newTestApp(t)
	m.width = 60
	if out := m.View(); !strings.Contains(out, "too narrow") {
		t.Fatalf("narrow view = %q", out)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestApp(t)
	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatal("? should show help")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatal("help view missing title")
	}
	m = press(t, m, "d")
	if m.showHelp || m.activeTab != tabHome {
		t.Fatal("any key should only dismiss help")
	}
}
