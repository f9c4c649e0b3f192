package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/packlist/internal/model"
	"github.com/Makepad-fr/packlist/internal/store"
	"github.com/Makepad-fr/packlist/internal/ui"
)

func init() { ui.SetTheme("mono") }

type session struct {
	store  *store.ListStore
	shell  *Shell
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newSession(script string, opt Options, seed ...model.Item) *session {
	st := store.New(seed)
	var out, errOut bytes.Buffer
	return &session{
		store:  st,
		shell:  New(st, strings.NewReader(script), &out, &errOut, opt, nil),
		out:    &out,
		errOut: &errOut,
	}
}

func descriptions(items []model.Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Description)
	}
	return out
}

func TestShell_AddListsInCallOrder(t *testing.T) {
	s := newSession(`
# comment lines and blanks are skipped

add Passports
add -q 12 Socks
add -p "Charger"
ls
`, Options{})

	require.Equal(t, 0, s.shell.Run(context.Background()))
	items := s.store.Items()
	require.Equal(t, []string{"Passports", "Socks", "Charger"}, descriptions(items))
	require.Equal(t, 12, items[1].Quantity)
	require.True(t, items[2].Packed)
	require.Contains(t, s.out.String(), " 2. [ ] Socks - 12")
	require.Contains(t, s.out.String(), "You have 3 items on your list, and you already packed 1 (33%)")
}

func TestShell_AddRejectsEmptyDescription(t *testing.T) {
	s := newSession("add\nadd -q 3 \"  \"\n", Options{})

	require.Equal(t, exitUsage, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())
	require.Contains(t, s.errOut.String(), "please enter an item description")
}

func TestShell_AddRejectsQuantityOutOfRange(t *testing.T) {
	s := newSession("add -q 21 Socks\n", Options{MaxQuantity: 20})

	require.Equal(t, exitError, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())
}

func TestShell_ToggleAndRemoveUseCurrentView(t *testing.T) {
	seed := []model.Item{
		{ID: "1", Description: "Socks", Quantity: 1},
		{ID: "2", Description: "Charger", Quantity: 1},
		{ID: "3", Description: "Passports", Quantity: 1},
	}
	s := newSession("sort description\ntoggle 1\nrm 3\n", Options{}, seed...)

	require.Equal(t, 0, s.shell.Run(context.Background()))
	charger, ok := s.store.Get("2")
	require.True(t, ok)
	require.True(t, charger.Packed, "index 1 under description sort is Charger")
	_, ok = s.store.Get("1")
	require.False(t, ok, "index 3 under description sort is Socks")
	require.Equal(t, []string{"Charger", "Passports"}, descriptions(s.store.Items()), "stored order kept")
}

func TestShell_IndexErrors(t *testing.T) {
	s := newSession("toggle 5\nrm x\nrm\n", Options{}, model.Item{ID: "1", Description: "A", Quantity: 1})

	require.Equal(t, exitUsage, s.shell.Run(context.Background()))
	require.Contains(t, s.errOut.String(), "index out of range: have 1, got 5")
	require.Contains(t, s.errOut.String(), "rm: not a number: x")
	require.Contains(t, s.errOut.String(), "usage: rm <n>")
	require.Equal(t, 1, s.store.Len())
}

func TestShell_ClearAsksFirst(t *testing.T) {
	seed := []model.Item{{ID: "1", Description: "A", Quantity: 1}}

	s := newSession("clear\nn\n", Options{}, seed...)
	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.Equal(t, 1, s.store.Len(), "declined clear keeps items")
	require.Contains(t, s.out.String(), "Are you sure you want to delete all items?")

	s = newSession("clear\nyes\n", Options{}, seed...)
	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())

	s = newSession("clear -y\n", Options{}, seed...)
	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())

	s = newSession("clear", Options{}, seed...)
	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.Equal(t, 1, s.store.Len(), "EOF at the prompt counts as no")
}

func TestShell_StrictStopsAtFirstFailure(t *testing.T) {
	s := newSession("bogus\nadd Socks\n", Options{Strict: true})

	require.Equal(t, exitUsage, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())
	require.Contains(t, s.errOut.String(), "unknown command: bogus")
}

func TestShell_QuitStopsReading(t *testing.T) {
	s := newSession("add A\nquit\nadd B\n", Options{})

	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.Equal(t, []string{"A"}, descriptions(s.store.Items()))
}

func TestShell_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSession("add A\n", Options{})

	require.Equal(t, exitError, s.shell.Run(ctx))
	require.Zero(t, s.store.Len())
}

func TestShell_StatsAndGroupedList(t *testing.T) {
	seed := []model.Item{
		{ID: "1", Description: "A", Quantity: 1, Packed: true},
		{ID: "2", Description: "B", Quantity: 2},
	}
	s := newSession("stats\nls --group\n", Options{}, seed...)

	require.Equal(t, 0, s.shell.Run(context.Background()))
	out := s.out.String()
	require.Contains(t, out, "You have 2 items on your list, and you already packed 1 (50%)")
	require.Contains(t, out, "Pending")
	require.Contains(t, out, "Packed")
}

func TestShell_Prompt(t *testing.T) {
	s := newSession("stats\n", Options{Prompt: "> "})
	require.Equal(t, 0, s.shell.Run(context.Background()))
	require.True(t, strings.HasPrefix(s.out.String(), "> "))
	require.Contains(t, s.out.String(), "Start adding some items to your packing list")
}

func TestShell_AddDashAndQuotes(t *testing.T) {
	s := newSession(`add -q 2 -- -5C sleeping bag
add "Charger"
add Kids' snacks
add 'Hat"
help
`, Options{})

	require.Equal(t, 0, s.shell.Run(context.Background()))
	items := s.store.Items()
	require.Equal(t, []string{"-5C sleeping bag", "Charger", "Kids' snacks", `'Hat"`}, descriptions(items))
	require.Equal(t, 2, items[0].Quantity)
	require.Contains(t, s.out.String(), "add -q 2 -- -5C sleeping bag")
}

func TestShell_AddDashWithoutSeparatorIsUsage(t *testing.T) {
	s := newSession("add -5C sleeping bag\n", Options{})

	require.Equal(t, exitUsage, s.shell.Run(context.Background()))
	require.Zero(t, s.store.Len())
	require.Contains(t, s.errOut.String(), "usage: add")
}
