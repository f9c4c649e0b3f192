// Package cli is a line-oriented front end: one command per line, applied to
// a single session-owned store.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/Makepad-fr/packlist/internal/form"
	"github.com/Makepad-fr/packlist/internal/logging"
	"github.com/Makepad-fr/packlist/internal/model"
	"github.com/Makepad-fr/packlist/internal/store"
	"github.com/Makepad-fr/packlist/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Options tune the shell.
type Options struct {
	Sort        model.SortCriterion
	MaxQuantity int
	Group       bool   // ls groups by pending/packed
	Prompt      string // printed before each line when non-empty
	Strict      bool   // stop at the first failing command
}

// Shell reads commands and applies them to its store.
type Shell struct {
	store  *store.ListStore
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	opt    Options
	sort   model.SortCriterion
	log    *log.Logger
	quit   bool
}

// New returns a shell over st. Diagnostics go to errOut.
func New(st *store.ListStore, in io.Reader, out, errOut io.Writer, opt Options, logger *log.Logger) *Shell {
	if opt.MaxQuantity < 1 {
		opt.MaxQuantity = form.DefaultMax
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		store:  st,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		opt:    opt,
		sort:   model.ParseSort(string(opt.Sort)),
		log:    logger,
	}
}

// Run processes lines until EOF, quit, or ctx is done. It returns the exit
// code of the last failing command (0 if none failed).
func (sh *Shell) Run(ctx context.Context) int {
	code := exitOK
	for !sh.quit {
		if err := ctx.Err(); err != nil {
			return exitError
		}
		line, ok := sh.readLine(sh.opt.Prompt)
		if !ok {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c := sh.Exec(strings.Fields(line)); c != exitOK {
			code = c
			if sh.opt.Strict {
				return code
			}
		}
	}
	if err := sh.in.Err(); err != nil {
		ui.Fail(sh.errOut, "read: "+err.Error())
		return exitError
	}
	return code
}

func (sh *Shell) readLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(sh.out, prompt)
	}
	if !sh.in.Scan() {
		return "", false
	}
	return sh.in.Text(), true
}

// Exec dispatches one command and returns an exit code.
func (sh *Shell) Exec(args []string) int {
	if len(args) == 0 {
		return exitOK
	}
	cmd, a := strings.ToLower(args[0]), args[1:]
	sh.log.Debug("exec", "cmd", cmd, "args", a)

	switch cmd {
	case "help", "?":
		sh.printHelp()
		return exitOK
	case "ls", "list":
		return sh.doList(a)
	case "add":
		return sh.doAdd(a)
	case "toggle", "done", "pack":
		return sh.withIndex(cmd, a, sh.doToggle)
	case "rm", "delete", "del":
		return sh.withIndex(cmd, a, sh.doRemove)
	case "sort":
		return sh.doSort(a)
	case "clear":
		return sh.doClear(a)
	case "stats":
		return sh.doStats()
	case "quit", "exit", "q":
		sh.quit = true
		return exitOK
	}

	ui.Fail(sh.errOut, "unknown command: "+cmd)
	ui.Hint(sh.errOut, "Hint: type `help` for the command list")
	return exitUsage
}

func (sh *Shell) printHelp() {
	fmt.Fprintf(sh.out, `Commands:
  add [-q N] [-p] <description...>   Add an item (quantity 1..%d, -p marks it packed)
  ls [input|description|packed]      List items (default: current sort)
  toggle <n>                         Toggle packed for item n of the current listing
  rm <n>                             Remove item n of the current listing
  sort <input|description|packed>    Change the listing order
  clear [-y]                         Remove every item (asks first unless -y)
  stats                              Show totals
  quit                               Leave the shell

Examples:
  add -q 2 Passports
  toggle 1
  sort packed

Descriptions that start with a dash go after --:
  add -q 2 -- -5C sleeping bag
`, sh.opt.MaxQuantity)
}

// -------------- commands ----------------

func (sh *Shell) doList(a []string) int {
	fs := newFlagSet("ls")
	group := fs.BoolP("group", "g", sh.opt.Group, "group by pending/packed")
	if err := fs.Parse(a); err != nil {
		return sh.usage("ls [--group] [input|description|packed]", err)
	}
	by := sh.sort
	if fs.NArg() > 0 {
		by = model.ParseSort(fs.Arg(0))
	}
	fmt.Fprintln(sh.out, ui.Summary(sh.store.SortedView(by), sh.store.Stats(), by, *group))
	return exitOK
}

func (sh *Shell) doAdd(a []string) int {
	f := form.New(sh.opt.MaxQuantity)
	fs := newFlagSet("add")
	fs.IntVarP(&f.Quantity, "quantity", "q", 1, "quantity")
	fs.BoolVarP(&f.Packed, "packed", "p", false, "already packed")
	if err := fs.Parse(a); err != nil {
		return sh.usage("add [-q N] [-p] <description...>", err)
	}
	f.Description = unquote(strings.Join(fs.Args(), " "))

	it, err := f.Submit()
	if err != nil {
		ui.Fail(sh.errOut, "add: "+err.Error())
		if errors.Is(err, form.ErrEmptyDescription) {
			return exitUsage
		}
		return exitError
	}
	sh.store.Add(it)
	sh.log.Debug("added item", "id", it.ID, "description", it.Description, "quantity", it.Quantity)
	ui.OK(sh.out, fmt.Sprintf("added %s", ui.ItemText(it)))
	return exitOK
}

func (sh *Shell) doToggle(it model.Item) int {
	sh.store.TogglePacked(it.ID)
	sh.log.Debug("toggled item", "id", it.ID, "packed", !it.Packed)
	verb := "packed"
	if it.Packed {
		verb = "unpacked"
	}
	ui.OK(sh.out, verb+" "+ui.ItemText(it))
	return exitOK
}

func (sh *Shell) doRemove(it model.Item) int {
	sh.store.Delete(it.ID)
	sh.log.Debug("deleted item", "id", it.ID)
	ui.OK(sh.out, "removed "+ui.ItemText(it))
	return exitOK
}

func (sh *Shell) doSort(a []string) int {
	if len(a) != 1 {
		return sh.usage("sort <input|description|packed>", nil)
	}
	sh.sort = model.ParseSort(a[0])
	ui.OK(sh.out, sh.sort.Label())
	return exitOK
}

func (sh *Shell) doClear(a []string) int {
	fs := newFlagSet("clear")
	yes := fs.BoolP("yes", "y", false, "do not ask for confirmation")
	if err := fs.Parse(a); err != nil {
		return sh.usage("clear [-y]", err)
	}
	if !*yes && !sh.confirm("Are you sure you want to delete all items? [y/N] ") {
		ui.Hint(sh.out, "kept all items")
		return exitOK
	}
	n := sh.store.Len()
	sh.store.Clear()
	sh.log.Debug("cleared list", "removed", n)
	ui.OK(sh.out, fmt.Sprintf("cleared %d items", n))
	return exitOK
}

func (sh *Shell) doStats() int {
	st := sh.store.Stats()
	fmt.Fprintln(sh.out, ui.Header(st))
	fmt.Fprintln(sh.out, ui.Footer(st))
	return exitOK
}

// -------------- helpers ----------------

// withIndex resolves a 1-based index against the current listing.
func (sh *Shell) withIndex(cmd string, a []string, fn func(model.Item) int) int {
	if len(a) != 1 {
		return sh.usage(cmd+" <n>", nil)
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(sh.errOut, cmd+": not a number: "+a[0])
		return exitUsage
	}
	view := sh.store.SortedView(sh.sort)
	if n < 1 || n > len(view) {
		ui.Fail(sh.errOut, fmt.Sprintf("index out of range: have %d, got %d", len(view), n))
		ui.Hint(sh.errOut, "Hint: run `ls` to see valid indexes")
		return exitUsage
	}
	return fn(view[n-1])
}

func (sh *Shell) confirm(question string) bool {
	ans, ok := sh.readLine(question)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "y", "yes":
		return true
	}
	return false
}

func (sh *Shell) usage(syntax string, err error) int {
	if err != nil {
		ui.Fail(sh.errOut, err.Error())
	}
	ui.Fail(sh.errOut, "usage: "+syntax)
	return exitUsage
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
