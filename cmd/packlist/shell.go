package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/packlist/internal/cli"
)

var (
	shellStrict bool
	shellGroup  bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the list one command per line",
	Long: `Read commands from standard input, one per line, and apply them to the list.
Type "help" inside the shell for the command list. Scripts can be piped in:

  printf 'add -q 2 Passports\ntoggle 1\nls\n' | packlist shell`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := ""
		if isTerminal(cmd.InOrStdin()) {
			prompt = "packlist> "
		}
		sh := cli.New(sess.store, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cli.Options{
			Sort:        sess.cfg.SortCriterion(),
			MaxQuantity: sess.cfg.MaxQuantity,
			Group:       shellGroup,
			Prompt:      prompt,
			Strict:      shellStrict,
		}, sess.log)
		if code := sh.Run(cmd.Context()); code != 0 {
			return exitCodeError{code: code}
		}
		return nil
	},
}

func init() {
	shellCmd.Flags().BoolVar(&shellStrict, "strict", false, "stop at the first failing command")
	shellCmd.Flags().BoolVar(&shellGroup, "group", false, "group ls output by pending/packed")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
