package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hysh-lang/hysh/runtime/commands"
	"github.com/hysh-lang/hysh/runtime/strscan"
	"github.com/hysh-lang/hysh/runtime/wrap"
)

// wrapCommand rewrites the subprocess span of a line as ![...]. With no
// argument it reads lines from stdin, using the string boundary scanner to
// gather continuation lines for open string literals first.
func (h *Harness) wrapCommand() *cobra.Command {
	var minCol, maxCol int
	var spanOnly bool

	cmd := &cobra.Command{
		Use:   "wrap [line]",
		Short: "Rewrite the subprocess span of a line as ![...]",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := wrap.New(nil)
			opts := []wrap.WrapOpt{wrap.WithMinCol(minCol)}
			if maxCol >= 0 {
				opts = append(opts, wrap.WithMaxCol(maxCol))
			}
			if !spanOnly {
				opts = append(opts, wrap.WithReturnLine())
			}

			if len(args) == 1 {
				out, ok := engine.SubprocToks(args[0], opts...)
				if !ok {
					return fmt.Errorf("no command span in %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return wrapStdin(cmd, engine, opts)
		},
	}

	cmd.Flags().IntVar(&minCol, "min-col", 0, "Minimum column the span may start at")
	cmd.Flags().IntVar(&maxCol, "max-col", -1, "Column bound past which tokens are excluded (-1 for end of line)")
	cmd.Flags().BoolVar(&spanOnly, "span-only", false, "Print only the bracketed span, not the full line")
	return cmd
}

// wrapStdin processes stdin line by line. A prompt is shown only when stdin
// is a terminal; buffers ending inside an open string literal keep reading
// continuation lines before any wrapping is attempted.
func wrapStdin(cmd *cobra.Command, engine *wrap.Engine, opts []wrap.WrapOpt) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)
	var buf string
	for {
		if interactive {
			if buf == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "> ")
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "... ")
			}
		}
		if !scanner.Scan() {
			break
		}
		if buf == "" {
			buf = scanner.Text()
		} else {
			buf += "\n" + scanner.Text()
		}
		if strscan.CheckForPartialString(buf).Open() {
			continue
		}
		if out, ok := engine.SubprocToks(buf, opts...); ok {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), buf)
		}
		buf = ""
	}
	return scanner.Err()
}

// breakCommand prints the column of the next top-level break in a line.
func (h *Harness) breakCommand() *cobra.Command {
	var minCol int

	cmd := &cobra.Command{
		Use:   "break <line>",
		Short: "Find the next top-level statement break in a line",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			engine := wrap.New(nil)
			if col, ok := engine.FindNextBreak(args[0], minCol); ok {
				fmt.Fprintln(cmd.OutOrStdout(), col)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "none")
			}
		},
	}

	cmd.Flags().IntVar(&minCol, "min-col", 0, "Column to start scanning from")
	return cmd
}

// scanCommand reports the last complete or partial string literal in a
// buffer, the way the interactive front-end probes for continuation input.
func (h *Harness) scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <text>",
		Short: "Locate the last complete or partial string literal in text",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			res := strscan.CheckForPartialString(args[0])
			switch {
			case !res.Found():
				fmt.Fprintln(cmd.OutOrStdout(), "none")
			case res.Open():
				fmt.Fprintf(cmd.OutOrStdout(), "start=%d end=open quote=%s\n", res.Start, res.Quote)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "start=%d end=%d quote=%s\n", res.Start, res.End, res.Quote)
			}
		},
	}
}

// commandsCommand populates the executable cache from $PATH and lists it.
func (h *Harness) commandsCommand() *cobra.Command {
	var contains, suggest string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List executables resolved from the search path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cache := commands.New()
			cache.Populate(os.Getenv("PATH"))
			switch {
			case contains != "":
				fmt.Fprintln(cmd.OutOrStdout(), cache.LazyIn(contains))
			case suggest != "":
				for _, name := range cache.Suggest(suggest, 3) {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			default:
				for _, name := range cache.LazyIter() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
		},
	}

	cmd.Flags().StringVar(&contains, "contains", "", "Report whether a single command name is cached")
	cmd.Flags().StringVar(&suggest, "suggest", "", "Print close matches for a command name")
	return cmd
}
