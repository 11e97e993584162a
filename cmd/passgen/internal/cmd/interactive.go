package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/session"
)

var interactiveHelp = heredoc.Doc(`
	l N  set length
	n    toggle numbers
	s    toggle special characters
	p X  switch to profile X
	r    regenerate
	c    copy to clipboard
	q    quit
`)

// profileLoader resolves a profile name to its settings.
type profileLoader func(name string) (crypto.Config, error)

func newInteractiveCmd(opts *generateOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Adjust settings and regenerate in a loop",
		Example: heredoc.Doc(`
			$ passgen interactive
			$ passgen interactive --profiles profiles.yaml --profile wifi
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}
			s := session.NewWithConfig(opts.source(), cfg)
			return runInteractive(s, opts.loadProfile, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runInteractive reads one event per line and regenerates after each
// config change, printing the state every time. profiles may be nil.
func runInteractive(s *session.Session, profiles profileLoader, in io.Reader, out io.Writer) error {
	printState(out, s)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "l", "length":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: l N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintf(out, "invalid length %q\n", fields[1])
				continue
			}
			s.SetLength(n)
		case "p", "profile":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: p NAME")
				continue
			}
			if profiles == nil {
				fmt.Fprintln(out, "no profiles available")
				continue
			}
			cfg, err := profiles(fields[1])
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			s.Apply(cfg)
		case "n", "numbers":
			s.ToggleDigits()
		case "s", "symbols":
			s.ToggleSymbols()
		case "r", "regenerate":
			s.Regenerate()
		case "c", "copy":
			if err := s.Copy(clipboardWriter); err != nil {
				fmt.Fprintln(out, "error:", err)
			} else {
				fmt.Fprintln(out, "copied to clipboard")
			}
			continue
		case "q", "quit", "exit":
			return nil
		case "?", "h", "help":
			fmt.Fprint(out, interactiveHelp)
			continue
		default:
			fmt.Fprintf(out, "unknown command %q, ? for help\n", fields[0])
			continue
		}

		printState(out, s)
	}
}

func printState(out io.Writer, s *session.Session) {
	cfg := s.Config()
	fmt.Fprintf(out, "length=%d numbers=%s symbols=%s\n%s\n",
		cfg.Length, onOff(cfg.IncludeDigits), onOff(cfg.IncludeSymbols), s.Password())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
