package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/profile"
)

// clipboardWriter is swapped out in tests.
var clipboardWriter = clipboard.System()

type generateOptions struct {
	length       int
	numbers      bool
	symbols      bool
	count        int
	copy         bool
	secure       bool
	profileName  string
	profilesPath string
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "passgen [flags]",
		Short: "Generate random passwords",
		Long: heredoc.Doc(`
			Generate passwords from upper and lower case letters, optionally
			with digits (0-9) and the symbols !@#$%^&*-_+=[]{}~` + "`" + `.
		`),
		Example: heredoc.Doc(`
			$ passgen
			$ passgen -l 24 --symbols=false --copy
			$ passgen --profiles profiles.yaml --profile wifi -c 5
		`),
		Version:       Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	// Settings flags are shared with interactive, which starts from them.
	persistent := rootCmd.PersistentFlags()
	persistent.IntVarP(&opts.length, "length", "l", crypto.DefaultLength, fmt.Sprintf("password length (%d-%d)", crypto.MinLength, crypto.MaxLength))
	persistent.BoolVarP(&opts.numbers, "numbers", "n", true, "include digits")
	persistent.BoolVarP(&opts.symbols, "symbols", "s", true, "include special characters")
	persistent.StringVar(&opts.profileName, "profile", "", "start from a named profile")
	persistent.StringVar(&opts.profilesPath, "profiles", "passgen.yaml", "YAML file holding profiles")
	persistent.BoolVar(&opts.secure, "crypto", false, "draw from crypto/rand instead of the general-purpose source")

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	flags.BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")

	rootCmd.AddCommand(newInteractiveCmd(opts))
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (o *generateOptions) source() crypto.Source {
	if o.secure {
		slog.Debug("using crypto random source")
		return crypto.CryptoSource()
	}
	return crypto.MathSource()
}

// resolveConfig layers explicitly set flags over the selected profile.
func (o *generateOptions) resolveConfig(cmd *cobra.Command) (crypto.Config, error) {
	cfg := crypto.DefaultConfig()

	if o.profileName != "" {
		var err error
		if cfg, err = o.loadProfile(o.profileName); err != nil {
			return crypto.Config{}, err
		}
	}

	flags := cmd.Flags()
	if o.profileName == "" || flags.Changed("length") {
		cfg.Length = o.length
	}
	if o.profileName == "" || flags.Changed("numbers") {
		cfg.IncludeDigits = o.numbers
	}
	if o.profileName == "" || flags.Changed("symbols") {
		cfg.IncludeSymbols = o.symbols
	}

	return cfg, cfg.Validate()
}

// loadProfile reads the profiles file on every call so edits show up in a
// running interactive session.
func (o *generateOptions) loadProfile(name string) (crypto.Config, error) {
	file, err := profile.Load(o.profilesPath)
	if err != nil {
		return crypto.Config{}, fmt.Errorf("loading profiles: %w", err)
	}
	p, err := file.Find(name)
	if err != nil {
		return crypto.Config{}, err
	}
	return profile.Config(p), nil
}

func runGenerate(cmd *cobra.Command, o *generateOptions) error {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return err
	}
	if o.count < 1 {
		return errors.New("count must be at least 1")
	}

	src := o.source()
	var last string
	for i := 0; i < o.count; i++ {
		last = crypto.Generate(cfg, src)
		fmt.Fprintln(cmd.OutOrStdout(), last)
	}

	if o.copy {
		if err := clipboard.Copy(clipboardWriter, last); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	}
	return nil
}
