package nwscore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/nwscore/pkg/nw"
	"github.com/andrew-torda/nwscore/pkg/randseq"
	. "github.com/andrew-torda/nwscore/pkg/seq/common"
)

const version = "0.2.0"

// NewRootCmd returns the nwscore command with the randseq subcommand.
// Each call gets its own viper, so tests do not see each other's
// settings.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string
	logger := log.New(stderr, "nwscore: ", 0)

	rootCmd := &cobra.Command{
		Use:   "nwscore [flags] infile match mismatch gap",
		Short: "Global alignment scores for every pair of sequences in a file",
		Long: `Global alignment scores for every pair of sequences in a file

infile has records which start with a ">" line. The lines after it, up to the
next ">" line, are joined to make the sequence, after throwing away everything
that is not a letter. Each pair of sequences is aligned with the Needleman-Wunsch
method, using match and mismatch scores and a linear gap penalty, all integers.
Gap penalties are added, so they are usually negative.

Flags go before infile, since a gap penalty like -2 looks like a flag.

Example:
  nwscore -t 4 seqs.fa 1 -1 -2`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 4 {
				const emsg = "%w: need infile match mismatch gap, got %d arguments"
				return fmt.Errorf(emsg, ErrConfig, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("%w: %w", ErrConfig, err)
				}
			}
			cfg, err := NewConfig(v, args)
			if err != nil {
				return err
			}
			if len(args) > 4 && cfg.Vbsty > 0 {
				logger.Printf("ignoring extra arguments %v", args[4:])
			}
			return Mymain(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	})

	flags := rootCmd.Flags()
	flags.SetInterspersed(false) // so "1 -1 -2" are arguments, not flags
	flags.StringVar(&cfgFile, "config", "", "settings file (yaml, toml or json)")
	flags.IntP("threads", "t", 1, "number of goroutines aligning pairs")
	flags.StringP("format", "f", FmtText, "output format: text, tsv or table")
	flags.StringP("mode", "m", nw.TwoRows.String(), "matrix memory: rows or full")
	flags.Int("max-line", 0, "longest input line allowed, 0 for no limit")
	flags.Int("max-seq", 0, "most sequences allowed, 0 for no limit")
	flags.Int("max-cells", nw.DefaultMaxCells, "most matrix cells for one pair")
	flags.IntP("verbosity", "v", 0, "verbosity")
	for _, key := range []string{"threads", "format", "mode", "max-line", "max-seq", "max-cells", "verbosity"} {
		v.BindPFlag(key, flags.Lookup(key))
	}
	v.SetEnvPrefix("NWSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(newRandSeqCmd())
	return rootCmd
}

// newRandSeqCmd writes random test input.
func newRandSeqCmd() *cobra.Command {
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	cmd := &cobra.Command{
		Use:   "randseq [flags] file nseq length",
		Short: "Write random nucleotide sequences for testing, file - for stdout",
		Args: func(cmd *cobra.Command, a []string) error {
			if len(a) != 3 {
				return fmt.Errorf("%w: randseq needs file nseq length, got %d arguments", ErrConfig, len(a))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, a []string) error {
			const emsg = "%w: failed converting %s to positive integer"
			nseq, err := strconv.ParseUint(a[1], 10, 32)
			if err != nil {
				return fmt.Errorf(emsg, ErrConfig, a[1])
			}
			nlen, err := strconv.ParseUint(a[2], 10, 32)
			if err != nil || nlen == 0 {
				return fmt.Errorf(emsg, ErrConfig, a[2])
			}
			args.Nseq, args.Len = int(nseq), int(nlen)
			if a[0] == "-" {
				args.Wrtr = cmd.OutOrStdout()
				return randseq.RandSeqMain(&args)
			}
			ft, err := os.Create(a[0])
			if err != nil {
				return fmt.Errorf("file for output: %w", err)
			}
			args.Wrtr = ft
			if err := randseq.RandSeqMain(&args); err != nil {
				ft.Close()
				return err
			}
			return ft.Close()
		},
	}
	cmd.Flags().Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	cmd.Flags().BoolVar(&args.Junk, "junk", false, "put digits, spaces and punctuation in sequence lines")
	cmd.Flags().StringVarP(&args.Cmmt, "comment", "c", "seq", "comment for the header lines")
	return cmd
}

// exitCode says what the shell sees for an error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitUsageError
	}
	return ExitFailure
}

// Run executes the command line in args and returns the exit code.
// Errors are reported on stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "nwscore:", err)
		if errors.Is(err, ErrConfig) {
			fmt.Fprintln(stderr, "usage:", rootCmd.UseLine())
		}
	}
	return exitCode(err)
}

// Execute is called by main.main(). Interrupts cancel the run.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
