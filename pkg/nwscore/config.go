package nwscore

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/andrew-torda/nwscore/pkg/nw"
)

// ErrConfig covers bad command lines and bad settings.
var ErrConfig = errors.New("configuration")

// Output formats
const (
	FmtText  = "text"
	FmtTSV   = "tsv"
	FmtTable = "table"
)

// Settings are the things that can come from flags, a settings file
// or NWSCORE_ environment variables. Viper fills them in.
type Settings struct {
	// number of goroutines aligning pairs
	Threads int `mapstructure:"threads"`

	// text, tsv or table
	Format string `mapstructure:"format"`

	// rows or full, see nw.ParseMode
	Mode string `mapstructure:"mode"`

	// longest input line and most sequences, zero for no limit
	MaxLine int `mapstructure:"max-line"`
	MaxSeq  int `mapstructure:"max-seq"`

	// most matrix cells for one pair
	MaxCells int `mapstructure:"max-cells"`

	Vbsty int `mapstructure:"verbosity"`
}

// Config is everything a run needs. The input file and scoring only
// come from the command line.
type Config struct {
	Settings
	InFile string
	Scheme nw.Scheme
	mode   nw.MemoryMode
}

// parseInt wants the whole of s to be a base 10 integer. "3x" is not 3.
func parseInt(what, s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrConfig, what, s)
	}
	return i, nil
}

// NewConfig builds a Config from viper settings and the positional
// arguments infile, match, mismatch and gap.
func NewConfig(v *viper.Viper, args []string) (*Config, error) {
	if len(args) < 4 {
		const emsg = "%w: need infile match mismatch gap, got %d arguments"
		return nil, fmt.Errorf(emsg, ErrConfig, len(args))
	}
	var c Config
	if err := v.Unmarshal(&c.Settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	c.InFile = args[0]
	var err error
	if c.Scheme.Match, err = parseInt("match", args[1]); err != nil {
		return nil, err
	}
	if c.Scheme.Mismatch, err = parseInt("mismatch", args[2]); err != nil {
		return nil, err
	}
	if c.Scheme.Gap, err = parseInt("gap", args[3]); err != nil {
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) check() error {
	switch c.Format {
	case FmtText, FmtTSV, FmtTable:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrConfig, c.Format)
	}
	var err error
	if c.mode, err = nw.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.MaxLine < 0 || c.MaxSeq < 0 {
		return fmt.Errorf("%w: negative limit max-line %d max-seq %d", ErrConfig, c.MaxLine, c.MaxSeq)
	}
	if c.MaxCells < 1 {
		return fmt.Errorf("%w: max-cells %d, must be positive", ErrConfig, c.MaxCells)
	}
	return nil
}

// AlignOpts is the aligner part of the configuration.
func (c *Config) AlignOpts() nw.Options {
	return nw.Options{Mode: c.mode, MaxCells: c.MaxCells}
}
