package nwscore_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/nwscore/pkg/nw"
	"github.com/andrew-torda/nwscore/pkg/nwscore"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.Set("threads", 2)
	v.Set("format", nwscore.FmtText)
	v.Set("mode", "full")
	v.Set("max-cells", 1000)
	return v
}

func TestNewConfig(t *testing.T) {
	cfg, err := nwscore.NewConfig(newViper(), []string{"in.fa", "3", "-2", "-4"})
	require.NoError(t, err)
	assert.Equal(t, "in.fa", cfg.InFile)
	assert.Equal(t, nw.Scheme{Match: 3, Mismatch: -2, Gap: -4}, cfg.Scheme)
	assert.Equal(t, 2, cfg.Threads)
	assert.Equal(t, nw.Options{Mode: nw.FullMatrix, MaxCells: 1000}, cfg.AlignOpts())
}

func TestNewConfigBad(t *testing.T) {
	bad := [][]string{
		nil,
		{"in.fa", "1", "-1"},
		{"in.fa", "1.5", "-1", "-2"},
		{"in.fa", "1", "-1", "-2 "},
		{"in.fa", "", "-1", "-2"},
	}
	for _, args := range bad {
		_, err := nwscore.NewConfig(newViper(), args)
		assert.ErrorIs(t, err, nwscore.ErrConfig, "args %q", args)
	}
	v := newViper()
	v.Set("max-seq", -1)
	_, err := nwscore.NewConfig(v, []string{"in.fa", "1", "-1", "-2"})
	assert.ErrorIs(t, err, nwscore.ErrConfig)
}
