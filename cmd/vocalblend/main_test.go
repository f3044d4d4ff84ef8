package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/vocalblend/eval"
)

func TestRootCommand_RequiresTwoModels(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--models", "mdx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two models")

	cmd = newRootCommand()
	cmd.SetArgs([]string{"--models", "a,b,c"})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two models")
}

func TestRootCommand_ModelsFlagRequired(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs(nil)
	require.Error(t, cmd.Execute())
}

func TestRenderPairTable(t *testing.T) {
	res := &eval.Result{
		Pairs: []eval.PairMean{
			{Pair: eval.WeightPair{W1: 0, W2: 10}, MeanSDR: 7.1234, Tracks: 3},
			{Pair: eval.WeightPair{W1: 1, W2: 9}, MeanSDR: 8.5, Tracks: 3},
		},
	}
	out := renderPairTable(res)
	// The rounded style uppercases header cells.
	assert.Contains(t, out, "MEAN SDR")
	assert.Contains(t, out, "TRACKS")
	assert.Contains(t, out, "7.1234")
	assert.Contains(t, out, "8.5000")
}
