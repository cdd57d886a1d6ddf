// SPDX-License-Identifier: MIT

package autfile_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/autfile"
	"github.com/katalvlaran/automata/core"
)

func TestEncode_GoldenOutput(t *testing.T) {
	a, err := autfile.ParseBytes([]byte(shiftRegisterSrc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, autfile.Encode(&buf, a))

	// Transitions come out in canonical order, which the fixture
	// already uses.
	assert.Equal(t, shiftRegisterSrc, buf.String())
}

func TestEncode_RoundTrip(t *testing.T) {
	src, err := core.New(
		[]string{"a", "b"},
		[]string{"s0", "s1", "s2"},
		[]string{"s2"},
		"s0",
		[]core.Transition{
			{From: "s0", Symbol: "a", To: "s0"},
			{From: "s0", Symbol: "a", To: "s1"},
			{From: "s1", Symbol: "b", To: "s2"},
		},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, autfile.Encode(&buf, src))

	back, err := autfile.ParseBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Alphabet(), back.Alphabet())
	assert.Equal(t, src.States(), back.States())
	assert.Equal(t, src.FinalStates(), back.FinalStates())
	assert.Equal(t, src.InitialState(), back.InitialState())
	assert.Equal(t, src.Transitions(), back.Transitions())
	assert.False(t, back.Deterministic(), "both s0-a rules survive")
}

func TestEncode_NoFinals(t *testing.T) {
	src, err := core.New([]string{"x"}, []string{"s0"}, nil, "s0", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, autfile.Encode(&buf, src))
	assert.Equal(t, "x\ns0\n\ns0\n", buf.String(), "no finals is a blank third line")

	back, err := autfile.ParseBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, back.FinalStates())
}

func TestEncode_NilAutomaton(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, autfile.Encode(&buf, nil), autfile.ErrAutomatonNil)
	assert.Zero(t, buf.Len())
}

func TestEncode_TokenWithWhitespace(t *testing.T) {
	a, err := core.New([]string{"x"}, []string{"q 0"}, nil, "q 0", nil)
	require.NoError(t, err, "core itself has no opinion on spaces")

	var buf bytes.Buffer
	err = autfile.Encode(&buf, a)
	require.ErrorIs(t, err, autfile.ErrBadToken)
	assert.Zero(t, buf.Len(), "nothing written before the check")
}

func TestSaveLoad(t *testing.T) {
	a, err := autfile.ParseBytes([]byte(shiftRegisterSrc))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "machine.aut")
	require.NoError(t, autfile.Save(path, a))

	back, err := autfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, a.Transitions(), back.Transitions())
	assert.Equal(t, a.FinalStates(), back.FinalStates())
}

func TestSave_BadPath(t *testing.T) {
	a, err := core.New([]string{"x"}, []string{"s0"}, nil, "s0", nil)
	require.NoError(t, err)

	err = autfile.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "m.aut"), a)
	assert.Error(t, err)
}
