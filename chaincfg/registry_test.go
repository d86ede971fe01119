// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	for id := MainNet; id < numNetworks; id++ {
		first, err := r.Lookup(id)
		require.NoError(t, err)
		second, err := r.Lookup(id)
		require.NoError(t, err)
		require.Same(t, first, second)
		require.Equal(t, id, first.ID)
	}

	_, err := r.Lookup(NetworkID(4))
	require.True(t, errors.Is(err, ErrUnknownNetwork))
	_, err = r.Lookup(NetworkID(-1))
	require.True(t, errors.Is(err, ErrUnknownNetwork))
}

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry()
	require.Panics(t, func() { r.ActiveParams() })
	require.Panics(t, func() { r.ModifiableParams() })

	require.NoError(t, r.SelectNetwork(TestNet))
	test, err := r.Lookup(TestNet)
	require.NoError(t, err)
	require.Same(t, test, r.ActiveParams())

	// Re-selection is allowed.
	require.NoError(t, r.SelectNetwork(RegTest))
	require.Equal(t, RegTest, r.ActiveParams().ID)

	err = r.SelectNetwork(NetworkID(12))
	require.True(t, errors.Is(err, ErrUnknownNetwork))
	require.Equal(t, RegTest, r.ActiveParams().ID)
}

func TestModifiableParamsPrecondition(t *testing.T) {
	r := NewRegistry()
	for _, id := range []NetworkID{MainNet, TestNet, RegTest} {
		require.NoError(t, r.SelectNetwork(id))
		require.Panics(t, func() { r.ModifiableParams() }, id.String())
	}

	require.NoError(t, r.SelectNetwork(UnitTest))
	require.NotPanics(t, func() { r.ModifiableParams() })
	require.Same(t, r.ActiveParams(), r.ModifiableParams().Params())
}

func TestMutableParamsSetters(t *testing.T) {
	tests := []struct {
		name  string
		set   func(m *MutableParams)
		check func(p *Params)
		reset func(p, orig *Params)
	}{
		{
			name: "subsidy halving interval",
			set:  func(m *MutableParams) { m.SetSubsidyHalvingInterval(10) },
			check: func(p *Params) {
				require.Equal(t, int32(10), p.SubsidyHalvingInterval)
			},
			reset: func(p, orig *Params) {
				p.SubsidyHalvingInterval = orig.SubsidyHalvingInterval
			},
		},
		{
			name: "enforce majority",
			set:  func(m *MutableParams) { m.SetEnforceBlockUpgradeMajority(7) },
			check: func(p *Params) {
				require.Equal(t, int32(7), p.Majority.Enforce)
			},
			reset: func(p, orig *Params) {
				p.Majority.Enforce = orig.Majority.Enforce
			},
		},
		{
			name: "reject majority",
			set:  func(m *MutableParams) { m.SetRejectBlockUpgradeMajority(8) },
			check: func(p *Params) {
				require.Equal(t, int32(8), p.Majority.Reject)
			},
			reset: func(p, orig *Params) {
				p.Majority.Reject = orig.Majority.Reject
			},
		},
		{
			name: "to check majority",
			set:  func(m *MutableParams) { m.SetToCheckBlockUpgradeMajority(9) },
			check: func(p *Params) {
				require.Equal(t, int32(9), p.Majority.Window)
			},
			reset: func(p, orig *Params) {
				p.Majority.Window = orig.Majority.Window
			},
		},
		{
			name: "consistency checks",
			set:  func(m *MutableParams) { m.SetDefaultConsistencyChecks(false) },
			check: func(p *Params) {
				require.False(t, p.DefaultConsistencyChecks)
			},
			reset: func(p, orig *Params) {
				p.DefaultConsistencyChecks = orig.DefaultConsistencyChecks
			},
		},
		{
			name: "min difficulty blocks",
			set:  func(m *MutableParams) { m.SetAllowMinDifficultyBlocks(true) },
			check: func(p *Params) {
				require.True(t, p.AllowMinDifficultyBlocks)
			},
			reset: func(p, orig *Params) {
				p.AllowMinDifficultyBlocks = orig.AllowMinDifficultyBlocks
			},
		},
		{
			name: "skip proof of work",
			set:  func(m *MutableParams) { m.SetSkipProofOfWorkCheck(true) },
			check: func(p *Params) {
				require.True(t, p.SkipProofOfWorkCheck)
			},
			reset: func(p, orig *Params) {
				p.SkipProofOfWorkCheck = orig.SkipProofOfWorkCheck
			},
		},
	}

	for _, test := range tests {
		r := NewRegistry()
		require.NoError(t, r.SelectNetwork(UnitTest), test.name)

		orig := *r.ActiveParams()
		test.set(r.ModifiableParams())

		got, err := r.Lookup(UnitTest)
		require.NoError(t, err, test.name)
		test.check(got)
		test.check(r.ActiveParams())

		// Every other field is unchanged.
		changed := *got
		test.reset(&changed, &orig)
		require.Equal(t, orig, changed, test.name)

		// The other networks are unaffected.
		main, err := r.Lookup(MainNet)
		require.NoError(t, err, test.name)
		require.Equal(t, int32(1050000), main.SubsidyHalvingInterval, test.name)
		require.False(t, main.SkipProofOfWorkCheck, test.name)
	}
}

func TestNewMutableParamsCopies(t *testing.T) {
	base := UnitTestParams()
	m := NewMutableParams(base)
	m.SetSubsidyHalvingInterval(10)
	require.Equal(t, int32(1050000), base.SubsidyHalvingInterval)
	require.Equal(t, int32(10), m.Params().SubsidyHalvingInterval)
}
