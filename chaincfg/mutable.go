// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MutableParams is a parameter set that tests may change through a fixed
// set of setters.  It is not safe for concurrent use.
type MutableParams struct {
	params *Params
}

// NewMutableParams returns a mutable copy of p.
func NewMutableParams(p *Params) *MutableParams {
	return &MutableParams{params: p.Clone()}
}

// Params returns the parameters, including any changes made through the
// setters.
func (m *MutableParams) Params() *Params {
	return m.params
}

func (m *MutableParams) SetSubsidyHalvingInterval(interval int32) {
	m.params.SubsidyHalvingInterval = interval
}

func (m *MutableParams) SetEnforceBlockUpgradeMajority(majority int32) {
	m.params.Majority.Enforce = majority
}

func (m *MutableParams) SetRejectBlockUpgradeMajority(majority int32) {
	m.params.Majority.Reject = majority
}

func (m *MutableParams) SetToCheckBlockUpgradeMajority(window int32) {
	m.params.Majority.Window = window
}

func (m *MutableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.params.DefaultConsistencyChecks = enabled
}

func (m *MutableParams) SetAllowMinDifficultyBlocks(allow bool) {
	m.params.AllowMinDifficultyBlocks = allow
}

func (m *MutableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params.SkipProofOfWorkCheck = skip
}
