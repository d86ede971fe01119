// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// Registry holds the parameter sets of every network and tracks which one is
// active.  It is created once during startup and owned by the node process.
//
// The registry does no locking.  SelectNetwork must happen before any
// concurrent call to ActiveParams.
type Registry struct {
	params   [numNetworks]*Params
	unitTest *MutableParams
	active   *Params
}

// NewRegistry builds the parameter sets of all networks.  It panics if any
// compiled-in genesis block or checkpoint table is corrupt.
func NewRegistry() *Registry {
	r := &Registry{
		unitTest: NewMutableParams(UnitTestParams()),
	}
	r.params[MainNet] = MainNetParams()
	r.params[TestNet] = TestNetParams()
	r.params[RegTest] = RegressionNetParams()
	r.params[UnitTest] = r.unitTest.Params()

	for _, p := range r.params {
		log.Debugf("Loaded %s network parameters (genesis %v, %d "+
			"checkpoints)", p.Name, p.GenesisHash, p.Checkpoints.Len())
	}
	return r
}

// SelectNetwork makes the network identified by id the active one.
// Selecting again replaces the previous choice; callers holding the old
// parameters keep seeing them.
func (r *Registry) SelectNetwork(id NetworkID) error {
	p, err := r.Lookup(id)
	if err != nil {
		return err
	}
	r.active = p
	log.Infof("Selected %s network", p.Name)
	return nil
}

// ActiveParams returns the parameters of the selected network.  It panics if
// no network has been selected.
func (r *Registry) ActiveParams() *Params {
	if r.active == nil {
		panic("chaincfg: ActiveParams called before SelectNetwork")
	}
	return r.active
}

// Lookup returns the parameters of the network identified by id.  Repeated
// calls return the same pointer.
func (r *Registry) Lookup(id NetworkID) (*Params, error) {
	if !id.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, id)
	}
	return r.params[id], nil
}

// ModifiableParams returns the mutable view of the unit test parameters.  It
// panics unless the unit test network is active.
func (r *Registry) ModifiableParams() *MutableParams {
	if r.active == nil {
		panic("chaincfg: ModifiableParams called before SelectNetwork")
	}
	if r.active.ID != UnitTest {
		panic(fmt.Sprintf("chaincfg: ModifiableParams called with %s "+
			"network active", r.active.Name))
	}
	return r.unitTest
}
