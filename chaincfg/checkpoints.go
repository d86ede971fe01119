// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/exp/slices"
)

// sigCheckVerificationFactor is how much more expensive a block past the last
// checkpoint is to verify than one below it, where signature checks are
// skipped.
const sigCheckVerificationFactor = 5.0

// secondsPerDay is used to scale elapsed time to the expected transaction
// rate.
const secondsPerDay = 24 * 60 * 60

var (
	// ErrDuplicateCheckpoint describes an error where a checkpoint height
	// appears more than once in a table.
	ErrDuplicateCheckpoint = errors.New("duplicate checkpoint height")

	// ErrInvalidCheckpoint describes an error where a checkpoint has a
	// negative height or no hash.
	ErrInvalidCheckpoint = errors.New("invalid checkpoint")
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData is the literal form of a checkpoint table together with
// the statistics used to estimate sync progress.
type CheckpointData struct {
	Checkpoints []Checkpoint

	// LastCheckpointTime is the block time of the highest checkpoint.
	LastCheckpointTime time.Time

	// TransactionsAtLastCheckpoint is the cumulative number of
	// transactions from genesis up to and including the highest
	// checkpoint.
	TransactionsAtLastCheckpoint int64

	// TransactionsPerDay is the expected transaction rate after the last
	// checkpoint.
	TransactionsPerDay float64
}

// VerifyResult is the outcome of checking a block against a checkpoint
// table.
type VerifyResult int

const (
	// NoCheckpointAtHeight means the table has no entry at the height, so
	// the block is not constrained.
	NoCheckpointAtHeight VerifyResult = iota

	// CheckpointMatch means the block hash equals the checkpoint.
	CheckpointMatch

	// CheckpointMismatch means a checkpoint exists at the height and the
	// block hash differs from it.
	CheckpointMismatch
)

var verifyResultStrings = map[VerifyResult]string{
	NoCheckpointAtHeight: "NoCheckpointAtHeight",
	CheckpointMatch:      "CheckpointMatch",
	CheckpointMismatch:   "CheckpointMismatch",
}

// String returns the VerifyResult in human-readable form.
func (r VerifyResult) String() string {
	if s, ok := verifyResultStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("Unknown VerifyResult (%d)", int(r))
}

// ChainTip describes the best block of a chain for progress estimation.
type ChainTip struct {
	Height int32

	// TxCount is the cumulative number of transactions from genesis up to
	// and including this block.
	TxCount int64

	// Time is the block timestamp.
	Time time.Time
}

// CheckpointTable is an immutable set of checkpoints keyed by height.
type CheckpointTable struct {
	entries map[int32]*chainhash.Hash
	heights []int32

	lastCheckpointTime time.Time
	txAtLastCheckpoint int64
	txPerDay           float64
}

// NewCheckpointTable builds a table from compiled-in checkpoint data.  It
// panics if the data has a duplicate height, a negative height or a nil
// hash, since such a literal can only be a programming error.
func NewCheckpointTable(data CheckpointData) *CheckpointTable {
	table, err := newCheckpointTable(data)
	if err != nil {
		panic(err)
	}
	return table
}

func newCheckpointTable(data CheckpointData) (*CheckpointTable, error) {
	t := &CheckpointTable{
		entries:            make(map[int32]*chainhash.Hash, len(data.Checkpoints)),
		heights:            make([]int32, 0, len(data.Checkpoints)),
		lastCheckpointTime: data.LastCheckpointTime,
		txAtLastCheckpoint: data.TransactionsAtLastCheckpoint,
		txPerDay:           data.TransactionsPerDay,
	}
	for _, cp := range data.Checkpoints {
		if cp.Height < 0 || cp.Hash == nil {
			return nil, fmt.Errorf("%w at height %d", ErrInvalidCheckpoint,
				cp.Height)
		}
		if _, ok := t.entries[cp.Height]; ok {
			return nil, fmt.Errorf("%w %d", ErrDuplicateCheckpoint,
				cp.Height)
		}
		hash := *cp.Hash
		t.entries[cp.Height] = &hash
		t.heights = append(t.heights, cp.Height)
	}
	slices.Sort(t.heights)
	return t, nil
}

// Verify reports whether the block with the given hash at the given height
// agrees with the table.
func (t *CheckpointTable) Verify(height int32, hash *chainhash.Hash) VerifyResult {
	want, ok := t.entries[height]
	if !ok {
		return NoCheckpointAtHeight
	}
	if hash == nil || !want.IsEqual(hash) {
		return CheckpointMismatch
	}
	return CheckpointMatch
}

// Lookup returns the checkpoint hash at height, if any.
func (t *CheckpointTable) Lookup(height int32) (*chainhash.Hash, bool) {
	hash, ok := t.entries[height]
	if !ok {
		return nil, false
	}
	h := *hash
	return &h, true
}

// Len returns the number of checkpoints.
func (t *CheckpointTable) Len() int {
	return len(t.heights)
}

// Checkpoints returns the checkpoints ordered by strictly increasing height.
func (t *CheckpointTable) Checkpoints() []Checkpoint {
	checkpoints := make([]Checkpoint, 0, len(t.heights))
	for _, height := range t.heights {
		hash := *t.entries[height]
		checkpoints = append(checkpoints, Checkpoint{
			Height: height,
			Hash:   &hash,
		})
	}
	return checkpoints
}

// LatestCheckpoint returns the highest checkpoint, or nil for an empty table.
func (t *CheckpointTable) LatestCheckpoint() *Checkpoint {
	if len(t.heights) == 0 {
		return nil
	}
	height := t.heights[len(t.heights)-1]
	hash := *t.entries[height]
	return &Checkpoint{Height: height, Hash: &hash}
}

// LatestCheckpointHeight returns the height of the highest checkpoint, or 0
// for an empty table.
func (t *CheckpointTable) LatestCheckpointHeight() int32 {
	if len(t.heights) == 0 {
		return 0
	}
	return t.heights[len(t.heights)-1]
}

// NextCheckpoint returns the lowest checkpoint strictly above height, or nil
// when there is none.
func (t *CheckpointTable) NextCheckpoint(height int32) *Checkpoint {
	for _, h := range t.heights {
		if h > height {
			hash := *t.entries[h]
			return &Checkpoint{Height: h, Hash: &hash}
		}
	}
	return nil
}

// LastCheckpointTime returns the block time of the highest checkpoint.
func (t *CheckpointTable) LastCheckpointTime() time.Time {
	return t.lastCheckpointTime
}

// TransactionsAtLastCheckpoint returns the cumulative transaction count at
// the highest checkpoint.
func (t *CheckpointTable) TransactionsAtLastCheckpoint() int64 {
	return t.txAtLastCheckpoint
}

// TransactionsPerDay returns the expected transaction rate past the highest
// checkpoint.
func (t *CheckpointTable) TransactionsPerDay() float64 {
	return t.txPerDay
}

// elapsedDays returns the non-negative number of days from start to end.
func elapsedDays(start, end time.Time) float64 {
	d := end.Sub(start).Seconds() / secondsPerDay
	if d < 0 {
		return 0
	}
	return d
}

// EstimateSyncProgress guesses how far verification of the chain ending at
// tip has come, as a fraction in [0, 1].  Transactions below the last
// checkpoint are cheap to verify.  Transactions past it, whether already
// verified or still expected given the time elapsed, are weighted by the
// signature check factor.
func (t *CheckpointTable) EstimateSyncProgress(tip ChainTip, now time.Time) float64 {
	var workBefore, workAfter float64
	if tip.TxCount <= t.txAtLastCheckpoint {
		cheapBefore := float64(tip.TxCount)
		cheapAfter := float64(t.txAtLastCheckpoint - tip.TxCount)
		expensiveAfter := elapsedDays(t.lastCheckpointTime, now) * t.txPerDay

		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigCheckVerificationFactor
	} else {
		cheapBefore := float64(t.txAtLastCheckpoint)
		expensiveBefore := float64(tip.TxCount - t.txAtLastCheckpoint)
		expensiveAfter := elapsedDays(tip.Time, now) * t.txPerDay

		workBefore = cheapBefore + expensiveBefore*sigCheckVerificationFactor
		workAfter = expensiveAfter * sigCheckVerificationFactor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0
	}
	progress := workBefore / total
	switch {
	case progress < 0:
		return 0
	case progress > 1:
		return 1
	}
	return progress
}
