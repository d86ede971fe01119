// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netsync

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/lru"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg"
	"github.com/MasterCoreCoin/mastercorecoin/chaincfg/quark"
)

const (
	// maxBannedPeers is the number of peer addresses remembered as banned
	// after sending headers that contradict a checkpoint.
	maxBannedPeers = 100

	// defaultQueueSize is the size of the handler queue when the config
	// does not give one.
	defaultQueueSize = 50
)

var (
	// ErrCheckpointMismatch describes an error where a header lands on a
	// checkpoint height with a different hash than the checkpoint.
	ErrCheckpointMismatch = errors.New("header does not match checkpoint")

	// ErrForkBelowCheckpoint describes an error where a header would
	// create a side chain that forks below a checkpoint already passed.
	ErrForkBelowCheckpoint = errors.New("header forks below checkpoint")

	// ErrUnconnectedHeaders describes an error where a header does not
	// connect to a known header or to the previous header in the batch.
	ErrUnconnectedHeaders = errors.New("headers do not connect")

	// ErrHighHash describes an error where a proof-of-work header hash is
	// above its target or the target is out of range.
	ErrHighHash = errors.New("header fails proof of work")

	// ErrBannedPeer describes an error where headers arrive from a peer
	// that was previously banned.
	ErrBannedPeer = errors.New("peer is banned")

	// ErrShuttingDown is returned for headers queued after Stop.
	ErrShuttingDown = errors.New("header sync manager is shutting down")
)

// Peer is the view of a remote peer the manager needs.
type Peer interface {
	// Addr returns the address of the peer.  It is the key used to
	// remember banned peers.
	Addr() string

	// Disconnect closes the connection to the peer.
	Disconnect()
}

// Config is the configuration of a HeaderSyncManager.
type Config struct {
	// ChainParams identifies the network whose headers are synced.
	ChainParams *chaincfg.Params

	// DisableCheckpoints turns off checkpoint verification.
	DisableCheckpoints bool

	// QueueSize is the capacity of the handler queue.
	QueueSize int

	// TimeSource returns the current time.  Defaults to time.Now.
	TimeSource func() time.Time
}

// headerNode is a header in the in-memory header index.
type headerNode struct {
	height  int32
	hash    chainhash.Hash
	parent  *headerNode
	header  wire.BlockHeader
	workSum *big.Int
}

// headersMsg packages a headers message and the peer it came from.
type headersMsg struct {
	headers *wire.MsgHeaders
	peer    Peer
	reply   chan error
}

// bestHeaderMsg requests the tip of the best header chain.
type bestHeaderMsg struct {
	reply chan *headerNode
}

// HeaderSyncManager builds the header chain of a network from peer headers
// messages and rejects any header that contradicts the checkpoint table.
// All header processing happens on a single handler goroutine fed through a
// channel.
type HeaderSyncManager struct {
	started  int32
	shutdown int32

	chainParams        *chaincfg.Params
	disableCheckpoints bool
	timeSource         func() time.Time
	progressLogger     *headerProgressLogger
	banned             lru.Cache
	msgChan            chan interface{}
	wg                 sync.WaitGroup
	quit               chan struct{}

	// These fields should only be accessed from the headerHandler thread.
	index          map[chainhash.Hash]*headerNode
	mainChain      []*headerNode
	nextCheckpoint *chaincfg.Checkpoint
}

// findNextHeaderCheckpoint returns the next checkpoint after the passed height.
// It returns nil when there is not one either because the height is already
// later than the final checkpoint or checkpoints are disabled.
func (sm *HeaderSyncManager) findNextHeaderCheckpoint(height int32) *chaincfg.Checkpoint {
	if sm.disableCheckpoints {
		return nil
	}
	checkpoints := sm.chainParams.Checkpoints.Checkpoints()
	if len(checkpoints) == 0 {
		return nil
	}

	// There is no next checkpoint if the height is already after the final
	// checkpoint.
	finalCheckpoint := &checkpoints[len(checkpoints)-1]
	if height >= finalCheckpoint.Height {
		return nil
	}

	// Find the next checkpoint.
	nextCheckpoint := finalCheckpoint
	for i := len(checkpoints) - 2; i >= 0; i-- {
		if height >= checkpoints[i].Height {
			break
		}
		nextCheckpoint = &checkpoints[i]
	}
	return nextCheckpoint
}

// passedCheckpointHeight returns the height of the highest checkpoint at or
// below the best header, or -1 when none has been reached.
func (sm *HeaderSyncManager) passedCheckpointHeight() int32 {
	if sm.disableCheckpoints {
		return -1
	}
	best := sm.best().height
	passed := int32(-1)
	for _, cp := range sm.chainParams.Checkpoints.Checkpoints() {
		if cp.Height > best {
			break
		}
		passed = cp.Height
	}
	return passed
}

// best returns the tip of the best header chain.
func (sm *HeaderSyncManager) best() *headerNode {
	return sm.mainChain[len(sm.mainChain)-1]
}

// setBest makes node the tip of the best chain, rewinding the main chain to
// the fork point first when node is on a side branch.
func (sm *HeaderSyncManager) setBest(node *headerNode) {
	var attach []*headerNode
	for n := node; n != nil; n = n.parent {
		if int(n.height) < len(sm.mainChain) && sm.mainChain[n.height] == n {
			break
		}
		attach = append(attach, n)
	}
	forkHeight := node.height - int32(len(attach))
	sm.mainChain = sm.mainChain[:forkHeight+1]
	for i := len(attach) - 1; i >= 0; i-- {
		sm.mainChain = append(sm.mainChain, attach[i])
	}
}

// checkProofOfWork ensures a proof-of-work era header hash is not above its
// target and that the target is within the network limit.
func (sm *HeaderSyncManager) checkProofOfWork(header *wire.BlockHeader,
	hash *chainhash.Hash, height int32) error {

	params := sm.chainParams
	if params.SkipProofOfWorkCheck || height > params.LastPowBlock {
		return nil
	}

	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 || target.Cmp(params.PowLimit) > 0 {
		return fmt.Errorf("%w: target %064x out of range at height %d",
			ErrHighHash, target, height)
	}
	if blockchain.HashToBig(hash).Cmp(target) > 0 {
		return fmt.Errorf("%w: hash %v above target %064x at height %d",
			ErrHighHash, hash, target, height)
	}
	return nil
}

// checkHeader runs the context checks of a new header at the given height.
func (sm *HeaderSyncManager) checkHeader(header *wire.BlockHeader,
	hash *chainhash.Hash, height int32, passedCheckpoint int32) error {

	if err := sm.checkProofOfWork(header, hash, height); err != nil {
		return err
	}
	if sm.disableCheckpoints {
		return nil
	}

	// Known headers are skipped before this point, so any new header at
	// or below the last passed checkpoint starts a side chain.
	if height <= passedCheckpoint {
		return fmt.Errorf("%w: header %v at height %d, checkpoint at "+
			"height %d", ErrForkBelowCheckpoint, hash, height,
			passedCheckpoint)
	}
	if sm.chainParams.Checkpoints.Verify(height, hash) == chaincfg.CheckpointMismatch {
		want, _ := sm.chainParams.Checkpoints.Lookup(height)
		return fmt.Errorf("%w: height %d hash %v, expected %v",
			ErrCheckpointMismatch, height, hash, want)
	}
	return nil
}

// banPeer remembers the peer as banned and disconnects it.
func (sm *HeaderSyncManager) banPeer(peer Peer) {
	sm.banned.Add(peer.Addr())
	peer.Disconnect()
}

// handleHeadersMsg links the headers of a batch into the header index.  The
// batch is all or nothing: a header that fails any check discards the whole
// batch.
func (sm *HeaderSyncManager) handleHeadersMsg(hmsg *headersMsg) error {
	peer := hmsg.peer
	if sm.banned.Contains(peer.Addr()) {
		log.Debugf("Ignoring headers from banned peer %s", peer.Addr())
		return fmt.Errorf("%w: %s", ErrBannedPeer, peer.Addr())
	}

	msg := hmsg.headers
	numHeaders := len(msg.Headers)

	// Nothing to do for an empty headers message.
	if numHeaders == 0 {
		return nil
	}

	passedCheckpoint := sm.passedCheckpointHeight()
	staged := make(map[chainhash.Hash]*headerNode, numHeaders)
	var (
		prevNode *headerNode
		newNodes []*headerNode
	)
	for i, blockHeader := range msg.Headers {
		hash := quark.BlockHash(blockHeader)
		if node, ok := sm.index[hash]; ok {
			prevNode = node
			continue
		}
		if node, ok := staged[hash]; ok {
			prevNode = node
			continue
		}

		var parent *headerNode
		switch {
		case prevNode != nil && blockHeader.PrevBlock.IsEqual(&prevNode.hash):
			parent = prevNode
		case i == 0:
			parent = sm.index[blockHeader.PrevBlock]
		}
		if parent == nil {
			log.Debugf("Received unconnected header %d/%d from peer %s "+
				"(previous block %v)", i+1, numHeaders, peer.Addr(),
				blockHeader.PrevBlock)
			return fmt.Errorf("%w: previous block %v", ErrUnconnectedHeaders,
				blockHeader.PrevBlock)
		}

		height := parent.height + 1
		err := sm.checkHeader(blockHeader, &hash, height, passedCheckpoint)
		if err != nil {
			switch {
			case errors.Is(err, ErrCheckpointMismatch):
				log.Warnf("Block header at height %d/hash %s from peer "+
					"%s does NOT match expected checkpoint -- "+
					"disconnecting", height, hash, peer.Addr())
			case errors.Is(err, ErrForkBelowCheckpoint):
				log.Warnf("Block header at height %d/hash %s from peer "+
					"%s forks below checkpoint at height %d -- "+
					"disconnecting", height, hash, peer.Addr(),
					passedCheckpoint)
			default:
				log.Warnf("Received block header from peer %v failed "+
					"header verification -- disconnecting: %v",
					peer.Addr(), err)
			}
			sm.banPeer(peer)
			return err
		}

		work := blockchain.CalcWork(blockHeader.Bits)
		node := &headerNode{
			height:  height,
			hash:    hash,
			parent:  parent,
			header:  *blockHeader,
			workSum: work.Add(work, parent.workSum),
		}
		staged[hash] = node
		newNodes = append(newNodes, node)
		prevNode = node
	}

	for _, node := range newNodes {
		sm.index[node.hash] = node
		if node.workSum.Cmp(sm.best().workSum) > 0 {
			sm.setBest(node)
		}
	}

	best := sm.best()
	sm.progressLogger.LogHeaderHeight(len(newNodes), best.height,
		best.header.Timestamp)

	if sm.nextCheckpoint != nil && best.height >= sm.nextCheckpoint.Height {
		cpNode := sm.mainChain[sm.nextCheckpoint.Height]
		log.Infof("Verified downloaded block header against checkpoint "+
			"at height %d/hash %s", cpNode.height, cpNode.hash)
		sm.nextCheckpoint = sm.findNextHeaderCheckpoint(best.height)
		if sm.nextCheckpoint == nil {
			log.Infof("Passed the final checkpoint at height %d",
				sm.chainParams.Checkpoints.LatestCheckpointHeight())
		}
	}
	return nil
}

// headerHandler is the main handler for the sync manager.  It must be run
// as a goroutine.  It processes headers messages in a separate goroutine
// from the peer handlers so the header index is only touched here.
func (sm *HeaderSyncManager) headerHandler() {
out:
	for {
		select {
		case m := <-sm.msgChan:
			switch msg := m.(type) {
			case *headersMsg:
				err := sm.handleHeadersMsg(msg)
				if msg.reply != nil {
					msg.reply <- err
				}

			case bestHeaderMsg:
				msg.reply <- sm.best()

			default:
				log.Warnf("Invalid message type in header "+
					"handler: %T", msg)
			}

		case <-sm.quit:
			break out
		}
	}

	// Answer anything still queued so callers waiting on a reply return.
drain:
	for {
		select {
		case m := <-sm.msgChan:
			switch msg := m.(type) {
			case *headersMsg:
				if msg.reply != nil {
					msg.reply <- ErrShuttingDown
				}
			case bestHeaderMsg:
				msg.reply <- nil
			}
		default:
			break drain
		}
	}

	sm.wg.Done()
	log.Trace("Header handler done")
}

// QueueHeaders adds the passed headers message and peer to the header
// handling queue.  The result of processing is sent on done when it is not
// nil, so done should be buffered.
func (sm *HeaderSyncManager) QueueHeaders(headers *wire.MsgHeaders, peer Peer, done chan error) {
	// Don't accept more headers if we're shutting down.
	if atomic.LoadInt32(&sm.shutdown) != 0 {
		if done != nil {
			done <- ErrShuttingDown
		}
		return
	}

	sm.msgChan <- &headersMsg{headers: headers, peer: peer, reply: done}
}

// ProcessHeaders queues the headers and waits for the result.
func (sm *HeaderSyncManager) ProcessHeaders(headers *wire.MsgHeaders, peer Peer) error {
	done := make(chan error, 1)
	sm.QueueHeaders(headers, peer, done)
	return <-done
}

// bestNode asks the handler for the best header node.  It returns nil once
// the manager is shutting down.
func (sm *HeaderSyncManager) bestNode() *headerNode {
	if atomic.LoadInt32(&sm.shutdown) != 0 {
		return nil
	}
	reply := make(chan *headerNode, 1)
	sm.msgChan <- bestHeaderMsg{reply: reply}
	return <-reply
}

// BestHeader returns the hash and height of the tip of the best header
// chain.  It returns a nil hash and height -1 once the manager is shutting
// down.
func (sm *HeaderSyncManager) BestHeader() (*chainhash.Hash, int32) {
	node := sm.bestNode()
	if node == nil {
		return nil, -1
	}
	hash := node.hash
	return &hash, node.height
}

// IsBanned returns whether the peer address was banned for sending invalid
// headers.
func (sm *HeaderSyncManager) IsBanned(addr string) bool {
	return sm.banned.Contains(addr)
}

// Progress estimates how far the header chain has synced, as a fraction in
// [0, 1].  Headers carry no transaction counts, so every block is counted
// as a single transaction.
func (sm *HeaderSyncManager) Progress() float64 {
	node := sm.bestNode()
	if node == nil {
		return 0
	}
	tip := chaincfg.ChainTip{
		Height:  node.height,
		TxCount: int64(node.height) + 1,
		Time:    node.header.Timestamp,
	}
	return sm.chainParams.Checkpoints.EstimateSyncProgress(tip, sm.timeSource())
}

// Start begins the core header handler which processes headers messages.
func (sm *HeaderSyncManager) Start() {
	// Already started?
	if atomic.AddInt32(&sm.started, 1) != 1 {
		return
	}

	log.Trace("Starting header sync manager")
	sm.wg.Add(1)
	go sm.headerHandler()
}

// Stop gracefully shuts down the sync manager by stopping all asynchronous
// handlers and waiting for them to finish.
func (sm *HeaderSyncManager) Stop() error {
	if atomic.AddInt32(&sm.shutdown, 1) != 1 {
		log.Warnf("Header sync manager is already in the process of " +
			"shutting down")
		return nil
	}

	log.Infof("Header sync manager shutting down")
	close(sm.quit)
	sm.wg.Wait()
	return nil
}

// New constructs a new HeaderSyncManager rooted at the genesis block of the
// configured network.  Use Start to begin processing headers.
func New(config *Config) (*HeaderSyncManager, error) {
	if config.ChainParams == nil {
		return nil, errors.New("netsync: no chain parameters")
	}
	queueSize := config.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	timeSource := config.TimeSource
	if timeSource == nil {
		timeSource = time.Now
	}

	params := config.ChainParams
	genesis := &headerNode{
		height:  0,
		hash:    *params.GenesisHash,
		header:  params.GenesisBlock.Header,
		workSum: blockchain.CalcWork(params.GenesisBlock.Header.Bits),
	}

	sm := HeaderSyncManager{
		chainParams:        params,
		disableCheckpoints: config.DisableCheckpoints,
		timeSource:         timeSource,
		progressLogger:     newHeaderProgressLogger("Processed", log),
		banned:             lru.NewCache(maxBannedPeers),
		msgChan:            make(chan interface{}, queueSize),
		quit:               make(chan struct{}),
		index:              map[chainhash.Hash]*headerNode{genesis.hash: genesis},
		mainChain:          []*headerNode{genesis},
	}

	if !sm.disableCheckpoints {
		// Initialize the next checkpoint based on the current height.
		sm.nextCheckpoint = sm.findNextHeaderCheckpoint(0)
	} else {
		log.Info("Checkpoints are disabled")
	}

	return &sm, nil
}
