// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btcd/wire"

	"github.com/MasterCoreCoin/mastercorecoin/netsync"
)

// filePeer stands in for a remote peer when headers are read from a file.
type filePeer struct {
	path string
}

// Addr returns the file path.
func (p *filePeer) Addr() string { return p.path }

// Disconnect is a no-op.  A rejected file simply stops being read.
func (p *filePeer) Disconnect() {}

// readHeaders reads consecutive serialized block headers from r and hands them
// to fn in batches of at most batchSize.  The stream must end on a header
// boundary.
func readHeaders(r io.Reader, batchSize int, fn func(*wire.MsgHeaders) error) (int, error) {
	if batchSize <= 0 || batchSize > wire.MaxBlockHeadersPerMsg {
		batchSize = wire.MaxBlockHeadersPerMsg
	}

	total := 0
	msg := wire.NewMsgHeaders()
	flush := func() error {
		if len(msg.Headers) == 0 {
			return nil
		}
		if err := fn(msg); err != nil {
			return err
		}
		total += len(msg.Headers)
		msg = wire.NewMsgHeaders()
		return nil
	}

	var buf [wire.MaxBlockHeaderPayload]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("header %d: %w", total+len(msg.Headers), err)
		}
		var header wire.BlockHeader
		if err := header.Deserialize(bytes.NewReader(buf[:])); err != nil {
			return total, err
		}
		if err := msg.AddBlockHeader(&header); err != nil {
			return total, err
		}
		if len(msg.Headers) == batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}

// importHeaders feeds the headers stored in path through the sync manager.
// The first header in the file must be the child of the genesis block.
func importHeaders(path string, sm *netsync.HeaderSyncManager, interrupt <-chan struct{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	peer := &filePeer{path: path}
	n, err := readHeaders(bufio.NewReader(f), wire.MaxBlockHeadersPerMsg,
		func(msg *wire.MsgHeaders) error {
			if interruptRequested(interrupt) {
				return errInterrupted
			}
			return sm.ProcessHeaders(msg, peer)
		})
	if err != nil {
		return fmt.Errorf("import headers from %s: %w", path, err)
	}

	hash, height := sm.BestHeader()
	mccdLog.Infof("Imported %d headers from %s, best header %v (height %d)",
		n, path, hash, height)
	return nil
}

// errInterrupted is returned when an import is cut short by an interrupt.
var errInterrupted = errors.New("interrupted")
