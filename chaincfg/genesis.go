// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/MasterCoreCoin/mastercorecoin/chaincfg/quark"
)

// genesisTimestamp is the message embedded in the coinbase of every genesis
// block.
const genesisTimestamp = "By MasterCoreCoin Devs 2019"

// genesisPubKey is the uncompressed public key paid by the genesis coinbase.
const genesisPubKey = "04afc8b7ed7b0a825ded476c253713e16628a6ba19f08e43d9a3f6890aed" +
	"1700fa9d4d8539dec50747b88e9ea6c6db3a5c12d4b2e64bf4fb658bf656e285184757"

// Main network genesis identity.  The test network shares it.
const (
	mainGenesisHashStr       = "0000097b575ab70b0eb8ae6c5ded0fa5e271a2e5fd3c35d3224d96e48ae0c4b6"
	mainGenesisMerkleRootStr = "de80287f4a349b411fc5d59c409b280ff1f2a3132b54ffeca8267a54a43b6534"
	mainGenesisTime          = 1557320856
	mainGenesisBits          = 0x1e0ffff0
	mainGenesisNonce         = 412962
)

// Regression test network genesis header fields.  Its hash is computed, not
// asserted.
const (
	regTestGenesisTime  = 1516926684
	regTestGenesisBits  = 0x207fffff
	regTestGenesisNonce = 20542300
)

// newGenesisCoinbaseTx returns the coinbase transaction of the genesis block
// shared by every network.
func newGenesisCoinbaseTx() *wire.MsgTx {
	sigScript := []byte{
		0x04, 0xff, 0xff, 0x00, 0x1d, // push 486604799
		0x01, 0x04, // push 4
		byte(len(genesisTimestamp)),
	}
	sigScript = append(sigScript, genesisTimestamp...)

	pubKey := hexDecode(genesisPubKey)
	pkScript := make([]byte, 0, len(pubKey)+2)
	pkScript = append(pkScript, byte(len(pubKey)))
	pkScript = append(pkScript, pubKey...)
	pkScript = append(pkScript, 0xac) // OP_CHECKSIG

	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: wire.MaxPrevOutIndex,
				},
				SignatureScript: sigScript,
				Sequence:        wire.MaxTxInSequenceNum,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    0,
				PkScript: pkScript,
			},
		},
		LockTime: 0,
	}
}

// newGenesisBlock builds a genesis block with the given header fields.  The
// block is freshly allocated so callers may own it outright.
func newGenesisBlock(timestamp int64, bits, nonce uint32) *wire.MsgBlock {
	coinbase := newGenesisCoinbaseTx()
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbase.TxHash(),
			Timestamp:  time.Unix(timestamp, 0),
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
}

// genesisHash returns the Quark hash of the genesis block header.
func genesisHash(block *wire.MsgBlock) *chainhash.Hash {
	hash := quark.BlockHash(&block.Header)
	return &hash
}

// assertGenesis computes the hash of block and panics unless both the hash
// and the merkle root equal the hard-coded literals.  A mismatch means the
// compiled-in parameters are corrupt and nothing built on them can be
// trusted.
func assertGenesis(name string, block *wire.MsgBlock, wantHash, wantMerkle string) *chainhash.Hash {
	hash := genesisHash(block)
	if !hash.IsEqual(newHashFromStr(wantHash)) {
		panic(fmt.Sprintf("%s genesis hash mismatch: got %v, want %v",
			name, hash, wantHash))
	}
	if !block.Header.MerkleRoot.IsEqual(newHashFromStr(wantMerkle)) {
		panic(fmt.Sprintf("%s genesis merkle root mismatch: got %v, want %v",
			name, block.Header.MerkleRoot, wantMerkle))
	}
	return hash
}
