// Copyright (c) 2019 The MasterCoreCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package quark implements the Quark chained hash used to identify
// MasterCoreCoin block headers.
//
// Quark runs nine rounds of 512-bit hash functions (BLAKE, BMW, Grøstl, JH,
// Keccak and Skein).  Three of the rounds choose between two functions based
// on bit 3 of the first byte of the previous round's digest.  The block hash
// is the first 32 bytes of the final digest.
package quark

import (
	"bytes"
	stdhash "hash"

	"github.com/bitbandi/go-x11/blake"
	"github.com/bitbandi/go-x11/bmw"
	"github.com/bitbandi/go-x11/groest"
	x11hash "github.com/bitbandi/go-x11/hash"
	"github.com/bitbandi/go-x11/jhash"
	"github.com/bitbandi/go-x11/skein"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"golang.org/x/crypto/sha3"
)

// digestSize is the size of every intermediate digest.
const digestSize = 64

// selectMask is the bit of the first digest byte that picks between the
// two functions of a branching round.
const selectMask = 0x08

// Hasher holds the digest states required to compute Quark hashes.  A Hasher
// may be reused for any number of hashes but is not safe for concurrent use.
type Hasher struct {
	ta [digestSize]byte
	tb [digestSize]byte

	blake   x11hash.Digest
	bmw     x11hash.Digest
	groestl x11hash.Digest
	jh      x11hash.Digest
	skein   x11hash.Digest
	keccak  stdhash.Hash
}

// New returns a Hasher ready for use.
func New() *Hasher {
	return &Hasher{
		blake:   blake.New(),
		bmw:     bmw.New(),
		groestl: groest.New(),
		jh:      jhash.New(),
		skein:   skein.New(),
		keccak:  sha3.NewLegacyKeccak512(),
	}
}

// round feeds src through d and leaves the digest in dst.  Close resets the
// digest, so the state is ready for the next round.
func round(d x11hash.Digest, src, dst []byte) {
	d.Write(src)
	d.Close(dst, 0, 0)
}

// keccakRound is round for the Keccak-512 step, which comes from x/crypto
// and therefore follows the standard library hash interface.
func (q *Hasher) keccakRound(src, dst []byte) {
	q.keccak.Reset()
	q.keccak.Write(src)
	q.keccak.Sum(dst[:0])
}

// Sum returns the Quark hash of src.
func (q *Hasher) Sum(src []byte) chainhash.Hash {
	a, b := q.ta[:], q.tb[:]

	round(q.blake, src, a)
	round(q.bmw, a, b)
	if b[0]&selectMask != 0 {
		round(q.groestl, b, a)
	} else {
		round(q.skein, b, a)
	}

	round(q.groestl, a, b)
	round(q.jh, b, a)
	if a[0]&selectMask != 0 {
		round(q.blake, a, b)
	} else {
		round(q.bmw, a, b)
	}

	q.keccakRound(b, a)
	round(q.skein, a, b)
	if b[0]&selectMask != 0 {
		q.keccakRound(b, a)
	} else {
		round(q.jh, b, a)
	}

	var h chainhash.Hash
	copy(h[:], a[:chainhash.HashSize])
	return h
}

// Hash returns the Quark hash of b.
func Hash(b []byte) chainhash.Hash {
	return New().Sum(b)
}

// BlockHash returns the Quark hash of the serialized block header, which is
// the identifier of the block on the MasterCoreCoin networks.
func BlockHash(header *wire.BlockHeader) chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(wire.MaxBlockHeaderPayload)

	// Serializing into a bytes.Buffer cannot fail.
	_ = header.Serialize(&buf)
	return Hash(buf.Bytes())
}
