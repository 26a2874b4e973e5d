// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// zobrist.go holds the random keys used for incremental Zobrist hashing.
//
// More information on Zobrist hashing can be found in the paper:
// http://research.cs.wisc.edu/techreports/1970/TR88.pdf

package engine

import "math/rand"

var (
	// ZobristPiece[color][piece][sq] is xored in when a piece of the
	// given color sits on sq.
	ZobristPiece [ColorArraySize][PieceArraySize][64]uint64

	// ZobristSideToMove is xored in when it is Black's move.
	ZobristSideToMove uint64

	// ZobristCastle[rights] is xored in for the current castling rights
	// value, one key per 4-bit combination.
	ZobristCastle [CastleRightsArraySize]uint64

	// ZobristEnPassantFile[file] is xored in when an en-passant capture
	// is actually available on that file.
	ZobristEnPassantFile [8]uint64
)

// rand64 draws a full 64-bit random value out of r, which on some
// platforms only produces 63 usable bits per call.
func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))

	for c := Color(0); int(c) < ColorArraySize; c++ {
		for p := PieceMinValue; p <= PieceMaxValue; p++ {
			for sq := 0; sq < 64; sq++ {
				ZobristPiece[c][p][sq] = rand64(r)
			}
		}
	}

	ZobristSideToMove = rand64(r)

	for i := range ZobristCastle {
		ZobristCastle[i] = rand64(r)
	}

	for i := range ZobristEnPassantFile {
		ZobristEnPassantFile[i] = rand64(r)
	}
}
