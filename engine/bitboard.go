// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "math/bits"

// Bitboard is a set of squares, one bit per square, a1 is the LSB and h8
// is the MSB.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = 0xFFFFFFFFFFFFFFFF

	notAFile Bitboard = 0xfefefefefefefefe
	notHFile Bitboard = 0x7f7f7f7f7f7f7f7f
)

// FileMask holds one bitboard per file, index 0 is the a-file.
var FileMask [8]Bitboard

// RankMask holds one bitboard per rank, index 0 is rank 1.
var RankMask [8]Bitboard

// DiagMask holds one bitboard per a1-h8 diagonal, indexed by file-rank+7.
var DiagMask [15]Bitboard

// AntiDiagMask holds one bitboard per a8-h1 diagonal, indexed by file+rank.
var AntiDiagMask [15]Bitboard

func init() {
	for sq := Square(0); sq < 64; sq++ {
		FileMask[sq.File()] |= sq.Bitboard()
		RankMask[sq.Rank()] |= sq.Bitboard()
		DiagMask[sq.File()-sq.Rank()+7] |= sq.Bitboard()
		AntiDiagMask[sq.File()+sq.Rank()] |= sq.Bitboard()
	}
}

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bitboard() != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bitboard()
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bitboard()
}

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the bitboard containing only the lowest-indexed set square.
func (b Bitboard) LSB() Bitboard {
	return b & -b
}

// ToSquare returns the lowest-indexed set square of b. ok is false only
// when b is empty; a multi-square b yields its LSB square.
func (b Bitboard) ToSquare() (sq Square, ok bool) {
	if b == 0 {
		return SquareNone, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// PopLSB removes and returns the lowest-indexed set square of *b.
// Calling PopLSB on an empty bitboard returns SquareNone and leaves it
// empty; callers must guard the loop with a "b != 0" test.
func (b *Bitboard) PopLSB() Square {
	sq := Square(bits.TrailingZeros64(uint64(*b)))
	*b &= *b - 1
	return sq
}

func (b Bitboard) Up() Bitboard    { return b << 8 }
func (b Bitboard) Down() Bitboard  { return b >> 8 }
func (b Bitboard) Left() Bitboard  { return (b & notAFile) >> 1 }
func (b Bitboard) Right() Bitboard { return (b & notHFile) << 1 }

func (b Bitboard) UpLeft() Bitboard    { return (b & notAFile) << 7 }
func (b Bitboard) UpRight() Bitboard   { return (b & notHFile) << 9 }
func (b Bitboard) DownLeft() Bitboard  { return (b & notAFile) >> 9 }
func (b Bitboard) DownRight() Bitboard { return (b & notHFile) >> 7 }

// UpFor shifts towards the opponent's back rank as seen by c.
func (b Bitboard) UpFor(c Color) Bitboard {
	if c == White {
		return b.Up()
	}
	return b.Down()
}

// DownFor shifts towards c's own back rank.
func (b Bitboard) DownFor(c Color) Bitboard {
	if c == White {
		return b.Down()
	}
	return b.Up()
}

func (b Bitboard) UpLeftFor(c Color) Bitboard {
	if c == White {
		return b.UpLeft()
	}
	return b.DownRight()
}

func (b Bitboard) UpRightFor(c Color) Bitboard {
	if c == White {
		return b.UpRight()
	}
	return b.DownLeft()
}
