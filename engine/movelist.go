// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// maxMoves bounds the number of legal moves in any reachable chess
// position; 218 is the known maximum, rounded up to a convenient power.
const maxMoves = 256

// MoveList is a fixed-capacity, stack-allocated buffer of moves. It
// never allocates on the heap, so it is safe to use in the hottest part
// of move generation.
type MoveList struct {
	moves [maxMoves]Move
	n     int
}

// Add appends m. Beyond maxMoves entries are silently dropped; no legal
// chess position reaches that many moves, so this is purely a safety net.
func (l *MoveList) Add(m Move) {
	if l.n < len(l.moves) {
		l.moves[l.n] = m
		l.n++
	}
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Moves returns the stored moves as a slice backed by the list's own
// array; it is only valid until the list is reset or reused.
func (l *MoveList) Moves() []Move { return l.moves[:l.n] }

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.n = 0 }
