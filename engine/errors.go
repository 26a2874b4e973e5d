// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// FenErrorKind tags the reason a FEN string was rejected.
type FenErrorKind uint8

const (
	ErrUnexpectedChar FenErrorKind = iota
	ErrBadFieldCount
	ErrBadPlacement
	ErrBadSideToMove
	ErrBadCastling
	ErrBadEnPassant
	ErrBadClock
	ErrBadKingCount
	ErrSideNotToMoveInCheck
	ErrPawnOnBackRank
)

// FenParseError reports why ParseFEN rejected its input.
type FenParseError struct {
	Kind FenErrorKind
	Msg  string
}

func (e *FenParseError) Error() string { return "fen: " + e.Msg }

// UciErrorKind tags the reason a UCI move string was rejected.
type UciErrorKind uint8

const (
	// ErrMalformedMove means the string itself is not a well-formed
	// UCI move (wrong length, bad squares, bad promotion letter).
	ErrMalformedMove UciErrorKind = iota
	// ErrNotLegalInPosition means the string is well-formed but does
	// not match any legal move in the given position.
	ErrNotLegalInPosition
)

// UciMoveError reports why MakeUCIMove rejected its input.
type UciMoveError struct {
	Kind UciErrorKind
	Msg  string
}

func (e *UciMoveError) Error() string { return "uci move: " + e.Msg }
