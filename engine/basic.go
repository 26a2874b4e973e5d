// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
)

// Square identifies one of the 64 squares of the board.
//
// Squares are numbered 0 to 63, a1 is 0, h1 is 7, a8 is 56 and h8 is 63.
// Rank is Square/8, File is Square%8.
type Square uint8

const (
	SquareA1, SquareB1, SquareC1, SquareD1, SquareE1, SquareF1, SquareG1, SquareH1 = Square(iota * 8), Square(iota*8 + 1), Square(iota*8 + 2), Square(iota*8 + 3), Square(iota*8 + 4), Square(iota*8 + 5), Square(iota*8 + 6), Square(iota*8 + 7)
	SquareA2, SquareB2, SquareC2, SquareD2, SquareE2, SquareF2, SquareG2, SquareH2
	SquareA3, SquareB3, SquareC3, SquareD3, SquareE3, SquareF3, SquareG3, SquareH3
	SquareA4, SquareB4, SquareC4, SquareD4, SquareE4, SquareF4, SquareG4, SquareH4
	SquareA5, SquareB5, SquareC5, SquareD5, SquareE5, SquareF5, SquareG5, SquareH5
	SquareA6, SquareB6, SquareC6, SquareD6, SquareE6, SquareF6, SquareG6, SquareH6
	SquareA7, SquareB7, SquareC7, SquareD7, SquareE7, SquareF7, SquareG7, SquareH7
	SquareA8, SquareB8, SquareC8, SquareD8, SquareE8, SquareF8, SquareG8, SquareH8

	// SquareNone is a sentinel meaning "no square", used for an absent
	// en-passant target. It is never a legal square to move to or from.
	SquareNone = Square(64)
)

// RankFile builds a Square out of a zero-based rank and file.
func RankFile(rank, file int) Square {
	return Square(rank*8 + file)
}

// SquareFromString parses a square in algebraic notation, e.g. "e4".
func SquareFromString(s string) (Square, error) {
	if len(s) != 2 {
		return SquareA1, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareA1, fmt.Errorf("invalid square %q", s)
	}
	return RankFile(rank, file), nil
}

// Bitboard returns the bitboard with only this square set.
func (sq Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Rank returns the rank, 0 to 7, of the square.
func (sq Square) Rank() int {
	return int(sq / 8)
}

// File returns the file, 0 to 7, of the square.
func (sq Square) File() int {
	return int(sq % 8)
}

// Relative mirrors the square vertically when color is Black, leaving it
// unchanged for White. Useful for writing color-agnostic pawn logic.
func (sq Square) Relative(c Color) Square {
	if c == Black {
		return sq ^ 56
	}
	return sq
}

func (sq Square) String() string {
	if sq == SquareNone {
		return "-"
	}
	return string([]byte{byte(sq.File()) + 'a', byte(sq.Rank()) + '1'})
}

// Piece identifies the type of a chess piece, ignoring color.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	PieceArraySize = int(King) + 1
	PieceMinValue  = Pawn
	PieceMaxValue  = King
)

var pieceSymbol = [PieceArraySize]byte{
	NoPiece: '.',
	Pawn:    'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k',
}

func (pc Piece) String() string {
	return string([]byte{pieceSymbol[pc]})
}

// Color identifies a chess side.
type Color uint8

const (
	White Color = iota
	Black

	ColorArraySize = int(Black) + 1
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastleRights is a bitmask of the four castling privileges.
type CastleRights uint8

const (
	CastleWK CastleRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ

	NoCastleRights  CastleRights = 0
	AnyCastleRights              = CastleWK | CastleWQ | CastleBK | CastleBQ

	CastleRightsArraySize = int(AnyCastleRights) + 1
)

func (c CastleRights) Has(flag CastleRights) bool {
	return c&flag != 0
}

func (c CastleRights) String() string {
	if c == NoCastleRights {
		return "-"
	}
	s := make([]byte, 0, 4)
	if c.Has(CastleWK) {
		s = append(s, 'K')
	}
	if c.Has(CastleWQ) {
		s = append(s, 'Q')
	}
	if c.Has(CastleBK) {
		s = append(s, 'k')
	}
	if c.Has(CastleBQ) {
		s = append(s, 'q')
	}
	return string(s)
}
