// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// MoveFlag classifies a Move: whether it is quiet, a capture, a double
// pawn push, a castle, an en-passant capture or a promotion.
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEnPassant
	FlagPromoN
	FlagPromoB
	FlagPromoR
	FlagPromoQ
	FlagPromoCaptureN
	FlagPromoCaptureB
	FlagPromoCaptureR
	FlagPromoCaptureQ
)

// Move packs a from-square, to-square and flag into 16 bits: 6 bits from,
// 6 bits to, 4 bits flag.
type Move uint16

const (
	moveToMask   = 0x003F
	moveFromBits = 6
	moveFromMask = 0x0FC0
	moveFlagBits = 12
)

// NewMove builds a Move out of its components.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to) | Move(from)<<moveFromBits | Move(flag)<<moveFlagBits
}

func (m Move) From() Square   { return Square((m & moveFromMask) >> moveFromBits) }
func (m Move) To() Square     { return Square(m & moveToMask) }
func (m Move) Flag() MoveFlag { return MoveFlag(m >> moveFlagBits) }

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and promotion captures.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant, FlagPromoCaptureN, FlagPromoCaptureB, FlagPromoCaptureR, FlagPromoCaptureQ:
		return true
	}
	return false
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoN
}

// PromotionPiece returns the piece a pawn promotes to, or NoPiece.
func (m Move) PromotionPiece() Piece {
	switch m.Flag() {
	case FlagPromoN, FlagPromoCaptureN:
		return Knight
	case FlagPromoB, FlagPromoCaptureB:
		return Bishop
	case FlagPromoR, FlagPromoCaptureR:
		return Rook
	case FlagPromoQ, FlagPromoCaptureQ:
		return Queen
	}
	return NoPiece
}

// IsTactical reports whether the move belongs to the Tactical class:
// captures, en-passant and queen promotions (plain or capturing).
// Everything else, including under-promotions and castling, is Quiet.
func (m Move) IsTactical() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant, FlagPromoQ, FlagPromoCaptureQ:
		return true
	}
	return false
}

// IsQuiet is the complement of IsTactical.
func (m Move) IsQuiet() bool {
	return !m.IsTactical()
}

// UCI renders the move in the long algebraic form used by the UCI
// protocol, e.g. "e2e4" or "a7a8q".
func (m Move) UCI() string {
	s := m.From().String() + m.To().String()
	if p := m.PromotionPiece(); p != NoPiece {
		s += p.String()
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}

// MoveFilter selects which classes of moves a generator pass emits. It
// is a type-level parameter so the generator specializes at compile
// time instead of branching on a runtime flag in the hot loop.
type MoveFilter interface {
	admitQuiet() bool
	admitTactical() bool
}

// AllMoves admits every legal move.
type AllMoves struct{}

func (AllMoves) admitQuiet() bool    { return true }
func (AllMoves) admitTactical() bool { return true }

// QuietMoves admits only moves for which IsQuiet holds: non-captures other
// than queen promotions, castles, and under-promotions with or without
// capture.
type QuietMoves struct{}

func (QuietMoves) admitQuiet() bool    { return true }
func (QuietMoves) admitTactical() bool { return false }

// TacticalMoves admits only moves for which IsTactical holds: plain
// captures, en-passant and queen promotions with or without capture.
type TacticalMoves struct{}

func (TacticalMoves) admitQuiet() bool    { return false }
func (TacticalMoves) admitTactical() bool { return true }
