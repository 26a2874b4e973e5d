// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func parseFENExpectKind(t *testing.T, fen string, want FenErrorKind) {
	t.Helper()
	_, err := ParseFEN(fen)
	if err == nil {
		t.Fatalf("ParseFEN(%q) succeeded, want error kind %v", fen, want)
	}
	ferr, ok := err.(*FenParseError)
	if !ok {
		t.Fatalf("ParseFEN(%q) returned %T, want *FenParseError", fen, err)
	}
	if ferr.Kind != want {
		t.Errorf("ParseFEN(%q) kind = %v, want %v (%v)", fen, ferr.Kind, want, ferr)
	}
}

func TestParseFENRejectsBadFieldCount(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", ErrBadFieldCount)
}

func TestParseFENRejectsUnexpectedChar(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrUnexpectedChar)
}

func TestParseFENRejectsBadPlacementRankCount(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", ErrBadPlacement)
}

func TestParseFENRejectsBadPlacementRankSum(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrBadPlacement)
}

func TestParseFENRejectsPawnOnBackRank(t *testing.T) {
	parseFENExpectKind(t, "Pnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrPawnOnBackRank)
}

func TestParseFENRejectsBadSideToMove(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", ErrBadSideToMove)
}

func TestParseFENRejectsCastlingWithoutKing(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1", ErrBadCastling)
}

func TestParseFENRejectsCastlingWithoutRook(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", ErrBadCastling)
}

func TestParseFENRejectsDuplicateCastlingFlag(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKqk - 0 1", ErrBadCastling)
}

func TestParseFENRejectsEnPassantWrongRank(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1", ErrBadEnPassant)
}

func TestParseFENRejectsEnPassantWithoutPawnBehind(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1", ErrBadEnPassant)
}

func TestParseFENRejectsBadClock(t *testing.T) {
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", ErrBadClock)
	parseFENExpectKind(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", ErrBadClock)
}

func TestParseFENRejectsBadKingCount(t *testing.T) {
	parseFENExpectKind(t, "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w - - 0 1", ErrBadKingCount)
}

func TestParseFENRejectsSideNotToMoveInCheck(t *testing.T) {
	parseFENExpectKind(t, "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", ErrSideNotToMoveInCheck)
}

func TestParseFENAcceptsStartPosition(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SideToMove() != White {
		t.Errorf("expected White to move")
	}
	if b.CastleRights() != AnyCastleRights {
		t.Errorf("expected all castling rights, got %v", b.CastleRights())
	}
	if _, ok := b.EnPassantSquare(); ok {
		t.Errorf("expected no en-passant square")
	}
}

func TestFENSerializationRoundTripsThroughParse(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
	}
}
