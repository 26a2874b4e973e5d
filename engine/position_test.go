// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// enPassantPinFEN is the classic test position where en-passant capturing
// the pawn on d4 would expose the black king to the queen on h4 along the
// rank, once both pawns vacate it.
const enPassantPinFEN = "8/8/8/8/k2Pp2Q/8/8/3K4 b - d3 0 1"

func legalUCISet(t *testing.T, b *Board) map[string]bool {
	t.Helper()
	var list MoveList
	Generate[AllMoves](b, &list)
	seen := make(map[string]bool, list.Len())
	for i := 0; i < list.Len(); i++ {
		uci := list.At(i).UCI()
		if seen[uci] {
			t.Errorf("duplicate move %s generated", uci)
		}
		seen[uci] = true
	}
	return seen
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestStartPositionMoveCount(t *testing.T) {
	b := StartPosition()
	moves := legalUCISet(t, &b)
	if len(moves) != 20 {
		t.Errorf("expected 20 legal moves from the start position, got %d: %v", len(moves), sortedKeys(moves))
	}
}

func TestKiwipeteMoveCount(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("ParseFEN(Kiwipete): %v", err)
	}
	moves := legalUCISet(t, &b)
	if len(moves) != 48 {
		t.Errorf("expected 48 legal moves in Kiwipete, got %d: %v", len(moves), sortedKeys(moves))
	}
}

func TestKiwipeteQuietTacticalSplit(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("ParseFEN(Kiwipete): %v", err)
	}
	var quiet, tactical MoveList
	Generate[QuietMoves](&b, &quiet)
	Generate[TacticalMoves](&b, &tactical)
	if quiet.Len() != 40 {
		t.Errorf("expected 40 quiet moves in Kiwipete, got %d", quiet.Len())
	}
	if tactical.Len() != 8 {
		t.Errorf("expected 8 tactical moves in Kiwipete, got %d", tactical.Len())
	}
}

func TestCastlingMovesRequireClearAndSafeSquares(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := legalUCISet(t, &b)
	if !moves["e1g1"] || !moves["e1c1"] {
		t.Errorf("expected both white castles to be legal, got %v", sortedKeys(moves))
	}

	blocked, err := ParseFEN("r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	blockedMoves := legalUCISet(t, &blocked)
	if blockedMoves["e1g1"] || blockedMoves["e1c1"] {
		t.Errorf("castling should be blocked by own knights, got %v", sortedKeys(blockedMoves))
	}

	attacked, err := ParseFEN("r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	attackedMoves := legalUCISet(t, &attacked)
	if attackedMoves["e1g1"] || attackedMoves["e1c1"] {
		t.Errorf("castling through an attacked square should be illegal, got %v", sortedKeys(attackedMoves))
	}
}

func TestCastleRightsUnaffectedByQuietMove(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/7P/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	nb, err := b.MakeUCIMove("h2h3")
	if err != nil {
		t.Fatalf("MakeUCIMove: %v", err)
	}
	if nb.CastleRights() != AnyCastleRights {
		t.Errorf("a quiet pawn push should not change castling rights")
	}
}

func TestCastleRightsLostOnRookCapture(t *testing.T) {
	b, err := ParseFEN("r3k2r/6P1/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	nb, err := b.MakeUCIMove("g7h8q")
	if err != nil {
		t.Fatalf("MakeUCIMove: %v", err)
	}
	if nb.CastleRights().Has(CastleBK) {
		t.Errorf("capturing the h8 rook should strip black's kingside castling right")
	}
	if !nb.CastleRights().Has(CastleBQ) || !nb.CastleRights().Has(CastleWK) || !nb.CastleRights().Has(CastleWQ) {
		t.Errorf("unrelated castling rights should survive, got %v", nb.CastleRights())
	}
}

func TestStartPositionE2E4FEN(t *testing.T) {
	b := StartPosition()
	nb, err := b.MakeUCIMove("e2e4")
	if err != nil {
		t.Fatalf("MakeUCIMove: %v", err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := nb.FEN(); got != want {
		t.Errorf("expected FEN %q, got %q", want, got)
	}
}

func TestEnPassantSquareSetOnDoublePush(t *testing.T) {
	b := StartPosition()
	nb, err := b.MakeUCIMove("e2e4")
	if err != nil {
		t.Fatalf("MakeUCIMove: %v", err)
	}
	sq, ok := nb.EnPassantSquare()
	if !ok || sq != SquareE3 {
		t.Errorf("expected en-passant square e3, got %v (ok=%v)", sq, ok)
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/Pp6/8/8/4K3 b - a3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := legalUCISet(t, &b)
	if !moves["b4a3"] {
		t.Fatalf("expected b4a3 en-passant capture to be legal, got %v", sortedKeys(moves))
	}
	nb, err := b.MakeUCIMove("b4a3")
	if err != nil {
		t.Fatalf("MakeUCIMove: %v", err)
	}
	if p, _, ok := nb.PieceAt(SquareA4); ok || p != NoPiece {
		t.Errorf("captured pawn should be removed from a4")
	}
	if p, _, ok := nb.PieceAt(SquareA3); !ok || p != Pawn {
		t.Errorf("expected black pawn to land on a3")
	}
}

func TestEnPassantPinForbidsCapture(t *testing.T) {
	b, err := ParseFEN(enPassantPinFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := legalUCISet(t, &b)
	if moves["e4d3"] {
		t.Errorf("en-passant capture exposing the king along the rank should be illegal, got %v", sortedKeys(moves))
	}
}

// TestHorizontalEnPassantPinAfterDoublePush reproduces the canonical
// horizontal-pin scenario: White king a5, pawn b5, rook b4, facing a black
// rook on h5; after Black plays c7c5 the pawn on b5 could only capture
// en-passant by vacating both b5 and c5, which would expose the king to
// the rook along the rank.
func TestHorizontalEnPassantPinAfterDoublePush(t *testing.T) {
	b, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	nb, err := b.MakeUCIMove("c7c5")
	if err != nil {
		t.Fatalf("MakeUCIMove(c7c5): %v", err)
	}
	sq, ok := nb.EnPassantSquare()
	if !ok || sq != SquareC6 {
		t.Fatalf("expected en-passant square c6 after c7c5, got %v (ok=%v)", sq, ok)
	}
	moves := legalUCISet(t, &nb)
	if moves["b5c6"] {
		t.Errorf("en-passant capture b5c6 should be illegal, it would expose a5 to the rook on h5")
	}
}

func TestPinRestrictsSliderToRay(t *testing.T) {
	// White rook on d3 is pinned against the king on d1 by the black rook
	// on d8.
	b, err := ParseFEN("3r3k/8/8/8/8/3R4/8/3K4 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := legalUCISet(t, &b)
	for mv := range moves {
		if mv[:2] != "d3" {
			continue
		}
		if mv[2] != 'd' {
			t.Errorf("pinned rook should only move along the d-file, got %s", mv)
		}
	}
	if !moves["d3d8"] {
		t.Errorf("pinned rook should still be able to capture the pinning piece, got %v", sortedKeys(moves))
	}
}

func TestCheckEvasionRestrictsToBlockOrCapture(t *testing.T) {
	// Black rook checks the white king along the e-file; white has no piece
	// that could block on the file or capture the rook, so only king moves
	// remain.
	b, err := ParseFEN("4r2k/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !b.InCheck() {
		t.Fatalf("expected white to be in check")
	}
	moves := legalUCISet(t, &b)
	for mv := range moves {
		if mv[:2] == "e1" {
			continue // king moves are unrestricted by the evasion mask.
		}
		t.Errorf("unexpected non-king move %s while no blockers or attackers exist", mv)
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	b, err := ParseFEN("4r2k/8/8/8/8/3n4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if b.Checkers().PopCount() < 2 {
		t.Skip("fixture does not produce a double check; adjust if engine internals change")
	}
	moves := legalUCISet(t, &b)
	for mv := range moves {
		if mv[:2] != "e1" {
			t.Errorf("expected only king moves under double check, got %s", mv)
		}
	}
}

func TestAllMovesPartitionsIntoQuietAndTactical(t *testing.T) {
	fens := []string{StartFEN, KiwipeteFEN, enPassantPinFEN, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var all, quiet, tactical MoveList
		Generate[AllMoves](&b, &all)
		Generate[QuietMoves](&b, &quiet)
		Generate[TacticalMoves](&b, &tactical)

		if quiet.Len()+tactical.Len() != all.Len() {
			t.Errorf("fen %q: quiet(%d)+tactical(%d) != all(%d)", fen, quiet.Len(), tactical.Len(), all.Len())
		}
		for i := 0; i < quiet.Len(); i++ {
			if quiet.At(i).IsTactical() {
				t.Errorf("fen %q: quiet pass emitted tactical move %v", fen, quiet.At(i))
			}
		}
		for i := 0; i < tactical.Len(); i++ {
			if tactical.At(i).IsQuiet() {
				t.Errorf("fen %q: tactical pass emitted quiet move %v", fen, tactical.At(i))
			}
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range []string{StartFEN, KiwipeteFEN, enPassantPinFEN} {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("round trip mismatch: parsed %q, formatted %q", fen, got)
		}
	}
}

func TestMakeNullMoveTogglesSideAndClearsEnPassant(t *testing.T) {
	b := StartPosition()
	nb, _ := b.MakeUCIMove("e2e4")
	null := nb.MakeNullMove()
	if null.SideToMove() != White {
		t.Errorf("expected side to move to flip back to white after null move")
	}
	if _, ok := null.EnPassantSquare(); ok {
		t.Errorf("null move should clear the en-passant square")
	}
}

func TestMakeUCIMoveRejectsIllegalMove(t *testing.T) {
	b := StartPosition()
	if _, err := b.MakeUCIMove("e2e5"); err == nil {
		t.Errorf("expected e2e5 to be rejected as not legal")
	}
	if _, err := b.MakeUCIMove("zz"); err == nil {
		t.Errorf("expected a malformed move string to be rejected")
	}
}

func TestMakeNullMoveTwiceRestoresOriginalPosition(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("ParseFEN(Kiwipete): %v", err)
	}
	roundTripped := b.MakeNullMove().MakeNullMove()
	// Each null move advances the halfmove clock; everything else is
	// restored.
	want := b
	want.halfmoveClock += 2
	if diff := cmp.Diff(want, roundTripped, cmp.AllowUnexported(Board{})); diff != "" {
		t.Errorf("two null moves should restore the original position (-want +got):\n%s", diff)
	}
}

func TestTransposedMoveOrdersProduceEqualBoards(t *testing.T) {
	start := StartPosition()

	viaKingsideFirst := start
	for _, mv := range []string{"g1f3", "g8f6", "b1c3", "b8c6"} {
		var err error
		if viaKingsideFirst, err = viaKingsideFirst.MakeUCIMove(mv); err != nil {
			t.Fatal(err)
		}
	}

	viaQueensideFirst := start
	for _, mv := range []string{"b1c3", "b8c6", "g1f3", "g8f6"} {
		var err error
		if viaQueensideFirst, err = viaQueensideFirst.MakeUCIMove(mv); err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff(viaKingsideFirst, viaQueensideFirst, cmp.AllowUnexported(Board{})); diff != "" {
		t.Errorf("transposed move orders should produce identical boards (-want +got):\n%s", diff)
	}
}

func TestAttackBackendsAgree(t *testing.T) {
	fens := []string{StartFEN, KiwipeteFEN, enPassantPinFEN}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		SetAttackBackend(BackendMagic)
		magic := legalUCISet(t, &b)
		SetAttackBackend(BackendPext)
		pext := legalUCISet(t, &b)
		SetAttackBackend(BackendMagic)

		if len(magic) != len(pext) {
			t.Fatalf("fen %q: magic produced %d moves, pext produced %d", fen, len(magic), len(pext))
		}
		for mv := range magic {
			if !pext[mv] {
				t.Errorf("fen %q: move %s present under magic backend but not pext", fen, mv)
			}
		}
	}
}
