// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movegen.go generates only legal moves directly, without a separate
// pseudo-legal pass: pins are detected up front and restrict a pinned
// piece's destinations to its own pin ray, check evasions restrict every
// non-king move's destinations to the checking piece and the squares
// between it and the king, and the king itself may never step into a
// square attacked with its own body removed from the occupancy (so it
// cannot "slide back" along the ray of the piece giving check).

package engine

// Generate fills list with every legal move available to the side to
// move in b, restricted to the classes F admits. Calling it more than
// once per position, with different filters, performs the pin/check
// analysis independently each time; callers that need two classes
// should generally just use AllMoves once.
func Generate[F MoveFilter](b *Board, list *MoveList) {
	var filter F
	admitQuiet, admitTactical := filter.admitQuiet(), filter.admitTactical()

	us := b.sideToMove
	them := us.Opposite()
	occ := b.Occupied()
	ourKing := b.pieces[King] & b.colors[us]
	kingSq, _ := ourKing.ToSquare()

	kingDanger := attackedSquares(b, them, occ&^ourKing)

	var baseTargets Bitboard
	if admitTactical {
		baseTargets |= b.colors[them]
	}
	if admitQuiet {
		baseTargets |= ^occ
	}

	numCheckers := b.checkers.PopCount()
	if numCheckers >= 2 {
		// Double check: only the king can move.
		genKingMoves(b, list, us, kingSq, kingDanger, baseTargets)
		return
	}

	evasionMask := Full
	if numCheckers == 1 {
		checkerSq, _ := b.checkers.ToSquare()
		evasionMask = b.checkers | BetweenBB[kingSq][checkerSq]
	}
	targets := baseTargets & evasionMask

	var pinRays [64]Bitboard
	pinned := computePins(b, us, kingSq, occ, &pinRays)

	genKnightMoves(b, list, us, pinned, &pinRays, targets)
	genSliderMoves(b, list, us, Bishop, pinned, &pinRays, occ, targets)
	genSliderMoves(b, list, us, Rook, pinned, &pinRays, occ, targets)
	genSliderMoves(b, list, us, Queen, pinned, &pinRays, occ, targets)
	genPawnMoves(b, list, us, pinned, &pinRays, occ, evasionMask, numCheckers, admitQuiet, admitTactical)
	genKingMoves(b, list, us, kingSq, kingDanger, baseTargets)

	if numCheckers == 0 && admitQuiet {
		genCastling(b, list, us, kingDanger, occ)
	}
}

// computePins scans enemy rook/queen and bishop/queen sliders aligned
// with kingSq and marks, for each one with exactly one of our pieces
// strictly between it and the king, that piece as pinned along the ray
// from the king through the pinner (inclusive of the pinner).
func computePins(b *Board, us Color, kingSq Square, occ Bitboard, pinRays *[64]Bitboard) Bitboard {
	them := us.Opposite()
	ours := b.colors[us]
	var pinned Bitboard

	scan := func(sliders Bitboard) {
		for sliders != 0 {
			s := sliders.PopLSB()
			between := BetweenBB[kingSq][s]
			if between == 0 {
				continue
			}
			blockers := between & occ
			if blockers.PopCount() != 1 {
				continue
			}
			if blockers&ours == 0 {
				continue
			}
			sq, _ := blockers.ToSquare()
			pinned |= blockers
			pinRays[sq] = between | s.Bitboard()
		}
	}

	scan((b.pieces[Rook] | b.pieces[Queen]) & b.colors[them] & RookAttacks(kingSq, Empty))
	scan((b.pieces[Bishop] | b.pieces[Queen]) & b.colors[them] & BishopAttacks(kingSq, Empty))
	return pinned
}

func emitSimpleMoves(list *MoveList, from Square, dest, enemy Bitboard) {
	for dest != 0 {
		to := dest.PopLSB()
		flag := FlagQuiet
		if enemy.Has(to) {
			flag = FlagCapture
		}
		list.Add(NewMove(from, to, flag))
	}
}

func genKnightMoves(b *Board, list *MoveList, us Color, pinned Bitboard, pinRays *[64]Bitboard, targets Bitboard) {
	pieces := b.pieces[Knight] & b.colors[us]
	friendly := b.colors[us]
	enemy := b.colors[us.Opposite()]
	for pieces != 0 {
		from := pieces.PopLSB()
		dest := KnightAttacks[from] &^ friendly & targets
		if pinned.Has(from) {
			dest &= pinRays[from]
		}
		emitSimpleMoves(list, from, dest, enemy)
	}
}

func genSliderMoves(b *Board, list *MoveList, us Color, piece Piece, pinned Bitboard, pinRays *[64]Bitboard, occ, targets Bitboard) {
	pieces := b.pieces[piece] & b.colors[us]
	friendly := b.colors[us]
	enemy := b.colors[us.Opposite()]
	for pieces != 0 {
		from := pieces.PopLSB()
		var attacks Bitboard
		switch piece {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = RookAttacks(from, occ) | BishopAttacks(from, occ)
		}
		dest := attacks &^ friendly & targets
		if pinned.Has(from) {
			dest &= pinRays[from]
		}
		emitSimpleMoves(list, from, dest, enemy)
	}
}

func genKingMoves(b *Board, list *MoveList, us Color, kingSq Square, kingDanger, targets Bitboard) {
	friendly := b.colors[us]
	enemy := b.colors[us.Opposite()]
	dest := KingAttacks[kingSq] &^ friendly &^ kingDanger & targets
	for dest != 0 {
		to := dest.PopLSB()
		flag := FlagQuiet
		if enemy.Has(to) {
			flag = FlagCapture
		}
		list.Add(NewMove(kingSq, to, flag))
	}
}

func genCastling(b *Board, list *MoveList, us Color, kingDanger, occ Bitboard) {
	rights := b.castleRights
	if us == White {
		if rights.Has(CastleWK) &&
			occ&(SquareF1.Bitboard()|SquareG1.Bitboard()) == 0 &&
			kingDanger&(SquareE1.Bitboard()|SquareF1.Bitboard()|SquareG1.Bitboard()) == 0 {
			list.Add(NewMove(SquareE1, SquareG1, FlagKingCastle))
		}
		if rights.Has(CastleWQ) &&
			occ&(SquareD1.Bitboard()|SquareC1.Bitboard()|SquareB1.Bitboard()) == 0 &&
			kingDanger&(SquareE1.Bitboard()|SquareD1.Bitboard()|SquareC1.Bitboard()) == 0 {
			list.Add(NewMove(SquareE1, SquareC1, FlagQueenCastle))
		}
		return
	}
	if rights.Has(CastleBK) &&
		occ&(SquareF8.Bitboard()|SquareG8.Bitboard()) == 0 &&
		kingDanger&(SquareE8.Bitboard()|SquareF8.Bitboard()|SquareG8.Bitboard()) == 0 {
		list.Add(NewMove(SquareE8, SquareG8, FlagKingCastle))
	}
	if rights.Has(CastleBQ) &&
		occ&(SquareD8.Bitboard()|SquareC8.Bitboard()|SquareB8.Bitboard()) == 0 &&
		kingDanger&(SquareE8.Bitboard()|SquareD8.Bitboard()|SquareC8.Bitboard()) == 0 {
		list.Add(NewMove(SquareE8, SquareC8, FlagQueenCastle))
	}
}

func addPawnAdvance(list *MoveList, from, to Square, isPromo, admitQuiet, admitTactical bool) {
	if isPromo {
		if admitTactical {
			list.Add(NewMove(from, to, FlagPromoQ))
		}
		if admitQuiet {
			list.Add(NewMove(from, to, FlagPromoN))
			list.Add(NewMove(from, to, FlagPromoB))
			list.Add(NewMove(from, to, FlagPromoR))
		}
		return
	}
	if admitQuiet {
		list.Add(NewMove(from, to, FlagQuiet))
	}
}

func addPawnCapture(list *MoveList, from, to Square, isPromo, admitQuiet, admitTactical bool) {
	if isPromo {
		if admitTactical {
			list.Add(NewMove(from, to, FlagPromoCaptureQ))
		}
		if admitQuiet {
			list.Add(NewMove(from, to, FlagPromoCaptureN))
			list.Add(NewMove(from, to, FlagPromoCaptureB))
			list.Add(NewMove(from, to, FlagPromoCaptureR))
		}
		return
	}
	if admitTactical {
		list.Add(NewMove(from, to, FlagCapture))
	}
}

// epLegal checks, by direct recomputation, whether capturing en passant
// (removing the pawn on from and capturedSq, placing one on to) would
// leave the mover's own king in check. This subsumes both the ordinary
// pin restriction and the classic "horizontal pin" case where both pawns
// vacating the rank exposes the king to a rook or queen, without needing
// any special-case logic beyond this one recomputation. It says nothing
// about a check that already existed before the move from a piece other
// than the one captured; callers in check handle that separately.
func epLegal(b *Board, us Color, from, to, capturedSq Square) bool {
	them := us.Opposite()
	kingSq := b.KingSquare(us)
	occ := (b.Occupied() &^ from.Bitboard() &^ capturedSq.Bitboard()) | to.Bitboard()
	if BishopAttacks(kingSq, occ)&(b.pieces[Bishop]|b.pieces[Queen])&b.colors[them] != 0 {
		return false
	}
	if RookAttacks(kingSq, occ)&(b.pieces[Rook]|b.pieces[Queen])&b.colors[them] != 0 {
		return false
	}
	return true
}

func tryPawnCapture(b *Board, list *MoveList, us Color, from, to Square, pinRay, evasionMask, enemy Bitboard, promoRank int, inCheck bool, admitQuiet, admitTactical bool) {
	if b.epSquare != SquareNone && to == b.epSquare {
		if !admitTactical {
			return
		}
		capturedSq := RankFile(from.Rank(), to.File())
		// En passant removes capturedSq, not to, so the usual
		// destination-in-evasionMask test does not apply: when already in
		// check, the only way this capture can evade it is by removing
		// the checking pawn itself.
		if inCheck && capturedSq.Bitboard() != b.checkers {
			return
		}
		if epLegal(b, us, from, to, capturedSq) {
			list.Add(NewMove(from, to, FlagEnPassant))
		}
		return
	}
	if !enemy.Has(to) {
		return
	}
	if to.Bitboard()&pinRay&evasionMask == 0 {
		return
	}
	addPawnCapture(list, from, to, to.Rank() == promoRank, admitQuiet, admitTactical)
}

func genPawnMoves(b *Board, list *MoveList, us Color, pinned Bitboard, pinRays *[64]Bitboard, occ, evasionMask Bitboard, numCheckers int, admitQuiet, admitTactical bool) {
	them := us.Opposite()
	enemy := b.colors[them]
	pawns := b.pieces[Pawn] & b.colors[us]
	inCheck := numCheckers == 1

	forward, promoRank, startRank := 8, 7, 1
	if us == Black {
		forward, promoRank, startRank = -8, 0, 6
	}

	for pawns != 0 {
		from := pawns.PopLSB()
		pinRay := Full
		if pinned.Has(from) {
			pinRay = pinRays[from]
		}

		to := Square(int(from) + forward)
		if !occ.Has(to) {
			if to.Bitboard()&pinRay&evasionMask != 0 {
				addPawnAdvance(list, from, to, to.Rank() == promoRank, admitQuiet, admitTactical)
			}
			if from.Rank() == startRank {
				to2 := Square(int(from) + 2*forward)
				if !occ.Has(to2) && admitQuiet && to2.Bitboard()&pinRay&evasionMask != 0 {
					list.Add(NewMove(from, to2, FlagDoublePush))
				}
			}
		}

		f := from.File()
		if f > 0 {
			tryPawnCapture(b, list, us, from, Square(int(from)+forward-1), pinRay, evasionMask, enemy, promoRank, inCheck, admitQuiet, admitTactical)
		}
		if f < 7 {
			tryPawnCapture(b, list, us, from, Square(int(from)+forward+1), pinRay, evasionMask, enemy, promoRank, inCheck, admitQuiet, admitTactical)
		}
	}
}
