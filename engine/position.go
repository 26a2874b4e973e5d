// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Board is an immutable snapshot of a chess position. Values are created
// by ParseFEN, StartPosition, or by calling MakeMove/MakeNullMove on an
// existing Board; none of those ever mutate their receiver, so a Board
// may be freely copied and shared across goroutines.
type Board struct {
	pieces [PieceArraySize]Bitboard
	colors [ColorArraySize]Bitboard
	piece  [64]Piece

	sideToMove     Color
	castleRights   CastleRights
	epSquare       Square
	halfmoveClock  uint8
	fullmoveNumber uint16

	checkers Bitboard
	hash     uint64
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// KiwipeteFEN is a well-known position exercising castling, en-passant
// and promotions, widely used as a perft regression fixture.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// StartPosition returns the standard chess starting position.
func StartPosition() Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("engine: malformed built-in start FEN: " + err.Error())
	}
	return b
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// CastleRights returns the current castling rights.
func (b *Board) CastleRights() CastleRights { return b.castleRights }

// EnPassantSquare returns the FEN-reported en-passant target, and
// whether one is set.
func (b *Board) EnPassantSquare() (Square, bool) {
	return b.epSquare, b.epSquare != SquareNone
}

// HalfmoveClock returns the half-move clock since the last capture or
// pawn push.
func (b *Board) HalfmoveClock() uint8 { return b.halfmoveClock }

// FullmoveNumber returns the full-move counter, starting at 1.
func (b *Board) FullmoveNumber() uint16 { return b.fullmoveNumber }

// Hash returns the board's Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// Checkers returns the set of enemy pieces giving check to the side to
// move's king.
func (b *Board) Checkers() Bitboard { return b.checkers }

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool { return b.checkers != 0 }

// Occupied returns the union of all occupied squares.
func (b *Board) Occupied() Bitboard { return b.colors[White] | b.colors[Black] }

// ByPiece returns the bitboard of piece p regardless of color.
func (b *Board) ByPiece(p Piece) Bitboard { return b.pieces[p] }

// ByColor returns the bitboard of every piece of color c.
func (b *Board) ByColor(c Color) Bitboard { return b.colors[c] }

// ByColorPiece returns the bitboard of piece p of color c.
func (b *Board) ByColorPiece(c Color, p Piece) Bitboard { return b.pieces[p] & b.colors[c] }

// PieceAt returns the piece occupying sq and its color. If sq is empty,
// PieceAt returns (NoPiece, White, false).
func (b *Board) PieceAt(sq Square) (Piece, Color, bool) {
	p := b.piece[sq]
	if p == NoPiece {
		return NoPiece, White, false
	}
	c := White
	if b.colors[Black].Has(sq) {
		c = Black
	}
	return p, c, true
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) Square {
	sq, _ := (b.pieces[King] & b.colors[c]).ToSquare()
	return sq
}

// put places piece p of color c on sq, assuming sq was empty, updating
// the incremental hash. It is used both by the FEN parser (building up
// a position from scratch, with the hash finalized afterwards) and by
// MakeMove.
func (b *Board) put(c Color, p Piece, sq Square) {
	b.pieces[p] = b.pieces[p].Set(sq)
	b.colors[c] = b.colors[c].Set(sq)
	b.piece[sq] = p
	b.hash ^= ZobristPiece[c][p][sq]
}

// remove clears sq, which must currently hold piece p of color c,
// updating the incremental hash.
func (b *Board) remove(c Color, p Piece, sq Square) {
	b.pieces[p] = b.pieces[p].Clear(sq)
	b.colors[c] = b.colors[c].Clear(sq)
	b.piece[sq] = NoPiece
	b.hash ^= ZobristPiece[c][p][sq]
}

func (b *Board) setSideToMove(c Color) {
	if b.sideToMove != c {
		b.hash ^= ZobristSideToMove
		b.sideToMove = c
	}
}

func (b *Board) setCastleRights(rights CastleRights) {
	if rights != b.castleRights {
		b.hash ^= ZobristCastle[b.castleRights]
		b.castleRights = rights
		b.hash ^= ZobristCastle[b.castleRights]
	}
}

// epPawnSquare returns the square of the pawn that can be captured
// en-passant behind ep, given which color just played the double push.
func epPawnSquare(mover Color, ep Square) Square {
	if mover == White {
		return RankFile(ep.Rank()+1, ep.File())
	}
	return RankFile(ep.Rank()-1, ep.File())
}

// epIsCapturable reports whether an enemy pawn of the given capturer
// color actually sits adjacent to the pawn that just double-pushed to
// create ep. capturer is passed explicitly rather than read off
// b.sideToMove, since callers may need to evaluate this before or after
// the side-to-move flip that making a move applies.
func epIsCapturable(b *Board, ep Square, capturer Color) bool {
	mover := capturer.Opposite()
	landingRank := epPawnSquare(mover, ep).Rank()
	pawns := b.pieces[Pawn] & b.colors[capturer]
	f := ep.File()
	if f > 0 && pawns.Has(RankFile(landingRank, f-1)) {
		return true
	}
	if f < 7 && pawns.Has(RankFile(landingRank, f+1)) {
		return true
	}
	return false
}

// setEnPassant updates the FEN-reportable en-passant square and, per the
// standard hashing policy, XORs in the file key only when the square is
// actually capturable, so that positions differing only in a
// non-capturable en-passant square hash identically. capturer is the
// color that could capture the *new* en-passant square (sq) — the side
// to move once this update takes effect. Any pre-existing en-passant
// square being replaced was only ever capturable by the other color,
// since it was created by the ply immediately before this one.
func (b *Board) setEnPassant(sq Square, capturer Color) {
	if b.epSquare != SquareNone && epIsCapturable(b, b.epSquare, capturer.Opposite()) {
		b.hash ^= ZobristEnPassantFile[b.epSquare.File()]
	}
	b.epSquare = sq
	if b.epSquare != SquareNone && epIsCapturable(b, b.epSquare, capturer) {
		b.hash ^= ZobristEnPassantFile[b.epSquare.File()]
	}
}

// castleSquares returns the king's to-square and the rook's from/to
// squares for castling of color c with the given flag.
func castleSquares(c Color, flag MoveFlag) (kingTo, rookFrom, rookTo Square) {
	if c == White {
		if flag == FlagKingCastle {
			return SquareG1, SquareH1, SquareF1
		}
		return SquareC1, SquareA1, SquareD1
	}
	if flag == FlagKingCastle {
		return SquareG8, SquareH8, SquareF8
	}
	return SquareC8, SquareA8, SquareD8
}

// lostCastleRights[sq] is the set of castling rights permanently lost
// when a piece leaves or a rook is captured on sq.
var lostCastleRights [64]CastleRights

func init() {
	lostCastleRights[SquareE1] = CastleWK | CastleWQ
	lostCastleRights[SquareA1] = CastleWQ
	lostCastleRights[SquareH1] = CastleWK
	lostCastleRights[SquareE8] = CastleBK | CastleBQ
	lostCastleRights[SquareA8] = CastleBQ
	lostCastleRights[SquareH8] = CastleBK
}

// attackersTo returns the set of by-colored pieces attacking sq, given
// occupancy occ for sliding-piece visibility.
func attackersTo(b *Board, sq Square, occ Bitboard, by Color) Bitboard {
	var attackers Bitboard
	attackers |= PawnAttacks[by.Opposite()][sq] & b.pieces[Pawn] & b.colors[by]
	attackers |= KnightAttacks[sq] & b.pieces[Knight] & b.colors[by]
	attackers |= KingAttacks[sq] & b.pieces[King] & b.colors[by]
	attackers |= BishopAttacks(sq, occ) & (b.pieces[Bishop] | b.pieces[Queen]) & b.colors[by]
	attackers |= RookAttacks(sq, occ) & (b.pieces[Rook] | b.pieces[Queen]) & b.colors[by]
	return attackers
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return attackersTo(b, sq, b.Occupied(), by) != 0
}

func computeCheckers(b *Board, side Color) Bitboard {
	return attackersTo(b, b.KingSquare(side), b.Occupied(), side.Opposite())
}

// attackedSquares returns every square attacked by color by, given occ
// as the blocker set for sliding pieces. Passing an occupancy with the
// defender's king removed yields the "king danger set" used to forbid
// the king from stepping along a ray it currently blocks.
func attackedSquares(b *Board, by Color, occ Bitboard) Bitboard {
	var attacks Bitboard
	pawns := b.pieces[Pawn] & b.colors[by]
	if by == White {
		attacks |= pawns.UpLeft() | pawns.UpRight()
	} else {
		attacks |= pawns.DownLeft() | pawns.DownRight()
	}
	knights := b.pieces[Knight] & b.colors[by]
	for knights != 0 {
		attacks |= KnightAttacks[knights.PopLSB()]
	}
	if sq, ok := (b.pieces[King] & b.colors[by]).ToSquare(); ok {
		attacks |= KingAttacks[sq]
	}
	bishops := (b.pieces[Bishop] | b.pieces[Queen]) & b.colors[by]
	for bishops != 0 {
		attacks |= BishopAttacks(bishops.PopLSB(), occ)
	}
	rooks := (b.pieces[Rook] | b.pieces[Queen]) & b.colors[by]
	for rooks != 0 {
		attacks |= RookAttacks(rooks.PopLSB(), occ)
	}
	return attacks
}

// MakeMove applies m, which must be legal for b, and returns the
// resulting board. b is left unmodified.
func (b Board) MakeMove(m Move) Board {
	nb := b
	us := b.sideToMove
	them := us.Opposite()
	from, to, flag := m.From(), m.To(), m.Flag()
	moving := b.piece[from]

	// Clear the old en-passant square before any piece moves, so its
	// capturability is judged on the same placement that decided whether
	// its key went into the hash.
	nb.setEnPassant(SquareNone, them)

	if moving == Pawn || m.IsCapture() {
		nb.halfmoveClock = 0
	} else {
		nb.halfmoveClock++
	}

	if flag == FlagEnPassant {
		capSq := RankFile(from.Rank(), to.File())
		nb.remove(them, Pawn, capSq)
	} else if m.IsCapture() {
		nb.remove(them, b.piece[to], to)
	}

	nb.remove(us, moving, from)
	dest := moving
	if promo := m.PromotionPiece(); promo != NoPiece {
		dest = promo
	}
	nb.put(us, dest, to)

	if flag == FlagKingCastle || flag == FlagQueenCastle {
		_, rookFrom, rookTo := castleSquares(us, flag)
		nb.remove(us, Rook, rookFrom)
		nb.put(us, Rook, rookTo)
	}

	newRights := nb.castleRights &^ lostCastleRights[from] &^ lostCastleRights[to]
	nb.setCastleRights(newRights)

	if flag == FlagDoublePush {
		nb.setEnPassant(RankFile((int(from.Rank())+int(to.Rank()))/2, from.File()), them)
	}

	if us == Black {
		nb.fullmoveNumber++
	}
	nb.setSideToMove(them)
	nb.checkers = computeCheckers(&nb, them)
	return nb
}

// MakeNullMove returns a board identical to b except that the side to
// move is flipped, the en-passant square is cleared and the halfmove
// clock is incremented. It is illegal
// to call this when b.InCheck(); callers are responsible for that check,
// since a null move cannot escape check.
func (b Board) MakeNullMove() Board {
	nb := b
	nb.setEnPassant(SquareNone, b.sideToMove.Opposite())
	nb.halfmoveClock++
	nb.setSideToMove(b.sideToMove.Opposite())
	nb.checkers = computeCheckers(&nb, nb.sideToMove)
	return nb
}

// MakeUCIMove parses s as a UCI move ("e2e4", "a7a8q") and, if it names
// a legal move in b, returns the resulting board. Otherwise it returns a
// *UciMoveError describing whether s was malformed or simply not legal.
func (b *Board) MakeUCIMove(s string) (Board, error) {
	if len(s) != 4 && len(s) != 5 {
		return Board{}, &UciMoveError{ErrMalformedMove, "expected 4 or 5 characters"}
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Board{}, &UciMoveError{ErrMalformedMove, "bad from-square"}
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Board{}, &UciMoveError{ErrMalformedMove, "bad to-square"}
	}
	promo := NoPiece
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return Board{}, &UciMoveError{ErrMalformedMove, "bad promotion letter"}
		}
	}

	var list MoveList
	Generate[AllMoves](b, &list)
	for i := 0; i < list.Len(); i++ {
		mv := list.At(i)
		if mv.From() == from && mv.To() == to && mv.PromotionPiece() == promo {
			return b.MakeMove(mv), nil
		}
	}
	return Board{}, &UciMoveError{ErrNotLegalInPosition, "no legal move matches " + s}
}

// String renders the board as an ASCII diagram, rank 8 first, with side
// to move and castling rights noted below it.
func (b *Board) String() string {
	buf := make([]byte, 0, 160)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := RankFile(rank, file)
			p := b.piece[sq]
			if p == NoPiece {
				buf = append(buf, '.')
				continue
			}
			ch := pieceSymbol[p]
			if b.colors[White].Has(sq) {
				ch -= 'a' - 'A'
			}
			buf = append(buf, ch)
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "side to move: "...)
	buf = append(buf, b.sideToMove.String()...)
	buf = append(buf, ", castling: "...)
	buf = append(buf, b.castleRights.String()...)
	buf = append(buf, '\n')
	return string(buf)
}
