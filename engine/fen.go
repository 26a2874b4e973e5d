// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"strconv"
	"strings"
)

var symbolToPiece = map[byte]Piece{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses a position from Forsyth-Edwards Notation. It validates
// every field and returns a *FenParseError describing the first problem
// found, rather than producing a position that merely looks plausible.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, &FenParseError{ErrBadFieldCount, "expected 6 space-separated fields, got " + strconv.Itoa(len(fields))}
	}

	var b Board
	if err := parsePlacement(&b, fields[0]); err != nil {
		return Board{}, err
	}

	side, ok := parseColor(fields[1])
	if !ok {
		return Board{}, &FenParseError{ErrBadSideToMove, "expected \"w\" or \"b\", got " + fields[1]}
	}
	b.sideToMove = side
	if side == Black {
		b.hash ^= ZobristSideToMove
	}

	rights, err := parseCastling(&b, fields[2])
	if err != nil {
		return Board{}, err
	}
	b.castleRights = rights
	b.hash ^= ZobristCastle[rights]

	epSq, err := parseEnPassant(&b, fields[3])
	if err != nil {
		return Board{}, err
	}
	b.epSquare = SquareNone
	b.setEnPassant(epSq, side)

	half, full, err := parseClocks(fields[4], fields[5])
	if err != nil {
		return Board{}, err
	}
	b.halfmoveClock = half
	b.fullmoveNumber = full

	if err := validatePieceCounts(&b); err != nil {
		return Board{}, err
	}

	b.checkers = computeCheckers(&b, b.sideToMove)
	if computeCheckers(&b, b.sideToMove.Opposite()) != 0 {
		return Board{}, &FenParseError{ErrSideNotToMoveInCheck, "the side not to move is in check"}
	}

	return b, nil
}

func parsePlacement(b *Board, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &FenParseError{ErrBadPlacement, "expected 8 ranks, got " + strconv.Itoa(len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				if file > 8 {
					return &FenParseError{ErrBadPlacement, "rank has too many squares"}
				}
				continue
			}
			piece, ok := symbolToPiece[lower(ch)]
			if !ok {
				return &FenParseError{ErrUnexpectedChar, "unexpected character " + string(ch) + " in piece placement"}
			}
			if file >= 8 {
				return &FenParseError{ErrBadPlacement, "rank has too many squares"}
			}
			color := Black
			if ch < 'a' {
				color = White
			}
			sq := RankFile(rank, file)
			if piece == Pawn && (rank == 0 || rank == 7) {
				return &FenParseError{ErrPawnOnBackRank, "pawn on back rank"}
			}
			b.put(color, piece, sq)
			file++
		}
		if file != 8 {
			return &FenParseError{ErrBadPlacement, "rank does not sum to 8 squares"}
		}
	}
	return nil
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func parseColor(field string) (Color, bool) {
	switch field {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return White, false
}

func parseCastling(b *Board, field string) (CastleRights, error) {
	if field == "-" {
		return NoCastleRights, nil
	}
	var rights CastleRights
	for _, ch := range []byte(field) {
		var flag CastleRights
		var king, rook Square
		var kingPiece, rookPiece Piece = King, Rook
		var kingColor Color
		switch ch {
		case 'K':
			flag, king, rook, kingColor = CastleWK, SquareE1, SquareH1, White
		case 'Q':
			flag, king, rook, kingColor = CastleWQ, SquareE1, SquareA1, White
		case 'k':
			flag, king, rook, kingColor = CastleBK, SquareE8, SquareH8, Black
		case 'q':
			flag, king, rook, kingColor = CastleBQ, SquareE8, SquareA8, Black
		default:
			return 0, &FenParseError{ErrBadCastling, "unexpected character " + string(ch) + " in castling field"}
		}
		if rights.Has(flag) {
			return 0, &FenParseError{ErrBadCastling, "duplicate castling right " + string(ch)}
		}
		if p := b.piece[king]; p != kingPiece || !b.colors[kingColor].Has(king) {
			return 0, &FenParseError{ErrBadCastling, "castling right " + string(ch) + " requires a king on " + king.String()}
		}
		if p := b.piece[rook]; p != rookPiece || !b.colors[kingColor].Has(rook) {
			return 0, &FenParseError{ErrBadCastling, "castling right " + string(ch) + " requires a rook on " + rook.String()}
		}
		rights |= flag
	}
	return rights, nil
}

func parseEnPassant(b *Board, field string) (Square, error) {
	if field == "-" {
		return SquareNone, nil
	}
	sq, err := SquareFromString(field)
	if err != nil {
		return SquareNone, &FenParseError{ErrBadEnPassant, "malformed en-passant square " + field}
	}
	wantRank := 5
	if b.sideToMove == Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank {
		return SquareNone, &FenParseError{ErrBadEnPassant, "en-passant square " + field + " is on the wrong rank"}
	}
	pawnSq := epPawnSquare(b.sideToMove.Opposite(), sq)
	if b.piece[pawnSq] != Pawn || !b.colors[b.sideToMove.Opposite()].Has(pawnSq) {
		return SquareNone, &FenParseError{ErrBadEnPassant, "no pawn behind en-passant square " + field}
	}
	return sq, nil
}

func parseClocks(halfField, fullField string) (uint8, uint16, error) {
	half, err := strconv.Atoi(halfField)
	if err != nil || half < 0 || half > 255 {
		return 0, 0, &FenParseError{ErrBadClock, "bad halfmove clock " + halfField}
	}
	full, err := strconv.Atoi(fullField)
	if err != nil || full < 1 || full > 65535 {
		return 0, 0, &FenParseError{ErrBadClock, "bad fullmove number " + fullField}
	}
	return uint8(half), uint16(full), nil
}

func validatePieceCounts(b *Board) error {
	for _, c := range [ColorArraySize]Color{White, Black} {
		n := (b.pieces[King] & b.colors[c]).PopCount()
		if n != 1 {
			return &FenParseError{ErrBadKingCount, c.String() + " has " + strconv.Itoa(n) + " kings, expected 1"}
		}
	}
	return nil
}

// FEN renders b in Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var s strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := RankFile(rank, file)
			p := b.piece[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := pieceSymbol[p]
			if b.colors[White].Has(sq) {
				ch -= 'a' - 'A'
			}
			s.WriteByte(ch)
		}
		if empty > 0 {
			s.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			s.WriteByte('/')
		}
	}

	s.WriteByte(' ')
	if b.sideToMove == White {
		s.WriteByte('w')
	} else {
		s.WriteByte('b')
	}

	s.WriteByte(' ')
	s.WriteString(b.castleRights.String())

	s.WriteByte(' ')
	if b.epSquare == SquareNone {
		s.WriteByte('-')
	} else {
		s.WriteString(b.epSquare.String())
	}

	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(int(b.halfmoveClock)))
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(int(b.fullmoveNumber)))

	return s.String()
}
