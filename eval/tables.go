// Package eval scores individual moves against fixed piece-square tables
// (PSTs), rather than scoring whole positions: a move's value is the change
// in placement value for the piece that moved, plus the placement value of
// whatever it captured.
package eval

import (
	"github.com/arborchess/sixchego/enum"
	"github.com/arborchess/sixchego/word256"
)

// ReferenceValue gives each kind's nominal piece value, used only to orient
// the PST constants below (see the comment on the rook/knight swap in init) and
// exposed for anyone building their own evaluator on top of these tables.
var ReferenceValue = [...]int{
	enum.KindNone:   0,
	enum.KindPawn:   20,
	enum.KindBishop: 66,
	enum.KindKnight: 64,
	enum.KindRook:   100,
	enum.KindQueen:  180,
	enum.KindKing:   4000,
}

// Pawn, bishop, rook and knight each pack 36 seven-bit entries into a single
// 256-bit word, entry k at bit offset 7(35-k) (entry 35 lives in the
// least-significant bits). Queen and king instead split 36 twelve-bit
// entries across a near/far pair of words: entries 0..17 in the near word at
// bit offset 12(17-k), entries 18..35 in the far word at 12(35-k). Keeping the hex literals intact
// and decoding them once at init time, rather than hand-splitting each one
// into four uint64 limbs, keeps the single published constant the one
// source of truth for every table.
var pawnPST word256.Word256

func init() {
	pawnPST = mustParse("2850A142850F1E3C78F1E2858C182C50A943468A152A788103C54A142850A14")
	bishopPST = mustParse("7D0204080FA042850A140810E24487020448912240810E1428701F40810203E")

	// The literal constants are conventionally listed pawn, bishop, knight,
	// rook, but their average values land on the *other* kind's reference
	// point (see ReferenceValue): the table nominally labelled "knight"
	// centres near 100 (the rook's reference value) and the one labelled
	// "rook" centres near 64 (the knight's). The two are swapped here so
	// each table is keyed by the kind it actually scores.
	rookPST = mustParse("C993264C9932E6CD9B365C793264C98F1E4C993263C793264C98F264CB97264")
	knightPST = mustParse("6CE1B3670E9C3C8101E38750224480E9D4189120BA70F20C178E1B3874E9C36")

	queenNearPST = mustParse("B00B20B30B30B20B00B20B40B40B40B40B20B30B40B50B50B40B3")
	queenFarPST = mustParse("B30B50B50B50B40B30B20B40B50B40B40B20B00B20B30B30B20B0")
	kingNearPST = mustParse("F9AF98F96F96F98F9AF9AF98F96F96F98F9AF9CF9AF98F98F9AF9B")
	kingFarPST = mustParse("F9EF9CF9CF9CF9CF9EFA1FA1FA0FA0FA1FA1FA4FA6FA2FA2FA6FA4")
}

var (
	bishopPST    word256.Word256
	rookPST      word256.Word256
	knightPST    word256.Word256
	queenNearPST word256.Word256
	queenFarPST  word256.Word256
	kingNearPST  word256.Word256
	kingFarPST   word256.Word256
)

// mustParse decodes a big-endian hex literal (as written in the piece-square
// table constants) into a Word256. It panics on malformed input, which only
// the package's own constants in init can trigger.
func mustParse(hex string) word256.Word256 {
	var limbs [4]uint64
	// 16 hex digits per limb, most-significant limb first in the literal.
	for len(hex)%16 != 0 {
		hex = "0" + hex
	}
	nLimbs := len(hex) / 16
	for i := 0; i < nLimbs; i++ {
		chunk := hex[i*16 : i*16+16]
		var v uint64
		for _, c := range chunk {
			v <<= 4
			v |= uint64(hexDigit(c))
		}
		limbs[nLimbs-1-i] = v
	}
	return word256.FromLimbs(limbs[0], limbs[1], limbs[2], limbs[3])
}

func hexDigit(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	panic("eval: malformed hex digit " + string(c))
}

// narrowValue reads the 7-bit PST entry for k (0..35) out of a single-word
// table, where entry 35 occupies the least-significant bits.
func narrowValue(table word256.Word256, k int) int {
	return int(table.Field(uint(7*(35-k)), 7))
}

// wideValue reads the 12-bit PST entry for k (0..35) out of a near/far pair
// of tables, as used by the queen and king.
func wideValue(near, far word256.Word256, k int) int {
	if k < 18 {
		return int(near.Field(uint(12*(17-k)), 12))
	}
	return int(far.Field(uint(12*(35-k)), 12))
}

// pstValue returns the piece-square value of a piece of the given kind
// sitting on 6x6 square k.
func pstValue(kind enum.Kind, k int) int {
	switch kind {
	case enum.KindPawn:
		return narrowValue(pawnPST, k)
	case enum.KindBishop:
		return narrowValue(bishopPST, k)
	case enum.KindRook:
		return narrowValue(rookPST, k)
	case enum.KindKnight:
		return narrowValue(knightPST, k)
	case enum.KindQueen:
		return wideValue(queenNearPST, queenFarPST, k)
	case enum.KindKing:
		return wideValue(kingNearPST, kingFarPST, k)
	default:
		return 0
	}
}
