// Package pricing assigns deterministic prices to recommended items that
// arrive without an authoritative price.
package pricing

import (
	"strings"
	"unicode/utf16"
)

const (
	hashFloor  = 150
	hashSpread = 700
)

type keywordBand struct {
	keywords []string
	price    int
}

// Checked in order; the first band whose keyword appears in the name wins.
var keywordBands = []keywordBand{
	{keywords: []string{"neem"}, price: 250},
	{keywords: []string{"urea", "npk"}, price: 300},
	{keywords: []string{"fungicide"}, price: 450},
	{keywords: []string{"pesticide"}, price: 550},
	{keywords: []string{"seeds"}, price: 180},
}

// FallbackPrice returns the price of a named item when no service priced it.
//
// Known product keywords map to fixed bands. Any other name is priced from
// a rolling hash in [150, 849]. The function is pure, so the same name
// always prices the same on every front end.
func FallbackPrice(name string) int {
	lower := lowerLikeBrowser(name)
	for _, band := range keywordBands {
		for _, kw := range band.keywords {
			if strings.Contains(lower, kw) {
				return band.price
			}
		}
	}
	h := NameHash(lower)
	if h < 0 {
		h = -h
	}
	return int(h%hashSpread) + hashFloor
}

// NameHash is the 31-multiplier rolling hash the browser front ends compute:
//
//	hash = charCode + ((hash << 5) - hash)
//
// over UTF-16 code units. The shift wraps to 32 bits but the subtraction
// and addition do not, so the accumulator is carried in 64 bits.
func NameHash(s string) int64 {
	var hash int64
	for _, unit := range utf16.Encode([]rune(s)) {
		shifted := int64(int32(uint32(hash) << 5))
		hash = int64(unit) + shifted - hash
	}
	return hash
}
