// Package itemcodec implements the "items" query value shared by the
// producer front ends and the marketplace:
//
//	items=<segment>(,<segment>)*
//	segment := escape(name) ":" quantity ":" unitPrice
//
// The format is lossy and human-readable. Decoding never fails: hand-typed or
// truncated URLs degrade to zero-priced single-quantity items.
package itemcodec

import (
	"net/url"
	"strconv"
	"strings"

	"agro_cart/internal/domain/entities"
)

const (
	segmentSep = ","
	fieldSep   = ":"
)

// Encode serializes items into a single query value.
func Encode(items []entities.LineItem) string {
	segments := make([]string, 0, len(items))
	for _, it := range items {
		segments = append(segments,
			EscapeComponent(strings.TrimSpace(it.Name))+fieldSep+
				strconv.Itoa(it.Quantity)+fieldSep+
				strconv.Itoa(it.UnitPrice))
	}
	return strings.Join(segments, segmentSep)
}

// Decode parses a query value back into line items. Every non-blank segment
// yields one item; blank segments (",," or a trailing ",") yield none.
// Quantities are clamped to [1, MaxQuantity] and prices to [0, MaxUnitPrice].
func Decode(raw string) []entities.LineItem {
	items := []entities.LineItem{}
	if strings.TrimSpace(raw) == "" {
		return items
	}

	for _, seg := range strings.Split(raw, segmentSep) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		items = append(items, decodeSegment(seg))
	}
	return items
}

func decodeSegment(seg string) entities.LineItem {
	fields := strings.Split(seg, fieldSep)
	if len(fields) != 3 {
		return entities.LineItem{Name: unescape(seg), Quantity: 1, UnitPrice: 0}
	}

	qty, ok := ParseLeadingInt(fields[1])
	if !ok {
		qty = 1
	}
	price, ok := ParseLeadingInt(fields[2])
	if !ok {
		price = 0
	}
	return entities.LineItem{
		Name:      unescape(fields[0]),
		Quantity:  entities.ClampQuantity(qty),
		UnitPrice: entities.ClampUnitPrice(price),
	}
}

func unescape(s string) string {
	v, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return v
}

// EscapeComponent percent-encodes s the way browsers' encodeURIComponent
// does: only A-Z a-z 0-9 and - _ . ! ~ * ' ( ) pass through, spaces become
// %20. The output never contains ':' or ','.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// ParseLeadingInt reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows ("12kg" -> 12, "2.7" -> 2).
// It reports false when no digits are present or the value overflows int.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
