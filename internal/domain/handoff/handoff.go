// Package handoff pushes a cart to the external marketplace. The URL is
// the whole message: nothing is awaited from the marketplace once
// navigation starts.
package handoff

import (
	"context"
	"errors"
	"strings"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/itemcodec"
)

// QueryParam is the query parameter carrying the encoded cart.
const QueryParam = "items"

var ErrCartEmpty = errors.New("cart is empty")

// Navigator opens a URL in a new top-level browsing context. Implementations
// return once navigation has been requested, not when the page has loaded.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

// Usable drops items without a usable name.
func Usable(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

func Validate(items []entities.LineItem) error {
	if len(Usable(items)) == 0 {
		return ErrCartEmpty
	}
	return nil
}

// BuildURL returns baseURL with the encoded usable items appended as the
// "items" parameter.
func BuildURL(baseURL string, items []entities.LineItem) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + QueryParam + "=" + itemcodec.Encode(Usable(items))
}

// Invoke validates the cart, builds the hand-off URL and navigates to it.
// An empty cart is rejected before any navigation happens.
func Invoke(ctx context.Context, nav Navigator, baseURL string, items []entities.LineItem) (string, error) {
	if err := Validate(items); err != nil {
		return "", err
	}
	url := BuildURL(baseURL, items)
	if err := nav.Navigate(ctx, url); err != nil {
		return url, err
	}
	return url, nil
}
