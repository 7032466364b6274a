package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/pricing"
)

// parseItemArgs reads name[:qty[:price]] arguments. A missing quantity is 1
// and a missing price comes from the fallback pricer.
func parseItemArgs(args []string) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(args))
	for _, arg := range args {
		item, err := parseItemArg(arg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItemArg(arg string) (entities.LineItem, error) {
	parts := strings.SplitN(arg, ":", 3)
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return entities.LineItem{}, fmt.Errorf("item %q: missing name", arg)
	}

	item := entities.LineItem{Name: name, Quantity: 1, UnitPrice: pricing.FallbackPrice(name)}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		q, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return entities.LineItem{}, fmt.Errorf("item %q: invalid quantity: %w", arg, err)
		}
		item.Quantity = q
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		p, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return entities.LineItem{}, fmt.Errorf("item %q: invalid price: %w", arg, err)
		}
		item.UnitPrice = p
	}
	return item.Coerced(), nil
}
