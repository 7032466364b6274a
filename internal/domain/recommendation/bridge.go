// Package recommendation turns upstream "what to buy" records into priced
// line items before they enter a cart.
package recommendation

import (
	"fmt"
	"strings"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/pricing"
)

// Flow identifies the producer surface that recommended the items.
type Flow string

const (
	FlowCropDiagnosis     Flow = "crop_diagnosis"
	FlowEquipmentAnalysis Flow = "equipment_analysis"
	FlowSchemeMarketplace Flow = "scheme_marketplace"
)

const (
	treatmentLabel       = "Treatment"
	defaultEquipmentType = "Equipment"
)

func ParseFlow(s string) (Flow, bool) {
	switch f := Flow(strings.ToLower(strings.TrimSpace(s))); f {
	case FlowCropDiagnosis, FlowEquipmentAnalysis, FlowSchemeMarketplace:
		return f, true
	case "":
		return FlowCropDiagnosis, true
	}
	return "", false
}

// FallbackLabel is the display name used when a record carries none.
func FallbackLabel(flow Flow, equipmentType string) string {
	if flow == FlowEquipmentAnalysis {
		equipmentType = strings.TrimSpace(equipmentType)
		if equipmentType == "" {
			equipmentType = defaultEquipmentType
		}
		return fmt.Sprintf("Maintenance Kit for %s", equipmentType)
	}
	return treatmentLabel
}

// Normalize converts one record into a single-quantity priced line item.
func Normalize(rec entities.RecommendedItem, fallbackLabel string) entities.LineItem {
	var name string
	switch rec.Kind {
	case entities.KindBare, entities.KindItem, entities.KindNamed:
		name = rec.DisplayName()
	}
	if name == "" {
		name = fallbackLabel
	}
	return entities.LineItem{
		Name:      name,
		Quantity:  1,
		UnitPrice: pricing.FallbackPrice(name),
	}
}

// ToLineItems normalizes every record, one line item each.
func ToLineItems(recs []entities.RecommendedItem, fallbackLabel string) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, Normalize(rec, fallbackLabel))
	}
	return items
}

// GenericFallback is the recommendation list used when an upstream analysis
// failed or produced nothing, so the user still gets a cart.
func GenericFallback(fallbackLabel string) []entities.RecommendedItem {
	return []entities.RecommendedItem{entities.NewBareRecommendation(fallbackLabel)}
}
