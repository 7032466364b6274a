package request

import (
	"encoding/json"

	"agro_cart/internal/domain/entities"
)

// RecommendationCartRequest carries upstream records already fetched by the
// caller. Records may be bare strings or objects; see entities.RecommendedItem.
type RecommendationCartRequest struct {
	Flow            string                     `json:"flow"`
	EquipmentType   string                     `json:"equipment_type"`
	Recommendations []entities.RecommendedItem `json:"recommendations"`
}

// AnalyzeRequest forwards Payload unchanged to the advisor serving Flow.
type AnalyzeRequest struct {
	Flow          string          `json:"flow"`
	EquipmentType string          `json:"equipment_type"`
	Payload       json.RawMessage `json:"payload"`
}
