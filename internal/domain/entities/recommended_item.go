package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RecommendationKind tells which upstream shape a RecommendedItem came from.
type RecommendationKind string

const (
	// KindBare is a bare JSON string: "Neem Oil".
	KindBare RecommendationKind = "bare"
	// KindItem is an object carrying an "item" field (treatment plans).
	KindItem RecommendationKind = "item"
	// KindNamed is an object carrying a "name" field (equipment parts, catalogs).
	KindNamed RecommendationKind = "named"
	// KindUnknown is any shape without a usable display name.
	KindUnknown RecommendationKind = "unknown"
)

// RecommendedItem is a producer-side "what to buy" record, before pricing.
//
// Upstream analysis services return heterogeneous records. UnmarshalJSON
// resolves the shape once so callers switch on Kind instead of probing fields.
type RecommendedItem struct {
	Kind        RecommendationKind `json:"kind"`
	Label       string             `json:"label,omitempty"`
	Description string             `json:"description,omitempty"`
	Usage       string             `json:"usage,omitempty"`
	Urgency     string             `json:"urgency,omitempty"`
}

func NewBareRecommendation(label string) RecommendedItem {
	return RecommendedItem{Kind: KindBare, Label: label}
}

// DisplayName returns the trimmed label, or "" for KindUnknown.
func (r RecommendedItem) DisplayName() string {
	if r.Kind == KindUnknown {
		return ""
	}
	return strings.TrimSpace(r.Label)
}

type recommendedObject struct {
	Item        *string `json:"item"`
	Name        *string `json:"name"`
	Description string  `json:"description"`
	Usage       string  `json:"usage"`
	Urgency     string  `json:"urgency"`
}

func (r *RecommendedItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*r = RecommendedItem{Kind: KindUnknown}

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) != "" {
			r.Kind = KindBare
			r.Label = s
		}
		return nil
	case '{':
		var obj recommendedObject
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			// Unusable object fields (e.g. numeric "item") degrade to unknown.
			return nil
		}
		r.Description = obj.Description
		r.Usage = obj.Usage
		r.Urgency = obj.Urgency
		switch {
		case obj.Item != nil && strings.TrimSpace(*obj.Item) != "":
			r.Kind = KindItem
			r.Label = *obj.Item
		case obj.Name != nil && strings.TrimSpace(*obj.Name) != "":
			r.Kind = KindNamed
			r.Label = *obj.Name
		}
		return nil
	default:
		return nil
	}
}
