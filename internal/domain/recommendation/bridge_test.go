package recommendation

import (
	"encoding/json"
	"testing"

	"agro_cart/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestParseFlow(t *testing.T) {
	cases := []struct {
		in   string
		want Flow
		ok   bool
	}{
		{"crop_diagnosis", FlowCropDiagnosis, true},
		{" Equipment_Analysis ", FlowEquipmentAnalysis, true},
		{"scheme_marketplace", FlowSchemeMarketplace, true},
		{"", FlowCropDiagnosis, true},
		{"weather", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseFlow(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseFlow(%q): expected (%s,%v), got (%s,%v)", tc.in, tc.want, tc.ok, got, ok)
		}
	}
}

func TestFallbackLabel(t *testing.T) {
	if got := FallbackLabel(FlowCropDiagnosis, "Tractor"); got != "Treatment" {
		t.Fatalf("expected Treatment, got %q", got)
	}
	if got := FallbackLabel(FlowSchemeMarketplace, ""); got != "Treatment" {
		t.Fatalf("expected Treatment, got %q", got)
	}
	if got := FallbackLabel(FlowEquipmentAnalysis, " Tractor "); got != "Maintenance Kit for Tractor" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := FallbackLabel(FlowEquipmentAnalysis, ""); got != "Maintenance Kit for Equipment" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestToLineItems(t *testing.T) {
	var recs []entities.RecommendedItem
	raw := `["Neem Oil", {"item":"Urea"}, {"name":"Copper Fungicide"}, {"usage":"spray"}, "  "]`
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ToLineItems(recs, "Treatment")
	treatmentPrice := ToLineItems(GenericFallback("Treatment"), "")[0].UnitPrice
	want := []entities.LineItem{
		{Name: "Neem Oil", Quantity: 1, UnitPrice: 250},
		{Name: "Urea", Quantity: 1, UnitPrice: 300},
		{Name: "Copper Fungicide", Quantity: 1, UnitPrice: 450},
		{Name: "Treatment", Quantity: 1, UnitPrice: treatmentPrice},
		{Name: "Treatment", Quantity: 1, UnitPrice: treatmentPrice},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if treatmentPrice < 150 || treatmentPrice > 849 {
		t.Fatalf("fallback label price out of range: %d", treatmentPrice)
	}
}

func TestNormalize_SameNameSamePrice(t *testing.T) {
	fromDisease := Normalize(entities.RecommendedItem{Kind: entities.KindItem, Label: "Drip Irrigation Kit"}, "Treatment")
	fromCatalog := Normalize(entities.NewBareRecommendation("Drip Irrigation Kit"), "Maintenance Kit for Pump")
	if fromDisease.UnitPrice != fromCatalog.UnitPrice {
		t.Fatalf("same name priced differently: %d vs %d", fromDisease.UnitPrice, fromCatalog.UnitPrice)
	}
}

func TestGenericFallback(t *testing.T) {
	recs := GenericFallback("Maintenance Kit for Tractor")
	if len(recs) != 1 || recs[0].Kind != entities.KindBare || recs[0].Label != "Maintenance Kit for Tractor" {
		t.Fatalf("unexpected fallback: %+v", recs)
	}
}
