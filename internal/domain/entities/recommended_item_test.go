package entities

import (
	"encoding/json"
	"testing"
)

func TestRecommendedItem_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		kind  RecommendationKind
		label string
	}{
		{name: "bare string", raw: `"Neem Oil"`, kind: KindBare, label: "Neem Oil"},
		{name: "blank string", raw: `"   "`, kind: KindUnknown},
		{name: "item field", raw: `{"item":"Copper Fungicide","usage":"spray weekly","urgency":"high"}`, kind: KindItem, label: "Copper Fungicide"},
		{name: "name field", raw: `{"name":"Air Filter","description":"replace"}`, kind: KindNamed, label: "Air Filter"},
		{name: "item wins over name", raw: `{"item":"Urea","name":"Other"}`, kind: KindItem, label: "Urea"},
		{name: "blank item falls to name", raw: `{"item":" ","name":"NPK 19-19-19"}`, kind: KindNamed, label: "NPK 19-19-19"},
		{name: "no name fields", raw: `{"description":"apply at dusk"}`, kind: KindUnknown},
		{name: "numeric item", raw: `{"item":42}`, kind: KindUnknown},
		{name: "null", raw: `null`, kind: KindUnknown},
		{name: "number", raw: `7`, kind: KindUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r RecommendedItem
			if err := json.Unmarshal([]byte(tc.raw), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, r.Kind)
			}
			if r.DisplayName() != tc.label {
				t.Fatalf("expected label %q, got %q", tc.label, r.DisplayName())
			}
		})
	}
}

func TestRecommendedItem_UnmarshalList(t *testing.T) {
	var recs []RecommendedItem
	raw := `["Neem Oil", {"item":"Urea","urgency":"low"}, {"name":"Seeds"}, {}]`
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(recs))
	}
	if recs[1].Urgency != "low" {
		t.Fatalf("expected urgency to be kept, got %+v", recs[1])
	}
	if recs[3].Kind != KindUnknown {
		t.Fatalf("expected empty object to be unknown, got %s", recs[3].Kind)
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":   PaymentStatusApproved,
		"rejected":   PaymentStatusRejected,
		"cancelled":  PaymentStatusRejected,
		"in_process": PaymentStatusPending,
		"":           PaymentStatusPending,
	}
	for in, want := range cases {
		if got := PaymentStatusFromProvider(in); got != want {
			t.Fatalf("for %q expected %s, got %s", in, want, got)
		}
	}
}
