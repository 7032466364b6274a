package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/recommendation"
	mock_interfaces "agro_cart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func names(c *entities.Cart) []string {
	out := []string{}
	for _, it := range c.Items() {
		out = append(out, it.Name)
	}
	return out
}

func TestCartUseCase_FromRecommendations(t *testing.T) {
	uc := NewCartUseCase(nil)

	recs := []entities.RecommendedItem{
		entities.NewBareRecommendation("Neem Oil"),
		{Kind: entities.KindItem, Label: "Urea"},
		{Kind: entities.KindUnknown},
	}
	cart := uc.FromRecommendations(recommendation.FlowCropDiagnosis, "", recs)
	if cart.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", cart.Len())
	}
	items := cart.Items()
	if items[0].Name != "Neem Oil" || items[0].UnitPrice != 250 || items[0].Quantity != 1 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].UnitPrice != 300 {
		t.Fatalf("expected urea price 300, got %d", items[1].UnitPrice)
	}
	if items[2].Name != "Treatment" {
		t.Fatalf("expected fallback label, got %q", items[2].Name)
	}
	if cart.ComputeTotal() != 250+300+items[2].UnitPrice {
		t.Fatalf("unexpected total %d", cart.ComputeTotal())
	}
}

func TestCartUseCase_Analyze(t *testing.T) {
	payload := json.RawMessage(`{"crop":"tomato"}`)

	t.Run("upstream success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIRecommendationSource(ctrl)
		uc := NewCartUseCase(src)

		src.EXPECT().Recommend(gomock.Any(), recommendation.FlowEquipmentAnalysis, payload).
			Return([]entities.RecommendedItem{{Kind: entities.KindNamed, Label: "Air Filter"}}, nil)

		cart, usedFallback := uc.Analyze(context.Background(), recommendation.FlowEquipmentAnalysis, "Tractor", payload)
		if usedFallback {
			t.Fatalf("did not expect fallback")
		}
		if got := names(cart); len(got) != 1 || got[0] != "Air Filter" {
			t.Fatalf("unexpected items %v", got)
		}
	})

	t.Run("upstream error uses fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIRecommendationSource(ctrl)
		uc := NewCartUseCase(src)

		src.EXPECT().Recommend(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		cart, usedFallback := uc.Analyze(context.Background(), recommendation.FlowEquipmentAnalysis, "Tractor", payload)
		if !usedFallback {
			t.Fatalf("expected fallback")
		}
		if got := names(cart); len(got) != 1 || got[0] != "Maintenance Kit for Tractor" {
			t.Fatalf("unexpected items %v", got)
		}
	})

	t.Run("empty upstream result uses fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		src := mock_interfaces.NewMockIRecommendationSource(ctrl)
		uc := NewCartUseCase(src)

		src.EXPECT().Recommend(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.RecommendedItem{}, nil)

		cart, usedFallback := uc.Analyze(context.Background(), recommendation.FlowCropDiagnosis, "", payload)
		if !usedFallback || cart.Len() != 1 || cart.Items()[0].Name != "Treatment" {
			t.Fatalf("unexpected fallback cart %v used=%v", names(cart), usedFallback)
		}
	})

	t.Run("no source configured", func(t *testing.T) {
		uc := NewCartUseCase(nil)
		cart, usedFallback := uc.Analyze(context.Background(), recommendation.FlowEquipmentAnalysis, "", payload)
		if !usedFallback || cart.Items()[0].Name != "Maintenance Kit for Equipment" {
			t.Fatalf("unexpected fallback cart %v used=%v", names(cart), usedFallback)
		}
	})
}

func TestCartUseCase_HydrateAndEdit(t *testing.T) {
	uc := NewCartUseCase(nil)
	raw := "Neem%20Oil:1:250,Urea:2:300"

	t.Run("hydrate", func(t *testing.T) {
		cart := uc.Hydrate(raw)
		if cart.Len() != 2 || cart.ComputeTotal() != 850 {
			t.Fatalf("unexpected cart len=%d total=%d", cart.Len(), cart.ComputeTotal())
		}
	})

	t.Run("hydrate empty", func(t *testing.T) {
		if !uc.Hydrate("").IsEmpty() {
			t.Fatalf("expected empty cart")
		}
	})

	t.Run("increment", func(t *testing.T) {
		cart := uc.AdjustQuantity(raw, 0, 1)
		if cart.Items()[0].Quantity != 2 || cart.ComputeTotal() != 1100 {
			t.Fatalf("unexpected cart %+v", cart.Items())
		}
	})

	t.Run("decrement clamps at one", func(t *testing.T) {
		cart := uc.AdjustQuantity(raw, 0, -5)
		if cart.Items()[0].Quantity != 1 {
			t.Fatalf("expected quantity 1, got %d", cart.Items()[0].Quantity)
		}
	})

	t.Run("out of range index leaves cart unchanged", func(t *testing.T) {
		cart := uc.AdjustQuantity(raw, 7, 1)
		if cart.ComputeTotal() != 850 {
			t.Fatalf("expected unchanged total, got %d", cart.ComputeTotal())
		}
		cart = uc.RemoveItem(raw, -1)
		if cart.Len() != 2 {
			t.Fatalf("expected 2 items, got %d", cart.Len())
		}
	})

	t.Run("remove", func(t *testing.T) {
		cart := uc.RemoveItem(raw, 0)
		if got := names(cart); len(got) != 1 || got[0] != "Urea" {
			t.Fatalf("unexpected items %v", got)
		}
		if cart.ComputeTotal() != 600 {
			t.Fatalf("expected total 600, got %d", cart.ComputeTotal())
		}
	})
}
