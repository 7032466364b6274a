package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/handoff"
	mock_interfaces "agro_cart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testRawItems = "Neem%20Oil:1:250,Urea:2:300"

func clearGatewayEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
	t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "")
}

func TestCheckoutUseCase_Checkout_Validations(t *testing.T) {
	clearGatewayEnv(t)

	t.Run("empty cart", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), "", json.RawMessage(`{}`))
		if !errors.Is(err, handoff.ErrCartEmpty) {
			t.Fatalf("expected ErrCartEmpty, got %v", err)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), "Sample:1:0", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidCheckoutAmount) {
			t.Fatalf("expected ErrInvalidCheckoutAmount, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), testRawItems, nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(nil, gateway)

		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment repository not configured" {
			t.Fatalf("expected repository not configured error, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewCheckoutUseCase(mock_interfaces.NewMockICheckoutPaymentRepository(ctrl), mock_interfaces.NewMockIPaymentGateway(ctrl))

		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewCheckoutUseCase(mock_interfaces.NewMockICheckoutPaymentRepository(ctrl), mock_interfaces.NewMockIPaymentGateway(ctrl))

		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Checkout_GatewayErrorMapping(t *testing.T) {
	clearGatewayEnv(t)
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewCheckoutUseCase(repo, gateway)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Checkout_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusRejected, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "cancelled", providerStatus: "cancelled", want: entities.PaymentStatusRejected, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearGatewayEnv(t)
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewCheckoutUseCase(repo, gateway)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != testRawItems {
						t.Fatalf("external_reference not set: %v", body["external_reference"])
					}
					if body["description"] != "Marketplace cart (2 items)" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(850) {
						t.Fatalf("transaction_amount should come from the cart, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CheckoutPayment{})).DoAndReturn(
				func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) {
					if p.ID != "pay-1" || p.EncodedItems != testRawItems || p.Total != 850 || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			res, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("mock mode skips gateway", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, gateway)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		res, err := uc.Checkout(context.Background(), testRawItems, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" || res.Status != entities.PaymentStatusApproved || res.Total != 850 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.MPPayload["external_reference"] != testRawItems {
			t.Fatalf("expected external_reference in mock response, got %v", res.MPPayload)
		}
	})

	t.Run("non-object payload is rejected", func(t *testing.T) {
		clearGatewayEnv(t)
		for _, payload := range []string{`null`, `[]`, `"pix"`, `42`} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewCheckoutUseCase(repo, gateway)

			_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("payload %s: expected ErrInvalidMPPayload, got %v", payload, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("mock mode charges the cart total for a null payload", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		res, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`null`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MPPayload["transaction_amount"] != float64(850) {
			t.Fatalf("expected transaction_amount 850, got %v", res.MPPayload["transaction_amount"])
		}
	})

	t.Run("oversized quantities are charged at the cap", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.CheckoutPayment) (entities.CheckoutPayment, error) { return p, nil },
		)

		res, err := uc.Checkout(context.Background(), "Tractor:4611686018427387904:4,Neem%20Oil:1:1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := entities.MaxQuantity*4 + 1; res.Total != want {
			t.Fatalf("expected total %d, got %d", want, res.Total)
		}
	})

	t.Run("overflowing cart total is rejected", func(t *testing.T) {
		if math.MaxInt < 1<<62 {
			t.Skip("needs 64-bit int")
		}
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, mock_interfaces.NewMockIPaymentGateway(ctrl))

		segment := fmt.Sprintf("Harvester:%d:%d,", entities.MaxQuantity, entities.MaxUnitPrice)
		lines := math.MaxInt/(entities.MaxQuantity*entities.MaxUnitPrice) + 1
		raw := strings.Repeat(segment, lines)

		_, err := uc.Checkout(context.Background(), raw, json.RawMessage(`{}`))
		if !errors.Is(err, entities.ErrTotalOverflow) {
			t.Fatalf("expected ErrTotalOverflow, got %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		clearGatewayEnv(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCheckoutUseCase(repo, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CheckoutPayment{}, errors.New("db-create"))

		_, err := uc.Checkout(context.Background(), testRawItems, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestCheckoutUseCase_GetByID(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.CheckoutPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrCheckoutPaymentNotFound) {
			t.Fatalf("expected ErrCheckoutPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckoutPaymentRepository(ctrl)
		uc := NewCheckoutUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.CheckoutPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestCheckoutUseCase_PayerHelpers(t *testing.T) {
	t.Run("hasPayer", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		clearGatewayEnv(t)
		m := map[string]any{}
		ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		m2 := map[string]any{"payer": map[string]any{}}
		ensurePayerDefaults(m2)
		if m2["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}

		ensurePayerDefaults(map[string]any{"payer": "invalid"})
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP-123")
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		mismatched := map[string]any{"payer": map[string]any{"id": "999"}}
		normalizeSandboxPayerFromUserID(mismatched)
		if _, ok := mismatched["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		matched := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(matched)
		payer := matched["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("gateway classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayInvalidUsers(nil) || isGatewayCustomerNotFound(nil) {
			t.Fatalf("all nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
	})
}
