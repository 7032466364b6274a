package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/handoff"
	"agro_cart/internal/domain/itemcodec"
	"agro_cart/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCheckoutPaymentNotFound        = errors.New("checkout payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvalidCheckoutAmount          = errors.New("cart total must be positive")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ICheckoutUseCase is the marketplace side of the hand-off: it rebuilds the
// cart from the "items" value it was opened with and charges it.
//
// The charged amount always comes from the decoded cart, never from the
// caller's payment payload.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, rawItems string, mpPayload json.RawMessage) (entities.CheckoutPayment, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error)
}

type CheckoutUseCase struct {
	repo    interfaces.ICheckoutPaymentRepository
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.ICheckoutPaymentRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, gateway: gateway}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, rawItems string, mpPayload json.RawMessage) (entities.CheckoutPayment, error) {
	log := zap.L()
	log.Info("[checkout][usecase] checkout start", zap.Int("raw_items_len", len(rawItems)), zap.Int("payload_len", len(mpPayload)))
	mockMode := isPaymentGatewayMockEnabled()

	cart := entities.NewCart(itemcodec.Decode(rawItems)...)
	if cart.IsEmpty() {
		log.Info("[checkout][usecase] rejected empty cart")
		return entities.CheckoutPayment{}, handoff.ErrCartEmpty
	}
	total, err := cart.CheckedTotal()
	if err != nil {
		log.Info("[checkout][usecase] rejected cart total overflow", zap.Int("items", cart.Len()))
		return entities.CheckoutPayment{}, err
	}
	if total <= 0 {
		log.Info("[checkout][usecase] rejected non-positive total", zap.Int("total", total))
		return entities.CheckoutPayment{}, ErrInvalidCheckoutAmount
	}
	encoded := itemcodec.Encode(cart.Items())

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info("[checkout][usecase] invalid payload (empty or not-json)")
			return entities.CheckoutPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("[checkout][usecase] gateway not configured")
		return entities.CheckoutPayment{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		log.Error("[checkout][usecase] payment repository not configured")
		return entities.CheckoutPayment{}, errors.New("payment repository not configured")
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			log.Info("[checkout][usecase] payload is not a json object", zap.Error(err))
			return entities.CheckoutPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[checkout][usecase] missing payment_method_id")
		return entities.CheckoutPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
	}
	if !mockMode && !hasPayer(reqMap) {
		log.Info("[checkout][usecase] missing/invalid payer")
		return entities.CheckoutPayment{}, ErrInvalidMPPayload
	}

	// external_reference lets provider events be matched back to the cart.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = encoded
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Marketplace cart (%d items)", cart.Len())
	}
	reqMap["transaction_amount"] = total
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		log.Error("[checkout][usecase] payload encode failed", zap.Error(err))
		return entities.CheckoutPayment{}, ErrInvalidMPPayload
	}
	mpPayload = enriched
	log.Debug("[checkout][usecase] payload enriched", zap.Int("payload_len", len(mpPayload)))

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Info("[checkout][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		mockResp["external_reference"] = encoded
		mockResp["transaction_amount"] = total
		b, err := json.Marshal(mockResp)
		if err != nil {
			return entities.CheckoutPayment{}, err
		}
		providerResp = b
	} else {
		log.Info("[checkout][usecase] calling payment gateway", zap.Int("total", total))
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Error("[checkout][usecase] payment gateway failed", zap.Error(err))
			return entities.CheckoutPayment{}, mapGatewayError(err)
		}
	}
	log.Info("[checkout][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[checkout][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.CheckoutPayment{
		ID:           providerPaymentID,
		EncodedItems: encoded,
		Total:        total,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[checkout][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.CheckoutPayment{}, err
	}
	log.Info("[checkout][usecase] checkout success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Int("total", created.Total))
	return created, nil
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.CheckoutPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutPayment{}, err
	}
	if p.ID == "" {
		return entities.CheckoutPayment{}, ErrCheckoutPaymentNotFound
	}
	return p, nil
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; fill email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if isSandboxToken() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox test user id
// for its email, which is what the sandbox accepts for card payments.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !isSandboxToken() {
		return
	}

	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	zap.L().Debug("[checkout][usecase] mapped sandbox payer user_id to payer.email")
}

func isSandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func gatewayErrorContains(err error, needles ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
