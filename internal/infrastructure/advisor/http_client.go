// Package advisor calls the upstream analysis agents (disease, equipment,
// scheme) and extracts the recommended items from their responses.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agro_cart/internal/domain/entities"
	"agro_cart/internal/domain/recommendation"
	"agro_cart/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrFlowNotConfigured = errors.New("no advisor configured for flow")

// flowPaths maps each flow to the endpoint its agent serves.
var flowPaths = map[recommendation.Flow]string{
	recommendation.FlowCropDiagnosis:     "/diagnose",
	recommendation.FlowEquipmentAnalysis: "/analyze",
	recommendation.FlowSchemeMarketplace: "/recommend",
}

// responseKeys are checked in order; the first array found wins.
var responseKeys = []string{"recommendations", "items", "parts"}

const maxResponseBytes = 1 << 20

type HTTPClient struct {
	baseURLs map[recommendation.Flow]string
	http     *http.Client
}

var _ interfaces.IRecommendationSource = (*HTTPClient)(nil)

func NewHTTPClient(baseURLs map[recommendation.Flow]string, timeout time.Duration) *HTTPClient {
	urls := make(map[recommendation.Flow]string, len(baseURLs))
	for flow, u := range baseURLs {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			urls[flow] = u
		}
	}
	return &HTTPClient{baseURLs: urls, http: &http.Client{Timeout: timeout}}
}

func (c *HTTPClient) Recommend(ctx context.Context, flow recommendation.Flow, payload json.RawMessage) ([]entities.RecommendedItem, error) {
	base, ok := c.baseURLs[flow]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFlowNotConfigured, flow)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = json.RawMessage("{}")
	}

	endpoint := base + flowPaths[flow]
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call advisor %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read advisor response: %w", err)
	}
	zap.L().Debug("[advisor][client] response",
		zap.String("flow", string(flow)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("advisor %s returned status %d", endpoint, resp.StatusCode)
	}
	return ParseRecommendations(body)
}

// ParseRecommendations extracts the recommendation array from an agent
// response. A bare top-level array is accepted too. A response without any
// array yields no items and no error.
func ParseRecommendations(body []byte) ([]entities.RecommendedItem, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recs []entities.RecommendedItem
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, fmt.Errorf("decode advisor response: %w", err)
		}
		return recs, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode advisor response: %w", err)
	}
	for _, key := range responseKeys {
		raw := bytes.TrimSpace(envelope[key])
		if len(raw) == 0 || raw[0] != '[' {
			continue
		}
		var recs []entities.RecommendedItem
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil, fmt.Errorf("decode advisor %q: %w", key, err)
		}
		return recs, nil
	}
	return nil, nil
}
