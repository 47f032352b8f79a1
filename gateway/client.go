package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Payment est la vue normalisée d'un paiement côté passerelle.
// Raw garde le corps de réponse intégral pour l'audit.
type Payment struct {
	ID           string
	Status       string
	StatusDetail string
	Raw          json.RawMessage
}

type paymentResponse struct {
	ID           json.Number `json:"id"`
	Status       string      `json:"status"`
	StatusDetail string      `json:"status_detail"`
}

var (
	gatewayURLEnv  = "GATEWAY_API_URL"
	defaultBaseURL = "https://api.mercadopago.com"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient() *Client {
	baseURL := os.Getenv(gatewayURLEnv)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// GetPayment interroge la passerelle pour l'état courant d'un paiement.
// Toute erreur de transport ou statut HTTP non-200 est une erreur dure:
// l'appelant doit répondre 5xx pour que la passerelle relivre plus tard.
func (g *Client) GetPayment(ctx context.Context, accessToken, providerPaymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", g.baseURL, providerPaymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading gateway response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var payment paymentResponse
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, fmt.Errorf("error decoding gateway response: %v", err)
	}

	return &Payment{
		ID:           payment.ID.String(),
		Status:       payment.Status,
		StatusDetail: payment.StatusDetail,
		Raw:          json.RawMessage(body),
	}, nil
}
