package pos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"restoflow/entity"
)

// Gateway is the terminal's view of the server. The caller treats any
// error as "offline or unreachable". Error kinds are not
// differentiated, a timeout counts the same as a refused connection.
type Gateway interface {
	SubmitOrder(ctx context.Context, o entity.Order, tenantID uint) (*entity.Order, error)
	Items(ctx context.Context, tenantID uint) ([]entity.Item, error)
	Orders(ctx context.Context, tenantID uint) ([]entity.Order, error)
}

// HTTPGateway talks to the RestoFlow API. The client timeout is the
// offline detector: an unresponsive server must not hang a checkout.
type HTTPGateway struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPGateway(baseURL, token string, timeout time.Duration) *HTTPGateway {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPGateway{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, tenantID uint, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}
	if tenantID != 0 {
		req.Header.Set("X-Tenant-ID", strconv.FormatUint(uint64(tenantID), 10))
	}

	res, err := g.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if res.StatusCode >= 400 || !env.OK {
		return fmt.Errorf("%s %s: %s", method, path, env.Error)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (g *HTTPGateway) SubmitOrder(ctx context.Context, o entity.Order, tenantID uint) (*entity.Order, error) {
	var persisted entity.Order
	if err := g.do(ctx, http.MethodPost, "/api/v1/orders", tenantID, o, &persisted); err != nil {
		return nil, err
	}
	return &persisted, nil
}

func (g *HTTPGateway) Items(ctx context.Context, tenantID uint) ([]entity.Item, error) {
	var items []entity.Item
	if err := g.do(ctx, http.MethodGet, "/api/v1/items", tenantID, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (g *HTTPGateway) Orders(ctx context.Context, tenantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	if err := g.do(ctx, http.MethodGet, "/api/v1/orders", tenantID, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// LoginResult is what the login endpoint hands a terminal at startup.
type LoginResult struct {
	Token      string             `json:"token"`
	User       entity.User        `json:"user"`
	Restaurant *entity.Restaurant `json:"restaurant"`
}

// Login authenticates the cashier and stores the token for subsequent
// calls. The login endpoint uses a flat response, not the data envelope.
func (g *HTTPGateway) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login failed: %s", res.Status)
	}
	var out LoginResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	g.Token = out.Token
	return &out, nil
}
