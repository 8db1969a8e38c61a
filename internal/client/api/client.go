// Package api is the storefront's HTTP API client. It translates error
// statuses back into the shared sentinel errors so the CLI can treat remote
// and local failures uniformly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arshopsy/arshopsy/internal/catalog"
	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/feedback"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// User mirrors the server's account representation.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order mirrors the server's completed-order representation.
type Order struct {
	ID        string   `json:"id"`
	Method    string   `json:"method"`
	AmountINR int      `json:"amount_inr"`
	ItemIDs   []string `json:"item_ids"`
	Reference string   `json:"reference"`
}

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

// do runs one JSON request. A transport-level failure maps to ErrUnavailable;
// error statuses map back onto the shared sentinels.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return mapStatus(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapStatus(resp *http.Response) error {
	var apiErr apiError
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &apiErr)

	switch resp.StatusCode {
	case http.StatusConflict:
		return common.ErrDuplicateEmail
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusPaymentRequired:
		return common.ErrPaymentDeclined
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest:
		if apiErr.Field != "" {
			return &checkout.ValidationError{Field: apiErr.Field, Message: apiErr.Error}
		}
		return fmt.Errorf("bad request: %s", apiErr.Error)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

func (c *Client) Register(ctx context.Context, name, email string, password []byte) (*User, error) {
	req := map[string]string{"name": name, "email": email, "password": string(password)}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email string, password []byte) (*User, error) {
	req := map[string]string{"email": email, "password": string(password)}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", req, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

// Token returns the bearer token installed by Login.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) Catalog(ctx context.Context) ([]catalog.Item, error) {
	var resp struct {
		Items []catalog.Item `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/catalog", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ModelURL resolves a presigned download URL for an item's 3D model.
// Platform "ios" selects the usdz variant.
func (c *Client) ModelURL(ctx context.Context, itemID, platform string) (string, error) {
	path := "/api/catalog/" + itemID + "/model"
	if platform != "" {
		path += "?platform=" + platform
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// CheckoutRequest carries one payment attempt to the server.
type CheckoutRequest struct {
	Method     string            `json:"method"`
	Card       CardDetails       `json:"card"`
	NetBanking NetBankingDetails `json:"netbanking"`
	UPI        UPIDetails        `json:"upi"`
	Email      string            `json:"email"`
	ItemIDs    []string          `json:"item_ids"`
}

type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

type NetBankingDetails struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

type UPIDetails struct {
	ID string `json:"id"`
}

func (c *Client) PlaceOrder(ctx context.Context, req CheckoutRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/checkout", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var resp struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) SendFeedback(ctx context.Context, msg feedback.Message) error {
	return c.do(ctx, http.MethodPost, "/api/feedback", msg, nil)
}
