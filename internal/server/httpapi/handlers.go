package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arshopsy/arshopsy/internal/catalog"
	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/common"
	"github.com/arshopsy/arshopsy/internal/feedback"
)

// writeError maps service errors onto HTTP statuses. Anything unrecognized
// is reported as a generic 500 so internals never leak to clients.
func (s *Server) writeError(c *gin.Context, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, common.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": common.ErrDuplicateEmail.Error()})
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrNotSignedIn),
		errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, common.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": common.ErrPaymentDeclined.Error()})
	case errors.Is(err, common.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrEmptyCart.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "Request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Email, []byte(req.Password))
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "email", user.Email)
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := s.users.Authenticate(c.Request.Context(), req.Email, []byte(req.Password))
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (s *Server) listCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": catalog.Items()})
}

func (s *Server) getItem(c *gin.Context) {
	item := catalog.Find(c.Param("id"))
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) getModelURL(c *gin.Context) {
	item := catalog.Find(c.Param("id"))
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	key := item.ModelAssetKey
	if c.Query("platform") == "ios" {
		key = item.IOSModelAssetKey
	}

	url, err := s.assets.GetModelURL(c.Request.Context(), key)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

type cardRequest struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

type netBankingRequest struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
}

type upiRequest struct {
	ID string `json:"id"`
}

type checkoutRequest struct {
	Method     string            `json:"method"`
	Card       cardRequest       `json:"card"`
	NetBanking netBankingRequest `json:"netbanking"`
	UPI        upiRequest        `json:"upi"`
	Email      string            `json:"email"`
	ItemIDs    []string          `json:"item_ids"`
}

type orderResponse struct {
	ID        string   `json:"id"`
	Method    string   `json:"method"`
	AmountINR int      `json:"amount_inr"`
	ItemIDs   []string `json:"item_ids"`
	Reference string   `json:"reference"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	attempt := &checkout.Attempt{
		Method: checkout.Method(req.Method),
		Card: checkout.CardDetails{
			Number: req.Card.Number,
			Name:   req.Card.Name,
			Expiry: req.Card.Expiry,
			CVC:    req.Card.CVC,
		},
		NetBanking: checkout.NetBankingDetails{
			Bank:          req.NetBanking.Bank,
			AccountNumber: req.NetBanking.AccountNumber,
		},
		UPI: checkout.UPIDetails{ID: req.UPI.ID},
	}

	order, err := s.checkout.PlaceOrder(c.Request.Context(), userID(c), req.Email, attempt, req.ItemIDs)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Order placed",
		"order", order.ID, "method", order.Method, "amount_inr", order.AmountINR)
	c.JSON(http.StatusOK, orderResponse{
		ID:        order.ID,
		Method:    order.Method,
		AmountINR: order.AmountINR,
		ItemIDs:   order.ItemIDs,
		Reference: order.Reference,
	})
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.checkout.Orders(c.Request.Context(), userID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			ID:        o.ID,
			Method:    o.Method,
			AmountINR: o.AmountINR,
			ItemIDs:   o.ItemIDs,
			Reference: o.Reference,
		})
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func (s *Server) submitFeedback(c *gin.Context) {
	var msg feedback.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.feedback.Submit(c.Request.Context(), msg); err != nil {
		s.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
