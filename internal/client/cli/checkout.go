package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/arshopsy/arshopsy/internal/checkout"
	"github.com/arshopsy/arshopsy/internal/client/api"
	"github.com/arshopsy/arshopsy/internal/payments"
)

// remoteGateway adapts the storefront API to the checkout flow's gateway
// boundary: the charge happens server-side, the flow only sees the outcome.
type remoteGateway struct {
	api     apiClient
	attempt func() *checkout.Attempt
}

func (g *remoteGateway) Charge(ctx context.Context, req payments.ChargeRequest) (*payments.Receipt, error) {
	at := g.attempt()

	order, err := g.api.PlaceOrder(ctx, api.CheckoutRequest{
		Method: req.Method,
		Card: api.CardDetails{
			Number: at.Card.Number,
			Name:   at.Card.Name,
			Expiry: at.Card.Expiry,
			CVC:    at.Card.CVC,
		},
		NetBanking: api.NetBankingDetails{
			Bank:          at.NetBanking.Bank,
			AccountNumber: at.NetBanking.AccountNumber,
		},
		UPI:     api.UPIDetails{ID: at.UPI.ID},
		Email:   req.Email,
		ItemIDs: req.ItemIDs,
	})
	if err != nil {
		return nil, err
	}

	return &payments.Receipt{
		AttemptID: req.AttemptID,
		Reference: order.Reference,
		ChargedAt: time.Now(),
	}, nil
}

// Checkout walks the user through paying for the wishlist: choose a method,
// fill in its fields, submit. Validation problems and declines keep the
// entered fields so the user can correct and retry; 'cancel' abandons the
// attempt without charging.
func (a *App) Checkout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please sign in first.")
		return nil
	}
	if a.wishlist.Len() == 0 {
		fmt.Println("Your wishlist is empty.")
		return nil
	}

	ids := make([]string, 0, a.wishlist.Len())
	for _, item := range a.wishlist.List() {
		ids = append(ids, item.ID)
	}

	gw := &remoteGateway{api: a.api}
	flow := checkout.NewFlow(gw)
	gw.attempt = flow.Attempt

	if err := flow.Begin(a.userEmail, ids, a.wishlist.TotalINR()); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Paying INR %d for %d item(s).\n", a.wishlist.TotalINR(), len(ids))

	for flow.State() == checkout.MethodSelection {
		method, err := getSimpleText(a.reader,
			"Payment method (card/netbanking/upi/cod), or 'cancel'", os.Stdout)
		if err != nil {
			_ = flow.Cancel()
			return err
		}
		if method == "cancel" {
			if err := flow.Cancel(); err != nil {
				return err
			}
			fmt.Println("Checkout cancelled.")
			return nil
		}

		if err := flow.SelectMethod(checkout.Method(method)); err != nil {
			return err
		}
		if err := a.fillMethodDetails(flow.Attempt()); err != nil {
			return err
		}

		if err := flow.Submit(ctx); err != nil {
			fmt.Println(flow.InlineError())
			continue
		}
	}

	receipt := flow.Receipt()
	fmt.Printf("Payment successful! Reference: %s\n", receipt.Reference)
	a.wishlist.Clear()
	flow.Close()
	return nil
}

// promptField shows the field's current value in the prompt; pressing Enter
// keeps it, so a retry only has to fix what was wrong.
func (a *App) promptField(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, label, os.Stdout)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// fillMethodDetails prompts for the selected method's fields.
func (a *App) fillMethodDetails(attempt *checkout.Attempt) error {
	var err error
	switch attempt.Method {
	case checkout.MethodCard:
		if attempt.Card.Number, err = a.promptField("Card number", attempt.Card.Number); err != nil {
			return err
		}
		if attempt.Card.Name, err = a.promptField("Name on card", attempt.Card.Name); err != nil {
			return err
		}
		if attempt.Card.Expiry, err = a.promptField("Expiry (MM/YY)", attempt.Card.Expiry); err != nil {
			return err
		}
		if attempt.Card.CVC, err = a.promptField("CVC", attempt.Card.CVC); err != nil {
			return err
		}
	case checkout.MethodNetBanking:
		if attempt.NetBanking.Bank, err = a.promptField("Bank", attempt.NetBanking.Bank); err != nil {
			return err
		}
		if attempt.NetBanking.AccountNumber, err = a.promptField("Account number", attempt.NetBanking.AccountNumber); err != nil {
			return err
		}
	case checkout.MethodUPI:
		if attempt.UPI.ID, err = a.promptField("UPI ID", attempt.UPI.ID); err != nil {
			return err
		}
	}
	return nil
}

// Orders lists the signed-in user's completed orders.
func (a *App) Orders(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please sign in first.")
		return nil
	}

	orders, err := a.api.Orders(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("%-36s %-12s INR %-8d %d item(s) ref=%s\n",
			o.ID, o.Method, o.AmountINR, len(o.ItemIDs), o.Reference)
	}
	return nil
}
