// Package checkout implements the payment modal: a short-lived state machine
// that collects a payment method, validates its fields, and submits a single
// charge through a payments.Gateway.
package checkout

import (
	"fmt"
	"regexp"
)

// Method is one of the supported payment methods.
type Method string

const (
	MethodCard       Method = "card"
	MethodNetBanking Method = "netbanking"
	MethodUPI        Method = "upi"
	MethodCOD        Method = "cod"
)

// Methods lists the selectable payment methods in display order.
func Methods() []Method {
	return []Method{MethodCard, MethodNetBanking, MethodUPI, MethodCOD}
}

// CardDetails carries the card form fields.
type CardDetails struct {
	Number string
	Name   string
	Expiry string // MM/YY
	CVC    string
}

// NetBankingDetails carries the net banking form fields.
type NetBankingDetails struct {
	Bank          string
	AccountNumber string
}

// UPIDetails carries the UPI form field.
type UPIDetails struct {
	ID string
}

// Attempt is a transient payment attempt. It is created when the modal opens
// and discarded when it closes; nothing here is ever persisted client-side.
type Attempt struct {
	ID         string
	Method     Method
	Card       CardDetails
	NetBanking NetBankingDetails
	UPI        UPIDetails
}

// ValidationError reports a structural problem with the selected method's
// fields. It is surfaced inline next to the form and never mutates state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
	upiRe        = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
)

// Validate runs the synchronous structural checks for the selected method.
// It is pure: no side effects on failure, deterministic for a given attempt.
func (a *Attempt) Validate() error {
	switch a.Method {
	case MethodCard:
		c := a.Card
		if c.Number == "" || c.Name == "" || c.Expiry == "" || c.CVC == "" {
			return &ValidationError{Field: "card", Message: "all card fields are required"}
		}
		if !cardNumberRe.MatchString(c.Number) {
			return &ValidationError{Field: "cardNumber", Message: "card number must be 16 digits"}
		}
		if !expiryRe.MatchString(c.Expiry) {
			return &ValidationError{Field: "expiryDate", Message: "expiry date must be in MM/YY format"}
		}
		if !cvcRe.MatchString(c.CVC) {
			return &ValidationError{Field: "cvc", Message: "CVC must be 3 or 4 digits"}
		}
	case MethodNetBanking:
		n := a.NetBanking
		if n.Bank == "" || n.AccountNumber == "" {
			return &ValidationError{Field: "netbanking", Message: "bank and account number are required"}
		}
	case MethodUPI:
		if a.UPI.ID == "" {
			return &ValidationError{Field: "upiId", Message: "UPI ID is required"}
		}
		if !upiRe.MatchString(a.UPI.ID) {
			return &ValidationError{Field: "upiId", Message: "invalid UPI ID format"}
		}
	case MethodCOD:
		// nothing to check
	default:
		return &ValidationError{Field: "method", Message: "unknown payment method"}
	}
	return nil
}
