package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
)

// Instruction type identifiers returned to the storefront
const (
	InstructionTypeBankTransfer   = "bank_transfer"
	InstructionTypeGCash          = "gcash"
	InstructionTypeCashOnDelivery = "cash_on_delivery"
)

const orderNumberSuffixLen = 9

// Uppercase base-36 alphabet used for order number suffixes
const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// PaymentInstructions is the method-specific payment block attached to a
// successful checkout response. Fields not relevant to the method are omitted.
type PaymentInstructions struct {
	Type          string  `json:"type"`
	BankName      string  `json:"bankName,omitempty"`
	AccountName   string  `json:"accountName,omitempty"`
	AccountNumber string  `json:"accountNumber,omitempty"`
	GCashNumber   string  `json:"gcashNumber,omitempty"`
	Amount        float64 `json:"amount"`
	Reference     string  `json:"reference,omitempty"`
	Instructions  string  `json:"instructions"`
}

// PaymentService derives order statuses, order numbers and payment
// instructions for the checkout flow
type PaymentService struct {
	cfg *config.Config
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(cfg *config.Config) *PaymentService {
	return &PaymentService{cfg: cfg}
}

// ResolveInitialStatuses maps a payment method to the initial
// (paymentStatus, orderStatus) pair for a new order.
//
// Cash-on-delivery orders are confirmed immediately since no advance payment
// proof is expected. Every other method, known or not, starts in processing
// with payment pending until the customer submits proof of payment.
func (s *PaymentService) ResolveInitialStatuses(method models.PaymentMethod) (models.PaymentStatus, models.OrderStatus) {
	if method == models.PaymentMethodCOD {
		return models.PaymentStatusPending, models.OrderStatusConfirmed
	}
	return models.PaymentStatusPending, models.OrderStatusProcessing
}

// GenerateOrderNumber produces a human-facing order reference of the form
// ORD-<millisecond timestamp>-<9 uppercase base-36 characters>.
//
// There is no uniqueness check against storage; a collision requires two
// orders in the same millisecond drawing the same random suffix.
func (s *PaymentService) GenerateOrderNumber() string {
	suffix := make([]byte, orderNumberSuffixLen)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; fall back to a time-derived index rather than abort
			// the checkout.
			suffix[i] = orderNumberAlphabet[time.Now().UnixNano()%int64(len(orderNumberAlphabet))]
			continue
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(suffix))
}

// Instructions builds the payment instruction block for an order. It returns
// nil for unrecognized payment methods; the checkout response then carries no
// paymentInstructions field at all.
func (s *PaymentService) Instructions(method models.PaymentMethod, total float64, orderNumber string) *PaymentInstructions {
	switch method {
	case models.PaymentMethodBank:
		return &PaymentInstructions{
			Type:          InstructionTypeBankTransfer,
			BankName:      s.cfg.BankName,
			AccountName:   s.cfg.BankAccountName,
			AccountNumber: s.cfg.BankAccountNumber,
			Amount:        total,
			Reference:     orderNumber,
			Instructions:  fmt.Sprintf("Please send proof of payment to %s with your order number.", s.cfg.PaymentsEmail),
		}
	case models.PaymentMethodGCash:
		return &PaymentInstructions{
			Type:         InstructionTypeGCash,
			GCashNumber:  s.cfg.GCashNumber,
			AccountName:  s.cfg.GCashAccountName,
			Amount:       total,
			Reference:    orderNumber,
			Instructions: fmt.Sprintf("Send payment via GCash and screenshot the confirmation. Send to %s with your order number.", s.cfg.PaymentsEmail),
		}
	case models.PaymentMethodCOD:
		return &PaymentInstructions{
			Type:         InstructionTypeCashOnDelivery,
			Amount:       total,
			Instructions: "Please prepare the exact amount. Our delivery rider will collect payment upon delivery.",
		}
	}
	return nil
}
