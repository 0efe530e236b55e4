package services

import (
	"context"
	"fmt"
	"time"

	"cooksync/entity"
	"cooksync/repository"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"gorm.io/gorm"
)

// Charger confirms a tokenized card payment and returns the provider
// transaction id.
type Charger interface {
	Charge(ctx context.Context, paymentMethodID string, amountCents int64, description string) (string, error)
}

// StripeCharger confirms a PaymentIntent immediately against the given
// payment method.
type StripeCharger struct{}

func NewStripeCharger(secretKey string) *StripeCharger {
	stripe.Key = secretKey
	return &StripeCharger{}
}

func (c *StripeCharger) Charge(ctx context.Context, paymentMethodID string, amountCents int64, description string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethod: stripe.String(paymentMethodID),
		Description:   stripe.String(description),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("payment intent status %s", pi.Status)
	}
	return pi.ID, nil
}

type Package struct {
	Name       string
	PriceCents int64
	Badge      string
}

// Membership packages are fixed server-side; the client only names one.
var packages = map[string]Package{
	"Silver":   {Name: "Silver", PriceCents: 1999, Badge: entity.BadgeSilver},
	"Gold":     {Name: "Gold", PriceCents: 3999, Badge: entity.BadgeGold},
	"Platinum": {Name: "Platinum", PriceCents: 5999, Badge: entity.BadgePlatinum},
}

type PaymentService struct {
	DB       *gorm.DB
	repo     *repository.PaymentRepository
	userRepo *repository.UserRepository
	charger  Charger
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, userRepo *repository.UserRepository, charger Charger) *PaymentService {
	return &PaymentService{DB: db, repo: repo, userRepo: userRepo, charger: charger}
}

// Checkout charges the package price and, in one transaction, records the
// payment and upgrades the badge. A failed charge records nothing.
func (s *PaymentService) Checkout(ctx context.Context, email, packageName, paymentMethodID string) (*entity.Payment, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}

	pkg, ok := packages[packageName]
	if !ok {
		return nil, ErrInvalidPackage
	}
	if paymentMethodID == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrValidation)
	}

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		return nil, ErrAuthRequired
	}

	txID, err := s.charger.Charge(ctx, paymentMethodID, pkg.PriceCents,
		fmt.Sprintf("CookSync %s membership for %s", pkg.Name, email))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	payment := &entity.Payment{
		UserEmail:     email,
		Package:       pkg.Name,
		Price:         float64(pkg.PriceCents) / 100,
		TransactionID: txID,
		PaidAt:        time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(tx, payment); err != nil {
			return err
		}
		return s.userRepo.UpdateBadge(tx, email, pkg.Badge)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) History(email string) ([]entity.Payment, error) {
	if email == "" {
		return nil, ErrAuthRequired
	}
	return s.repo.ListByUser(email)
}
