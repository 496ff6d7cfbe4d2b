package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gamestation-backend/internal/config"
	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository"
	"gamestation-backend/internal/utils"
)

type membershipService struct {
	memberRepo repository.MemberRepository
	txRepo     repository.MembershipTransactionRepository
	packages   config.PackagesConfig
	// memberLocks serializes top-ups against settlements for the same
	// member. Shared with the rental service so both sides contend on the
	// same lock.
	memberLocks *utils.KeyedMutex
}

func NewMembershipService(
	memberRepo repository.MemberRepository,
	txRepo repository.MembershipTransactionRepository,
	packages config.PackagesConfig,
	memberLocks *utils.KeyedMutex,
) MembershipService {
	return &membershipService{
		memberRepo:  memberRepo,
		txRepo:      txRepo,
		packages:    packages,
		memberLocks: memberLocks,
	}
}

func (s *membershipService) FindEligiblePackage(m *domain.Member, consoleType domain.ConsoleType, at time.Time) (*domain.MemberPackage, domain.PackageWarning) {
	for i := range m.Packages {
		pkg := &m.Packages[i]
		if pkg.Covers(consoleType) && !pkg.Expired(at) && pkg.RemainingMinutes > 0 {
			return pkg, domain.PackageWarningNone
		}
	}

	// Nothing usable. Distinguish "covering package exists but expired"
	// from "no covering package or no minutes left": the operator message
	// differs.
	for i := range m.Packages {
		pkg := &m.Packages[i]
		if pkg.Covers(consoleType) && pkg.Expired(at) {
			return nil, domain.PackageWarningExpired
		}
	}
	return nil, domain.PackageWarningIneligible
}

func (s *membershipService) PurchasePackage(ctx context.Context, memberID string, kind domain.PackageKind, tier domain.EligibilityTier, now time.Time) (*domain.Member, *domain.MembershipTransaction, error) {
	def, err := s.packages.Definition(kind)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	unlock := s.memberLocks.Lock(memberID)
	defer unlock()

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}

	key := domain.EligibilityKeyFor(tier)

	topUp := false
	found := -1
	for i := range member.Packages {
		if member.Packages[i].EligibilityKey() == key {
			found = i
			break
		}
	}

	if found >= 0 {
		// Top-up merges into the single package for this eligibility set.
		// Validity extends from the current expiry while unexpired, or
		// restarts from now once expired.
		pkg := &member.Packages[found]
		topUp = true

		pkg.Kind = kind
		pkg.RemainingMinutes += def.Minutes
		pkg.RemainingDrinks += def.Drinks
		pkg.InitialMinutes = pkg.RemainingMinutes
		pkg.InitialDrinks = pkg.RemainingDrinks

		base := now
		if pkg.ExpiryDate.After(now) {
			base = pkg.ExpiryDate
		}
		pkg.ExpiryDate = base.AddDate(0, 0, int(def.ValidityDays))
	} else {
		member.Packages = append(member.Packages, domain.MemberPackage{
			ID:                   uuid.NewString(),
			Kind:                 kind,
			RemainingMinutes:     def.Minutes,
			InitialMinutes:       def.Minutes,
			RemainingDrinks:      def.Drinks,
			InitialDrinks:        def.Drinks,
			ExpiryDate:           now.AddDate(0, 0, int(def.ValidityDays)),
			EligibleConsoleTypes: tier.ConsoleTypes(),
		})
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, nil, fmt.Errorf("persist member packages: %w", err)
	}

	marker := " (New)"
	if topUp {
		marker = " (Extend/Top Up)"
	}
	tx := &domain.MembershipTransaction{
		ID:          uuid.NewString(),
		MemberID:    member.ID,
		MemberName:  member.Name,
		PackageKind: kind,
		Amount:      def.Price(tier),
		Timestamp:   now,
		Note:        tier.Label() + marker,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		// The package grant is already durable; a lost log line must not
		// take the grant with it.
		logger.Error("Failed to record membership transaction", "member_id", member.ID, "error", err)
	}

	logger.Info("Package purchase applied",
		"member_id", member.ID, "kind", kind, "tier", tier, "top_up", topUp, "amount", tx.Amount)
	return member, tx, nil
}

func (s *membershipService) ApplySettlement(m *domain.Member, consoleType domain.ConsoleType, elapsedMinutes int32, items []domain.CartItem, complimentaryProductID string, now time.Time) *SettlementOutcome {
	outcome := &SettlementOutcome{}

	// Close-time selection is looser than open-time: minutes may already
	// be at zero (the session outran the package) and we still deduct
	// against the covering unexpired package.
	var pkg *domain.MemberPackage
	for i := range m.Packages {
		p := &m.Packages[i]
		if p.Covers(consoleType) && !p.Expired(now) {
			pkg = p
			break
		}
	}
	if pkg == nil {
		return outcome
	}
	outcome.PackageID = pkg.ID

	if elapsedMinutes < 0 {
		elapsedMinutes = 0
	}
	outcome.MinutesDeducted = elapsedMinutes
	pkg.RemainingMinutes -= elapsedMinutes
	if pkg.RemainingMinutes < 0 {
		pkg.RemainingMinutes = 0
	}

	// Free-drink credits cover only the designated complimentary product,
	// walking the cart in insertion order and crediting snapshotted prices.
	if complimentaryProductID != "" {
		credits := pkg.RemainingDrinks
		for _, item := range items {
			if credits == 0 {
				break
			}
			if item.ProductID != complimentaryProductID {
				continue
			}
			free := item.Quantity
			if free > credits {
				free = credits
			}
			outcome.FreeUnits += free
			outcome.DiscountAmount += free * item.Price
			credits -= free
		}
		pkg.RemainingDrinks -= outcome.FreeUnits
	}

	return outcome
}
