package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/logger"
	"gamestation-backend/internal/repository"
	"gamestation-backend/internal/utils"
)

type rentalService struct {
	consoleRepo    repository.ConsoleRepository
	memberRepo     repository.MemberRepository
	productRepo    repository.ProductRepository
	sessionRepo    repository.SessionRepository
	pricing        PricingService
	membership     MembershipService
	quantumMinutes int
	consoleLocks   *utils.KeyedMutex
	memberLocks    *utils.KeyedMutex
}

func NewRentalService(
	consoleRepo repository.ConsoleRepository,
	memberRepo repository.MemberRepository,
	productRepo repository.ProductRepository,
	sessionRepo repository.SessionRepository,
	pricing PricingService,
	membership MembershipService,
	quantumMinutes int,
	consoleLocks, memberLocks *utils.KeyedMutex,
) RentalService {
	if quantumMinutes <= 0 {
		quantumMinutes = utils.DefaultQuantumMinutes
	}
	return &rentalService{
		consoleRepo:    consoleRepo,
		memberRepo:     memberRepo,
		productRepo:    productRepo,
		sessionRepo:    sessionRepo,
		pricing:        pricing,
		membership:     membership,
		quantumMinutes: quantumMinutes,
		consoleLocks:   consoleLocks,
		memberLocks:    memberLocks,
	}
}

func (s *rentalService) OpenSession(ctx context.Context, consoleID, memberID, customerName string, now time.Time) (*domain.RentalSession, domain.PackageWarning, error) {
	unlock := s.consoleLocks.Lock(consoleID)
	defer unlock()

	console, err := s.consoleRepo.GetByID(ctx, consoleID)
	if err != nil {
		return nil, domain.PackageWarningNone, err
	}
	if console.Status == domain.ConsoleStatusMaintenance {
		return nil, domain.PackageWarningNone, fmt.Errorf("console %s is under maintenance: %w", consoleID, domain.ErrValidation)
	}

	if _, err := s.sessionRepo.GetActiveByConsole(ctx, consoleID); err == nil {
		return nil, domain.PackageWarningNone, fmt.Errorf("console %s already has an active session: %w", consoleID, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.PackageWarningNone, err
	}

	warning := domain.PackageWarningNone
	membershipBacked := false
	if memberID != "" {
		member, err := s.memberRepo.GetByID(ctx, memberID)
		if err != nil {
			return nil, domain.PackageWarningNone, err
		}
		if customerName == "" {
			customerName = member.Name
		}
		var pkg *domain.MemberPackage
		pkg, warning = s.membership.FindEligiblePackage(member, console.Type, now)
		membershipBacked = pkg != nil
	}

	session := &domain.RentalSession{
		ID:                 uuid.NewString(),
		ConsoleID:          consoleID,
		MemberID:           memberID,
		CustomerName:       customerName,
		StartTime:          now,
		IsActive:           true,
		IsMembershipBacked: membershipBacked,
		CreatedOn:          now,
		UpdatedOn:          now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, domain.PackageWarningNone, fmt.Errorf("create session: %w", err)
	}

	if err := s.consoleRepo.UpdateStatus(ctx, consoleID, domain.ConsoleStatusInUse); err != nil {
		logger.Error("Failed to mark console in use", "console_id", consoleID, "error", err)
	}

	logger.Info("Session opened",
		"session_id", session.ID, "console_id", consoleID,
		"member_id", memberID, "membership_backed", membershipBacked, "warning", warning)
	return session, warning, nil
}

func (s *rentalService) AddItem(ctx context.Context, sessionID, productID string) (*domain.RentalSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	unlock := s.consoleLocks.Lock(session.ConsoleID)
	defer unlock()

	// Re-read under the lock; a concurrent close may have won.
	session, err = s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, fmt.Errorf("session %s is closed: %w", sessionID, domain.ErrConflict)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Price and name are snapshotted at add time. Later catalog edits do
	// not reprice lines already in the cart.
	merged := false
	for i := range session.Items {
		it := &session.Items[i]
		if it.ProductID == product.ID && it.Price == product.Price {
			it.Quantity++
			merged = true
			break
		}
	}
	if !merged {
		session.Items = append(session.Items, domain.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    1,
			Price:       product.Price,
			Category:    product.Category,
		})
	}

	session.SubtotalItems = session.ItemsSubtotal()
	session.TotalPrice = session.SubtotalRental + session.SubtotalItems - session.DiscountAmount
	session.UpdatedOn = time.Now()

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("persist cart: %w", err)
	}
	return session, nil
}

// Tick refreshes the advisory running totals of an active session. The
// values it writes are estimates for display; CloseSession recomputes
// everything authoritatively.
func (s *rentalService) Tick(ctx context.Context, sessionID string, now time.Time) (*domain.RentalSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	unlock := s.consoleLocks.Lock(session.ConsoleID)
	defer unlock()

	// Re-read under the lock so a tick racing a close never writes a
	// stale view over the frozen record.
	session, err = s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return session, nil
	}

	console, err := s.consoleRepo.GetByID(ctx, session.ConsoleID)
	if err != nil {
		return nil, err
	}

	if session.IsMembershipBacked {
		session.SubtotalRental = 0
	} else {
		session.SubtotalRental = s.computeRentalFee(console.Type, session.StartTime, now)
	}
	session.SubtotalItems = session.ItemsSubtotal()
	session.TotalPrice = session.SubtotalRental + session.SubtotalItems - session.DiscountAmount
	session.UpdatedOn = now

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("persist running totals: %w", err)
	}
	return session, nil
}

func (s *rentalService) CloseSession(ctx context.Context, sessionID, staffID string, now time.Time, feeOverride *int32) (*domain.RentalSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Lock ordering is always console then member.
	unlockConsole := s.consoleLocks.Lock(session.ConsoleID)
	defer unlockConsole()

	// Re-read under the lock; a concurrent close may have won.
	session, err = s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, fmt.Errorf("session %s already closed: %w", sessionID, domain.ErrConflict)
	}

	console, err := s.consoleRepo.GetByID(ctx, session.ConsoleID)
	if err != nil {
		return nil, err
	}

	var member *domain.Member
	var memberSnapshot *domain.Member
	if session.MemberID != "" {
		unlockMember := s.memberLocks.Lock(session.MemberID)
		defer unlockMember()
		member, err = s.memberRepo.GetByID(ctx, session.MemberID)
		if err != nil {
			return nil, err
		}
		snap := *member
		snap.Packages = append([]domain.MemberPackage(nil), member.Packages...)
		memberSnapshot = &snap
	}

	end := now
	if end.Before(session.StartTime) {
		end = session.StartTime
	}

	var rentalFee int32
	if session.IsMembershipBacked {
		rentalFee = 0
	} else {
		rentalFee = s.computeRentalFee(console.Type, session.StartTime, end)
	}
	if feeOverride != nil {
		override := *feeOverride
		if override < 0 {
			override = 0
		}
		if override != rentalFee {
			logger.AuditFeeOverride(session.ID, staffID, rentalFee, override)
		}
		rentalFee = override
	}

	discount := int32(0)
	if member != nil && session.IsMembershipBacked {
		elapsed := utils.ElapsedMinutes(session.StartTime, end)
		compID := s.complimentaryProductID(ctx)
		outcome := s.membership.ApplySettlement(member, console.Type, elapsed, session.Items, compID, now)
		discount = outcome.DiscountAmount
		logger.Info("Package settlement applied",
			"session_id", session.ID, "package_id", outcome.PackageID,
			"minutes_deducted", outcome.MinutesDeducted, "free_units", outcome.FreeUnits,
			"discount", outcome.DiscountAmount)
	}

	session.EndTime = &end
	session.IsActive = false
	session.SubtotalRental = rentalFee
	session.SubtotalItems = session.ItemsSubtotal()
	session.DiscountAmount = discount
	session.TotalPrice = session.SubtotalRental + session.SubtotalItems - session.DiscountAmount
	if session.TotalPrice < 0 {
		session.TotalPrice = 0
	}
	session.UpdatedOn = now

	if member != nil {
		member.TotalRentals++
		member.TotalSpend += session.TotalPrice
		member.UpdatedOn = now
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return nil, fmt.Errorf("persist member settlement: %w", err)
		}
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		// The member write already landed. Restore the pre-settlement
		// snapshot so the close fails as a unit.
		if memberSnapshot != nil {
			if rbErr := s.memberRepo.Update(ctx, memberSnapshot); rbErr != nil {
				logger.Error("Settlement rollback failed",
					"session_id", session.ID, "member_id", memberSnapshot.ID, "error", rbErr)
			}
		}
		return nil, fmt.Errorf("persist closed session: %w", err)
	}

	if err := s.consoleRepo.UpdateStatus(ctx, session.ConsoleID, domain.ConsoleStatusAvailable); err != nil {
		logger.Error("Failed to release console", "console_id", session.ConsoleID, "error", err)
	}

	logger.Info("Session closed",
		"session_id", session.ID, "console_id", session.ConsoleID,
		"total", session.TotalPrice, "rental", session.SubtotalRental,
		"items", session.SubtotalItems, "discount", session.DiscountAmount)
	return session, nil
}

func (s *rentalService) GetSession(ctx context.Context, sessionID string) (*domain.RentalSession, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *rentalService) ListActiveSessions(ctx context.Context) ([]domain.RentalSession, error) {
	return s.sessionRepo.ListActive(ctx)
}

func (s *rentalService) computeRentalFee(consoleType domain.ConsoleType, start, end time.Time) int32 {
	return utils.CalculateDynamicCost(consoleType, start, end, s.pricing.Rates(), s.quantumMinutes)
}

func (s *rentalService) complimentaryProductID(ctx context.Context) string {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to load products for settlement", "error", err)
		return ""
	}
	for _, p := range products {
		if p.Complimentary {
			return p.ID
		}
	}
	return ""
}
