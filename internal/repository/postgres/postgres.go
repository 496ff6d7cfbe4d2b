package postgres

import (
	"database/sql"

	"gamestation-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ConsoleRepository
	repository.MemberRepository
	repository.ProductRepository
	repository.SessionRepository
	repository.MembershipTransactionRepository
	repository.ExpenseRepository
	repository.StaffRepository
	repository.PricingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                              db,
		ConsoleRepository:               NewConsoleRepository(db),
		MemberRepository:                NewMemberRepository(db),
		ProductRepository:               NewProductRepository(db),
		SessionRepository:               NewSessionRepository(db),
		MembershipTransactionRepository: NewMembershipTransactionRepository(db),
		ExpenseRepository:               NewExpenseRepository(db),
		StaffRepository:                 NewStaffRepository(db),
		PricingRepository:               NewPricingRepository(db),
	}
}
