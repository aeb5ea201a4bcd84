package payment

import (
	"gorm.io/gorm"
)

// Repository encapsulates DB access for payments.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(db *gorm.DB, p *Payment) error {
	return db.Create(p).Error
}

// FindCash lists cash payments newest first.
func (r *Repository) FindCash() ([]Payment, error) {
	var list []Payment
	err := r.DB.Where("method = ?", "Cash").Order("date desc").Find(&list).Error
	return list, err
}

// FindByTransaction lists a transaction's payments newest first.
func (r *Repository) FindByTransaction(transactionID uint) ([]Payment, error) {
	var list []Payment
	err := r.DB.Where("transaction_id = ?", transactionID).Order("date desc").Find(&list).Error
	return list, err
}
