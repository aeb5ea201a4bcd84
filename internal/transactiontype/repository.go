package transactiontype

import (
	"gorm.io/gorm"
)

// Repository encapsulates DB access for transaction types.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(t *TransactionType) error {
	return r.DB.Create(t).Error
}

func (r *Repository) FindByID(id uint) (*TransactionType, error) {
	var t TransactionType
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll returns every type ordered by code.
func (r *Repository) FindAll() ([]TransactionType, error) {
	var list []TransactionType
	err := r.DB.Order("code asc").Find(&list).Error
	return list, err
}

// FindActive returns active types ordered by name, for dropdowns.
func (r *Repository) FindActive() ([]TransactionType, error) {
	var list []TransactionType
	err := r.DB.Where("is_active = ?", true).Order("name asc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(t *TransactionType) error {
	return r.DB.Save(t).Error
}

func (r *Repository) Delete(t *TransactionType) error {
	return r.DB.Delete(t).Error
}

// InUse reports whether any transaction references the type.
func (r *Repository) InUse(id uint) (bool, error) {
	var count int64
	err := r.DB.Table("transactions").
		Where("transaction_type_id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}
