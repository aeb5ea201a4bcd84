package transaction

import (
	"strconv"

	"gorm.io/gorm"
)

// Repository encapsulates DB access for transactions.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(db *gorm.DB, t *Transaction) error {
	return db.Create(t).Error
}

// FindAll lists transactions newest first with the client summary preloaded.
func (r *Repository) FindAll() ([]Transaction, error) {
	var list []Transaction
	err := r.DB.
		Preload("Client").
		Preload("TransactionType").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

// FindByID loads one transaction with its relations.
func (r *Repository) FindByID(id uint) (*Transaction, error) {
	var t Transaction
	err := r.DB.
		Preload("Client").
		Preload("TransactionType").
		Preload("Staff").
		First(&t, id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByRef resolves a transaction by numeric id or business code, the two
// identifiers callers use interchangeably.
func (r *Repository) FindByRef(ref string) (*Transaction, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		var t Transaction
		if err := r.DB.First(&t, uint(id)).Error; err == nil {
			return &t, nil
		}
	}
	var t Transaction
	if err := r.DB.Where("code = ?", ref).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Update(db *gorm.DB, t *Transaction) error {
	return db.Save(t).Error
}

// DeleteCascade removes the transaction and everything hanging off it in one
// DB transaction.
func (r *Repository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tasks WHERE transaction_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM payments WHERE transaction_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("transaction_id = ?", id).Delete(&StaffAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Transaction{}, id).Error
	})
}

// ReplaceStaff swaps the full staff assignment set atomically.
func (r *Repository) ReplaceStaff(id uint, staff []StaffAssignment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&StaffAssignment{}).Error; err != nil {
			return err
		}
		for i := range staff {
			staff[i].ID = 0
			staff[i].TransactionID = id
		}
		if len(staff) == 0 {
			return nil
		}
		return tx.Create(&staff).Error
	})
}
