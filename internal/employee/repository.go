package employee

import (
	"gorm.io/gorm"
)

// Repository encapsulates DB access for employees.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Employee) error {
	return r.DB.Create(e).Error
}

func (r *Repository) FindByID(id uint) (*Employee, error) {
	var e Employee
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) FindByEmail(email string) (*Employee, error) {
	var e Employee
	if err := r.DB.Where("email = ?", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Exists reports whether any employee uses the national id, email or phone.
func (r *Repository) Exists(nationalID, email, phone string) (bool, error) {
	var count int64
	err := r.DB.Model(&Employee{}).
		Where("national_id = ? OR email = ? OR phone = ?", nationalID, email, phone).
		Count(&count).Error
	return count > 0, err
}

// FindAll lists employees newest first.
func (r *Repository) FindAll() ([]Employee, error) {
	var list []Employee
	err := r.DB.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(e *Employee) error {
	return r.DB.Save(e).Error
}

// Archive flips the employee to inactive instead of deleting the row:
// historical transactions and tasks keep pointing at a real record.
func (r *Repository) Archive(id uint) (*Employee, error) {
	e, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	e.Status = StatusInactive
	if err := r.DB.Model(e).Update("status", StatusInactive).Error; err != nil {
		return nil, err
	}
	return e, nil
}
