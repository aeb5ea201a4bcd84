package task

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(t *Task) error {
	return r.DB.Create(t).Error
}

func (r *Repository) FindAll() ([]Task, error) {
	var list []Task
	err := r.DB.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Task, error) {
	var t Task
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindByAssignee(employeeID uint) ([]Task, error) {
	var list []Task
	err := r.DB.Where("assignee_id = ?", employeeID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByTransaction(transactionID uint) ([]Task, error) {
	var list []Task
	err := r.DB.Where("transaction_id = ?", transactionID).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(t *Task) error {
	return r.DB.Save(t).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Task{}, id).Error
}
