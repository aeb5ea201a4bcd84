package document

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(d *Document) error {
	return r.DB.Create(d).Error
}

func (r *Repository) FindAll() ([]Document, error) {
	var list []Document
	err := r.DB.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Document, error) {
	var d Document
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) FindByClient(clientID uint) ([]Document, error) {
	var list []Document
	err := r.DB.Where("client_id = ?", clientID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByTransaction(transactionID uint) ([]Document, error) {
	var list []Document
	err := r.DB.Where("transaction_id = ?", transactionID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(d *Document) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Document{}, id).Error
}
