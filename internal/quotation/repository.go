package quotation

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(q *Quotation) error {
	return r.DB.Create(q).Error
}

func (r *Repository) FindAll() ([]Quotation, error) {
	var list []Quotation
	err := r.DB.Preload("Client").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Quotation, error) {
	var q Quotation
	if err := r.DB.Preload("Client").First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) FindByClient(clientID uint) ([]Quotation, error) {
	var list []Quotation
	err := r.DB.Where("client_id = ?", clientID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(q *Quotation) error {
	return r.DB.Save(q).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Quotation{}, id).Error
}
