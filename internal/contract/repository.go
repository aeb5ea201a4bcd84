package contract

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Contract) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindAll() ([]Contract, error) {
	var list []Contract
	err := r.DB.Preload("Client").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Contract, error) {
	var c Contract
	if err := r.DB.Preload("Client").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByClient(clientID uint) ([]Contract, error) {
	var list []Contract
	err := r.DB.Where("client_id = ?", clientID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(c *Contract) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Contract{}, id).Error
}
