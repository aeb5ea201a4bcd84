package permission

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Permission) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindAll() ([]Permission, error) {
	var list []Permission
	err := r.DB.Order("screen_id asc, level asc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Permission, error) {
	var p Permission
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByScreen(screenID string) ([]Permission, error) {
	var list []Permission
	err := r.DB.Where("screen_id = ?", screenID).Order("level asc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(p *Permission) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Permission{}, id).Error
}
