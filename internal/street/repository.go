package street

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Filter narrows street listings. Empty fields match everything.
type Filter struct {
	Sector   string
	District string
	Type     string
	Status   string
}

func (r *Repository) Create(s *Street) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Find(f Filter) ([]Street, error) {
	q := r.DB.Order("code asc")
	if f.Sector != "" {
		q = q.Where("sector = ?", f.Sector)
	}
	if f.District != "" {
		q = q.Where("district = ?", f.District)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var list []Street
	err := q.Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Street, error) {
	var s Street
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Update(s *Street) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Street{}, id).Error
}
