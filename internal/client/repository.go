package client

import (
	"gorm.io/gorm"
)

// Repository encapsulates DB access for clients.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Client) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Client, error) {
	var c Client
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Search lists clients newest first, optionally filtered by a term matched
// against mobile, id number, code and the name blob.
func (r *Repository) Search(term string, limit int) ([]Client, error) {
	q := r.DB.Order("created_at desc")
	if term != "" {
		like := "%" + term + "%"
		q = q.Where(
			`mobile LIKE ? OR id_number LIKE ? OR code LIKE ?
			 OR name->>'ar' LIKE ? OR name->>'firstName' LIKE ? OR name->>'familyName' LIKE ?`,
			like, like, like, like, like, like,
		)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var list []Client
	err := q.Find(&list).Error
	return list, err
}

// SearchActive lists active clients ordered by code, capped, for dropdowns.
func (r *Repository) SearchActive(term string, limit int) ([]Client, error) {
	q := r.DB.Where("is_active = ?", true).Order("code asc").Limit(limit)
	if term != "" {
		like := "%" + term + "%"
		q = q.Where(
			`mobile LIKE ? OR id_number LIKE ? OR name->>'ar' LIKE ? OR name->>'firstName' LIKE ?`,
			like, like, like, like,
		)
	}
	var list []Client
	err := q.Find(&list).Error
	return list, err
}

func (r *Repository) Update(c *Client) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(c *Client) error {
	return r.DB.Delete(c).Error
}
