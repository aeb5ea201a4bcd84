package role

import (
	"github.com/injaz-systems/office-api/internal/permission"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(role *JobRole) error {
	return r.DB.Create(role).Error
}

func (r *Repository) FindAll() ([]JobRole, error) {
	var list []JobRole
	err := r.DB.Preload("Permissions").Order("level asc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*JobRole, error) {
	var role JobRole
	if err := r.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *Repository) Update(role *JobRole) error {
	return r.DB.Save(role).Error
}

// ReplacePermissions swaps the role's permission set for the given ids.
func (r *Repository) ReplacePermissions(role *JobRole, permissionIDs []uint) error {
	var perms []permission.Permission
	if len(permissionIDs) > 0 {
		if err := r.DB.Find(&perms, permissionIDs).Error; err != nil {
			return err
		}
	}
	return r.DB.Model(role).Association("Permissions").Replace(perms)
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&Assignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&JobRole{}, id).Error
	})
}

// Assign gives an employee a role, replacing any previous assignment.
func (r *Repository) Assign(employeeID, roleID uint, assignedBy string) (*Assignment, error) {
	a := &Assignment{EmployeeID: employeeID, RoleID: roleID, AssignedBy: assignedBy}
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", employeeID).Delete(&Assignment{}).Error; err != nil {
			return err
		}
		return tx.Create(a).Error
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// PermissionsForEmployee resolves the permission set granted through the
// employee's role assignment.
func (r *Repository) PermissionsForEmployee(employeeID uint) ([]permission.Permission, error) {
	var a Assignment
	err := r.DB.Where("employee_id = ?", employeeID).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	role, err := r.FindByID(a.RoleID)
	if err != nil {
		return nil, err
	}
	return permission.Effective(role.Permissions), nil
}
