package followup

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Agent) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindAll() ([]Agent, error) {
	var list []Agent
	err := r.DB.Order("name asc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Agent, error) {
	var a Agent
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Exists reports whether any agent already uses the national id or
// commercial register. Empty values are not checked.
func (r *Repository) Exists(nationalID, commercialRegister string) (bool, error) {
	q := r.DB.Model(&Agent{})
	switch {
	case nationalID != "" && commercialRegister != "":
		q = q.Where("national_id = ? OR commercial_register = ?", nationalID, commercialRegister)
	case nationalID != "":
		q = q.Where("national_id = ?", nationalID)
	case commercialRegister != "":
		q = q.Where("commercial_register = ?", commercialRegister)
	default:
		return false, nil
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Update(a *Agent) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Agent{}, id).Error
}

// StatsFor counts the agent's tasks by completion state.
func (r *Repository) StatsFor(agentID uint) (*Stats, error) {
	s := &Stats{AgentID: agentID}
	tasks := func() *gorm.DB {
		return r.DB.Table("tasks").Where("agent_id = ? AND deleted_at IS NULL", agentID)
	}
	if err := tasks().Count(&s.TotalTasks).Error; err != nil {
		return nil, err
	}
	if err := tasks().Where("status = ?", "Completed").Count(&s.CompletedTasks).Error; err != nil {
		return nil, err
	}
	s.ActiveTasks = s.TotalTasks - s.CompletedTasks
	return s, nil
}
