package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subproject is an activity ("initiative") within a project.
type Subproject struct {
	DefaultModel
	ProjectID           uuid.UUID  `json:"projectId" gorm:"uniqueIndex:subproject_project_name" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Project             Project    `json:"-"`
	Name                string     `json:"name" gorm:"uniqueIndex:subproject_project_name" example:"Zaden en gereedschap"`
	Description         string     `json:"description"`
	Budget              *int64     `json:"budget" example:"2500"` // Whole euros
	Finished            bool       `json:"finished" default:"false"`
	FinishedDescription string     `json:"finishedDescription"`
	Funders             []Funder   `json:"-" gorm:"many2many:funder_subprojects"`
	Users               []User     `json:"-" gorm:"many2many:subproject_users"`
	Categories          []Category `json:"-"`
}

func (s *Subproject) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	s.FinishedDescription = strings.TrimSpace(s.FinishedDescription)

	return nil
}

// BeforeUpdate rejects reopening a finished subproject. The receiver holds
// the values before the update.
func (s *Subproject) BeforeUpdate(tx *gorm.DB) error {
	if s.Finished && tx.Statement.Changed("Finished") {
		return ErrSubprojectUnfinish
	}

	return nil
}

func (s *Subproject) AfterSave(_ *gorm.DB) error {
	if s.Budget != nil && *s.Budget < 0 {
		return ErrBudgetNegative
	}

	if s.Finished && s.FinishedDescription == "" {
		return ErrFinishedDescriptionRequired
	}

	return nil
}

// BudgetValue returns the budget, 0 if none is set.
func (s Subproject) BudgetValue() int64 {
	if s.Budget == nil {
		return 0
	}
	return *s.Budget
}

// Finish marks the subproject as finished with the closing description.
func (s *Subproject) Finish(db *gorm.DB, description string) error {
	if s.Finished {
		return ErrSubprojectAlreadyFinished
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return ErrFinishedDescriptionRequired
	}

	return db.Model(s).Updates(map[string]any{
		"finished":             true,
		"finished_description": description,
	}).Error
}
