package models

import (
	"strings"

	"gorm.io/gorm"
)

// Project is a public-benefit initiative that receives funding.
type Project struct {
	DefaultModel
	Name                string       `json:"name" gorm:"uniqueIndex" example:"Buurtmoestuin"`
	Description         string       `json:"description" example:"A vegetable garden for the neighbourhood"`
	Budget              int64        `json:"budget" example:"10000"` // Whole euros, 0 for no budget
	ContainsSubprojects bool         `json:"containsSubprojects" default:"true"`
	Hidden              bool         `json:"hidden" default:"false"`
	Subprojects         []Subproject `json:"-"`
	Funders             []Funder     `json:"-"`
	DebitCards          []DebitCard  `json:"-"`
	Categories          []Category   `json:"-"`
	Users               []User       `json:"-" gorm:"many2many:project_users"`
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	return nil
}

func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("ContainsSubprojects") {
		return ErrContainsSubprojectsImmutable
	}

	return nil
}

func (p *Project) AfterSave(_ *gorm.DB) error {
	if p.Budget < 0 {
		return ErrBudgetNegative
	}

	return nil
}
