package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups payments of a project or a subproject in reports.
type Category struct {
	DefaultModel
	ProjectID    *uuid.UUID  `json:"projectId" gorm:"uniqueIndex:category_project_name"`
	Project      *Project    `json:"-"`
	SubprojectID *uuid.UUID  `json:"subprojectId" gorm:"uniqueIndex:category_subproject_name"`
	Subproject   *Subproject `json:"-"`
	Name         string      `json:"name" gorm:"uniqueIndex:category_project_name;uniqueIndex:category_subproject_name" example:"Materiaal"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.ProjectID != nil && *c.ProjectID == uuid.Nil {
		c.ProjectID = nil
	}

	if c.SubprojectID != nil && *c.SubprojectID == uuid.Nil {
		c.SubprojectID = nil
	}

	return nil
}

// AfterSave verifies that the category belongs to exactly one of a project
// or a subproject.
func (c *Category) AfterSave(_ *gorm.DB) error {
	if (c.ProjectID == nil) == (c.SubprojectID == nil) {
		return ErrCategoryParent
	}

	return nil
}
