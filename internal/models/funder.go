package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Funder awards a budget to a project. Once the funder is justified, it
// can not be changed any more.
type Funder struct {
	DefaultModel
	ProjectID        uuid.UUID    `json:"projectId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"`
	Project          Project      `json:"-"`
	Name             string       `json:"name" example:"Gemeente Amsterdam"`
	SubsidyReference string       `json:"subsidyReference" example:"SUB-2023-0042"`
	URL              string       `json:"url" example:"https://www.amsterdam.nl"`
	AwardedBudget    int64        `json:"awardedBudget" example:"15000"` // Whole euros
	Justified        bool         `json:"justified" default:"false"`
	Subprojects      []Subproject `json:"-" gorm:"many2many:funder_subprojects"`
}

func (f *Funder) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.SubsidyReference = strings.TrimSpace(f.SubsidyReference)
	f.URL = strings.TrimSpace(f.URL)

	return nil
}

// BeforeUpdate freezes justified funders. The receiver holds the values
// before the update.
func (f *Funder) BeforeUpdate(_ *gorm.DB) error {
	if f.Justified {
		return ErrFunderJustified
	}

	return nil
}

func (f *Funder) BeforeDelete(_ *gorm.DB) error {
	if f.Justified {
		return ErrFunderJustified
	}

	return nil
}

func (f *Funder) AfterSave(_ *gorm.DB) error {
	if f.AwardedBudget < 0 {
		return ErrBudgetNegative
	}

	return nil
}

// CanBeJustified reports if all conditions for justification hold: at
// least one subproject is attached, all of them are finished and the funder
// is not justified yet.
func (f Funder) CanBeJustified(db *gorm.DB) (bool, error) {
	if f.Justified {
		return false, nil
	}

	var subprojects []Subproject
	err := db.Model(&f).Association("Subprojects").Find(&subprojects)
	if err != nil {
		return false, err
	}

	if len(subprojects) == 0 {
		return false, nil
	}

	for _, s := range subprojects {
		if !s.Finished {
			return false, nil
		}
	}

	return true, nil
}

// Justify marks the funder as justified.
func (f *Funder) Justify(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		ok, err := f.CanBeJustified(tx)
		if err != nil {
			return err
		}

		if !ok {
			return ErrFunderNotJustifiable
		}

		return tx.Model(f).Omit(clause.Associations).Update("justified", true).Error
	})
}

// AttachSubproject adds the subproject to the subprojects this funder
// finances. The subproject must belong to the funder's project.
func (f *Funder) AttachSubproject(db *gorm.DB, subproject Subproject) error {
	if f.Justified {
		return ErrFunderJustified
	}

	if subproject.ProjectID != f.ProjectID {
		return ErrFunderProjectMismatch
	}

	return db.Model(f).Omit("Subprojects.*").Association("Subprojects").Append(&subproject)
}

// DetachSubproject removes the subproject from this funder.
func (f *Funder) DetachSubproject(db *gorm.DB, subproject Subproject) error {
	if f.Justified {
		return ErrFunderJustified
	}

	return db.Model(f).Association("Subprojects").Delete(&subproject)
}
