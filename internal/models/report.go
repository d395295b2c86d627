package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report is the justification report for a funder.
type Report struct {
	Funder      Funder             `json:"funder"`
	Project     Project            `json:"project"`
	Justifiable bool               `json:"justifiable"`
	Amounts     Amounts            `json:"amounts"`
	Subprojects []SubprojectReport `json:"subprojects"`
}

type SubprojectReport struct {
	Subproject Subproject       `json:"subproject"`
	Amounts    Amounts          `json:"amounts"`
	Categories []CategoryReport `json:"categories"`
}

// CategoryReport lists the payments of one category. Payments without a
// category are reported with a nil Category.
type CategoryReport struct {
	Category *Category       `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Payments []Payment       `json:"payments"`
}

// JustificationReport collects everything a funder needs for the
// justification: all subprojects it finances with their roll-ups and
// payments grouped by category.
func JustificationReport(db *gorm.DB, funderID uuid.UUID) (Report, error) {
	var r Report

	err := db.Preload("Project").Preload("Subprojects").First(&r.Funder, funderID).Error
	if err != nil {
		return Report{}, err
	}
	r.Project = r.Funder.Project

	r.Justifiable, err = r.Funder.CanBeJustified(db)
	if err != nil {
		return Report{}, err
	}

	var all []Payment
	for _, s := range r.Funder.Subprojects {
		var payments []Payment
		err := db.Scopes(SubprojectPayments(s)).Order("payments.booking_date ASC").Find(&payments).Error
		if err != nil {
			return Report{}, err
		}

		categories, err := groupByCategory(db, payments)
		if err != nil {
			return Report{}, err
		}

		r.Subprojects = append(r.Subprojects, SubprojectReport{
			Subproject: s,
			Amounts:    CalculateAmounts(payments, s.BudgetValue()),
			Categories: categories,
		})
		all = append(all, payments...)
	}

	r.Amounts = CalculateAmounts(all, r.Funder.AwardedBudget)
	return r, nil
}

// groupByCategory groups the payments by their category, keeping the order
// in which categories first appear.
func groupByCategory(db *gorm.DB, payments []Payment) ([]CategoryReport, error) {
	index := map[uuid.UUID]int{}
	reports := []CategoryReport{}

	for _, p := range payments {
		id := uuid.Nil
		if p.CategoryID != nil {
			id = *p.CategoryID
		}

		i, ok := index[id]
		if !ok {
			report := CategoryReport{Total: decimal.Zero}
			if id != uuid.Nil {
				var category Category
				if err := db.First(&category, id).Error; err != nil {
					return nil, err
				}
				report.Category = &category
			}

			i = len(reports)
			index[id] = i
			reports = append(reports, report)
		}

		reports[i].Total = reports[i].Total.Add(p.Amount)
		reports[i].Payments = append(reports[i].Payments, p)
	}

	return reports, nil
}
