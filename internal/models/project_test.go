package models_test

import (
	"strings"

	"github.com/openpoen/backend/internal/models"
)

func (suite *TestSuiteStandard) TestProjectTrimWhitespace() {
	name := "  Buurtmoestuin \t"
	project := suite.createTestProject(models.Project{Name: name, Description: " Groente "})

	suite.Assert().Equal(strings.TrimSpace(name), project.Name)
	suite.Assert().Equal("Groente", project.Description)
}

func (suite *TestSuiteStandard) TestProjectNameUnique() {
	_ = suite.createTestProject(models.Project{Name: "Buurtmoestuin"})

	err := models.DB.Create(&models.Project{Name: "Buurtmoestuin"}).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicate)
	suite.Assert().ErrorIs(err, models.ErrProjectNameNotUnique)
}

func (suite *TestSuiteStandard) TestProjectBudgetNegative() {
	err := models.DB.Create(&models.Project{Name: "Negative", Budget: -1}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNegative)

	var count int64
	models.DB.Model(&models.Project{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "project with negative budget must not be persisted")
}

func (suite *TestSuiteStandard) TestProjectContainsSubprojectsImmutable() {
	project := suite.createTestProject(models.Project{ContainsSubprojects: true})

	err := models.DB.Model(&project).Update("contains_subprojects", false).Error
	suite.Assert().ErrorIs(err, models.ErrContainsSubprojectsImmutable)

	err = models.DB.Model(&project).Select("Name", "Budget").Updates(models.Project{Name: "Renamed", Budget: 500}).Error
	suite.Assert().Nil(err)

	var reloaded models.Project
	suite.Require().Nil(models.DB.First(&reloaded, project.ID).Error)
	suite.Assert().True(reloaded.ContainsSubprojects)
	suite.Assert().Equal("Renamed", reloaded.Name)
	suite.Assert().Equal(int64(500), reloaded.Budget)
}

func (suite *TestSuiteStandard) TestProjectNotFound() {
	var project models.Project
	err := models.DB.First(&project, "id = ?", "0f1dd0a6-2d63-4ac1-9aeb-a3a33d4b9a28").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "project matching your query")
}
