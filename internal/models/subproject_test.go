package models_test

import (
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSubprojectNameUniqueWithinProject() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})

	_ = suite.createTestSubproject(models.Subproject{ProjectID: project.ID, Name: "Zaden"})

	err := models.DB.Create(&models.Subproject{ProjectID: project.ID, Name: "Zaden"}).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicate)
	suite.Assert().ErrorIs(err, models.ErrSubprojectNameNotUnique)

	err = models.DB.Create(&models.Subproject{ProjectID: other.ID, Name: "Zaden"}).Error
	suite.Assert().Nil(err, "the same name in another project is fine")
}

func (suite *TestSuiteStandard) TestSubprojectBudgetNegative() {
	project := suite.createTestProject(models.Project{})

	err := models.DB.Create(&models.Subproject{ProjectID: project.ID, Name: "Negative", Budget: ptr(int64(-5))}).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNegative)
}

func (suite *TestSuiteStandard) TestSubprojectFinish() {
	project := suite.createTestProject(models.Project{})
	subproject := suite.createTestSubproject(models.Subproject{ProjectID: project.ID})

	err := subproject.Finish(models.DB, "   ")
	suite.Assert().ErrorIs(err, models.ErrFinishedDescriptionRequired)

	err = subproject.Finish(models.DB, "Alle zaden zijn geplant")
	suite.Require().Nil(err)

	var reloaded models.Subproject
	suite.Require().Nil(models.DB.First(&reloaded, subproject.ID).Error)
	suite.Assert().True(reloaded.Finished)
	suite.Assert().Equal("Alle zaden zijn geplant", reloaded.FinishedDescription)

	err = reloaded.Finish(models.DB, "Nog een keer")
	suite.Assert().ErrorIs(err, models.ErrSubprojectAlreadyFinished)
}

func (suite *TestSuiteStandard) TestSubprojectCannotBeUnfinished() {
	project := suite.createTestProject(models.Project{})
	subproject := suite.createTestSubproject(models.Subproject{ProjectID: project.ID})
	suite.Require().Nil(subproject.Finish(models.DB, "Klaar"))

	err := models.DB.Model(&subproject).Update("finished", false).Error
	suite.Assert().ErrorIs(err, models.ErrSubprojectUnfinish)

	var reloaded models.Subproject
	suite.Require().Nil(models.DB.First(&reloaded, subproject.ID).Error)
	suite.Assert().True(reloaded.Finished)
}

func (suite *TestSuiteStandard) TestSubprojectFinishedRequiresDescription() {
	project := suite.createTestProject(models.Project{})

	err := models.DB.Create(&models.Subproject{ProjectID: project.ID, Name: "Direct klaar", Finished: true}).Error
	suite.Assert().ErrorIs(err, models.ErrFinishedDescriptionRequired)
}

func (suite *TestSuiteStandard) TestSubprojectUnknownProject() {
	err := models.DB.Create(&models.Subproject{ProjectID: uuid.New(), Name: "Wees"}).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}
