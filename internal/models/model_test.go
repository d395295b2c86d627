package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Amsterdam")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
			DeletedAt: &gorm.DeletedAt{Time: time.Now().In(tz)},
		},
	}

	suite.Require().Nil(model.AfterFind(models.DB))

	suite.Assert().Equal(time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.DeletedAt.Time.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelKeepsPresetID() {
	id := uuid.New()
	project := suite.createTestProject(models.Project{DefaultModel: models.DefaultModel{ID: id}})
	suite.Assert().Equal(id, project.ID)

	generated := suite.createTestProject(models.Project{})
	suite.Assert().NotEqual(uuid.Nil, generated.ID)
}
