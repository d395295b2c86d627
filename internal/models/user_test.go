package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAddUserRequiresRole() {
	_, _, err := models.AddUser(models.DB, "anna@example.com", models.UserRole{})
	suite.Assert().ErrorIs(err, models.ErrUserAddRequiresRole)

	_, _, err = models.AddUser(models.DB, "anna@example.com", models.UserRole{ProjectID: uuid.New(), SubprojectID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrUserProjectAndSubprojectGiven)
}

func (suite *TestSuiteStandard) TestAddUserAdmin() {
	user, created, err := models.AddUser(models.DB, " Anna@Example.com ", models.UserRole{Admin: true})
	suite.Require().Nil(err)
	suite.Assert().True(created)
	suite.Assert().True(user.Admin)
	suite.Assert().Equal("anna@example.com", user.Email)

	again, created, err := models.AddUser(models.DB, "anna@example.com", models.UserRole{Admin: true})
	suite.Require().Nil(err)
	suite.Assert().False(created)
	suite.Assert().Equal(user.ID, again.ID)
}

func (suite *TestSuiteStandard) TestAddUserInvalidEmail() {
	tests := []string{
		"",
		"geen e-mailadres",
		"Anna <anna@example.com>",
		"anna@",
		"anna@example.com, bert@example.com",
	}

	for _, email := range tests {
		suite.T().Run(email, func(t *testing.T) {
			_, _, err := models.AddUser(models.DB, email, models.UserRole{Admin: true})
			assert.ErrorIs(t, err, models.ErrUserEmailInvalid)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.User{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestAddUserProjectOwner() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})
	subproject := suite.createTestSubproject(models.Subproject{ProjectID: other.ID})

	user, _, err := models.AddUser(models.DB, "bert@example.com", models.UserRole{ProjectID: project.ID})
	suite.Require().Nil(err)

	_, _, err = models.AddUser(models.DB, "bert@example.com", models.UserRole{ProjectID: project.ID})
	suite.Assert().ErrorIs(err, models.ErrUserAlreadyOwner)
	suite.Assert().ErrorIs(err, models.ErrDuplicate)

	ok, err := user.CanEditProject(models.DB, project.ID)
	suite.Require().Nil(err)
	suite.Assert().True(ok)

	ok, _ = user.CanEditProject(models.DB, other.ID)
	suite.Assert().False(ok)

	ok, _ = user.CanEditSubproject(models.DB, subproject)
	suite.Assert().False(ok)

	_, _, err = models.AddUser(models.DB, "bert@example.com", models.UserRole{SubprojectID: subproject.ID})
	suite.Require().Nil(err)

	ok, _ = user.CanEditSubproject(models.DB, subproject)
	suite.Assert().True(ok)

	ok, _ = user.CanEditProject(models.DB, other.ID)
	suite.Assert().False(ok, "subproject owners do not own the project")
}

func (suite *TestSuiteStandard) TestAddUserUnknownProject() {
	_, _, err := models.AddUser(models.DB, "carla@example.com", models.UserRole{ProjectID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	models.DB.Model(&models.User{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "user creation must be rolled back")
}

func (suite *TestSuiteStandard) TestAdminCanEditEverything() {
	project := suite.createTestProject(models.Project{})
	subproject := suite.createTestSubproject(models.Subproject{ProjectID: project.ID})
	admin := models.User{Admin: true}

	ok, _ := admin.CanEditProject(models.DB, project.ID)
	suite.Assert().True(ok)

	ok, _ = admin.CanEditSubproject(models.DB, subproject)
	suite.Assert().True(ok)
}
