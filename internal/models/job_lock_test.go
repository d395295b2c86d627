package models_test

import (
	"time"

	"github.com/openpoen/backend/internal/models"
)

func (suite *TestSuiteStandard) TestJobLock() {
	now := time.Date(2023, 6, 1, 6, 0, 0, 0, time.UTC)

	ok, err := models.AcquireJobLock(models.DB, "ingest", "server", now, time.Hour)
	suite.Require().Nil(err)
	suite.Assert().True(ok)

	// Held by the server, the CLI does not get it
	ok, err = models.AcquireJobLock(models.DB, "ingest", "cli", now.Add(time.Minute), time.Hour)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	// Other jobs are independent
	ok, err = models.AcquireJobLock(models.DB, "refresh", "cli", now, time.Hour)
	suite.Require().Nil(err)
	suite.Assert().True(ok)

	// Releasing someone else's lease does nothing
	suite.Require().Nil(models.ReleaseJobLock(models.DB, "ingest", "cli"))
	ok, err = models.AcquireJobLock(models.DB, "ingest", "cli", now.Add(time.Minute), time.Hour)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	suite.Require().Nil(models.ReleaseJobLock(models.DB, "ingest", "server"))
	ok, err = models.AcquireJobLock(models.DB, "ingest", "cli", now.Add(time.Minute), time.Hour)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
}

// A lease of a crashed process expires.
func (suite *TestSuiteStandard) TestJobLockExpires() {
	now := time.Date(2023, 6, 1, 6, 0, 0, 0, time.UTC)

	ok, err := models.AcquireJobLock(models.DB, "ingest", "crashed", now, time.Hour)
	suite.Require().Nil(err)
	suite.Require().True(ok)

	ok, err = models.AcquireJobLock(models.DB, "ingest", "server", now.Add(59*time.Minute), time.Hour)
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	ok, err = models.AcquireJobLock(models.DB, "ingest", "server", now.Add(61*time.Minute), time.Hour)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
}
