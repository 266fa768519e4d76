package database

import (
	"testing"

	"github.com/canaryscope/canaryscope/pkg/database"
	"github.com/canaryscope/canaryscope/test/util"
)

// NewTestClient creates a test database client. SQLite by default;
// PostgreSQL when CI_DATABASE_URL or CANARYSCOPE_PG_TESTS is set (see
// test/util). Cleanup runs automatically when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
