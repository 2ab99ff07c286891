//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	dbadapter "github.com/NanduBolleddu/Todofy-project/internal/adapter/db"
)

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	host := envOrDefault("POSTGRES_HOST", "127.0.0.1")
	port := envOrDefault("POSTGRES_PORT", "5432")
	user := envOrDefault("POSTGRES_USER", "postgres")
	password := envOrDefault("POSTGRES_PASSWORD", "postgres")
	database := envOrDefault("POSTGRES_TEST_DATABASE", "todofy_test")

	adminDB, err := sqlx.Connect("postgres", postgresDSN(user, password, host, port, "postgres"))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to postgres: %v", err)
	}
	s.adminDB = adminDB

	// CREATE DATABASE cannot run inside a transaction and has no IF NOT
	// EXISTS, so probe the catalog first.
	var exists bool
	s.Require().NoError(s.adminDB.Get(&exists, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", database))
	if !exists {
		_, err = s.adminDB.Exec(fmt.Sprintf(`CREATE DATABASE %q`, database))
		s.Require().NoError(err)
	}

	db, err := sqlx.Connect("postgres", postgresDSN(user, password, host, port, database))
	s.Require().NoError(err)
	s.DB = db
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS %q`, s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	_, err := s.DB.Exec("DROP TABLE IF EXISTS tasks")
	s.Require().NoError(err)
	s.Require().NoError(dbadapter.ApplyMigrations(s.DB))
}

func postgresDSN(user, password, host, port, database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, database)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
