// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the connection directly; every call fails

	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestEmbeddedMigrations_SameVersionsForEveryDialect(t *testing.T) {
	versions := func(dir string) []string {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		return names
	}

	pg := versions("postgres")
	lite := versions("sqlite")

	require.NotEmpty(t, pg)
	assert.Equal(t, pg, lite)
}

func TestEmbeddedMigrations_CascadeAndRatingCheck(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		require.NoError(t, err)

		var all strings.Builder
		for _, e := range entries {
			body, err := fs.ReadFile(embedMigrations, dir+"/"+e.Name())
			require.NoError(t, err)
			all.Write(body)
		}

		schema := all.String()
		assert.Equal(t, 2, strings.Count(schema, "ON DELETE CASCADE"), dir)
		assert.Contains(t, schema, "CHECK (mood_rating BETWEEN 1 AND 5)", dir)
		assert.Contains(t, schema, "login", dir)
	}
}
