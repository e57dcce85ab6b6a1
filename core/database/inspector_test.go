package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE catalog_items (item TEXT PRIMARY KEY, name TEXT NOT NULL, sort_order INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "catalog_items")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	byName := make(map[string]ColumnInfo)
	for _, col := range columns {
		byName[col.Field] = col
	}
	assert.Equal(t, "text", byName["item"].Type)
	assert.Equal(t, "PRI", byName["item"].Key)
	assert.Equal(t, "NO", byName["name"].Null)
	assert.Equal(t, "integer", byName["sort_order"].Type)

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("Item", "VARCHAR(255)", "NO", "PRI", nil, "").
		AddRow("name", "varchar(255)", "YES", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `catalog_items`")).WillReturnRows(rows)

	columns, err := GetTableColumns(db, "catalog_items")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "item", columns[0].Field)
	assert.Equal(t, "varchar(255)", columns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
