package product

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/store/gormstore"
)

func TestAddInsertsIntoProducts(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products" \("name","description","sku"\) VALUES \(\$1,\$2,\$3\) RETURNING "id"`).
		WithArgs("Keyboard", "RGB 60%", "KB-60").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	repo := NewStoreRepo(gormstore.New[entity.Product](db))
	got, err := repo.Add(context.Background(), keyboard())
	require.NoError(t, err)
	assert.Equal(t, 11, got.ID)
	assert.Equal(t, "KB-60", got.SKU)
	assert.NoError(t, mock.ExpectationsWereMet())
}
