package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	name := "Ramos"

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(1, name)

		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(name).
			WillReturnRows(rows)

		res, err := repo.AddCategory(context.Background(), name)
		assert.NoError(t, err)
		assert.Equal(t, 1, res.ID)
		assert.Equal(t, name, res.Name)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(name).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.AddCategory(context.Background(), name)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").WillReturnError(errors.New("db error"))
		_, err := repo.AddCategory(context.Background(), name)
		assert.Error(t, err)
	})
}

func TestRepository_GetCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success_OrderedByName", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name"}).
			AddRow(4, "Accesorios").
			AddRow(1, "Ramos")

		mock.ExpectQuery("SELECT id, name FROM categories ORDER BY name ASC").
			WillReturnRows(rows)

		res, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "Accesorios", res[0].Name)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM categories").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		res, err := repo.GetCategories(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestRepository_GetCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM categories WHERE").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Plantas"))

		res, err := repo.GetCategory(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, "Plantas", res.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name FROM categories WHERE").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := repo.GetCategory(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_DeleteCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteCategory(context.Background(), 1))
	})

	t.Run("InUse", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(1).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteCategory(context.Background(), 1)
		assert.ErrorIs(t, err, ErrInUse)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteCategory(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
