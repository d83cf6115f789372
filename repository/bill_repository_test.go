package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBillRepository_DeleteBill_CascadesDependents(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Assignments, items, participants, and payments all go in the same
	// transaction as the bill row itself.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bill_item_assignments").
		WithArgs("bill-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM bill_items").
		WithArgs("bill-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM bill_participants").
		WithArgs("bill-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM payments").
		WithArgs("bill-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM bills").
		WithArgs("bill-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewBillRepository(db)

	assert.NoError(t, repo.DeleteBill("bill-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBillRepository_DeleteBill_AbsentBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bill_item_assignments").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bill_items").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bill_participants").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM payments").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM bills").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewBillRepository(db)

	assert.ErrorIs(t, repo.DeleteBill("missing"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
