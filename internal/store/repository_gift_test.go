package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateGifts_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()
	userID := int64(42)
	inputs := []models.GiftInput{
		{PersonID: 1, Description: "wool socks"},
		{PersonID: 1, Description: "tea set"},
		{PersonID: 2, Description: "chess board"},
	}

	mock.ExpectBegin()
	// two distinct people referenced by the batch
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID, int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectPrepare("INSERT INTO gifts")
	for idx, input := range inputs {
		mock.ExpectQuery("INSERT INTO gifts").
			WithArgs(input.PersonID, input.Description).
			WillReturnRows(sqlmock.NewRows(giftColumns).
				AddRow(int64(idx+100), input.PersonID, input.Description, false, false, now))
	}
	mock.ExpectCommit()

	created, err := repo.CreateGifts(testContext(), userID, inputs)
	require.NoError(t, err)
	require.Len(t, created, 3)
	require.Equal(t, "tea set", created[1].Description)
	require.False(t, created[0].Purchased)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGifts_ForeignPersonRejectsBatch(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	userID := int64(42)
	inputs := []models.GiftInput{
		{PersonID: 1, Description: "wool socks"},
		{PersonID: 99, Description: "smuggled gift"},
	}

	mock.ExpectBegin()
	// only one of the two referenced people belongs to the user
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID, int64(1), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateGifts(testContext(), userID, inputs)
	require.ErrorIs(t, err, ErrPersonNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGifts_InsertErrorRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	userID := int64(42)
	inputs := []models.GiftInput{{PersonID: 1, Description: "wool socks"}}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectPrepare("INSERT INTO gifts")
	mock.ExpectQuery("INSERT INTO gifts").
		WithArgs(int64(1), "wool socks").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := repo.CreateGifts(testContext(), userID, inputs)
	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCreateGift_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()
	userID := int64(42)

	mock.ExpectQuery("INSERT INTO gifts").
		WithArgs(int64(1), "wool socks", userID).
		WillReturnRows(sqlmock.NewRows(giftColumns).
			AddRow(10, 1, "wool socks", false, false, now))

	gift, err := repo.CreateGift(testContext(), userID, models.GiftInput{PersonID: 1, Description: "wool socks"})
	require.NoError(t, err)
	require.Equal(t, int64(10), gift.GiftID)
	require.Equal(t, "wool socks", gift.Description)
}

func TestCreateGift_PersonNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	// ownership check inside the INSERT produced no row
	mock.ExpectQuery("INSERT INTO gifts").
		WithArgs(int64(99), "smuggled gift", int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.CreateGift(testContext(), 42, models.GiftInput{PersonID: 99, Description: "smuggled gift"})
	require.ErrorIs(t, err, ErrPersonNotFound)
}

func TestUpdateGiftDescription_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()

	mock.ExpectQuery("UPDATE gifts").
		WithArgs("cashmere scarf", int64(10), int64(1), int64(42)).
		WillReturnRows(sqlmock.NewRows(giftColumns).
			AddRow(10, 1, "cashmere scarf", true, false, now))

	gift, err := repo.UpdateGiftDescription(testContext(), 42, 1, 10, "cashmere scarf")
	require.NoError(t, err)
	require.Equal(t, "cashmere scarf", gift.Description)
	// status flags survive a description update
	require.True(t, gift.Purchased)
}

func TestUpdateGiftDescription_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery("UPDATE gifts").
		WithArgs("cashmere scarf", int64(10), int64(1), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateGiftDescription(testContext(), 42, 1, 10, "cashmere scarf")
	require.ErrorIs(t, err, ErrGiftNotFound)
}

func TestUpdateGiftDescription_GiftUnderDifferentPerson(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	// подарок 10 живёт под person 1, а запрос называет person 2: строка не
	// совпадает с условием person_id = $3 и UPDATE не возвращает ничего
	mock.ExpectQuery("UPDATE gifts").
		WithArgs("cashmere scarf", int64(10), int64(2), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateGiftDescription(testContext(), 42, 2, 10, "cashmere scarf")
	require.ErrorIs(t, err, ErrGiftNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGiftStatus_BothFlags(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()
	update := models.GiftStatusUpdate{
		GiftID:      10,
		Purchased:   boolPtr(true),
		GiftWrapped: boolPtr(true),
	}

	mock.ExpectQuery("UPDATE gifts").
		WithArgs(true, true, int64(10), int64(42)).
		WillReturnRows(sqlmock.NewRows(giftColumns).
			AddRow(10, 1, "wool socks", true, true, now))

	gift, err := repo.UpdateGiftStatus(testContext(), 42, update)
	require.NoError(t, err)
	require.True(t, gift.Purchased)
	require.True(t, gift.GiftWrapped)
}

func TestUpdateGiftStatus_SingleFlag(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()
	update := models.GiftStatusUpdate{
		GiftID:      10,
		GiftWrapped: boolPtr(true),
	}

	mock.ExpectQuery("UPDATE gifts").
		WithArgs(true, int64(10), int64(42)).
		WillReturnRows(sqlmock.NewRows(giftColumns).
			AddRow(10, 1, "wool socks", false, true, now))

	gift, err := repo.UpdateGiftStatus(testContext(), 42, update)
	require.NoError(t, err)
	// purchased flag untouched by a wrapped-only update
	require.False(t, gift.Purchased)
	require.True(t, gift.GiftWrapped)
}

func TestUpdateGiftStatus_UnmarkDone(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	now := time.Now()
	update := models.GiftStatusUpdate{
		GiftID:    10,
		Purchased: boolPtr(false),
	}

	mock.ExpectQuery("UPDATE gifts").
		WithArgs(false, int64(10), int64(42)).
		WillReturnRows(sqlmock.NewRows(giftColumns).
			AddRow(10, 1, "wool socks", false, true, now))

	gift, err := repo.UpdateGiftStatus(testContext(), 42, update)
	require.NoError(t, err)
	require.False(t, gift.Purchased)
}

func TestUpdateGiftStatus_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	update := models.GiftStatusUpdate{GiftID: 10, Purchased: boolPtr(true)}

	mock.ExpectQuery("UPDATE gifts").
		WithArgs(true, int64(10), int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateGiftStatus(testContext(), 42, update)
	require.ErrorIs(t, err, ErrGiftNotFound)
}

func TestUpdateGiftStatus_NoFlags(t *testing.T) {
	db, _ := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	// squirrel refuses an UPDATE without SET clauses
	_, err := repo.UpdateGiftStatus(testContext(), 42, models.GiftStatusUpdate{GiftID: 10})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestDeleteGift_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec("DELETE FROM gifts").
		WithArgs(int64(10), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteGift(testContext(), 42, 10)
	require.NoError(t, err)
}

func TestDeleteGift_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGiftRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec("DELETE FROM gifts").
		WithArgs(int64(10), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteGift(testContext(), 42, 10)
	require.ErrorIs(t, err, ErrGiftNotFound)
}

func Test_distinctPersonIDs(t *testing.T) {
	inputs := []models.GiftInput{
		{PersonID: 3, Description: "a"},
		{PersonID: 1, Description: "b"},
		{PersonID: 3, Description: "c"},
		{PersonID: 2, Description: "d"},
		{PersonID: 1, Description: "e"},
	}

	ids := distinctPersonIDs(inputs)
	require.Equal(t, []int64{3, 1, 2}, ids)
}
