package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/christmas-gifter/internal/logger"
	"github.com/MKhiriev/christmas-gifter/internal/validators"
	"github.com/MKhiriev/christmas-gifter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.PersonRepository
// ─────────────────────────────────────────────

type mockPersonRepository struct {
	getPeopleWithGiftsFn func(ctx context.Context, userID int64) ([]models.Person, error)
	replaceAllFn         func(ctx context.Context, userID int64, names []string) ([]models.Person, error)
	appendFn             func(ctx context.Context, userID int64, name string) (models.Person, error)
	reorderFn            func(ctx context.Context, userID int64, personIDs []int64) error
	deleteFn             func(ctx context.Context, userID int64, personID int64) error
}

func (m *mockPersonRepository) GetPeopleWithGifts(ctx context.Context, userID int64) ([]models.Person, error) {
	if m.getPeopleWithGiftsFn != nil {
		return m.getPeopleWithGiftsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPersonRepository) ReplaceAll(ctx context.Context, userID int64, names []string) ([]models.Person, error) {
	if m.replaceAllFn != nil {
		return m.replaceAllFn(ctx, userID, names)
	}
	return nil, nil
}

func (m *mockPersonRepository) Append(ctx context.Context, userID int64, name string) (models.Person, error) {
	if m.appendFn != nil {
		return m.appendFn(ctx, userID, name)
	}
	return models.Person{}, nil
}

func (m *mockPersonRepository) Reorder(ctx context.Context, userID int64, personIDs []int64) error {
	if m.reorderFn != nil {
		return m.reorderFn(ctx, userID, personIDs)
	}
	return nil
}

func (m *mockPersonRepository) Delete(ctx context.Context, userID int64, personID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, personID)
	}
	return nil
}

func newValidatedPeopleService(repo *mockPersonRepository) PeopleService {
	return NewPeopleValidationService().Wrap(NewPeopleService(repo, logger.Nop()))
}

// ─────────────────────────────────────────────
// GetPeople
// ─────────────────────────────────────────────

func TestGetPeople_Delegates(t *testing.T) {
	repo := &mockPersonRepository{
		getPeopleWithGiftsFn: func(ctx context.Context, userID int64) ([]models.Person, error) {
			assert.Equal(t, int64(42), userID)
			return []models.Person{{PersonID: 1, Name: "Mom"}}, nil
		},
	}
	svc := newValidatedPeopleService(repo)

	people, err := svc.GetPeople(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, people, 1)
}

// ─────────────────────────────────────────────
// ReplacePeople
// ─────────────────────────────────────────────

func TestReplacePeople_TrimsNames(t *testing.T) {
	var gotNames []string

	repo := &mockPersonRepository{
		replaceAllFn: func(ctx context.Context, userID int64, names []string) ([]models.Person, error) {
			gotNames = names
			return []models.Person{}, nil
		},
	}
	svc := newValidatedPeopleService(repo)

	_, err := svc.ReplacePeople(context.Background(), 42, models.ReplacePeopleRequest{
		Names: []string{"  Mom ", "Dad\t"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Mom", "Dad"}, gotNames)
}

func TestReplacePeople_BlankNameRejectedBeforeRepository(t *testing.T) {
	repoCalled := false

	repo := &mockPersonRepository{
		replaceAllFn: func(ctx context.Context, userID int64, names []string) ([]models.Person, error) {
			repoCalled = true
			return nil, nil
		},
	}
	svc := newValidatedPeopleService(repo)

	_, err := svc.ReplacePeople(context.Background(), 42, models.ReplacePeopleRequest{
		Names: []string{"Mom", "   "},
	})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrEmptyName)
	assert.False(t, repoCalled, "repository must not be called for invalid input")
}

func TestReplacePeople_EmptyListRejected(t *testing.T) {
	repoCalled := false

	repo := &mockPersonRepository{
		replaceAllFn: func(ctx context.Context, userID int64, names []string) ([]models.Person, error) {
			repoCalled = true
			return nil, nil
		},
	}
	svc := newValidatedPeopleService(repo)

	_, err := svc.ReplacePeople(context.Background(), 42, models.ReplacePeopleRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrNoNamesProvided)
	assert.False(t, repoCalled, "an empty replace must never reach the repository")
}

// ─────────────────────────────────────────────
// AppendPerson
// ─────────────────────────────────────────────

func TestAppendPerson_Success(t *testing.T) {
	repo := &mockPersonRepository{
		appendFn: func(ctx context.Context, userID int64, name string) (models.Person, error) {
			assert.Equal(t, "Uncle Bob", name)
			return models.Person{PersonID: 5, Name: name, SortOrder: 3}, nil
		},
	}
	svc := newValidatedPeopleService(repo)

	person, err := svc.AppendPerson(context.Background(), 42, models.AppendPersonRequest{Name: " Uncle Bob "})
	require.NoError(t, err)
	assert.Equal(t, int64(5), person.PersonID)
}

func TestAppendPerson_EmptyName(t *testing.T) {
	svc := newValidatedPeopleService(&mockPersonRepository{})

	_, err := svc.AppendPerson(context.Background(), 42, models.AppendPersonRequest{Name: " "})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ReorderPeople
// ─────────────────────────────────────────────

func TestReorderPeople_Delegates(t *testing.T) {
	repo := &mockPersonRepository{
		reorderFn: func(ctx context.Context, userID int64, personIDs []int64) error {
			assert.Equal(t, []int64{3, 1, 2}, personIDs)
			return nil
		},
	}
	svc := newValidatedPeopleService(repo)

	err := svc.ReorderPeople(context.Background(), 42, models.ReorderPeopleRequest{PersonIDs: []int64{3, 1, 2}})
	require.NoError(t, err)
}

func TestReorderPeople_DuplicatesRejected(t *testing.T) {
	svc := newValidatedPeopleService(&mockPersonRepository{})

	err := svc.ReorderPeople(context.Background(), 42, models.ReorderPeopleRequest{PersonIDs: []int64{1, 1}})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrDuplicatePersonIDs)
}

func TestReorderPeople_EmptyListRejected(t *testing.T) {
	svc := newValidatedPeopleService(&mockPersonRepository{})

	err := svc.ReorderPeople(context.Background(), 42, models.ReorderPeopleRequest{})
	require.ErrorIs(t, err, validators.ErrNoPersonIDsProvided)
}

// ─────────────────────────────────────────────
// DeletePerson
// ─────────────────────────────────────────────

func TestDeletePerson_Delegates(t *testing.T) {
	repo := &mockPersonRepository{
		deleteFn: func(ctx context.Context, userID int64, personID int64) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, int64(5), personID)
			return nil
		},
	}
	svc := newValidatedPeopleService(repo)

	require.NoError(t, svc.DeletePerson(context.Background(), 42, 5))
}

func TestDeletePerson_InvalidID(t *testing.T) {
	svc := newValidatedPeopleService(&mockPersonRepository{})

	err := svc.DeletePerson(context.Background(), 42, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrInvalidPersonID)
}
