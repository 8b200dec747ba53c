package roster_test

import (
	"testing"

	"github.com/personnel-roster/internal/domain"
	"github.com/personnel-roster/internal/roster"
	"github.com/personnel-roster/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(emps []domain.Employee) []string {
	out := make([]string, len(emps))
	for i, e := range emps {
		out[i] = e.Name
	}
	return out
}

func TestStore_AllPreservesOrderAndCopies(t *testing.T) {
	s := roster.NewStore(seed.Default())
	all := s.All()
	require.Len(t, all, 9)
	assert.Equal(t, []string{"Ramesh", "Suresh", "Anita", "Karthi", "Priya", "Deepa", "Vignesh", "Maya", "Arun"}, names(all))

	// Изменение копии не затрагивает хранилище
	*all[1].Manager = "Nobody"
	all[0].Name = "Changed"
	again := s.All()
	assert.Equal(t, "Ramesh", again[0].Name)
	assert.Equal(t, "Ramesh", *again[1].Manager)
}

func TestStore_FindByID(t *testing.T) {
	s := roster.NewStore(seed.Default())

	emp, err := s.FindByID("e004")
	require.NoError(t, err)
	assert.Equal(t, "Karthi", emp.Name)

	_, err = s.FindByID("E999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_FindByName_FirstMatchWins(t *testing.T) {
	s := roster.NewStore([]domain.Employee{
		{ID: "1", Name: "Sam", Department: "A"},
		{ID: "2", Name: "sam", Department: "B"},
	})

	emp, err := s.FindByName("SAM")
	require.NoError(t, err)
	assert.Equal(t, "1", emp.ID)

	_, err = s.FindByName("Alex")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DuplicateIDsAllowed(t *testing.T) {
	s := roster.NewStore([]domain.Employee{
		{ID: "X", Name: "First"},
		{ID: "x", Name: "Second"},
	})
	require.Equal(t, 2, s.Len())

	removed, _, err := s.Remove("X")
	require.NoError(t, err)
	assert.Equal(t, "First", removed.Name)
	assert.Equal(t, []string{"Second"}, names(s.All()))
}

func TestStore_Remove_ReparentsToRemovedManager(t *testing.T) {
	s := roster.NewStore(seed.Default())

	removed, reassigned, err := s.Remove("E002")
	require.NoError(t, err)
	assert.Equal(t, "Suresh", removed.Name)
	assert.Equal(t, 3, reassigned)
	assert.Equal(t, 8, s.Len())

	for _, name := range []string{"Karthi", "Priya", "Deepa"} {
		emp, err := s.FindByName(name)
		require.NoError(t, err)
		require.NotNil(t, emp.Manager)
		assert.Equal(t, "Ramesh", *emp.Manager, name)
	}

	// Подчинённые Karthi не затронуты
	maya, err := s.FindByName("Maya")
	require.NoError(t, err)
	assert.Equal(t, "Karthi", *maya.Manager)
}

func TestStore_Remove_RootMakesReportsRoots(t *testing.T) {
	s := roster.NewStore(seed.Default())

	_, reassigned, err := s.Remove("E001")
	require.NoError(t, err)
	assert.Equal(t, 3, reassigned)

	for _, name := range []string{"Suresh", "Anita", "Arun"} {
		emp, err := s.FindByName(name)
		require.NoError(t, err)
		assert.Nil(t, emp.Manager, name)
	}
}

func TestStore_Remove_ManagerMatchIsCaseInsensitive(t *testing.T) {
	s := roster.NewStore([]domain.Employee{
		{ID: "1", Name: "Boss"},
		{ID: "2", Name: "Mid", Manager: domain.StringPtr("Boss")},
		{ID: "3", Name: "Low", Manager: domain.StringPtr("MID")},
	})

	_, reassigned, err := s.Remove("2")
	require.NoError(t, err)
	assert.Equal(t, 1, reassigned)

	low, err := s.FindByName("Low")
	require.NoError(t, err)
	assert.Equal(t, "Boss", *low.Manager)
}

func TestStore_Remove_NotFoundLeavesStoreUnchanged(t *testing.T) {
	s := roster.NewStore(seed.Default())
	before := s.All()

	_, _, err := s.Remove("E404")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, before, s.All())
}

func TestStore_Remove_DuplicateNameReparentsEveryMatch(t *testing.T) {
	// Связь по имени: удаление одного из двух "Sam" переназначает подчинённых обоих
	s := roster.NewStore([]domain.Employee{
		{ID: "1", Name: "Root"},
		{ID: "2", Name: "Sam", Manager: domain.StringPtr("Root")},
		{ID: "3", Name: "Sam"},
		{ID: "4", Name: "Kid", Manager: domain.StringPtr("Sam")},
	})

	_, reassigned, err := s.Remove("3")
	require.NoError(t, err)
	assert.Equal(t, 1, reassigned)

	kid, err := s.FindByName("Kid")
	require.NoError(t, err)
	assert.Nil(t, kid.Manager)
}
