package repository

import (
	"math"
	"testing"

	"medical-api/internal/domain/entity"
	"medical-api/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doctorReportColumns = []string{"id", "last_name", "first_name", "middle_name", "room", "specialization", "area"}

func TestDoctorReportSortsByLastNameDescending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`SELECT doctors.id, .* FROM "doctors" LEFT JOIN specializations ON specializations.id = doctors.specialization_id ` +
		`ORDER BY "doctors"."last_name" DESC,"doctors"."id" DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows(doctorReportColumns).
			AddRow(3, "Сидорова", "Елена", "Ивановна", 13, "Травматолог", 300).
			AddRow(6, "Смирнов", "Алексей", "Дмитриевич", 11, "Хирург", 100).
			AddRow(2, "Петров", "Дмитрий", "Сергеевич", 12, "Хирург", 200))

	page, err := repo.GetReport(db, "LastName", pagination.Descending, pagination.Params{Page: 1, PageSize: 3})
	require.NoError(t, err)

	assert.EqualValues(t, 10, page.TotalCount)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.PageSize)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Сидорова", page.Items[0].LastName)
	assert.Equal(t, "Травматолог", page.Items[0].Specialization)
	assert.True(t, page.HasNextPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorReportUnknownColumnSortsByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ORDER BY "doctors"."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows(doctorReportColumns).
			AddRow(1, "Иванов", "Игорь", "Александрович", 10, "Терапевт", 100).
			AddRow(10, "Павлов", "Илья", "Геннадьевич", 15, "Терапевт", nil))

	page, err := repo.GetReport(db, "salary", pagination.Ascending, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Nil(t, page.Items[1].Area)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorReportSortsBySpecializationTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDoctorReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY "specializations"."title","doctors"."id" LIMIT`).
		WillReturnRows(sqlmock.NewRows(doctorReportColumns).AddRow(5, "Николаева", "Ольга", "Алексеевна", 15, "Дерматолог", 500))

	_, err := repo.GetReport(db, "SPECIALIZATION", pagination.Ascending, pagination.Params{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportBeyondLastPageSkipsRowQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	page, err := repo.GetReport(db, "", pagination.Ascending, pagination.Params{Page: 3, PageSize: 5})
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 10, page.TotalCount)
	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPreviousPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportHugePageIsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	page := math.MaxInt64/10 + 2
	pageSize := 10
	list, err := repo.GetReport(db, "", pagination.Ascending, pagination.New(&page, &pageSize))
	require.NoError(t, err)

	assert.Empty(t, list.Items)
	assert.Equal(t, page, list.Page)
	assert.EqualValues(t, 10, list.TotalCount)
	assert.False(t, list.HasNextPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientReportAppliesOffset(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPatientReportRepository()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))
	mock.ExpectQuery(`FROM "patients" ORDER BY "patients"."birth_date","patients"."id" LIMIT .* OFFSET`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "last_name", "first_name", "middle_name", "address", "birth_date", "sex", "area"}).
			AddRow(6, "Смирнова", "Анна", "Андреевна", "ул. Достоевского, д. 30", "1984-06-06", "female", 100))

	page, err := repo.GetReport(db, "birthdate", pagination.Ascending, pagination.Params{Page: 2, PageSize: 4})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.SexFemale, page.Items[0].Sex)
	assert.Equal(t, "1984-06-06", page.Items[0].BirthDate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountDoesNotDependOnSortColumn(t *testing.T) {
	for _, column := range []string{"id", "lastname", "sex", "area", "nonsense"} {
		db, mock := newMockDB(t)
		repo := NewPatientReportRepository()

		mock.ExpectQuery(`^SELECT count\(\*\) FROM "patients"$`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		page, err := repo.GetReport(db, column, pagination.Descending, pagination.Params{Page: 1, PageSize: 10})
		require.NoError(t, err, column)
		assert.True(t, page.Empty(), column)
		assert.NoError(t, mock.ExpectationsWereMet(), column)
	}
}

func TestSortKeysCoverEveryColumn(t *testing.T) {
	doctorKeys := map[string]bool{}
	for _, name := range []string{"id", "firstname", "lastname", "middlename", "room", "specialization", "area"} {
		column, ok := entity.ParseDoctorColumn(name)
		require.True(t, ok, name)
		key := doctorSortKey(column)
		assert.False(t, doctorKeys[key.Table+"."+key.Name], "duplicate key for %s", name)
		doctorKeys[key.Table+"."+key.Name] = true
	}

	patientKeys := map[string]bool{}
	for _, name := range []string{"id", "firstname", "lastname", "middlename", "address", "birthdate", "area", "sex"} {
		column, ok := entity.ParsePatientColumn(name)
		require.True(t, ok, name)
		key := patientSortKey(column)
		assert.False(t, patientKeys[key.Name], "duplicate key for %s", name)
		patientKeys[key.Name] = true
	}
}
