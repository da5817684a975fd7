package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestWorkloadFindByUserProject(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkloadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "project_id", "task_count", "estimated_hours", "updated_at"}).
		AddRow(7, 2, 3, 4, 20, now)

	mock.ExpectQuery("SELECT \\* FROM `workloads` WHERE user_id = \\? AND project_id = \\?").
		WillReturnRows(rows)

	workload, err := repo.FindByUserProject(2, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(7), workload.ID)
	require.Equal(t, 4, workload.TaskCount)
	require.Equal(t, 20, workload.EstimatedHours)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkloadFindByUserProjectNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkloadRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `workloads` WHERE user_id = \\? AND project_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserProject(2, 3)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkloadCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkloadRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `workloads`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	workload := &models.Workload{
		UserID:         2,
		ProjectID:      3,
		TaskCount:      1,
		EstimatedHours: 5,
	}
	require.NoError(t, repo.Create(workload))
	require.Equal(t, uint64(1), workload.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkloadUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWorkloadRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `workloads`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	workload := &models.Workload{
		ID:             7,
		UserID:         2,
		ProjectID:      3,
		TaskCount:      2,
		EstimatedHours: 10,
	}
	require.NoError(t, repo.Update(workload))

	require.NoError(t, mock.ExpectationsWereMet())
}
