package postgres

import (
	"context"
	"testing"

	"spendguard/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepo_Initialize(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectExec("INSERT INTO service_state").
		WithArgs("admin", "argon2-hash").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Initialize(context.Background(), "admin", "argon2-hash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_GetAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT admin_principal FROM service_state").
		WillReturnRows(pgxmock.NewRows([]string{"admin_principal"}).AddRow("admin"))

	admin, err := repo.GetAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", admin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_GetAdmin_Uninitialized(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT admin_principal FROM service_state").
		WillReturnRows(pgxmock.NewRows([]string{"admin_principal"}))

	admin, err := repo.GetAdmin(context.Background())
	require.NoError(t, err)
	assert.Empty(t, admin, "missing state row means not initialized")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SetAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectExec("UPDATE service_state SET admin_principal").
		WithArgs("new-admin").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SetAdmin(context.Background(), "new-admin")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SetAdmin_NoRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectExec("UPDATE service_state SET admin_principal").
		WithArgs("new-admin").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SetAdmin(context.Background(), "new-admin")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "state row not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_GetBatchStateForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM service_state WHERE id = 1 FOR UPDATE").
		WillReturnRows(pgxmock.NewRows(
			[]string{"last_batch_id", "total_limits_updated", "total_batches_processed"},
		).AddRow(uint64(7), uint64(120), uint64(9)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	s, err := repo.GetBatchStateForUpdate(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.LastBatchID)
	assert.Equal(t, uint64(120), s.TotalLimitsUpdated)
	assert.Equal(t, uint64(9), s.TotalBatchesProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_GetBatchState_Uninitialized(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM service_state WHERE id = 1").
		WillReturnRows(pgxmock.NewRows(
			[]string{"last_batch_id", "total_limits_updated", "total_batches_processed"},
		))

	s, err := repo.GetBatchState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.BatchState{}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_PutBatchState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE service_state").
		WithArgs(uint64(8), uint64(135), uint64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.PutBatchState(context.Background(), tx, &domain.BatchState{
		LastBatchID:           8,
		TotalLimitsUpdated:    135,
		TotalBatchesProcessed: 10,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
