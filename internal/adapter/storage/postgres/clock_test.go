package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerClock_Now(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	clock := NewLedgerClock(mock)

	mock.ExpectQuery("SELECT EXTRACT").
		WillReturnRows(pgxmock.NewRows([]string{"epoch", "nextval"}).
			AddRow(int64(1_700_000_000), uint64(42)))

	now, err := clock.Now(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), now.Unix)
	assert.Equal(t, uint64(42), now.Sequence)
	assert.Equal(t, int64(1_700_000_000/86400), now.DayID())
}
