package sequence

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestNextFormatsFirstCodeOfPrefix(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO code_sequences")).
		WithArgs("TR-2025-").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))

	code, err := Next(db, "TR-2025-", TransactionWidth)
	require.NoError(t, err)
	assert.Equal(t, "TR-2025-000001", code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextContinuesExistingSequence(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO code_sequences")).
		WithArgs("TR-2025-").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(3))

	code, err := Next(db, "TR-2025-", TransactionWidth)
	require.NoError(t, err)
	assert.Equal(t, "TR-2025-000003", code)
}

func TestNextPropagatesDBError(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO code_sequences")).
		WillReturnError(assert.AnError)

	_, err := Next(db, "CLT-2025-", ClientWidth)
	assert.Error(t, err)
}

func TestFormatWidths(t *testing.T) {
	assert.Equal(t, "TR-2025-000001", Format(TransactionPrefix(2025), 1, TransactionWidth))
	assert.Equal(t, "CLT-2025-001", Format(ClientPrefix(2025), 1, ClientWidth))
	assert.Equal(t, "TSK-2025-00012", Format(TaskPrefix(2025), 12, TaskWidth))
	assert.Equal(t, "STR-2025-0007", Format(StreetPrefix(2025), 7, StreetWidth))
	assert.Equal(t, "DOC-042", Format(DocumentPrefix, 42, DocumentWidth))
	assert.Equal(t, "TT-001", Format(TransactionTypePrefix, 1, TransactionTypeWidth))
}

func TestFormatDoesNotTruncateOverflow(t *testing.T) {
	// once the padded width is exhausted the code just grows
	assert.Equal(t, "TT-1000", Format(TransactionTypePrefix, 1000, TransactionTypeWidth))
}

func TestSuffixOf(t *testing.T) {
	assert.EqualValues(t, 2, SuffixOf("TR-2025-000002"))
	assert.EqualValues(t, 1, SuffixOf("TT-001"))
	assert.EqualValues(t, 0, SuffixOf("TR-2025-abc"))
	assert.EqualValues(t, 0, SuffixOf("nocode"))
	assert.EqualValues(t, 0, SuffixOf("TR-"))
}

func TestSeedUsesGreatest(t *testing.T) {
	db, mock := mockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (prefix) DO UPDATE SET value = GREATEST")).
		WithArgs("TR-2025-", int64(120)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, Seed(db, "TR-2025-", 120))
	assert.NoError(t, mock.ExpectationsWereMet())
}
