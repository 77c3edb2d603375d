package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/db"
	"github.com/learnsetu/lms-backend/internal/pkg/apperrors"
)

var errRowInsert = errors.New("row insert failed")

type stubRow struct {
	id  int64
	err error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if p, ok := dest[0].(*int64); ok {
			*p = r.id
		}
	}
	return nil
}

// stubTx records commit, rollback and statement activity. failExecAt makes
// the Nth Exec call fail, which stands in for a child row insert error.
type stubTx struct {
	nextID      int64
	queryRowErr error
	failExecAt  int
	execCount   int
	commits     int
	rollbacks   int
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(ctx context.Context) error          { t.commits++; return nil }
func (t *stubTx) Rollback(ctx context.Context) error        { t.rollbacks++; return nil }

func (t *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execCount++
	if t.failExecAt != 0 && t.execCount == t.failExecAt {
		return pgconn.CommandTag{}, errRowInsert
	}
	return pgconn.CommandTag{}, nil
}

func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{id: t.nextID, err: t.queryRowErr}
}

func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query")
}

func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("unexpected CopyFrom")
}

func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("unexpected Prepare")
}

func (t *stubTx) Conn() *pgx.Conn { return nil }

// stubTxRunner applies the WithTransaction contract to a stubTx: commit only
// when the function returns nil, rollback otherwise.
type stubTxRunner struct {
	tx *stubTx
}

func (r *stubTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if err := fn(ctx, r.tx); err != nil {
		_ = r.tx.Rollback(ctx)
		return err
	}
	return r.tx.Commit(ctx)
}

func newStubCustomCourseRepository(tx *stubTx) *CustomCourseRepository {
	return &CustomCourseRepository{
		tx: &stubTxRunner{tx: tx},
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func TestCreateRollsBackWhenSelectionInsertFails(t *testing.T) {
	tx := &stubTx{nextID: 7, failExecAt: 1}
	repo := newStubCustomCourseRepository(tx)

	id, err := repo.Create(context.Background(),
		&models.CustomCourse{Title: "Hindi Bundle"},
		[]models.CustomCourseSelection{{CourseID: "course-5", ModuleIDs: "s1,s2"}},
		[]int64{3},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errRowInsert)
	assert.Zero(t, id)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits, "a failed child insert must not commit the header row")
}

func TestCreateCommitsWhenAllRowsInsert(t *testing.T) {
	tx := &stubTx{nextID: 7}
	repo := newStubCustomCourseRepository(tx)

	id, err := repo.Create(context.Background(),
		&models.CustomCourse{Title: "Hindi Bundle"},
		[]models.CustomCourseSelection{{CourseID: "course-5", ModuleIDs: "s1"}},
		[]int64{3, 4},
	)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
	assert.Equal(t, 3, tx.execCount, "one selection row and two assignment rows")
}

func TestUpdateRollsBackWhenAssignmentInsertFails(t *testing.T) {
	// Header update succeeds (1), assignment delete succeeds (2), the
	// assignment re-insert fails (3).
	tx := &stubTx{nextID: 9, failExecAt: 3}
	repo := newStubCustomCourseRepository(tx)

	users := []int64{3}
	err := repo.Update(context.Background(),
		&models.CustomCourse{ID: 9, Title: "Hindi Bundle"},
		nil, &users,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errRowInsert)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestUpdateRollsBackWhenSelectionInsertFails(t *testing.T) {
	// Header update succeeds (1), selection delete succeeds (2), the
	// selection re-insert fails (3); assignment rows are never touched.
	tx := &stubTx{nextID: 9, failExecAt: 3}
	repo := newStubCustomCourseRepository(tx)

	selections := []models.CustomCourseSelection{{CourseID: "course-5", ModuleIDs: "s1"}}
	users := []int64{3}
	err := repo.Update(context.Background(),
		&models.CustomCourse{ID: 9, Title: "Hindi Bundle"},
		&selections, &users,
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errRowInsert)
	assert.Equal(t, 3, tx.execCount)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestUpdateMissingCourseRollsBack(t *testing.T) {
	tx := &stubTx{queryRowErr: pgx.ErrNoRows}
	repo := newStubCustomCourseRepository(tx)

	err := repo.Update(context.Background(),
		&models.CustomCourse{ID: 42, Title: "Gone"},
		nil, nil,
	)

	assert.ErrorIs(t, err, apperrors.ErrCustomCourseNotFound)
	assert.Zero(t, tx.execCount)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}
