package result_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prova-app/prova-api/internal/result"
	"github.com/prova-app/prova-api/internal/test"
	"github.com/prova-app/prova-api/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResultRepo struct {
	rows []*result.Result
}

func (r *fakeResultRepo) Create(res *result.Result) error {
	r.rows = append(r.rows, res)
	return nil
}

func (r *fakeResultRepo) ListByTestCreator(teacherID string) ([]result.ResultRow, error) {
	return nil, nil
}

type fakeTestRepo struct {
	tests map[string]*test.Test
}

func (r *fakeTestRepo) Create(t *test.Test) error { return nil }

func (r *fakeTestRepo) GetByID(id string) (*test.Test, error) {
	return r.tests[id], nil
}

func (r *fakeTestRepo) ListByCreator(string) ([]*test.Test, error) { return nil, nil }

func (r *fakeTestRepo) ListAll() ([]*test.Test, error) { return nil, nil }

func newFixture() (*fakeResultRepo, *test.Test, result.ResultService) {
	t := &test.Test{ID: uuid.New(), Title: "Algebra I", MaxScore: 10}
	repo := &fakeResultRepo{}
	svc := result.NewService(repo, &fakeTestRepo{tests: map[string]*test.Test{
		t.ID.String(): t,
	}})
	return repo, t, svc
}

func student() *user.User {
	return &user.User{ID: uuid.New(), Email: "aluno@example.com"}
}

func TestSubmit(t *testing.T) {
	repo, tst, svc := newFixture()
	u := student()

	res, err := svc.Submit(context.Background(), u, result.SubmitResultDTO{
		TestID: tst.ID.String(),
		Score:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID, res.UserID)
	assert.Equal(t, tst.ID, res.TestID)
	assert.Equal(t, 7, res.Score)
	assert.Len(t, repo.rows, 1)
}

func TestSubmitAllowsRetakes(t *testing.T) {
	repo, tst, svc := newFixture()
	u := student()

	for _, score := range []int{3, 9} {
		_, err := svc.Submit(context.Background(), u, result.SubmitResultDTO{
			TestID: tst.ID.String(),
			Score:  score,
		})
		require.NoError(t, err)
	}

	// no idempotency guard: every submission is its own row
	assert.Len(t, repo.rows, 2)
}

func TestSubmitInvalidTestID(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Submit(context.Background(), student(), result.SubmitResultDTO{
		TestID: "not-a-uuid",
		Score:  1,
	})
	assert.ErrorIs(t, err, result.ErrInvalidTestID)
}

func TestSubmitNegativeScore(t *testing.T) {
	_, tst, svc := newFixture()

	_, err := svc.Submit(context.Background(), student(), result.SubmitResultDTO{
		TestID: tst.ID.String(),
		Score:  -1,
	})
	assert.ErrorIs(t, err, result.ErrInvalidScore)
}

func TestSubmitUnknownTest(t *testing.T) {
	_, _, svc := newFixture()

	_, err := svc.Submit(context.Background(), student(), result.SubmitResultDTO{
		TestID: uuid.NewString(),
		Score:  1,
	})
	assert.ErrorIs(t, err, test.ErrNotFound)
}
