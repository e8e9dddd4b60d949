package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/referee-delegation/internal/domain/referee"
	"github.com/riskibarqy/referee-delegation/internal/domain/user"
	refereemock "github.com/riskibarqy/referee-delegation/internal/mocks/domain/referee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefereeService_ListReferees_SortsAndFiltersUsingMockery(t *testing.T) {
	t.Parallel()

	repo := refereemock.NewRepository(t)
	service := NewRefereeService(repo)

	repo.
		On("List", mock.Anything, referee.ListFilter{ActiveOnly: true, Category: referee.LicenseNational, City: "Jakarta"}).
		Return([]referee.Referee{
			{ID: "ref-b", User: user.User{FirstName: "Yudi", LastName: "nurcahya"}},
			{ID: "ref-a", User: user.User{FirstName: "Thoriq", LastName: "Alkatiri"}},
		}, nil).
		Once()

	got, err := service.ListReferees(t.Context(), ListRefereesInput{ActiveOnly: true, Category: " National ", City: " Jakarta "})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ref-a", got[0].ID)
	assert.Equal(t, "ref-b", got[1].ID)
}

func TestRefereeService_ListReferees_UnknownCategoryUsingMockery(t *testing.T) {
	t.Parallel()

	repo := refereemock.NewRepository(t)
	service := NewRefereeService(repo)

	_, err := service.ListReferees(t.Context(), ListRefereesInput{Category: "fifa"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRefereeService_GetMyRefereeUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	repo := refereemock.NewRepository(t)
	service := NewRefereeService(repo)

	repo.
		On("GetByUserID", mock.Anything, "user-ref-01").
		Return(referee.Referee{ID: "ref-01", UserID: "user-ref-01"}, true, nil).
		Once()
	repo.
		On("GetByUserID", mock.Anything, "user-delegate-1").
		Return(referee.Referee{}, false, nil).
		Once()
	repo.
		On("GetByUserID", mock.Anything, "user-broken").
		Return(referee.Referee{}, false, errors.New("pool exhausted")).
		Once()

	got, err := service.GetMyReferee(ctx, "user-ref-01")
	require.NoError(t, err)
	assert.Equal(t, "ref-01", got.ID)

	_, err = service.GetMyReferee(ctx, "user-delegate-1")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.GetMyReferee(ctx, "user-broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrForbidden)

	_, err = service.GetMyReferee(ctx, " ")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefereeService_GetRefereeUsingMockery(t *testing.T) {
	t.Parallel()

	repo := refereemock.NewRepository(t)
	service := NewRefereeService(repo)

	repo.
		On("GetByID", mock.Anything, "ref-404").
		Return(referee.Referee{}, false, nil).
		Once()

	_, err := service.GetReferee(t.Context(), "ref-404")
	assert.ErrorIs(t, err, ErrNotFound)
}
