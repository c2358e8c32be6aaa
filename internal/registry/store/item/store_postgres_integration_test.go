//go:build integration

package item_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"curio/internal/registry/models"
	"curio/internal/registry/store/item"
	"curio/pkg/domain"
	"curio/pkg/platform/sentinel"
	"curio/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *item.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())

	var err error
	s.store, err = item.NewPostgresStore(context.Background(), s.postgres.DB)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "registry_items"))
}

func (s *PostgresStoreSuite) item(title string) models.Item {
	data, err := domain.NewItemData(title)
	s.Require().NoError(err)
	return models.Item{
		ID:         data.ID(),
		Data:       data,
		Owner:      domain.Address("owner"),
		Stake:      10,
		UnlockTime: time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	it := s.item("listing 001")

	s.Require().NoError(s.store.Create(ctx, it))

	got, err := s.store.Get(ctx, it.ID)
	s.Require().NoError(err)
	s.Equal(it.ID, got.ID)
	s.Equal(it.Data, got.Data)
	s.Equal(it.Owner, got.Owner)
	s.Equal(it.Stake, got.Stake)
	s.WithinDuration(it.UnlockTime, got.UnlockTime, time.Millisecond)
}

func (s *PostgresStoreSuite) TestCreateConflict() {
	ctx := context.Background()
	it := s.item("listing 001")

	s.Require().NoError(s.store.Create(ctx, it))
	s.ErrorIs(s.store.Create(ctx, it), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestUpdateAndDelete() {
	ctx := context.Background()
	it := s.item("listing 001")

	s.ErrorIs(s.store.Update(ctx, it), sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(ctx, it.ID), sentinel.ErrNotFound)

	s.Require().NoError(s.store.Create(ctx, it))
	it.Stake = 99
	s.Require().NoError(s.store.Update(ctx, it))

	got, err := s.store.Get(ctx, it.ID)
	s.Require().NoError(err)
	s.Equal(uint64(99), got.Stake)

	s.Require().NoError(s.store.Delete(ctx, it.ID))
	_, err = s.store.Get(ctx, it.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestList() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, s.item("listing 001")))
	s.Require().NoError(s.store.Create(ctx, s.item("listing 002")))

	items, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Len(items, 2)
}
