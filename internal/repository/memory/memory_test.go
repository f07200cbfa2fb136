package memory

import (
	"context"
	"errors"
	"testing"

	"starwars-api/internal/model"
	"starwars-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore[model.Planet, *model.Planet]()

	hoth := &model.Planet{PlanetName: "Hoth", Climate: "frozen"}
	require.NoError(t, store.Create(ctx, hoth))
	assert.Equal(t, int64(1), hoth.ID)

	err := store.Create(ctx, &model.Planet{PlanetName: "Hoth"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	naboo := &model.Planet{PlanetName: "Naboo"}
	require.NoError(t, store.Create(ctx, naboo))

	taken, err := store.ExistsByName(ctx, "Hoth", 0)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = store.ExistsByName(ctx, "Hoth", hoth.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	naboo.PlanetName = "Hoth"
	err = store.Update(ctx, naboo, map[string]any{"planet_name": "Hoth"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	err = store.Update(ctx, &model.Planet{ID: 77, PlanetName: "Kamino"}, nil)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hoth", items[0].PlanetName)
	assert.Equal(t, "Naboo", items[1].PlanetName, "failed update must not be stored")

	deleted, err := store.Delete(ctx, hoth.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = store.Delete(ctx, hoth.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = store.GetByID(ctx, hoth.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()

	luke := &model.User{UserName: "luke", Email: "luke@rebels.org", IsActive: true}
	require.NoError(t, store.Create(ctx, luke))
	err := store.Create(ctx, &model.User{UserName: "other", Email: "luke@rebels.org"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	exists, err := store.ExistsByEmail(ctx, "luke@rebels.org", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = store.ExistsByUserName(ctx, "luke", luke.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	luke.IsActive = false
	require.NoError(t, store.Update(ctx, luke, map[string]any{"is_active": false}))
	got, err := store.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestStoresCascadeAndAttach(t *testing.T) {
	ctx := context.Background()
	s := NewStores()

	user := &model.User{UserName: "rey", Email: "rey@jakku.net"}
	require.NoError(t, s.Users.Create(ctx, user))
	falcon := &model.Vehicle{VehicleName: "Millennium Falcon", Passengers: 6}
	require.NoError(t, s.Vehicles.Create(ctx, falcon))
	tie := &model.Vehicle{VehicleName: "TIE fighter", Passengers: 1}
	require.NoError(t, s.Vehicles.Create(ctx, tie))

	_, err := s.FavoriteVehicles.Create(ctx, user.ID, falcon.ID)
	require.NoError(t, err)
	_, err = s.FavoriteVehicles.Create(ctx, user.ID, tie.ID)
	require.NoError(t, err)
	_, err = s.FavoriteVehicles.Create(ctx, user.ID, tie.ID)
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	links, err := s.FavoriteVehicles.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "Millennium Falcon", links[0].Vehicle.VehicleName)
	assert.Equal(t, "TIE fighter", links[1].Vehicle.VehicleName)

	_, err = s.Vehicles.Delete(ctx, tie.ID)
	require.NoError(t, err)

	exists, err := s.FavoriteVehicles.Exists(ctx, user.ID, tie.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	links, err = s.FavoriteVehicles.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestCatalogStoreUpdateMergesOnlySuppliedColumns(t *testing.T) {
	ctx := context.Background()
	store := NewCatalogStore[model.Planet, *model.Planet]()
	require.NoError(t, store.Create(ctx, &model.Planet{PlanetName: "Bespin", Diameter: 118000, Climate: "temperate"}))

	// 两个请求各自读到同一份快照，分别修改不同字段
	first, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	second, err := store.GetByID(ctx, 1)
	require.NoError(t, err)

	first.Climate = "gaseous"
	require.NoError(t, store.Update(ctx, first, map[string]any{"climate": "gaseous"}))
	second.Diameter = 120000
	require.NoError(t, store.Update(ctx, second, map[string]any{"diameter": 120000}))

	got, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "gaseous", got.Climate)
	assert.Equal(t, 120000, got.Diameter)
	assert.Equal(t, "Bespin", got.PlanetName)

	err = store.Update(ctx, got, map[string]any{"gravity": 1})
	assert.Error(t, err)
}

func TestUserStoreUpdateMergesOnlySuppliedColumns(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore()
	require.NoError(t, store.Create(ctx, &model.User{UserName: "han", Email: "han@falcon.net", Password: "kessel", IsActive: true}))

	first, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	second, err := store.GetByID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, first, map[string]any{"email": "solo@falcon.net"}))
	require.NoError(t, store.Update(ctx, second, map[string]any{"is_active": false}))

	got, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "solo@falcon.net", got.Email)
	assert.False(t, got.IsActive)
	assert.Equal(t, "kessel", got.Password)
}
