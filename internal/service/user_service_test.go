package service

import (
	"context"
	"testing"

	"starwars-api/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*Services, *memory.Stores) {
	t.Helper()
	m := memory.NewStores()
	stores := Stores{
		Users:              m.Users,
		Planets:            m.Planets,
		Characters:         m.Characters,
		Vehicles:           m.Vehicles,
		FavoritePlanets:    m.FavoritePlanets,
		FavoriteCharacters: m.FavoriteCharacters,
		FavoriteVehicles:   m.FavoriteVehicles,
	}
	return NewServices(stores, nil, nil), m
}

const luke = `{"user_name":"luke","email":"luke@rebels.org","password":"usetheforce"}`

func TestUserCreate(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	user, err := svcs.Users.Create(ctx, []byte(luke))
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.True(t, user.IsActive, "is_active defaults to true")

	_, err = svcs.Users.Create(ctx, []byte(`{"user_name":"luke","email":"other@rebels.org","password":"x"}`))
	assertKind(t, err, ErrConflict, "User with this username or email already exists")

	_, err = svcs.Users.Create(ctx, []byte(`{"user_name":"other","email":"luke@rebels.org","password":"x"}`))
	assertKind(t, err, ErrConflict, "User with this username or email already exists")

	_, err = svcs.Users.Create(ctx, []byte(`{"user_name":"han","email":"han@falcon.io"}`))
	assertKind(t, err, ErrValidation, "The fields user_name, email and password are required")

	_, err = svcs.Users.Create(ctx, []byte(`{"user_name":"han","email":"han@falcon.io","password":"x","role":"admin"}`))
	assertKind(t, err, ErrValidation, "Allowed fields user_name, email, password and is_active")

	inactive, err := svcs.Users.Create(ctx, []byte(`{"user_name":"vader","email":"vader@empire.gov","password":"x","is_active":false}`))
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}

func TestUserUpdate(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Users.Create(ctx, []byte(luke))
	require.NoError(t, err)
	_, err = svcs.Users.Create(ctx, []byte(`{"user_name":"leia","email":"leia@rebels.org","password":"x"}`))
	require.NoError(t, err)

	assertKind(t, svcs.Users.Update(ctx, 9, []byte(`{"email":"x@y.z"}`)), ErrNotFound, "User with id 9 not found")
	assertKind(t, svcs.Users.Update(ctx, 2, []byte(`{"user_name":"luke"}`)), ErrConflict, "This username already exists")
	assertKind(t, svcs.Users.Update(ctx, 2, []byte(`{"email":"luke@rebels.org"}`)), ErrConflict, "This email already exists")

	// 用户自身的用户名不算冲突
	require.NoError(t, svcs.Users.Update(ctx, 2, []byte(`{"user_name":"leia","email":"leia@alderaan.gov"}`)))

	leia, err := svcs.Users.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "leia@alderaan.gov", leia.Email)
	assert.Equal(t, "x", leia.Password)
}

func TestUserDeleteDeactivates(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	assertKind(t, svcs.Users.Delete(ctx, 1), ErrNotFound, "User with id 1 not found")

	_, err := svcs.Users.Create(ctx, []byte(luke))
	require.NoError(t, err)

	require.NoError(t, svcs.Users.Delete(ctx, 1))
	user, err := svcs.Users.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	assertKind(t, svcs.Users.Delete(ctx, 1), ErrConflict, "User with id 1 is already deactivated")

	users, err := svcs.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "deactivated users stay listed")
}

func TestUserFavorites(t *testing.T) {
	svcs, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svcs.Users.Favorites(ctx, 1)
	assertKind(t, err, ErrNotFound, "User with id 1 does not exist")

	_, err = svcs.Users.Create(ctx, []byte(luke))
	require.NoError(t, err)

	// 没有收藏星球时也能正常返回
	data, err := svcs.Users.Favorites(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, data.FavoritePlanets)
	assert.Empty(t, data.FavoriteCharacters)
	assert.Empty(t, data.FavoriteVehicles)
	assert.Equal(t, "luke", data.UserData.UserName)

	_, err = svcs.Vehicles.Create(ctx, []byte(`{"vehicle_name":"X-wing","passengers":1,"load_capacity":110,"armament":"lasers","length":12}`))
	require.NoError(t, err)
	require.NoError(t, svcs.FavoriteVehicles.Add(ctx, 1, 1))

	data, err = svcs.Users.Favorites(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, data.FavoritePlanets)
	require.Len(t, data.FavoriteVehicles, 1)
	assert.Equal(t, "X-wing", data.FavoriteVehicles[0].Vehicle.VehicleName)
}
