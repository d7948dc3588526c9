package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

func TestStores(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/admin/stores", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, []types.Store{{ID: 1, Name: "Mascote", MetaVisitas: 10}})
		}).Methods(http.MethodGet)
		r.HandleFunc("/lojas", func(w http.ResponseWriter, req *http.Request) {
			var got types.CreateStoreRequest
			_ = json.NewDecoder(req.Body).Decode(&got)
			writeJSON(w, http.StatusCreated, types.Store{ID: 2, Name: got.Name, MetaVisitas: got.MetaVisitas})
		}).Methods(http.MethodPost)
	})

	stores, err := ListStores(context.Background(), rc)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Mascote", stores[0].Name)

	st, err := CreateStore(context.Background(), rc, types.CreateStoreRequest{Name: "Centro", MetaVisitas: 8})
	require.NoError(t, err)
	assert.Equal(t, types.Store{ID: 2, Name: "Centro", MetaVisitas: 8}, *st)
}

func TestCreateStore_ValidationSkipsHTTP(t *testing.T) {
	t.Parallel()
	var calls int32
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/lojas", func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
		})
	})

	_, err := CreateStore(context.Background(), rc, types.CreateStoreRequest{})
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestUsers(t *testing.T) {
	t.Parallel()
	store := 5
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/admin/users", func(w http.ResponseWriter, req *http.Request) {
			var got types.CreateUserRequest
			_ = json.NewDecoder(req.Body).Decode(&got)
			writeJSON(w, http.StatusCreated, types.User{ID: 9, Name: got.Name, Email: got.Email, Role: got.Role, LockLoja: got.StoreID != nil, StoreID: got.StoreID})
		}).Methods(http.MethodPost)
		r.HandleFunc("/admin/users", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, []types.User{{ID: 9}, {ID: 1}})
		}).Methods(http.MethodGet)
	})

	u, err := CreateUser(context.Background(), rc, types.CreateUserRequest{Name: "Ana", Email: "ana@cdc.com", Password: "pw", Role: types.RoleAttendant, StoreID: &store})
	require.NoError(t, err)
	assert.True(t, u.LockLoja)
	assert.Equal(t, types.RoleAttendant, u.Role)

	users, err := ListUsers(context.Background(), rc)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdmin_Forbidden(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/admin/users", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		})
	})
	_, err := ListUsers(context.Background(), rc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list users: status 403")
}
