package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

func TestListCustomers_QueryParams(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/clientes", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query()
			assert.Equal(t, "11122233344", q.Get("cpf"))
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "25", q.Get("per_page"))
			writeJSON(w, http.StatusOK, map[string]any{
				"total": 1,
				"items": []map[string]any{{"id": 4, "name": "Ana", "cpf": "11122233344", "birthday": "1990-03-15", "store_id": 1}},
			})
		}).Methods(http.MethodGet)
	})

	page, err := ListCustomers(context.Background(), rc, types.ListCustomersParams{
		CPF:        "11122233344",
		PageParams: types.PageParams{Page: 2, PerPage: 25},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1990-03-15", page.Items[0].Birthday.String())
}

func TestListCustomers_DefaultsOmitParams(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/clientes", func(w http.ResponseWriter, req *http.Request) {
			assert.Empty(t, req.URL.RawQuery)
			writeJSON(w, http.StatusOK, map[string]any{"total": 0, "items": []any{}})
		})
	})

	page, err := ListCustomers(context.Background(), rc, types.ListCustomersParams{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/clientes", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]int{"id": 42})
		}).Methods(http.MethodPost)
	})

	out, err := CreateCustomer(context.Background(), rc, types.CreateCustomerRequest{Name: "Ana", CPF: "111"})
	require.NoError(t, err)
	assert.Equal(t, 42, out.ID)
}

func TestCreateCustomer_DuplicateCPF(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/clientes", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "CPF já cadastrado"})
		})
	})

	_, err := CreateCustomer(context.Background(), rc, types.CreateCustomerRequest{Name: "Ana", CPF: "111"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/dashboard/kpis", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"visitas_30d": 12, "clientes_total": 40, "resgates_30d": 3})
		})
		r.HandleFunc("/dashboard/aniversariantes", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "Ana", "cpf": "1", "birthday": "1990-10-02"}})
		})
	})

	k, err := KPIs(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, types.KPIs{Visits30d: 12, CustomersTotal: 40, Redemptions30d: 3}, *k)

	b, err := Birthdays(context.Background(), rc)
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, "Ana", b[0].Name)
}
