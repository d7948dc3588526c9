package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidelidade/fidelidade-client/client/internal/types"
)

func TestRegisterVisit(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/visitas", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(req.Body).Decode(&body)
			assert.Equal(t, "111", body["cpf"])
			_, hasID := body["client_id"]
			assert.False(t, hasID, "client_id must be omitted when zero")
			writeJSON(w, http.StatusCreated, types.VisitAck{VisitID: 7, VisitsCount: 10, Eligible: true})
		}).Methods(http.MethodPost)
	})

	ack, err := RegisterVisit(context.Background(), rc, types.RegisterVisitRequest{CPF: "111"})
	require.NoError(t, err)
	assert.True(t, ack.Eligible)
	assert.Equal(t, 10, ack.VisitsCount)
}

func TestRegisterVisit_InvalidSelector(t *testing.T) {
	t.Parallel()
	_, err := RegisterVisit(context.Background(), failingClient(), types.RegisterVisitRequest{})
	assert.ErrorIs(t, err, types.ErrCustomerSelector)
}

func TestListVisits(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/visitas", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "3", req.URL.Query().Get("page"))
			writeJSON(w, http.StatusOK, map[string]any{
				"total": 21, "page": 3, "per_page": 10,
				"items": []map[string]any{{"id": 1, "client_id": 4, "store_id": 1, "created_at": "2024-05-01T10:00:00.123456"}},
			})
		}).Methods(http.MethodGet)
	})

	page, err := ListVisits(context.Background(), rc, types.PageParams{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 4, page.Items[0].ClientID)
}

func TestRedeem_AcceptsOKAndCreated(t *testing.T) {
	t.Parallel()
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		status := status
		rc := newBackend(t, func(r *mux.Router) {
			r.HandleFunc("/resgates", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, status, map[string]any{"redemption_id": 3, "gift_name": "Brinde", "when": "2024-05-01T10:00:00"})
			}).Methods(http.MethodPost)
		})

		ack, err := Redeem(context.Background(), rc, types.RedeemRequest{ClientID: 4})
		require.NoError(t, err)
		assert.Equal(t, 3, ack.RedemptionID)
		assert.Equal(t, "Brinde", ack.GiftName)
	}
}

func TestRedeem_GoalNotReached(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/resgates", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Cliente ainda não atingiu a meta", "visits_count": 3, "meta": 10})
		})
	})

	_, err := Redeem(context.Background(), rc, types.RedeemRequest{CPF: "111"})
	require.Error(t, err)
}

func TestListRedemptions(t *testing.T) {
	t.Parallel()
	rc := newBackend(t, func(r *mux.Router) {
		r.HandleFunc("/resgates", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "5", req.URL.Query().Get("per_page"))
			writeJSON(w, http.StatusOK, map[string]any{"total": 1, "items": []map[string]any{{"id": 1, "gift_name": "Brinde", "created_at": "2024-05-01T10:00:00"}}})
		}).Methods(http.MethodGet)
	})

	page, err := ListRedemptions(context.Background(), rc, types.PageParams{PerPage: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
