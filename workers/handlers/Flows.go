package handlers

import (
	"errors"
	"net/http"

	"gobridgeflow/flow"
	"gobridgeflow/session"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

func OpenFlow(w http.ResponseWriter, r *http.Request) {
	user := requestUser(r)
	id, _ := deps.Flows.Open(user)
	// read back through the registry so the summary comes from the same flow
	withFlow(w, id, user, http.StatusCreated, func(*flow.Flow) error { return nil })
}

func GetFlow(w http.ResponseWriter, r *http.Request) {
	withFlow(w, chi.URLParam(r, "id"), requestUser(r), http.StatusOK, func(*flow.Flow) error { return nil })
}

func ConfigureDeposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if !decodeBody(w, r, &req) {
		return
	}

	withFlow(w, chi.URLParam(r, "id"), requestUser(r), http.StatusOK, func(f *flow.Flow) error {
		return f.ConfigureDeposit(req.SourceChain, req.TargetChain, req.Asset, req.Amount, req.Recipient)
	})
}

func AdvanceFlow(w http.ResponseWriter, r *http.Request) {
	withFlow(w, chi.URLParam(r, "id"), requestUser(r), http.StatusOK, func(f *flow.Flow) error {
		return f.Advance()
	})
}

func ResetFlow(w http.ResponseWriter, r *http.Request) {
	withFlow(w, chi.URLParam(r, "id"), requestUser(r), http.StatusOK, func(f *flow.Flow) error {
		f.Reset()
		return nil
	})
}

func CloseFlow(w http.ResponseWriter, r *http.Request) {
	if err := deps.Flows.Close(chi.URLParam(r, "id"), requestUser(r)); err != nil {
		flowError(w, err)
		return
	}
	responseJSON(w, &APIResponse{Status: "ok"}, http.StatusOK)
}

// withFlow applies fn to the flow and answers with its state afterwards
func withFlow(w http.ResponseWriter, id, user string, code int, fn func(f *flow.Flow) error) {
	var resp APIFlowResponse
	err := deps.Flows.Do(id, user, func(f *flow.Flow) error {
		if err := fn(f); err != nil {
			return err
		}
		resp = APIFlowResponse{
			Status:  "ok",
			ID:      id,
			Flow:    f.Snapshot(),
			Summary: flow.Summarize(f),
		}
		return nil
	})
	if err != nil {
		flowError(w, err)
		return
	}
	responseJSON(w, &resp, code)
}

func flowError(w http.ResponseWriter, err error) {
	var fieldErr *flow.FieldError
	switch {
	case errors.As(err, &fieldErr):
		responseError(w, fieldErr.Field, fieldErr.Error(), http.StatusBadRequest)
	case errors.Is(err, flow.ErrIncompleteConfiguration), errors.Is(err, flow.ErrStageLocked):
		responseError(w, "", err.Error(), http.StatusConflict)
	case errors.Is(err, session.ErrFlowNotFound):
		responseError(w, "", err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrNotOwner):
		responseError(w, "", err.Error(), http.StatusForbidden)
	default:
		log.Errorf("Unexpected flow error: %s", err)
		responseError(w, "", "internal error", http.StatusInternalServerError)
	}
}
