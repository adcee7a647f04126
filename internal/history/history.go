package history

import (
	"Strut/internal/repo"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type HistoryHandler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Tool   string          `json:"tool"`
	Input  json.RawMessage `json:"input"`
	Result json.RawMessage `json:"result"`
}

func userID(r *http.Request) (int, bool) {
	idVal := r.Context().Value("userID")
	id, ok := idVal.(int)
	return id, ok && id != 0
}

func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Tool == "" || len(req.Input) == 0 || len(req.Result) == 0 {
		http.Error(w, "Tool, input and result required", http.StatusBadRequest)
		return
	}

	calcID, err := h.Repo.SaveCalculation(r.Context(), id, req.Tool, req.Input, req.Result)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": calcID})
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	calcs, err := h.Repo.ListCalculations(r.Context(), id)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if calcs == nil {
		calcs = []repo.Calculation{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcs)
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	calcID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Некорректный id", http.StatusBadRequest)
		return
	}

	calc, err := h.Repo.GetCalculation(r.Context(), id, calcID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Calculation not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calc)
}
