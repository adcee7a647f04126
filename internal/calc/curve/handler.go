package curve

import (
	"encoding/json"
	"net/http"

	column "Strut/internal/calc/column"
	"Strut/internal/diagram"
)

type Handler struct{}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var input column.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	data, err := Build(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := diagram.WriteCurvePNG(data, w); err != nil {
		http.Error(w, "Chart rendering failed", http.StatusInternalServerError)
	}
}
