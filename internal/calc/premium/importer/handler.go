package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	column "Strut/internal/calc/column"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ColumnImportResult struct {
	Count   int             `json:"count"`
	Results []column.Result `json:"results"`
}

func (h *Handler) Column(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []column.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}
		input, err := parseColumnRow(row)
		if err != nil {
			continue
		}
		res, err := column.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ColumnImportResult{Count: len(results), Results: results})
}

func parseColumnRow(row []string) (column.Input, error) {
	// expected: material, length_m, load_n, area_m2, inertia_m4, end_factor(optional), e_pa, sy_pa
	if len(row) < 5 {
		return column.Input{}, fmt.Errorf("bad row")
	}
	material := row[0]
	length, err := toFloat(row[1])
	if err != nil {
		return column.Input{}, err
	}
	load, err := toFloat(row[2])
	if err != nil {
		return column.Input{}, err
	}
	area, err := toFloat(row[3])
	if err != nil {
		return column.Input{}, err
	}
	inertia, err := toFloat(row[4])
	if err != nil {
		return column.Input{}, err
	}
	endFactor := 0.0
	if len(row) > 5 && row[5] != "" {
		endFactor, _ = toFloat(row[5])
	}
	e := 0.0
	if len(row) > 6 && row[6] != "" {
		e, _ = toFloat(row[6])
	}
	sy := 0.0
	if len(row) > 7 && row[7] != "" {
		sy, _ = toFloat(row[7])
	}
	return column.Input{
		Material:  material,
		LengthM:   length,
		LoadN:     load,
		AreaM2:    area,
		InertiaM4: inertia,
		EndFactor: endFactor,
		E_Pa:      e,
		SyPa:      sy,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
