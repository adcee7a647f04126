package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Strut/internal/buckling"
	column "Strut/internal/calc/column"
	"Strut/internal/material"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Column  column.Input `json:"column"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Column Buckling Report"
	}

	// Resolve defaults before printing so the input table shows the
	// values the check actually ran with.
	if input.Column.EndFactor <= 0 {
		input.Column.EndFactor = buckling.CPinnedPinned
	}
	if input.Column.E_Pa <= 0 || input.Column.SyPa <= 0 {
		grade := input.Column.Material
		if grade == "" {
			grade = material.GradeSteel
		}
		props, err := material.Lookup(grade)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if input.Column.E_Pa <= 0 {
			input.Column.E_Pa = props.E
		}
		if input.Column.SyPa <= 0 {
			input.Column.SyPa = props.Sy
		}
	}

	res, err := column.Calculate(input.Column)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	rows := []struct {
		label, value string
	}{
		{"Length", fmt.Sprintf("%.3f m", input.Column.LengthM)},
		{"End-condition constant C", fmt.Sprintf("%.2f", input.Column.EndFactor)},
		{"Area", fmt.Sprintf("%.6g m2", input.Column.AreaM2)},
		{"Moment of inertia", fmt.Sprintf("%.6g m4", input.Column.InertiaM4)},
		{"Modulus of elasticity", fmt.Sprintf("%.4g Pa", input.Column.E_Pa)},
		{"Yield strength", fmt.Sprintf("%.4g Pa", input.Column.SyPa)},
		{"Axial load", fmt.Sprintf("%.4g N", input.Column.LoadN)},
	}
	if input.Column.Material != "" {
		rows = append(rows, struct{ label, value string }{"Material", input.Column.Material})
	}
	for _, row := range rows {
		pdf.Cell(90, 6, row.label)
		pdf.Cell(0, 6, row.value)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	status := "NOT OK"
	if res.OK {
		status = "OK"
	}
	out := []struct {
		label, value string
	}{
		{"Radius of gyration", fmt.Sprintf("%.6g m", res.GyrationM)},
		{"Slenderness ratio L/k", fmt.Sprintf("%.2f", res.Slenderness)},
		{"Transition slenderness (L/k)1", fmt.Sprintf("%.2f", res.TransitionSlnd)},
		{"Governing formula", res.Regime},
		{"Unit critical load", fmt.Sprintf("%.4g Pa", res.UnitCriticalPa)},
		{"Critical load", fmt.Sprintf("%.4g N", res.CriticalLoadN)},
		{"Safety factor", fmt.Sprintf("%.3f", res.SafetyFactor)},
		{"Status", status},
	}
	for _, row := range out {
		pdf.Cell(90, 6, row.label)
		pdf.Cell(0, 6, row.value)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
