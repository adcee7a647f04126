package batch

import (
	"fmt"

	column "Strut/internal/calc/column"
)

type ColumnBatchInput struct {
	Items []column.Input `json:"items"`
}

type ColumnBatchResult struct {
	Results []column.Result `json:"results"`
}

func CalculateColumn(in ColumnBatchInput) (ColumnBatchResult, error) {
	if len(in.Items) == 0 {
		return ColumnBatchResult{}, fmt.Errorf("no items")
	}
	out := ColumnBatchResult{Results: make([]column.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := column.Calculate(item)
		if err != nil {
			return ColumnBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
