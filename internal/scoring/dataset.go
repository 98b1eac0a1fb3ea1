package scoring

import (
	"strconv"

	"github.com/asif-merchant/leadintel/internal/dataset"
)

// ScoreDataset scores every row of a raw dataset and returns a new dataset
// with score, tag, reasoning and next_action columns appended. Row count and
// row order are preserved.
//
// A dataset that already carries a score column is treated as pre-scored and
// returned untouched; the check is made once up front, never per row.
func ScoreDataset(ds *dataset.Dataset) *dataset.Dataset {
	if ds.HasColumn(ColScore) {
		return ds
	}

	out := dataset.New(ds.Columns...)
	out.AddColumn(ColScore)
	out.AddColumn(ColTag)
	out.AddColumn(ColReasoning)
	out.AddColumn(ColNextAction)

	for _, row := range ds.Rows {
		scored := row.Clone()
		score, breakdown := ComputeScore(row)
		scored.Set(ColScore, strconv.Itoa(score))
		scored.Set(ColTag, string(TagFromScore(score)))
		scored.Set(ColReasoning, Reasoning(breakdown))
		scored.Set(ColNextAction, NextAction(score))
		out.Append(scored)
	}

	return out
}

// RecordScore reads the score column of a scored record. Malformed values
// read as zero so downstream consumers stay total.
func RecordScore(row dataset.Record) int {
	n, err := strconv.Atoi(row.Get(ColScore))
	if err != nil {
		return 0
	}
	return n
}
