package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const leadColumns = `
	lead_id, name, location, device, platforms, areas,
	budget_min, budget_max, searches_last_7d, searches_last_30d,
	last_seen_days, viewed_mortgage_calc, project_keywords_matches,
	behavior, score, tag, reasoning, next_action, row_order,
	created_at, updated_at`

// ReplaceLeads replaces the stored snapshot with the given leads in a single
// transaction. Input order is preserved via row_order, which keys the
// snapshot; lead IDs are stored as-is and may repeat. Leads without an ID
// get a generated one.
func (db *DB) ReplaceLeads(ctx context.Context, leads []Lead) error {
	now := time.Now()

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM leads`); err != nil {
			return fmt.Errorf("failed to clear leads: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO leads (`+leadColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range leads {
			l := &leads[i]
			if l.LeadID == "" {
				l.LeadID = uuid.New().String()
			}
			l.RowOrder = i
			l.CreatedAt = now
			l.UpdatedAt = now

			if _, err := stmt.ExecContext(ctx,
				l.LeadID, l.Name, l.Location, l.Device, l.Platforms, l.Areas,
				l.BudgetMin, l.BudgetMax, l.SearchesLast7d, l.SearchesLast30d,
				l.LastSeenDays, l.ViewedMortgageCalc, l.ProjectKeywordsMatches,
				l.Behavior, l.Score, l.Tag, l.Reasoning, l.NextAction, l.RowOrder,
				l.CreatedAt, l.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert lead %s: %w", l.LeadID, err)
			}
		}

		return nil
	})
}

func scanLead(scan func(dest ...interface{}) error) (Lead, error) {
	var l Lead
	err := scan(
		&l.LeadID, &l.Name, &l.Location, &l.Device, &l.Platforms, &l.Areas,
		&l.BudgetMin, &l.BudgetMax, &l.SearchesLast7d, &l.SearchesLast30d,
		&l.LastSeenDays, &l.ViewedMortgageCalc, &l.ProjectKeywordsMatches,
		&l.Behavior, &l.Score, &l.Tag, &l.Reasoning, &l.NextAction, &l.RowOrder,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// GetLead retrieves a lead by ID. IDs come from the source data and may
// repeat; the earliest row wins.
func (db *DB) GetLead(ctx context.Context, id string) (*Lead, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+leadColumns+` FROM leads WHERE lead_id = ?
		ORDER BY row_order ASC LIMIT 1
	`, id)

	l, err := scanLead(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLeadByName retrieves a lead by name (case-insensitive, best score first)
func (db *DB) GetLeadByName(ctx context.Context, name string) (*Lead, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+leadColumns+` FROM leads
		WHERE LOWER(name) LIKE LOWER(?)
		ORDER BY score DESC, row_order ASC LIMIT 1
	`, "%"+name+"%")

	l, err := scanLead(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLeads retrieves leads with optional filters, ordered by score
// descending with the original row order breaking ties.
func (db *DB) ListLeads(ctx context.Context, opts ListOptions) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}

	if opts.MinScore != nil {
		query += " AND score >= ?"
		args = append(args, *opts.MinScore)
	}
	if opts.Tag != nil {
		query += " AND tag = ?"
		args = append(args, *opts.Tag)
	}
	if opts.Area != nil {
		query += " AND areas LIKE ?"
		args = append(args, "%"+*opts.Area+"%")
	}

	query += " ORDER BY score DESC, row_order ASC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

// ListLeadsInOrder retrieves the full snapshot in original row order.
func (db *DB) ListLeadsInOrder(ctx context.Context) ([]Lead, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+leadColumns+` FROM leads ORDER BY row_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		l, err := scanLead(rows.Scan)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}

// GetStats returns aggregate statistics over the stored leads
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	s := &Stats{}

	err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN score >= 80 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN score >= 60 AND score < 80 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN score < 60 THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(score), 0),
			COALESCE(MAX(score), 0)
		FROM leads
	`).Scan(&s.TotalLeads, &s.Hot, &s.Warm, &s.Cold, &s.AvgScore, &s.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return s, nil
}
