package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"burnday/models"
	"burnday/pkg/stableid"
)

// RecordReport upserts one fetch's days and entries. Entry ids are
// deterministic, so recording the same upstream table twice updates
// last_seen and leaves everything else unchanged. Returns the fetch id.
func (db *DB) RecordReport(report *models.Report) (string, error) {
	webID := stableid.Hash(report.Source)
	webLabel := ""
	if len(report.Data) > 0 {
		webID = report.Data[0].WebID
		webLabel = report.Data[0].WebLabel
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO sources (web_id, source_url, label) VALUES (?, ?, ?)
		ON CONFLICT(web_id) DO UPDATE SET
			source_url = excluded.source_url,
			label = excluded.label,
			updated_at = CURRENT_TIMESTAMP`,
		webID, report.Source, webLabel)
	if err != nil {
		return "", fmt.Errorf("failed to upsert source: %w", err)
	}

	for _, day := range report.Days {
		var date sql.NullString
		if day.Date != nil {
			date = sql.NullString{String: day.Date.Format("2006-01-02"), Valid: true}
		}
		_, err = tx.Exec(`
			INSERT INTO days (web_id, day_id, label, date) VALUES (?, ?, ?, ?)
			ON CONFLICT(web_id, day_id) DO UPDATE SET
				label = excluded.label,
				date = excluded.date`,
			webID, day.ID, day.Label, date)
		if err != nil {
			return "", fmt.Errorf("failed to upsert day %s: %w", day.ID, err)
		}
	}

	for _, entry := range report.Data {
		var value sql.NullInt64
		if entry.Value != nil {
			value = sql.NullInt64{Int64: 0, Valid: true}
			if *entry.Value {
				value.Int64 = 1
			}
		}
		_, err = tx.Exec(`
			INSERT INTO entries (
				id, web_id, web_source, web_label,
				area_id, area_source, area_label, day_id, value
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				area_label = excluded.area_label,
				value = excluded.value,
				last_seen = CURRENT_TIMESTAMP`,
			entry.ID, entry.WebID, entry.WebSource, entry.WebLabel,
			entry.AreaID, entry.AreaSource, entry.AreaLabel, entry.DayID, value)
		if err != nil {
			return "", fmt.Errorf("failed to upsert entry %s: %w", entry.ID, err)
		}
	}

	fetchID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO fetches (fetch_id, web_id, updated_text, day_count, entry_count)
		VALUES (?, ?, ?, ?, ?)`,
		fetchID, webID, report.UpdatedText, len(report.Days), len(report.Data))
	if err != nil {
		return "", fmt.Errorf("failed to record fetch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return fetchID, nil
}

// HistoryFilter narrows History results. Zero values mean "no filter".
type HistoryFilter struct {
	WebID string
	Area  string // matches area_source or area_label, case-insensitively
	Limit int
}

// History returns persisted entries, newest day first.
func (db *DB) History(filter HistoryFilter) ([]models.Entry, error) {
	query := `
		SELECT id, web_id, web_source, web_label,
		       area_id, area_source, area_label, day_id, value
		FROM entries WHERE 1=1`
	var args []any

	if filter.WebID != "" {
		query += " AND web_id = ?"
		args = append(args, filter.WebID)
	}
	if filter.Area != "" {
		query += " AND (lower(area_source) = lower(?) OR lower(area_label) = lower(?))"
		args = append(args, filter.Area, filter.Area)
	}
	query += " ORDER BY day_id DESC, area_source ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		var value sql.NullInt64
		err := rows.Scan(&entry.ID, &entry.WebID, &entry.WebSource, &entry.WebLabel,
			&entry.AreaID, &entry.AreaSource, &entry.AreaLabel, &entry.DayID, &value)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if value.Valid {
			v := value.Int64 == 1
			entry.Value = &v
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// CountEntries returns the number of persisted entries, optionally scoped to
// one source.
func (db *DB) CountEntries(webID string) (int, error) {
	query := "SELECT COUNT(*) FROM entries"
	var args []any
	if webID != "" {
		query += " WHERE web_id = ?"
		args = append(args, webID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
