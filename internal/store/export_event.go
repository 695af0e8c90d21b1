package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type exportRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *exportRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *exportRepo) Append(ctx context.Context, data ExportEventData) (ExportEventRecord, error) {
	if data.RoadmapID == "" || data.Path == "" {
		return ExportEventRecord{}, errors.New("export event needs a roadmap and a path")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return ExportEventRecord{}, fmt.Errorf("next sequence: %w", err)
	}

	rec := ExportEventRecord{
		ID:         uuid.NewString(),
		Sequence:   seqNum,
		CategoryID: data.CategoryID,
		RoadmapID:  data.RoadmapID,
		Format:     data.Format,
		Path:       data.Path,
		Timestamp:  r.clock().UTC().Truncate(time.Millisecond),
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO export_events (id, sequence, category_id, roadmap_id, format, path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Sequence, rec.CategoryID, rec.RoadmapID, rec.Format, rec.Path, rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return ExportEventRecord{}, fmt.Errorf("save export event: %w", err)
	}
	return rec, nil
}

func (r *exportRepo) List(ctx context.Context, opts QueryOpts) ([]ExportEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}
	if opts.RoadmapID != "" {
		where = append(where, "roadmap_id = ?")
		args = append(args, opts.RoadmapID)
	}

	var q strings.Builder
	q.WriteString(`SELECT id, sequence, category_id, roadmap_id, format, path, created_at FROM export_events`)
	if len(where) > 0 {
		q.WriteString(" WHERE ")
		q.WriteString(strings.Join(where, " AND "))
	}
	q.WriteString(" ORDER BY sequence DESC")
	if opts.Limit > 0 {
		q.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query export events: %w", err)
	}
	defer rows.Close()

	var records []ExportEventRecord
	for rows.Next() {
		var (
			rec ExportEventRecord
			ms  int64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.CategoryID, &rec.RoadmapID, &rec.Format, &rec.Path, &ms); err != nil {
			return nil, fmt.Errorf("scan export event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ms).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query export events: %w", err)
	}
	return records, nil
}

func (r *exportRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM export_events WHERE id NOT IN (
			SELECT id FROM export_events ORDER BY sequence DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune export events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune export events: %w", err)
	}
	return n, nil
}
