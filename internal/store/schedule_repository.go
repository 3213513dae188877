// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/models"
)

const (
	schedulesTable = "schedules"

	colScheduleID = "schedule_id"
	colPosition   = "position"
	colDocument   = "document"
	colUpdatedAt  = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type scheduleRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

// NewScheduleRepository returns the SQLite implementation of
// [ScheduleRepository].
func NewScheduleRepository(db *DB, logger *logger.Logger) ScheduleRepository {
	return &scheduleRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *scheduleRepository) ReplaceAll(ctx context.Context, schedules []models.Schedule) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace schedules: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteAllSchedules()); err != nil {
		log.Err(err).Str("func", "scheduleRepository.ReplaceAll").Msg("failed to clear cached schedules")
		return fmt.Errorf("failed to clear cached schedules: %w", err)
	}

	now := r.now().UTC()
	keys := make(map[string]struct{}, len(schedules))
	for i, schedule := range schedules {
		key := uniqueCacheKey(keys, schedule.ID(), i)
		query, args, buildErr := insertSchedule(key, i, schedule, now)
		if buildErr != nil {
			err = buildErr
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "scheduleRepository.ReplaceAll").
				Str("schedule_id", schedule.ID()).
				Msg("failed to cache schedule")
			return fmt.Errorf("failed to cache schedule (schedule_id=%s): %w", schedule.ID(), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace schedules: %w", err)
	}
	return nil
}

func (r *scheduleRepository) Upsert(ctx context.Context, scheduleID string, schedule models.Schedule) error {
	log := logger.FromContext(ctx)

	query, args, err := upsertSchedule(scheduleID, schedule, r.now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "scheduleRepository.Upsert").
			Str("schedule_id", scheduleID).
			Msg("failed to upsert schedule")
		return fmt.Errorf("failed to upsert schedule (schedule_id=%s): %w", scheduleID, err)
	}
	return nil
}

func (r *scheduleRepository) GetAll(ctx context.Context) ([]models.Schedule, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(colDocument).
		From(schedulesTable).
		OrderBy(colPosition).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select schedules: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "scheduleRepository.GetAll").Msg("failed to query cached schedules")
		return nil, fmt.Errorf("failed to query cached schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}

		schedule, err := decodeSchedule(raw)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "scheduleRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) Get(ctx context.Context, scheduleID string) (models.Schedule, error) {
	query, args, err := psql.Select(colDocument).
		From(schedulesTable).
		Where(sq.Eq{colScheduleID: scheduleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select schedule: %w", err)
	}

	var raw string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to query schedule (schedule_id=%s): %w", scheduleID, err)
	}

	return decodeSchedule(raw)
}

func deleteAllSchedules() string {
	query, _, _ := psql.Delete(schedulesTable).ToSql()
	return query
}

func insertSchedule(scheduleID string, position int, schedule models.Schedule, now time.Time) (string, []any, error) {
	doc, err := json.Marshal(schedule)
	if err != nil {
		return "", nil, fmt.Errorf("encode schedule %s: %w", scheduleID, err)
	}

	return psql.Insert(schedulesTable).
		Columns(colScheduleID, colPosition, colDocument, colUpdatedAt).
		Values(scheduleID, position, string(doc), now).
		ToSql()
}

func upsertSchedule(scheduleID string, schedule models.Schedule, now time.Time) (string, []any, error) {
	doc, err := json.Marshal(schedule)
	if err != nil {
		return "", nil, fmt.Errorf("encode schedule %s: %w", scheduleID, err)
	}

	return psql.Insert(schedulesTable).
		Columns(colScheduleID, colPosition, colDocument, colUpdatedAt).
		Values(
			scheduleID,
			sq.Expr("(SELECT COALESCE(MAX(" + colPosition + "), -1) + 1 FROM " + schedulesTable + ")"),
			string(doc),
			now,
		).
		Suffix("ON CONFLICT(" + colScheduleID + ") DO UPDATE SET " +
			colDocument + " = excluded." + colDocument + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func decodeSchedule(raw string) (models.Schedule, error) {
	var schedule models.Schedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return nil, fmt.Errorf("failed to decode cached schedule: %w", err)
	}
	return schedule, nil
}

// uniqueCacheKey returns a key not yet in taken and records it. Repeated ids
// (1 and "1" both read as "1") fall back to position keys.
func uniqueCacheKey(taken map[string]struct{}, scheduleID string, position int) string {
	key := cacheKey(scheduleID, position)
	for n := position; ; n++ {
		if _, dup := taken[key]; !dup {
			break
		}
		key = cacheKey("", n)
	}
	taken[key] = struct{}{}
	return key
}

// cacheKey falls back to the list position for schedules without an id.
func cacheKey(scheduleID string, position int) string {
	if scheduleID != "" {
		return scheduleID
	}
	return "#" + strconv.Itoa(position)
}
