// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fit-tracker/models"
)

const (
	createUser = `INSERT INTO users (id, username, created_at)
    VALUES ($1, $2, $3)
    RETURNING id, username, created_at;`

	findUserByID = `SELECT id, username, created_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, username, created_at
    FROM users
    ORDER BY created_at, id;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	saveExercise = `INSERT INTO exercises (id, user_id, description, duration, date, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, description, duration, date, created_at;`

	countExercisesByUser = `SELECT COUNT(*) FROM exercises WHERE user_id = $1;`
)

// buildFindExercisesQuery turns an immutable [models.LogFilter] into a
// parameterised SELECT. The owning-user bound is always present; date bounds
// are added only when set on the filter (both inclusive). Results follow
// insertion order; a positive limit truncates them, a non-positive limit
// leaves the query unbounded.
func buildFindExercisesQuery(ctx context.Context, filter models.LogFilter, limit int) (string, []any, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "user_id", "description", "duration", "date", "created_at").
		From("exercises").
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.To})
	}

	builder = builder.OrderBy("created_at", "id")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
