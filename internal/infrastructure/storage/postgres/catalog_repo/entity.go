package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"almoxarifado/internal/core/apperror"
	"almoxarifado/internal/domain/catalogs/entity"
	"almoxarifado/internal/infrastructure/storage/postgres"
)

// EntityRepo implements entity.Repository.
type EntityRepo struct {
	baseRepo
}

// NewEntityRepo creates a new entity repository.
func NewEntityRepo(txm *postgres.TxManager) *EntityRepo {
	return &EntityRepo{baseRepo{txm: txm}}
}

// List returns all entities ordered by name.
func (r *EntityRepo) List(ctx context.Context) ([]entity.Entity, error) {
	q := r.builder().
		Select("id", "nome", "status").
		From(entityTable).
		OrderBy("nome ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []entity.Entity
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}
	return items, nil
}

// GetByID returns one entity by ID.
func (r *EntityRepo) GetByID(ctx context.Context, id int64) (entity.Entity, error) {
	var e entity.Entity

	q := r.builder().
		Select("id", "nome", "status").
		From(entityTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return e, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), &e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return e, apperror.NewNotFound("entity", id)
		}
		return e, apperror.NewDatabase(err)
	}
	return e, nil
}

// Exists reports whether the entity exists.
func (r *EntityRepo) Exists(ctx context.Context, id int64) (bool, error) {
	q := r.builder().
		Select("1").
		From(entityTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperror.NewDatabase(err)
	}
	return true, nil
}
