package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const activitiesTable = "activities"

type ActivityRepository interface {
	CreateActivity(activity *domain.Activity) (*domain.Activity, error)
	GetActivityByID(id string) (*domain.Activity, error)
	ListActivities(filters *domain.ActivityFilters) ([]*domain.Activity, error)
	ListOlderThan(cutoff time.Time, limit int) ([]*domain.Activity, error)
	CountOlderThan(cutoff time.Time) (int, error)
	CompleteActivity(id string, at time.Time) error
	DeleteActivity(id string) error
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{conn: conn}
}

var activityColumns = []string{
	"id", "type", "subject", "body", "contact_id", "company_id", "deal_id",
	"owner_id", "due_at", "completed_at", "created_at", "updated_at",
}

func (r *activityRepository) CreateActivity(activity *domain.Activity) (*domain.Activity, error) {
	queryBuilder := squirrel.
		Insert(activitiesTable).
		Columns("id", "type", "subject", "body", "contact_id", "company_id", "deal_id", "owner_id", "due_at").
		Values(
			activity.ID, activity.Type, activity.Subject, activity.Body,
			activity.ContactID, activity.CompanyID, activity.DealID,
			activity.OwnerID, activity.DueAt,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	activitySQL, activityArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(activitySQL, activityArgs...).Scan(&activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir atividade: %w", err)
	}

	return activity, nil
}

func (r *activityRepository) GetActivityByID(id string) (*domain.Activity, error) {
	query, args, err := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	activity := &domain.Activity{}
	err = r.conn.QueryRow(query, args...).Scan(
		&activity.ID, &activity.Type, &activity.Subject, &activity.Body,
		&activity.ContactID, &activity.CompanyID, &activity.DealID,
		&activity.OwnerID, &activity.DueAt, &activity.CompletedAt,
		&activity.CreatedAt, &activity.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
	}

	return activity, nil
}

func (r *activityRepository) ListActivities(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	queryBuilder := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.ContactID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"contact_id": *filters.ContactID})
		}
		if filters.DealID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"deal_id": *filters.DealID})
		}
		if filters.CompanyID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": *filters.CompanyID})
		}
		if filters.Limit > 0 {
			queryBuilder = queryBuilder.Limit(uint64(filters.Limit))
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryActivities(query, args)
}

// ListOlderThan retorna as atividades mais antigas que o corte, da mais antiga
// para a mais recente, limitado ao teto por execução da retenção
func (r *activityRepository) ListOlderThan(cutoff time.Time, limit int) ([]*domain.Activity, error) {
	query, args, err := squirrel.
		Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryActivities(query, args)
}

func (r *activityRepository) CountOlderThan(cutoff time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(activitiesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar atividades: %w", err)
	}

	return count, nil
}

func (r *activityRepository) CompleteActivity(id string, at time.Time) error {
	query, args, err := squirrel.
		Update(activitiesTable).
		Set("completed_at", at).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao concluir atividade: %w", err)
	}

	return nil
}

func (r *activityRepository) DeleteActivity(id string) error {
	query, args, err := squirrel.
		Delete(activitiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir atividade: %w", err)
	}

	return nil
}

func (r *activityRepository) queryActivities(query string, args []interface{}) ([]*domain.Activity, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity := &domain.Activity{}
		err := rows.Scan(
			&activity.ID, &activity.Type, &activity.Subject, &activity.Body,
			&activity.ContactID, &activity.CompanyID, &activity.DealID,
			&activity.OwnerID, &activity.DueAt, &activity.CompletedAt,
			&activity.CreatedAt, &activity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return activities, nil
}
