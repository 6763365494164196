package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const forecastsTable = "forecasts"

type ForecastRepository interface {
	CreateForecast(forecast *domain.Forecast) (*domain.Forecast, error)
	GetForecastByID(id string) (*domain.Forecast, error)
	ListForecasts() ([]*domain.Forecast, error)
	UpdateAggregates(forecast *domain.Forecast) error
	ListClosedForecasts(before time.Time, limit int) ([]*domain.Forecast, error)
}

type forecastRepository struct {
	conn *postgres.Connection
}

func NewForecastRepository(conn *postgres.Connection) ForecastRepository {
	return &forecastRepository{conn: conn}
}

var forecastColumns = []string{
	"id", "name", "period", "start_date", "end_date", "pipeline_id",
	"target_revenue", "committed", "best_case", "pipeline", "closed",
	"predicted_revenue", "confidence", "last_calculated_at", "created_at", "updated_at",
}

func (r *forecastRepository) CreateForecast(forecast *domain.Forecast) (*domain.Forecast, error) {
	queryBuilder := squirrel.
		Insert(forecastsTable).
		Columns("id", "name", "period", "start_date", "end_date", "pipeline_id", "target_revenue").
		Values(
			forecast.ID, forecast.Name, forecast.Period, forecast.StartDate,
			forecast.EndDate, forecast.PipelineID, forecast.TargetRevenue,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	forecastSQL, forecastArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(forecastSQL, forecastArgs...).Scan(&forecast.CreatedAt, &forecast.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir previsão: %w", err)
	}

	return forecast, nil
}

func (r *forecastRepository) GetForecastByID(id string) (*domain.Forecast, error) {
	query, args, err := squirrel.
		Select(forecastColumns...).
		From(forecastsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	forecast, err := scanForecastRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
	}

	return forecast, nil
}

func (r *forecastRepository) ListForecasts() ([]*domain.Forecast, error) {
	query, args, err := squirrel.
		Select(forecastColumns...).
		From(forecastsTable).
		OrderBy("start_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryForecasts(query, args)
}

// UpdateAggregates grava os campos agregados recalculados e o momento do
// cálculo
func (r *forecastRepository) UpdateAggregates(forecast *domain.Forecast) error {
	queryBuilder := squirrel.
		Update(forecastsTable).
		Set("committed", forecast.Committed).
		Set("best_case", forecast.BestCase).
		Set("pipeline", forecast.Pipeline).
		Set("closed", forecast.Closed).
		Set("predicted_revenue", forecast.PredictedRevenue).
		Set("confidence", forecast.Confidence).
		Set("last_calculated_at", forecast.LastCalculatedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": forecast.ID}).
		PlaceholderFormat(squirrel.Dollar)

	forecastSQL, forecastArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(forecastSQL, forecastArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar agregados da previsão: %w", err)
	}

	return nil
}

// ListClosedForecasts retorna as previsões mais recentes cujo período já
// terminou, para o relatório de acurácia histórica
func (r *forecastRepository) ListClosedForecasts(before time.Time, limit int) ([]*domain.Forecast, error) {
	query, args, err := squirrel.
		Select(forecastColumns...).
		From(forecastsTable).
		Where(squirrel.Lt{"end_date": before}).
		OrderBy("end_date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryForecasts(query, args)
}

func (r *forecastRepository) queryForecasts(query string, args []interface{}) ([]*domain.Forecast, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	forecasts := make([]*domain.Forecast, 0)
	for rows.Next() {
		forecast := &domain.Forecast{}
		err := rows.Scan(
			&forecast.ID,
			&forecast.Name,
			&forecast.Period,
			&forecast.StartDate,
			&forecast.EndDate,
			&forecast.PipelineID,
			&forecast.TargetRevenue,
			&forecast.Committed,
			&forecast.BestCase,
			&forecast.Pipeline,
			&forecast.Closed,
			&forecast.PredictedRevenue,
			&forecast.Confidence,
			&forecast.LastCalculatedAt,
			&forecast.CreatedAt,
			&forecast.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
		}
		forecasts = append(forecasts, forecast)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forecasts, nil
}

func scanForecastRow(row *sql.Row) (*domain.Forecast, error) {
	forecast := &domain.Forecast{}
	err := row.Scan(
		&forecast.ID,
		&forecast.Name,
		&forecast.Period,
		&forecast.StartDate,
		&forecast.EndDate,
		&forecast.PipelineID,
		&forecast.TargetRevenue,
		&forecast.Committed,
		&forecast.BestCase,
		&forecast.Pipeline,
		&forecast.Closed,
		&forecast.PredictedRevenue,
		&forecast.Confidence,
		&forecast.LastCalculatedAt,
		&forecast.CreatedAt,
		&forecast.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return forecast, nil
}
