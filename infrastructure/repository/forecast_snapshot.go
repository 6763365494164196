package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const forecastSnapshotsTable = "forecast_snapshots"

type ForecastSnapshotRepository interface {
	InsertSnapshot(snapshot *domain.ForecastSnapshot) (*domain.ForecastSnapshot, error)
	ListSnapshotsByForecastID(forecastID string, limit int) ([]*domain.ForecastSnapshot, error)
}

type forecastSnapshotRepository struct {
	conn *postgres.Connection
}

func NewForecastSnapshotRepository(conn *postgres.Connection) ForecastSnapshotRepository {
	return &forecastSnapshotRepository{conn: conn}
}

// InsertSnapshot grava uma linha imutável de snapshot; a lista de previsões
// por negócio vai serializada em JSONB
func (r *forecastSnapshotRepository) InsertSnapshot(snapshot *domain.ForecastSnapshot) (*domain.ForecastSnapshot, error) {
	predictions, err := json.Marshal(snapshot.Predictions)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar previsões do snapshot: %w", err)
	}

	queryBuilder := squirrel.
		Insert(forecastSnapshotsTable).
		Columns(
			"forecast_id", "snapshot_date", "committed", "best_case", "pipeline",
			"closed", "predicted_revenue", "confidence", "target_revenue", "predictions",
		).
		Values(
			snapshot.ForecastID, snapshot.SnapshotDate, snapshot.Committed,
			snapshot.BestCase, snapshot.Pipeline, snapshot.Closed,
			snapshot.PredictedRevenue, snapshot.Confidence, snapshot.TargetRevenue,
			predictions,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(snapshotSQL, snapshotArgs...).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	return snapshot, nil
}

// ListSnapshotsByForecastID retorna os snapshots mais recentes primeiro
func (r *forecastSnapshotRepository) ListSnapshotsByForecastID(forecastID string, limit int) ([]*domain.ForecastSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"id", "forecast_id", "snapshot_date", "committed", "best_case",
			"pipeline", "closed", "predicted_revenue", "confidence",
			"target_revenue", "predictions", "created_at",
		).
		From(forecastSnapshotsTable).
		Where(squirrel.Eq{"forecast_id": forecastID}).
		OrderBy("snapshot_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.ForecastSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.ForecastSnapshot{}
		var predictions []byte

		err := rows.Scan(
			&snapshot.ID,
			&snapshot.ForecastID,
			&snapshot.SnapshotDate,
			&snapshot.Committed,
			&snapshot.BestCase,
			&snapshot.Pipeline,
			&snapshot.Closed,
			&snapshot.PredictedRevenue,
			&snapshot.Confidence,
			&snapshot.TargetRevenue,
			&predictions,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		if len(predictions) > 0 {
			if err := json.Unmarshal(predictions, &snapshot.Predictions); err != nil {
				return nil, fmt.Errorf("erro ao desserializar previsões do snapshot: %w", err)
			}
		}

		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
