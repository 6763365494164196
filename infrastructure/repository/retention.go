package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/lib/pq"
)

const (
	retentionPoliciesTable = "retention_policies"
	retentionRunsTable     = "retention_runs"
	retentionAuditTable    = "retention_audit"
)

type RetentionRepository interface {
	ListActivePolicies() ([]*domain.RetentionPolicy, error)
	UpsertPolicy(policy *domain.RetentionPolicy) error
	InsertRun(run *domain.RetentionRun) (*domain.RetentionRun, error)
	ListRecentRuns(limit int) ([]*domain.RetentionRun, error)
	InsertAuditEntry(entry *domain.RetentionAuditEntry) error
}

type retentionRepository struct {
	conn *postgres.Connection
}

func NewRetentionRepository(conn *postgres.Connection) RetentionRepository {
	return &retentionRepository{conn: conn}
}

func (r *retentionRepository) ListActivePolicies() ([]*domain.RetentionPolicy, error) {
	query, args, err := squirrel.
		Select("id", "name", "entity_type", "retention_days", "action", "active", "created_at").
		From(retentionPoliciesTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	policies := make([]*domain.RetentionPolicy, 0)
	for rows.Next() {
		policy := &domain.RetentionPolicy{}
		err := rows.Scan(
			&policy.ID, &policy.Name, &policy.EntityType, &policy.RetentionDays,
			&policy.Action, &policy.Active, &policy.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear política: %w", err)
		}
		policies = append(policies, policy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return policies, nil
}

func (r *retentionRepository) UpsertPolicy(policy *domain.RetentionPolicy) error {
	queryBuilder := squirrel.
		Insert(retentionPoliciesTable).
		Columns("id", "name", "entity_type", "retention_days", "action", "active").
		Values(policy.ID, policy.Name, policy.EntityType, policy.RetentionDays, policy.Action, policy.Active).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			retention_days = EXCLUDED.retention_days,
			action = EXCLUDED.action,
			active = EXCLUDED.active`).
		PlaceholderFormat(squirrel.Dollar)

	policySQL, policyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	_, err = r.conn.Exec(policySQL, policyArgs...)
	if err != nil {
		return fmt.Errorf("erro ao gravar política de retenção: %w", err)
	}

	return nil
}

// InsertRun grava o relatório de uma execução de política; a lista de erros
// vai como array de texto
func (r *retentionRepository) InsertRun(run *domain.RetentionRun) (*domain.RetentionRun, error) {
	queryBuilder := squirrel.
		Insert(retentionRunsTable).
		Columns("policy_id", "started_at", "finished_at", "status", "matched", "processed", "failed", "skipped", "errors").
		Values(
			run.PolicyID, run.StartedAt, run.FinishedAt, run.Status,
			run.Matched, run.Processed, run.Failed, run.Skipped,
			pq.Array(run.Errors),
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	runSQL, runArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(runSQL, runArgs...).Scan(&run.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir execução de retenção: %w", err)
	}

	return run, nil
}

func (r *retentionRepository) ListRecentRuns(limit int) ([]*domain.RetentionRun, error) {
	query, args, err := squirrel.
		Select("id", "policy_id", "started_at", "finished_at", "status", "matched", "processed", "failed", "skipped", "errors").
		From(retentionRunsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.RetentionRun, 0)
	for rows.Next() {
		run := &domain.RetentionRun{}
		err := rows.Scan(
			&run.ID, &run.PolicyID, &run.StartedAt, &run.FinishedAt, &run.Status,
			&run.Matched, &run.Processed, &run.Failed, &run.Skipped,
			pq.Array(&run.Errors),
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func (r *retentionRepository) InsertAuditEntry(entry *domain.RetentionAuditEntry) error {
	queryBuilder := squirrel.
		Insert(retentionAuditTable).
		Columns("policy_id", "entity_type", "entity_id", "action", "executed_at").
		Values(entry.PolicyID, entry.EntityType, entry.EntityID, entry.Action, entry.ExecutedAt).
		PlaceholderFormat(squirrel.Dollar)

	entrySQL, entryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(entrySQL, entryArgs...)
	if err != nil {
		return fmt.Errorf("erro ao inserir entrada de auditoria: %w", err)
	}

	return nil
}
