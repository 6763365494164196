package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const dsrTable = "data_subject_requests"

type DSRRepository interface {
	CreateRequest(request *domain.DataSubjectRequest) (*domain.DataSubjectRequest, error)
	GetRequestByID(id string) (*domain.DataSubjectRequest, error)
	ListRequests(status *domain.DSRStatus) ([]*domain.DataSubjectRequest, error)
	ListOpenPastDue(now time.Time, limit int) ([]*domain.DataSubjectRequest, error)
	UpdateStatus(id string, status domain.DSRStatus, completedAt *time.Time) error
}

type dsrRepository struct {
	conn *postgres.Connection
}

func NewDSRRepository(conn *postgres.Connection) DSRRepository {
	return &dsrRepository{conn: conn}
}

var dsrColumns = []string{
	"id", "contact_id", "type", "status", "requested_at", "due_at", "completed_at", "notes",
}

func (r *dsrRepository) CreateRequest(request *domain.DataSubjectRequest) (*domain.DataSubjectRequest, error) {
	queryBuilder := squirrel.
		Insert(dsrTable).
		Columns("id", "contact_id", "type", "status", "requested_at", "due_at", "notes").
		Values(
			request.ID, request.ContactID, request.Type, request.Status,
			request.RequestedAt, request.DueAt, request.Notes,
		).
		PlaceholderFormat(squirrel.Dollar)

	requestSQL, requestArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(requestSQL, requestArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir solicitação de dados: %w", err)
	}

	return request, nil
}

func (r *dsrRepository) GetRequestByID(id string) (*domain.DataSubjectRequest, error) {
	query, args, err := squirrel.
		Select(dsrColumns...).
		From(dsrTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	request := &domain.DataSubjectRequest{}
	err = r.conn.QueryRow(query, args...).Scan(
		&request.ID, &request.ContactID, &request.Type, &request.Status,
		&request.RequestedAt, &request.DueAt, &request.CompletedAt, &request.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear solicitação: %w", err)
	}

	return request, nil
}

func (r *dsrRepository) ListRequests(status *domain.DSRStatus) ([]*domain.DataSubjectRequest, error) {
	queryBuilder := squirrel.
		Select(dsrColumns...).
		From(dsrTable).
		OrderBy("due_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRequests(query, args)
}

// ListOpenPastDue retorna solicitações ainda não concluídas com o prazo
// vencido, limitadas ao teto por execução
func (r *dsrRepository) ListOpenPastDue(now time.Time, limit int) ([]*domain.DataSubjectRequest, error) {
	query, args, err := squirrel.
		Select(dsrColumns...).
		From(dsrTable).
		Where(squirrel.Eq{"status": []domain.DSRStatus{domain.DSRStatusOpen, domain.DSRStatusInProgress}}).
		Where(squirrel.Lt{"due_at": now}).
		OrderBy("due_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRequests(query, args)
}

func (r *dsrRepository) UpdateStatus(id string, status domain.DSRStatus, completedAt *time.Time) error {
	queryBuilder := squirrel.
		Update(dsrTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if completedAt != nil {
		queryBuilder = queryBuilder.Set("completed_at", *completedAt)
	}

	requestSQL, requestArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(requestSQL, requestArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da solicitação: %w", err)
	}

	return nil
}

func (r *dsrRepository) queryRequests(query string, args []interface{}) ([]*domain.DataSubjectRequest, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.DataSubjectRequest, 0)
	for rows.Next() {
		request := &domain.DataSubjectRequest{}
		err := rows.Scan(
			&request.ID, &request.ContactID, &request.Type, &request.Status,
			&request.RequestedAt, &request.DueAt, &request.CompletedAt, &request.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear solicitação: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return requests, nil
}
