// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const dealsTable = "deals"

type DealRepository interface {
	CreateDeal(deal *domain.Deal) (*domain.Deal, error)
	UpdateDeal(deal *domain.Deal) error
	GetDealByID(id string) (*domain.Deal, error)
	ListDeals(filters *domain.DealFilters) ([]*domain.Deal, error)
	ListOpenDealsInWindow(start, end time.Time, pipelineID *string) ([]*domain.Deal, error)
	SumWonAmountInWindow(start, end time.Time, pipelineID *string) (float64, error)
	SumClosedAmountInWindow(status domain.DealStatus, start, end time.Time) (float64, error)
	GetStageSummaries() ([]domain.StageSummary, error)
	DeleteDeal(id string) error
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{conn: conn}
}

var dealColumns = []string{
	"id", "title", "company_id", "contact_id", "pipeline_id", "stage_id",
	"amount", "probability", "status", "expected_close_date",
	"actual_close_date", "stage_changed_at", "owner_id", "created_at", "updated_at",
}

func (r *dealRepository) CreateDeal(deal *domain.Deal) (*domain.Deal, error) {
	queryBuilder := squirrel.
		Insert(dealsTable).
		Columns(
			"id", "title", "company_id", "contact_id", "pipeline_id", "stage_id",
			"amount", "probability", "status", "expected_close_date", "stage_changed_at", "owner_id",
		).
		Values(
			deal.ID, deal.Title, deal.CompanyID, deal.ContactID, deal.PipelineID, deal.StageID,
			deal.Amount, deal.Probability, deal.Status, deal.ExpectedCloseDate, deal.StageChangedAt, deal.OwnerID,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(dealSQL, dealArgs...).Scan(&deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir negócio: %w", err)
	}

	return deal, nil
}

func (r *dealRepository) UpdateDeal(deal *domain.Deal) error {
	queryBuilder := squirrel.
		Update(dealsTable).
		Set("title", deal.Title).
		Set("company_id", deal.CompanyID).
		Set("contact_id", deal.ContactID).
		Set("stage_id", deal.StageID).
		Set("amount", deal.Amount).
		Set("probability", deal.Probability).
		Set("status", deal.Status).
		Set("expected_close_date", deal.ExpectedCloseDate).
		Set("actual_close_date", deal.ActualCloseDate).
		Set("stage_changed_at", deal.StageChangedAt).
		Set("owner_id", deal.OwnerID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": deal.ID}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(dealSQL, dealArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
	}

	return nil
}

func (r *dealRepository) GetDealByID(id string) (*domain.Deal, error) {
	query, args, err := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	deal, err := scanDealRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
	}

	return deal, nil
}

func (r *dealRepository) ListDeals(filters *domain.DealFilters) ([]*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if len(filters.Status) > 0 {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"status": filters.Status})
		}
		if filters.PipelineID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"pipeline_id": *filters.PipelineID})
		}
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"expected_close_date": *filters.StartDate})
		}
		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"expected_close_date": *filters.EndDate})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDeals(query, args)
}

// ListOpenDealsInWindow retorna os negócios abertos com data prevista de
// fechamento dentro da janela. Negócios sem data prevista ficam de fora.
func (r *dealRepository) ListOpenDealsInWindow(start, end time.Time, pipelineID *string) ([]*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns...).
		From(dealsTable).
		Where(squirrel.Eq{"status": domain.DealStatusOpen}).
		Where(squirrel.NotEq{"expected_close_date": nil}).
		Where(squirrel.GtOrEq{"expected_close_date": start}).
		Where(squirrel.LtOrEq{"expected_close_date": end}).
		OrderBy("expected_close_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if pipelineID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"pipeline_id": *pipelineID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryDeals(query, args)
}

// SumWonAmountInWindow soma os valores de negócios ganhos com fechamento real
// dentro da janela
func (r *dealRepository) SumWonAmountInWindow(start, end time.Time, pipelineID *string) (float64, error) {
	queryBuilder := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"status": domain.DealStatusWon}).
		Where(squirrel.GtOrEq{"actual_close_date": start}).
		Where(squirrel.LtOrEq{"actual_close_date": end}).
		PlaceholderFormat(squirrel.Dollar)

	if pipelineID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"pipeline_id": *pipelineID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar negócios ganhos: %w", err)
	}

	return total, nil
}

// SumClosedAmountInWindow soma os valores de negócios encerrados com o status
// informado e fechamento real dentro da janela, em todos os funis
func (r *dealRepository) SumClosedAmountInWindow(status domain.DealStatus, start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"status": status}).
		Where(squirrel.GtOrEq{"actual_close_date": start}).
		Where(squirrel.LtOrEq{"actual_close_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar negócios encerrados: %w", err)
	}

	return total, nil
}

// GetStageSummaries agrega os negócios abertos por estágio para o painel
func (r *dealRepository) GetStageSummaries() ([]domain.StageSummary, error) {
	query, args, err := squirrel.
		Select("stage_id", "COUNT(*)", "COALESCE(SUM(amount), 0)").
		From(dealsTable).
		Where(squirrel.Eq{"status": domain.DealStatusOpen}).
		GroupBy("stage_id").
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

	summaries := make([]domain.StageSummary, 0)
	for rows.Next() {
		var summary domain.StageSummary
		if err := rows.Scan(&summary.StageID, &summary.DealCount, &summary.TotalValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo do estágio: %w", err)
		}

		if stage, ok := domain.StageByID(summary.StageID); ok {
			summary.StageName = stage.Name
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dealRepository) DeleteDeal(id string) error {
	query, args, err := squirrel.
		Delete(dealsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir negócio: %w", err)
	}

	return nil
}

func (r *dealRepository) queryDeals(query string, args []interface{}) ([]*domain.Deal, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func scanDeal(rows *sql.Rows) (*domain.Deal, error) {
	deal := &domain.Deal{}
	err := rows.Scan(
		&deal.ID,
		&deal.Title,
		&deal.CompanyID,
		&deal.ContactID,
		&deal.PipelineID,
		&deal.StageID,
		&deal.Amount,
		&deal.Probability,
		&deal.Status,
		&deal.ExpectedCloseDate,
		&deal.ActualCloseDate,
		&deal.StageChangedAt,
		&deal.OwnerID,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return deal, nil
}

func scanDealRow(row *sql.Row) (*domain.Deal, error) {
	deal := &domain.Deal{}
	err := row.Scan(
		&deal.ID,
		&deal.Title,
		&deal.CompanyID,
		&deal.ContactID,
		&deal.PipelineID,
		&deal.StageID,
		&deal.Amount,
		&deal.Probability,
		&deal.Status,
		&deal.ExpectedCloseDate,
		&deal.ActualCloseDate,
		&deal.StageChangedAt,
		&deal.OwnerID,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return deal, nil
}
