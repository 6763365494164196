package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const companiesTable = "companies"

type CompanyRepository interface {
	CreateCompany(company *domain.Company) (*domain.Company, error)
	UpdateCompany(company *domain.Company) error
	GetCompanyByID(id string) (*domain.Company, error)
	GetCompanyByDomain(companyDomain string) (*domain.Company, error)
	ListCompanies() ([]*domain.Company, error)
	DeleteCompany(id string) error
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{conn: conn}
}

var companyColumns = []string{
	"id", "name", "domain", "industry", "owner_id", "created_at", "updated_at",
}

func (r *companyRepository) CreateCompany(company *domain.Company) (*domain.Company, error) {
	queryBuilder := squirrel.
		Insert(companiesTable).
		Columns("id", "name", "domain", "industry", "owner_id").
		Values(company.ID, company.Name, company.Domain, company.Industry, company.OwnerID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	companySQL, companyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(companySQL, companyArgs...).Scan(&company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir empresa: %w", err)
	}

	return company, nil
}

func (r *companyRepository) UpdateCompany(company *domain.Company) error {
	queryBuilder := squirrel.
		Update(companiesTable).
		Set("name", company.Name).
		Set("domain", company.Domain).
		Set("industry", company.Industry).
		Set("owner_id", company.OwnerID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": company.ID}).
		PlaceholderFormat(squirrel.Dollar)

	companySQL, companyArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(companySQL, companyArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar empresa: %w", err)
	}

	return nil
}

func (r *companyRepository) GetCompanyByID(id string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanCompany(query, args)
}

// GetCompanyByDomain localiza a empresa pelo domínio de e-mail, usado no
// enriquecimento de submissões de formulário
func (r *companyRepository) GetCompanyByDomain(companyDomain string) (*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		Where(squirrel.Eq{"domain": companyDomain}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.scanCompany(query, args)
}

func (r *companyRepository) ListCompanies() ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select(companyColumns...).
		From(companiesTable).
		OrderBy("name ASC").
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

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company := &domain.Company{}
		err := rows.Scan(
			&company.ID, &company.Name, &company.Domain, &company.Industry,
			&company.OwnerID, &company.CreatedAt, &company.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return companies, nil
}

func (r *companyRepository) DeleteCompany(id string) error {
	query, args, err := squirrel.
		Delete(companiesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir empresa: %w", err)
	}

	return nil
}

func (r *companyRepository) scanCompany(query string, args []interface{}) (*domain.Company, error) {
	company := &domain.Company{}
	err := r.conn.QueryRow(query, args...).Scan(
		&company.ID, &company.Name, &company.Domain, &company.Industry,
		&company.OwnerID, &company.CreatedAt, &company.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	return company, nil
}
