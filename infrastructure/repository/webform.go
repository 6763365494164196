package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const webFormsTable = "web_forms"

type WebFormRepository interface {
	CreateForm(form *domain.WebForm) (*domain.WebForm, error)
	GetFormByToken(token string) (*domain.WebForm, error)
	ListForms() ([]*domain.WebForm, error)
	DeactivateForm(id string) error
}

type webFormRepository struct {
	conn *postgres.Connection
}

func NewWebFormRepository(conn *postgres.Connection) WebFormRepository {
	return &webFormRepository{conn: conn}
}

func (r *webFormRepository) CreateForm(form *domain.WebForm) (*domain.WebForm, error) {
	queryBuilder := squirrel.
		Insert(webFormsTable).
		Columns("id", "token", "name", "active").
		Values(form.ID, form.Token, form.Name, form.Active).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	formSQL, formArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(formSQL, formArgs...).Scan(&form.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir formulário: %w", err)
	}

	return form, nil
}

// GetFormByToken resolve o formulário pelo token público da URL de captura
func (r *webFormRepository) GetFormByToken(token string) (*domain.WebForm, error) {
	query, args, err := squirrel.
		Select("id", "token", "name", "active", "created_at").
		From(webFormsTable).
		Where(squirrel.Eq{"token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	form := &domain.WebForm{}
	err = r.conn.QueryRow(query, args...).Scan(
		&form.ID, &form.Token, &form.Name, &form.Active, &form.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear formulário: %w", err)
	}

	return form, nil
}

func (r *webFormRepository) ListForms() ([]*domain.WebForm, error) {
	query, args, err := squirrel.
		Select("id", "token", "name", "active", "created_at").
		From(webFormsTable).
		OrderBy("created_at DESC").
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

	forms := make([]*domain.WebForm, 0)
	for rows.Next() {
		form := &domain.WebForm{}
		err := rows.Scan(&form.ID, &form.Token, &form.Name, &form.Active, &form.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear formulário: %w", err)
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return forms, nil
}

func (r *webFormRepository) DeactivateForm(id string) error {
	query, args, err := squirrel.
		Update(webFormsTable).
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar formulário: %w", err)
	}

	return nil
}
