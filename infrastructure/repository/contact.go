package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const contactsTable = "contacts"

type ContactRepository interface {
	CreateContact(contact *domain.Contact) (*domain.Contact, error)
	UpdateContact(contact *domain.Contact) error
	GetContactByID(id string) (*domain.Contact, error)
	ListContacts(filters *domain.ContactFilters) ([]*domain.Contact, error)
	ListInactiveBefore(cutoff time.Time, limit int) ([]*domain.Contact, error)
	CountInactiveBefore(cutoff time.Time) (int, error)
	AnonymizeContact(id string) error
	DeleteContact(id string) error
	TouchContact(id string, at time.Time) error
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{conn: conn}
}

var contactColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "company_id",
	"owner_id", "source", "anonymized", "created_at", "updated_at", "last_touch",
}

func (r *contactRepository) CreateContact(contact *domain.Contact) (*domain.Contact, error) {
	queryBuilder := squirrel.
		Insert(contactsTable).
		Columns("id", "first_name", "last_name", "email", "phone", "company_id", "owner_id", "source").
		Values(
			contact.ID, contact.FirstName, contact.LastName, contact.Email,
			contact.Phone, contact.CompanyID, contact.OwnerID, contact.Source,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(contactSQL, contactArgs...).Scan(&contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir contato: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) UpdateContact(contact *domain.Contact) error {
	queryBuilder := squirrel.
		Update(contactsTable).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone", contact.Phone).
		Set("company_id", contact.CompanyID).
		Set("owner_id", contact.OwnerID).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": contact.ID}).
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(contactSQL, contactArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar contato: %w", err)
	}

	return nil
}

func (r *contactRepository) GetContactByID(id string) (*domain.Contact, error) {
	query, args, err := squirrel.
		Select(contactColumns...).
		From(contactsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	contact := &domain.Contact{}
	err = r.conn.QueryRow(query, args...).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
		&contact.Phone, &contact.CompanyID, &contact.OwnerID, &contact.Source,
		&contact.Anonymized, &contact.CreatedAt, &contact.UpdatedAt, &contact.LastTouch,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear contato: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(filters *domain.ContactFilters) ([]*domain.Contact, error) {
	queryBuilder := squirrel.
		Select(contactColumns...).
		From(contactsTable).
		OrderBy("first_name ASC, last_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CompanyID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"company_id": *filters.CompanyID})
		}
		if filters.OwnerID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"owner_id": *filters.OwnerID})
		}
		if filters.Search != nil && *filters.Search != "" {
			pattern := "%" + *filters.Search + "%"
			queryBuilder = queryBuilder.Where(squirrel.Or{
				squirrel.ILike{"first_name": pattern},
				squirrel.ILike{"last_name": pattern},
				squirrel.ILike{"email": pattern},
			})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryContacts(query, args)
}

// ListInactiveBefore retorna contatos ainda não anonimizados sem interação
// desde o corte, limitado ao teto por execução da retenção
func (r *contactRepository) ListInactiveBefore(cutoff time.Time, limit int) ([]*domain.Contact, error) {
	query, args, err := squirrel.
		Select(contactColumns...).
		From(contactsTable).
		Where(squirrel.Eq{"anonymized": false}).
		Where(squirrel.Lt{"updated_at": cutoff}).
		OrderBy("updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryContacts(query, args)
}

func (r *contactRepository) CountInactiveBefore(cutoff time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(contactsTable).
		Where(squirrel.Eq{"anonymized": false}).
		Where(squirrel.Lt{"updated_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar contatos: %w", err)
	}

	return count, nil
}

// AnonymizeContact remove os dados pessoais do contato preservando a linha
// para integridade referencial
func (r *contactRepository) AnonymizeContact(id string) error {
	queryBuilder := squirrel.
		Update(contactsTable).
		Set("first_name", "Anonimizado").
		Set("last_name", "").
		Set("email", nil).
		Set("phone", nil).
		Set("anonymized", true).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de anonimização: %w", err)
	}

	_, err = r.conn.Exec(contactSQL, contactArgs...)
	if err != nil {
		return fmt.Errorf("erro ao anonimizar contato: %w", err)
	}

	return nil
}

func (r *contactRepository) DeleteContact(id string) error {
	query, args, err := squirrel.
		Delete(contactsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir contato: %w", err)
	}

	return nil
}

// TouchContact atualiza o momento da última interação com o contato
func (r *contactRepository) TouchContact(id string, at time.Time) error {
	query, args, err := squirrel.
		Update(contactsTable).
		Set("last_touch", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar última interação: %w", err)
	}

	return nil
}

func (r *contactRepository) queryContacts(query string, args []interface{}) ([]*domain.Contact, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact := &domain.Contact{}
		err := rows.Scan(
			&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
			&contact.Phone, &contact.CompanyID, &contact.OwnerID, &contact.Source,
			&contact.Anonymized, &contact.CreatedAt, &contact.UpdatedAt, &contact.LastTouch,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear contato: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contacts, nil
}
