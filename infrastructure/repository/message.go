package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const messagesTable = "messages"

type MessageRepository interface {
	CreateMessage(message *domain.Message) (*domain.Message, error)
	GetMessageByID(id string) (*domain.Message, error)
	ListMessagesByContact(contactID string, limit int) ([]*domain.Message, error)
	UpdateMessageStatus(message *domain.Message) error
	ListOlderThan(cutoff time.Time, limit int) ([]*domain.Message, error)
	CountOlderThan(cutoff time.Time) (int, error)
	DeleteMessage(id string) error
	FindContactIDByPhone(phone string) (*string, error)
}

type messageRepository struct {
	conn *postgres.Connection
}

func NewMessageRepository(conn *postgres.Connection) MessageRepository {
	return &messageRepository{conn: conn}
}

var messageColumns = []string{
	"id", "contact_id", "direction", "channel", "phone_number", "body",
	"status", "provider_id", "error_message", "sent_at", "created_at",
}

func (r *messageRepository) CreateMessage(message *domain.Message) (*domain.Message, error) {
	queryBuilder := squirrel.
		Insert(messagesTable).
		Columns("id", "contact_id", "direction", "channel", "phone_number", "body", "status", "provider_id", "sent_at").
		Values(
			message.ID, message.ContactID, message.Direction, message.Channel,
			message.PhoneNumber, message.Body, message.Status, message.ProviderID,
			message.SentAt,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	messageSQL, messageArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(messageSQL, messageArgs...).Scan(&message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir mensagem: %w", err)
	}

	return message, nil
}

func (r *messageRepository) GetMessageByID(id string) (*domain.Message, error) {
	query, args, err := squirrel.
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	message := &domain.Message{}
	err = r.conn.QueryRow(query, args...).Scan(
		&message.ID, &message.ContactID, &message.Direction, &message.Channel,
		&message.PhoneNumber, &message.Body, &message.Status, &message.ProviderID,
		&message.ErrorMessage, &message.SentAt, &message.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear mensagem: %w", err)
	}

	return message, nil
}

func (r *messageRepository) ListMessagesByContact(contactID string, limit int) ([]*domain.Message, error) {
	queryBuilder := squirrel.
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Eq{"contact_id": contactID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMessages(query, args)
}

func (r *messageRepository) UpdateMessageStatus(message *domain.Message) error {
	queryBuilder := squirrel.
		Update(messagesTable).
		Set("status", message.Status).
		Set("provider_id", message.ProviderID).
		Set("error_message", message.ErrorMessage).
		Set("sent_at", message.SentAt).
		Where(squirrel.Eq{"id": message.ID}).
		PlaceholderFormat(squirrel.Dollar)

	messageSQL, messageArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(messageSQL, messageArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da mensagem: %w", err)
	}

	return nil
}

func (r *messageRepository) ListOlderThan(cutoff time.Time, limit int) ([]*domain.Message, error) {
	query, args, err := squirrel.
		Select(messageColumns...).
		From(messagesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMessages(query, args)
}

func (r *messageRepository) CountOlderThan(cutoff time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(messagesTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	return count, nil
}

func (r *messageRepository) DeleteMessage(id string) error {
	query, args, err := squirrel.
		Delete(messagesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir mensagem: %w", err)
	}

	return nil
}

// FindContactIDByPhone resolve o contato pelo telefone para mensagens
// recebidas do provedor
func (r *messageRepository) FindContactIDByPhone(phone string) (*string, error) {
	var contactID string
	err := r.conn.QueryRow("SELECT id FROM contacts WHERE phone = $1 AND anonymized = false LIMIT 1", phone).Scan(&contactID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contato pelo telefone: %w", err)
	}

	return &contactID, nil
}

func (r *messageRepository) queryMessages(query string, args []interface{}) ([]*domain.Message, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		message := &domain.Message{}
		err := rows.Scan(
			&message.ID, &message.ContactID, &message.Direction, &message.Channel,
			&message.PhoneNumber, &message.Body, &message.Status, &message.ProviderID,
			&message.ErrorMessage, &message.SentAt, &message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear mensagem: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return messages, nil
}
