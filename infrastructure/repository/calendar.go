package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
)

const (
	calendarConnectionsTable = "calendar_connections"
	calendarEventsTable      = "calendar_events"
)

type CalendarRepository interface {
	CreateConnection(connection *domain.CalendarConnection) (*domain.CalendarConnection, error)
	GetConnectionByID(id string) (*domain.CalendarConnection, error)
	ListConnections() ([]*domain.CalendarConnection, error)
	UpdateConnectionTokens(connection *domain.CalendarConnection) error
	UpdateConnectionSyncState(connection *domain.CalendarConnection) error
	DeleteConnection(id string) error
	UpsertEvent(event *domain.CalendarEvent) error
	MarkEventCancelled(connectionID, externalID string, at time.Time) error
	ListEventsByConnection(connectionID string, from, to time.Time) ([]*domain.CalendarEvent, error)
	GetEventByExternalID(connectionID, externalID string) (*domain.CalendarEvent, error)
}

type calendarRepository struct {
	conn *postgres.Connection
}

func NewCalendarRepository(conn *postgres.Connection) CalendarRepository {
	return &calendarRepository{conn: conn}
}

var calendarConnectionColumns = []string{
	"id", "user_id", "provider", "email", "access_token", "refresh_token",
	"token_expires_at", "sync_token", "status", "last_error", "last_synced_at",
	"created_at", "updated_at",
}

func (r *calendarRepository) CreateConnection(connection *domain.CalendarConnection) (*domain.CalendarConnection, error) {
	queryBuilder := squirrel.
		Insert(calendarConnectionsTable).
		Columns("id", "user_id", "provider", "email", "access_token", "refresh_token", "token_expires_at", "status").
		Values(
			connection.ID, connection.UserID, connection.Provider, connection.Email,
			connection.AccessToken, connection.RefreshToken, connection.TokenExpiresAt,
			connection.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	connectionSQL, connectionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(connectionSQL, connectionArgs...).Scan(&connection.CreatedAt, &connection.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir conexão de calendário: %w", err)
	}

	return connection, nil
}

func (r *calendarRepository) GetConnectionByID(id string) (*domain.CalendarConnection, error) {
	query, args, err := squirrel.
		Select(calendarConnectionColumns...).
		From(calendarConnectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection := &domain.CalendarConnection{}
	err = r.conn.QueryRow(query, args...).Scan(
		&connection.ID, &connection.UserID, &connection.Provider, &connection.Email,
		&connection.AccessToken, &connection.RefreshToken, &connection.TokenExpiresAt,
		&connection.SyncToken, &connection.Status, &connection.LastError,
		&connection.LastSyncedAt, &connection.CreatedAt, &connection.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	return connection, nil
}

func (r *calendarRepository) ListConnections() ([]*domain.CalendarConnection, error) {
	query, args, err := squirrel.
		Select(calendarConnectionColumns...).
		From(calendarConnectionsTable).
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

	connections := make([]*domain.CalendarConnection, 0)
	for rows.Next() {
		connection := &domain.CalendarConnection{}
		err := rows.Scan(
			&connection.ID, &connection.UserID, &connection.Provider, &connection.Email,
			&connection.AccessToken, &connection.RefreshToken, &connection.TokenExpiresAt,
			&connection.SyncToken, &connection.Status, &connection.LastError,
			&connection.LastSyncedAt, &connection.CreatedAt, &connection.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
		}
		connections = append(connections, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connections, nil
}

// UpdateConnectionTokens persiste os tokens renovados antes de qualquer uso,
// para não perder o refresh token em caso de falha no meio da sincronização
func (r *calendarRepository) UpdateConnectionTokens(connection *domain.CalendarConnection) error {
	queryBuilder := squirrel.
		Update(calendarConnectionsTable).
		Set("access_token", connection.AccessToken).
		Set("refresh_token", connection.RefreshToken).
		Set("token_expires_at", connection.TokenExpiresAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": connection.ID}).
		PlaceholderFormat(squirrel.Dollar)

	connectionSQL, connectionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(connectionSQL, connectionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar tokens da conexão: %w", err)
	}

	return nil
}

func (r *calendarRepository) UpdateConnectionSyncState(connection *domain.CalendarConnection) error {
	queryBuilder := squirrel.
		Update(calendarConnectionsTable).
		Set("sync_token", connection.SyncToken).
		Set("status", connection.Status).
		Set("last_error", connection.LastError).
		Set("last_synced_at", connection.LastSyncedAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": connection.ID}).
		PlaceholderFormat(squirrel.Dollar)

	connectionSQL, connectionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(connectionSQL, connectionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar estado de sincronização: %w", err)
	}

	return nil
}

func (r *calendarRepository) DeleteConnection(id string) error {
	query, args, err := squirrel.
		Delete(calendarConnectionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir conexão: %w", err)
	}

	return nil
}

// UpsertEvent reconcilia a cópia local do evento com a versão do provedor
func (r *calendarRepository) UpsertEvent(event *domain.CalendarEvent) error {
	queryBuilder := squirrel.
		Insert(calendarEventsTable).
		Columns(
			"id", "connection_id", "external_id", "title", "description",
			"starts_at", "ends_at", "contact_id", "deal_id", "cancelled", "synced_at",
		).
		Values(
			event.ID, event.ConnectionID, event.ExternalID, event.Title, event.Description,
			event.StartsAt, event.EndsAt, event.ContactID, event.DealID, event.Cancelled,
			event.SyncedAt,
		).
		Suffix(`ON CONFLICT (connection_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			starts_at = EXCLUDED.starts_at,
			ends_at = EXCLUDED.ends_at,
			cancelled = EXCLUDED.cancelled,
			synced_at = EXCLUDED.synced_at,
			updated_at = CURRENT_TIMESTAMP`).
		PlaceholderFormat(squirrel.Dollar)

	eventSQL, eventArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	_, err = r.conn.Exec(eventSQL, eventArgs...)
	if err != nil {
		return fmt.Errorf("erro ao gravar evento de calendário: %w", err)
	}

	return nil
}

func (r *calendarRepository) MarkEventCancelled(connectionID, externalID string, at time.Time) error {
	query, args, err := squirrel.
		Update(calendarEventsTable).
		Set("cancelled", true).
		Set("synced_at", at).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"connection_id": connectionID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao cancelar evento: %w", err)
	}

	return nil
}

func (r *calendarRepository) ListEventsByConnection(connectionID string, from, to time.Time) ([]*domain.CalendarEvent, error) {
	query, args, err := squirrel.
		Select(
			"id", "connection_id", "external_id", "title", "description",
			"starts_at", "ends_at", "contact_id", "deal_id", "cancelled",
			"synced_at", "created_at", "updated_at",
		).
		From(calendarEventsTable).
		Where(squirrel.Eq{"connection_id": connectionID, "cancelled": false}).
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.LtOrEq{"starts_at": to}).
		OrderBy("starts_at ASC").
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

	events := make([]*domain.CalendarEvent, 0)
	for rows.Next() {
		event := &domain.CalendarEvent{}
		err := rows.Scan(
			&event.ID, &event.ConnectionID, &event.ExternalID, &event.Title,
			&event.Description, &event.StartsAt, &event.EndsAt, &event.ContactID,
			&event.DealID, &event.Cancelled, &event.SyncedAt,
			&event.CreatedAt, &event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *calendarRepository) GetEventByExternalID(connectionID, externalID string) (*domain.CalendarEvent, error) {
	query, args, err := squirrel.
		Select(
			"id", "connection_id", "external_id", "title", "description",
			"starts_at", "ends_at", "contact_id", "deal_id", "cancelled",
			"synced_at", "created_at", "updated_at",
		).
		From(calendarEventsTable).
		Where(squirrel.Eq{"connection_id": connectionID, "external_id": externalID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	event := &domain.CalendarEvent{}
	err = r.conn.QueryRow(query, args...).Scan(
		&event.ID, &event.ConnectionID, &event.ExternalID, &event.Title,
		&event.Description, &event.StartsAt, &event.EndsAt, &event.ContactID,
		&event.DealID, &event.Cancelled, &event.SyncedAt,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear evento: %w", err)
	}

	return event, nil
}
