package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/lib/pq"
)

const (
	webhookSubscriptionsTable = "webhook_subscriptions"
	webhookDeliveriesTable    = "webhook_deliveries"
)

type WebhookRepository interface {
	CreateSubscription(subscription *domain.WebhookSubscription) (*domain.WebhookSubscription, error)
	GetSubscriptionByID(id string) (*domain.WebhookSubscription, error)
	ListActiveSubscriptions() ([]*domain.WebhookSubscription, error)
	DeactivateSubscription(id string) error
	InsertDelivery(delivery *domain.WebhookDelivery) (*domain.WebhookDelivery, error)
	UpdateDelivery(delivery *domain.WebhookDelivery) error
	ListDeliveriesBySubscription(subscriptionID string, limit int) ([]*domain.WebhookDelivery, error)
}

type webhookRepository struct {
	conn *postgres.Connection
}

func NewWebhookRepository(conn *postgres.Connection) WebhookRepository {
	return &webhookRepository{conn: conn}
}

func (r *webhookRepository) CreateSubscription(subscription *domain.WebhookSubscription) (*domain.WebhookSubscription, error) {
	queryBuilder := squirrel.
		Insert(webhookSubscriptionsTable).
		Columns("id", "url", "secret", "events", "active").
		Values(
			subscription.ID, subscription.URL, subscription.Secret,
			pq.Array(subscription.Events), subscription.Active,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	subscriptionSQL, subscriptionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(subscriptionSQL, subscriptionArgs...).Scan(&subscription.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir assinatura de webhook: %w", err)
	}

	return subscription, nil
}

func (r *webhookRepository) GetSubscriptionByID(id string) (*domain.WebhookSubscription, error) {
	query, args, err := squirrel.
		Select("id", "url", "secret", "events", "active", "created_at").
		From(webhookSubscriptionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	subscription := &domain.WebhookSubscription{}
	err = r.conn.QueryRow(query, args...).Scan(
		&subscription.ID, &subscription.URL, &subscription.Secret,
		pq.Array(&subscription.Events), &subscription.Active, &subscription.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
	}

	return subscription, nil
}

func (r *webhookRepository) ListActiveSubscriptions() ([]*domain.WebhookSubscription, error) {
	query, args, err := squirrel.
		Select("id", "url", "secret", "events", "active", "created_at").
		From(webhookSubscriptionsTable).
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

	subscriptions := make([]*domain.WebhookSubscription, 0)
	for rows.Next() {
		subscription := &domain.WebhookSubscription{}
		err := rows.Scan(
			&subscription.ID, &subscription.URL, &subscription.Secret,
			pq.Array(&subscription.Events), &subscription.Active, &subscription.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
		}
		subscriptions = append(subscriptions, subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return subscriptions, nil
}

func (r *webhookRepository) DeactivateSubscription(id string) error {
	query, args, err := squirrel.
		Update(webhookSubscriptionsTable).
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar assinatura: %w", err)
	}

	return nil
}

func (r *webhookRepository) InsertDelivery(delivery *domain.WebhookDelivery) (*domain.WebhookDelivery, error) {
	queryBuilder := squirrel.
		Insert(webhookDeliveriesTable).
		Columns("id", "subscription_id", "event", "payload", "status", "attempts").
		Values(
			delivery.ID, delivery.SubscriptionID, delivery.Event,
			[]byte(delivery.Payload), delivery.Status, delivery.Attempts,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	deliverySQL, deliveryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(deliverySQL, deliveryArgs...).Scan(&delivery.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir entrega de webhook: %w", err)
	}

	return delivery, nil
}

func (r *webhookRepository) UpdateDelivery(delivery *domain.WebhookDelivery) error {
	queryBuilder := squirrel.
		Update(webhookDeliveriesTable).
		Set("status", delivery.Status).
		Set("attempts", delivery.Attempts).
		Set("last_error", delivery.LastError).
		Set("delivered_at", delivery.DeliveredAt).
		Where(squirrel.Eq{"id": delivery.ID}).
		PlaceholderFormat(squirrel.Dollar)

	deliverySQL, deliveryArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(deliverySQL, deliveryArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar entrega: %w", err)
	}

	return nil
}

func (r *webhookRepository) ListDeliveriesBySubscription(subscriptionID string, limit int) ([]*domain.WebhookDelivery, error) {
	queryBuilder := squirrel.
		Select("id", "subscription_id", "event", "payload", "status", "attempts", "last_error", "delivered_at", "created_at").
		From(webhookDeliveriesTable).
		Where(squirrel.Eq{"subscription_id": subscriptionID}).
		OrderBy("created_at DESC").
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

	deliveries := make([]*domain.WebhookDelivery, 0)
	for rows.Next() {
		delivery := &domain.WebhookDelivery{}
		var payload []byte
		var deliveredAt *time.Time

		err := rows.Scan(
			&delivery.ID, &delivery.SubscriptionID, &delivery.Event, &payload,
			&delivery.Status, &delivery.Attempts, &delivery.LastError,
			&deliveredAt, &delivery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrega: %w", err)
		}

		delivery.Payload = payload
		delivery.DeliveredAt = deliveredAt
		deliveries = append(deliveries, delivery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deliveries, nil
}
