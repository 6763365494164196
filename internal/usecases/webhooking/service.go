// Package webhooking entrega eventos do CRM para endpoints externos com
// payload assinado via HMAC-SHA256.
package webhooking

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxDeliveryAttempts = 3
	deliveryTimeout     = 10 * time.Second
	signatureHeader     = "X-CRM-Signature"
	eventHeader         = "X-CRM-Event"
)

// Intervalos entre tentativas de entrega
var retryBackoff = []time.Duration{0, 30 * time.Second, 2 * time.Minute}

type Notifier interface {
	CreateSubscription(request *domain.CreateWebhookRequest) (*domain.WebhookSubscription, error)
	ListSubscriptions() ([]*domain.WebhookSubscription, error)
	RemoveSubscription(id string) error
	ListDeliveries(subscriptionID string, limit int) ([]*domain.WebhookDelivery, error)
	Emit(event string, payload interface{})
}

type WebhookService struct {
	WebhookRepository repository.WebhookRepository
	HTTPClient        *http.Client
}

func NewWebhookService(webhookRepository repository.WebhookRepository) Notifier {
	return &WebhookService{
		WebhookRepository: webhookRepository,
		HTTPClient:        &http.Client{Timeout: deliveryTimeout},
	}
}

func (s *WebhookService) CreateSubscription(request *domain.CreateWebhookRequest) (*domain.WebhookSubscription, error) {
	if request.URL == "" {
		return nil, fmt.Errorf("a URL do webhook é obrigatória")
	}
	if len(request.Events) == 0 {
		return nil, fmt.Errorf("a assinatura precisa de ao menos um evento")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	secret, err := utils.GenerateSecret()
	if err != nil {
		return nil, err
	}

	subscription := &domain.WebhookSubscription{
		ID:     id,
		URL:    request.URL,
		Secret: secret,
		Events: request.Events,
		Active: true,
	}

	return s.WebhookRepository.CreateSubscription(subscription)
}

func (s *WebhookService) ListSubscriptions() ([]*domain.WebhookSubscription, error) {
	return s.WebhookRepository.ListActiveSubscriptions()
}

func (s *WebhookService) RemoveSubscription(id string) error {
	return s.WebhookRepository.DeactivateSubscription(id)
}

func (s *WebhookService) ListDeliveries(subscriptionID string, limit int) ([]*domain.WebhookDelivery, error) {
	return s.WebhookRepository.ListDeliveriesBySubscription(subscriptionID, limit)
}

// Emit entrega o evento para todas as assinaturas ativas interessadas.
// A entrega roda em background; falhas ficam registradas na tabela de
// entregas e não propagam para o fluxo que originou o evento.
func (s *WebhookService) Emit(event string, payload interface{}) {
	subscriptions, err := s.WebhookRepository.ListActiveSubscriptions()
	if err != nil {
		logrus.Errorf("Erro ao listar assinaturas para o evento %s: %v", event, err)
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"data":      payload,
	})
	if err != nil {
		logrus.Errorf("Erro ao serializar payload do evento %s: %v", event, err)
		return
	}

	for _, subscription := range subscriptions {
		if !subscription.WantsEvent(event) {
			continue
		}
		go s.deliver(subscription, event, body)
	}
}

// deliver tenta a entrega até o limite de tentativas, com intervalo crescente
func (s *WebhookService) deliver(subscription *domain.WebhookSubscription, event string, body []byte) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.Errorf("Erro ao gerar ID de entrega: %v", err)
		return
	}

	delivery := &domain.WebhookDelivery{
		ID:             id,
		SubscriptionID: subscription.ID,
		Event:          event,
		Payload:        body,
		Status:         domain.WebhookDeliveryPending,
	}

	if _, err := s.WebhookRepository.InsertDelivery(delivery); err != nil {
		logrus.Errorf("Erro ao registrar entrega do evento %s: %v", event, err)
		return
	}

	signature := Sign(subscription.Secret, body)

	for attempt := 0; attempt < maxDeliveryAttempts; attempt++ {
		time.Sleep(retryBackoff[attempt])

		delivery.Attempts = attempt + 1
		err := s.post(subscription.URL, event, signature, body)
		if err == nil {
			now := time.Now()
			delivery.Status = domain.WebhookDeliveryDelivered
			delivery.DeliveredAt = &now
			delivery.LastError = nil
			break
		}

		message := err.Error()
		delivery.LastError = &message
		logrus.Warnf("Tentativa %d de entrega do evento %s para %s falhou: %v",
			delivery.Attempts, event, subscription.URL, err)
	}

	if delivery.Status != domain.WebhookDeliveryDelivered {
		delivery.Status = domain.WebhookDeliveryFailed
	}

	if err := s.WebhookRepository.UpdateDelivery(delivery); err != nil {
		logrus.Errorf("Erro ao atualizar entrega %s: %v", delivery.ID, err)
	}
}

func (s *WebhookService) post(url, event, signature string, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, signature)
	req.Header.Set(eventHeader, event)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("endpoint respondeu com status %d", resp.StatusCode)
	}

	return nil
}

// Sign calcula a assinatura HMAC-SHA256 do payload em hexadecimal
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature valida a assinatura recebida em tempo constante
func VerifySignature(secret string, body []byte, signature string) bool {
	expected := Sign(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
