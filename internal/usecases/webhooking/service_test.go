package webhooking

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSign(t *testing.T) {
	secret := "chave-super-secreta"
	body := []byte(`{"event":"deal.won"}`)

	signature := Sign(secret, body)

	assert.NotEmpty(t, signature)
	assert.True(t, VerifySignature(secret, body, signature))

	// Payload adulterado ou segredo errado invalidam a assinatura
	assert.False(t, VerifySignature(secret, []byte(`{"event":"deal.lost"}`), signature))
	assert.False(t, VerifySignature("outra-chave", body, signature))
}

func TestCreateSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWebhookRepo := mocks.NewMockWebhookRepository(ctrl)
	service := NewWebhookService(mockWebhookRepo)

	tests := []struct {
		name     string
		request  *domain.CreateWebhookRequest
		setup    func()
		validate func(subscription *domain.WebhookSubscription, err error)
	}{
		{
			name:    "Deve rejeitar assinatura sem URL",
			request: &domain.CreateWebhookRequest{Events: []string{"deal.won"}},
			setup:   func() {},
			validate: func(subscription *domain.WebhookSubscription, err error) {
				assert.Nil(t, subscription)
				assert.Error(t, err)
			},
		},
		{
			name:    "Deve rejeitar assinatura sem eventos",
			request: &domain.CreateWebhookRequest{URL: "https://example.com/hooks"},
			setup:   func() {},
			validate: func(subscription *domain.WebhookSubscription, err error) {
				assert.Nil(t, subscription)
				assert.Error(t, err)
			},
		},
		{
			name: "Deve gerar identificador e segredo para a assinatura",
			request: &domain.CreateWebhookRequest{
				URL:    "https://example.com/hooks",
				Events: []string{"deal.won", "deal.lost"},
			},
			setup: func() {
				mockWebhookRepo.EXPECT().CreateSubscription(gomock.Any()).DoAndReturn(
					func(subscription *domain.WebhookSubscription) (*domain.WebhookSubscription, error) {
						return subscription, nil
					},
				)
			},
			validate: func(subscription *domain.WebhookSubscription, err error) {
				assert.NoError(t, err)
				assert.Len(t, subscription.ID, 6)
				assert.Len(t, subscription.Secret, 32)
				assert.True(t, subscription.Active)
				assert.Equal(t, []string{"deal.won", "deal.lost"}, subscription.Events)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			subscription, err := service.CreateSubscription(tt.request)
			tt.validate(subscription, err)
		})
	}
}

func TestEmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type received struct {
		event     string
		signature string
		body      []byte
	}

	requests := make(chan received, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests <- received{
			event:     r.Header.Get("X-CRM-Event"),
			signature: r.Header.Get("X-CRM-Signature"),
			body:      body,
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	subscription := &domain.WebhookSubscription{
		ID:     "WH0001",
		URL:    server.URL,
		Secret: "chave-super-secreta",
		Events: []string{"*"},
		Active: true,
	}

	mockWebhookRepo := mocks.NewMockWebhookRepository(ctrl)
	service := NewWebhookService(mockWebhookRepo)

	mockWebhookRepo.EXPECT().
		ListActiveSubscriptions().
		Return([]*domain.WebhookSubscription{subscription}, nil)
	mockWebhookRepo.EXPECT().InsertDelivery(gomock.Any()).DoAndReturn(
		func(delivery *domain.WebhookDelivery) (*domain.WebhookDelivery, error) {
			return delivery, nil
		},
	)

	updated := make(chan *domain.WebhookDelivery, 1)
	mockWebhookRepo.EXPECT().UpdateDelivery(gomock.Any()).DoAndReturn(
		func(delivery *domain.WebhookDelivery) error {
			updated <- delivery
			return nil
		},
	)

	service.Emit("deal.won", map[string]interface{}{"deal_id": "DL0001"})

	select {
	case delivery := <-updated:
		assert.Equal(t, "WH0001", delivery.SubscriptionID)
		assert.Equal(t, domain.WebhookDeliveryDelivered, delivery.Status)
		assert.Equal(t, 1, delivery.Attempts)
		assert.NotNil(t, delivery.DeliveredAt)
		assert.Nil(t, delivery.LastError)
	case <-time.After(5 * time.Second):
		t.Fatal("entrega do webhook não concluiu no tempo esperado")
	}

	request := <-requests
	assert.Equal(t, "deal.won", request.event)
	assert.True(t, VerifySignature(subscription.Secret, request.body, request.signature))
	assert.Contains(t, string(request.body), `"event":"deal.won"`)
	assert.Contains(t, string(request.body), `"deal_id":"DL0001"`)
}

func TestEmit_IgnoraAssinaturasSemInteresse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subscription := &domain.WebhookSubscription{
		ID:     "WH0001",
		URL:    "https://example.com/hooks",
		Secret: "chave-super-secreta",
		Events: []string{"form.submitted"},
		Active: true,
	}

	mockWebhookRepo := mocks.NewMockWebhookRepository(ctrl)
	service := NewWebhookService(mockWebhookRepo)

	// Nenhuma entrega deve ser registrada para eventos fora da assinatura
	mockWebhookRepo.EXPECT().
		ListActiveSubscriptions().
		Return([]*domain.WebhookSubscription{subscription}, nil)

	service.Emit("deal.won", map[string]interface{}{"deal_id": "DL0001"})
}

func TestWantsEvent(t *testing.T) {
	subscription := &domain.WebhookSubscription{Events: []string{"deal.won", "deal.lost"}}

	assert.True(t, subscription.WantsEvent("deal.won"))
	assert.False(t, subscription.WantsEvent("form.submitted"))

	wildcard := &domain.WebhookSubscription{Events: []string{"*"}}
	assert.True(t, wildcard.WantsEvent("message.received"))
}
