package messaging

import (
	"errors"
	"testing"

	"github.com/adamanz/crm-api/infrastructure/integrator/sendblue"
	sendblueMocks "github.com/adamanz/crm-api/infrastructure/integrator/sendblue/mocks"
	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	webhookingMocks "github.com/adamanz/crm-api/internal/usecases/webhooking/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockSendblue := sendblueMocks.NewMockClient(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	cfg := &config.Config{
		Sendblue: config.Sendblue{Enabled: true},
	}

	service := NewMessagingService(mockMessageRepo, mockContactRepo, mockSendblue, mockNotifier, cfg)

	contactWithPhone := func() *domain.Contact {
		return &domain.Contact{
			ID:        "CT0001",
			FirstName: "Maria",
			Phone:     stringPtr("+5511999990000"),
		}
	}

	tests := []struct {
		name     string
		request  *domain.SendMessageRequest
		setup    func()
		validate func(message *domain.Message, err error)
	}{
		{
			name:    "Deve rejeitar mensagem sem corpo",
			request: &domain.SendMessageRequest{ContactID: "CT0001"},
			setup:   func() {},
			validate: func(message *domain.Message, err error) {
				assert.Nil(t, message)

				var messageErr *MessageError
				assert.True(t, errors.As(err, &messageErr))
				assert.Equal(t, "MSG_002", messageErr.Code)
			},
		},
		{
			name:    "Deve rejeitar contato inexistente",
			request: &domain.SendMessageRequest{ContactID: "CT0001", Body: "Olá"},
			setup: func() {
				mockContactRepo.EXPECT().GetContactByID("CT0001").Return(nil, nil)
			},
			validate: func(message *domain.Message, err error) {
				assert.Nil(t, message)

				var messageErr *MessageError
				assert.True(t, errors.As(err, &messageErr))
				assert.Equal(t, "MSG_002", messageErr.Code)
			},
		},
		{
			name:    "Deve rejeitar contato sem telefone",
			request: &domain.SendMessageRequest{ContactID: "CT0001", Body: "Olá"},
			setup: func() {
				mockContactRepo.EXPECT().
					GetContactByID("CT0001").
					Return(&domain.Contact{ID: "CT0001", FirstName: "Maria"}, nil)
			},
			validate: func(message *domain.Message, err error) {
				assert.Nil(t, message)

				var messageErr *MessageError
				assert.True(t, errors.As(err, &messageErr))
				assert.Equal(t, "MSG_003", messageErr.Code)
			},
		},
		{
			name:    "Deve enviar a mensagem e registrar o identificador do provedor",
			request: &domain.SendMessageRequest{ContactID: "CT0001", Body: "Olá, tudo bem?"},
			setup: func() {
				mockContactRepo.EXPECT().GetContactByID("CT0001").Return(contactWithPhone(), nil)
				mockMessageRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(
					func(message *domain.Message) (*domain.Message, error) {
						return message, nil
					},
				)
				mockSendblue.EXPECT().
					SendMessage(sendblue.SendMessageParams{
						Number:  "+5511999990000",
						Content: "Olá, tudo bem?",
					}).
					Return(&sendblue.SendMessageResponse{MessageHandle: "sb-123", Status: "QUEUED"}, nil)
				mockMessageRepo.EXPECT().UpdateMessageStatus(gomock.Any()).Return(nil)
				mockContactRepo.EXPECT().TouchContact("CT0001", gomock.Any()).Return(nil)
			},
			validate: func(message *domain.Message, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.MessageStatusSent, message.Status)
				assert.Equal(t, domain.MessageDirectionOutbound, message.Direction)
				assert.Equal(t, "sb-123", *message.ProviderID)
				assert.NotNil(t, message.SentAt)
			},
		},
		{
			name:    "Deve registrar a falha do provedor sem propagar erro",
			request: &domain.SendMessageRequest{ContactID: "CT0001", Body: "Olá"},
			setup: func() {
				mockContactRepo.EXPECT().GetContactByID("CT0001").Return(contactWithPhone(), nil)
				mockMessageRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(
					func(message *domain.Message) (*domain.Message, error) {
						return message, nil
					},
				)
				mockSendblue.EXPECT().
					SendMessage(gomock.Any()).
					Return(nil, errors.New("número bloqueado"))
				mockMessageRepo.EXPECT().UpdateMessageStatus(gomock.Any()).Return(nil)
				mockContactRepo.EXPECT().TouchContact("CT0001", gomock.Any()).Return(nil)
			},
			validate: func(message *domain.Message, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.MessageStatusFailed, message.Status)
				assert.Nil(t, message.ProviderID)
				assert.Equal(t, "número bloqueado", *message.ErrorMessage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			message, err := service.SendMessage(tt.request)
			tt.validate(message, err)
		})
	}
}

func TestSendMessage_ProvedorDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockSendblue := sendblueMocks.NewMockClient(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	cfg := &config.Config{
		Sendblue: config.Sendblue{Enabled: false},
	}

	service := NewMessagingService(mockMessageRepo, mockContactRepo, mockSendblue, mockNotifier, cfg)

	message, err := service.SendMessage(&domain.SendMessageRequest{ContactID: "CT0001", Body: "Olá"})

	assert.Nil(t, message)

	var messageErr *MessageError
	assert.True(t, errors.As(err, &messageErr))
	assert.Equal(t, "MSG_001", messageErr.Code)
}

func TestReceiveInbound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockSendblue := sendblueMocks.NewMockClient(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	cfg := &config.Config{
		Sendblue: config.Sendblue{Enabled: true},
	}

	service := NewMessagingService(mockMessageRepo, mockContactRepo, mockSendblue, mockNotifier, cfg)

	tests := []struct {
		name     string
		inbound  *InboundMessage
		setup    func()
		validate func(message *domain.Message, err error)
	}{
		{
			name:    "Deve rejeitar payload sem número ou conteúdo",
			inbound: &InboundMessage{Number: "+5511999990000"},
			setup:   func() {},
			validate: func(message *domain.Message, err error) {
				assert.Nil(t, message)

				var messageErr *MessageError
				assert.True(t, errors.As(err, &messageErr))
				assert.Equal(t, "MSG_002", messageErr.Code)
			},
		},
		{
			name:    "Deve descartar mensagem de número sem contato",
			inbound: &InboundMessage{Number: "+5511988880000", Content: "Oi"},
			setup: func() {
				mockMessageRepo.EXPECT().FindContactIDByPhone("+5511988880000").Return(nil, nil)
			},
			validate: func(message *domain.Message, err error) {
				assert.Nil(t, message)

				var messageErr *MessageError
				assert.True(t, errors.As(err, &messageErr))
				assert.Equal(t, "MSG_002", messageErr.Code)
			},
		},
		{
			name: "Deve registrar mensagem iMessage e emitir o evento",
			inbound: &InboundMessage{
				Number:        "+5511999990000",
				Content:       "Pode me ligar?",
				MessageHandle: "sb-456",
				Service:       "iMessage",
			},
			setup: func() {
				mockMessageRepo.EXPECT().
					FindContactIDByPhone("+5511999990000").
					Return(stringPtr("CT0001"), nil)
				mockMessageRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(
					func(message *domain.Message) (*domain.Message, error) {
						return message, nil
					},
				)
				mockContactRepo.EXPECT().TouchContact("CT0001", gomock.Any()).Return(nil)
				mockNotifier.EXPECT().Emit(domain.WebhookEventMessageReceived, gomock.Any())
			},
			validate: func(message *domain.Message, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "CT0001", message.ContactID)
				assert.Equal(t, domain.MessageDirectionInbound, message.Direction)
				assert.Equal(t, domain.MessageChannelIMessage, message.Channel)
				assert.Equal(t, domain.MessageStatusReceived, message.Status)
				assert.Equal(t, "sb-456", *message.ProviderID)
			},
		},
		{
			name: "Deve usar o canal SMS quando o serviço não é iMessage",
			inbound: &InboundMessage{
				Number:  "+5511999990000",
				Content: "Recebi a proposta",
				Service: "SMS",
			},
			setup: func() {
				mockMessageRepo.EXPECT().
					FindContactIDByPhone("+5511999990000").
					Return(stringPtr("CT0001"), nil)
				mockMessageRepo.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(
					func(message *domain.Message) (*domain.Message, error) {
						return message, nil
					},
				)
				mockContactRepo.EXPECT().TouchContact("CT0001", gomock.Any()).Return(nil)
				mockNotifier.EXPECT().Emit(domain.WebhookEventMessageReceived, gomock.Any())
			},
			validate: func(message *domain.Message, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.MessageChannelSMS, message.Channel)
				assert.Nil(t, message.ProviderID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			message, err := service.ReceiveInbound(tt.inbound)
			tt.validate(message, err)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
