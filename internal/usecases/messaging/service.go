// Package messaging envia e recebe mensagens SMS/iMessage via Sendblue,
// mantendo o histórico por contato.
package messaging

import (
	"time"

	"github.com/adamanz/crm-api/infrastructure/integrator/sendblue"
	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Messenger interface {
	SendMessage(request *domain.SendMessageRequest) (*domain.Message, error)
	ListMessages(contactID string, limit int) ([]*domain.Message, error)
	ReceiveInbound(inbound *InboundMessage) (*domain.Message, error)
}

// InboundMessage é o payload do webhook de mensagens recebidas do Sendblue
type InboundMessage struct {
	Number        string `json:"number"`
	Content       string `json:"content"`
	MessageHandle string `json:"message_handle"`
	Service       string `json:"service"` // iMessage ou SMS
}

type MessagingService struct {
	MessageRepository repository.MessageRepository
	ContactRepository repository.ContactRepository
	SendblueClient    sendblue.Client
	Notifier          webhooking.Notifier
	Config            *config.Config
}

func NewMessagingService(
	messageRepository repository.MessageRepository,
	contactRepository repository.ContactRepository,
	sendblueClient sendblue.Client,
	notifier webhooking.Notifier,
	cfg *config.Config,
) Messenger {
	return &MessagingService{
		MessageRepository: messageRepository,
		ContactRepository: contactRepository,
		SendblueClient:    sendblueClient,
		Notifier:          notifier,
		Config:            cfg,
	}
}

// SendMessage envia uma mensagem para o telefone do contato. A mensagem fica
// registrada mesmo quando o provedor falha, com o status e o erro do envio.
func (s *MessagingService) SendMessage(request *domain.SendMessageRequest) (*domain.Message, error) {
	if !s.Config.Sendblue.Enabled {
		return nil, NewMessageError(ErrProviderNotConfigured, "MSG_001", "")
	}

	if request.Body == "" {
		return nil, NewMessageError(ErrInvalidMessage, "MSG_002", "o corpo da mensagem é obrigatório")
	}

	contact, err := s.ContactRepository.GetContactByID(request.ContactID)
	if err != nil {
		logrus.Errorf("Erro ao buscar contato %s: %v", request.ContactID, err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}
	if contact == nil {
		return nil, NewMessageError(ErrInvalidMessage, "MSG_002", "contato não encontrado")
	}
	if contact.Phone == nil || *contact.Phone == "" {
		return nil, NewMessageError(ErrContactWithoutPhone, "MSG_003", "")
	}

	channel := request.Channel
	if channel == "" {
		channel = domain.MessageChannelSMS
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	message := &domain.Message{
		ID:          id,
		ContactID:   contact.ID,
		Direction:   domain.MessageDirectionOutbound,
		Channel:     channel,
		PhoneNumber: *contact.Phone,
		Body:        request.Body,
		Status:      domain.MessageStatusQueued,
	}

	if _, err := s.MessageRepository.CreateMessage(message); err != nil {
		logrus.Errorf("Erro ao registrar mensagem: %v", err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}

	response, sendErr := s.SendblueClient.SendMessage(sendblue.SendMessageParams{
		Number:  message.PhoneNumber,
		Content: message.Body,
	})

	now := time.Now()
	if sendErr != nil {
		errorMessage := sendErr.Error()
		message.Status = domain.MessageStatusFailed
		message.ErrorMessage = &errorMessage
		logrus.Errorf("Erro ao enviar mensagem %s via Sendblue: %v", message.ID, sendErr)
	} else {
		message.Status = domain.MessageStatusSent
		message.ProviderID = &response.MessageHandle
		message.SentAt = &now
	}

	if err := s.MessageRepository.UpdateMessageStatus(message); err != nil {
		logrus.Errorf("Erro ao atualizar status da mensagem %s: %v", message.ID, err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}

	if err := s.ContactRepository.TouchContact(contact.ID, now); err != nil {
		logrus.Warnf("Erro ao atualizar última interação do contato %s: %v", contact.ID, err)
	}

	return message, nil
}

func (s *MessagingService) ListMessages(contactID string, limit int) ([]*domain.Message, error) {
	messages, err := s.MessageRepository.ListMessagesByContact(contactID, limit)
	if err != nil {
		logrus.Errorf("Erro ao listar mensagens do contato %s: %v", contactID, err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}
	return messages, nil
}

// ReceiveInbound processa uma mensagem recebida do webhook do Sendblue,
// resolvendo o contato pelo telefone e emitindo o evento message.received
func (s *MessagingService) ReceiveInbound(inbound *InboundMessage) (*domain.Message, error) {
	if inbound.Number == "" || inbound.Content == "" {
		return nil, NewMessageError(ErrInvalidMessage, "MSG_002", "número e conteúdo são obrigatórios")
	}

	contactID, err := s.MessageRepository.FindContactIDByPhone(inbound.Number)
	if err != nil {
		logrus.Errorf("Erro ao resolver contato do número %s: %v", inbound.Number, err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}
	if contactID == nil {
		// Mensagem de número desconhecido não gera registro
		logrus.Warnf("Mensagem recebida de número sem contato: %s", inbound.Number)
		return nil, NewMessageError(ErrInvalidMessage, "MSG_002", "número sem contato cadastrado")
	}

	channel := domain.MessageChannelSMS
	if inbound.Service == "iMessage" {
		channel = domain.MessageChannelIMessage
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	message := &domain.Message{
		ID:          id,
		ContactID:   *contactID,
		Direction:   domain.MessageDirectionInbound,
		Channel:     channel,
		PhoneNumber: inbound.Number,
		Body:        inbound.Content,
		Status:      domain.MessageStatusReceived,
		SentAt:      &now,
	}
	if inbound.MessageHandle != "" {
		message.ProviderID = &inbound.MessageHandle
	}

	if _, err := s.MessageRepository.CreateMessage(message); err != nil {
		logrus.Errorf("Erro ao registrar mensagem recebida: %v", err)
		return nil, NewMessageError(ErrDatabaseOperation, "MSG_004", err.Error())
	}

	if err := s.ContactRepository.TouchContact(*contactID, now); err != nil {
		logrus.Warnf("Erro ao atualizar última interação do contato %s: %v", *contactID, err)
	}

	s.Notifier.Emit(domain.WebhookEventMessageReceived, message)

	return message, nil
}
