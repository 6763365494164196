// Package calendaring mantém a cópia local dos calendários externos dos
// usuários, com sincronização incremental bidirecional de eventos.
package calendaring

import (
	"time"

	calendarclient "github.com/adamanz/crm-api/infrastructure/integrator/calendar"
	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Margem antes da expiração do token para renovar antecipadamente
const tokenRefreshMargin = 5 * time.Minute

type CalendarService interface {
	ConnectCalendar(request *ConnectCalendarRequest) (*domain.CalendarConnection, error)
	ListConnections() ([]*domain.CalendarConnection, error)
	DisconnectCalendar(id string) error
	ListEvents(connectionID string, from, to time.Time) ([]*domain.CalendarEvent, error)
	SyncConnection(id string) error
	SyncAll() error
}

// ConnectCalendarRequest vincula um calendário externo já autorizado
type ConnectCalendarRequest struct {
	UserID         int       `json:"user_id"`
	Provider       string    `json:"provider"`
	Email          string    `json:"email"`
	AccessToken    string    `json:"access_token"`
	RefreshToken   string    `json:"refresh_token"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

type Service struct {
	CalendarRepository repository.CalendarRepository
	Client             calendarclient.Client
}

func NewCalendarService(
	calendarRepository repository.CalendarRepository,
	client calendarclient.Client,
) CalendarService {
	return &Service{
		CalendarRepository: calendarRepository,
		Client:             client,
	}
}

func (s *Service) ConnectCalendar(request *ConnectCalendarRequest) (*domain.CalendarConnection, error) {
	if request.RefreshToken == "" {
		return nil, NewCalendarError(ErrInvalidConnection, "CAL_002", "o refresh token é obrigatório")
	}
	if request.Email == "" {
		return nil, NewCalendarError(ErrInvalidConnection, "CAL_002", "o e-mail do calendário é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	connection := &domain.CalendarConnection{
		ID:             id,
		UserID:         request.UserID,
		Provider:       request.Provider,
		Email:          request.Email,
		AccessToken:    request.AccessToken,
		RefreshToken:   request.RefreshToken,
		TokenExpiresAt: request.TokenExpiresAt,
		Status:         domain.CalendarConnectionConnected,
	}

	created, err := s.CalendarRepository.CreateConnection(connection)
	if err != nil {
		logrus.Errorf("Erro ao criar conexão de calendário: %v", err)
		return nil, NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}

	logrus.Infof("Calendário %s conectado para o usuário %d", created.Email, created.UserID)

	return created, nil
}

func (s *Service) ListConnections() ([]*domain.CalendarConnection, error) {
	connections, err := s.CalendarRepository.ListConnections()
	if err != nil {
		logrus.Errorf("Erro ao listar conexões de calendário: %v", err)
		return nil, NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}
	return connections, nil
}

func (s *Service) DisconnectCalendar(id string) error {
	connection, err := s.CalendarRepository.GetConnectionByID(id)
	if err != nil {
		return NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}
	if connection == nil {
		return NewCalendarError(ErrConnectionNotFound, "CAL_001", "")
	}

	if err := s.CalendarRepository.DeleteConnection(id); err != nil {
		logrus.Errorf("Erro ao excluir conexão %s: %v", id, err)
		return NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}

	return nil
}

func (s *Service) ListEvents(connectionID string, from, to time.Time) ([]*domain.CalendarEvent, error) {
	connection, err := s.CalendarRepository.GetConnectionByID(connectionID)
	if err != nil {
		return nil, NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}
	if connection == nil {
		return nil, NewCalendarError(ErrConnectionNotFound, "CAL_001", "")
	}

	events, err := s.CalendarRepository.ListEventsByConnection(connectionID, from, to)
	if err != nil {
		logrus.Errorf("Erro ao listar eventos da conexão %s: %v", connectionID, err)
		return nil, NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}

	return events, nil
}

// SyncConnection sincroniza os eventos de uma conexão. Renova o token se
// necessário, consome o delta do provedor via sync token e reconcilia a cópia
// local. Falhas marcam a conexão com status de erro sem interromper as demais.
func (s *Service) SyncConnection(id string) error {
	connection, err := s.CalendarRepository.GetConnectionByID(id)
	if err != nil {
		return NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}
	if connection == nil {
		return NewCalendarError(ErrConnectionNotFound, "CAL_001", "")
	}

	if err := s.syncEvents(connection); err != nil {
		message := err.Error()
		connection.Status = domain.CalendarConnectionError
		connection.LastError = &message

		if updateErr := s.CalendarRepository.UpdateConnectionSyncState(connection); updateErr != nil {
			logrus.Errorf("Erro ao registrar falha da conexão %s: %v", id, updateErr)
		}

		return NewCalendarError(ErrProviderFailure, "CAL_004", message)
	}

	now := time.Now()
	connection.Status = domain.CalendarConnectionConnected
	connection.LastError = nil
	connection.LastSyncedAt = &now

	if err := s.CalendarRepository.UpdateConnectionSyncState(connection); err != nil {
		logrus.Errorf("Erro ao atualizar estado da conexão %s: %v", id, err)
		return NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}

	return nil
}

// SyncAll sincroniza todas as conexões, isolando falhas por conexão
func (s *Service) SyncAll() error {
	connections, err := s.CalendarRepository.ListConnections()
	if err != nil {
		return NewCalendarError(ErrDatabaseOperation, "CAL_003", err.Error())
	}

	for _, connection := range connections {
		if err := s.SyncConnection(connection.ID); err != nil {
			logrus.Errorf("Erro ao sincronizar conexão %s (%s): %v",
				connection.ID, connection.Email, err)
		}
	}

	return nil
}

func (s *Service) syncEvents(connection *domain.CalendarConnection) error {
	if err := s.ensureValidToken(connection); err != nil {
		return err
	}

	syncToken := ""
	if connection.SyncToken != nil {
		syncToken = *connection.SyncToken
	}

	pageToken := ""
	now := time.Now()
	tokenReset := false

	for {
		page, err := s.Client.ListEvents(calendarclient.ListEventsParams{
			AccessToken: connection.AccessToken,
			SyncToken:   syncToken,
			PageToken:   pageToken,
		})
		if err == calendarclient.ErrSyncTokenExpired {
			// Cursor invalidado pelo provedor: recomeça a sincronização
			// completa uma única vez por execução
			if tokenReset {
				return err
			}
			tokenReset = true

			logrus.Warnf("Sync token da conexão %s expirado, reiniciando sincronização completa", connection.ID)
			syncToken = ""
			pageToken = ""
			connection.SyncToken = nil
			continue
		}
		if err != nil {
			return err
		}

		for i := range page.Items {
			if err := s.applyEvent(connection, &page.Items[i], now); err != nil {
				return err
			}
		}

		if page.NextPageToken != "" {
			pageToken = page.NextPageToken
			continue
		}

		if page.NextSyncToken != "" {
			connection.SyncToken = &page.NextSyncToken
		}

		return nil
	}
}

// applyEvent reconcilia um evento do provedor com a cópia local
func (s *Service) applyEvent(connection *domain.CalendarConnection, external *calendarclient.ExternalEvent, now time.Time) error {
	if external.Status == "cancelled" {
		return s.CalendarRepository.MarkEventCancelled(connection.ID, external.ID, now)
	}

	existing, err := s.CalendarRepository.GetEventByExternalID(connection.ID, external.ID)
	if err != nil {
		return err
	}

	event := &domain.CalendarEvent{
		ConnectionID: connection.ID,
		ExternalID:   external.ID,
		Title:        external.Summary,
		Description:  external.Description,
		StartsAt:     external.Start.DateTime,
		EndsAt:       external.End.DateTime,
		SyncedAt:     &now,
	}

	if existing != nil {
		// Preserva o ID local e os vínculos com contato e negócio
		event.ID = existing.ID
		event.ContactID = existing.ContactID
		event.DealID = existing.DealID
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		event.ID = id
	}

	return s.CalendarRepository.UpsertEvent(event)
}

// ensureValidToken renova o access token quando está perto de expirar.
// Os tokens renovados são persistidos antes de qualquer chamada ao provedor.
func (s *Service) ensureValidToken(connection *domain.CalendarConnection) error {
	if time.Until(connection.TokenExpiresAt) > tokenRefreshMargin {
		return nil
	}

	logrus.Infof("Renovando token da conexão %s", connection.ID)

	token, err := s.Client.RefreshToken(connection.RefreshToken)
	if err != nil {
		return err
	}

	connection.AccessToken = token.AccessToken
	connection.TokenExpiresAt = token.Expiry
	if token.RefreshToken != "" {
		connection.RefreshToken = token.RefreshToken
	}

	if err := s.CalendarRepository.UpdateConnectionTokens(connection); err != nil {
		return err
	}

	return nil
}
