package calendaring

import (
	"errors"
	"testing"
	"time"

	calendarclient "github.com/adamanz/crm-api/infrastructure/integrator/calendar"
	calendarMocks "github.com/adamanz/crm-api/infrastructure/integrator/calendar/mocks"
	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func TestConnectCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendarRepo := mocks.NewMockCalendarRepository(ctrl)
	mockClient := calendarMocks.NewMockClient(ctrl)

	service := NewCalendarService(mockCalendarRepo, mockClient)

	tests := []struct {
		name     string
		request  *ConnectCalendarRequest
		setup    func()
		validate func(connection *domain.CalendarConnection, err error)
	}{
		{
			name: "Deve rejeitar conexão sem refresh token",
			request: &ConnectCalendarRequest{
				UserID: 1,
				Email:  "vendas@example.com",
			},
			setup: func() {},
			validate: func(connection *domain.CalendarConnection, err error) {
				assert.Nil(t, connection)

				var calendarErr *CalendarError
				assert.True(t, errors.As(err, &calendarErr))
				assert.Equal(t, "CAL_002", calendarErr.Code)
			},
		},
		{
			name: "Deve rejeitar conexão sem e-mail",
			request: &ConnectCalendarRequest{
				UserID:       1,
				RefreshToken: "refresh-token",
			},
			setup: func() {},
			validate: func(connection *domain.CalendarConnection, err error) {
				assert.Nil(t, connection)

				var calendarErr *CalendarError
				assert.True(t, errors.As(err, &calendarErr))
				assert.Equal(t, "CAL_002", calendarErr.Code)
			},
		},
		{
			name: "Deve criar a conexão com status conectado",
			request: &ConnectCalendarRequest{
				UserID:         1,
				Provider:       "google",
				Email:          "vendas@example.com",
				AccessToken:    "access-token",
				RefreshToken:   "refresh-token",
				TokenExpiresAt: time.Now().Add(time.Hour),
			},
			setup: func() {
				mockCalendarRepo.EXPECT().CreateConnection(gomock.Any()).DoAndReturn(
					func(connection *domain.CalendarConnection) (*domain.CalendarConnection, error) {
						return connection, nil
					},
				)
			},
			validate: func(connection *domain.CalendarConnection, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, connection.ID)
				assert.Equal(t, domain.CalendarConnectionConnected, connection.Status)
				assert.Equal(t, "vendas@example.com", connection.Email)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			connection, err := service.ConnectCalendar(tt.request)
			tt.validate(connection, err)
		})
	}
}

func TestSyncConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendarRepo := mocks.NewMockCalendarRepository(ctrl)
	mockClient := calendarMocks.NewMockClient(ctrl)

	service := NewCalendarService(mockCalendarRepo, mockClient)

	connection := func() *domain.CalendarConnection {
		return &domain.CalendarConnection{
			ID:             "CN0001",
			UserID:         1,
			Provider:       "google",
			Email:          "vendas@example.com",
			AccessToken:    "access-token",
			RefreshToken:   "refresh-token",
			TokenExpiresAt: time.Now().Add(time.Hour),
			Status:         domain.CalendarConnectionConnected,
		}
	}

	t.Run("Deve reconciliar eventos novos e cancelados e salvar o sync token", func(t *testing.T) {
		description := "Revisão da proposta"
		confirmed := calendarclient.ExternalEvent{
			ID:          "ev-1",
			Summary:     "Reunião com o cliente",
			Description: &description,
			Status:      "confirmed",
		}
		confirmed.Start.DateTime = time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)
		confirmed.End.DateTime = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

		page := &calendarclient.EventsPage{
			Items: []calendarclient.ExternalEvent{
				confirmed,
				{ID: "ev-2", Status: "cancelled"},
			},
			NextSyncToken: "sync-token-2",
		}

		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(connection(), nil)
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{AccessToken: "access-token"}).
			Return(page, nil)
		mockCalendarRepo.EXPECT().GetEventByExternalID("CN0001", "ev-1").Return(nil, nil)
		mockCalendarRepo.EXPECT().UpsertEvent(gomock.Any()).DoAndReturn(
			func(event *domain.CalendarEvent) error {
				assert.NotEmpty(t, event.ID)
				assert.Equal(t, "ev-1", event.ExternalID)
				assert.Equal(t, "Reunião com o cliente", event.Title)
				return nil
			},
		)
		mockCalendarRepo.EXPECT().MarkEventCancelled("CN0001", "ev-2", gomock.Any()).Return(nil)
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).DoAndReturn(
			func(updated *domain.CalendarConnection) error {
				assert.Equal(t, domain.CalendarConnectionConnected, updated.Status)
				assert.Nil(t, updated.LastError)
				assert.NotNil(t, updated.LastSyncedAt)
				assert.Equal(t, "sync-token-2", *updated.SyncToken)
				return nil
			},
		)

		assert.NoError(t, service.SyncConnection("CN0001"))
	})

	t.Run("Deve preservar os vínculos locais de eventos já conhecidos", func(t *testing.T) {
		contactID := "CT0001"
		existing := &domain.CalendarEvent{
			ID:           "EV0001",
			ConnectionID: "CN0001",
			ExternalID:   "ev-1",
			ContactID:    &contactID,
		}

		page := &calendarclient.EventsPage{
			Items: []calendarclient.ExternalEvent{
				{ID: "ev-1", Summary: "Reunião remarcada", Status: "confirmed"},
			},
			NextSyncToken: "sync-token-3",
		}

		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(connection(), nil)
		mockClient.EXPECT().ListEvents(gomock.Any()).Return(page, nil)
		mockCalendarRepo.EXPECT().GetEventByExternalID("CN0001", "ev-1").Return(existing, nil)
		mockCalendarRepo.EXPECT().UpsertEvent(gomock.Any()).DoAndReturn(
			func(event *domain.CalendarEvent) error {
				assert.Equal(t, "EV0001", event.ID)
				assert.Equal(t, "CT0001", *event.ContactID)
				assert.Equal(t, "Reunião remarcada", event.Title)
				return nil
			},
		)
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).Return(nil)

		assert.NoError(t, service.SyncConnection("CN0001"))
	})

	t.Run("Deve renovar o token quando está perto de expirar", func(t *testing.T) {
		expiring := connection()
		expiring.TokenExpiresAt = time.Now().Add(time.Minute)

		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(expiring, nil)
		mockClient.EXPECT().RefreshToken("refresh-token").Return(&oauth2.Token{
			AccessToken:  "novo-access-token",
			RefreshToken: "novo-refresh-token",
			Expiry:       time.Now().Add(time.Hour),
		}, nil)
		mockCalendarRepo.EXPECT().UpdateConnectionTokens(gomock.Any()).DoAndReturn(
			func(updated *domain.CalendarConnection) error {
				assert.Equal(t, "novo-access-token", updated.AccessToken)
				assert.Equal(t, "novo-refresh-token", updated.RefreshToken)
				return nil
			},
		)
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{AccessToken: "novo-access-token"}).
			Return(&calendarclient.EventsPage{NextSyncToken: "sync-token-1"}, nil)
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).Return(nil)

		assert.NoError(t, service.SyncConnection("CN0001"))
	})

	t.Run("Deve reiniciar a sincronização completa quando o sync token expira", func(t *testing.T) {
		stale := connection()
		staleToken := "sync-token-velho"
		stale.SyncToken = &staleToken

		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(stale, nil)
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{
				AccessToken: "access-token",
				SyncToken:   "sync-token-velho",
			}).
			Return(nil, calendarclient.ErrSyncTokenExpired)
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{AccessToken: "access-token"}).
			Return(&calendarclient.EventsPage{NextSyncToken: "sync-token-novo"}, nil)
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).DoAndReturn(
			func(updated *domain.CalendarConnection) error {
				assert.Equal(t, "sync-token-novo", *updated.SyncToken)
				return nil
			},
		)

		assert.NoError(t, service.SyncConnection("CN0001"))
	})

	t.Run("Deve abortar quando o provedor invalida também a sincronização completa", func(t *testing.T) {
		stale := connection()
		staleToken := "sync-token-velho"
		stale.SyncToken = &staleToken

		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(stale, nil)
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{
				AccessToken: "access-token",
				SyncToken:   "sync-token-velho",
			}).
			Return(nil, calendarclient.ErrSyncTokenExpired)

		// O reinício completo acontece uma única vez; um segundo 410 encerra a execução
		mockClient.EXPECT().
			ListEvents(calendarclient.ListEventsParams{AccessToken: "access-token"}).
			Return(nil, calendarclient.ErrSyncTokenExpired)
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).DoAndReturn(
			func(updated *domain.CalendarConnection) error {
				assert.Equal(t, domain.CalendarConnectionError, updated.Status)
				return nil
			},
		)

		err := service.SyncConnection("CN0001")

		var calendarErr *CalendarError
		assert.True(t, errors.As(err, &calendarErr))
		assert.Equal(t, "CAL_004", calendarErr.Code)
	})

	t.Run("Deve registrar a falha do provedor na conexão", func(t *testing.T) {
		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(connection(), nil)
		mockClient.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("quota excedida"))
		mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).DoAndReturn(
			func(updated *domain.CalendarConnection) error {
				assert.Equal(t, domain.CalendarConnectionError, updated.Status)
				assert.Equal(t, "quota excedida", *updated.LastError)
				return nil
			},
		)

		err := service.SyncConnection("CN0001")

		var calendarErr *CalendarError
		assert.True(t, errors.As(err, &calendarErr))
		assert.Equal(t, "CAL_004", calendarErr.Code)
	})

	t.Run("Deve retornar CAL_001 quando a conexão não existe", func(t *testing.T) {
		mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(nil, nil)

		err := service.SyncConnection("CN0001")

		var calendarErr *CalendarError
		assert.True(t, errors.As(err, &calendarErr))
		assert.Equal(t, "CAL_001", calendarErr.Code)
	})
}

func TestSyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendarRepo := mocks.NewMockCalendarRepository(ctrl)
	mockClient := calendarMocks.NewMockClient(ctrl)

	service := NewCalendarService(mockCalendarRepo, mockClient)

	connections := []*domain.CalendarConnection{
		{ID: "CN0001", Email: "vendas@example.com", TokenExpiresAt: time.Now().Add(time.Hour)},
		{ID: "CN0002", Email: "diretoria@example.com", TokenExpiresAt: time.Now().Add(time.Hour)},
	}

	mockCalendarRepo.EXPECT().ListConnections().Return(connections, nil)

	// Falha na primeira conexão não impede a sincronização da segunda
	mockCalendarRepo.EXPECT().GetConnectionByID("CN0001").Return(connections[0], nil)
	mockClient.EXPECT().ListEvents(gomock.Any()).Return(nil, errors.New("quota excedida"))
	mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).Return(nil)

	mockCalendarRepo.EXPECT().GetConnectionByID("CN0002").Return(connections[1], nil)
	mockClient.EXPECT().ListEvents(gomock.Any()).Return(&calendarclient.EventsPage{}, nil)
	mockCalendarRepo.EXPECT().UpdateConnectionSyncState(gomock.Any()).Return(nil)

	assert.NoError(t, service.SyncAll())
}
