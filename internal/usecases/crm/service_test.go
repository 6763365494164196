package crm

import (
	"errors"
	"testing"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/domain"
	webhookingMocks "github.com/adamanz/crm-api/internal/usecases/webhooking/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	contactRepo  *mocks.MockContactRepository
	companyRepo  *mocks.MockCompanyRepository
	activityRepo *mocks.MockActivityRepository
	webFormRepo  *mocks.MockWebFormRepository
	notifier     *webhookingMocks.MockNotifier
}

func newServiceWithMocks(ctrl *gomock.Controller) (CRMService, *serviceMocks) {
	m := &serviceMocks{
		contactRepo:  mocks.NewMockContactRepository(ctrl),
		companyRepo:  mocks.NewMockCompanyRepository(ctrl),
		activityRepo: mocks.NewMockActivityRepository(ctrl),
		webFormRepo:  mocks.NewMockWebFormRepository(ctrl),
		notifier:     webhookingMocks.NewMockNotifier(ctrl),
	}

	service := NewService(m.contactRepo, m.companyRepo, m.activityRepo, m.webFormRepo, m.notifier)

	return service, m
}

func TestCreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	t.Run("Deve rejeitar contato sem nome", func(t *testing.T) {
		contact, err := service.CreateContact(&domain.CreateContactRequest{LastName: "Silva"})

		assert.Nil(t, contact)

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_002", crmErr.Code)
	})

	t.Run("Deve criar o contato com identificador gerado", func(t *testing.T) {
		m.contactRepo.EXPECT().CreateContact(gomock.Any()).DoAndReturn(
			func(contact *domain.Contact) (*domain.Contact, error) {
				return contact, nil
			},
		)

		contact, err := service.CreateContact(&domain.CreateContactRequest{
			FirstName: "Maria",
			LastName:  "Silva",
			Email:     stringPtr("maria@acme.com.br"),
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, contact.ID)
		assert.Equal(t, "Maria", contact.FirstName)
	})
}

func TestCompleteActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	t.Run("Deve concluir a atividade quando existir", func(t *testing.T) {
		m.activityRepo.EXPECT().GetActivityByID("AC0001").Return(&domain.Activity{ID: "AC0001"}, nil)
		m.activityRepo.EXPECT().CompleteActivity("AC0001", gomock.Any()).Return(nil)

		assert.NoError(t, service.CompleteActivity("AC0001"))
	})

	t.Run("Deve retornar CRM_001 quando a atividade não existe", func(t *testing.T) {
		m.activityRepo.EXPECT().GetActivityByID("AC0001").Return(nil, nil)

		err := service.CompleteActivity("AC0001")

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_001", crmErr.Code)
	})
}

func TestCreateActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	t.Run("Deve registrar a interação do contato vinculado", func(t *testing.T) {
		m.activityRepo.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(
			func(activity *domain.Activity) (*domain.Activity, error) {
				return activity, nil
			},
		)
		m.contactRepo.EXPECT().TouchContact("CT0001", gomock.Any()).Return(nil)

		activity, err := service.CreateActivity(&domain.CreateActivityRequest{
			Type:      domain.ActivityTypeCall,
			Subject:   "Ligação de acompanhamento",
			ContactID: stringPtr("CT0001"),
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ActivityTypeCall, activity.Type)
	})

	t.Run("Deve rejeitar data de vencimento inválida", func(t *testing.T) {
		activity, err := service.CreateActivity(&domain.CreateActivityRequest{
			Type:    domain.ActivityTypeTask,
			Subject: "Enviar proposta",
			DueAt:   stringPtr("20/05/2024"),
		})

		assert.Nil(t, activity)

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_002", crmErr.Code)
	})
}

func TestSubmitWebForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	activeForm := &domain.WebForm{
		ID:     "WF0001",
		Token:  "token-publico",
		Name:   "Fale conosco",
		Active: true,
	}

	t.Run("Deve criar o contato vinculado à empresa pelo domínio do e-mail", func(t *testing.T) {
		m.webFormRepo.EXPECT().GetFormByToken("token-publico").Return(activeForm, nil)
		m.companyRepo.EXPECT().
			GetCompanyByDomain("acme.com.br").
			Return(&domain.Company{ID: "CO0001", Name: "Acme"}, nil)
		m.contactRepo.EXPECT().CreateContact(gomock.Any()).DoAndReturn(
			func(contact *domain.Contact) (*domain.Contact, error) {
				return contact, nil
			},
		)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(
			func(activity *domain.Activity) (*domain.Activity, error) {
				assert.Equal(t, domain.ActivityTypeForm, activity.Type)
				assert.Equal(t, "Submissão do formulário Fale conosco", activity.Subject)
				return activity, nil
			},
		)
		m.contactRepo.EXPECT().TouchContact(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Emit(domain.WebhookEventFormSubmitted, gomock.Any())

		contact, err := service.SubmitWebForm("token-publico", &domain.WebFormSubmission{
			FirstName: "Maria",
			LastName:  "Silva",
			Email:     stringPtr("Maria@Acme.com.br"),
			Message:   stringPtr("Quero saber mais sobre o produto"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "web_form", *contact.Source)
		assert.Equal(t, "CO0001", *contact.CompanyID)
	})

	t.Run("Deve rejeitar formulário inativo", func(t *testing.T) {
		inactiveForm := &domain.WebForm{ID: "WF0002", Token: "token-inativo", Active: false}
		m.webFormRepo.EXPECT().GetFormByToken("token-inativo").Return(inactiveForm, nil)

		contact, err := service.SubmitWebForm("token-inativo", &domain.WebFormSubmission{FirstName: "Maria"})

		assert.Nil(t, contact)

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_004", crmErr.Code)
	})

	t.Run("Deve rejeitar token desconhecido", func(t *testing.T) {
		m.webFormRepo.EXPECT().GetFormByToken("token-errado").Return(nil, nil)

		contact, err := service.SubmitWebForm("token-errado", &domain.WebFormSubmission{FirstName: "Maria"})

		assert.Nil(t, contact)

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_004", crmErr.Code)
	})

	t.Run("Deve rejeitar submissão sem nome", func(t *testing.T) {
		m.webFormRepo.EXPECT().GetFormByToken("token-publico").Return(activeForm, nil)

		contact, err := service.SubmitWebForm("token-publico", &domain.WebFormSubmission{})

		assert.Nil(t, contact)

		var crmErr *CRMError
		assert.True(t, errors.As(err, &crmErr))
		assert.Equal(t, "CRM_002", crmErr.Code)
	})

	t.Run("Deve seguir sem vínculo quando o domínio não tem empresa", func(t *testing.T) {
		m.webFormRepo.EXPECT().GetFormByToken("token-publico").Return(activeForm, nil)
		m.companyRepo.EXPECT().GetCompanyByDomain("gmail.com").Return(nil, nil)
		m.contactRepo.EXPECT().CreateContact(gomock.Any()).DoAndReturn(
			func(contact *domain.Contact) (*domain.Contact, error) {
				return contact, nil
			},
		)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any()).DoAndReturn(
			func(activity *domain.Activity) (*domain.Activity, error) {
				return activity, nil
			},
		)
		m.contactRepo.EXPECT().TouchContact(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().Emit(domain.WebhookEventFormSubmitted, gomock.Any())

		contact, err := service.SubmitWebForm("token-publico", &domain.WebFormSubmission{
			FirstName: "João",
			Email:     stringPtr("joao@gmail.com"),
		})

		assert.NoError(t, err)
		assert.Nil(t, contact.CompanyID)
	})
}

func stringPtr(s string) *string {
	return &s
}
