// Package crm cobre o cadastro central: contatos, empresas, atividades e a
// captura de leads via formulários públicos.
package crm

import (
	"strings"
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type CRMService interface {
	CreateContact(request *domain.CreateContactRequest) (*domain.Contact, error)
	UpdateContact(request *domain.UpdateContactRequest) (*domain.Contact, error)
	GetContact(id string) (*domain.Contact, error)
	ListContacts(filters *domain.ContactFilters) ([]*domain.Contact, error)
	DeleteContact(id string) error

	CreateCompany(request *domain.CreateCompanyRequest) (*domain.Company, error)
	UpdateCompany(request *domain.UpdateCompanyRequest) (*domain.Company, error)
	GetCompany(id string) (*domain.Company, error)
	ListCompanies() ([]*domain.Company, error)

	CreateActivity(request *domain.CreateActivityRequest) (*domain.Activity, error)
	ListActivities(filters *domain.ActivityFilters) ([]*domain.Activity, error)
	CompleteActivity(id string) error

	CreateWebForm(request *domain.CreateWebFormRequest) (*domain.WebForm, error)
	ListWebForms() ([]*domain.WebForm, error)
	SubmitWebForm(token string, submission *domain.WebFormSubmission) (*domain.Contact, error)
}

type Service struct {
	ContactRepository  repository.ContactRepository
	CompanyRepository  repository.CompanyRepository
	ActivityRepository repository.ActivityRepository
	WebFormRepository  repository.WebFormRepository
	Notifier           webhooking.Notifier
}

func NewService(
	contactRepository repository.ContactRepository,
	companyRepository repository.CompanyRepository,
	activityRepository repository.ActivityRepository,
	webFormRepository repository.WebFormRepository,
	notifier webhooking.Notifier,
) CRMService {
	return &Service{
		ContactRepository:  contactRepository,
		CompanyRepository:  companyRepository,
		ActivityRepository: activityRepository,
		WebFormRepository:  webFormRepository,
		Notifier:           notifier,
	}
}

func (s *Service) CreateContact(request *domain.CreateContactRequest) (*domain.Contact, error) {
	if request.FirstName == "" {
		return nil, NewCRMError(ErrInvalidInput, "CRM_002", "o nome é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:        id,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		CompanyID: request.CompanyID,
		OwnerID:   request.OwnerID,
		Source:    request.Source,
	}

	created, err := s.ContactRepository.CreateContact(contact)
	if err != nil {
		logrus.Errorf("Erro ao criar contato: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return created, nil
}

func (s *Service) UpdateContact(request *domain.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.GetContact(request.ID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		contact.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		contact.LastName = *request.LastName
	}
	if request.Email != nil {
		contact.Email = request.Email
	}
	if request.Phone != nil {
		contact.Phone = request.Phone
	}
	if request.CompanyID != nil {
		contact.CompanyID = request.CompanyID
	}
	if request.OwnerID != nil {
		contact.OwnerID = request.OwnerID
	}

	if err := s.ContactRepository.UpdateContact(contact); err != nil {
		logrus.Errorf("Erro ao atualizar contato %s: %v", contact.ID, err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return contact, nil
}

func (s *Service) GetContact(id string) (*domain.Contact, error) {
	contact, err := s.ContactRepository.GetContactByID(id)
	if err != nil {
		logrus.Errorf("Erro ao buscar contato %s: %v", id, err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	if contact == nil {
		return nil, NewCRMError(ErrContactNotFound, "CRM_001", "")
	}
	return contact, nil
}

func (s *Service) ListContacts(filters *domain.ContactFilters) ([]*domain.Contact, error) {
	contacts, err := s.ContactRepository.ListContacts(filters)
	if err != nil {
		logrus.Errorf("Erro ao listar contatos: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	return contacts, nil
}

func (s *Service) DeleteContact(id string) error {
	if _, err := s.GetContact(id); err != nil {
		return err
	}

	if err := s.ContactRepository.DeleteContact(id); err != nil {
		logrus.Errorf("Erro ao excluir contato %s: %v", id, err)
		return NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return nil
}

func (s *Service) CreateCompany(request *domain.CreateCompanyRequest) (*domain.Company, error) {
	if request.Name == "" {
		return nil, NewCRMError(ErrInvalidInput, "CRM_002", "o nome da empresa é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:       id,
		Name:     request.Name,
		Domain:   request.Domain,
		Industry: request.Industry,
		OwnerID:  request.OwnerID,
	}

	created, err := s.CompanyRepository.CreateCompany(company)
	if err != nil {
		logrus.Errorf("Erro ao criar empresa: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return created, nil
}

func (s *Service) UpdateCompany(request *domain.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.GetCompany(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		company.Name = *request.Name
	}
	if request.Domain != nil {
		company.Domain = request.Domain
	}
	if request.Industry != nil {
		company.Industry = request.Industry
	}
	if request.OwnerID != nil {
		company.OwnerID = request.OwnerID
	}

	if err := s.CompanyRepository.UpdateCompany(company); err != nil {
		logrus.Errorf("Erro ao atualizar empresa %s: %v", company.ID, err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return company, nil
}

func (s *Service) GetCompany(id string) (*domain.Company, error) {
	company, err := s.CompanyRepository.GetCompanyByID(id)
	if err != nil {
		logrus.Errorf("Erro ao buscar empresa %s: %v", id, err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	if company == nil {
		return nil, NewCRMError(ErrCompanyNotFound, "CRM_001", "")
	}
	return company, nil
}

func (s *Service) ListCompanies() ([]*domain.Company, error) {
	companies, err := s.CompanyRepository.ListCompanies()
	if err != nil {
		logrus.Errorf("Erro ao listar empresas: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	return companies, nil
}

func (s *Service) CreateActivity(request *domain.CreateActivityRequest) (*domain.Activity, error) {
	if request.Subject == "" {
		return nil, NewCRMError(ErrInvalidInput, "CRM_002", "o assunto é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	var dueAt *time.Time
	if request.DueAt != nil && *request.DueAt != "" {
		parsed, err := time.Parse("2006-01-02", *request.DueAt)
		if err != nil {
			return nil, NewCRMError(ErrInvalidInput, "CRM_002", "data de vencimento inválida")
		}
		dueAt = &parsed
	}

	activity := &domain.Activity{
		ID:        id,
		Type:      request.Type,
		Subject:   request.Subject,
		Body:      request.Body,
		ContactID: request.ContactID,
		CompanyID: request.CompanyID,
		DealID:    request.DealID,
		OwnerID:   request.OwnerID,
		DueAt:     dueAt,
	}

	created, err := s.ActivityRepository.CreateActivity(activity)
	if err != nil {
		logrus.Errorf("Erro ao criar atividade: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	// Atividades ligadas a um contato contam como interação para fins de retenção
	if created.ContactID != nil {
		if err := s.ContactRepository.TouchContact(*created.ContactID, created.CreatedAt); err != nil {
			logrus.Warnf("Erro ao atualizar última interação do contato %s: %v", *created.ContactID, err)
		}
	}

	return created, nil
}

func (s *Service) ListActivities(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	activities, err := s.ActivityRepository.ListActivities(filters)
	if err != nil {
		logrus.Errorf("Erro ao listar atividades: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	return activities, nil
}

func (s *Service) CompleteActivity(id string) error {
	activity, err := s.ActivityRepository.GetActivityByID(id)
	if err != nil {
		logrus.Errorf("Erro ao buscar atividade %s: %v", id, err)
		return NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	if activity == nil {
		return NewCRMError(ErrActivityNotFound, "CRM_001", "")
	}

	if err := s.ActivityRepository.CompleteActivity(id, time.Now()); err != nil {
		logrus.Errorf("Erro ao concluir atividade %s: %v", id, err)
		return NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return nil
}

func (s *Service) CreateWebForm(request *domain.CreateWebFormRequest) (*domain.WebForm, error) {
	if request.Name == "" {
		return nil, NewCRMError(ErrInvalidInput, "CRM_002", "o nome do formulário é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return nil, err
	}

	form := &domain.WebForm{
		ID:     id,
		Token:  token,
		Name:   request.Name,
		Active: true,
	}

	created, err := s.WebFormRepository.CreateForm(form)
	if err != nil {
		logrus.Errorf("Erro ao criar formulário: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}

	return created, nil
}

func (s *Service) ListWebForms() ([]*domain.WebForm, error) {
	forms, err := s.WebFormRepository.ListForms()
	if err != nil {
		logrus.Errorf("Erro ao listar formulários: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	return forms, nil
}

// SubmitWebForm processa uma submissão pública: cria o contato, tenta vincular
// a empresa pelo domínio do e-mail, registra a atividade de submissão e emite
// o evento form.submitted
func (s *Service) SubmitWebForm(token string, submission *domain.WebFormSubmission) (*domain.Contact, error) {
	form, err := s.WebFormRepository.GetFormByToken(token)
	if err != nil {
		logrus.Errorf("Erro ao buscar formulário pelo token: %v", err)
		return nil, NewCRMError(ErrDatabaseOperation, "CRM_003", err.Error())
	}
	if form == nil || !form.Active {
		return nil, NewCRMError(ErrFormNotFound, "CRM_004", "")
	}

	if submission.FirstName == "" {
		return nil, NewCRMError(ErrInvalidInput, "CRM_002", "o nome é obrigatório")
	}

	source := "web_form"
	contact, err := s.CreateContact(&domain.CreateContactRequest{
		FirstName: submission.FirstName,
		LastName:  submission.LastName,
		Email:     submission.Email,
		Phone:     submission.Phone,
		CompanyID: s.matchCompanyByEmail(submission.Email),
		Source:    &source,
	})
	if err != nil {
		return nil, err
	}

	subject := "Submissão do formulário " + form.Name
	activity := &domain.CreateActivityRequest{
		Type:      domain.ActivityTypeForm,
		Subject:   subject,
		Body:      submission.Message,
		ContactID: &contact.ID,
	}
	if _, err := s.CreateActivity(activity); err != nil {
		logrus.Warnf("Erro ao registrar atividade da submissão do formulário %s: %v", form.ID, err)
	}

	s.Notifier.Emit(domain.WebhookEventFormSubmitted, map[string]interface{}{
		"form_id":    form.ID,
		"form_name":  form.Name,
		"contact_id": contact.ID,
	})

	logrus.Infof("Formulário %s gerou o contato %s", form.ID, contact.ID)

	return contact, nil
}

// matchCompanyByEmail tenta vincular a empresa pelo domínio do e-mail do lead
func (s *Service) matchCompanyByEmail(email *string) *string {
	if email == nil {
		return nil
	}

	parts := strings.Split(*email, "@")
	if len(parts) != 2 || parts[1] == "" {
		return nil
	}

	company, err := s.CompanyRepository.GetCompanyByDomain(strings.ToLower(parts[1]))
	if err != nil {
		logrus.Warnf("Erro ao buscar empresa pelo domínio %s: %v", parts[1], err)
		return nil
	}
	if company == nil {
		return nil
	}

	return &company.ID
}
