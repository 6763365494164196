// Package compliance implementa a retenção de dados (LGPD/GDPR) e o
// acompanhamento de solicitações de titulares de dados.
package compliance

import (
	"fmt"
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ComplianceService interface {
	ListPolicies() ([]*domain.RetentionPolicy, error)
	SeedDefaultPolicies() error
	RunRetention() ([]*domain.RetentionRun, error)
	ListRuns(limit int) ([]*domain.RetentionRun, error)

	CreateDSR(request *CreateDSRRequest) (*domain.DataSubjectRequest, error)
	ListDSRs(status *domain.DSRStatus) ([]*domain.DataSubjectRequest, error)
	CompleteDSR(id string) error
	CheckOverdueDSRs() (int, error)
}

// CreateDSRRequest abre uma solicitação de acesso ou exclusão de dados
type CreateDSRRequest struct {
	ContactID string         `json:"contact_id"`
	Type      domain.DSRType `json:"type"`
	Notes     *string        `json:"notes"`
}

type Service struct {
	RetentionRepository repository.RetentionRepository
	DSRRepository       repository.DSRRepository
	ContactRepository   repository.ContactRepository
	ActivityRepository  repository.ActivityRepository
	MessageRepository   repository.MessageRepository
	Config              *config.Config
}

func NewComplianceService(
	retentionRepository repository.RetentionRepository,
	dsrRepository repository.DSRRepository,
	contactRepository repository.ContactRepository,
	activityRepository repository.ActivityRepository,
	messageRepository repository.MessageRepository,
	cfg *config.Config,
) ComplianceService {
	return &Service{
		RetentionRepository: retentionRepository,
		DSRRepository:       dsrRepository,
		ContactRepository:   contactRepository,
		ActivityRepository:  activityRepository,
		MessageRepository:   messageRepository,
		Config:              cfg,
	}
}

func (s *Service) ListPolicies() ([]*domain.RetentionPolicy, error) {
	policies, err := s.RetentionRepository.ListActivePolicies()
	if err != nil {
		logrus.Errorf("Erro ao listar políticas de retenção: %v", err)
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}
	return policies, nil
}

// SeedDefaultPolicies garante as políticas padrão a partir da configuração
func (s *Service) SeedDefaultPolicies() error {
	defaults := []*domain.RetentionPolicy{
		{
			ID:            "contact-inactive",
			Name:          "Contatos sem interação",
			EntityType:    domain.RetentionEntityContact,
			RetentionDays: s.Config.RetentionCron.DefaultDays,
			Action:        domain.RetentionActionAnonymize,
			Active:        true,
		},
		{
			ID:            "activity-age",
			Name:          "Atividades antigas",
			EntityType:    domain.RetentionEntityActivity,
			RetentionDays: s.Config.RetentionCron.ActivityDays,
			Action:        domain.RetentionActionDelete,
			Active:        true,
		},
		{
			ID:            "message-age",
			Name:          "Mensagens antigas",
			EntityType:    domain.RetentionEntityMessage,
			RetentionDays: s.Config.RetentionCron.MessageDays,
			Action:        domain.RetentionActionDelete,
			Active:        true,
		},
	}

	for _, policy := range defaults {
		if err := s.RetentionRepository.UpsertPolicy(policy); err != nil {
			return NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
		}
	}

	return nil
}

// RunRetention executa todas as políticas ativas. Cada política processa no
// máximo o teto configurado por execução; o excedente fica registrado em
// Skipped e é retomado na varredura do dia seguinte. Falhas em registros
// individuais não interrompem a execução.
func (s *Service) RunRetention() ([]*domain.RetentionRun, error) {
	policies, err := s.RetentionRepository.ListActivePolicies()
	if err != nil {
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}

	runs := make([]*domain.RetentionRun, 0, len(policies))
	for _, policy := range policies {
		run := s.runPolicy(policy)

		if _, err := s.RetentionRepository.InsertRun(run); err != nil {
			logrus.Errorf("Erro ao registrar execução da política %s: %v", policy.ID, err)
		}

		runs = append(runs, run)
	}

	return runs, nil
}

func (s *Service) runPolicy(policy *domain.RetentionPolicy) *domain.RetentionRun {
	run := &domain.RetentionRun{
		PolicyID:  policy.ID,
		StartedAt: time.Now(),
		Errors:    make([]string, 0),
	}

	cutoff := time.Now().AddDate(0, 0, -policy.RetentionDays)
	limit := s.Config.RetentionCron.MaxPerRun

	logrus.Infof("Executando política %s: corte em %s, limite %d",
		policy.ID, cutoff.Format("2006-01-02"), limit)

	switch policy.EntityType {
	case domain.RetentionEntityContact:
		s.processContacts(policy, cutoff, limit, run)
	case domain.RetentionEntityActivity:
		s.processActivities(policy, cutoff, limit, run)
	case domain.RetentionEntityMessage:
		s.processMessages(policy, cutoff, limit, run)
	default:
		run.Errors = append(run.Errors, fmt.Sprintf("tipo de entidade desconhecido: %s", policy.EntityType))
	}

	run.FinishedAt = time.Now()
	run.Status = runStatus(run)

	logrus.Infof("Política %s concluída: %d encontrados, %d processados, %d falhas, %d adiados",
		policy.ID, run.Matched, run.Processed, run.Failed, run.Skipped)

	return run
}

func (s *Service) processContacts(policy *domain.RetentionPolicy, cutoff time.Time, limit int, run *domain.RetentionRun) {
	total, err := s.ContactRepository.CountInactiveBefore(cutoff)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}
	run.Matched = total
	if total > limit {
		run.Skipped = total - limit
	}

	contacts, err := s.ContactRepository.ListInactiveBefore(cutoff, limit)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}

	for _, contact := range contacts {
		var actionErr error
		if policy.Action == domain.RetentionActionDelete {
			actionErr = s.ContactRepository.DeleteContact(contact.ID)
		} else {
			actionErr = s.ContactRepository.AnonymizeContact(contact.ID)
		}

		s.recordOutcome(policy, contact.ID, actionErr, run)
	}
}

func (s *Service) processActivities(policy *domain.RetentionPolicy, cutoff time.Time, limit int, run *domain.RetentionRun) {
	total, err := s.ActivityRepository.CountOlderThan(cutoff)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}
	run.Matched = total
	if total > limit {
		run.Skipped = total - limit
	}

	activities, err := s.ActivityRepository.ListOlderThan(cutoff, limit)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}

	for _, activity := range activities {
		s.recordOutcome(policy, activity.ID, s.ActivityRepository.DeleteActivity(activity.ID), run)
	}
}

func (s *Service) processMessages(policy *domain.RetentionPolicy, cutoff time.Time, limit int, run *domain.RetentionRun) {
	total, err := s.MessageRepository.CountOlderThan(cutoff)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}
	run.Matched = total
	if total > limit {
		run.Skipped = total - limit
	}

	messages, err := s.MessageRepository.ListOlderThan(cutoff, limit)
	if err != nil {
		run.Errors = append(run.Errors, err.Error())
		return
	}

	for _, message := range messages {
		s.recordOutcome(policy, message.ID, s.MessageRepository.DeleteMessage(message.ID), run)
	}
}

// recordOutcome contabiliza o resultado de um registro e grava a auditoria
func (s *Service) recordOutcome(policy *domain.RetentionPolicy, entityID string, actionErr error, run *domain.RetentionRun) {
	if actionErr != nil {
		run.Failed++
		run.Errors = append(run.Errors, fmt.Sprintf("%s %s: %v", policy.EntityType, entityID, actionErr))
		return
	}

	run.Processed++

	entry := &domain.RetentionAuditEntry{
		PolicyID:   policy.ID,
		EntityType: policy.EntityType,
		EntityID:   entityID,
		Action:     policy.Action,
		ExecutedAt: time.Now(),
	}
	if err := s.RetentionRepository.InsertAuditEntry(entry); err != nil {
		logrus.Warnf("Erro ao gravar auditoria de %s %s: %v", policy.EntityType, entityID, err)
	}
}

// runStatus deriva o status da execução da proporção de falhas
func runStatus(run *domain.RetentionRun) domain.RetentionRunStatus {
	attempted := run.Processed + run.Failed
	if attempted == 0 {
		if len(run.Errors) > 0 {
			return domain.RetentionRunFailed
		}
		return domain.RetentionRunCompleted
	}

	switch {
	case run.Failed == 0:
		return domain.RetentionRunCompleted
	case run.Failed < attempted:
		return domain.RetentionRunPartial
	default:
		return domain.RetentionRunFailed
	}
}

func (s *Service) ListRuns(limit int) ([]*domain.RetentionRun, error) {
	runs, err := s.RetentionRepository.ListRecentRuns(limit)
	if err != nil {
		logrus.Errorf("Erro ao listar execuções de retenção: %v", err)
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}
	return runs, nil
}

func (s *Service) CreateDSR(request *CreateDSRRequest) (*domain.DataSubjectRequest, error) {
	if request.Type != domain.DSRTypeAccess && request.Type != domain.DSRTypeErasure {
		return nil, NewComplianceError(ErrInvalidRequest, "COMP_002", string(request.Type))
	}

	contact, err := s.ContactRepository.GetContactByID(request.ContactID)
	if err != nil {
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}
	if contact == nil {
		return nil, NewComplianceError(ErrInvalidRequest, "COMP_002", "contato não encontrado")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dsr := &domain.DataSubjectRequest{
		ID:          id,
		ContactID:   request.ContactID,
		Type:        request.Type,
		Status:      domain.DSRStatusOpen,
		RequestedAt: now,
		DueAt:       now.AddDate(0, 0, s.Config.DSRCron.DueDays),
		Notes:       request.Notes,
	}

	created, err := s.DSRRepository.CreateRequest(dsr)
	if err != nil {
		logrus.Errorf("Erro ao criar solicitação de dados: %v", err)
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}

	logrus.Infof("Solicitação %s (%s) aberta para o contato %s, prazo %s",
		created.ID, created.Type, created.ContactID, created.DueAt.Format("2006-01-02"))

	return created, nil
}

func (s *Service) ListDSRs(status *domain.DSRStatus) ([]*domain.DataSubjectRequest, error) {
	requests, err := s.DSRRepository.ListRequests(status)
	if err != nil {
		logrus.Errorf("Erro ao listar solicitações de dados: %v", err)
		return nil, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}
	return requests, nil
}

// CompleteDSR encerra a solicitação. Solicitações de exclusão anonimizam o
// contato antes do encerramento.
func (s *Service) CompleteDSR(id string) error {
	request, err := s.DSRRepository.GetRequestByID(id)
	if err != nil {
		return NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}
	if request == nil {
		return NewComplianceError(ErrRequestNotFound, "COMP_001", "")
	}

	if request.Type == domain.DSRTypeErasure {
		if err := s.ContactRepository.AnonymizeContact(request.ContactID); err != nil {
			logrus.Errorf("Erro ao anonimizar contato %s da solicitação %s: %v", request.ContactID, id, err)
			return NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
		}
	}

	now := time.Now()
	if err := s.DSRRepository.UpdateStatus(id, domain.DSRStatusCompleted, &now); err != nil {
		logrus.Errorf("Erro ao encerrar solicitação %s: %v", id, err)
		return NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}

	logrus.Infof("Solicitação %s encerrada", id)

	return nil
}

// CheckOverdueDSRs marca como vencidas as solicitações abertas com prazo
// estourado e retorna quantas foram marcadas. Cada execução processa no
// máximo o teto configurado; o excedente fica para a varredura seguinte.
func (s *Service) CheckOverdueDSRs() (int, error) {
	overdue, err := s.DSRRepository.ListOpenPastDue(time.Now(), s.Config.DSRCron.MaxPerRun)
	if err != nil {
		return 0, NewComplianceError(ErrDatabaseOperation, "COMP_003", err.Error())
	}

	marked := 0
	for _, request := range overdue {
		if err := s.DSRRepository.UpdateStatus(request.ID, domain.DSRStatusOverdue, nil); err != nil {
			logrus.Errorf("Erro ao marcar solicitação %s como vencida: %v", request.ID, err)
			continue
		}
		marked++
		logrus.Warnf("Solicitação %s do contato %s vencida desde %s",
			request.ID, request.ContactID, request.DueAt.Format("2006-01-02"))
	}

	return marked, nil
}
