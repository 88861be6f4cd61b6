package account

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-manager-api/infrastructure/repository"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
	"github.com/vfg2006/delivery-manager-api/pkg/utils"
)

type AccountService interface {
	ListAccounts(year int) ([]*domain.EnrichedAccount, error)
	GetAccount(accountID string, year int) (*domain.EnrichedAccount, error)
	CreateAccount(request *domain.NewAccountRequest) (*domain.Account, error)
	UpdateAccount(request *domain.UpdateAccountRequest) error
	ListManagers() ([]*domain.Manager, error)
	UpsertSatisfaction(request *domain.UpsertSatisfactionRequest) error
	CreateActionItem(request *domain.NewActionItemRequest, by domain.Attribution) (*domain.ActionItem, error)
	ToggleActionItem(itemID string, by domain.Attribution) (*domain.ActionItem, error)
	UpsertBilling(request *domain.UpsertBillingRequest) (*domain.BillingRecord, error)
}

type Service struct {
	accountRepository    repository.AccountRepository
	managerRepository    repository.ManagerRepository
	actionItemRepository repository.ActionItemRepository
	scoreRepository      repository.SatisfactionScoreRepository
	billingRepository    repository.BillingRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	managerRepository repository.ManagerRepository,
	actionItemRepository repository.ActionItemRepository,
	scoreRepository repository.SatisfactionScoreRepository,
	billingRepository repository.BillingRepository,
) AccountService {
	return &Service{
		accountRepository:    accountRepository,
		managerRepository:    managerRepository,
		actionItemRepository: actionItemRepository,
		scoreRepository:      scoreRepository,
		billingRepository:    billingRepository,
	}
}

// ListAccounts lista as contas enriquecidas para exibição: nome do
// gerente, notas de satisfação do ano em exibição e itens de ação
func (s *Service) ListAccounts(year int) ([]*domain.EnrichedAccount, error) {
	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	managers, err := s.managerRepository.ListManagers()
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar gerentes no banco de dados")
	}

	managersByID := make(map[string]*domain.Manager, len(managers))
	for _, manager := range managers {
		managersByID[manager.ID] = manager
	}

	enriched := make([]*domain.EnrichedAccount, 0, len(accounts))
	for _, acc := range accounts {
		entry, err := s.enrich(acc, managersByID, year)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, entry)
	}

	return enriched, nil
}

// GetAccount busca uma conta enriquecida pelo ID
func (s *Service) GetAccount(accountID string, year int) (*domain.EnrichedAccount, error) {
	if accountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	acc, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta no banco de dados")
	}

	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, accountID, "Conta não encontrada")
	}

	managersByID := make(map[string]*domain.Manager)
	if acc.ManagerID != nil {
		manager, err := s.managerRepository.GetManagerByID(*acc.ManagerID)
		if err != nil {
			return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar gerente no banco de dados")
		}
		if manager != nil {
			managersByID[manager.ID] = manager
		}
	}

	return s.enrich(acc, managersByID, year)
}

func (s *Service) enrich(acc *domain.Account, managersByID map[string]*domain.Manager, year int) (*domain.EnrichedAccount, error) {
	entry := &domain.EnrichedAccount{
		Account:     *acc,
		ManagerName: domain.UnassignedManagerName,
		DisplayYear: year,
	}

	if acc.ManagerID != nil {
		if manager, ok := managersByID[*acc.ManagerID]; ok {
			entry.ManagerName = manager.Name
		}
	}

	scores, err := s.scoreRepository.ListScoresByAccount(acc.ID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, acc.ID, "Falha ao buscar notas de satisfação")
	}

	for _, score := range scores {
		if score.Year != year {
			continue
		}
		switch score.Quarter {
		case 1:
			entry.SatisfactionScore.Q1 = score.Score
			entry.QuarterlyComments.Q1 = score.Comments
		case 2:
			entry.SatisfactionScore.Q2 = score.Score
			entry.QuarterlyComments.Q2 = score.Comments
		case 3:
			entry.SatisfactionScore.Q3 = score.Score
			entry.QuarterlyComments.Q3 = score.Comments
		case 4:
			entry.SatisfactionScore.Q4 = score.Score
			entry.QuarterlyComments.Q4 = score.Comments
		}
	}

	items, err := s.actionItemRepository.ListActionItems()
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, acc.ID, "Falha ao buscar itens de ação")
	}

	for _, item := range items {
		if item.AccountID == acc.ID {
			entry.ActionItems = append(entry.ActionItems, item)
		}
	}

	return entry, nil
}

// CreateAccount cria uma nova conta de cliente
func (s *Service) CreateAccount(request *domain.NewAccountRequest) (*domain.Account, error) {
	if request == nil || request.Name == "" {
		return nil, NewAccountError(ErrAccountNameRequired, apiErrors.ErrMissingRequiredData, "O nome da conta é obrigatório")
	}

	if err := s.checkManager(request.ManagerID); err != nil {
		return nil, err
	}

	accountID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
	}

	acc := &domain.Account{
		ID:              accountID,
		Name:            request.Name,
		ManagerID:       request.ManagerID,
		People:          request.People,
		PrimaryLanguage: request.PrimaryLanguage,
		LanguageStack:   request.LanguageStack,
	}

	if err := s.accountRepository.CreateAccount(acc); err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar conta")
	}

	logrus.Infof("account %s created", acc.ID)

	return acc, nil
}

// UpdateAccount edita os campos mutáveis de uma conta. Campos não
// informados preservam o valor atual, exceto o gerente, que é sempre
// substituído: manager_id nulo desatribui a conta
func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) error {
	if request == nil || request.ID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	if err := s.checkManager(request.ManagerID); err != nil {
		return err
	}

	if err := s.accountRepository.UpdateAccount(request); err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta")
	}

	return nil
}

func (s *Service) checkManager(managerID *string) error {
	if managerID == nil {
		return nil
	}

	manager, err := s.managerRepository.GetManagerByID(*managerID)
	if err != nil {
		return NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar gerente no banco de dados")
	}

	if manager == nil {
		return NewAccountError(ErrManagerNotFound, apiErrors.ErrResourceNotFound, "Gerente não encontrado")
	}

	return nil
}

// ListManagers lista os gerentes de entrega
func (s *Service) ListManagers() ([]*domain.Manager, error) {
	managers, err := s.managerRepository.ListManagers()
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar gerentes no banco de dados")
	}

	return managers, nil
}

// UpsertSatisfaction grava a nota de satisfação de um (conta, ano,
// trimestre). Anos distintos nunca se sobrescrevem
func (s *Service) UpsertSatisfaction(request *domain.UpsertSatisfactionRequest) error {
	if request == nil || request.AccountID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	if request.Quarter < 1 || request.Quarter > 4 {
		return NewAccountError(ErrInvalidQuarter, apiErrors.ErrInvalidFormat, "O trimestre deve estar entre 1 e 4")
	}

	if request.Score < 1 || request.Score > 100 {
		return NewAccountError(ErrInvalidScore, apiErrors.ErrInvalidFormat, "A nota deve estar entre 1 e 100")
	}

	scoreID, err := utils.GenerateID()
	if err != nil {
		return NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para nota")
	}

	score := request.Score
	if err := s.scoreRepository.UpsertScore(&domain.SatisfactionScore{
		ID:        scoreID,
		AccountID: request.AccountID,
		Year:      request.Year,
		Quarter:   request.Quarter,
		Score:     &score,
		Comments:  request.Comments,
	}); err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.AccountID, "Falha ao salvar nota de satisfação")
	}

	return nil
}

// CreateActionItem cria um item de ação vinculado a uma conta
func (s *Service) CreateActionItem(request *domain.NewActionItemRequest, by domain.Attribution) (*domain.ActionItem, error) {
	if request == nil || request.AccountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	if !request.Priority.Valid() {
		return nil, NewAccountError(ErrInvalidPriority, apiErrors.ErrInvalidFormat, "Prioridade desconhecida")
	}

	itemID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para item de ação")
	}

	item := &domain.ActionItem{
		ID:                itemID,
		AccountID:         request.AccountID,
		ManagerID:         request.ManagerID,
		Description:       request.Description,
		DueDate:           request.DueDate,
		Priority:          request.Priority,
		Completed:         false,
		CreatedDate:       time.Now().UTC().Format(period.DateLayout),
		CreatedByUserID:   by.UserID,
		CreatedByUserName: by.UserName,
	}

	if err := s.actionItemRepository.CreateActionItem(item); err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.AccountID, "Falha ao salvar item de ação")
	}

	return item, nil
}

// ToggleActionItem alterna um item entre aberto e concluído. Os metadados
// de conclusão são gravados e limpos junto com o flag, nunca separados
func (s *Service) ToggleActionItem(itemID string, by domain.Attribution) (*domain.ActionItem, error) {
	item, err := s.actionItemRepository.GetActionItemByID(itemID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar item de ação")
	}

	if item == nil {
		return nil, NewAccountError(ErrActionItemNotFound, apiErrors.ErrResourceNotFound, "Item de ação não encontrado")
	}

	if item.Completed {
		item.Completed = false
		item.CompletedByUserID = nil
		item.CompletedByUserName = nil
		item.CompletedAt = nil
	} else {
		now := time.Now().UTC()
		item.Completed = true
		item.CompletedByUserID = by.UserID
		item.CompletedByUserName = &by.UserName
		item.CompletedAt = &now
	}

	if err := s.actionItemRepository.UpdateActionItem(item); err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, item.AccountID, "Falha ao atualizar item de ação")
	}

	return item, nil
}

// UpsertBilling grava o faturamento de um (conta, mês de cobrança)
func (s *Service) UpsertBilling(request *domain.UpsertBillingRequest) (*domain.BillingRecord, error) {
	if request == nil || request.AccountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "O ID da conta é obrigatório")
	}

	if !period.ValidBillingMonth(request.BillingMonth) {
		return nil, NewAccountError(ErrInvalidBillingMonth, apiErrors.ErrInvalidFormat, "O mês de cobrança deve ser o primeiro dia de um mês")
	}

	if request.BilledAmount < 0 {
		return nil, NewAccountError(ErrNegativeAmount, apiErrors.ErrInvalidFormat, "O valor faturado não pode ser negativo")
	}

	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para faturamento")
	}

	currency := request.Currency
	if currency == "" {
		currency = "USD"
	}

	record := &domain.BillingRecord{
		ID:           recordID,
		AccountID:    request.AccountID,
		BillingMonth: request.BillingMonth,
		BilledAmount: request.BilledAmount,
		Currency:     currency,
		Notes:        request.Notes,
	}

	if err := s.billingRepository.UpsertBilling(record); err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.AccountID, "Falha ao salvar faturamento")
	}

	return record, nil
}
