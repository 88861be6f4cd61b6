package tracking

import (
	"fmt"

	"github.com/vfg2006/delivery-manager-api/infrastructure/repository"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

// Service implementa a interface Tracker sobre os repositórios
type Service struct {
	managerRepository    repository.ManagerRepository
	accountRepository    repository.AccountRepository
	statusRepository     repository.WeeklyStatusRepository
	actionItemRepository repository.ActionItemRepository
	scoreRepository      repository.SatisfactionScoreRepository
	billingRepository    repository.BillingRepository
}

// NewService cria uma nova instância do serviço de acompanhamento
func NewService(
	managerRepo repository.ManagerRepository,
	accountRepo repository.AccountRepository,
	statusRepo repository.WeeklyStatusRepository,
	actionItemRepo repository.ActionItemRepository,
	scoreRepo repository.SatisfactionScoreRepository,
	billingRepo repository.BillingRepository,
) Tracker {
	return &Service{
		managerRepository:    managerRepo,
		accountRepository:    accountRepo,
		statusRepository:     statusRepo,
		actionItemRepository: actionItemRepo,
		scoreRepository:      scoreRepo,
		billingRepository:    billingRepo,
	}
}

// LoadSnapshot carrega todos os conjuntos de registros e devolve a cópia
// imutável sobre a qual o resolvedor e as agregações operam. Depois de
// qualquer mutação o chamador recarrega; não há atualização incremental.
func (s *Service) LoadSnapshot() (*domain.Snapshot, error) {
	managers, err := s.managerRepository.ListManagers()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os gerentes: %w", err)
	}

	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar as contas: %w", err)
	}

	statuses, err := s.statusRepository.ListStatuses()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os status semanais: %w", err)
	}

	actionItems, err := s.actionItemRepository.ListActionItems()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os itens de ação: %w", err)
	}

	scores, err := s.scoreRepository.ListScores()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar as notas de satisfação: %w", err)
	}

	billing, err := s.billingRepository.ListBilling()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar os registros de cobrança: %w", err)
	}

	return domain.NewSnapshot(managers, accounts, statuses, actionItems, scores, billing), nil
}
