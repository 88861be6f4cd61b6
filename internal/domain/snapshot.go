package domain

import "fmt"

// Snapshot é a cópia imutável do conjunto de dados carregado da fonte de
// verdade. Todo o motor de agregação e carry-forward opera sobre um
// Snapshot recebido por parâmetro, nunca sobre estado ambiente; após
// qualquer mutação o chamador recarrega um Snapshot novo (não há patch
// incremental).
type Snapshot struct {
	Managers     []*Manager
	Accounts     []*Account
	Statuses     []*WeeklyStatus
	ActionItems  []*ActionItem
	Scores       []*SatisfactionScore
	Billing      []*BillingRecord

	statusByKey  map[string]*WeeklyStatus
	billingByKey map[string]*BillingRecord
	managerByID  map[string]*Manager
}

// NewSnapshot indexa os conjuntos de registros pelas chaves compostas
func NewSnapshot(
	managers []*Manager,
	accounts []*Account,
	statuses []*WeeklyStatus,
	actionItems []*ActionItem,
	scores []*SatisfactionScore,
	billing []*BillingRecord,
) *Snapshot {
	s := &Snapshot{
		Managers:     managers,
		Accounts:     accounts,
		Statuses:     statuses,
		ActionItems:  actionItems,
		Scores:       scores,
		Billing:      billing,
		statusByKey:  make(map[string]*WeeklyStatus, len(statuses)),
		billingByKey: make(map[string]*BillingRecord, len(billing)),
		managerByID:  make(map[string]*Manager, len(managers)),
	}

	for _, status := range statuses {
		s.statusByKey[statusKey(status.AccountID, status.Week)] = status
	}

	for _, record := range billing {
		s.billingByKey[statusKey(record.AccountID, record.BillingMonth)] = record
	}

	for _, manager := range managers {
		s.managerByID[manager.ID] = manager
	}

	return s
}

// StatusFor retorna o registro explícito de (conta, semana), ou nil.
// Nil não é erro: é o gatilho do carry-forward.
func (s *Snapshot) StatusFor(accountID, week string) *WeeklyStatus {
	return s.statusByKey[statusKey(accountID, week)]
}

// BillingFor retorna o registro de cobrança de (conta, mês), ou nil
func (s *Snapshot) BillingFor(accountID, billingMonth string) *BillingRecord {
	return s.billingByKey[statusKey(accountID, billingMonth)]
}

// ManagerByID retorna o gerente pelo id, ou nil
func (s *Snapshot) ManagerByID(id string) *Manager {
	return s.managerByID[id]
}

// ManagerName resolve o nome do gerente de uma conta, com o sentinela
// "Unassigned" para contas sem gerente
func (s *Snapshot) ManagerName(managerID *string) string {
	if managerID == nil {
		return UnassignedManagerName
	}
	if manager := s.managerByID[*managerID]; manager != nil {
		return manager.Name
	}
	return UnassignedManagerName
}

// ScoresForYear retorna as notas de satisfação de uma conta em um ano
func (s *Snapshot) ScoresForYear(accountID string, year int) []*SatisfactionScore {
	var scores []*SatisfactionScore
	for _, score := range s.Scores {
		if score.AccountID == accountID && score.Year == year {
			scores = append(scores, score)
		}
	}
	return scores
}

// ActionItemsFor retorna os itens de ação de uma conta
func (s *Snapshot) ActionItemsFor(accountID string) []*ActionItem {
	var items []*ActionItem
	for _, item := range s.ActionItems {
		if item.AccountID == accountID {
			items = append(items, item)
		}
	}
	return items
}

func statusKey(accountID, period string) string {
	return fmt.Sprintf("%s:%s", accountID, period)
}
