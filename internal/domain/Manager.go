package domain

// Sentinela para contas sem gerente atribuído. Não é um gerente real:
// existe apenas como bucket de agrupamento nos rollups.
const (
	UnassignedManagerID   = "unassigned"
	UnassignedManagerName = "Unassigned"
)

// Manager representa um delivery manager responsável por contas
type Manager struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
