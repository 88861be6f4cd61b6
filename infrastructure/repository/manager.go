package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/delivery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

const managersTable = "delivery_managers"

type ManagerRepository interface {
	ListManagers() ([]*domain.Manager, error)
	GetManagerByID(managerID string) (*domain.Manager, error)
	CreateManager(manager *domain.Manager) error
}

type managerRepository struct {
	conn *postgres.Connection
}

func NewManagerRepository(conn *postgres.Connection) ManagerRepository {
	return &managerRepository{
		conn: conn,
	}
}

func (r *managerRepository) ListManagers() ([]*domain.Manager, error) {
	managersSQL, managersArgs, err := squirrel.
		Select("id, name").
		From(managersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(managersSQL, managersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	managers := make([]*domain.Manager, 0)

	for rows.Next() {
		manager := &domain.Manager{}
		if err := rows.Scan(&manager.ID, &manager.Name); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o gerente: %w", err)
		}
		managers = append(managers, manager)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return managers, nil
}

func (r *managerRepository) GetManagerByID(managerID string) (*domain.Manager, error) {
	managerSQL, managerArgs, err := squirrel.
		Select("id, name").
		From(managersTable).
		Where(squirrel.Eq{"id": managerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	manager := &domain.Manager{}
	err = r.conn.QueryRow(managerSQL, managerArgs...).Scan(&manager.ID, &manager.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return manager, nil
}

func (r *managerRepository) CreateManager(manager *domain.Manager) error {
	managerSQL, managerArgs, err := squirrel.
		Insert(managersTable).
		Columns("id", "name").
		Values(manager.ID, manager.Name).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(managerSQL, managerArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
