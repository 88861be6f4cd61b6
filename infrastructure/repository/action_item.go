package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/delivery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

const actionItemsTable = "action_items"

type ActionItemRepository interface {
	ListActionItems() ([]*domain.ActionItem, error)
	GetActionItemByID(itemID string) (*domain.ActionItem, error)
	CreateActionItem(item *domain.ActionItem) error
	UpdateActionItem(item *domain.ActionItem) error
}

type actionItemRepository struct {
	conn *postgres.Connection
}

func NewActionItemRepository(conn *postgres.Connection) ActionItemRepository {
	return &actionItemRepository{
		conn: conn,
	}
}

func (r *actionItemRepository) ListActionItems() ([]*domain.ActionItem, error) {
	itemsSQL, itemsArgs, err := squirrel.
		Select(actionItemColumns()).
		From(actionItemsTable).
		OrderBy("created_date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(itemsSQL, itemsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ActionItem, 0)

	for rows.Next() {
		item, err := deserializeActionItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar o item de ação: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return items, nil
}

func (r *actionItemRepository) GetActionItemByID(itemID string) (*domain.ActionItem, error) {
	itemSQL, itemArgs, err := squirrel.
		Select(actionItemColumns()).
		From(actionItemsTable).
		Where(squirrel.Eq{"id": itemID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(itemSQL, itemArgs...)

	item, err := deserializeActionItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return item, nil
}

func (r *actionItemRepository) CreateActionItem(item *domain.ActionItem) error {
	itemSQL, itemArgs, err := squirrel.
		Insert(actionItemsTable).
		Columns("id", "account_id", "manager_id", "description", "due_date", "priority", "completed", "created_date", "created_by_user_id", "created_by_user_name").
		Values(
			item.ID,
			item.AccountID,
			item.ManagerID,
			item.Description,
			item.DueDate,
			item.Priority,
			item.Completed,
			item.CreatedDate,
			item.CreatedByUserID,
			item.CreatedByUserName,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateActionItem sobrescreve o estado de conclusão do item. Completar
// e descompletar gravam/limpam os metadados de conclusão na mesma
// escrita, nunca separadamente.
func (r *actionItemRepository) UpdateActionItem(item *domain.ActionItem) error {
	itemSQL, itemArgs, err := squirrel.
		Update(actionItemsTable).
		Set("description", item.Description).
		Set("due_date", item.DueDate).
		Set("priority", item.Priority).
		Set("completed", item.Completed).
		Set("completed_by_user_id", item.CompletedByUserID).
		Set("completed_by_user_name", item.CompletedByUserName).
		Set("completed_at", item.CompletedAt).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(itemSQL, itemArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("action item not found: %s", item.ID)
	}

	return nil
}

func actionItemColumns() string {
	return "id, account_id, manager_id, description, due_date, priority, completed, created_date, created_by_user_id, created_by_user_name, completed_by_user_id, completed_by_user_name, completed_at"
}

func deserializeActionItem(scan func(dest ...interface{}) error) (*domain.ActionItem, error) {
	item := &domain.ActionItem{}
	var createdByName sql.NullString

	if err := scan(
		&item.ID,
		&item.AccountID,
		&item.ManagerID,
		&item.Description,
		&item.DueDate,
		&item.Priority,
		&item.Completed,
		&item.CreatedDate,
		&item.CreatedByUserID,
		&createdByName,
		&item.CompletedByUserID,
		&item.CompletedByUserName,
		&item.CompletedAt,
	); err != nil {
		return nil, err
	}

	item.CreatedByUserName = createdByName.String

	return item, nil
}
