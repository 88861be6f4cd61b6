package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/delivery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
	"github.com/vfg2006/delivery-manager-api/pkg/period"
)

const weeklyStatusesTable = "weekly_statuses"

type WeeklyStatusRepository interface {
	ListStatuses() ([]*domain.WeeklyStatus, error)
	GetStatus(accountID, week string) (*domain.WeeklyStatus, error)
	UpsertStatus(status *domain.WeeklyStatus) error
	DeleteStatus(accountID, week string) error
}

type weeklyStatusRepository struct {
	conn *postgres.Connection
}

func NewWeeklyStatusRepository(conn *postgres.Connection) WeeklyStatusRepository {
	return &weeklyStatusRepository{
		conn: conn,
	}
}

func (r *weeklyStatusRepository) ListStatuses() ([]*domain.WeeklyStatus, error) {
	statusesSQL, statusesArgs, err := squirrel.
		Select("id, account_id, week, status, people, notes, created_by_user_id, created_by_user_name").
		From(weeklyStatusesTable).
		OrderBy("week ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(statusesSQL, statusesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	statuses := make([]*domain.WeeklyStatus, 0)

	for rows.Next() {
		status, err := deserializeWeeklyStatus(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar o status semanal: %w", err)
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return statuses, nil
}

func (r *weeklyStatusRepository) GetStatus(accountID, week string) (*domain.WeeklyStatus, error) {
	statusSQL, statusArgs, err := squirrel.
		Select("id, account_id, week, status, people, notes, created_by_user_id, created_by_user_name").
		From(weeklyStatusesTable).
		Where(squirrel.Eq{"account_id": accountID, "week": week}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(statusSQL, statusArgs...)

	status, err := deserializeWeeklyStatus(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return status, nil
}

// UpsertStatus grava ou sobrescreve o registro da chave (account_id, week).
// O upsert é idempotente: repetir a mesma chamada produz o mesmo estado
// final, o que permite repetir com segurança etapas de um cascade.
// A atribuição original é preservada em caso de conflito.
func (r *weeklyStatusRepository) UpsertStatus(status *domain.WeeklyStatus) error {
	// Largura fixa YYYY-MM-DD é invariante: a regra do registro mais
	// recente compara semanas lexicograficamente
	if !period.ValidWeek(status.Week) {
		return fmt.Errorf("semana inválida %q: esperada segunda-feira no formato YYYY-MM-DD", status.Week)
	}

	if !status.Status.Valid() {
		return fmt.Errorf("status inválido %q", status.Status)
	}

	if status.People < 0 {
		return fmt.Errorf("quantidade de pessoas não pode ser negativa: %d", status.People)
	}

	statusSQL, statusArgs, err := squirrel.
		Insert(weeklyStatusesTable).
		Columns("id", "account_id", "week", "status", "people", "notes", "created_by_user_id", "created_by_user_name").
		Values(
			status.ID,
			status.AccountID,
			status.Week,
			status.Status,
			status.People,
			status.Notes,
			status.CreatedByUserID,
			status.CreatedByUserName,
		).
		Suffix(`
			ON CONFLICT (account_id, week) DO UPDATE SET
				status = EXCLUDED.status,
				people = EXCLUDED.people,
				notes = EXCLUDED.notes
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(statusSQL, statusArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeleteStatus remove apenas o registro explícito da semana. Não desfaz
// cascades já aplicados às semanas seguintes: depois da remoção a semana
// volta a ser resolvida por carry-forward.
func (r *weeklyStatusRepository) DeleteStatus(accountID, week string) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(weeklyStatusesTable).
		Where(squirrel.Eq{"account_id": accountID, "week": week}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(deleteSQL, deleteArgs...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func deserializeWeeklyStatus(scan func(dest ...interface{}) error) (*domain.WeeklyStatus, error) {
	status := &domain.WeeklyStatus{}
	var notes sql.NullString
	var createdByName sql.NullString

	if err := scan(
		&status.ID,
		&status.AccountID,
		&status.Week,
		&status.Status,
		&status.People,
		&notes,
		&status.CreatedByUserID,
		&createdByName,
	); err != nil {
		return nil, err
	}

	status.Notes = notes.String
	status.CreatedByUserName = createdByName.String

	return status, nil
}
