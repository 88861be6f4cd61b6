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

const accountBillingTable = "account_billing"

type BillingRepository interface {
	ListBilling() ([]*domain.BillingRecord, error)
	ListBillingByAccount(accountID string) ([]*domain.BillingRecord, error)
	UpsertBilling(record *domain.BillingRecord) error
}

type billingRepository struct {
	conn *postgres.Connection
}

func NewBillingRepository(conn *postgres.Connection) BillingRepository {
	return &billingRepository{
		conn: conn,
	}
}

func (r *billingRepository) ListBilling() ([]*domain.BillingRecord, error) {
	return r.listBilling(nil)
}

func (r *billingRepository) ListBillingByAccount(accountID string) ([]*domain.BillingRecord, error) {
	return r.listBilling(squirrel.Eq{"account_id": accountID})
}

func (r *billingRepository) listBilling(where interface{}) ([]*domain.BillingRecord, error) {
	queryBuilder := squirrel.
		Select("id, account_id, billing_month, billed_amount, currency, notes").
		From(accountBillingTable).
		OrderBy("billing_month DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	billingSQL, billingArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(billingSQL, billingArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.BillingRecord, 0)

	for rows.Next() {
		record := &domain.BillingRecord{}
		var notes sql.NullString

		if err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.BillingMonth,
			&record.BilledAmount,
			&record.Currency,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o faturamento: %w", err)
		}

		record.Notes = notes.String
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return records, nil
}

// UpsertBilling grava o faturamento da chave (account_id, billing_month)
func (r *billingRepository) UpsertBilling(record *domain.BillingRecord) error {
	// billing_month é sempre o primeiro dia do mês
	if !period.ValidBillingMonth(record.BillingMonth) {
		return fmt.Errorf("mês de cobrança inválido %q: esperado YYYY-MM-01", record.BillingMonth)
	}

	if record.BilledAmount < 0 {
		return fmt.Errorf("valor faturado não pode ser negativo: %.2f", record.BilledAmount)
	}

	billingSQL, billingArgs, err := squirrel.
		Insert(accountBillingTable).
		Columns("id", "account_id", "billing_month", "billed_amount", "currency", "notes").
		Values(
			record.ID,
			record.AccountID,
			record.BillingMonth,
			record.BilledAmount,
			record.Currency,
			record.Notes,
		).
		Suffix(`
			ON CONFLICT (account_id, billing_month) DO UPDATE SET
				billed_amount = EXCLUDED.billed_amount,
				currency = EXCLUDED.currency,
				notes = EXCLUDED.notes
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(billingSQL, billingArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
