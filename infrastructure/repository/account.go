package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	_ "github.com/lib/pq"
	"github.com/vfg2006/delivery-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-manager-api/internal/domain"
)

const accountsTable = "accounts"

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.Account, error)
	ListAccounts() ([]*domain.Account, error)
	CreateAccount(account *domain.Account) error
	UpdateAccount(account *domain.UpdateAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetAccountByID(accountID string) (*domain.Account, error) {
	accountSQL, accountArgs, err := squirrel.
		Select("id, name, manager_id, people, primary_language, language_stack, created_at, updated_at").
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(accountSQL, accountArgs...)

	account, err := deserializeAccount(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) ListAccounts() ([]*domain.Account, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("id, name, manager_id, people, primary_language, language_stack, created_at, updated_at").
		From(accountsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)

	for rows.Next() {
		account, err := deserializeAccount(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) CreateAccount(account *domain.Account) error {
	accountSQL, accountArgs, err := squirrel.
		Insert(accountsTable).
		Columns("id", "name", "manager_id", "people", "primary_language", "language_stack").
		Values(
			account.ID,
			account.Name,
			account.ManagerID,
			account.People,
			account.PrimaryLanguage,
			pq.Array(account.LanguageStack),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(accountSQL, accountArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *accountRepository) UpdateAccount(account *domain.UpdateAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	// Constrói a query de atualização apenas com os campos fornecidos.
	// manager_id é a exceção: é sempre gravado, e NULL desatribui a conta
	queryBuilder := squirrel.
		Update(accountsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("manager_id", account.ManagerID).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Name != nil {
		queryBuilder = queryBuilder.Set("name", *account.Name)
	}

	if account.People != nil {
		queryBuilder = queryBuilder.Set("people", *account.People)
	}

	if account.PrimaryLanguage != nil {
		queryBuilder = queryBuilder.Set("primary_language", *account.PrimaryLanguage)
	}

	if account.LanguageStack != nil {
		queryBuilder = queryBuilder.Set("language_stack", pq.Array(*account.LanguageStack))
	}

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(accountSQL, accountArgs...)
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
		return errors.New("account not found")
	}

	return nil
}

func deserializeAccount(scan func(dest ...interface{}) error) (*domain.Account, error) {
	account := &domain.Account{}

	if err := scan(
		&account.ID,
		&account.Name,
		&account.ManagerID,
		&account.People,
		&account.PrimaryLanguage,
		pq.Array(&account.LanguageStack),
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return account, nil
}
