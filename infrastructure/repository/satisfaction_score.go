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

const satisfactionScoresTable = "satisfaction_scores"

type SatisfactionScoreRepository interface {
	ListScores() ([]*domain.SatisfactionScore, error)
	ListScoresByAccount(accountID string) ([]*domain.SatisfactionScore, error)
	UpsertScore(score *domain.SatisfactionScore) error
}

type satisfactionScoreRepository struct {
	conn *postgres.Connection
}

func NewSatisfactionScoreRepository(conn *postgres.Connection) SatisfactionScoreRepository {
	return &satisfactionScoreRepository{
		conn: conn,
	}
}

func (r *satisfactionScoreRepository) ListScores() ([]*domain.SatisfactionScore, error) {
	return r.listScores(nil)
}

func (r *satisfactionScoreRepository) ListScoresByAccount(accountID string) ([]*domain.SatisfactionScore, error) {
	return r.listScores(squirrel.Eq{"account_id": accountID})
}

func (r *satisfactionScoreRepository) listScores(where interface{}) ([]*domain.SatisfactionScore, error) {
	queryBuilder := squirrel.
		Select("id, account_id, year, quarter, score, comments").
		From(satisfactionScoresTable).
		OrderBy("year ASC", "quarter ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	scoresSQL, scoresArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(scoresSQL, scoresArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	scores := make([]*domain.SatisfactionScore, 0)

	for rows.Next() {
		score := &domain.SatisfactionScore{}
		var comments sql.NullString

		if err := rows.Scan(
			&score.ID,
			&score.AccountID,
			&score.Year,
			&score.Quarter,
			&score.Score,
			&comments,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a nota de satisfação: %w", err)
		}

		score.Comments = comments.String
		scores = append(scores, score)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return scores, nil
}

// UpsertScore grava a nota da chave (account_id, year, quarter). Anos
// distintos nunca se sobrescrevem: o conflito é resolvido somente dentro
// da mesma chave composta.
func (r *satisfactionScoreRepository) UpsertScore(score *domain.SatisfactionScore) error {
	if score.Quarter < 1 || score.Quarter > 4 {
		return fmt.Errorf("trimestre inválido: %d", score.Quarter)
	}

	if score.Score != nil && (*score.Score < 1 || *score.Score > 100) {
		return fmt.Errorf("nota fora do intervalo 1-100: %d", *score.Score)
	}

	scoreSQL, scoreArgs, err := squirrel.
		Insert(satisfactionScoresTable).
		Columns("id", "account_id", "year", "quarter", "score", "comments").
		Values(
			score.ID,
			score.AccountID,
			score.Year,
			score.Quarter,
			score.Score,
			score.Comments,
		).
		Suffix(`
			ON CONFLICT (account_id, year, quarter) DO UPDATE SET
				score = EXCLUDED.score,
				comments = EXCLUDED.comments
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(scoreSQL, scoreArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
