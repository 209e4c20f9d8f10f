package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/db/models/postgres/public/table"
	"insightengine/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type StockRepository interface {
	Add(tx *sql.Tx, s model.Stock) (*model.Stock, error)
	GetBySymbol(tx *sql.Tx, symbol string) (*model.Stock, error)
	List(tx *sql.Tx) ([]model.Stock, error)
	Delete(tx *sql.Tx, stockID uuid.UUID) error
}

type stockRepositoryHandler struct {
	Db *sql.DB
}

func NewStockRepository(db *sql.DB) StockRepository {
	return stockRepositoryHandler{Db: db}
}

func (h stockRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h stockRepositoryHandler) executable(tx *sql.Tx) qrm.Executable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func (h stockRepositoryHandler) Add(tx *sql.Tx, s model.Stock) (*model.Stock, error) {
	s.CreatedAt = time.Now().UTC()

	query := table.Stock.
		INSERT(table.Stock.MutableColumns).
		MODEL(s).
		RETURNING(table.Stock.AllColumns)

	out := model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("failed to insert stock %s: %w", s.Symbol, domain.ErrDuplicateSymbol)
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert stock %s: %w", s.Symbol, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) GetBySymbol(tx *sql.Tx, symbol string) (*model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		WHERE(table.Stock.Symbol.EQ(postgres.String(symbol)))

	out := model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrStockNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get stock %s: %w", symbol, err)
	}

	return &out, nil
}

func (h stockRepositoryHandler) List(tx *sql.Tx) ([]model.Stock, error) {
	query := table.Stock.
		SELECT(table.Stock.AllColumns).
		ORDER_BY(table.Stock.Symbol.ASC())

	out := []model.Stock{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.Stock{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	return out, nil
}

// Delete removes the stock. its prices go with it through the
// ON DELETE CASCADE on historical_price
func (h stockRepositoryHandler) Delete(tx *sql.Tx, stockID uuid.UUID) error {
	query := table.Stock.
		DELETE().
		WHERE(table.Stock.StockID.EQ(postgres.UUID(stockID)))

	result, err := query.Exec(h.executable(tx))
	if err != nil {
		return fmt.Errorf("failed to delete stock %s: %w", stockID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted stocks: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", stockID, domain.ErrStockNotFound)
	}

	return nil
}
