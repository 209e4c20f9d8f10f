package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	. "insightengine/internal/db/models/postgres/public/table"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type HistoricalPriceRepository interface {
	Upsert(tx *sql.Tx, p model.HistoricalPrice) (*model.HistoricalPrice, error)
	UpsertMany(tx *sql.Tx, prices []model.HistoricalPrice) error
	ListForStock(tx *sql.Tx, stockID uuid.UUID) ([]model.HistoricalPrice, error)
}

type historicalPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewHistoricalPriceRepository(db *sql.DB) HistoricalPriceRepository {
	return historicalPriceRepositoryHandler{Db: db}
}

func (h historicalPriceRepositoryHandler) queryable(tx *sql.Tx) qrm.Queryable {
	if tx != nil {
		return tx
	}
	return h.Db
}

func (h historicalPriceRepositoryHandler) executable(tx *sql.Tx) qrm.Executable {
	if tx != nil {
		return tx
	}
	return h.Db
}

// a second write for the same stock and date replaces the first
func upsertOnStockDate(stmt InsertStatement) InsertStatement {
	return stmt.ON_CONFLICT(
		HistoricalPrice.StockID, HistoricalPrice.Date,
	).DO_UPDATE(
		SET(
			HistoricalPrice.OpenPrice.SET(HistoricalPrice.EXCLUDED.OpenPrice),
			HistoricalPrice.ClosePrice.SET(HistoricalPrice.EXCLUDED.ClosePrice),
			HistoricalPrice.HighPrice.SET(HistoricalPrice.EXCLUDED.HighPrice),
			HistoricalPrice.LowPrice.SET(HistoricalPrice.EXCLUDED.LowPrice),
			HistoricalPrice.Volume.SET(HistoricalPrice.EXCLUDED.Volume),
		),
	)
}

func (h historicalPriceRepositoryHandler) Upsert(tx *sql.Tx, p model.HistoricalPrice) (*model.HistoricalPrice, error) {
	p.CreatedAt = time.Now().UTC()

	query := upsertOnStockDate(
		HistoricalPrice.
			INSERT(HistoricalPrice.MutableColumns).
			MODEL(p),
	).RETURNING(HistoricalPrice.AllColumns)

	out := model.HistoricalPrice{}
	err := query.Query(h.queryable(tx), &out)
	if err != nil {
		return nil, fmt.Errorf("failed to add price for %s on %s: %w", p.StockID, p.Date.Format(time.DateOnly), err)
	}

	return &out, nil
}

// postgres accepts at most 65535 bind parameters in one statement
const maxBindParams = 65535

// upsertManyStatements splits prices into as few inserts as fit
// under maxBindParams
func upsertManyStatements(prices []model.HistoricalPrice) []InsertStatement {
	batchSize := maxBindParams / len(HistoricalPrice.MutableColumns)

	out := []InsertStatement{}
	for start := 0; start < len(prices); start += batchSize {
		end := min(start+batchSize, len(prices))
		out = append(out, upsertOnStockDate(
			HistoricalPrice.
				INSERT(HistoricalPrice.MutableColumns).
				MODELS(prices[start:end]),
		))
	}

	return out
}

func (h historicalPriceRepositoryHandler) UpsertMany(tx *sql.Tx, prices []model.HistoricalPrice) error {
	if len(prices) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range prices {
		prices[i].CreatedAt = now
	}

	for _, query := range upsertManyStatements(prices) {
		_, err := query.Exec(h.executable(tx))
		if err != nil {
			return fmt.Errorf("failed to add %d prices: %w", len(prices), err)
		}
	}

	return nil
}

// ListForStock returns every price of the stock, oldest first
func (h historicalPriceRepositoryHandler) ListForStock(tx *sql.Tx, stockID uuid.UUID) ([]model.HistoricalPrice, error) {
	query := HistoricalPrice.
		SELECT(HistoricalPrice.AllColumns).
		WHERE(HistoricalPrice.StockID.EQ(UUID(stockID))).
		ORDER_BY(HistoricalPrice.Date.ASC())

	out := []model.HistoricalPrice{}
	err := query.Query(h.queryable(tx), &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return []model.HistoricalPrice{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", stockID, err)
	}

	return out, nil
}
