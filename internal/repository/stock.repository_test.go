package repository

import (
	"context"
	"database/sql"
	"insightengine/internal/db"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/domain"
	"insightengine/internal/util"
	"testing"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDb connects to the local test database and applies the
// schema. tests are skipped when it isn't running
func newTestDb(t *testing.T) *sql.DB {
	dbConn, err := util.NewTestDb()
	require.NoError(t, err)
	if err := dbConn.Ping(); err != nil {
		t.Skipf("test db not reachable: %v", err)
	}
	require.NoError(t, db.Migrate(context.Background(), dbConn))
	t.Cleanup(func() { dbConn.Close() })
	return dbConn
}

func beginTx(t *testing.T, dbConn *sql.DB) *sql.Tx {
	tx, err := dbConn.Begin()
	require.NoError(t, err)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func seedStock(t *testing.T, tx *sql.Tx, symbol string) *model.Stock {
	stock, err := NewStockRepository(nil).Add(tx, model.Stock{
		Symbol:      symbol,
		CompanyName: symbol + " Inc",
		Sector:      util.StringPointer("Technology"),
	})
	require.NoError(t, err)
	return stock
}

func Test_stockRepositoryHandler(t *testing.T) {
	dbConn := newTestDb(t)
	handler := NewStockRepository(dbConn)

	t.Run("add and get by symbol", func(t *testing.T) {
		tx := beginTx(t, dbConn)

		added, err := handler.Add(tx, model.Stock{
			Symbol:      "ZZTA",
			CompanyName: "Test Co",
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, added.StockID)
		require.Nil(t, added.Sector)

		got, err := handler.GetBySymbol(tx, "ZZTA")
		require.NoError(t, err)
		require.Equal(t, added.StockID, got.StockID)
		require.Equal(t, "Test Co", got.CompanyName)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		tx := beginTx(t, dbConn)

		_, err := handler.GetBySymbol(tx, "ZZNOPE")
		require.ErrorIs(t, err, domain.ErrStockNotFound)
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		tx := beginTx(t, dbConn)
		seedStock(t, tx, "ZZTB")

		_, err := handler.Add(tx, model.Stock{
			Symbol:      "ZZTB",
			CompanyName: "Someone Else",
		})
		require.ErrorIs(t, err, domain.ErrDuplicateSymbol)
	})

	t.Run("list is ordered by symbol", func(t *testing.T) {
		tx := beginTx(t, dbConn)
		seedStock(t, tx, "ZZTD")
		seedStock(t, tx, "ZZTC")

		stocks, err := handler.List(tx)
		require.NoError(t, err)

		symbols := []string{}
		for _, s := range stocks {
			if s.Symbol == "ZZTC" || s.Symbol == "ZZTD" {
				symbols = append(symbols, s.Symbol)
			}
		}
		require.Equal(t, []string{"ZZTC", "ZZTD"}, symbols)
	})

	t.Run("delete removes prices too", func(t *testing.T) {
		tx := beginTx(t, dbConn)
		stock := seedStock(t, tx, "ZZTE")

		priceRepository := NewHistoricalPriceRepository(dbConn)
		_, err := priceRepository.Upsert(tx, model.HistoricalPrice{
			StockID:    stock.StockID,
			Date:       util.NewDate(2024, 1, 2),
			OpenPrice:  decimal.NewFromInt(10),
			ClosePrice: decimal.NewFromInt(11),
			HighPrice:  decimal.NewFromInt(12),
			LowPrice:   decimal.NewFromInt(9),
			Volume:     1000,
		})
		require.NoError(t, err)

		err = handler.Delete(tx, stock.StockID)
		require.NoError(t, err)

		prices, err := priceRepository.ListForStock(tx, stock.StockID)
		require.NoError(t, err)
		require.Empty(t, prices)

		err = handler.Delete(tx, stock.StockID)
		require.ErrorIs(t, err, domain.ErrStockNotFound)
	})
}
