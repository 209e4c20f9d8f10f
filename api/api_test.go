package api

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/domain"
	"insightengine/internal/service"
	mock_service "insightengine/internal/service/mocks"
	"insightengine/internal/util"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// noopDriver hands out transactions that do nothing, so resolvers can
// open and close them without a database behind the mocked services
type noopDriver struct{}

type noopConn struct{}

type noopTx struct{}

func (noopDriver) Open(name string) (driver.Conn, error) { return noopConn{}, nil }

func (noopConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("statements are not supported")
}
func (noopConn) Close() error              { return nil }
func (noopConn) Begin() (driver.Tx, error) { return noopTx{}, nil }
func (noopConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	return noopTx{}, nil
}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

func init() {
	sql.Register("insightengine-noop", noopDriver{})
	gin.SetMode(gin.TestMode)
}

type apiTestMocks struct {
	stockService     *mock_service.MockStockService
	analyticsService *mock_service.MockAnalyticsService
}

func newTestRouter(t *testing.T) (*gin.Engine, apiTestMocks) {
	db, err := sql.Open("insightengine-noop", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	mocks := apiTestMocks{
		stockService:     mock_service.NewMockStockService(ctrl),
		analyticsService: mock_service.NewMockAnalyticsService(ctrl),
	}
	handler := ApiHandler{
		Db:               db,
		StockService:     mocks.stockService,
		AnalyticsService: mocks.analyticsService,
	}
	return handler.InitializeRouterEngine(), mocks
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "GET", "/", "")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"message":"InsightEngine is running"}`, w.Body.String())
}

func TestCreateStock(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("happy path", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		stockID := uuid.MustParse("7b0e2f0c-5a3c-4a53-9c1b-1f5d4d2f6a11")
		mocks.stockService.EXPECT().
			CreateStock(gomock.Any(), gomock.Any(), service.CreateStockInput{
				Symbol:      "aapl",
				CompanyName: "Apple Inc.",
				Sector:      util.StringPointer("Technology"),
			}).
			Return(&model.Stock{
				StockID:     stockID,
				Symbol:      "AAPL",
				CompanyName: "Apple Inc.",
				Sector:      util.StringPointer("Technology"),
				CreatedAt:   createdAt,
			}, nil)

		w := doRequest(router, "POST", "/stocks", `{"symbol":"aapl","company_name":"Apple Inc.","sector":"Technology"}`)
		require.Equal(t, 200, w.Code)
		require.JSONEq(
			t,
			fmt.Sprintf(`{
				"stock_id": "%s",
				"symbol": "AAPL",
				"company_name": "Apple Inc.",
				"sector": "Technology",
				"created_at": "2024-03-01T12:00:00Z"
			}`, stockID),
			w.Body.String(),
		)
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.stockService.EXPECT().
			CreateStock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to insert AAPL: %w", domain.ErrDuplicateSymbol))

		w := doRequest(router, "POST", "/stocks", `{"symbol":"AAPL","company_name":"Apple Inc."}`)
		require.Equal(t, 409, w.Code)
	})

	t.Run("invalid input", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.stockService.EXPECT().
			CreateStock(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("symbol must be 1-10 characters: %w", domain.ErrInvalidInput))

		w := doRequest(router, "POST", "/stocks", `{"symbol":"","company_name":"Apple Inc."}`)
		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(router, "POST", "/stocks", `{"symbol":`)
		require.Equal(t, 400, w.Code)
	})
}

func TestGetStock(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.stockService.EXPECT().
			GetStock(gomock.Any(), gomock.Any(), "ZZZZ").
			Return(nil, domain.ErrStockNotFound)

		w := doRequest(router, "GET", "/stocks/ZZZZ", "")
		require.Equal(t, 404, w.Code)
		require.JSONEq(t, `{"detail":"Stock not found"}`, w.Body.String())
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.stockService.EXPECT().
			GetStock(gomock.Any(), gomock.Any(), "AAPL").
			Return(nil, errors.New("connection refused"))

		w := doRequest(router, "GET", "/stocks/AAPL", "")
		require.Equal(t, 500, w.Code)
		require.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
	})
}

func TestDeleteStock(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.stockService.EXPECT().
		DeleteStock(gomock.Any(), gomock.Any(), "AAPL").
		Return(nil)

	w := doRequest(router, "DELETE", "/stocks/AAPL", "")
	require.Equal(t, 200, w.Code)
}

func TestCreatePrice(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		priceID := uuid.MustParse("0d6b1f3e-2c1a-4f1e-8e55-0e6f0bb8f0a2")
		stockID := uuid.MustParse("7b0e2f0c-5a3c-4a53-9c1b-1f5d4d2f6a11")
		mocks.stockService.EXPECT().
			AddPrice(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, tx *sql.Tx, in service.AddPriceInput) (*model.HistoricalPrice, error) {
				require.Equal(t, "AAPL", in.StockSymbol)
				require.Equal(t, util.NewDate(2024, 1, 2), in.Date)
				require.Equal(t, "185.64", in.Close.String())
				return &model.HistoricalPrice{
					HistoricalPriceID: priceID,
					StockID:           stockID,
					Date:              in.Date,
					OpenPrice:         in.Open,
					HighPrice:         in.High,
					LowPrice:          in.Low,
					ClosePrice:        in.Close,
					Volume:            in.Volume,
				}, nil
			})

		w := doRequest(router, "POST", "/prices", `{
			"stock_symbol": "AAPL",
			"date": "2024-01-02",
			"open_price": 187.15,
			"high_price": 188.44,
			"low_price": 183.89,
			"close_price": 185.64,
			"volume": 82488700
		}`)
		require.Equal(t, 200, w.Code)
		require.JSONEq(
			t,
			fmt.Sprintf(`{
				"historical_price_id": "%s",
				"stock_id": "%s",
				"date": "2024-01-02",
				"open_price": "187.15",
				"high_price": "188.44",
				"low_price": "183.89",
				"close_price": "185.64",
				"volume": 82488700
			}`, priceID, stockID),
			w.Body.String(),
		)
	})

	t.Run("unknown stock", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.stockService.EXPECT().
			AddPrice(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrStockNotFound)

		w := doRequest(router, "POST", "/prices", `{"stock_symbol":"ZZZZ","date":"2024-01-02","open_price":1,"high_price":1,"low_price":1,"close_price":1,"volume":1}`)
		require.Equal(t, 404, w.Code)
		require.JSONEq(t, `{"detail":"Stock not found"}`, w.Body.String())
	})

	t.Run("missing price", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(router, "POST", "/prices", `{"stock_symbol":"AAPL","date":"2024-01-02","open_price":1,"high_price":1,"low_price":1,"volume":1}`)
		require.Equal(t, 400, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(router, "POST", "/prices", `{"stock_symbol":"AAPL","date":"01/02/2024","open_price":1,"high_price":1,"low_price":1,"close_price":1,"volume":1}`)
		require.Equal(t, 400, w.Code)
	})
}

func TestListPrices(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.stockService.EXPECT().
		ListPrices(gomock.Any(), gomock.Any(), "AAPL").
		Return([]model.HistoricalPrice{}, nil)

	w := doRequest(router, "GET", "/stocks/AAPL/prices", "")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestGetReturns(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.analyticsService.EXPECT().
			GetReturns(gomock.Any(), gomock.Any(), "AAPL").
			Return([]domain.ReturnSample{
				{Date: util.NewDate(2024, 1, 2), DailyReturn: 0.02},
				{Date: util.NewDate(2024, 1, 3), DailyReturn: -0.009804},
			}, nil)

		w := doRequest(router, "GET", "/stocks/AAPL/returns", "")
		require.Equal(t, 200, w.Code)
		require.JSONEq(
			t,
			`[{"date":"2024-01-02","daily_return":0.02},{"date":"2024-01-03","daily_return":-0.009804}]`,
			w.Body.String(),
		)
	})

	t.Run("not enough data", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.analyticsService.EXPECT().
			GetReturns(gomock.Any(), gomock.Any(), "AAPL").
			Return(nil, fmt.Errorf("cannot calculate returns on 1 prices: %w", domain.ErrInsufficientData))

		w := doRequest(router, "GET", "/stocks/AAPL/returns", "")
		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"message":"Not enough data"}`, w.Body.String())
	})

	t.Run("zero close", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.analyticsService.EXPECT().
			GetReturns(gomock.Any(), gomock.Any(), "AAPL").
			Return(nil, fmt.Errorf("close price at position 0 is zero: %w", domain.ErrDivisionByZero))

		w := doRequest(router, "GET", "/stocks/AAPL/returns", "")
		require.Equal(t, 422, w.Code)
	})
}

func TestGetVolatility(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.analyticsService.EXPECT().
		GetVolatility(gomock.Any(), gomock.Any(), "AAPL").
		Return(0.020313, nil)

	w := doRequest(router, "GET", "/stocks/AAPL/volatility", "")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"volatility":0.020313}`, w.Body.String())
}

func TestGetRiskScore(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.analyticsService.EXPECT().
			GetRiskScore(gomock.Any(), gomock.Any(), "AAPL").
			Return(&domain.RiskScore{Score: 0.026234, Level: domain.RiskLevel_Medium}, nil)

		w := doRequest(router, "GET", "/stocks/AAPL/risk-score", "")
		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"risk_score":0.026234,"risk_level":"Medium"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, mocks := newTestRouter(t)

		mocks.analyticsService.EXPECT().
			GetRiskScore(gomock.Any(), gomock.Any(), "ZZZZ").
			Return(nil, domain.ErrStockNotFound)

		w := doRequest(router, "GET", "/stocks/ZZZZ/risk-score", "")
		require.Equal(t, 404, w.Code)
	})
}

func TestPredict(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.analyticsService.EXPECT().
		PredictNextClose(gomock.Any(), gomock.Any(), "AAPL").
		Return(&domain.TrendForecast{Slope: 1, Intercept: 10, PredictedNextClose: 15}, nil)

	w := doRequest(router, "GET", "/stocks/AAPL/predict", "")
	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"predicted_next_close":15}`, w.Body.String())
}

func TestCreatePriceRequest_toInput(t *testing.T) {
	price := decimal.NewFromInt(10)
	in, err := createPriceRequest{
		StockSymbol: "AAPL",
		Date:        "2024-01-02",
		OpenPrice:   &price,
		HighPrice:   &price,
		LowPrice:    &price,
		ClosePrice:  &price,
		Volume:      5,
	}.toInput()
	require.NoError(t, err)
	require.Equal(t, util.NewDate(2024, 1, 2), in.Date)
	require.True(t, in.Close.Equal(price))
}

func Test_newPriceResponse(t *testing.T) {
	out := newPriceResponse(model.HistoricalPrice{
		Date:       time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC),
		ClosePrice: decimal.RequireFromString("185.64"),
	})
	require.Equal(t, "2024-01-02", out.Date)
}
