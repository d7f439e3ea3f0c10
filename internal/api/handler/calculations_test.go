package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/grocery-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/grocery-manager-api/internal/domain"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/product"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/grocery-manager-api/internal/usecases/spending"
	"github.com/vfg2006/grocery-manager-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newCalcRouter(t *testing.T, productRepo *mocks.MockProductRepository) http.Handler {
	t.Helper()

	productService := product.NewService(productRepo)
	routes := Calculations(simulating.NewService(), spending.NewService(), productService)

	rt := httprouter.New()
	for _, route := range routes {
		rt.Handler(route.Method, route.Path, route.Handler)
	}
	return rt
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestSimulateRevenue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockProductRepo.EXPECT().
		GetSnapshotsByIDs(gomock.Any(), []int64{1, 2}).
		Return([]domain.ProductSnapshot{
			{Name: "Rice", InitialStock: 100, BuyPrice: 58.50, SellPrice: 72.00},
			{Name: "Milk", InitialStock: 60, BuyPrice: 48.00, SellPrice: 56.00},
		}, nil)

	rt := newCalcRouter(t, mockProductRepo)

	recorder := postJSON(t, rt, "/v1/calc/revenue", `{"product_ids":[1,2],"days":30,"seed":42}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.SimulationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))

	require.Len(t, result.Details, 2)
	assert.Equal(t, "Rice", result.Details[0].Product)
	assert.Equal(t, 100, result.Details[0].InitialStock)
	assert.Positive(t, result.Summary.TotalRevenue)
}

func TestSimulateRevenue_SameSeedSameResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockProductRepo.EXPECT().
		GetSnapshotsByIDs(gomock.Any(), []int64{1}).
		Return([]domain.ProductSnapshot{
			{Name: "Rice", InitialStock: 100, BuyPrice: 58.50, SellPrice: 72.00},
		}, nil).
		Times(2)

	rt := newCalcRouter(t, mockProductRepo)

	body := `{"product_ids":[1],"days":14,"seed":7}`
	first := postJSON(t, rt, "/v1/calc/revenue", body)
	second := postJSON(t, rt, "/v1/calc/revenue", body)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestSimulateRevenue_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	rt := newCalcRouter(t, mockProductRepo)

	tests := []struct {
		name string
		body string
	}{
		{"lista de produtos vazia", `{"product_ids":[],"days":7}`},
		{"identificador não positivo", `{"product_ids":[0],"days":7}`},
		{"corpo malformado", `{"product_ids":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, rt, "/v1/calc/revenue", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestSimulateRevenue_InvalidDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockProductRepo.EXPECT().
		GetSnapshotsByIDs(gomock.Any(), []int64{1}).
		Return([]domain.ProductSnapshot{
			{Name: "Rice", InitialStock: 100, BuyPrice: 58.50, SellPrice: 72.00},
		}, nil).
		Times(2)

	rt := newCalcRouter(t, mockProductRepo)

	for _, body := range []string{
		`{"product_ids":[1],"days":0}`,
		`{"product_ids":[1],"days":366}`,
	} {
		recorder := postJSON(t, rt, "/v1/calc/revenue", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}

func TestSimulateRevenue_NoMatchingProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockProductRepo.EXPECT().
		GetSnapshotsByIDs(gomock.Any(), []int64{999}).
		Return(nil, nil)

	rt := newCalcRouter(t, mockProductRepo)

	recorder := postJSON(t, rt, "/v1/calc/revenue", `{"product_ids":[999],"days":7}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAggregateSpend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newCalcRouter(t, mocks.NewMockProductRepository(ctrl))

	body := `{
		"year": 2025,
		"month": 1,
		"orders": [
			{"date": "2025-01-03", "qty": 2, "cost": 10, "category": "Fruit"},
			{"date": "2025-01-10T14:30:00", "qty": 1, "cost": 40, "category": "Vegetable"},
			{"date": "2025-01-15", "qty": 4, "cost": 5, "category": "Vegetable"},
			{"date": "2025-01-20", "qty": 3, "cost": 5, "category": "Dairy"},
			{"date": "2025-02-01", "qty": 9, "cost": 9, "category": "OutroMes"}
		]
	}`

	recorder := postJSON(t, rt, "/v1/calc/spend", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.SpendResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))

	assert.Equal(t, 95.0, result.TotalSpend)
	assert.Equal(t, map[string]float64{
		"Fruit":     20,
		"Vegetable": 60,
		"Dairy":     15,
	}, result.CategoryBreakdown)
	require.NotNil(t, result.HighestCostDriver)
	assert.Equal(t, "Vegetable", result.HighestCostDriver.Category)
}

func TestAggregateSpend_UnparsableDatesDroppedAtTheEdge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newCalcRouter(t, mocks.NewMockProductRepository(ctrl))

	// Data em formato irreconhecível e data vazia são descartadas na borda;
	// as demais linhas seguem para a agregação
	body := `{
		"year": 2025,
		"month": 1,
		"orders": [
			{"date": "2025-01-03", "qty": 2, "cost": 10, "category": "Fruit"},
			{"date": "03/01/2025", "qty": 5, "cost": 100, "category": "Fruit"},
			{"date": "", "qty": 7, "cost": 100, "category": "Fruit"}
		]
	}`

	recorder := postJSON(t, rt, "/v1/calc/spend", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result domain.SpendResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.Equal(t, 20.0, result.TotalSpend)
	assert.Equal(t, map[string]float64{"Fruit": 20}, result.CategoryBreakdown)
}

func TestAggregateSpend_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newCalcRouter(t, mocks.NewMockProductRepository(ctrl))

	for _, body := range []string{
		`{"year": 1999, "month": 1, "orders": []}`,
		`{"year": 2025, "month": 0, "orders": []}`,
		`{"year": 2025, "month": 13, "orders": []}`,
	} {
		recorder := postJSON(t, rt, "/v1/calc/spend", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}

func TestAggregateSpend_NegativeValuesRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rt := newCalcRouter(t, mocks.NewMockProductRepository(ctrl))

	body := `{
		"year": 2025,
		"month": 1,
		"orders": [{"date": "2025-01-03", "qty": -2, "cost": 10, "category": "Fruit"}]
	}`

	recorder := postJSON(t, rt, "/v1/calc/spend", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
