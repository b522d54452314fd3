package handlers_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/SscSPs/currency_bar/internal/core/domain"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/SscSPs/currency_bar/internal/core/services"
	"github.com/SscSPs/currency_bar/internal/dto"
	"github.com/SscSPs/currency_bar/internal/handlers"
	"github.com/SscSPs/currency_bar/internal/middleware"
	"github.com/SscSPs/currency_bar/internal/platform/config"
	"github.com/SscSPs/currency_bar/internal/utils/pagination"
	"github.com/SscSPs/currency_bar/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AssetService ---
type MockAssetService struct {
	mock.Mock
}

func (m *MockAssetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}
func (m *MockAssetService) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]domain.Asset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetService) ListMenubarAssets(ctx context.Context) ([]domain.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}
func (m *MockAssetService) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

var _ portssvc.AssetSvcFacade = (*MockAssetService)(nil)

// --- Mock RefreshService ---
type MockRefreshService struct {
	mock.Mock
}

func (m *MockRefreshService) SetInterval(d time.Duration) error {
	args := m.Called(d)
	return args.Error(0)
}
func (m *MockRefreshService) RefreshAll(ctx context.Context) (domain.RefreshReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RefreshReport), args.Error(1)
}
func (m *MockRefreshService) RefreshAssetAsync(assetID string) { m.Called(assetID) }
func (m *MockRefreshService) CancelAsset(assetID string)       { m.Called(assetID) }
func (m *MockRefreshService) Connected() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *MockRefreshService) Interval() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

var _ portssvc.RefreshSvc = (*MockRefreshService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Test Suite Setup ---
type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	mockAssets   *MockAssetService
	mockRefresh  *MockRefreshService
	mockSettings *MockSettingsService
	hub          *services.EventHub
	now          time.Time
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	validation.Initialize()
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.cfg = &config.Config{DisplayLocale: "en-US"}
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.mockAssets = new(MockAssetService)
	suite.mockRefresh = new(MockRefreshService)
	suite.mockSettings = new(MockSettingsService)
	suite.hub = services.NewEventHub()
	suite.router = suite.newRouter()
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.hub.Close()
	suite.mockAssets.AssertExpectations(suite.T())
	suite.mockRefresh.AssertExpectations(suite.T())
	suite.mockSettings.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(discardLogger()))
	handlers.RegisterRoutes(r, suite.cfg, &portssvc.ServiceContainer{
		Asset:    suite.mockAssets,
		Refresh:  suite.mockRefresh,
		Settings: suite.mockSettings,
		Events:   suite.hub,
	})
	return r
}

func (suite *HandlersTestSuite) asset(id string, offset time.Duration) *domain.Asset {
	a, err := domain.NewAsset(id, domain.MustCurrency("USD"), domain.MustCurrency("EUR"), decimal.NewFromInt(100), true, suite.now.Add(offset))
	suite.Require().NoError(err)
	return a
}

func (suite *HandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Assets ---

func (suite *HandlersTestSuite) TestCreateAsset_Success() {
	created := suite.asset("a1", 0)
	suite.mockAssets.On("CreateAsset", mock.Anything, mock.MatchedBy(func(req dto.CreateAssetRequest) bool {
		return req.OriginCountry == "US" && req.TargetCurrency == "EUR" &&
			req.OriginAmount != nil && req.OriginAmount.Equal(decimal.NewFromInt(100)) && req.ShowInMenubar
	})).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets", `{"originCountry":"US","targetCurrency":"EUR","originAmount":"100","showInMenubar":true}`)

	suite.Equal(http.StatusCreated, w.Code)
	var res dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("a1", res.ID)
	suite.Equal("USD", res.OriginCurrencyCode)
	suite.Equal("$100.00", res.FormattedOriginAmount)
	suite.False(res.Converted)
	suite.Nil(res.LastConvertedAt)
}

func (suite *HandlersTestSuite) TestCreateAsset_BindingErrors() {
	for name, body := range map[string]string{
		"malformed json":  `{"originCurrency":`,
		"no target":       `{"originCurrency":"USD","originAmount":"1"}`,
		"unknown country": `{"originCountry":"XX","targetCurrency":"EUR","originAmount":"1"}`,
		"bad code length": `{"originCurrency":"US","targetCurrency":"EUR","originAmount":"1"}`,
	} {
		w := suite.do(http.MethodPost, "/api/v1/assets", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
}

func (suite *HandlersTestSuite) TestCreateAsset_ServiceValidationError() {
	suite.mockAssets.On("CreateAsset", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("origin and target currency must differ")).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets", `{"originCurrency":"USD","targetCurrency":"USD","originAmount":"1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "must differ")
}

func (suite *HandlersTestSuite) TestCreateAsset_ServiceFailure() {
	suite.mockAssets.On("CreateAsset", mock.Anything, mock.Anything).Return(nil, assertErr("db down")).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets", `{"originCurrency":"USD","targetCurrency":"EUR","originAmount":"1"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to create asset")
}

func (suite *HandlersTestSuite) TestListAssets_Pagination() {
	a, b, c := suite.asset("a", 0), suite.asset("b", time.Minute), suite.asset("c", 2*time.Minute)

	suite.mockAssets.On("ListAssets", mock.Anything, domain.AssetFilter{Limit: 3}).
		Return([]domain.Asset{*a, *b, *c}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/assets?limit=2", "")
	suite.Equal(http.StatusOK, w.Code)
	var page dto.ListAssetsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Len(page.Assets, 2)
	suite.Equal("b", page.Assets[1].ID)
	suite.Require().NotEmpty(page.NextToken)

	lastUpdate, id, err := pagination.DecodeToken(page.NextToken)
	suite.Require().NoError(err)
	suite.Equal("b", id)

	suite.mockAssets.On("ListAssets", mock.Anything, mock.MatchedBy(func(f domain.AssetFilter) bool {
		return f.Limit == 3 && f.AfterID == "b" && f.AfterLastUpdate.Equal(lastUpdate)
	})).Return([]domain.Asset{*c}, nil).Once()

	w = suite.do(http.MethodGet, "/api/v1/assets?limit=2&nextToken="+page.NextToken, "")
	suite.Equal(http.StatusOK, w.Code)
	var next dto.ListAssetsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &next))
	suite.Len(next.Assets, 1)
	suite.Empty(next.NextToken)
}

func (suite *HandlersTestSuite) TestListAssets_MenubarFilterAndDefaults() {
	suite.mockAssets.On("ListAssets", mock.Anything, domain.AssetFilter{MenubarOnly: true, Limit: 21}).
		Return([]domain.Asset{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/assets?menubarOnly=true", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"assets":[]}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListAssets_BadInput() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/assets?limit=0", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/assets?limit=500", "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/assets?nextToken=!!!", "").Code)
}

func (suite *HandlersTestSuite) TestGetAsset() {
	converted := suite.asset("a1", 0)
	converted.ApplyConversion(decimal.RequireFromString("91.5"), suite.now.Add(time.Hour))
	suite.mockAssets.On("GetAssetByID", mock.Anything, "a1").Return(converted, nil).Once()
	suite.mockAssets.On("GetAssetByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("asset missing")).Once()

	w := suite.do(http.MethodGet, "/api/v1/assets/a1", "")
	suite.Equal(http.StatusOK, w.Code)
	var res dto.AssetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Converted)
	suite.Equal("€91.50", res.FormattedTargetAmount)
	suite.Equal("●", res.TrendIndicator)
	suite.Require().NotNil(res.LastConvertedAt)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/assets/missing", "").Code)
}

func (suite *HandlersTestSuite) TestDeleteAsset() {
	suite.mockAssets.On("DeleteAsset", mock.Anything, "a1").Return(nil).Once()
	suite.mockAssets.On("DeleteAsset", mock.Anything, "gone").Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/assets/a1", "").Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/assets/gone", "").Code)
}

func (suite *HandlersTestSuite) TestRefreshAssets() {
	report := domain.RefreshReport{Attempted: 3, Updated: 2, Failed: 1}
	suite.mockRefresh.On("RefreshAll", mock.Anything).Return(report, nil).Once()
	suite.mockRefresh.On("Connected").Return(true).Once()

	w := suite.do(http.MethodPost, "/api/v1/assets/refresh", "")
	suite.Equal(http.StatusOK, w.Code)
	var res dto.RefreshResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.Connected)
	suite.Equal(report, res.Report)
}

// --- Menubar ---

func (suite *HandlersTestSuite) TestMenubar() {
	up := suite.asset("a1", 0)
	up.ApplyConversion(decimal.RequireFromString("90"), suite.now.Add(time.Hour))
	up.ApplyConversion(decimal.RequireFromString("92.345"), suite.now.Add(2*time.Hour))
	suite.mockAssets.On("ListMenubarAssets", mock.Anything).Return([]domain.Asset{*up}, nil).Once()
	suite.mockRefresh.On("Connected").Return(false).Once()

	w := suite.do(http.MethodGet, "/api/v1/menubar", "")
	suite.Equal(http.StatusOK, w.Code)
	var res dto.MenubarResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.False(res.Connected)
	suite.Require().Len(res.Items, 1)
	suite.Equal("USD/EUR", res.Items[0].Pair)
	suite.Equal("€92.34", res.Items[0].FormattedAmount)
	suite.Equal("▲", res.Items[0].TrendIndicator)
	suite.Equal("green", res.Items[0].TrendColor)
}

// --- Settings ---

func (suite *HandlersTestSuite) TestGetSettings() {
	suite.mockSettings.On("GetSettings", mock.Anything).
		Return(domain.Settings{RefreshInterval: 2 * time.Hour, LaunchAtLogin: true}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"checkIntervalSeconds":7200,"checkIntervalHours":2,"launchAtLogin":true}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestUpdateSettings() {
	suite.mockSettings.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(req dto.UpdateSettingsRequest) bool {
		return req.CheckIntervalHours != nil && *req.CheckIntervalHours == 3 && req.LaunchAtLogin == nil
	})).Return(domain.Settings{RefreshInterval: 3 * time.Hour}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/settings", `{"checkIntervalHours":3}`)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"checkIntervalHours":3`)
}

func (suite *HandlersTestSuite) TestUpdateSettings_RejectsBadInterval() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/settings", `{"checkIntervalHours":0}`).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/settings", `{"checkIntervalHours":1000}`).Code)
}

// --- Countries ---

func (suite *HandlersTestSuite) TestCountries() {
	w := suite.do(http.MethodGet, "/api/v1/countries?currency=eur", "")
	suite.Equal(http.StatusOK, w.Code)
	var byCurrency []dto.CountryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &byCurrency))
	suite.NotEmpty(byCurrency)
	for _, c := range byCurrency {
		suite.Equal("EUR", c.Currency)
	}

	w = suite.do(http.MethodGet, "/api/v1/countries?name=germany", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"alpha3":"DEU"`)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/countries?name=atlantis", "").Code)

	w = suite.do(http.MethodGet, "/api/v1/countries?calling=44", "")
	suite.Equal(http.StatusOK, w.Code)
	var byCalling []dto.CountryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &byCalling))
	suite.Len(byCalling, 3)
	suite.Contains(w.Body.String(), `"alpha2":"GB"`)

	w = suite.do(http.MethodGet, "/api/v1/countries/840", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"currencySymbol":"$"`)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/countries/XX", "").Code)
}

// --- Health & auth ---

func (suite *HandlersTestSuite) TestHealth() {
	suite.mockRefresh.On("Connected").Return(true).Once()
	suite.mockRefresh.On("Interval").Return(time.Hour).Once()

	w := suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok","connected":true,"checkIntervalSeconds":3600}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestBearerAuth() {
	suite.cfg.JWTSecret = "test-secret"
	suite.router = suite.newRouter()

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/countries/US", "").Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "menubar-client",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries/US", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "menubar-client",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err = expired.SignedString([]byte("test-secret"))
	suite.Require().NoError(err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/countries/US", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "expired")
}

// --- Event stream ---

func (suite *HandlersTestSuite) TestAssetEventStream() {
	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/assets/events", nil)
	suite.Require().NoError(err)

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(resp.Header.Get("Content-Type"), "text/event-stream")

	// The handler subscribes before the headers are flushed
	suite.Equal(1, suite.hub.SubscriberCount())
	suite.hub.Publish(domain.AssetEvent{Type: domain.AssetDeleted, AssetID: "a1", At: suite.now})

	scanner := bufio.NewScanner(resp.Body)
	var eventLine, dataLine string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event:") {
			eventLine = line
		}
		if strings.HasPrefix(line, "data:") {
			dataLine = line
			break
		}
	}
	suite.Equal("event:asset.deleted", eventLine)
	suite.Contains(dataLine, `"assetID":"a1"`)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
