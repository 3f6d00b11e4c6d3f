package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/lucasraugi/presentes-api/internal/domain/contribution"
	"github.com/lucasraugi/presentes-api/internal/domain/gift"
	"github.com/lucasraugi/presentes-api/internal/domain/ledger"
	"github.com/lucasraugi/presentes-api/internal/logger"
	"github.com/lucasraugi/presentes-api/internal/pix"
	"github.com/lucasraugi/presentes-api/internal/storage/database"
)

func setupContributionRouter(t *testing.T) (*gin.Engine, *ledger.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Initialize("error")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&gift.Gift{}, &contribution.Contribution{}))

	svc := ledger.NewService(database.NewGiftRepository(db), database.NewContributionRepository(db))
	encoder := pix.NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO")
	handler := NewContributionHandler(svc, encoder)

	router := gin.New()
	router.POST("/api/gifts/:id/contributions", handler.CreateContribution)
	router.GET("/api/contributions", handler.GetAllContributions)
	router.PATCH("/api/contributions/:id", handler.UpdateContribution)
	router.DELETE("/api/contributions/:id", handler.DeleteContribution)
	router.GET("/api/contributions/export", handler.ExportContributions)

	return router, svc
}

func seedGift(t *testing.T, svc *ledger.Service, total, share string) *gift.Gift {
	t.Helper()
	g, err := svc.CreateGift(ledger.CreateGiftRequest{
		Name:        "Liquidificador",
		TotalAmount: decimal.RequireFromString(total),
		ShareAmount: decimal.RequireFromString(share),
	})
	require.NoError(t, err)
	return g
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateContributionReturnsPayloadAndQR(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "100.00", "25.00")

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/gifts/%s/contributions", g.ID),
		gin.H{"guest_name": "Maria", "shares": 2})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Contribution contribution.Contribution `json:"contribution"`
			PixPayload   string                    `json:"pix_payload"`
			QRPNGBase64  string                    `json:"qr_png_base64"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Maria", resp.Data.Contribution.GuestName)
	assert.Equal(t, 2, resp.Data.Contribution.Shares)
	assert.True(t, strings.HasPrefix(resp.Data.PixPayload, "000201"), "payload %q", resp.Data.PixPayload)
	assert.Contains(t, resp.Data.PixPayload, "540550.00")
	assert.NotEmpty(t, resp.Data.QRPNGBase64)
}

func TestCreateContributionInsufficientQuota(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "50.00", "25.00") // 2 shares

	w := doJSON(router, http.MethodPost, fmt.Sprintf("/api/gifts/%s/contributions", g.ID),
		gin.H{"guest_name": "Ganancioso", "shares": 3})

	assert.Equal(t, http.StatusConflict, w.Code)

	// A rejected claim must not hand out a payment payload.
	assert.NotContains(t, w.Body.String(), "pix_payload")

	updated, err := svc.GetGift(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.RemainingShares)
}

func TestCreateContributionUnknownGift(t *testing.T) {
	router, _ := setupContributionRouter(t)

	w := doJSON(router, http.MethodPost, "/api/gifts/6b9f6d2e-8e2a-4a1e-9f4b-0c2d1a3e5f70/contributions",
		gin.H{"guest_name": "Maria", "shares": 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContributionRejectsBadInput(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "100.00", "25.00")

	w := doJSON(router, http.MethodPost, "/api/gifts/not-a-uuid/contributions",
		gin.H{"guest_name": "Maria", "shares": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, fmt.Sprintf("/api/gifts/%s/contributions", g.ID),
		gin.H{"guest_name": "Maria"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing shares must be rejected")
}

func TestUpdateContributionAdjustsGift(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "200.00", "20.00") // 10 shares

	c, err := svc.RecordContribution(g.ID, "Maria", 4)
	require.NoError(t, err)

	w := doJSON(router, http.MethodPatch, "/api/contributions/"+c.ID.String(),
		gin.H{"shares": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := svc.GetGift(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.RemainingShares)
}

func TestUpdateContributionNothingToUpdate(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "100.00", "25.00")

	c, err := svc.RecordContribution(g.ID, "Maria", 1)
	require.NoError(t, err)

	w := doJSON(router, http.MethodPatch, "/api/contributions/"+c.ID.String(), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteContributionEndpoint(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "100.00", "25.00")

	c, err := svc.RecordContribution(g.ID, "Maria", 3)
	require.NoError(t, err)

	w := doJSON(router, http.MethodDelete, "/api/contributions/"+c.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := svc.GetGift(g.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.RemainingShares)

	w = doJSON(router, http.MethodDelete, "/api/contributions/"+c.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// unavailableContributionRepo fails every call the way the storage layer
// does when the database is unreachable.
type unavailableContributionRepo struct{}

func (unavailableContributionRepo) Claim(uuid.UUID, string, int) (*contribution.Contribution, error) {
	return nil, fmt.Errorf("%w: connection refused", ledger.ErrStorageUnavailable)
}

func (unavailableContributionRepo) GetByID(uuid.UUID) (*contribution.Contribution, error) {
	return nil, fmt.Errorf("%w: connection refused", ledger.ErrStorageUnavailable)
}

func (unavailableContributionRepo) GetAll() ([]*contribution.Contribution, error) {
	return nil, fmt.Errorf("%w: connection refused", ledger.ErrStorageUnavailable)
}

func (unavailableContributionRepo) Update(*contribution.Contribution, int) error {
	return fmt.Errorf("%w: connection refused", ledger.ErrStorageUnavailable)
}

func (unavailableContributionRepo) Delete(uuid.UUID) error {
	return fmt.Errorf("%w: connection refused", ledger.ErrStorageUnavailable)
}

func TestContributionEndpointsMapStorageFailureTo503(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("error")

	svc := ledger.NewService(nil, unavailableContributionRepo{})
	handler := NewContributionHandler(svc, pix.NewEncoder("43130257829", "LUCAS HENRIQUE R RAUGI", "MATAO"))

	router := gin.New()
	router.GET("/api/contributions", handler.GetAllContributions)
	router.POST("/api/gifts/:id/contributions", handler.CreateContribution)

	w := doJSON(router, http.MethodGet, "/api/contributions", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(router, http.MethodPost, "/api/gifts/6b9f6d2e-8e2a-4a1e-9f4b-0c2d1a3e5f70/contributions",
		gin.H{"guest_name": "Maria", "shares": 1})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportContributionsEndpoint(t *testing.T) {
	router, svc := setupContributionRouter(t)
	g := seedGift(t, svc, "100.00", "25.00")

	_, err := svc.RecordContribution(g.ID, "Maria", 2)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/contributions/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "contribuicoes.csv")
	assert.Contains(t, w.Body.String(), "Maria")
	assert.Contains(t, w.Body.String(), "Liquidificador")
	assert.Contains(t, w.Body.String(), "50,00")
}
