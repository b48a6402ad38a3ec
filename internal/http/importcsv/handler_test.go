package importcsv_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/frostguard/frostguard/internal/catalog"
	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/http/importcsv"
	"github.com/frostguard/frostguard/internal/importer"
	"github.com/frostguard/frostguard/internal/maintenance"
	"github.com/frostguard/frostguard/internal/payment"
)

func upload(t *testing.T, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "pagamentos.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_Import(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := payment.NewMockRepository(ctrl)
	maintenances := payment.NewMockMaintenanceLookup(ctrl)
	centers := payment.NewMockCostCenterLookup(ctrl)
	itx := payment.NewMockImportTx(ctrl)

	finished := uuid.New()
	open := uuid.New()

	centers.EXPECT().ListCostCenters(gomock.Any()).Return([]*catalog.CostCenter{
		{ID: uuid.New(), Name: "Montevideo", Currency: currency.UYU},
	}, nil)
	maintenances.EXPECT().Get(gomock.Any(), finished).Return(&maintenance.Maintenance{ID: finished, Status: maintenance.StatusFinished}, nil)
	maintenances.EXPECT().Get(gomock.Any(), open).Return(&maintenance.Maintenance{ID: open, Status: maintenance.StatusInTreatment}, nil)
	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().CreatePayments(gomock.Any(), gomock.Len(1)).DoAndReturn(func(_ context.Context, ps []*payment.Payment) error {
		ps[0].ID = uuid.New()
		return nil
	})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	csv := "Manutenção;Centro de custo;NF;Valor;Vencimento\n" +
		finished.String() + ";Montevideo;NF-1;1.500,00;05/03/2024\n" +
		open.String() + ";Montevideo;NF-2;20,00;06/03/2024\n" +
		finished.String() + ";Lima;NF-3;20,00;06/03/2024\n"

	r := chi.NewRouter()
	r.Route("/import", importcsv.NewHandler(importer.NewService(), payment.NewService(repo, maintenances, centers, nil)).Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, upload(t, csv))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got struct {
		Imported int `json:"imported"`
		Rejected []struct {
			Line   int    `json:"line"`
			Reason string `json:"reason"`
		} `json:"rejected"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	assert.Equal(t, 1, got.Imported)
	require.Len(t, got.Rejected, 2)
	assert.Equal(t, 3, got.Rejected[0].Line)
	assert.Equal(t, 4, got.Rejected[1].Line)
	assert.Contains(t, got.Rejected[1].Reason, "Lima")
}

func TestHandler_Import_MissingFile(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/import", importcsv.NewHandler(importer.NewService(), nil).Routes)

	req := httptest.NewRequest(http.MethodPost, "/import/", bytes.NewBufferString("x"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=nothing")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
