package companies_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/companies"
)

func newCompanyRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	companies.NewHandler(companies.NewMemoryRepo()).RegisterRoutes(router.Group("/api/company"))
	return router
}

func postCompany(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/company", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateCompanyAssignsSequentialIDs(t *testing.T) {
	router := newCompanyRouter(t)

	for i, name := range []string{"Acme", "Globex"} {
		resp := postCompany(t, router, gin.H{"name": name, "primaryColor": "#336699"})
		if resp.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", resp.Code, resp.Body.String())
		}
		var company companies.Company
		if err := json.NewDecoder(resp.Body).Decode(&company); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if company.ID != int64(i+1) {
			t.Errorf("id = %d, want %d", company.ID, i+1)
		}
		if company.Name != name {
			t.Errorf("name = %q, want %q", company.Name, name)
		}
	}
}

func TestCreateCompanyRequiresName(t *testing.T) {
	router := newCompanyRouter(t)

	resp := postCompany(t, router, gin.H{"name": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

func TestGetCompanyNotFound(t *testing.T) {
	router := newCompanyRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/company/5", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Company not found" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestListCompaniesReturnsAll(t *testing.T) {
	router := newCompanyRouter(t)

	postCompany(t, router, gin.H{"name": "Acme"})
	postCompany(t, router, gin.H{"name": "Globex"})

	req := httptest.NewRequest(http.MethodGet, "/api/company", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var list []companies.Company
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}
