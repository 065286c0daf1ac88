package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	activityapp "github.com/crm/backend/internal/application/activity"
	"github.com/crm/backend/internal/domain/activity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
	"github.com/crm/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRecordRepo is an in-memory RecordRepository for handler tests
type memoryRecordRepo struct {
	records []activity.Record
	nextID  int64
}

func newMemoryRecordRepo() *memoryRecordRepo {
	return &memoryRecordRepo{nextID: 1}
}

func (r *memoryRecordRepo) FindByID(_ context.Context, id int64) (*activity.Record, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRecordRepo) FindAll(_ context.Context, filter shared.Filter) ([]activity.Record, error) {
	return paginate(r.records, filter), nil
}

func (r *memoryRecordRepo) FindByCustomer(_ context.Context, customerID int64, filter shared.Filter) ([]activity.Record, error) {
	var matched []activity.Record
	for _, rec := range r.records {
		if rec.CustomerID == customerID {
			matched = append(matched, rec)
		}
	}
	return paginate(matched, filter), nil
}

func (r *memoryRecordRepo) FindByDocument(_ context.Context, ref activity.DocumentRef, typeNames []string, filter shared.Filter) ([]activity.Record, error) {
	var matched []activity.Record
	for _, rec := range r.records {
		if rec.Document == ref && matchesType(rec, typeNames) {
			matched = append(matched, rec)
		}
	}
	return paginate(matched, filter), nil
}

func (r *memoryRecordRepo) Save(_ context.Context, record *activity.Record) error {
	if record.ID == 0 {
		record.ID = r.nextID
		r.nextID++
		r.records = append(r.records, *record)
		return nil
	}
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memoryRecordRepo) Delete(_ context.Context, id int64) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *memoryRecordRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *memoryRecordRepo) CountByCustomer(_ context.Context, customerID int64) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *memoryRecordRepo) CountByDocument(_ context.Context, ref activity.DocumentRef, typeNames []string) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.Document == ref && matchesType(rec, typeNames) {
			n++
		}
	}
	return n, nil
}

func paginate(records []activity.Record, filter shared.Filter) []activity.Record {
	start := filter.Offset()
	if start >= len(records) {
		return nil
	}
	end := start + filter.Limit
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

func matchesType(rec activity.Record, typeNames []string) bool {
	if len(typeNames) == 0 {
		return true
	}
	for _, name := range typeNames {
		if rec.TypeName == name {
			return true
		}
	}
	return false
}

// stub lookups resolve fixed display data

type stubCustomerLookup struct{}

func (stubCustomerLookup) FindInfoByIDs(_ context.Context, ids []int64) (map[int64]activity.CustomerInfo, error) {
	infos := make(map[int64]activity.CustomerInfo)
	for _, id := range ids {
		if id == 7 {
			infos[id] = activity.CustomerInfo{ID: 7, Name: "Globex", OwnerName: "sales"}
		}
	}
	return infos, nil
}

type stubStatusLookup struct{}

func (stubStatusLookup) FindInfoByIDs(_ context.Context, ids []int64) (map[int64]activity.StatusInfo, error) {
	infos := make(map[int64]activity.StatusInfo)
	for _, id := range ids {
		infos[id] = activity.StatusInfo{ID: id, Process: "Quotes", Status: "Draft", Color: 111}
	}
	return infos, nil
}

type stubTypeLookup struct{}

func (stubTypeLookup) FindInfoByTypeNames(_ context.Context, typeNames []string) (map[string]activity.TypeInfo, error) {
	infos := make(map[string]activity.TypeInfo)
	for i, name := range typeNames {
		infos[name] = activity.TypeInfo{ID: int64(i + 1), TypeName: name, Color: 222}
	}
	return infos, nil
}

func newActivityHistoryTestServer(t *testing.T) (*gin.Engine, *memoryRecordRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryRecordRepo()
	normalizer := activityapp.NewNormalizer(stubCustomerLookup{}, stubStatusLookup{}, stubTypeLookup{})
	service := activityapp.NewHistoryService(repo, normalizer)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewActivityHistoryHandler(service))
	r.Setup()

	return engine, repo
}

func appendRecord(t *testing.T, repo *memoryRecordRepo, customerID int64, typeName string, docType activity.DocumentType, docID int64) *activity.Record {
	t.Helper()
	ref, err := activity.NewDocumentRef(docType, docID)
	require.NoError(t, err)
	rec, err := activity.NewRecord(customerID, 3, "did something", typeName, ref, "alice")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), rec))
	return rec
}

func TestActivityHistoryAppend(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)

	body := `{
		"customer_id": 7,
		"status_id": 3,
		"activity": "Quote #14 created",
		"activity_type": "Create",
		"document_id": 14,
		"document_type": "Quotes",
		"user_owner": "alice",
		"tags": "important"
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/activity-history", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Quote #14 created", data["activity"])
	assert.Equal(t, "Create", data["activity_type"])
	assert.Equal(t, "Quotes", data["document_type"])
	assert.Equal(t, "important", data["tags"])

	assert.Len(t, repo.records, 1)
}

func TestActivityHistoryAppendValidation(t *testing.T) {
	engine, _ := newActivityHistoryTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing activity", body: `{"customer_id":7,"status_id":3,"activity_type":"Create","document_id":14,"document_type":"Quotes"}`},
		{name: "zero customer id", body: `{"customer_id":0,"status_id":3,"activity":"x","activity_type":"Create","document_id":14,"document_type":"Quotes"}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/activity-history", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestActivityHistoryAppendUnknownDocumentType(t *testing.T) {
	engine, _ := newActivityHistoryTestServer(t)

	body := `{"customer_id":7,"status_id":3,"activity":"x","activity_type":"Create","document_id":14,"document_type":"Shipments"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/activity-history", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
}

func TestActivityHistoryList(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	for i := 0; i < 15; i++ {
		appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, int64(i+1))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/activity-history?page=2&limit=10", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(15), resp.Meta.TotalItems)
	assert.Equal(t, 5, resp.Meta.ItemCount)
	assert.Equal(t, 10, resp.Meta.ItemsPerPage)
	assert.Equal(t, 2, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Meta.CurrentPage)

	items := resp.Data.([]interface{})
	assert.Len(t, items, 5)
}

func TestActivityHistoryListNormalizesReferences(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/activity-history", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	record := items[0].(map[string]interface{})

	customerData := record["customer_data"].(map[string]interface{})
	assert.Equal(t, float64(7), customerData["id"])
	assert.Equal(t, "Globex", customerData["name"])

	statusData := record["status_data"].(map[string]interface{})
	assert.Equal(t, "Draft", statusData["status"])

	typeData := record["activity_type"].(map[string]interface{})
	assert.Equal(t, "Create", typeData["type_name"])
	assert.Equal(t, float64(222), typeData["color"])
}

func TestActivityHistoryListDanglingCustomerReference(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	// Customer 99 is unknown to the lookup
	appendRecord(t, repo, 99, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/activity-history", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	record := items[0].(map[string]interface{})

	customerData := record["customer_data"].(map[string]interface{})
	assert.Equal(t, float64(0), customerData["id"])
	assert.Equal(t, "", customerData["name"])
}

func TestActivityHistoryListByCustomer(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 1)
	appendRecord(t, repo, 8, activity.TypeNameCreate, activity.DocumentTypeQuotes, 2)
	appendRecord(t, repo, 7, activity.TypeNameUpdate, activity.DocumentTypeOrders, 3)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/activity-history/customer/7", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(2), resp.Meta.TotalItems)
}

func TestActivityHistoryListByDocument(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)
	appendRecord(t, repo, 7, activity.TypeNameUpdate, activity.DocumentTypeQuotes, 14)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeOrders, 14)

	t.Run("requires documentType", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/document/14", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("filters by document reference", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/document/14?documentType=Quotes", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.Meta.TotalItems)
	})

	t.Run("filters by activity type names", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/document/14?documentType=Quotes&activityTypeNames=Update,%20Set", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.Meta.TotalItems)
	})

	t.Run("rejects unknown document type", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/document/14?documentType=Shipments", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestActivityHistoryGetByID(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	rec := appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/1", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(rec.ID), data["id"])
	})

	t.Run("missing id yields 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/999", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("malformed id yields 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/activity-history/not-a-number", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestActivityHistoryUpdate(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/v1/activity-history/1", strings.NewReader(`{"tags":"updated-tag"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "updated-tag", data["tags"])
		assert.Equal(t, "did something", data["activity"])
	})

	t.Run("missing id yields 404 and creates nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PUT", "/api/v1/activity-history/999", strings.NewReader(`{"tags":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Len(t, repo.records, 1)
	})
}

func TestActivityHistoryDelete(t *testing.T) {
	engine, repo := newActivityHistoryTestServer(t)
	appendRecord(t, repo, 7, activity.TypeNameCreate, activity.DocumentTypeQuotes, 14)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/v1/activity-history/1", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.records)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/api/v1/activity-history/1", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
