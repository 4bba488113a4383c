package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filedepot/backend/api/v1/database"
	"github.com/filedepot/backend/api/v1/models"
)

type stubFileStore struct {
	files []models.FileWithFolder
	err   error

	gotFolderID int64
	gotName     string
	gotSize     int64
	called      bool
}

func (s *stubFileStore) ListFiles(ctx context.Context) ([]models.FileWithFolder, error) {
	return s.files, s.err
}

func (s *stubFileStore) CreateFile(ctx context.Context, folderID int64, name string, size int64) (*models.File, error) {
	s.called = true
	s.gotFolderID = folderID
	s.gotName = name
	s.gotSize = size
	if s.err != nil {
		return nil, s.err
	}
	return &models.File{ID: 42, Name: name, Size: size, FolderID: folderID}, nil
}

func newFileRouter(store FileStore) http.Handler {
	h := &FileHandler{Store: store}
	r := chi.NewRouter()
	r.Get("/files", h.GetFiles)
	r.Post("/folders/{id}/files", h.CreateFile)
	return r
}

func TestGetFiles_Success(t *testing.T) {
	store := &stubFileStore{files: []models.FileWithFolder{
		{File: models.File{ID: 1, Name: "notes.txt", Size: 128, FolderID: 1}, FolderName: "Documents"},
	}}
	r := newFileRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"name":"notes.txt","size":128,"folder_id":1,"folder_name":"Documents"}]`,
		rec.Body.String())
}

func TestGetFiles_StoreError(t *testing.T) {
	r := newFileRouter(&stubFileStore{err: database.ErrDatabaseError})

	req := httptest.NewRequest(http.MethodGet, "/files", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func postFile(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateFile_Success(t *testing.T) {
	store := &stubFileStore{}
	r := newFileRouter(store)

	rec := postFile(t, r, "/folders/1/files", `{"name":"new file","size":9001}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.File
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new file", got.Name)
	assert.Equal(t, int64(9001), got.Size)
	assert.Equal(t, int64(1), got.FolderID)

	assert.Equal(t, int64(1), store.gotFolderID)
	assert.Equal(t, "new file", store.gotName)
	assert.Equal(t, int64(9001), store.gotSize)
}

func TestCreateFile_EmptyBody(t *testing.T) {
	store := &stubFileStore{}
	r := newFileRouter(store)

	rec := postFile(t, r, "/folders/1/files", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, store.called, "store must not be reached on validation failure")
}

func TestCreateFile_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing size", `{"name":"new file"}`},
		{"missing name", `{"size":9001}`},
		{"blank name", `{"name":"   ","size":9001}`},
		{"negative size", `{"name":"new file","size":-1}`},
		{"size wrong type", `{"name":"new file","size":"big"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubFileStore{}
			r := newFileRouter(store)

			rec := postFile(t, r, "/folders/1/files", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, store.called, "store must not be reached on validation failure")
		})
	}
}

func TestCreateFile_FolderNotFound(t *testing.T) {
	r := newFileRouter(&stubFileStore{err: database.ErrNoFolder})

	rec := postFile(t, r, "/folders/99/files", `{"name":"new file","size":9001}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFile_NonNumericFolderID(t *testing.T) {
	store := &stubFileStore{}
	r := newFileRouter(store)

	rec := postFile(t, r, "/folders/abc/files", `{"name":"new file","size":9001}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, store.called)
}

func TestCreateFile_DuplicateName(t *testing.T) {
	r := newFileRouter(&stubFileStore{err: database.ErrDuplicateFile})

	rec := postFile(t, r, "/folders/1/files", `{"name":"new file","size":9001}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateFile_StoreError(t *testing.T) {
	r := newFileRouter(&stubFileStore{err: database.ErrDatabaseError})

	rec := postFile(t, r, "/folders/1/files", `{"name":"new file","size":9001}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
