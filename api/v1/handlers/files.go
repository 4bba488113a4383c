package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/filedepot/backend/api/v1/database"
	"github.com/filedepot/backend/api/v1/models"
)

// FileStore is the slice of the query layer the file routes need.
type FileStore interface {
	ListFiles(ctx context.Context) ([]models.FileWithFolder, error)
	CreateFile(ctx context.Context, folderID int64, name string, size int64) (*models.File, error)
}

type FileHandler struct {
	Store FileStore
}

// createFileRequest uses pointer fields so that absent keys are
// distinguishable from zero values.
type createFileRequest struct {
	Name *string `json:"name"`
	Size *int64  `json:"size"`
}

func (h *FileHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	files, err := h.Store.ListFiles(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(files)
}

func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	folderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		SendError(w, "Folder not found", http.StatusNotFound)
		return
	}

	var req createFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Request body must be valid JSON", http.StatusBadRequest)
		return
	}

	if err := validateCreateFile(&req); err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, err := h.Store.CreateFile(r.Context(), folderID, *req.Name, *req.Size)
	if err != nil {
		if errors.Is(err, database.ErrNoFolder) {
			SendError(w, "Folder not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, database.ErrDuplicateFile) {
			SendError(w, "File name already exists in this folder", http.StatusConflict)
			return
		}
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(file)
}

func validateCreateFile(req *createFileRequest) error {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return errors.New("file name is required")
	}
	*req.Name = strings.TrimSpace(*req.Name)

	if req.Size == nil {
		return errors.New("file size is required")
	}
	if *req.Size < 0 {
		return errors.New("file size must not be negative")
	}

	return nil
}
