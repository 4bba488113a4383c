package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/filedepot/backend/api/v1/database"
	"github.com/filedepot/backend/api/v1/models"
)

// FolderStore is the slice of the query layer the folder routes need.
type FolderStore interface {
	ListFolders(ctx context.Context) ([]models.Folder, error)
	GetFolderWithFiles(ctx context.Context, folderID int64) (*models.FolderWithFiles, error)
}

type FolderHandler struct {
	Store FolderStore
}

func (h *FolderHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	folders, err := h.Store.ListFolders(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(folders)
}

func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	folderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id matches no folder.
		SendError(w, "Folder not found", http.StatusNotFound)
		return
	}

	folder, err := h.Store.GetFolderWithFiles(r.Context(), folderID)
	if err != nil {
		if errors.Is(err, database.ErrNoFolder) {
			SendError(w, "Folder not found", http.StatusNotFound)
			return
		}
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(folder)
}
