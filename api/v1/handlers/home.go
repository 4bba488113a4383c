package handlers

import (
	"encoding/json"
	"net/http"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"name":    "Filedepot API",
		"version": "0.1.0",
		"routes": map[string]string{
			"health":  "/health",
			"files":   "/files",
			"folders": "/folders",
		},
	}
	json.NewEncoder(w).Encode(response)
}
