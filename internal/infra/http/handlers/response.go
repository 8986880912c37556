package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type detailResponse struct {
	Detail any `json:"detail"`
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailResponse{Detail: detail})
}
