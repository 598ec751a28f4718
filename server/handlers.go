package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/travel"
)

const version = "2.0.0"

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Travel India backend",
		"version": version,
		"features": []string{
			"live destination database",
			"AI travel assistant with local fallback",
			"destination search",
			"budget analytics",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbErr := s.store.Ping(r.Context())
	databaseMode := "live_data"
	if dbErr != nil {
		databaseMode = "sample_data"
	}
	aiMode := "openai"
	if !s.aiConfigured {
		aiMode = "local"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"database_mode": databaseMode,
		"ai_mode":       aiMode,
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	dbErr := s.store.Ping(r.Context())
	connected := dbErr == nil

	count := 0
	if listing, err := s.store.List(r.Context(), travel.ListFilter{Limit: 1000}); err == nil {
		count = len(listing)
	}

	mode := "sample_data"
	if connected {
		mode = "live_data"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"database": map[string]any{
			"connected":    connected,
			"destinations": count,
			"mode":         mode,
		},
		"ai": map[string]any{
			"configured": s.aiConfigured,
			"features": []string{
				"intent analysis",
				"database-aware responses",
				"budget planning",
				"itinerary generation",
			},
		},
		"system": map[string]any{
			"version":   version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(s.startedAt).Round(time.Second).String(),
		},
	})
}

func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	f := travel.ListFilter{Limit: queryInt(r, "limit", 20)}

	if raw := r.URL.Query().Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Detail: "featured must be a boolean"})
			return
		}
		f.Featured = &featured
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := travel.Category(raw)
		if err := travel.ValidateCategory(category); err != nil {
			writeError(w, r, err)
			return
		}
		f.Category = &category
	}

	listing, err := s.store.List(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"destinations": listing,
		"count":        len(listing),
	})
}

func (s *Server) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dest, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dest)
}

func (s *Server) handleCreateDestination(w http.ResponseWriter, r *http.Request) {
	var fields travel.DestinationFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid JSON body"})
		return
	}
	if err := travel.ValidateCreate(fields); err != nil {
		writeError(w, r, err)
		return
	}
	dest, err := s.store.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dest)
}

func (s *Server) handleUpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var fields travel.DestinationFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid JSON body"})
		return
	}
	if err := travel.ValidateUpdate(fields); err != nil {
		writeError(w, r, err)
		return
	}
	dest, err := s.store.Update(r.Context(), id, fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dest)
}

func (s *Server) handleDeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	deleted, err := s.store.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, r, travel.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "destination deleted",
		"id":      id,
	})
}

func (s *Server) handleSearchDestinations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "query parameter q is required"})
		return
	}
	results, err := s.store.Search(r.Context(), query, queryInt(r, "limit", 10))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

type chatRequest struct {
	Message        string               `json:"message"`
	ConversationID string               `json:"conversation_id"`
	History        []contract.Turn      `json:"conversation_history"`
	Preferences    contract.Preferences `json:"user_preferences"`
}

type chatResponse struct {
	Response       string          `json:"response"`
	Success        bool            `json:"success"`
	Provider       string          `json:"provider"`
	ConversationID string          `json:"conversation_id"`
	Intent         contract.Intent `json:"intent"`
	Timestamp      string          `json:"timestamp"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "invalid JSON body"})
		return
	}

	reply, err := s.chat.HandleMessage(r.Context(), contract.ChatRequest{
		Message:     req.Message,
		History:     req.History,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	writeJSON(w, http.StatusOK, chatResponse{
		Response:       reply.Response,
		Success:        true,
		Provider:       reply.Provider,
		ConversationID: conversationID,
		Intent:         reply.Intent,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handlePopularDestinations(w http.ResponseWriter, r *http.Request) {
	listing, err := s.store.List(r.Context(), travel.ListFilter{Limit: 1000})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"popular_destinations": travel.TopRated(listing, queryInt(r, "limit", 5)),
	})
}

func (s *Server) handleBudgetRanges(w http.ResponseWriter, r *http.Request) {
	listing, err := s.store.List(r.Context(), travel.ListFilter{Limit: 1000})
	if err != nil {
		writeError(w, r, err)
		return
	}
	analysis, ok := travel.AnalyzeBudget(listing)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"budget_analysis": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"budget_analysis": analysis})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := travel.Categories()
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
