package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bizzyglass/glass-crm/internal/entity"
	"github.com/bizzyglass/glass-crm/internal/infra/http/middleware"
	"github.com/bizzyglass/glass-crm/internal/usecase"
)

type LeadHandler struct {
	Service     ConversationService
	Repo        entity.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(service ConversationService, repo entity.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		Service:     service,
		Repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute), // public form: 10 req/min per IP
	}
}

// HandleCreate serves the public lead-capture form.
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "too many requests, please try again later"})
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	lead, err := h.Service.CreateLead(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessageAppended(entity.SenderOwner)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	lead, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

type appendMessageRequest struct {
	Message string `json:"message"`
}

// HandleAppendMessage appends an owner message and texts it out.
func (h *LeadHandler) HandleAppendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	lead, err := h.Service.AppendOwnerMessage(r.Context(), id, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordMessageAppended(entity.SenderOwner)
	writeJSON(w, http.StatusOK, lead)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	switch req.Status {
	case entity.StatusNew, entity.StatusQuoted, entity.StatusScheduled, entity.StatusClosed:
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status: " + req.Status})
		return
	}

	if err := h.Repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func leadID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "leadId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid lead id"})
		return 0, false
	}
	return id, true
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// RateLimiter is a fixed-window per-IP limiter for the public form.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
