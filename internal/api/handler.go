package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/calorico/maxcalorie/internal/catalog"
	"github.com/calorico/maxcalorie/internal/food"
	"github.com/calorico/maxcalorie/internal/knapsack"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the catalog store and the knapsack solvers into HTTP handlers.
type Handler struct {
	catalog catalog.Catalog

	clock func() time.Time

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store catalog.Catalog, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.catalogUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	totals := food.Sum(items)
	resp := catalogResponse{
		Count:             len(items),
		TotalWeightOunces: totals.WeightOunces,
		TotalCalories:     totals.Calories,
		UpdatedAt:         h.currentCatalogUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid catalog", "items must contain at least one food item")
		return
	}

	if err := h.catalog.Replace(itemsFromPayload(req.Items)); err != nil {
		if errors.Is(err, catalog.ErrInvalidItem) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()

	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	totals := food.Sum(items)
	resp := catalogResponse{
		Count:             len(items),
		TotalWeightOunces: totals.WeightOunces,
		TotalCalories:     totals.Calories,
		UpdatedAt:         h.currentCatalogUpdatedAt(),
		Message:           "Catalog updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	filtered, err := knapsack.Filter(items, req.MinCalories, req.MaxCalories, req.TotalSize)
	if err != nil {
		if errors.Is(err, knapsack.ErrInvalidTotalSize) {
			writeError(w, http.StatusBadRequest, "Invalid filter", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	totals := food.Sum(filtered)
	resp := foodListResponse{
		Items:             payloadFromItems(filtered),
		Count:             len(filtered),
		TotalWeightOunces: totals.WeightOunces,
		TotalCalories:     totals.Calories,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSolveExhaustive(w http.ResponseWriter, r *http.Request) {
	var req solveExhaustiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	items, ok := h.solverInput(w, req.Filter)
	if !ok {
		return
	}

	start := time.Now()
	solution, err := knapsack.ExhaustiveMaxCalories(items, req.MaxWeightOunces)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, knapsack.ErrTooManyItems) {
			suggestion := fmt.Sprintf("Apply a filter with totalSize below 64 to bound the %d catalog items, or use the dynamic solver", len(items))
			writeError(w, http.StatusUnprocessableEntity, "Catalog too large for exhaustive search", err.Error(), suggestion)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeSolveResponse(w, solution, elapsed)
}

func (h *Handler) handleSolveDynamic(w http.ResponseWriter, r *http.Request) {
	var req solveDynamicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	items, ok := h.solverInput(w, req.Filter)
	if !ok {
		return
	}

	start := time.Now()
	solution, err := knapsack.DynamicMaxCalories(items, req.CapacityOunces)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, knapsack.ErrNegativeCapacity) {
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	writeSolveResponse(w, solution, elapsed)
}

// solverInput fetches the catalog and applies the optional request filter.
// On failure it writes the error response and reports false.
func (h *Handler) solverInput(w http.ResponseWriter, filter *filterRequest) ([]food.Item, bool) {
	items, err := h.catalog.Items()
	if err != nil {
		writeInternalError(w, err)
		return nil, false
	}

	if filter == nil {
		return items, true
	}

	filtered, err := knapsack.Filter(items, filter.MinCalories, filter.MaxCalories, filter.TotalSize)
	if err != nil {
		if errors.Is(err, knapsack.ErrInvalidTotalSize) {
			writeError(w, http.StatusBadRequest, "Invalid filter", err.Error())
			return nil, false
		}
		writeInternalError(w, err)
		return nil, false
	}
	return filtered, true
}

func writeSolveResponse(w http.ResponseWriter, solution []food.Item, elapsed time.Duration) {
	totals := food.Sum(solution)
	resp := solveResponse{
		Items:             payloadFromItems(solution),
		Count:             len(solution),
		TotalWeightOunces: totals.WeightOunces,
		TotalCalories:     totals.Calories,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func itemsFromPayload(payload []foodItemPayload) []food.Item {
	items := make([]food.Item, len(payload))
	for i, p := range payload {
		items[i] = food.Item{
			Description:  p.Description,
			WeightOunces: p.WeightOunces,
			Calories:     p.Calories,
		}
	}
	return items
}

func payloadFromItems(items []food.Item) []foodItemPayload {
	payload := make([]foodItemPayload, len(items))
	for i, it := range items {
		payload[i] = foodItemPayload{
			Description:  it.Description,
			WeightOunces: it.WeightOunces,
			Calories:     it.Calories,
		}
	}
	return payload
}

type foodItemPayload struct {
	Description  string  `json:"description"`
	WeightOunces float64 `json:"weightOunces"`
	Calories     float64 `json:"calories"`
}

type catalogRequest struct {
	Items []foodItemPayload `json:"items"`
}

type filterRequest struct {
	MinCalories float64 `json:"minCalories"`
	MaxCalories float64 `json:"maxCalories"`
	TotalSize   int     `json:"totalSize"`
}

type solveExhaustiveRequest struct {
	MaxWeightOunces float64        `json:"maxWeightOunces"`
	Filter          *filterRequest `json:"filter,omitempty"`
}

type solveDynamicRequest struct {
	CapacityOunces int            `json:"capacityOunces"`
	Filter         *filterRequest `json:"filter,omitempty"`
}

type catalogResponse struct {
	Count             int       `json:"count"`
	TotalWeightOunces float64   `json:"totalWeightOunces"`
	TotalCalories     float64   `json:"totalCalories"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Message           string    `json:"message,omitempty"`
}

type foodListResponse struct {
	Items             []foodItemPayload `json:"items"`
	Count             int               `json:"count"`
	TotalWeightOunces float64           `json:"totalWeightOunces"`
	TotalCalories     float64           `json:"totalCalories"`
}

type solveResponse struct {
	Items             []foodItemPayload `json:"items"`
	Count             int               `json:"count"`
	TotalWeightOunces float64           `json:"totalWeightOunces"`
	TotalCalories     float64           `json:"totalCalories"`
	CalculationTimeMs int64             `json:"calculationTimeMs"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
