package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kakeibo/kakeibo/internal/rest"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type ExpenseDTO struct {
	ID        string       `json:"id"`
	Amount    float64      `json:"amount"`
	Date      string       `json:"date"`
	Category  *CategoryDTO `json:"category"`
	Note      string       `json:"note,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type PaginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type ExpenseListDTO struct {
	Data       []ExpenseDTO  `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}

type writeExpenseDTO struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     *string  `json:"date"`
	Note     *string  `json:"note"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto writeExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Amount == nil || dto.Category == nil || dto.Date == nil {
		writeValidationError(w, errors.New("amount, category and date are required"))
		return
	}

	input := CreateInput{Amount: *dto.Amount, Category: *dto.Category, Date: *dto.Date}
	if dto.Note != nil {
		input.Note = *dto.Note
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		if isValidationError(err) {
			writeValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(expenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	// same clamp as Service.List, so the pagination envelope reflects the
	// page actually served
	if limit < 1 || limit > 100 {
		limit = 20
	}
	month := r.URL.Query().Get("month")

	expenses, total, err := h.service.List(r.Context(), page, limit, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, expenseToDTO(e))
	}

	totalPages := (total + limit - 1) / limit
	response := ExpenseListDTO{
		Data: dtos,
		Pagination: PaginationDTO{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid expense id", http.StatusBadRequest)
		return
	}

	var dto writeExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, UpdateInput{
		Amount:   dto.Amount,
		Category: dto.Category,
		Date:     dto.Date,
		Note:     dto.Note,
	})
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		if isValidationError(err) {
			writeValidationError(w, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenseToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid expense id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			http.Error(w, "Expense not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrNoteTooLong)
}

func writeValidationError(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Validation error",
		Details: err.Error(),
	})
}

func expenseToDTO(e Expense) ExpenseDTO {
	dto := ExpenseDTO{
		ID:        e.ID.String(),
		Amount:    e.Amount,
		Date:      e.Date.Format(DateLayout),
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Category != nil {
		dto.Category = &CategoryDTO{
			Name:  e.Category.Name,
			Icon:  e.Category.Icon,
			Color: e.Category.Color,
		}
	}
	return dto
}
