package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/haqqvault/backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

// handleError maps sentinel errors to HTTP statuses. User-facing
// messages are the site's Thai copy; internals are logged, not leaked.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		resp := errorResponse{Error: vErr.Errors[0].Message}
		for _, fe := range vErr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "กรุณาเข้าสู่ระบบก่อน")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "ไม่มีสิทธิ์ดำเนินการนี้")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "ไม่พบข้อมูลที่ต้องการ")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "มีข้อมูลนี้อยู่แล้ว")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "เกิดข้อผิดพลาดภายในระบบ")
	}
}
