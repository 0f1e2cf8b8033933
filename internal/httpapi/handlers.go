package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ginjaninja78/ventas-pos/internal/app"
	"github.com/ginjaninja78/ventas-pos/internal/catalog"
	"github.com/ginjaninja78/ventas-pos/internal/logger"
	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

const maxUploadBytes = 32 << 20

type handlers struct {
	app *app.App
	log *logger.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

type importResponse struct {
	Products int `json:"products"`
	Dropped  int `json:"dropped"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

type saleResponse struct {
	Sale *types.Sale `json:"sale"`
	File string      `json:"file"`
}

// =============================================================================
// STOCK
// =============================================================================

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Products(r.URL.Query().Get("q")))
}

func (h *handlers) importCatalog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		// No file chosen: nothing to import.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	defer file.Close()

	result, ok, err := h.app.ImportReader(header.Filename, file)
	switch {
	case errors.Is(err, catalog.ErrUnsupportedFormat):
		writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: err.Error()})
	case err != nil:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case !ok:
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusOK, importResponse{
			Products: len(result.Products),
			Dropped:  result.RowsDropped,
		})
	}
}

func (h *handlers) exportStock(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.app.StockExportName()))
	if err := h.app.WriteStock(w); err != nil {
		// Headers are gone by now; all we can do is log.
		h.log.Error("stock download failed", zap.Error(err))
	}
}

// =============================================================================
// BILLING
// =============================================================================

func (h *handlers) billing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Billing())
}

func (h *handlers) addToCart(w http.ResponseWriter, r *http.Request) {
	code := codeParam(r)
	if !h.app.AddToCart(code) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("product %q not found", code)})
		return
	}
	writeJSON(w, http.StatusOK, h.app.Billing())
}

func (h *handlers) changeQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	h.app.ChangeQuantity(codeParam(r), req.Delta)
	writeJSON(w, http.StatusOK, h.app.Billing())
}

func (h *handlers) removeFromCart(w http.ResponseWriter, r *http.Request) {
	h.app.RemoveFromCart(codeParam(r))
	writeJSON(w, http.StatusOK, h.app.Billing())
}

func (h *handlers) setTicket(w http.ResponseWriter, r *http.Request) {
	var info types.TicketInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	h.app.SetTicket(info)
	writeJSON(w, http.StatusOK, h.app.Ticket())
}

func (h *handlers) confirmSale(w http.ResponseWriter, r *http.Request) {
	sale, path, err := h.app.ConfirmSale()
	if err != nil {
		h.log.Error("sale confirmation failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if sale == nil {
		// Empty cart.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, saleResponse{Sale: sale, File: path})
}

// =============================================================================
// HELPERS
// =============================================================================

// codeParam returns the decoded {code} segment. chi routes on RawPath when
// it is set (the path had escaped slashes or similar), leaving the segment
// escaped; otherwise the segment is already decoded.
func codeParam(r *http.Request) string {
	code := chi.URLParam(r, "code")
	if r.URL.RawPath == "" {
		return code
	}
	if unescaped, err := url.PathUnescape(code); err == nil {
		return unescaped
	}
	return code
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

