package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/spycats/internal/logging"
)

const (
	defaultLimit = 100
	maxLimit     = 100
	maxBodyBytes = 1 << 20
)

type handler struct {
	store  *Store
	breeds map[string]string
	logger logging.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

func notFound(w http.ResponseWriter, id int64) {
	writeDetail(w, http.StatusNotFound, fmt.Sprintf("Cat with id %d not found", id))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, []fieldError{
			{Loc: []any{"body"}, Msg: "JSON decode error", Type: "json_invalid"},
		})
		return false
	}
	return true
}

// catID parses the {catID} path parameter, answering 422 when it is not an integer.
func catID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "catID"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, []fieldError{{
			Loc:  []any{"path", "cat_id"},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		}})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, def, min, max int) (int, *fieldError) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, &fieldError{Loc: []any{"query", name}, Msg: "Input should be a valid integer", Type: "int_parsing"}
	case v < min:
		return 0, &fieldError{Loc: []any{"query", name}, Msg: fmt.Sprintf("Input should be greater than or equal to %d", min), Type: "greater_than_equal"}
	case max > 0 && v > max:
		return 0, &fieldError{Loc: []any{"query", name}, Msg: fmt.Sprintf("Input should be less than or equal to %d", max), Type: "less_than_equal"}
	}
	return v, nil
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	var errs []fieldError
	skip, fe := queryInt(r, "skip", 0, 0, 0)
	if fe != nil {
		errs = append(errs, *fe)
	}
	limit, fe := queryInt(r, "limit", defaultLimit, 1, maxLimit)
	if fe != nil {
		errs = append(errs, *fe)
	}
	if len(errs) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	cats, total := h.store.List(skip, limit)
	out := listResponse{Cats: make([]catResponse, 0, len(cats)), Total: total}
	for _, c := range cats {
		out.Cats = append(out.Cats, toResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := catID(w, r)
	if !ok {
		return
	}
	c, err := h.store.Get(id)
	if errors.Is(err, ErrNotFound) {
		notFound(w, id)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, errs := validateCreate(req)
	if len(errs) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	if len(h.breeds) > 0 {
		canonical, ok := h.breeds[strings.ToLower(c.Breed)]
		if !ok {
			h.logger.Warn(r.Context(), "unknown breed", "breed", c.Breed)
			writeDetail(w, http.StatusBadRequest, "Invalid cat breed: "+c.Breed)
			return
		}
		c.Breed = canonical
	}

	c = h.store.Create(c)
	h.logger.Info(r.Context(), "cat created", "id", c.ID, "name", c.Name)
	writeJSON(w, http.StatusCreated, toResponse(c))
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := catID(w, r)
	if !ok {
		return
	}
	var req updateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	current, err := h.store.Get(id)
	if errors.Is(err, ErrNotFound) {
		notFound(w, id)
		return
	}
	if req.Salary == nil {
		writeJSON(w, http.StatusOK, toResponse(current))
		return
	}

	if errs := checkStruct(req); len(errs) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}
	salary := req.Salary.float()

	c, err := h.store.UpdateSalary(id, salary)
	if errors.Is(err, ErrNotFound) {
		notFound(w, id)
		return
	}
	h.logger.Info(r.Context(), "cat salary updated", "id", id, "salary", salary)
	writeJSON(w, http.StatusOK, toResponse(c))
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := catID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(id); errors.Is(err, ErrNotFound) {
		notFound(w, id)
		return
	}
	h.logger.Info(r.Context(), "cat deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
