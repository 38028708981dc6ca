package http

import (
	"errors"
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/polly/internal/core/domain"
	"github.com/vncsmyrnk/polly/internal/core/forms"
	"github.com/vncsmyrnk/polly/internal/core/ports"
	"github.com/vncsmyrnk/polly/internal/core/services"
	"github.com/vncsmyrnk/polly/internal/platform/apperr"
)

const maxFormBytes = 1 << 20

// ViewRevisions hands out the current validator for a route.
type ViewRevisions interface {
	ETag(route string) string
}

type PollHandler struct {
	service ports.PollService
	views   ViewRevisions
}

func NewPollHandler(service ports.PollService, views ViewRevisions) *PollHandler {
	return &PollHandler{
		service: service,
		views:   views,
	}
}

type pollSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type listPollsResponse struct {
	Polls   []pollSummary `json:"polls"`
	Page    int           `json:"page"`
	Query   string        `json:"query,omitempty"`
	Created bool          `json:"created,omitempty"`
}

type optionResult struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Votes      int64     `json:"votes"`
	Percentage float64   `json:"percentage"`
}

type pollDetailResponse struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	TotalVotes  int64          `json:"total_votes"`
	CanEdit     bool           `json:"can_edit"`
	Options     []optionResult `json:"options"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ListPolls godoc
// @Summary      Lists polls
// @Description  Newest first, ten per page. `q` filters by title, case-insensitively.
// @Tags         polls
// @Produce      json
// @Param        page     query  int     false  "Page, starting at 1"
// @Param        q        query  string  false  "Title search"
// @Param        created  query  int     false  "Set to 1 after a create redirect"
// @Success      200  {object}  listPollsResponse
// @Success      304
// @Failure      500  {object}  apperr.AppError
// @Router       /polls [get]
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	if h.notModified(w, r, ports.PollsRoute(), nil) {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	polls, err := h.service.ListPolls(r.Context(), ports.ListPollsInput{Page: page, Query: query})
	if err != nil {
		errorResponse(w, err)
		return
	}

	resp := listPollsResponse{
		Polls:   make([]pollSummary, 0, len(polls)),
		Page:    page,
		Query:   query,
		Created: r.URL.Query().Get("created") == "1",
	}
	for _, p := range polls {
		resp.Polls = append(resp.Polls, pollSummary{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Options come from repeated `options` fields or `option-<n>` fields, in order. Blank entries are dropped; at least two must remain.
// @Tags         polls
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        options      formData  []string  false  "Option texts"  collectionFormat(multi)
// @Success      303  "Redirects to /polls?created=1"
// @Failure      400  {object}  apperr.AppError
// @Failure      500  {object}  apperr.AppError
// @Router       /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_form", "Failed to parse form", err))
		return
	}

	input, err := forms.ParsePoll(r.PostForm)
	if err != nil {
		errorResponse(w, err)
		return
	}

	if _, err := h.service.Create(r.Context(), input); err != nil {
		errorResponse(w, err)
		return
	}

	http.Redirect(w, r, ports.PollsRoute()+"?created=1", http.StatusSeeOther)
}

// GetPoll godoc
// @Summary      Shows a poll with its results
// @Tags         polls
// @Produce      json
// @Param        id   path      string  true  "Poll ID"
// @Success      200  {object}  pollDetailResponse
// @Success      304
// @Failure      400  {object}  apperr.AppError
// @Failure      404  {object}  apperr.AppError
// @Router       /polls/{id} [get]
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	// Invalidation is keyed on the canonical id, so uppercase or braced
	// spellings must map to the same route.
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, domain.ErrInvalidPollID)
		return
	}
	id := pollID.String()

	user := services.CurrentUser(r.Context())
	if h.notModified(w, r, ports.PollRoute(id), user) {
		return
	}

	poll, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newPollDetail(poll, user))
}

// UpdatePoll godoc
// @Summary      Updates a poll's title and description
// @Description  Only the creator may update a poll.
// @Tags         polls
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id           formData  string  true   "Poll ID"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Success      303  "Redirects to /polls"
// @Failure      400  {object}  apperr.AppError
// @Failure      401  {object}  apperr.AppError
// @Failure      403  {object}  apperr.AppError
// @Failure      404  {object}  apperr.AppError
// @Router       /polls/update [post]
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_form", "Failed to parse form", err))
		return
	}

	input := ports.UpdatePollInput{
		ID:          strings.TrimSpace(r.PostForm.Get("id")),
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Description: strings.TrimSpace(r.PostForm.Get("description")),
	}
	if err := h.service.Update(r.Context(), input); err != nil {
		errorResponse(w, err)
		return
	}

	http.Redirect(w, r, ports.PollsRoute(), http.StatusSeeOther)
}

// DeletePoll godoc
// @Summary      Deletes a poll
// @Description  Only the creator may delete a poll. Options and votes go with it.
// @Tags         polls
// @Accept       x-www-form-urlencoded
// @Param        id  formData  string  true  "Poll ID"
// @Success      204
// @Failure      400  {object}  apperr.AppError
// @Failure      401  {object}  apperr.AppError
// @Failure      403  {object}  apperr.AppError
// @Failure      404  {object}  apperr.AppError
// @Router       /polls/delete [post]
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_form", "Failed to parse form", err))
		return
	}

	input := ports.DeletePollInput{ID: strings.TrimSpace(r.PostForm.Get("id"))}
	if err := h.service.Delete(r.Context(), input); err != nil {
		errorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseForm fills r.PostForm from urlencoded and multipart bodies alike.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

func newPollDetail(poll *domain.Poll, user *domain.User) pollDetailResponse {
	stats := poll.OptionStats()
	resp := pollDetailResponse{
		ID:          poll.ID,
		Title:       poll.Title,
		Description: poll.Description,
		TotalVotes:  poll.TotalVotes(),
		Options:     make([]optionResult, 0, len(poll.Options)),
		CreatedAt:   poll.CreatedAt,
		UpdatedAt:   poll.UpdatedAt,
	}
	if user != nil {
		resp.CanEdit = poll.OwnedBy(user.ID)
	}
	for _, o := range poll.Options {
		resp.Options = append(resp.Options, optionResult{
			ID:         o.ID,
			Text:       o.Text,
			Votes:      stats[o.ID].VoteCount,
			Percentage: stats[o.ID].Percentage,
		})
	}
	return resp
}

// notModified sets the route's ETag and answers 304 when the client already
// holds it. The validator varies per user because can_edit does.
func (h *PollHandler) notModified(w http.ResponseWriter, r *http.Request, route string, user *domain.User) bool {
	if h.views == nil {
		return false
	}
	etag := h.views.ETag(route)
	if user != nil {
		etag = withVariant(etag, user.ID)
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "private, no-cache")

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func withVariant(etag, variant string) string {
	h := fnv.New32a()
	h.Write([]byte(variant))
	return strings.TrimSuffix(etag, `"`) + "-" + strconv.FormatUint(uint64(h.Sum32()), 36) + `"`
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == strings.TrimPrefix(etag, "W/") {
			return true
		}
	}
	return false
}
