package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/polly/internal/core/ports"
	"github.com/vncsmyrnk/polly/internal/metrics"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

// CastVote godoc
// @Summary      Votes for one option of a poll
// @Description  Anonymous votes are allowed. One vote per client address and poll. The body is always a vote result, also on failure.
// @Tags         votes
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id         path      string  true  "Poll ID"
// @Param        option_id  formData  string  true  "Option ID"
// @Success      201  {object}  domain.VoteResult
// @Failure      400  {object}  domain.VoteResult
// @Failure      409  {object}  domain.VoteResult
// @Failure      429  {object}  apperr.AppError
// @Failure      500  {object}  domain.VoteResult
// @Router       /polls/{id}/vote [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	// A malformed body leaves option_id empty, which the service rejects.
	_ = parseForm(r)

	input := ports.VoteInput{
		PollID:   chi.URLParam(r, "id"),
		OptionID: strings.TrimSpace(r.PostForm.Get("option_id")),
		Address:  clientAddress(r.Header),
	}

	result := h.service.CastVote(r.Context(), input)
	if result.Success {
		metrics.IncVote("accepted")
		writeJSON(w, http.StatusCreated, result)
		return
	}

	appErr := mapError(result.Err())
	metrics.IncVote(appErr.Code)
	writeJSON(w, appErr.StatusCode(), result)
}
