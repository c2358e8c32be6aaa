// Package handler exposes the registry over HTTP. Handlers stay thin:
// decode, call the service, translate errors.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"curio/internal/platform/middleware"
	"curio/internal/registry/models"
	"curio/internal/registry/ports"
	"curio/pkg/domain"
	dErrors "curio/pkg/domain-errors"
	"curio/pkg/platform/httputil"
	"curio/pkg/requestcontext"
)

// Service is the registry surface the handler consumes.
type Service interface {
	Add(ctx context.Context, caller domain.Address, data domain.ItemData) (models.Item, error)
	Remove(ctx context.Context, caller domain.Address, id domain.ItemID) error
	Get(ctx context.Context, id domain.ItemID) (models.Item, error)
	Exists(ctx context.Context, id domain.ItemID) (bool, error)
	List(ctx context.Context) ([]models.Item, error)
	IsLocked(ctx context.Context, id domain.ItemID) (bool, error)
	IncreaseStake(ctx context.Context, caller domain.Address, id domain.ItemID, amount uint64) (models.Item, error)
	DecreaseStake(ctx context.Context, caller domain.Address, id domain.ItemID, amount uint64) (models.Item, error)
	Challenge(ctx context.Context, challenger domain.Address, id domain.ItemID) (ports.Challenge, error)
	ResolveChallenge(ctx context.Context, id domain.ItemID) (models.Outcome, error)
	ChallengeExists(ctx context.Context, id domain.ItemID) (bool, error)
	ClaimVoterReward(ctx context.Context, challengeID string, voter domain.Address, salt uint64) (uint64, error)
}

// Handler serves the registry endpoints.
type Handler struct {
	logger    *slog.Logger
	registry  Service
	validator middleware.TokenValidator
}

func New(registry Service, validator middleware.TokenValidator, logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		registry:  registry,
		validator: validator,
	}
}

// Register mounts the registry routes. Reads are open; every mutation
// requires a bearer token identifying the caller's ledger account.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))

	router.Get("/items", h.handleListItems)
	router.Get("/items/{id}", h.handleGetItem)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.validator, h.logger))
		r.Post("/items", h.handleAddItem)
		r.Delete("/items/{id}", h.handleRemoveItem)
		r.Post("/items/{id}/stake", h.handleIncreaseStake)
		r.Delete("/items/{id}/stake", h.handleDecreaseStake)
		r.Post("/items/{id}/challenge", h.handleChallengeItem)
		r.Post("/items/{id}/resolve", h.handleResolveChallenge)
		r.Post("/challenges/{id}/claim", h.handleClaimReward)
	})

	r.Mount("/registry", router)
}

func (h *Handler) itemID(r *http.Request) (domain.ItemID, error) {
	id, err := domain.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		return domain.ItemID{}, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed item id")
	}
	return id, nil
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.Decode[addItemRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	data, err := domain.NewItemData(req.Data)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	it, err := h.registry.Add(ctx, requestcontext.Caller(ctx), data)
	if err != nil {
		h.logError(ctx, "add item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, h.itemResponse(ctx, it))
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.itemID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	exists, err := h.registry.Exists(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !exists {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such item"))
		return
	}
	it, err := h.registry.Get(ctx, id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.itemResponse(ctx, it))
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.registry.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	resp := make([]itemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, h.itemResponse(ctx, it))
	}
	httputil.WriteJSON(w, http.StatusOK, listItemsResponse{Items: resp})
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.itemID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.registry.Remove(ctx, requestcontext.Caller(ctx), id); err != nil {
		h.logError(ctx, "remove item failed", err)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleIncreaseStake(w http.ResponseWriter, r *http.Request) {
	h.handleStakeChange(w, r, h.registry.IncreaseStake)
}

func (h *Handler) handleDecreaseStake(w http.ResponseWriter, r *http.Request) {
	h.handleStakeChange(w, r, h.registry.DecreaseStake)
}

func (h *Handler) handleStakeChange(w http.ResponseWriter, r *http.Request, change func(context.Context, domain.Address, domain.ItemID, uint64) (models.Item, error)) {
	ctx := r.Context()

	id, err := h.itemID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, err := httputil.Decode[stakeRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Amount == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "amount must be positive"))
		return
	}

	it, err := change(ctx, requestcontext.Caller(ctx), id, req.Amount)
	if err != nil {
		h.logError(ctx, "stake change failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, h.itemResponse(ctx, it))
}

func (h *Handler) handleChallengeItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.itemID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ch, err := h.registry.Challenge(ctx, requestcontext.Caller(ctx), id)
	if err != nil {
		h.logError(ctx, "challenge failed", err)
		httputil.WriteError(w, err)
		return
	}

	resp := challengeResponse{
		ChallengeID:   ch.ID(),
		Address:       string(ch.Address()),
		Challenger:    string(ch.Challenger()),
		RequiredFunds: ch.RequiredFunds(),
	}
	if p, ok := ch.(interface{ PollID() uint64 }); ok {
		resp.PollID = p.PollID()
	}
	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleResolveChallenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.itemID(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	outcome, err := h.registry.ResolveChallenge(ctx, id)
	if err != nil {
		h.logError(ctx, "resolve challenge failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resolveResponse{Outcome: outcome.String()})
}

func (h *Handler) handleClaimReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	challengeID := chi.URLParam(r, "id")
	req, err := httputil.Decode[claimRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	reward, err := h.registry.ClaimVoterReward(ctx, challengeID, requestcontext.Caller(ctx), req.Salt)
	if err != nil {
		h.logError(ctx, "claim voter reward failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, claimResponse{Reward: reward})
}

// itemResponse decorates an item with its lock and challenge state. Both
// lookups are best-effort; the item itself is authoritative.
func (h *Handler) itemResponse(ctx context.Context, it models.Item) itemResponse {
	locked, _ := h.registry.IsLocked(ctx, it.ID)
	challenged, _ := h.registry.ChallengeExists(ctx, it.ID)
	return itemResponse{
		ID:         it.ID.String(),
		Data:       it.Data.Title(),
		Owner:      string(it.Owner),
		Stake:      it.Stake,
		UnlockTime: it.UnlockTime.UTC().Format(time.RFC3339),
		Locked:     locked,
		Challenged: challenged,
	}
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	log := h.logger.WarnContext
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		log = h.logger.ErrorContext
	}
	log(ctx, msg, "error", err.Error(), "request_id", requestcontext.RequestID(ctx))
}
