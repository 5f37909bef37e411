package stats

import (
	"net/http"

	"taskdesk/infras/otel"
	"taskdesk/internal/domains/stats/service"
	"taskdesk/shared/constant"
	"taskdesk/transport/http/middleware"
	"taskdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Stats
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Stats, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.API)
		routerGroup.Get("/", handler.GetSummary)
	})
}

// GetSummary returns completion totals and per-category counts.
// @Summary Todo statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} response.Error
// @Router /api/stats [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute stats summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}
