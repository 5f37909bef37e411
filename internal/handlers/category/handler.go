package category

import (
	"net/http"

	"taskdesk/infras/otel"
	"taskdesk/internal/domains/category/model/dto"
	"taskdesk/internal/domains/category/service"
	"taskdesk/shared/constant"
	"taskdesk/shared/validator"
	"taskdesk/transport/http/middleware"
	"taskdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Category
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Category, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.API)
		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Post("/", handler.CreateCategory)
	})
}

// GetCategories lists the categories of the authenticated user.
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} response.Error
// @Router /api/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, categories)
}

// CreateCategory creates a category for the authenticated user.
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} dto.CreateCategoryResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/categories [post]
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
