package page

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"taskdesk/config"
	"taskdesk/infras/otel"
	"taskdesk/internal/domains/auth/model/dto"
	"taskdesk/internal/domains/auth/service"
	"taskdesk/shared/constant"
	"taskdesk/shared/validator"
	"taskdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const templateDir = "web/templates"

// Handler serves the HTML surface: login and register forms, the dashboard
// shell, and logout. The dashboard itself talks to the JSON API.
type Handler struct {
	auth       service.Auth
	middleware middleware.Auth
	cfg        *config.Config
	otel       otel.Otel
	tmpl       map[string]*template.Template
}

func New(auth service.Auth, middleware middleware.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		auth:       auth,
		middleware: middleware,
		cfg:        cfg,
		otel:       otel,
		tmpl:       loadTemplates(templateDir),
	}
}

// loadTemplates parses every page template against the shared layout.
func loadTemplates(dir string) map[string]*template.Template {
	templates := map[string]*template.Template{}
	layout := filepath.Join(dir, "layout.html")

	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to glob page templates")
	}

	for _, page := range pages {
		if filepath.Base(page) == "layout.html" {
			continue
		}

		t, err := template.ParseFiles(layout, page)
		if err != nil {
			log.Fatal().Err(err).Str("page", page).Msg("failed to parse page template")
		}

		name := strings.TrimSuffix(filepath.Base(page), ".html")
		templates[name] = t
	}

	return templates
}

func (handler *Handler) Router(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Page)
		routerGroup.Get("/", handler.Dashboard)
		routerGroup.Get("/logout", handler.Logout)
	})

	router.Get("/login", handler.LoginForm)
	router.Post("/login", handler.Login)
	router.Get("/register", handler.RegisterForm)
	router.Post("/register", handler.Register)
}

// Dashboard renders the task board shell for the authenticated user.
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	username, _ := r.Context().Value(constant.ContextKeyUsername).(string)

	handler.render(w, http.StatusOK, "index", map[string]any{
		"User": username,
	})
}

// LoginForm renders the login page.
func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	handler.render(w, http.StatusOK, "login", map[string]any{"Email": ""})
}

// Login authenticates a form submission and sets the session cookie.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.render(w, http.StatusBadRequest, "login", map[string]any{
			"Error": "invalid form submission",
			"Email": "",
		})

		return
	}

	req := dto.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		handler.render(w, http.StatusBadRequest, "login", map[string]any{
			"Error": err.Error(),
			"Email": req.Email,
		})

		return
	}

	res, err := handler.auth.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login failed")

		handler.render(w, http.StatusUnauthorized, "login", map[string]any{
			"Error": "Invalid email or password",
			"Email": req.Email,
		})

		return
	}

	handler.setSessionCookie(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterForm renders the registration page.
func (handler *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	handler.render(w, http.StatusOK, "register", map[string]any{"Username": "", "Email": ""})
}

// Register creates the account and logs the new user straight in.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		handler.render(w, http.StatusBadRequest, "register", map[string]any{
			"Error":    "invalid form submission",
			"Username": "",
			"Email":    "",
		})

		return
	}

	req := dto.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		handler.render(w, http.StatusBadRequest, "register", map[string]any{
			"Error":    err.Error(),
			"Username": req.Username,
			"Email":    req.Email,
		})

		return
	}

	res, err := handler.auth.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("registration failed")

		handler.render(w, http.StatusConflict, "register", map[string]any{
			"Error":    err.Error(),
			"Username": req.Username,
			"Email":    req.Email,
		})

		return
	}

	handler.setSessionCookie(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the session and clears the cookie.
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if cookie, err := r.Cookie(handler.cfg.Session.CookieName); err == nil {
		if err := handler.auth.Logout(ctx, cookie.Value); err != nil {
			log.Warn().Err(err).Msg("failed to end session on logout")
		}
	}

	handler.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (handler *Handler) render(w http.ResponseWriter, code int, name string, data map[string]any) {
	t, ok := handler.tmpl[name]
	if !ok {
		log.Error().Str("template", name).Msg("template not found")
		http.Error(w, "template not found", http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, "text/html; charset=utf-8")
	w.WriteHeader(code)

	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

func (handler *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   handler.cfg.Session.TTLMinutes * constant.MinutesToSeconds,
		HttpOnly: true,
		Secure:   handler.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (handler *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
