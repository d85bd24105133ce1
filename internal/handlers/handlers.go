package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/clubcredits/docs"
	authhandlers "github.com/GlebRadaev/clubcredits/internal/handlers/auth"
	boardhandlers "github.com/GlebRadaev/clubcredits/internal/handlers/board"
	credithandlers "github.com/GlebRadaev/clubcredits/internal/handlers/credits"
	planninghandlers "github.com/GlebRadaev/clubcredits/internal/handlers/planning"
	taskhandlers "github.com/GlebRadaev/clubcredits/internal/handlers/tasks"
	"github.com/GlebRadaev/clubcredits/internal/metrics"
	"github.com/GlebRadaev/clubcredits/internal/service"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
)

type AuthHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	SwitchRole(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	MyTasks(w http.ResponseWriter, r *http.Request)
	SignUp(w http.ResponseWriter, r *http.Request)
	CancelSignUp(w http.ResponseWriter, r *http.Request)
	JoinWaitlist(w http.ResponseWriter, r *http.Request)
	LeaveWaitlist(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	MyTransactions(w http.ResponseWriter, r *http.Request)
	Transactions(w http.ResponseWriter, r *http.Request)
	ShopItems(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	Voucher(w http.ResponseWriter, r *http.Request)
	Members(w http.ResponseWriter, r *http.Request)
	Member(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
}

type PlanningHandler interface {
	MyAvailability(w http.ResponseWriter, r *http.Request)
	ToggleAvailability(w http.ResponseWriter, r *http.Request)
	AvailableVolunteers(w http.ResponseWriter, r *http.Request)
	Templates(w http.ResponseWriter, r *http.Request)
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)
	Occurrences(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type BoardHandler interface {
	Announcements(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	DeleteAnnouncement(w http.ResponseWriter, r *http.Request)
	TogglePin(w http.ResponseWriter, r *http.Request)
	Notifications(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Club(w http.ResponseWriter, r *http.Request)
	UpdateClub(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	TaskHandler     TaskHandler
	CreditHandler   CreditHandler
	PlanningHandler PlanningHandler
	BoardHandler    BoardHandler

	Tokens    auth.JWTServiceInterface
	Holder    auth.SessionHolder
	AccessLog zerolog.Logger
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.SessionService),
		TaskHandler:     taskhandlers.New(s.TaskService),
		CreditHandler:   credithandlers.New(s.CreditService),
		PlanningHandler: planninghandlers.New(s.PlanningService),
		BoardHandler:    boardhandlers.New(s.BoardService),
		Tokens:          s.Tokens,
		Holder:          s.Holder,
		AccessLog:       log.Logger,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		hlog.NewHandler(h.AccessLog),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).
				Msg("")
		}),
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", h.AuthHandler.Users)
		r.Post("/session/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Tokens, h.Holder))

			r.Route("/session", func(r chi.Router) {
				r.Get("/", h.AuthHandler.Current)
				r.Post("/logout", h.AuthHandler.Logout)
				r.Post("/switch-role", h.AuthHandler.SwitchRole)
			})

			r.Route("/me", func(r chi.Router) {
				r.Get("/tasks", h.TaskHandler.MyTasks)
				r.Get("/balance", h.CreditHandler.Balance)
				r.Get("/transactions", h.CreditHandler.MyTransactions)
				r.Get("/availability", h.PlanningHandler.MyAvailability)
				r.Post("/availability/toggle", h.PlanningHandler.ToggleAvailability)
				r.Get("/notifications", h.BoardHandler.Notifications)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.TaskHandler.List)
				r.With(auth.RequireRole("admin")).Post("/", h.TaskHandler.Create)
				r.Route("/{taskID}", func(r chi.Router) {
					r.Get("/", h.TaskHandler.Get)
					r.Post("/signup", h.TaskHandler.SignUp)
					r.Delete("/signup", h.TaskHandler.CancelSignUp)
					r.Post("/waitlist", h.TaskHandler.JoinWaitlist)
					r.Delete("/waitlist", h.TaskHandler.LeaveWaitlist)

					r.Group(func(r chi.Router) {
						r.Use(auth.RequireRole("admin"))
						r.Put("/", h.TaskHandler.Update)
						r.Delete("/", h.TaskHandler.Delete)
						r.Post("/complete", h.TaskHandler.Complete)
					})
				})
			})

			r.Post("/notifications/{notificationID}/read", h.BoardHandler.MarkRead)
			r.Get("/shop/items", h.CreditHandler.ShopItems)
			r.Post("/shop/items/{itemID}/redeem", h.CreditHandler.Redeem)
			r.Get("/announcements", h.BoardHandler.Announcements)
			r.Get("/club", h.BoardHandler.Club)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole("admin"))

				r.Get("/members", h.CreditHandler.Members)
				r.Get("/members/{volunteerID}", h.CreditHandler.Member)
				r.Post("/members/{volunteerID}/credits", h.CreditHandler.Adjust)
				r.Get("/transactions", h.CreditHandler.Transactions)
				r.Get("/shop/vouchers/{code}", h.CreditHandler.Voucher)
				r.Get("/availability", h.PlanningHandler.AvailableVolunteers)

				r.Route("/templates", func(r chi.Router) {
					r.Get("/", h.PlanningHandler.Templates)
					r.Post("/", h.PlanningHandler.CreateTemplate)
					r.Delete("/{templateID}", h.PlanningHandler.DeleteTemplate)
					r.Get("/{templateID}/occurrences", h.PlanningHandler.Occurrences)
					r.Post("/{templateID}/generate", h.PlanningHandler.Generate)
				})

				r.Post("/announcements", h.BoardHandler.CreateAnnouncement)
				r.Delete("/announcements/{announcementID}", h.BoardHandler.DeleteAnnouncement)
				r.Post("/announcements/{announcementID}/pin", h.BoardHandler.TogglePin)
				r.Put("/club", h.BoardHandler.UpdateClub)
			})
		})
	})

	return r
}
