package service

import (
	"time"

	"github.com/GlebRadaev/clubcredits/internal/handlers/auth"
	"github.com/GlebRadaev/clubcredits/internal/handlers/board"
	"github.com/GlebRadaev/clubcredits/internal/handlers/credits"
	"github.com/GlebRadaev/clubcredits/internal/handlers/planning"
	"github.com/GlebRadaev/clubcredits/internal/handlers/tasks"
	"github.com/GlebRadaev/clubcredits/internal/planner"
	"github.com/GlebRadaev/clubcredits/internal/repo"
	"github.com/GlebRadaev/clubcredits/internal/session"
	"github.com/GlebRadaev/clubcredits/internal/store"

	pkgauth "github.com/GlebRadaev/clubcredits/pkg/auth"

	boardservice "github.com/GlebRadaev/clubcredits/internal/service/boardservice"
	creditservice "github.com/GlebRadaev/clubcredits/internal/service/creditservice"
	planningservice "github.com/GlebRadaev/clubcredits/internal/service/planningservice"
	sessionservice "github.com/GlebRadaev/clubcredits/internal/service/sessionservice"
	taskservice "github.com/GlebRadaev/clubcredits/internal/service/taskservice"
)

type Services struct {
	SessionService  auth.Service
	TaskService     tasks.Service
	CreditService   credits.Service
	PlanningService planning.Service
	BoardService    board.Service

	// PlannerSource feeds the recurring planner.
	PlannerSource planner.Source

	Holder *session.Holder
	Tokens pkgauth.JWTServiceInterface
}

func New(st *store.Store, repo *repo.Repositories, tokens pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	holder := session.New(st, repo.SessionSlot)
	planningService := planningservice.New(st)

	return &Services{
		SessionService:  sessionservice.New(holder, st, tokens, tokenTTL),
		TaskService:     taskservice.New(st),
		CreditService:   creditservice.New(st),
		PlanningService: planningService,
		BoardService:    boardservice.New(st),
		PlannerSource:   planningService,
		Holder:          holder,
		Tokens:          tokens,
	}
}
