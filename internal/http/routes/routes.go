package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	scs "github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"

	"github.com/briangreenhill/paceplan/alternatives"
	appmw "github.com/briangreenhill/paceplan/internal/http/middleware"
	"github.com/briangreenhill/paceplan/internal/jobs"
	"github.com/briangreenhill/paceplan/internal/store"
	"github.com/briangreenhill/paceplan/pace"
	"github.com/briangreenhill/paceplan/plan"
	"github.com/briangreenhill/paceplan/prescribe"
	"github.com/briangreenhill/paceplan/profile"
)

type Server struct {
	Router    *chi.Mux
	Sess      *scs.SessionManager
	Store     store.PlanStore
	RedisAddr string

	plansGenerated *prometheus.CounterVec
	pacesServed    prometheus.Counter
	altsServed     prometheus.Counter
	swapsApplied   prometheus.Counter
}

type ServerOptions struct {
	Sess      *scs.SessionManager
	Store     store.PlanStore
	RedisAddr string
	Registry  *prometheus.Registry // nil gets a fresh registry
}

func New(opts ServerOptions) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		Router:    r,
		Sess:      opts.Sess,
		Store:     opts.Store,
		RedisAddr: opts.RedisAddr,
		plansGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paceplan_plans_generated_total",
			Help: "Training plans generated, by goal distance.",
		}, []string{"distance"}),
		pacesServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paceplan_paces_served_total",
			Help: "Pace profile lookups served.",
		}),
		altsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paceplan_alternatives_served_total",
			Help: "Alternative menus generated.",
		}),
		swapsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paceplan_swaps_applied_total",
			Help: "Workout swaps applied to stored plans.",
		}),
	}
	reg.MustRegister(s.plansGenerated, s.pacesServed, s.altsServed, s.swapsApplied)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Method("GET", "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/paces", s.handlePaces)
		api.Post("/plan", s.handleCreatePlan)
		api.Get("/plan/{planID}", s.handleGetPlan)
		api.Post("/plan/{planID}/swap", s.handleSwap)

		api.Group(func(pr chi.Router) {
			pr.Use(s.sessionToContext)
			pr.Use(appmw.RequireProfile)
			pr.Post("/plan/{planID}/alternatives", s.handleAlternatives)
		})
	})

	return s
}

// sessionToContext rehydrates the session's runner profile onto the request
// context, using the same key RequireProfile checks.
func (s *Server) sessionToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := s.Sess.GetString(r.Context(), "profile"); raw != "" {
			var p profile.Profile
			if err := json.Unmarshal([]byte(raw), &p); err == nil {
				r = r.WithContext(appmw.WithProfile(r.Context(), p))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses: unreachable goals are
// 422, unknown plans and templates 404, everything malformed 400.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	var oor *pace.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	}
	if status >= 500 {
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	} else {
		hlog.FromRequest(r).Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

type pacesRequest struct {
	Distance string `json:"distance"`
	GoalTime string `json:"goalTime"`
}

func (s *Server) handlePaces(w http.ResponseWriter, r *http.Request) {
	var req pacesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.New("invalid JSON body"))
		return
	}
	dist, err := pace.ParseDistance(req.Distance)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	paces, err := pace.FromGoal(dist, req.GoalTime)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.pacesServed.Inc()
	s.writeJSON(w, http.StatusOK, paces)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, r, errors.New("invalid JSON body"))
		return
	}
	tp, err := plan.Generate(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Store.SavePlan(r.Context(), tp); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("plan_id", tp.ID.String()).Msg("save plan failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save plan"})
		return
	}

	// The session keeps the profile so later alternative requests do not
	// need to resend it.
	if raw, err := json.Marshal(p); err == nil {
		s.Sess.Put(r.Context(), "profile", string(raw))
		s.Sess.Put(r.Context(), "plan_id", tp.ID.String())
	}

	s.enqueueSave(r, tp)
	s.plansGenerated.WithLabelValues(string(tp.GoalDistance)).Inc()
	hlog.FromRequest(r).Info().
		Str("plan_id", tp.ID.String()).
		Str("distance", string(tp.GoalDistance)).
		Int("weeks", len(tp.Weeks)).
		Msg("plan generated")
	s.writeJSON(w, http.StatusCreated, tp)
}

// enqueueSave hands the plan to the worker for durable persistence. Without
// Redis the synchronous save above is all there is.
func (s *Server) enqueueSave(r *http.Request, tp *plan.TrainingPlan) {
	if s.RedisAddr == "" {
		return
	}
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: s.RedisAddr})
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			hlog.FromRequest(r).Error().Err(closeErr).Msg("closing asynq client")
		}
	}()

	data, err := json.Marshal(tp)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("marshal plan for save task")
		return
	}
	payload, _ := json.Marshal(jobs.SavePlanPayload{PlanID: tp.ID.String(), Plan: data})
	task := asynq.NewTask(jobs.TaskSavePlan, payload)

	info, err := client.Enqueue(task,
		asynq.Queue("plans"),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("enqueue save task failed")
		return
	}
	hlog.FromRequest(r).Info().Str("task_id", info.ID).Str("queue", info.Queue).Msg("save task enqueued")
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	tp, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, tp)
}

// loadPlan parses the planID route param and fetches the plan, writing the
// error response itself when either step fails.
func (s *Server) loadPlan(w http.ResponseWriter, r *http.Request) (*plan.TrainingPlan, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "planID"))
	if err != nil {
		s.writeError(w, r, errors.New("invalid plan ID"))
		return nil, false
	}
	tp, err := s.Store.GetPlan(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return tp, true
}

type alternativesRequest struct {
	Week           int    `json:"week"`
	Day            string `json:"day"`
	Mode           string `json:"mode,omitempty"`
	Reason         string `json:"reason,omitempty"`
	ExtremeWeather bool   `json:"extremeWeather,omitempty"`
}

func (s *Server) handleAlternatives(w http.ResponseWriter, r *http.Request) {
	tp, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	var req alternativesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.New("invalid JSON body"))
		return
	}
	entry, err := findDay(tp, req.Week, req.Day)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	p, _ := appmw.ProfileFrom(r.Context()) // guaranteed by RequireProfile
	cats := alternatives.Generate(*entry, p, alternatives.Options{
		Mode:           alternatives.Mode(req.Mode),
		Reason:         req.Reason,
		ExtremeWeather: req.ExtremeWeather,
	})
	s.altsServed.Inc()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"planId":     tp.ID,
		"week":       req.Week,
		"day":        entry.Day.String(),
		"categories": cats,
	})
}

type swapRequest struct {
	Week     int               `json:"week"`
	Day      string            `json:"day"`
	Category string            `json:"category"`
	Workout  prescribe.Workout `json:"workout"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	tp, ok := s.loadPlan(w, r)
	if !ok {
		return
	}
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.New("invalid JSON body"))
		return
	}
	if req.Workout.Name == "" {
		s.writeError(w, r, errors.New("workout required"))
		return
	}
	entry, err := findDay(tp, req.Week, req.Day)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	alternatives.Apply(entry, req.Category, req.Workout)

	if err := s.Store.SavePlan(r.Context(), tp); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("plan_id", tp.ID.String()).Msg("save swapped plan failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save plan"})
		return
	}
	s.enqueueSave(r, tp)
	s.swapsApplied.Inc()
	hlog.FromRequest(r).Info().
		Str("plan_id", tp.ID.String()).
		Int("week", req.Week).
		Str("day", entry.Day.String()).
		Str("category", req.Category).
		Msg("workout swapped")
	s.writeJSON(w, http.StatusOK, entry)
}

// findDay locates one day entry inside a stored plan by week number and
// weekday name. The pointer aims into the plan so a swap mutates it.
func findDay(tp *plan.TrainingPlan, week int, day string) (*plan.DayEntry, error) {
	wk := tp.WeekByNumber(week)
	if wk == nil {
		return nil, errors.New("week not in plan")
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !strings.EqualFold(d.String(), day) {
			continue
		}
		entry := wk.Entry(d)
		if entry == nil {
			return nil, errors.New("day not in week")
		}
		return entry, nil
	}
	return nil, errors.New("invalid day name")
}
