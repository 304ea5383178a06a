package preassessment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mentara/mentara/internal/domain/insights"
	"github.com/mentara/mentara/internal/domain/scoring"
	"github.com/mentara/mentara/internal/domain/treatment"
	"github.com/mentara/mentara/internal/platform/auth"
	"github.com/mentara/mentara/pkg/pagination"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Clients act on their own records, therapists on anyone's.
	care := api.Group("", auth.RequireRole(auth.RoleClient, auth.RoleTherapist))
	care.POST("/pre-assessments", h.Submit)
	care.POST("/pre-assessments/chat", h.SubmitChat)
	care.GET("/pre-assessments", h.List)
	care.GET("/pre-assessments/:id", h.Get)
	care.GET("/pre-assessments/:id/treatment-plan", h.TreatmentPlan)

	api.DELETE("/pre-assessments/:id", h.Delete, auth.RequireRole(auth.RoleAdmin))

	// Stateless scoring is open to any signed-in role.
	sc := api.Group("/scoring", auth.RequireRole(auth.RoleClient, auth.RoleTherapist, auth.RoleModerator))
	sc.GET("/questionnaires", h.Questionnaires)
	sc.POST("/batch", h.ScoreBatch)
	sc.POST("/questionnaires/:name", h.ScoreQuestionnaire)
	sc.POST("/predictions", h.Predict)

	api.POST("/treatment-plans", h.PlanFromProfile, auth.RequireRole(auth.RoleTherapist))
}

type submitRequest struct {
	ClientID   string          `json:"clientId" validate:"omitempty,max=64"`
	Answers    []int           `json:"answers" validate:"required"`
	AIEstimate map[string]bool `json:"aiEstimate"`
}

type chatRequest struct {
	ClientID   string           `json:"clientId" validate:"omitempty,max=64"`
	Collected  map[string][]int `json:"collected" validate:"required_without=Structured"`
	Structured map[string]int   `json:"structured" validate:"required_without=Collected"`
	AIEstimate map[string]bool  `json:"aiEstimate"`
}

type answersRequest struct {
	Answers []int `json:"answers" validate:"required"`
}

type predictRequest struct {
	Severities map[string]string `json:"severities" validate:"required,min=1"`
}

type planRequest struct {
	Profile *insights.ClinicalProfile `json:"clinicalProfile" validate:"required"`
}

func (h *Handler) bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func httpError(err error) error {
	switch {
	case errors.Is(err, scoring.ErrInvalidInput), errors.Is(err, insights.ErrNoScores):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, treatment.ErrPlanGeneration):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
}

// clientFor picks the client a request acts on. Therapists must name one;
// clients always act on themselves.
func clientFor(c echo.Context, requested string) (string, error) {
	ctx := c.Request().Context()
	if auth.HasRole(auth.RolesFromContext(ctx), auth.RoleTherapist) {
		if requested == "" {
			return "", echo.NewHTTPError(http.StatusBadRequest, "clientId is required")
		}
		return requested, nil
	}
	uid := auth.UserIDFromContext(ctx)
	if requested != "" && requested != uid {
		return "", echo.NewHTTPError(http.StatusForbidden, "cannot act on another client")
	}
	return uid, nil
}

// load fetches a record and hides it from clients who do not own it.
func (h *Handler) load(c echo.Context) (*PreAssessment, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ctx := c.Request().Context()
	p, err := h.svc.Get(ctx, id)
	if err != nil {
		return nil, httpError(err)
	}
	if !auth.HasRole(auth.RolesFromContext(ctx), auth.RoleTherapist) && p.ClientID != auth.UserIDFromContext(ctx) {
		return nil, httpError(ErrNotFound)
	}
	return p, nil
}

func (h *Handler) Submit(c echo.Context) error {
	var req submitRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	clientID, err := clientFor(c, req.ClientID)
	if err != nil {
		return err
	}
	p, err := h.svc.Submit(c.Request().Context(), SubmitInput{
		ClientID:   clientID,
		Answers:    req.Answers,
		AIEstimate: req.AIEstimate,
		Method:     MethodChecklist,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) SubmitChat(c echo.Context) error {
	var req chatRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	clientID, err := clientFor(c, req.ClientID)
	if err != nil {
		return err
	}
	p, err := h.svc.SubmitChat(c.Request().Context(), ChatInput{
		ClientID:   clientID,
		Collected:  req.Collected,
		Structured: req.Structured,
		AIEstimate: req.AIEstimate,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.load(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c echo.Context) error {
	clientID, err := clientFor(c, c.QueryParam("clientId"))
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByClient(c.Request().Context(), clientID, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) TreatmentPlan(c echo.Context) error {
	p, err := h.load(c)
	if err != nil {
		return err
	}
	plan, err := h.svc.TreatmentPlan(c.Request().Context(), p.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) Questionnaires(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Questionnaires())
}

func (h *Handler) ScoreBatch(c echo.Context) error {
	var req answersRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	scores, err := h.svc.Score(c.Request().Context(), req.Answers)
	if err != nil {
		return httpError(err)
	}
	summary := scores.Summary()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scores":         summary.Scores,
		"severityLevels": summary.SeverityLevels,
		"details":        scores,
	})
}

func (h *Handler) ScoreQuestionnaire(c echo.Context) error {
	var req answersRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	strict, _ := strconv.ParseBool(c.QueryParam("strict"))
	res, err := h.svc.ScoreQuestionnaire(c.Request().Context(), c.Param("name"), req.Answers, strict)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) Predict(c echo.Context) error {
	var req predictRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	preds, err := h.svc.Predict(c.Request().Context(), req.Severities)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, preds)
}

func (h *Handler) PlanFromProfile(c echo.Context) error {
	var req planRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	plan, err := h.svc.PlanFromProfile(c.Request().Context(), req.Profile)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, plan)
}
