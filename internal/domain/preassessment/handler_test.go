package preassessment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mentara/mentara/internal/domain/scoring"
	"github.com/mentara/mentara/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func newRequest(method, target, body, userID string, roles ...string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req.WithContext(auth.WithUser(req.Context(), userID, roles))
}

func answersJSON(answers []int) string {
	b, _ := json.Marshal(answers)
	return string(b)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func seed(t *testing.T, h *Handler, clientID string) *PreAssessment {
	t.Helper()
	p, err := h.svc.Submit(context.Background(), SubmitInput{ClientID: clientID, Answers: severeDepression()})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return p
}

func TestHandler_Submit_Client(t *testing.T) {
	h, e := newTestHandler()
	body := `{"answers":` + answersJSON(severeDepression()) + `,"aiEstimate":{"Has_Depression":true}}`
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/", body, "client-1", auth.RoleClient), rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var got PreAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ClientID != "client-1" {
		t.Errorf("expected caller as client, got %q", got.ClientID)
	}
	if got.Scores[scoring.Depression].Severity != "Very Severe Depression" {
		t.Errorf("unexpected depression score %+v", got.Scores[scoring.Depression])
	}
}

func TestHandler_Submit_ClientForOtherClient(t *testing.T) {
	h, e := newTestHandler()
	body := `{"clientId":"client-2","answers":` + answersJSON(severeDepression()) + `}`
	c := e.NewContext(newRequest(http.MethodPost, "/", body, "client-1", auth.RoleClient), httptest.NewRecorder())
	if code := httpCode(t, h.Submit(c)); code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
}

func TestHandler_Submit_TherapistNeedsClient(t *testing.T) {
	h, e := newTestHandler()
	body := `{"answers":` + answersJSON(severeDepression()) + `}`
	c := e.NewContext(newRequest(http.MethodPost, "/", body, "t-1", auth.RoleTherapist), httptest.NewRecorder())
	if code := httpCode(t, h.Submit(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}

	body = `{"clientId":"client-9","answers":` + answersJSON(severeDepression()) + `}`
	rec := httptest.NewRecorder()
	c = e.NewContext(newRequest(http.MethodPost, "/", body, "t-1", auth.RoleTherapist), rec)
	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"clientId":"client-9"`) {
		t.Errorf("expected record for named client, got %s", rec.Body.String())
	}
}

func TestHandler_Submit_BadRequest(t *testing.T) {
	h, e := newTestHandler()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing answers", `{}`, "Answers"},
		{"wrong length", `{"answers":[1,2,3]}`, "got 3"},
		{"malformed", `{"answers":`, "malformed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(newRequest(http.MethodPost, "/", tt.body, "client-1", auth.RoleClient), httptest.NewRecorder())
			err := h.Submit(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
			if msg, _ := he.Message.(string); !strings.Contains(msg, tt.want) {
				t.Errorf("message %q does not mention %q", msg, tt.want)
			}
		})
	}
}

func TestHandler_SubmitChat(t *testing.T) {
	h, e := newTestHandler()
	body := `{"collected":{"Anxiety":[3,3,3,3,3,3,3]},"structured":{"Insomnia_q1":4}}`
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/", body, "client-1", auth.RoleClient), rec)
	if err := h.SubmitChat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"method":"CHATBOT"`) {
		t.Errorf("expected chatbot method, got %s", rec.Body.String())
	}

	c = e.NewContext(newRequest(http.MethodPost, "/", `{}`, "client-1", auth.RoleClient), httptest.NewRecorder())
	if code := httpCode(t, h.SubmitChat(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty conversation, got %d", code)
	}
}

func TestHandler_Get(t *testing.T) {
	h, e := newTestHandler()
	p := seed(t, h, "client-1")

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-1", auth.RoleClient), rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_Get_HiddenFromOtherClients(t *testing.T) {
	h, e := newTestHandler()
	p := seed(t, h, "client-1")

	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-2", auth.RoleClient), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if code := httpCode(t, h.Get(c)); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}

	rec := httptest.NewRecorder()
	c = e.NewContext(newRequest(http.MethodGet, "/", "", "t-1", auth.RoleTherapist), rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if err := h.Get(c); err != nil {
		t.Fatalf("therapist should see any record: %v", err)
	}
}

func TestHandler_Get_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-1", auth.RoleClient), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	if code := httpCode(t, h.Get(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-1", auth.RoleClient), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	if code := httpCode(t, h.Get(c)); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestHandler_List(t *testing.T) {
	h, e := newTestHandler()
	seed(t, h, "client-1")
	seed(t, h, "client-1")
	seed(t, h, "client-2")

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/?limit=1", "", "client-1", auth.RoleClient), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Data    []PreAssessment `json:"data"`
		Total   int             `json:"total"`
		HasMore bool            `json:"hasMore"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 1 || !resp.HasMore {
		t.Errorf("unexpected page: total=%d len=%d hasMore=%v", resp.Total, len(resp.Data), resp.HasMore)
	}
}

func TestHandler_TreatmentPlan(t *testing.T) {
	h, e := newTestHandler()
	p := seed(t, h, "client-1")

	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-1", auth.RoleClient), rec)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	if err := h.TreatmentPlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Crisis Stabilization and Safety") {
		t.Errorf("expected crisis phase in plan, got %s", rec.Body.String())
	}
}

func TestHandler_ScoreBatch(t *testing.T) {
	h, e := newTestHandler()
	body := `{"answers":` + answersJSON(make([]int, scoring.TotalItems)) + `}`
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/", body, "client-1", auth.RoleClient), rec)
	if err := h.ScoreBatch(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Scores         map[string]int    `json:"scores"`
		SeverityLevels map[string]string `json:"severityLevels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Scores["Stress"] != 24 || resp.SeverityLevels["Stress"] != "Moderate Stress" {
		t.Errorf("unexpected stress result: %v %v", resp.Scores["Stress"], resp.SeverityLevels["Stress"])
	}
}

func TestHandler_ScoreQuestionnaire_Strict(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/?strict=true", `{"answers":[9,0,0,0,0,0,0]}`, "client-1", auth.RoleClient), rec)
	c.SetParamNames("name")
	c.SetParamValues("Anxiety")
	if err := h.ScoreQuestionnaire(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res scoring.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status != scoring.StatusWarning || len(res.Issues) == 0 {
		t.Errorf("expected warning for out-of-range code, got %+v", res)
	}
}

func TestHandler_Predict(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodPost, "/", `{"severities":{"PHQ-9":"severe","GAD-7":"minimal"}}`, "client-1", auth.RoleClient), rec)
	if err := h.Predict(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var preds map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &preds); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !preds["depression"] || preds["anxiety"] {
		t.Errorf("unexpected predictions %v", preds)
	}

	c = e.NewContext(newRequest(http.MethodPost, "/", `{"severities":{}}`, "client-1", auth.RoleClient), httptest.NewRecorder())
	if code := httpCode(t, h.Predict(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty severities, got %d", code)
	}
}

func TestHandler_Questionnaires(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(newRequest(http.MethodGet, "/", "", "client-1", auth.RoleClient), rec)
	if err := h.Questionnaires(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"scaleAbbreviation":"GAD-7"`) {
		t.Errorf("expected GAD-7 in catalogue, got %s", rec.Body.String())
	}
}

func TestHandler_PlanFromProfile(t *testing.T) {
	h, e := newTestHandler()
	c := e.NewContext(newRequest(http.MethodPost, "/", `{}`, "t-1", auth.RoleTherapist), httptest.NewRecorder())
	if code := httpCode(t, h.PlanFromProfile(c)); code != http.StatusBadRequest {
		t.Errorf("expected 400 without profile, got %d", code)
	}

	body := `{"clinicalProfile":{"overallRiskLevel":"low","primaryConditions":[]}}`
	rec := httptest.NewRecorder()
	c = e.NewContext(newRequest(http.MethodPost, "/", body, "t-1", auth.RoleTherapist), rec)
	if err := h.PlanFromProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Preventive intervention") {
		t.Errorf("expected preventive strategy, got %s", rec.Body.String())
	}
}

func TestHandler_Routes_RoleChecks(t *testing.T) {
	h, e := newTestHandler()
	h.RegisterRoutes(e.Group("/api/v1"))
	p := seed(t, h, "client-1")

	tests := []struct {
		name   string
		method string
		path   string
		roles  []string
		want   int
	}{
		{"client cannot delete", http.MethodDelete, "/api/v1/pre-assessments/" + p.ID.String(), []string{auth.RoleClient}, http.StatusForbidden},
		{"moderator cannot read records", http.MethodGet, "/api/v1/pre-assessments/" + p.ID.String(), []string{auth.RoleModerator}, http.StatusForbidden},
		{"moderator can list questionnaires", http.MethodGet, "/api/v1/scoring/questionnaires", []string{auth.RoleModerator}, http.StatusOK},
		{"client cannot synthesize plans", http.MethodPost, "/api/v1/treatment-plans", []string{auth.RoleClient}, http.StatusForbidden},
		{"admin deletes", http.MethodDelete, "/api/v1/pre-assessments/" + p.ID.String(), []string{auth.RoleAdmin}, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, newRequest(tt.method, tt.path, "", "client-1", tt.roles...))
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}
