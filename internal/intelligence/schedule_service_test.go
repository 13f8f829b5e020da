package intelligence

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gemini-2.5-flash"}, nil
}

func (m *mockClient) Available(_ context.Context) bool { return m.err == nil }

func planJSON(resp aiPlanResponse) string {
	data, _ := json.Marshal(resp)
	return string(data)
}

func validResponse() aiPlanResponse {
	return aiPlanResponse{
		Schedule: []aiScheduleItem{
			{Title: "Write report", StartTime: "2026-01-05T09:00:00", EndTime: "2026-01-05T10:00:00", Type: "FOCUS", Notes: "Start with the outline"},
			{Title: "Break", StartTime: "2026-01-05T10:00:00", EndTime: "2026-01-05T10:15:00", Type: "BREAK"},
		},
		Summary:     "A focused morning with a recovery break.",
		Feedback:    "Front-loaded the deep work.",
		Suggestions: "Keep your phone in another room during focus blocks.",
	}
}

func testRequest(t *testing.T) PlanRequest {
	t.Helper()
	start, err := domain.ParseWallTime("2026-01-05T08:00:00")
	require.NoError(t, err)
	end, err := domain.ParseWallTime("2026-01-05T18:00:00")
	require.NoError(t, err)
	return PlanRequest{
		WindowStart: start,
		WindowEnd:   end,
		Tasks:       "write report, gym, emails",
		Preferences: "deep work in the morning",
	}
}

func TestScheduleService_Generate_BuildsPlan(t *testing.T) {
	client := &mockClient{response: planJSON(validResponse())}
	svc := NewScheduleService(client)

	plan, err := svc.Generate(context.Background(), testRequest(t))
	require.NoError(t, err)

	require.Len(t, plan.Schedule, 2)
	assert.Equal(t, "Write report", plan.Schedule[0].Title)
	assert.Equal(t, domain.BlockFocus, plan.Schedule[0].Type)
	assert.Equal(t, 60, plan.Schedule[0].DurationMinutes())
	assert.Equal(t, "A focused morning with a recovery break.", plan.Summary)
	assert.Equal(t, "Front-loaded the deep work.", plan.Feedback)
	assert.NotEmpty(t, plan.Suggestions)

	assert.Equal(t, llm.TaskGenerate, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "2026-01-05T08:00:00")
	assert.Contains(t, client.lastReq.UserPrompt, `"write report, gym, emails"`)
	assert.Contains(t, client.lastReq.SystemPrompt, "local time")
}

func TestScheduleService_Generate_AssignsFreshIDs(t *testing.T) {
	client := &mockClient{response: planJSON(validResponse())}
	svc := NewScheduleService(client)

	plan, err := svc.Generate(context.Background(), testRequest(t))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, item := range plan.Schedule {
		assert.NotEmpty(t, item.ID)
		assert.False(t, seen[item.ID], "ids must be unique")
		seen[item.ID] = true
	}
}

func TestScheduleService_Generate_StripsZoneSuffixWithoutShifting(t *testing.T) {
	resp := validResponse()
	resp.Schedule[0].StartTime = "2026-01-05T09:00:00Z"
	resp.Schedule[0].EndTime = "2026-01-05T10:00:00+05:30"

	client := &mockClient{response: planJSON(resp)}
	svc := NewScheduleService(client)

	plan, err := svc.Generate(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, 9, plan.Schedule[0].StartTime.Hour())
	assert.Equal(t, 10, plan.Schedule[0].EndTime.Hour())
}

func TestScheduleService_Generate_RejectsUnknownBlockType(t *testing.T) {
	resp := validResponse()
	resp.Schedule[1].Type = "NAP"

	client := &mockClient{response: planJSON(resp)}
	svc := NewScheduleService(client)

	_, err := svc.Generate(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestScheduleService_Generate_RejectsMissingSummary(t *testing.T) {
	resp := validResponse()
	resp.Summary = ""

	client := &mockClient{response: planJSON(resp)}
	svc := NewScheduleService(client)

	_, err := svc.Generate(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestScheduleService_Generate_RejectsBadTimestamp(t *testing.T) {
	resp := validResponse()
	resp.Schedule[0].StartTime = "nine in the morning"

	client := &mockClient{response: planJSON(resp)}
	svc := NewScheduleService(client)

	_, err := svc.Generate(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestScheduleService_Generate_RejectsMalformedJSON(t *testing.T) {
	client := &mockClient{response: "Sorry, I could not build a schedule today."}
	svc := NewScheduleService(client)

	_, err := svc.Generate(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestScheduleService_Generate_AcceptsFencedResponse(t *testing.T) {
	client := &mockClient{response: "```json\n" + planJSON(validResponse()) + "\n```"}
	svc := NewScheduleService(client)

	plan, err := svc.Generate(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Len(t, plan.Schedule, 2)
}

func TestScheduleService_Generate_EmptyScheduleIsValid(t *testing.T) {
	resp := validResponse()
	resp.Schedule = []aiScheduleItem{}

	client := &mockClient{response: planJSON(resp)}
	svc := NewScheduleService(client)

	plan, err := svc.Generate(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Empty(t, plan.Schedule)
}

func TestScheduleService_Refine_SendsCurrentScheduleAsContext(t *testing.T) {
	client := &mockClient{response: planJSON(validResponse())}
	svc := NewScheduleService(client)

	current := &domain.TimeboxPlan{
		Schedule: []domain.ScheduleItem{
			{
				ID:        "existing",
				Title:     "Old block",
				StartTime: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
				Type:      domain.BlockFocus,
			},
		},
		Summary: "old plan",
	}

	plan, err := svc.Refine(context.Background(), testRequest(t), current, "move the gym to the evening")
	require.NoError(t, err)
	assert.Len(t, plan.Schedule, 2)

	assert.Equal(t, llm.TaskRefine, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, `"move the gym to the evening"`)
	assert.Contains(t, client.lastReq.UserPrompt, `"Old block"`)
	assert.Contains(t, client.lastReq.UserPrompt, "2026-01-05T09:00:00")
	// The existing plan is never mutated.
	assert.Equal(t, "existing", current.Schedule[0].ID)
	assert.Equal(t, "old plan", current.Summary)
}

func TestScheduleService_Available_DelegatesToClient(t *testing.T) {
	assert.True(t, NewScheduleService(&mockClient{}).Available(context.Background()))
	assert.False(t, NewScheduleService(&mockClient{err: llm.ErrTimeout}).Available(context.Background()))
}

func TestScheduleService_Refine_RequiresPlan(t *testing.T) {
	svc := NewScheduleService(&mockClient{})
	_, err := svc.Refine(context.Background(), testRequest(t), nil, "anything")
	assert.Error(t, err)
}

func TestScheduleService_Refine_FailureLeavesNoPartialState(t *testing.T) {
	client := &mockClient{err: llm.ErrTimeout}
	svc := NewScheduleService(client)

	current := &domain.TimeboxPlan{Summary: "untouched"}
	plan, err := svc.Refine(context.Background(), testRequest(t), current, "try again")

	assert.ErrorIs(t, err, llm.ErrTimeout)
	assert.Nil(t, plan)
	assert.Equal(t, "untouched", current.Summary)
}
