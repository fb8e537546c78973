package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/alexanderramin/scriptchat/internal/repository"
	"github.com/alexanderramin/scriptchat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type panickingProcessor struct{}

func (panickingProcessor) Process(string, domain.Mode, *domain.Bundle, []domain.Message) engine.Result {
	panic("extractor exploded")
}

func newTestService(t *testing.T, observers ...UseCaseObserver) ConversationService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewConversationService(testutil.NewTestUoW(database), engine.NewDispatcher(engine.NewSequenceIDs("id")), observers...)
}

func TestConversationService_StartSeedsGreeting(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, mode := range domain.AllModes() {
		conv, err := svc.Start(ctx, mode)
		require.NoError(t, err)

		require.Len(t, conv.Messages, 1)
		assert.Equal(t, domain.RoleAssistant, conv.Messages[0].Role)
		assert.Equal(t, engine.InitialGreeting(mode), conv.Messages[0].Content)
		assert.Equal(t, engine.Title(mode, nil), conv.Title)
		assert.NotNil(t, conv.Data.Record(mode))

		stored, err := svc.Get(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.Messages[0].Content, stored.Messages[0].Content)
	}
}

func TestConversationService_StartRejectsUnknownMode(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Start(context.Background(), domain.Mode("legal"))

	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestConversationService_SendAppendsTwoMessagesAndRetitles(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeCurriculum)
	require.NoError(t, err)

	reply, err := svc.Send(ctx, conv.ID, "  I want to teach JavaScript to beginners  ")
	require.NoError(t, err)

	assert.Contains(t, reply.Response, "Perfect!")
	assert.Equal(t, engine.CurriculumInitial.String(), reply.Step)
	assert.Equal(t, "Javascript to beginners", reply.Conversation.Title)
	require.Len(t, reply.Conversation.Messages, 3)
	assert.Equal(t, "I want to teach JavaScript to beginners", reply.Conversation.Messages[1].Content)
	assert.Equal(t, domain.RoleUser, reply.Conversation.Messages[1].Role)
	assert.Equal(t, reply.Response, reply.Conversation.Messages[2].Content)

	stored, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 3)
	assert.Equal(t, "Javascript to beginners", stored.Data.Curriculum.Subject)
	assert.Equal(t, "Javascript to beginners", stored.Title)
}

func TestConversationService_SendPassesPriorHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeGeneral)
	require.NoError(t, err)

	// Greeting plus one exchange is still the opening of the conversation.
	first, err := svc.Send(ctx, conv.ID, "Hi")
	require.NoError(t, err)
	assert.Contains(t, first.Response, "general chat assistant")

	_, err = svc.Send(ctx, conv.ID, "Let's discuss sourdough baking")
	require.NoError(t, err)
	later, err := svc.Send(ctx, conv.ID, "Hello again")
	require.NoError(t, err)
	assert.NotContains(t, later.Response, "general chat assistant")
	assert.Contains(t, later.Conversation.Data.GeneralChat.ConversationSummary, "2 user messages")
}

func TestConversationService_SendRejectsEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeEcom)
	require.NoError(t, err)

	_, err = svc.Send(ctx, conv.ID, "   \n")
	assert.ErrorIs(t, err, ErrEmptyMessage)

	stored, err := svc.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 1)
}

func TestConversationService_SendUnknownConversation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Send(context.Background(), "missing", "hello")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConversationService_ProcessorPanicFallsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewConversationService(testutil.NewTestUoW(database), panickingProcessor{}, obs)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeCurriculum)
	require.NoError(t, err)

	reply, err := svc.Send(ctx, conv.ID, "I want to teach chess")
	require.NoError(t, err)

	assert.Equal(t, FallbackReply, reply.Response)
	assert.Empty(t, reply.Conversation.Data.Curriculum.Subject)
	assert.Equal(t, "New Curriculum", reply.Conversation.Title)
	assert.Len(t, reply.Conversation.Messages, 3)
	assert.Equal(t, "extractor exploded", obs.last().Fields["recovered"])
	assert.True(t, obs.last().Success)
}

func TestConversationService_SendIsAtomic(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	dispatcher := engine.NewDispatcher(engine.NewSequenceIDs("id"))
	setup := NewConversationService(testutil.NewTestUoW(database), dispatcher)
	conv, err := setup.Start(ctx, domain.ModeEcom)
	require.NoError(t, err)

	injected := errors.New("disk full")
	for failOn := int32(1); failOn <= 3; failOn++ {
		failing := NewConversationService(&testutil.FailOnNthExecUoW{DB: database, FailOn: failOn, Err: injected}, dispatcher)

		_, err := failing.Send(ctx, conv.ID, "I'm building Cozy Candles")
		require.ErrorIs(t, err, injected, "fail on exec %d", failOn)

		stored, err := setup.Get(ctx, conv.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Messages, 1, "fail on exec %d", failOn)
		assert.Empty(t, stored.Data.TikTokShop.BusinessName)
		assert.Equal(t, "New TikTok Shop", stored.Title)
	}
}

func TestConversationService_ListMostRecentFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.Start(ctx, domain.ModeCurriculum)
	require.NoError(t, err)
	b, err := svc.Start(ctx, domain.ModeEcom)
	require.NoError(t, err)
	_, err = svc.Send(ctx, a.ID, "I want to teach ceramics")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
	assert.Len(t, list[0].Messages, 3)
	assert.Len(t, list[1].Messages, 1)
}

func TestConversationService_Delete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeGeneral)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, conv.ID))

	_, err = svc.Get(ctx, conv.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, conv.ID), repository.ErrNotFound)
}

func TestConversationService_ObservesUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(t, obs)
	ctx := context.Background()

	conv, err := svc.Start(ctx, domain.ModeEcom)
	require.NoError(t, err)
	_, err = svc.Send(ctx, conv.ID, "My business is Tiny Terrarium Co")
	require.NoError(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "start-conversation", obs.events[0].Name)
	assert.Equal(t, "ecom", obs.events[0].Fields["mode"])
	ev := obs.events[1]
	assert.Equal(t, "send-message", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, conv.ID, ev.Fields["conversation_id"])
	assert.Equal(t, "initial", ev.Fields["step"])
}

func TestConversationService_DeleteReportsMessageCount(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(t, obs)
	ctx := context.Background()
	conv, err := svc.Start(ctx, domain.ModeGeneral)
	require.NoError(t, err)
	_, err = svc.Send(ctx, conv.ID, "hello there")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, conv.ID))

	ev := obs.last()
	assert.Equal(t, "delete-conversation", ev.Name)
	assert.Equal(t, 3, ev.Fields["messages"])

	require.ErrorIs(t, svc.Delete(ctx, conv.ID), repository.ErrNotFound)
	assert.NotContains(t, obs.last().Fields, "messages")
}

func TestLogUseCaseObserver_Levels(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "list-conversations", Success: true})
	assert.Empty(t, buf.String(), "reads are debug level")

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "send-message", Success: true, Fields: map[string]any{"mode": "general"}})
	assert.Contains(t, buf.String(), "use_case=send-message")
	assert.Contains(t, buf.String(), "mode=general")

	buf.Reset()
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "get-conversation", Err: errors.New("boom")})
	line := buf.String()
	assert.True(t, strings.Contains(line, "level=ERROR"), line)
	assert.Contains(t, line, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, nil))
}
