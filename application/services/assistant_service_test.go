package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valet-backend/application/services"
	"valet-backend/domain/memory"
	"valet-backend/domain/prompt"
)

type fakeCompleter struct {
	reply string
	err   error
	msgs  []prompt.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, msgs []prompt.Message) (string, error) {
	f.msgs = msgs
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newAssistant(store *fakeStore, completer *fakeCompleter) *services.AssistantService {
	return services.NewAssistantService(
		store,
		completer,
		prompt.NewComposer("You are a butler.", 10),
		zap.NewNop(),
	)
}

func TestAnswer_EmptyInputRefusesWithoutStorage(t *testing.T) {
	store := newFakeStore()
	svc := newAssistant(store, &fakeCompleter{reply: "hello"})

	res, err := svc.Answer(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, services.DefaultRefusal, res.Reply)
	assert.Equal(t, 0, store.loadCalls)
	assert.Equal(t, 0, store.saveCalls)
}

func TestAnswer_ReinforcesMatchingNotes(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	mem := services.NewMemoryService(store, zap.NewNop())
	_, err := mem.Remember(ctx, "notes", "", "buy milk", memory.DefaultScore)
	require.NoError(t, err)

	svc := newAssistant(store, &fakeCompleter{reply: "Of course."})

	res, err := svc.Answer(ctx, "please buy milk today")
	require.NoError(t, err)
	assert.Equal(t, "Of course.", res.Reply)
	assert.Equal(t, 1, res.Reinforced)
	assert.Nil(t, res.Upstream)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Notes, 1)
	assert.Equal(t, memory.DefaultScore+1, doc.Notes[0].Score)
	assert.Equal(t, 1, doc.Notes[0].TimesUsed)
}

func TestAnswer_InjectsRankedNotesIntoPrompt(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	mem := services.NewMemoryService(store, zap.NewNop())
	_, _ = mem.Remember(ctx, "notes", "", "low priority", 1)
	_, _ = mem.Remember(ctx, "notes", "", "high priority", 9)

	completer := &fakeCompleter{reply: "done"}
	svc := newAssistant(store, completer)

	_, err := svc.Answer(ctx, "what next?")
	require.NoError(t, err)

	require.Len(t, completer.msgs, 3)
	memBlock := completer.msgs[1].Content
	assert.Contains(t, memBlock, "high priority")
	assert.Less(t,
		strings.Index(memBlock, "high priority"),
		strings.Index(memBlock, "low priority"),
	)
	assert.Equal(t, prompt.RoleUser, completer.msgs[2].Role)
	assert.Equal(t, "what next?", completer.msgs[2].Content)
}

func TestAnswer_UpstreamFailureLandsInReply(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newAssistant(store, &fakeCompleter{err: errors.New("connection refused")})

	res, err := svc.Answer(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Error: connection refused", res.Reply)
	require.NotNil(t, res.Upstream)
	// No reinforcement or save after a failed completion.
	assert.Equal(t, 0, store.saveCalls)
}
