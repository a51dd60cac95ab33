package assistant_test

import (
	"catconnect/internal/assistant"
	"catconnect/pkg/domain"
	mockgeocoder "catconnect/pkg/geocoder/mock"
	"catconnect/pkg/kv/badgerkv"
	mockkv "catconnect/pkg/kv/mock"
	mockllm "catconnect/pkg/llm/mock"
	"catconnect/pkg/logger"
	"catconnect/pkg/serrors"
	mockstorage "catconnect/pkg/storage/mock"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type mocks struct {
	llm      *mockllm.MockClient
	geocoder *mockgeocoder.MockClient
	chats    *mockkv.MockChatStore
	storage  *mockstorage.MockAllStorage
}

func newAssistant(t *testing.T) (*assistant.Assistant, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		llm:      mockllm.NewMockClient(ctrl),
		geocoder: mockgeocoder.NewMockClient(ctrl),
		chats:    mockkv.NewMockChatStore(ctrl),
		storage:  mockstorage.NewMockAllStorage(ctrl),
	}

	return assistant.New(assistant.Deps{LLM: m.llm, Geocoder: m.geocoder, Chats: m.chats, Jobs: m.storage},
		assistant.Options{ChatHistoryTTL: time.Hour, ChatMaxTurns: 2}), m
}

var user = domain.Principal{UserID: domain.UserID(uuid.New()), Role: domain.RoleJobSeeker} //nolint: gochecknoglobals

func turn(i int) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: fmt.Sprintf("question %d", i)},
		{Role: domain.ChatRoleAssistant, Content: fmt.Sprintf("answer %d", i)},
	}
}

func TestAssistant_Chat(t *testing.T) {
	t.Run("reply extends trimmed history", func(t *testing.T) {
		a, m := newAssistant(t)
		history := append(turn(1), turn(2)...)

		m.chats.EXPECT().ChatHistory(gomock.Any(), user.UserID).Return(history, nil)
		m.llm.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs []domain.ChatMessage) (string, error) {
				require.Len(t, msgs, 6)
				require.Equal(t, domain.ChatRoleSystem, msgs[0].Role)
				require.Equal(t, "Where can I find jobs in Virac?", msgs[5].Content)

				return "Open the jobs list and filter by Virac.", nil
			})
		m.chats.EXPECT().SaveChatHistory(gomock.Any(), user.UserID, gomock.Any(), time.Hour).DoAndReturn(
			func(_ context.Context, _ domain.UserID, saved []domain.ChatMessage, _ time.Duration) error {
				require.Len(t, saved, 4)
				require.Equal(t, "question 2", saved[0].Content)
				require.Equal(t, "Open the jobs list and filter by Virac.", saved[3].Content)

				return nil
			})

		reply, err := a.Chat(context.Background(), user, "  Where can I find jobs in Virac?  ")
		require.NoError(t, err)
		require.Equal(t, "Open the jobs list and filter by Virac.", reply.Reply)
		require.Len(t, reply.History, 4)
	})

	t.Run("model down keeps history", func(t *testing.T) {
		a, m := newAssistant(t)
		m.chats.EXPECT().ChatHistory(gomock.Any(), user.UserID).Return(turn(1), nil)
		m.llm.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))

		_, err := a.Chat(context.Background(), user, "hello")
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})

	t.Run("model throttled", func(t *testing.T) {
		a, m := newAssistant(t)
		m.chats.EXPECT().ChatHistory(gomock.Any(), user.UserID).Return(nil, nil)
		m.llm.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", serrors.With(serrors.ErrRateLimited, "429"))

		_, err := a.Chat(context.Background(), user, "hello")
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("no model configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := assistant.New(assistant.Deps{Chats: mockkv.NewMockChatStore(ctrl)}, assistant.Options{})

		_, err := a.Chat(context.Background(), user, "hello")
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})

	t.Run("empty message", func(t *testing.T) {
		a, _ := newAssistant(t)

		_, err := a.Chat(context.Background(), user, "   ")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("anonymous", func(t *testing.T) {
		a, _ := newAssistant(t)

		_, err := a.Chat(context.Background(), domain.Principal{}, "hello")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestAssistant_ResetChat(t *testing.T) {
	a, m := newAssistant(t)
	m.chats.EXPECT().DeleteChatHistory(gomock.Any(), user.UserID).Return(nil)

	require.NoError(t, a.ResetChat(context.Background(), user))
}

func TestAssistant_ChatConcurrentTurnsAreKept(t *testing.T) {
	ctx := context.Background()
	store, err := badgerkv.Open(ctx, badgerkv.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctrl := gomock.NewController(t)
	model := mockllm.NewMockClient(ctrl)
	model.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ []domain.ChatMessage) (string, error) {
			time.Sleep(5 * time.Millisecond)

			return "ok", nil
		}).Times(5)

	a := assistant.New(assistant.Deps{LLM: model, Chats: store}, assistant.Options{ChatHistoryTTL: time.Hour, ChatMaxTurns: 10})

	var wg sync.WaitGroup
	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.Chat(ctx, user, fmt.Sprintf("question %d", i))
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := store.ChatHistory(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, history, 10)

	asked := map[string]bool{}
	for _, msg := range history {
		if msg.Role == domain.ChatRoleUser {
			asked[msg.Content] = true
		}
	}
	require.Len(t, asked, 5)
}
