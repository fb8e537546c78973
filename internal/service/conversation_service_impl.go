package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scriptchat/internal/db"
	"github.com/alexanderramin/scriptchat/internal/domain"
	"github.com/alexanderramin/scriptchat/internal/engine"
	"github.com/alexanderramin/scriptchat/internal/repository"
	"github.com/google/uuid"
)

type conversationService struct {
	uow       db.UnitOfWork
	processor Processor
	observer  UseCaseObserver
	now       func() time.Time
}

func NewConversationService(
	uow db.UnitOfWork,
	processor Processor,
	observers ...UseCaseObserver,
) ConversationService {
	return &conversationService{
		uow:       uow,
		processor: processor,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start creates a conversation seeded with the mode's greeting.
func (s *conversationService) Start(ctx context.Context, mode domain.Mode) (conv *domain.Conversation, err error) {
	fields := map[string]any{"mode": string(mode)}
	defer observe(ctx, s.observer, "start-conversation", s.now(), fields, &err)

	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	now := s.now()
	data := engine.DefaultBundle(mode)
	conv = &domain.Conversation{
		ID:        uuid.NewString(),
		Title:     engine.Title(mode, data),
		Mode:      mode,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	greeting := domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   engine.InitialGreeting(mode),
		Timestamp: now,
	}
	conv.Messages = []domain.Message{greeting}
	fields["conversation_id"] = conv.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteConversationRepo(tx).Create(ctx, conv); err != nil {
			return err
		}
		return repository.NewSQLiteMessageRepo(tx).Append(ctx, conv.ID, greeting)
	})
	if err != nil {
		return nil, fmt.Errorf("starting %s conversation: %w", mode, err)
	}
	return conv, nil
}

// Send runs one turn: store the user message, process it against the
// prior history, store the reply and replace the record. All writes share
// one transaction.
func (s *conversationService) Send(ctx context.Context, id, text string) (reply *Reply, err error) {
	fields := map[string]any{"conversation_id": id}
	defer observe(ctx, s.observer, "send-message", s.now(), fields, &err)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		convs := repository.NewSQLiteConversationRepo(tx)
		msgs := repository.NewSQLiteMessageRepo(tx)

		conv, err := convs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		history, err := msgs.ListByConversation(ctx, id)
		if err != nil {
			return err
		}
		fields["mode"] = string(conv.Mode)

		userMsg := s.newMessage(domain.RoleUser, text)
		if err := msgs.Append(ctx, id, userMsg); err != nil {
			return err
		}

		result, recovered := s.process(text, conv.Mode, conv.Data, history)
		if recovered != nil {
			fields["recovered"] = fmt.Sprint(recovered)
		}
		if result.Step != "" {
			fields["step"] = result.Step
		}

		assistantMsg := s.newMessage(domain.RoleAssistant, result.Response)
		if err := msgs.Append(ctx, id, assistantMsg); err != nil {
			return err
		}

		if result.Data != nil {
			conv.Data = result.Data
		}
		conv.Title = engine.Title(conv.Mode, conv.Data)
		conv.UpdatedAt = assistantMsg.Timestamp
		if err := convs.Update(ctx, conv); err != nil {
			return err
		}

		conv.Messages = append(history, userMsg, assistantMsg)
		reply = &Reply{Conversation: conv, Response: result.Response, Step: result.Step}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}
	return reply, nil
}

// process shields the conversation from a failing processor. On panic the
// fallback reply is returned with the record unchanged.
func (s *conversationService) process(text string, mode domain.Mode, data *domain.Bundle, history []domain.Message) (result engine.Result, recovered any) {
	defer func() {
		if p := recover(); p != nil {
			recovered = p
			result = engine.Result{Response: FallbackReply, Data: data}
		}
	}()
	return s.processor.Process(text, mode, data, history), nil
}

func (s *conversationService) newMessage(role domain.Role, content string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
}

func (s *conversationService) Get(ctx context.Context, id string) (conv *domain.Conversation, err error) {
	defer observe(ctx, s.observer, "get-conversation", s.now(), map[string]any{"conversation_id": id}, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		c, err := repository.NewSQLiteConversationRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c.Messages, err = repository.NewSQLiteMessageRepo(tx).ListByConversation(ctx, id); err != nil {
			return err
		}
		conv = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// List returns every conversation with its messages, most recently
// updated first.
func (s *conversationService) List(ctx context.Context) (convs []*domain.Conversation, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "list-conversations", s.now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		msgs := repository.NewSQLiteMessageRepo(tx)
		list, err := repository.NewSQLiteConversationRepo(tx).List(ctx)
		if err != nil {
			return err
		}
		for _, c := range list {
			if c.Messages, err = msgs.ListByConversation(ctx, c.ID); err != nil {
				return err
			}
		}
		convs = list
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	fields["count"] = len(convs)
	return convs, nil
}

func (s *conversationService) Delete(ctx context.Context, id string) (err error) {
	fields := map[string]any{"conversation_id": id}
	defer observe(ctx, s.observer, "delete-conversation", s.now(), fields, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteMessageRepo(tx).CountByConversation(ctx, id)
		if err != nil {
			return err
		}
		if err := repository.NewSQLiteConversationRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		fields["messages"] = n
		return nil
	})
}
