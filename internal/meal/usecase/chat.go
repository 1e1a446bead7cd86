package usecase

import (
	"context"
	"strings"

	"nutrichat/internal/meal"
	"nutrichat/internal/meal/parser"
	"nutrichat/internal/meal/session"
	"nutrichat/internal/model"
	"nutrichat/pkg/llmprovider"
)

// Chat runs one conversational turn. The session lock is held for the whole
// turn so concurrent requests on one session cannot interleave history
// updates or double-commit a meal.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input meal.ChatInput) (meal.ChatOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return meal.ChatOutput{}, meal.ErrEmptyMessage
	}

	sess := uc.sessions.GetOrCreate(sc.SessionID)
	sess.Lock()
	defer sess.Unlock()

	sess.AppendMessage("user", msg)

	reply, err := uc.generate(ctx, sess.Messages())
	if err != nil {
		// Roll back the user turn so the history never carries an
		// utterance the model did not see.
		sess.DropLastMessage()
		uc.l.Errorf(ctx, "meal.usecase.Chat.generate: %v", err)
		return meal.ChatOutput{}, meal.ErrModelUnavailable
	}

	if parser.DetectLogIntent(reply) {
		return uc.commit(ctx, sess)
	}

	sess.AppendMessage("assistant", reply)

	items := parser.ParseSummaryLines(reply)
	if len(items) == 0 {
		return meal.ChatOutput{
			SessionID: sess.ID,
			Reply:     reply,
			Outcome:   meal.OutcomePlainReply,
		}, nil
	}

	sess.AppendPending(items...)
	pending := sess.Pending()

	return meal.ChatOutput{
		SessionID:         sess.ID,
		Reply:             renderNutritionTable(pending) + "\n" + uc.followUpQuestion(ctx, pending),
		NeedsConfirmation: true,
		Outcome:           meal.OutcomeNeedsConfirmation,
	}, nil
}

// commit moves the pending meal into the daily log and resets the session.
// On repository failure the session is left untouched so the user can retry.
func (uc *implUseCase) commit(ctx context.Context, sess *session.Session) (meal.ChatOutput, error) {
	if !sess.HasPending() {
		reply := "There is no pending meal to log yet. Tell me what you ate first."
		sess.AppendMessage("assistant", reply)
		return meal.ChatOutput{
			SessionID: sess.ID,
			Reply:     reply,
			Outcome:   meal.OutcomePlainReply,
		}, nil
	}

	now := uc.clock().In(uc.loc)
	day := now.Format(model.DayKeyFormat)
	committed := model.Meal{CommittedAt: now, Items: sess.Pending()}

	if err := uc.repo.AppendMeal(ctx, day, committed); err != nil {
		uc.l.Errorf(ctx, "meal.usecase.Chat.commit: %v", err)
		return meal.ChatOutput{}, err
	}

	sess.Reset()
	uc.l.Infof(ctx, "meal logged: session=%s day=%s items=%d", sess.ID, day, len(committed.Items))

	return meal.ChatOutput{
		SessionID: sess.ID,
		Reply:     meal.LoggedReply,
		Outcome:   meal.OutcomeLogged,
	}, nil
}

func (uc *implUseCase) generate(ctx context.Context, history []llmprovider.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: meal.SystemPrompt,
		Messages:          history,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// followUpQuestion makes the secondary model call seeded with the pending
// food names only. Any failure degrades to the canned question; the turn
// itself never fails here.
func (uc *implUseCase) followUpQuestion(ctx context.Context, pending []model.FoodItem) string {
	names := make([]string, len(pending))
	for i, item := range pending {
		names[i] = item.Food
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Content: meal.BuildFollowUpPrompt(strings.Join(names, ", "))},
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "meal.usecase.followUpQuestion: %v", err)
		return meal.FallbackFollowUp
	}
	if q := strings.TrimSpace(resp.Content); q != "" {
		return q
	}
	return meal.FallbackFollowUp
}
