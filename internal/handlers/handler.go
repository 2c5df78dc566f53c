package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/command"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

// Request carries where a command came from and how the platform prefixes
// commands, so replies can quote the right syntax.
type Request struct {
	Scope  entity.Scope
	Prefix string
}

// CommandHandler turns parsed commands into reply text. It is shared by
// the Discord and Slack transports.
type CommandHandler struct {
	evaluationService   contract.EvaluationService
	subscriptionService contract.SubscriptionService
}

func NewCommandHandler(evaluationService contract.EvaluationService, subscriptionService contract.SubscriptionService) *CommandHandler {
	return &CommandHandler{
		evaluationService:   evaluationService,
		subscriptionService: subscriptionService,
	}
}

func (h *CommandHandler) Handle(ctx context.Context, cmd *command.Command, req Request) string {
	switch cmd.Type {
	case command.CmdHelp:
		return h.handleHelp(req)
	case command.CmdUpcoming:
		return h.handleUpcoming(ctx, cmd, req)
	case command.CmdUnit:
		return h.handleUnit(ctx, cmd, req)
	case command.CmdSubscribe:
		return h.handleSubscribe(ctx, cmd, req)
	case command.CmdUnsubscribe:
		return h.handleUnsubscribe(ctx, cmd, req)
	case command.CmdList:
		return h.handleList(ctx, req)
	default:
		return h.createErrorResponse("Comando não reconhecido.")
	}
}

func (h *CommandHandler) handleHelp(req Request) string {
	return command.GetHelpText(req.Prefix)
}

func (h *CommandHandler) handleUpcoming(ctx context.Context, cmd *command.Command, req Request) string {
	days, err := cmd.IntArg(0, domain.DefaultDaysBefore)
	if err != nil || days < 0 {
		return command.GetUsageText(cmd.Type, req.Prefix)
	}

	upcoming := h.evaluationService.Upcoming(ctx, days)
	if len(upcoming) == 0 {
		return "🎉 Nenhuma avaliação nos próximos dias."
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		lines = append(lines, fmt.Sprintf("**%s** — %s (%s)", u.Sigla, u.Description, u.Date))
	}
	return strings.Join(lines, "\n")
}

func (h *CommandHandler) handleUnit(ctx context.Context, cmd *command.Command, req Request) string {
	key := cmd.Rest()
	if key == "" {
		return command.GetUsageText(cmd.Type, req.Prefix)
	}

	unit, ok := h.evaluationService.FindUnit(ctx, key)
	if !ok {
		return h.createErrorResponse(fmt.Sprintf(
			"UC não encontrada. Verifica o slug ou sigla com `%[1]sproximas` ou `%[1]sajuda`.", req.Prefix,
		))
	}

	parts := []string{
		fmt.Sprintf("**%s** (%s)", orUnknown(unit.Name), orUnknown(unit.Sigla)),
		fmt.Sprintf("Perfil: %s", optionalOrUnknown(unit.Profile)),
		fmt.Sprintf("Criterios: %s", optionalOrUnknown(unit.Criteria)),
		fmt.Sprintf("Docentes: %s", strings.Join(unit.Teachers, "; ")),
		"📅 Próximas avaliações:",
	}

	evaluations := h.evaluationService.UnitEvaluations(unit, domain.UnitInfoLookaheadDays)
	if len(evaluations) == 0 {
		parts = append(parts, "Nenhuma avaliação encontrada.")
	}
	for _, e := range evaluations {
		parts = append(parts, fmt.Sprintf("- %s (%s)", e.Description, e.Date))
	}

	return strings.Join(parts, "\n")
}

func (h *CommandHandler) handleSubscribe(ctx context.Context, cmd *command.Command, req Request) string {
	slug, ok := cmd.Arg(0)
	if !ok {
		return command.GetUsageText(cmd.Type, req.Prefix)
	}

	daysBefore, err := cmd.IntArg(1, domain.DefaultDaysBefore)
	if err != nil || daysBefore < 0 {
		return command.GetUsageText(cmd.Type, req.Prefix)
	}

	if _, found := h.evaluationService.FindUnit(ctx, slug); !found {
		return h.createErrorResponse(fmt.Sprintf(
			"UC não encontrada. Verifica o nome com `%[1]sproximas` ou `%[1]suc`.", req.Prefix,
		))
	}

	created, err := h.subscriptionService.Subscribe(ctx, req.Scope, slug, daysBefore)
	if err != nil {
		log.Printf("Failed to subscribe channel %s to %s: %v", req.Scope.ChannelID, slug, err)
		return h.createErrorResponse("Não foi possível guardar a subscrição. Tenta novamente mais tarde.")
	}

	if !created {
		return fmt.Sprintf("🔔 Subscrição `%s` atualizada: aviso `%d` dias antes.", slug, daysBefore)
	}
	return fmt.Sprintf("🔔 Canal subscrito para `%s` com aviso `%d` dias antes.", slug, daysBefore)
}

func (h *CommandHandler) handleUnsubscribe(ctx context.Context, cmd *command.Command, req Request) string {
	slug, ok := cmd.Arg(0)
	if !ok {
		return command.GetUsageText(cmd.Type, req.Prefix)
	}

	if err := h.subscriptionService.Unsubscribe(ctx, req.Scope, slug); err != nil {
		log.Printf("Failed to unsubscribe channel %s from %s: %v", req.Scope.ChannelID, slug, err)
		return h.createErrorResponse("Não foi possível remover a subscrição. Tenta novamente mais tarde.")
	}

	return fmt.Sprintf("🚫 Subscrição `%s` removida deste canal.", slug)
}

func (h *CommandHandler) handleList(ctx context.Context, req Request) string {
	subscriptions, err := h.subscriptionService.List(ctx, req.Scope)
	if err != nil {
		log.Printf("Failed to list subscriptions of channel %s: %v", req.Scope.ChannelID, err)
		return h.createErrorResponse("Não foi possível obter as subscrições. Tenta novamente mais tarde.")
	}

	if len(subscriptions) == 0 {
		return "Nenhuma subscrição neste canal."
	}

	var list strings.Builder
	list.WriteString("📋 Subscrições deste canal:")
	for _, s := range subscriptions {
		list.WriteString(fmt.Sprintf("\n- %s (aviso %d dias antes)", s.Slug, s.DaysBefore))
	}
	return list.String()
}

func (h *CommandHandler) createErrorResponse(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

func orUnknown(value string) string {
	if value == "" {
		return domain.UnknownField
	}
	return value
}

func optionalOrUnknown(value *string) string {
	if value == nil {
		return domain.UnknownField
	}
	return *value
}
