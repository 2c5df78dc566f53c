package handlers_test

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/command"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/handlers/test"
	"go.uber.org/mock/gomock"
)

func newMessage(guildID, channelID, content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			GuildID:   guildID,
			ChannelID: channelID,
			Content:   content,
			Author:    &discordgo.User{ID: "U1", Username: "aluno", Bot: bot},
		},
	}
}

func TestDiscordHandler_HandleMessageCreate(t *testing.T) {
	tests := []struct {
		name       string
		message    *discordgo.MessageCreate
		buildMocks func(m test.ServiceMocks)
	}{
		{
			name:    "Should reply with help in the same channel",
			message: newMessage("G1", "C1", "+ajuda", false),
			buildMocks: func(m test.ServiceMocks) {
				m.MessengerMock.EXPECT().SendMessage("C1", command.GetHelpText("+")).Return(nil).Times(1)
			},
		},
		{
			name:    "Should ignore bot authors",
			message: newMessage("G1", "C1", "+ajuda", true),
		},
		{
			name:    "Should ignore messages without prefix",
			message: newMessage("G1", "C1", "ajuda", false),
		},
		{
			name:    "Should ignore unknown commands",
			message: newMessage("G1", "C1", "+dança", false),
		},
		{
			name:    "Should scope direct messages to the dm guild",
			message: newMessage("", "D1", "+listar", false),
			buildMocks: func(m test.ServiceMocks) {
				m.SubscriptionServiceMock.EXPECT().
					List(gomock.Any(), entity.Scope{GuildID: "dm", ChannelID: "D1"}).
					Return(nil, nil).Times(1)
				m.MessengerMock.EXPECT().SendMessage("D1", "Nenhuma subscrição neste canal.").Return(nil).Times(1)
			},
		},
		{
			name:    "Should survive send failures",
			message: newMessage("G1", "C1", "+cancelar", false),
			buildMocks: func(m test.ServiceMocks) {
				m.MessengerMock.EXPECT().
					SendMessage("C1", command.GetUsageText(command.CmdUnsubscribe, "+")).
					Return(errors.New("missing permissions")).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetDiscordHandlerTest(t, "+")
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			handler.HandleMessageCreate(nil, tt.message)
		})
	}
}
