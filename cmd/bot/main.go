package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/chat"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/config"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/database"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/service"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/handlers"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/scheduler"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/ucs"
	"github.com/pedrofp4444/infoloom-discord-bot/migrator/sqlite"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	ucClient := ucs.New(cfg.UCsAPIURL, nil)
	mux := http.NewServeMux()

	var messenger contract.Messenger
	var services *service.Instance

	switch cfg.ChatPlatform {
	case config.PlatformDiscord:
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		session.Identify.Intents = discordgo.IntentsGuilds |
			discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentsMessageContent

		messenger = chat.NewDiscord(session)
		services = service.NewInstance(database.NewInstance(db), ucClient, messenger)

		commandHandler := handlers.NewCommandHandler(services.Evaluation, services.Subscription)
		discordHandler := handlers.NewDiscord(commandHandler, messenger, cfg.CommandPrefix)
		session.AddHandler(discordHandler.HandleMessageCreate)
		session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
			log.Printf("Logged in as %s", r.User.String())
		})

		if err := session.Open(); err != nil {
			log.Fatalf("Failed to open Discord session: %v", err)
		}
		defer session.Close()

	case config.PlatformSlack:
		slackClient := slack.New(cfg.SlackBotToken)

		messenger = chat.NewSlack(slackClient)
		services = service.NewInstance(database.NewInstance(db), ucClient, messenger)

		commandHandler := handlers.NewCommandHandler(services.Evaluation, services.Subscription)
		slackHandler := handlers.NewSlack(commandHandler, cfg.SlackSigningSecret)
		mux.HandleFunc("/slack/commands", slackHandler.HandleSlashCommand)

	default:
		log.Fatalf("Unknown CHAT_PLATFORM %q (expected %q or %q)", cfg.ChatPlatform, config.PlatformDiscord, config.PlatformSlack)
	}

	sched := scheduler.New(services.Notifier, cfg.CheckInterval)
	sched.Start()
	defer sched.Stop()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}
}
