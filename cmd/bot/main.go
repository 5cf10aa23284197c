package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/arena-bot-discord/internal/config"
	"github.com/KirkDiggler/arena-bot-discord/internal/handlers/discord"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/battlehistory"
	"github.com/KirkDiggler/arena-bot-discord/internal/repositories/skillstates"
	"github.com/KirkDiggler/arena-bot-discord/internal/services"
	"github.com/KirkDiggler/arena-bot-discord/internal/services/skill"
)

const sweepInterval = time.Minute

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent

	settings, userSkills, err := skill.LoadSettings(cfg.Skills.ConfigDir)
	if err != nil {
		log.Fatalf("Failed to load skill settings: %v", err)
	}

	if err := os.MkdirAll(cfg.Skills.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create skill data dir: %v", err)
	}
	backup, err := skillstates.OpenSQLite(filepath.Join(cfg.Skills.DataDir, skillstates.BackupFileName))
	if err != nil {
		log.Fatalf("Failed to open skill backup database: %v", err)
	}
	defer func() {
		if err := backup.Close(); err != nil {
			log.Printf("Failed to close skill backup database: %v", err)
		}
	}()

	notifier := discord.NewNotifier(dg)
	providerConfig := &services.ProviderConfig{
		ConfigBackup:     backup,
		Settings:         settings,
		UserSkills:       userSkills,
		Notifier:         notifier,
		Nicknames:        notifier,
		AutoSaveInterval: cfg.Skills.AutoSaveInterval,
		HistorySize:      cfg.Battle.HistorySize,
		TargetTimeout:    cfg.Battle.TargetTimeout,
		Pace:             cfg.Battle.Pace,
		IdleTimeout:      cfg.Battle.IdleTimeout,
	}
	stores := []skillstates.Store{backup}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis")

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory history")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory history")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")

				providerConfig.HistoryRepository = battlehistory.NewRedis(&battlehistory.RedisRepoConfig{
					Client:   redisClient,
					Capacity: cfg.Battle.HistorySize,
				})
				stores = append(stores, skillstates.NewRedis(&skillstates.RedisRepoConfig{Client: redisClient}))

				log.Println("Using Redis for battle history and the skill state mirror")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory history")
	}

	// The JSON file is authoritative, SQLite and Redis are backups
	providerConfig.SkillStore = skillstates.NewChain(skillstates.NewFileStore(cfg.Skills.DataDir), stores...)

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	restored := serviceProvider.SkillManager.Load(ctx)
	log.Printf("Restored skill state of %d channels", restored)

	go serviceProvider.SkillManager.Run(ctx)
	go serviceProvider.BattleService.RunSweeper(ctx, sweepInterval)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		BattleService: serviceProvider.BattleService,
		SkillService:  serviceProvider.SkillService,
	})

	dg.AddHandler(discord.RecoverMessages("message", handler.HandleMessage))
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))
	dg.AddHandler(handler.HandleMemberUpdate)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
	stop()

	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := serviceProvider.SkillManager.ForceSave(saveCtx); err != nil {
		log.Printf("Failed to save skill states: %v", err)
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
