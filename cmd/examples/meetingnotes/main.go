package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/adenhq/meeting-notes-agent/pkg/agent"
)

const transcript = `Alice: Welcome everyone to the Q3 infrastructure sync.
Bob: Thanks. Quick update: the database migration runbook is done, waiting on review.
Alice: Great. Bob, please share it with the infra team by Friday.
Carol: Heads up, staging deploys are blocked until the TLS certificate is renewed.
Alice: Noted. Decision: we ship the beta on September 15th either way.
Bob: I'll also follow up with security about the cert renewal process.`

func main() {
	// Loads ANTHROPIC_API_KEY / GEMINI_API_KEY / SLACK_BOT_TOKEN if present.
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := agent.LoadConfig(os.Getenv("MEETING_AGENT_CONFIG"))
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	cfg.Logger = logger

	a, err := agent.NewFromConfig(context.Background(), cfg)
	if err != nil {
		logger.Fatal("creating agent", zap.Error(err))
	}

	out, err := a.Run(context.Background(), agent.Input{
		Transcript:      transcript,
		MeetingName:     "Q3 Infrastructure Sync",
		MeetingDate:     "2026-08-28",
		DeliveryChannel: cfg.SlackDefaultChannel,
	})
	if err != nil {
		logger.Fatal("running agent", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal("encoding output", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
