package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

const ledgerDisplayLimit = 10

// LedgerCommand returns the ledger history command definition and handler
func LedgerCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ledger",
		Description: "Show your recent resource transactions",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		entries, err := client.Ledger(domain.PlatformDiscord, user.ID, user.Username, ledgerDisplayLimit)
		if err != nil {
			slog.Error("Failed to get ledger", "error", err, "user", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if len(entries) == 0 {
			embed := createEmbed("📒 Ledger", "No transactions yet. Plant something!", 0x95a5a6, "")
			sendEmbed(s, i, embed)
			return
		}

		var lines []string
		for _, entry := range entries {
			sign := "+"
			if entry.Delta < 0 {
				sign = ""
			}
			line := fmt.Sprintf("<t:%d:d> %s%d %s (%s)",
				entry.RecordedAt.Unix(),
				sign,
				entry.Delta,
				resourceDisplayName(entry.ResourceType),
				strings.ReplaceAll(entry.Cause, "_", " "))
			lines = append(lines, line)
		}

		embed := createEmbed("📒 Ledger", strings.Join(lines, "\n"), 0x95a5a6, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
