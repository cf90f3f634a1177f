package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// FarmCommand returns the farm status command definition and handler
func FarmCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "farm",
		Description: "Show your plots and balances",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)

		resp, err := client.Status(domain.PlatformDiscord, user.ID, user.Username)
		if err != nil {
			slog.Error("Failed to get farm status", "error", err, "user", user.Username)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var lines []string
		for _, plot := range resp.Plots {
			lines = append(lines, formatPlotLine(plot))
		}
		lines = append(lines, "", fmt.Sprintf("**Money:** %d", resp.Balances.Amount(domain.ResourceMoney)))

		embed := createEmbed(
			fmt.Sprintf("🚜 %s's Farm", resp.Username),
			strings.Join(lines, "\n"),
			0x3498db,
			"")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// formatPlotLine renders a single plot status row
func formatPlotLine(plot domain.PlotStatus) string {
	switch plot.State {
	case domain.PlotStateEmpty:
		return fmt.Sprintf("`%d` 🟫 Empty", plot.Index)
	case domain.PlotStatePlanted:
		return fmt.Sprintf("`%d` 🌱 %s - ready in %s",
			plot.Index, cropDisplayName(plot.CropType), formatRemaining(plot.RemainingSeconds))
	case domain.PlotStateReady:
		return fmt.Sprintf("`%d` 🌾 %s - **ready to harvest!**",
			plot.Index, cropDisplayName(plot.CropType))
	default:
		return fmt.Sprintf("`%d` %s", plot.Index, plot.State)
	}
}
