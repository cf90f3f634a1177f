package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// HarvestCommand returns the harvest command definition and handler
func HarvestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minPlot := float64(0)
	cmd := &discordgo.ApplicationCommand{
		Name:        "harvest",
		Description: "Harvest a ready crop",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "plot",
				Description: "Plot number (default: 0)",
				Required:    false,
				MinValue:    &minPlot,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		plotIndex := 0
		if options := getOptions(i); len(options) > 0 {
			plotIndex = int(options[0].IntValue())
		}

		resp, err := client.Harvest(domain.PlatformDiscord, user.ID, user.Username, plotIndex)
		if err != nil {
			slog.Error("Failed to harvest", "error", err, "user", user.Username, "plot", plotIndex)
			respondFriendlyError(s, i, err.Error())
			return
		}

		var gains []string
		for resource, amount := range resp.ResourcesGained {
			gains = append(gains, fmt.Sprintf("%s +%d", resourceDisplayName(resource), amount))
		}

		description := fmt.Sprintf("**%s** harvested from plot %d.\n\n**Gained:** %s\n**Money:** %d",
			cropDisplayName(resp.CropType),
			resp.PlotIndex,
			strings.Join(gains, ", "),
			resp.Balances.Amount(domain.ResourceMoney))

		embed := createEmbed("🌾 Harvest Complete!", description, 0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
