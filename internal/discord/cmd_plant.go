package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// PlantCommand returns the plant command definition and handler
func PlantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minPlot := float64(0)
	cmd := &discordgo.ApplicationCommand{
		Name:        "plant",
		Description: "Plant a crop on one of your plots",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "crop",
				Description:  "The crop to plant",
				Required:     true,
				Autocomplete: true,
			},
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
		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgGenericError)
			return
		}

		cropType := options[0].StringValue()
		plotIndex := 0
		if len(options) > 1 {
			plotIndex = int(options[1].IntValue())
		}

		resp, err := client.Plant(domain.PlatformDiscord, user.ID, user.Username, cropType, plotIndex)
		if err != nil {
			slog.Error("Failed to plant", "error", err, "user", user.Username, "crop", cropType)
			respondFriendlyError(s, i, err.Error())
			return
		}

		description := fmt.Sprintf("**%s** planted on plot %d.\n\n**Ready:** <t:%d:R>\n**Money left:** %d",
			cropDisplayName(resp.CropType),
			resp.PlotIndex,
			resp.ReadyAt.Unix(),
			resp.Balance)

		embed := createEmbed("🌱 Crop Planted", description, 0x2ecc71, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// formatRemaining renders a remaining-seconds hint as a compact duration
func formatRemaining(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
}
