package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxAutocompleteChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "plant":
		handleCropAutocomplete(s, i, client)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleCropAutocomplete provides autocomplete for plantable crop types
func handleCropAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()
	var focusedValue string
	for _, opt := range data.Options {
		if opt.Focused {
			focusedValue = strings.ToLower(opt.StringValue())
			break
		}
	}

	crops, err := client.GetCrops()
	if err != nil {
		slog.Error("Failed to get crops for autocomplete", "error", err)
		return
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, c := range crops {
		if focusedValue == "" ||
			strings.Contains(strings.ToLower(c.DisplayName), focusedValue) ||
			strings.Contains(c.InternalName, focusedValue) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  c.DisplayName,
				Value: c.InternalName,
			})
		}
		if len(choices) >= maxAutocompleteChoices {
			break
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to send autocomplete response", "error", err)
	}
}
