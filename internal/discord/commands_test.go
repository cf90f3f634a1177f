package discord

import (
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCommandsEqual(t *testing.T) {
	plantCmd, _ := PlantCommand()
	harvestCmd, _ := HarvestCommand()

	tests := []struct {
		name     string
		existing []*discordgo.ApplicationCommand
		desired  []*discordgo.ApplicationCommand
		equal    bool
	}{
		{
			name:     "Identical Sets",
			existing: []*discordgo.ApplicationCommand{plantCmd, harvestCmd},
			desired:  []*discordgo.ApplicationCommand{harvestCmd, plantCmd},
			equal:    true,
		},
		{
			name:     "Different Lengths",
			existing: []*discordgo.ApplicationCommand{plantCmd},
			desired:  []*discordgo.ApplicationCommand{plantCmd, harvestCmd},
			equal:    false,
		},
		{
			name:     "Missing Command",
			existing: []*discordgo.ApplicationCommand{plantCmd, plantCmd},
			desired:  []*discordgo.ApplicationCommand{plantCmd, harvestCmd},
			equal:    false,
		},
		{
			name: "Changed Description",
			existing: []*discordgo.ApplicationCommand{
				{Name: "plant", Description: "old description"},
			},
			desired: []*discordgo.ApplicationCommand{
				{Name: "plant", Description: "new description"},
			},
			equal: false,
		},
		{
			name: "Changed Option",
			existing: []*discordgo.ApplicationCommand{
				{Name: "plant", Description: "d", Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "crop", Description: "d", Required: true},
				}},
			},
			desired: []*discordgo.ApplicationCommand{
				{Name: "plant", Description: "d", Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "crop", Description: "d", Required: false},
				}},
			},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, commandsEqual(tt.existing, tt.desired))
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewCommandRegistry()

	cmd, handler := PingCommand()
	registry.Register(cmd, handler)

	assert.Contains(t, registry.Commands, "ping")
	assert.Contains(t, registry.Handlers, "ping")
}

func TestRecordCommand(t *testing.T) {
	before := atomic.LoadInt64(&commandCounter)
	RecordCommand()
	after := atomic.LoadInt64(&commandCounter)

	assert.Equal(t, before+1, after)
	assert.False(t, lastCommandTime.IsZero())
}

func TestCropDisplayName(t *testing.T) {
	assert.Equal(t, "Radish", cropDisplayName("radish"))
	assert.Equal(t, "Golden Hops", cropDisplayName("golden_hops"))
}
