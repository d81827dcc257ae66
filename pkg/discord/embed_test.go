package discord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"participantbot/internal/domain/entities"
)

func TestBuildParticipantEmbed_SkipsEmptyFields(t *testing.T) {
	req := require.New(t)
	tr := newTranslator(t)
	p := &entities.Participant{ID: 3, Name: "Ada", Email: "ada@x.com", Role: "  "}

	embed := BuildParticipantEmbed(tr, "en", p)

	req.Equal("Participant #3", embed.Title)
	req.Len(embed.Fields, 2)
	req.Equal("Name", embed.Fields[0].Name)
	req.Equal("Ada", embed.Fields[0].Value)
	req.Equal("Email", embed.Fields[1].Name)
	req.Equal("ada@x.com", embed.Fields[1].Value)
}

func TestBuildParticipantListEmbed(t *testing.T) {
	tr := newTranslator(t)

	t.Run("empty", func(t *testing.T) {
		embed := BuildParticipantListEmbed(tr, "en", nil)
		assert.Equal(t, "Participants (0)", embed.Title)
		assert.Equal(t, "No participants found.", embed.Description)
		assert.Nil(t, embed.Footer)
	})

	t.Run("few", func(t *testing.T) {
		embed := BuildParticipantListEmbed(tr, "en", []entities.Participant{
			{ID: 1, Name: "Ada", Email: "ada@x.com", Contact: "555-0100"},
			{ID: 2, Email: "bob@x.com"},
		})
		assert.Equal(t, "Participants (2)", embed.Title)
		assert.Equal(t, "`#1` Ada • ada@x.com • 555-0100\n`#2` bob@x.com", embed.Description)
		assert.Nil(t, embed.Footer)
	})

	t.Run("truncated", func(t *testing.T) {
		participants := make([]entities.Participant, maxListLines+5)
		for i := range participants {
			participants[i] = entities.Participant{ID: i + 1, Email: fmt.Sprintf("p%d@x.com", i+1)}
		}
		embed := BuildParticipantListEmbed(tr, "fr", participants)
		assert.Equal(t, "Participants (30)", embed.Title)
		require.NotNil(t, embed.Footer)
		assert.Equal(t, "…et 5 de plus.", embed.Footer.Text)
	})
}

func TestFormatParticipantLine_OnlyID(t *testing.T) {
	assert.Equal(t, "`#9`", FormatParticipantLine(&entities.Participant{ID: 9}))
}
