/* handlers.go
 * Contains the command handlers. Each accepts a DiscordSession so it can be driven by a mock in tests
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/shared"

	"github.com/bwmarrin/discordgo"
	"go.mongodb.org/mongo-driver/mongo"
)

// Discord rejects messages longer than this
const maxMessageLength = 2000

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Playoff Bracket Bot\n")
	res.WriteString("`$leaderboard`: shows the brackets with the most points. Ties are broken by the distance of the tiebreaker guess from the Super Bowl total\n")
	res.WriteString("`$check [name]`: shows every pick of a bracket and whether it has succeeded, failed or is still pending. Defaults to your own bracket\n")
	res.WriteString("`$picks [slot]`: shows which winners the brackets picked for a slot, e.g. `$picks \"Conference 1\"`. Defaults to the Super Bowl\n")
	res.WriteString("`$teams [name ...]`: lists the playoff field, or shows how the given names match it\n")
	res.WriteString("`$score`: scores every bracket against the current results and shows the leaderboard\n")
	res.WriteString("`$result \"slot\" teamA teamB [winner]`: records the result of a game (admins only)\n")
	res.WriteString("`$total points`: records the total points scored in the Super Bowl (admins only)\n")
	res.WriteString("Slot names that contain a space need to be encased in \" (e.g. \"WildCard 1\")\n")
	sendChunked(session, message.ChannelID, res.String())
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.GetLeaderboard(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = "No leaderboard has been generated yet. Use $score to score the brackets"
		} else {
			b.Log.Error().Err(err).Msg("leaderboard fetch failed")
			res = "An error occurred getting the leaderboard"
		}
	}
	sendChunked(session, message.ChannelID, res)
}

// checkEntryHandler handles the $check command with a DiscordSession interface
func (b *Bot) checkEntryHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the command: %s", err))
		return
	}

	owner := message.Author.ID
	label := message.Author.Username
	if len(args) > 0 {
		owner = strings.Join(args, " ")
		label = owner
	}

	res, err := b.APIPtr.CheckEntry(ctx, owner)
	if err != nil && len(args) == 0 && errors.Is(err, mongo.ErrNoDocuments) {
		// Entries loaded from a spreadsheet have no user id, so fall back to the username
		res, err = b.APIPtr.CheckEntry(ctx, message.Author.Username)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			res = fmt.Sprintf("%s does not have a bracket stored\n", label)
		} else {
			b.Log.Error().Err(err).Str("owner", owner).Msg("entry check failed")
			res = fmt.Sprintf("An error occured checking %s's bracket", label)
		}
	}
	sendChunked(session, message.ChannelID, res)
}

// picksHandler handles the $picks command with a DiscordSession interface
func (b *Bot) picksHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the command: %s", err))
		return
	}
	slot := strings.Join(args, " ")
	if slot == "" {
		slot = bracket.SuperBowl
	}

	shares, err := b.APIPtr.GetPickDistribution(ctx, slot)
	if err != nil {
		if errors.Is(err, bracket.ErrUnknownSlot) {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s is not a slot in this bracket", slot))
			return
		}
		b.Log.Error().Err(err).Str("slot", slot).Msg("pick distribution failed")
		session.ChannelMessageSend(message.ChannelID, "An error occured counting the picks")
		return
	}

	var res strings.Builder
	if len(shares) == 0 {
		res.WriteString(fmt.Sprintf("No picks have been made for %s\n", slot))
	} else {
		res.WriteString(fmt.Sprintf("Picks for %s:\n", slot))
		for _, share := range shares {
			res.WriteString(fmt.Sprintf("- %s: %d (%.2f%%)\n", share.Team, share.Count, share.Percent))
		}
	}
	sendChunked(session, message.ChannelID, res.String())
}

// teamsHandler handles the $teams command with a DiscordSession interface
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the command: %s", err))
		return
	}

	var res strings.Builder
	if len(args) == 0 {
		if len(b.APIPtr.Field) == 0 {
			session.ChannelMessageSend(message.ChannelID, "No playoff field has been configured, any team name is accepted")
			return
		}
		res.WriteString("Teams in the playoff field are:\n")
		for _, team := range b.APIPtr.Field {
			res.WriteString(fmt.Sprintf("- %s\n", team))
		}
		sendChunked(session, message.ChannelID, res.String())
		return
	}

	valid, invalid := b.APIPtr.CheckTeams(args)
	for _, team := range valid {
		res.WriteString(fmt.Sprintf("- %s\n", team))
	}
	if len(invalid) > 0 {
		res.WriteString(fmt.Sprintf("Not in the playoff field: %s\n", strings.Join(invalid, ", ")))
	}
	sendChunked(session, message.ChannelID, res.String())
}

// scoreHandler handles the $score command with a DiscordSession interface
func (b *Bot) scoreHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	contest, err := b.APIPtr.ScoreContest(ctx)
	if err != nil {
		b.Log.Error().Err(err).Msg("scoring pass failed")
		session.ChannelMessageSend(message.ChannelID, "An error occured scoring the brackets")
		return
	}
	if len(contest.Standings) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No brackets have been submitted yet")
		return
	}
	b.leaderboardHandler(ctx, session, message)
}

// resultHandler handles the $result command with a DiscordSession interface
func (b *Bot) resultHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	if !b.Config.IsAdmin(message.Author.ID) {
		session.ChannelMessageSend(message.ChannelID, "Only admins can record results")
		return
	}
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read the command: %s", err))
		return
	}
	if len(args) < 3 || len(args) > 4 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$result \"slot\" teamA teamB [winner]`")
		return
	}

	result := shared.RawMatchup{Slot: args[0], TeamA: args[1], TeamB: args[2]}
	if len(args) == 4 {
		result.Winner = args[3]
	}
	if err := b.APIPtr.SetActualResult(ctx, result); err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occured recording the result: %s", err))
		return
	}

	b.APIPtr.RescoreInBackground()

	res := fmt.Sprintf("Result for %s has been recorded", result.Slot)
	if result.Winner == "" {
		res = fmt.Sprintf("Matchup for %s has been recorded", result.Slot)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// finalTotalHandler handles the $total command with a DiscordSession interface
func (b *Bot) finalTotalHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	if !b.Config.IsAdmin(message.Author.ID) {
		session.ChannelMessageSend(message.ChannelID, "Only admins can record results")
		return
	}
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 1 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$total points`")
		return
	}
	total, err := strconv.Atoi(args[0])
	if err != nil || total < 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s is not a valid points total", args[0]))
		return
	}
	if err := b.APIPtr.SetFinalTotal(ctx, total); err != nil {
		b.Log.Error().Err(err).Int("total", total).Msg("final total update failed")
		session.ChannelMessageSend(message.ChannelID, "An error occured recording the final total")
		return
	}
	b.APIPtr.RescoreInBackground()
	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Super Bowl total of %d points has been recorded", total))
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID {
		return
	}
	if !startsWith(message.Content, "$") {
		return
	}
	if !b.allow(message.Author.ID) {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s, slow down a little", message.Author.Username))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$leaderboard"):
		b.leaderboardHandler(ctx, session, message)

	case startsWith(message.Content, "$check"):
		b.checkEntryHandler(ctx, session, message)

	case startsWith(message.Content, "$picks"):
		b.picksHandler(ctx, session, message)

	case startsWith(message.Content, "$teams"):
		b.teamsHandler(session, message)

	case startsWith(message.Content, "$score"):
		b.scoreHandler(ctx, session, message)

	case startsWith(message.Content, "$result"):
		b.resultHandler(ctx, session, message)

	case startsWith(message.Content, "$total"):
		b.finalTotalHandler(ctx, session, message)
	}
}

// sendChunked sends content in as many messages as needed, splitting on line breaks. A line that is too long on its
// own is cut into pieces of at most maxMessageLength bytes without splitting a character
func sendChunked(session DiscordSession, channelID string, content string) {
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			session.ChannelMessageSend(channelID, chunk.String())
			chunk.Reset()
		}
	}

	for _, line := range strings.SplitAfter(content, "\n") {
		for _, piece := range splitLongLine(line, maxMessageLength) {
			if chunk.Len()+len(piece) > maxMessageLength {
				flush()
			}
			chunk.WriteString(piece)
		}
	}
	flush()
}

// splitLongLine cuts line into pieces of at most limit bytes, breaking only between runes
func splitLongLine(line string, limit int) []string {
	var pieces []string
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		if cut == 0 {
			_, size := utf8.DecodeRuneInString(line)
			cut = size
		}
		pieces = append(pieces, line[:cut])
		line = line[cut:]
	}
	if line != "" {
		pieces = append(pieces, line)
	}
	return pieces
}
