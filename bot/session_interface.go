/* session_interface.go
 * Contains the subset of the Discord session the handlers use
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is satisfied by *discordgo.Session and by MockDiscordSession
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Ensure *discordgo.Session implements DiscordSession
var _ DiscordSession = (*discordgo.Session)(nil)
