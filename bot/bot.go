/* bot.go
 * Contains the Bot struct and the helpers shared by the command handlers. Requires a discord bot token and ApiPtr,
 * both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"playoff-bracket/api/api"
	"playoff-bracket/api/config"

	"github.com/go-andiamo/splitter"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Each user may run a burst of commandBurst commands, then one every commandInterval
const (
	commandInterval = 3 * time.Second
	commandBurst    = 3
	commandTimeout  = 30 * time.Second
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Config   *config.Config
	Log      zerolog.Logger

	limiters *userLimiters
}

func NewBot(botToken string, apiPtr *api.API, cfg *config.Config, log zerolog.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Config:   cfg,
		Log:      log,
		limiters: newUserLimiters(rate.Every(commandInterval), commandBurst),
	}, nil
}

// allow reports whether the user is within their command rate
func (b *Bot) allow(userID string) bool {
	if b.limiters == nil {
		return true
	}
	return b.limiters.allow(userID)
}

// userLimiters holds one token bucket per Discord user
type userLimiters struct {
	mu     sync.Mutex
	every  rate.Limit
	burst  int
	byUser map[string]*rate.Limiter
}

func newUserLimiters(every rate.Limit, burst int) *userLimiters {
	return &userLimiters{
		every:  every,
		burst:  burst,
		byUser: make(map[string]*rate.Limiter),
	}
}

func (u *userLimiters) allow(userID string) bool {
	u.mu.Lock()
	limiter, ok := u.byUser[userID]
	if !ok {
		limiter = rate.NewLimiter(u.every, u.burst)
		u.byUser[userID] = limiter
	}
	u.mu.Unlock()
	return limiter.Allow()
}

// splitArgs splits a command into its arguments, keeping double quoted values such as "Super Bowl" together
// Preconditions: Receives the message content
// Postconditions: Returns the arguments after the command with surrounding quotes removed, or an error if a quote is
// not closed
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	var args []string
	for _, part := range parts[1:] {
		part = strings.Trim(part, "\"“”")
		if part = strings.TrimSpace(part); part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
