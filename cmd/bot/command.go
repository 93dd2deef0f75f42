package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CommandInput defines the Slack slash-command form fields the bot reads
type CommandInput struct {
	Command string `form:"command" binding:"required"` // Slash command name, e.g. /time
	Text    string `form:"text"`                       // Everything after the command name
}

// handleCommand godoc
// @Summary Handle a slash command
// @Description Answer time, "time in <place>" and "time for <user>" queries with plain text
// @Tags bot
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param command formData string true "Slash command name" example(/time)
// @Param text formData string false "Command arguments" example(in Berlin)
// @Success 200 {string} string "Reply text"
// @Failure 400 {string} string
// @Router /command [post]
func (app *App) handleCommand(c *gin.Context) {
	var input CommandInput

	// Bind and validate form fields
	if err := c.ShouldBind(&input); err != nil {
		c.String(http.StatusBadRequest, "bad request: %s", err.Error())
		return
	}

	// Slack sends "/time" + "in berlin"; the router matches on the joined text
	text := strings.TrimSpace(strings.TrimPrefix(input.Command, "/") + " " + input.Text)

	reply := app.bot.HandleText(text)

	app.logger.Info("command handled", "text", text)
	c.String(http.StatusOK, reply)
}
