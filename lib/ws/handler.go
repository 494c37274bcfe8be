package ws

import (
	wsclient "horeca-jobs-backend/lib/ws/client"
	connectionhub "horeca-jobs-backend/lib/ws/hub/connection-hub"
	"horeca-jobs-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", middleware.GetUserID(ctx))
		ctx.Locals("orgID", middleware.GetUserOrg(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(eventsHandler))
}

// @Summary События воронки найма
// @Tags Websocket
// @Description События воронки найма
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func eventsHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	orgID := c.Locals("orgID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, orgID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
