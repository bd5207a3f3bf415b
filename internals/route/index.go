package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authmw "kampusku_backend/internals/middlewares/auth"
	"kampusku_backend/internals/route/details"
)

// SetupRoutes memasang tiga group utama:
//
//	/api/public → tanpa auth (katalog publik)
//	/api/u      → mahasiswa ber-JWT
//	/api/a      → admin akademik (JWT + role admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := configs.GetEnv("JWT_SECRET")

	public := app.Group("/api/public")
	details.PublicRoutes(public, db)

	user := app.Group("/api/u", authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              secret,
		AllowCookieFallback: true,
	}))
	details.UserRoutes(user, db)

	admin := app.Group("/api/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: secret}),
		authmw.IsAdmin(),
	)
	details.AdminRoutes(admin, db)
}
