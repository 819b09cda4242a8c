package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/auth"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/hostel"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/post"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/rentalinfo"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/request"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/review"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/room"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/user"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/jwtx"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/model"
)

type C struct {
	Auth       *auth.Controller
	Request    *request.Controller
	RentalInfo *rentalinfo.Controller
	Hostel     *hostel.Controller
	Room       *room.Controller
	Post       *post.Controller
	Review     *review.Controller
	User       *user.Controller
	JWTSecret  string
}

// requireRoles gates a route to the given roles. The claims middleware runs
// first, so the role is already on the context.
func requireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := jwtx.Role(c)
			for _, r := range roles {
				if got == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
	}
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/posts", c.Post.List)
	pub.GET("/posts/:id", c.Post.Get)
	pub.GET("/rooms/:id", c.Room.Get)
	pub.GET("/reviews", c.Review.List)

	// Authenticated
	sec := e.Group("/v1")
	sec.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	sec.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, role, err := jwtx.FromToken(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", uid)
			ctx.Set("role", role)
			return next(ctx)
		}
	})

	renter := requireRoles(model.RoleRenter)
	owner := requireRoles(model.RoleOwner, model.RoleAdmin)
	admin := requireRoles(model.RoleAdmin)

	sec.PATCH("/auth/password", c.Auth.ChangePassword)
	sec.GET("/profile", c.User.Profile)
	sec.PUT("/profile", c.User.UpdateProfile)

	// Rental requests
	sec.POST("/rental-requests", c.Request.Create, renter)
	sec.GET("/rental-requests", c.Request.List, owner)
	sec.GET("/rental-requests/my", c.Request.ListMine, renter)
	sec.GET("/rental-requests/pending-count", c.Request.PendingCount, owner)
	sec.GET("/rental-requests/:id", c.Request.Get)
	sec.PATCH("/rental-requests/:id/status", c.Request.UpdateStatus, owner)

	// Rental infos
	sec.GET("/rental-infos", c.RentalInfo.List, owner)
	sec.GET("/rental-infos/current", c.RentalInfo.Current, owner)
	sec.GET("/rental-infos/my", c.RentalInfo.MyHistory, renter)

	// Hostels
	sec.POST("/hostels", c.Hostel.Create, owner)
	sec.GET("/hostels", c.Hostel.List, owner)
	sec.GET("/hostels/:id", c.Hostel.Get, owner)
	sec.PUT("/hostels/:id", c.Hostel.Update, owner)
	sec.DELETE("/hostels/:id", c.Hostel.Delete, owner)

	// Rooms
	sec.POST("/rooms", c.Room.Create, owner)
	sec.GET("/rooms", c.Room.List)
	sec.PUT("/rooms/:id", c.Room.Update, owner)
	sec.DELETE("/rooms/:id", c.Room.Delete, owner)
	sec.PATCH("/rooms/:id/status", c.Room.SetStatus, owner)

	// Posts
	sec.POST("/posts", c.Post.Create, owner)
	sec.GET("/posts/mine", c.Post.ListMine, owner)
	sec.PUT("/posts/:id", c.Post.Update, owner)
	sec.DELETE("/posts/:id", c.Post.Delete, owner)
	sec.PATCH("/posts/:id/status", c.Post.SetStatus, owner)

	// Reviews
	sec.POST("/reviews", c.Review.Create, renter)
	sec.PUT("/reviews/:id", c.Review.Update, renter)
	sec.DELETE("/reviews/:id", c.Review.Delete, renter)

	// Users (moderation)
	sec.GET("/users", c.User.List, admin)
	sec.GET("/users/:id", c.User.Get, admin)
	sec.PATCH("/users/:id/status", c.User.ToggleStatus, admin)
}
