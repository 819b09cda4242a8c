// Package main rental housing API.
//
// @title           QLNhaTro API
// @version         1.0
// @description     rental housing service (hostels, rooms, posts, rental requests).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer"
	authctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/auth"
	hostelctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/hostel"
	postctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/post"
	infoctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/rentalinfo"
	requestctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/request"
	reviewctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/review"
	roomctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/room"
	userctrl "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/controller/user"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/app/echoServer/validation"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/config"
	authrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/auth"
	hostelrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/hostel"
	postrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/post"
	rentalinforepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/rentalinfo"
	requestrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/request"
	reviewrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/review"
	roomrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/room"
	userrepo "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/repository/user"
	authsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/auth"
	hostelsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/hostel"
	postsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/post"
	infosvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/rentalinfo"
	requestsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/request"
	reviewsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/review"
	roomsvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/room"
	usersvc "github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/service/user"
	"github.com/phamvantri2k4/DoAn-CNPM1-QLNhaTro/util/database"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ar := authrepo.New(db)
	ur := userrepo.New(db)
	hr := hostelrepo.New(db)
	rr := roomrepo.New(db)
	pr := postrepo.New(db)
	vr := reviewrepo.New(db)
	qr := requestrepo.New(db)
	ir := rentalinforepo.New(db)

	// services
	as := authsvc.New(db, ar, cfg.JWTSecret, cfg.JWTTTLHours)
	us := usersvc.New(ur)
	hs := hostelsvc.New(hr)
	rs := roomsvc.New(rr)
	ps := postsvc.New(pr, rr)
	vs := reviewsvc.New(vr)
	qs := requestsvc.New(db, qr, rr)
	is := infosvc.New(ir)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	hostelC := &hostelctrl.Controller{Svc: hs, V: v, Log: log}
	roomC := &roomctrl.Controller{Svc: rs, V: v, Log: log}
	postC := &postctrl.Controller{Svc: ps, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: vs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: qs, V: v, Log: log}
	infoC := &infoctrl.Controller{Svc: is, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:       authC,
		Request:    requestC,
		RentalInfo: infoC,
		Hostel:     hostelC,
		Room:       roomC,
		Post:       postC,
		Review:     reviewC,
		User:       userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
