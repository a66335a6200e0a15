package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/roommate-service/docs"
	"github.com/sbilibin2017/roommate-service/internal/config"
	"github.com/sbilibin2017/roommate-service/internal/handlers"
	"github.com/sbilibin2017/roommate-service/internal/jwt"
	"github.com/sbilibin2017/roommate-service/internal/middlewares"
	"github.com/sbilibin2017/roommate-service/internal/repositories"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

// newRouter wires repositories, services and handlers into the HTTP router.
// kafkaWriter may be nil.
func newRouter(cfg *config.Config, db *sqlx.DB, rdb redis.UniversalClient, kafkaWriter services.KafkaWriter) http.Handler {
	docs.SwaggerInfo.Title = cfg.ProjectName + " API"
	docs.SwaggerInfo.Description = cfg.Description
	docs.SwaggerInfo.Version = cfg.Version
	docs.SwaggerInfo.BasePath = cfg.APIV1Str

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithExpiration(cfg.AccessTokenTTL()),
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetSessionFromContext)
	profileRepo := repositories.NewProfileRepository(db, middlewares.GetSessionFromContext)
	imageRepo := repositories.NewImageRepository(db, middlewares.GetSessionFromContext)
	adRepo := repositories.NewAdRepository(db, middlewares.GetSessionFromContext)
	authTokenRepo := repositories.NewAuthTokenRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userRepo, authTokenRepo, tokens, kafkaWriter, services.AuthOptions{
		ResetPasswordTokenTTL: cfg.ResetPasswordTokenTTL,
		VerificationTokenTTL:  cfg.VerificationTokenTTL,
		FromEmail:             cfg.EmailsFromEmail,
		FromName:              cfg.EmailsFromName,
	})
	userService := services.NewUserService(userRepo)
	imageService := services.NewImageService(imageRepo)

	authMiddleware := middlewares.AuthMiddleware(tokens, authService)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	if len(cfg.BackendCORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.BackendCORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}))
	}

	r.Get("/", handlers.NewRootHandler(cfg.ProjectName))
	r.Get("/docs", http.RedirectHandler("/docs/index.html", http.StatusMovedPermanently).ServeHTTP)
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	r.Route(cfg.APIV1Str, func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(db))

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/jwt/login", handlers.NewLoginHandler(authService))
			r.With(authMiddleware).Post("/jwt/logout", handlers.NewLogoutHandler(authService))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))
			r.Post("/request-verify-token", handlers.NewRequestVerifyTokenHandler(authService))
			r.Post("/verify", handlers.NewVerifyHandler(authService))
		})

		r.Route("/ads", func(r chi.Router) {
			r.Post("/", handlers.NewCreateAdHandler(adRepo))
			r.Get("/", handlers.NewListAdsHandler(adRepo))
			r.Get("/owner/{owner_id}", handlers.NewListOwnerAdsHandler(adRepo))
			r.Get("/{ad_id}", handlers.NewGetAdHandler(adRepo))
			r.Put("/{ad_id}", handlers.NewUpdateAdHandler(adRepo))
			r.Delete("/{ad_id}", handlers.NewDeleteAdHandler(adRepo))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Get("/users/me", handlers.NewGetMeHandler())
			r.Patch("/users/me", handlers.NewUpdateMeHandler(userService))
			r.Get("/users/me/profile", handlers.NewGetMeHandler())

			r.Group(func(r chi.Router) {
				r.Use(middlewares.SuperuserMiddleware)
				r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
				r.Patch("/users/{id}", handlers.NewUpdateUserHandler(userService, userService))
				r.Delete("/users/{id}", handlers.NewDeleteUserHandler(userService))
			})

			r.Route("/profiles", func(r chi.Router) {
				r.Post("/", handlers.NewCreateProfileHandler(profileRepo))
				r.Get("/", handlers.NewListProfilesHandler(profileRepo))
				r.Get("/me", handlers.NewGetMyProfileHandler(profileRepo))
				r.Put("/me", handlers.NewUpdateMyProfileHandler(profileRepo))
				r.Delete("/me", handlers.NewDeleteMyProfileHandler(profileRepo))
				r.Get("/images", handlers.NewListImagesHandler(imageService))
				r.Post("/images", handlers.NewAddImageHandler(imageService))
				r.Delete("/images/{image_id}", handlers.NewDeleteImageHandler(imageService))
				r.Get("/{profile_id}", handlers.NewGetProfileHandler(profileRepo))
			})
		})
	})

	return r
}
