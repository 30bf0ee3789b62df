package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appMiddleware "github.com/devconnect/backend/internal/middleware"
)

// RouterDeps bundles everything the API surface needs.
type RouterDeps struct {
	Auth           *AuthHandler
	Profiles       *ProfileHandler
	Posts          *PostHandler
	JWTSecret      string
	AllowedOrigins []string
}

// NewRouter builds the full route tree. Kept separate from main so tests
// exercise the same router the server runs.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", appMiddleware.AuthHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	auth := appMiddleware.TokenAuth(deps.JWTSecret)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", deps.Auth.Register)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/", deps.Auth.Login)
			r.With(auth).Get("/", deps.Auth.CurrentUser)
		})

		r.Route("/profile", func(r chi.Router) {
			// Public
			r.Get("/", deps.Profiles.ListProfiles)
			r.Get("/user/{user_id}", deps.Profiles.GetProfileByUser)
			r.Get("/github/{username}", deps.Profiles.GithubRepos)

			// Protected
			r.Group(func(r chi.Router) {
				r.Use(auth)

				r.Get("/me", deps.Profiles.GetMyProfile)
				r.Post("/", deps.Profiles.UpsertProfile)
				r.Delete("/", deps.Profiles.DeleteAccount)

				r.Put("/experience", deps.Profiles.AddExperience)
				r.Delete("/experience/{exp_id}", deps.Profiles.RemoveExperience)
				r.Put("/education", deps.Profiles.AddEducation)
				r.Delete("/education/{edu_id}", deps.Profiles.RemoveEducation)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Use(auth)

			r.Post("/", deps.Posts.CreatePost)
			r.Get("/", deps.Posts.ListPosts)
			r.Get("/{post_id}", deps.Posts.GetPost)
			r.Delete("/{post_id}", deps.Posts.DeletePost)

			r.Put("/like/{post_id}", deps.Posts.LikePost)
			r.Put("/unlike/{post_id}", deps.Posts.UnlikePost)

			r.Post("/comment/{post_id}", deps.Posts.AddComment)
			r.Delete("/comment/{post_id}/{comment_id}", deps.Posts.DeleteComment)
		})
	})

	return r
}
