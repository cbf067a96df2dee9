package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/api/middleware"
	"portfolio/internal/auth"
)

// RegisterRoutes wires every resource under the /api prefix. Mutating
// and admin-only routes sit behind the bearer-token gate.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, authService *auth.Service) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(db)
	blogHandler := NewBlogHandler(db)
	projectHandler := NewProjectHandler(db)
	skillHandler := NewSkillHandler(db)
	educationHandler := NewEducationHandler(db)
	experienceHandler := NewExperienceHandler(db)
	certificationHandler := NewCertificationHandler(db)
	reviewHandler := NewReviewHandler(db)
	tagHandler := NewTagHandler(db)

	authRequired := middleware.AuthMiddleware(authService)

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authRequired, authHandler.Me)
		}

		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.GET("", profileHandler.Get)
			profileGroup.PUT("", authRequired, profileHandler.Update)
		}

		blogGroup := apiGroup.Group("/blogs")
		{
			blogGroup.GET("", blogHandler.ListPublished)
			blogGroup.GET("/admin/all", authRequired, blogHandler.ListAdmin)
			blogGroup.GET("/admin/:id", authRequired, blogHandler.GetByID)
			blogGroup.GET("/:slug", blogHandler.GetBySlug)
			blogGroup.POST("", authRequired, blogHandler.Create)
			blogGroup.PUT("/:id", authRequired, blogHandler.Update)
			blogGroup.DELETE("/:id", authRequired, blogHandler.Delete)
		}

		projectGroup := apiGroup.Group("/projects")
		{
			projectGroup.GET("", projectHandler.List)
			projectGroup.GET("/admin/all", authRequired, projectHandler.ListAdmin)
			projectGroup.GET("/:id", projectHandler.GetByID)
			projectGroup.POST("", authRequired, projectHandler.Create)
			projectGroup.PUT("/:id", authRequired, projectHandler.Update)
			projectGroup.DELETE("/:id", authRequired, projectHandler.Delete)
		}

		skillGroup := apiGroup.Group("/skills")
		{
			skillGroup.GET("", skillHandler.List)
			skillGroup.GET("/admin/all", authRequired, skillHandler.ListAdmin)
			skillGroup.GET("/:id", skillHandler.GetByID)
			skillGroup.POST("", authRequired, skillHandler.Create)
			skillGroup.PUT("/:id", authRequired, skillHandler.Update)
			skillGroup.DELETE("/:id", authRequired, skillHandler.Delete)
		}

		educationGroup := apiGroup.Group("/education")
		{
			educationGroup.GET("", educationHandler.List)
			educationGroup.GET("/admin/all", authRequired, educationHandler.ListAdmin)
			educationGroup.GET("/:id", educationHandler.GetByID)
			educationGroup.POST("", authRequired, educationHandler.Create)
			educationGroup.PUT("/:id", authRequired, educationHandler.Update)
			educationGroup.DELETE("/:id", authRequired, educationHandler.Delete)
		}

		experienceGroup := apiGroup.Group("/experience")
		{
			experienceGroup.GET("", experienceHandler.List)
			experienceGroup.GET("/admin/all", authRequired, experienceHandler.ListAdmin)
			experienceGroup.GET("/:id", experienceHandler.GetByID)
			experienceGroup.POST("", authRequired, experienceHandler.Create)
			experienceGroup.PUT("/:id", authRequired, experienceHandler.Update)
			experienceGroup.DELETE("/:id", authRequired, experienceHandler.Delete)
		}

		certificationGroup := apiGroup.Group("/certifications")
		{
			certificationGroup.GET("", certificationHandler.List)
			certificationGroup.GET("/admin/all", authRequired, certificationHandler.ListAdmin)
			certificationGroup.GET("/admin/:id", authRequired, certificationHandler.GetByID)
			certificationGroup.POST("", authRequired, certificationHandler.Create)
			certificationGroup.PUT("/:id", authRequired, certificationHandler.Update)
			certificationGroup.DELETE("/:id", authRequired, certificationHandler.Delete)
		}

		reviewGroup := apiGroup.Group("/reviews")
		{
			reviewGroup.GET("", reviewHandler.List)
			reviewGroup.GET("/admin/all", authRequired, reviewHandler.ListAdmin)
			reviewGroup.GET("/:id", reviewHandler.GetByID)
			reviewGroup.POST("", authRequired, reviewHandler.Create)
			reviewGroup.PUT("/:id", authRequired, reviewHandler.Update)
			reviewGroup.DELETE("/:id", authRequired, reviewHandler.Delete)
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", tagHandler.List)
			tagGroup.POST("", authRequired, tagHandler.Create)
			tagGroup.DELETE("/:name", authRequired, tagHandler.Delete)
		}
	}
}
