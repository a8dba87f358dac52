package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/educonsult-admin/internal/app/controllers"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/middleware"
)

// Controllers bundles everything SetupRouter wires into the route tree.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	BlogPost    *controllers.BlogPostController
	Testimonial *controllers.TestimonialController
	TeamMember  *controllers.TeamMemberController
	Scholarship *controllers.ScholarshipController
	Insight     *controllers.InsightController
	Application *controllers.ApplicationController
	Contact     *controllers.ContactInquiryController
	Newsletter  *controllers.NewsletterController
	Analytics   *controllers.AnalyticsController
	Upload      *controllers.UploadController
}

// SetupRouter configures all application routes. The public surface is the
// health check, admin login and the three website intake endpoints; everything
// else requires an admin token.
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware, uploadDir string) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "healthy",
			Service: "Mtendere Education Consult Admin Backend",
		})
	})

	router.Static("/uploads", uploadDir)

	api := router.Group("/api")

	// --- Public routes ---
	api.POST("/auth/login", c.Auth.Login)
	api.POST("/applications", c.Application.SubmitApplication)
	api.POST("/contact-inquiries", c.Contact.SubmitInquiry)
	api.POST("/newsletter/subscribe", c.Newsletter.Subscribe)

	// --- Admin routes ---
	admin := api.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
	{
		users := admin.Group("/users")
		{
			users.POST("", c.User.CreateUser)
			users.GET("", c.User.ListUsers)
			users.GET("/:id", c.User.GetUser)
			users.PUT("/:id", c.User.UpdateUser)
			users.DELETE("/:id", c.User.DeleteUser)
		}

		blogPosts := admin.Group("/blog-posts")
		{
			blogPosts.POST("", c.BlogPost.CreatePost)
			blogPosts.GET("", c.BlogPost.ListPosts)
			blogPosts.GET("/:id", c.BlogPost.GetPost)
			blogPosts.PUT("/:id", c.BlogPost.UpdatePost)
			blogPosts.DELETE("/:id", c.BlogPost.DeletePost)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.POST("", c.Testimonial.CreateTestimonial)
			testimonials.GET("", c.Testimonial.ListTestimonials)
			testimonials.GET("/:id", c.Testimonial.GetTestimonial)
			testimonials.PUT("/:id", c.Testimonial.UpdateTestimonial)
			testimonials.DELETE("/:id", c.Testimonial.DeleteTestimonial)
		}

		teamMembers := admin.Group("/team-members")
		{
			teamMembers.POST("", c.TeamMember.CreateMember)
			teamMembers.GET("", c.TeamMember.ListMembers)
			teamMembers.GET("/:id", c.TeamMember.GetMember)
			teamMembers.PUT("/:id", c.TeamMember.UpdateMember)
			teamMembers.DELETE("/:id", c.TeamMember.DeleteMember)
		}

		scholarships := admin.Group("/scholarships")
		{
			scholarships.POST("", c.Scholarship.CreateScholarship)
			scholarships.GET("", c.Scholarship.ListScholarships)
			scholarships.GET("/:id", c.Scholarship.GetScholarship)
			scholarships.PUT("/:id", c.Scholarship.UpdateScholarship)
			scholarships.DELETE("/:id", c.Scholarship.DeleteScholarship)
		}

		insights := admin.Group("/insights")
		{
			insights.POST("", c.Insight.CreateInsight)
			insights.GET("", c.Insight.ListInsights)
			insights.GET("/:id", c.Insight.GetInsight)
			insights.PUT("/:id", c.Insight.UpdateInsight)
			insights.DELETE("/:id", c.Insight.DeleteInsight)
		}

		applications := admin.Group("/applications")
		{
			applications.GET("", c.Application.ListApplications)
			applications.GET("/:id", c.Application.GetApplication)
			applications.PUT("/:id", c.Application.UpdateStatus)
			applications.DELETE("/:id", c.Application.DeleteApplication)
		}

		contactInquiries := admin.Group("/contact-inquiries")
		{
			contactInquiries.GET("", c.Contact.ListInquiries)
			contactInquiries.GET("/:id", c.Contact.GetInquiry)
			contactInquiries.PUT("/:id", c.Contact.UpdateInquiry)
			contactInquiries.POST("/:id/respond", c.Contact.RespondToInquiry)
			contactInquiries.DELETE("/:id", c.Contact.DeleteInquiry)
		}

		subscriptions := admin.Group("/newsletter-subscriptions")
		{
			subscriptions.GET("", c.Newsletter.ListSubscriptions)
			subscriptions.GET("/:id", c.Newsletter.GetSubscription)
			subscriptions.PUT("/:id", c.Newsletter.UpdateSubscription)
			subscriptions.DELETE("/:id", c.Newsletter.DeleteSubscription)
		}

		admin.GET("/analytics", c.Analytics.GetDashboard)
		admin.GET("/visitor-logs", c.Analytics.ListVisitorLogs)
		admin.POST("/uploads", c.Upload.UploadFile)
		admin.DELETE("/uploads/:filename", c.Upload.DeleteFile)
	}
}
