package routes

import (
	"ngo-erp-api/controllers"
	"ngo-erp-api/middleware"
	"ngo-erp-api/services"
	"ngo-erp-api/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every controller onto the /api/v1 group. Controllers and
// services are constructed here from the shared store bundle so nothing holds
// global state.
func SetupRoutes(router *gin.Engine, db *gorm.DB) {
	stores := store.NewStores(db)
	status := services.NewStatusService(stores)
	labels := services.NewLabelService(db)
	reminders := services.NewReminderService(stores)

	auth := controllers.NewAuthController(stores.Users)
	donors := controllers.NewDonorController(stores.Donors, stores.Projects, labels)
	projects := controllers.NewProjectController(stores.Projects, stores.Donors, labels)
	workPlans := controllers.NewWorkPlanController(stores.WorkPlans, stores.Projects, status)
	certificates := controllers.NewCertificateController(stores.Certificates, stores.Projects)
	documents := controllers.NewDocumentController(stores.Documents, stores.Projects)
	reports := controllers.NewReportController(stores.Reports, stores.Projects, status)
	beneficiaries := controllers.NewBeneficiaryController(stores.Beneficiaries, stores.Projects, status)
	safeguarding := controllers.NewSafeguardingController(stores.Safeguarding, stores.Projects, status)
	recruitments := controllers.NewRecruitmentController(stores.Recruitments, status)
	payroll := controllers.NewPayrollController(stores.PayrollRuns, status)
	dashboard := controllers.NewDashboardController(stores, reminders)

	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", auth.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "NGO ERP API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(stores.Users))
		{
			protected.GET("/profile", auth.GetProfile)

			d := protected.Group("/donors")
			{
				d.GET("", donors.List)
				d.GET("/:id", donors.Get)
				d.GET("/:id/projects", donors.Projects)
				d.POST("", donors.Create)
				d.PUT("/:id", donors.Update)
				d.DELETE("/:id", middleware.RequireRole("admin"), donors.Delete)
			}

			p := protected.Group("/projects")
			{
				p.GET("", projects.List)
				p.GET("/:id", projects.Get)
				p.POST("", projects.Create)
				p.PUT("/:id", projects.Update)
				p.DELETE("/:id", middleware.RequireRole("admin"), projects.Delete)

				// Project-scoped child collections
				p.GET("/:id/work-plans", workPlans.List)
				p.GET("/:id/certificates", certificates.List)
				p.GET("/:id/documents", documents.List)
				p.GET("/:id/reports", reports.List)
				p.GET("/:id/beneficiaries", beneficiaries.List)
				p.GET("/:id/safeguarding-activities", safeguarding.List)
			}

			w := protected.Group("/work-plans")
			{
				w.GET("", workPlans.List)
				w.GET("/:id", workPlans.Get)
				w.POST("", workPlans.Create)
				w.PUT("/:id", workPlans.Update)
				w.DELETE("/:id", workPlans.Delete)
				w.POST("/:id/file", workPlans.AttachFile)
				w.POST("/:id/submit", workPlans.Submit)
				w.POST("/:id/complete", workPlans.Complete)
			}

			cert := protected.Group("/certificates")
			{
				cert.GET("", certificates.List)
				cert.GET("/:id", certificates.Get)
				cert.POST("", certificates.Create)
				cert.PUT("/:id", certificates.Update)
				cert.DELETE("/:id", certificates.Delete)
				cert.POST("/:id/file", certificates.AttachFile)
			}

			doc := protected.Group("/documents")
			{
				doc.GET("", documents.List)
				doc.GET("/:id", documents.Get)
				doc.POST("", documents.Create)
				doc.PUT("/:id", documents.Update)
				doc.DELETE("/:id", documents.Delete)
				doc.POST("/:id/file", documents.AttachFile)
			}

			r := protected.Group("/reports")
			{
				r.GET("", reports.List)
				r.GET("/:id", reports.Get)
				r.POST("", reports.Create)
				r.PUT("/:id", reports.Update)
				r.DELETE("/:id", reports.Delete)
				r.POST("/:id/file", reports.AttachFile)
				r.POST("/:id/submit", reports.Submit)
			}

			b := protected.Group("/beneficiaries")
			{
				b.GET("", beneficiaries.List)
				b.GET("/:id", beneficiaries.Get)
				b.POST("", beneficiaries.Create)
				b.PUT("/:id", beneficiaries.Update)
				b.DELETE("/:id", beneficiaries.Delete)
				b.POST("/:id/nid", beneficiaries.AttachNID)
				b.POST("/:id/verify", beneficiaries.Verify)
				b.POST("/:id/reject", beneficiaries.Reject)
			}

			s := protected.Group("/safeguarding-activities")
			{
				s.GET("", safeguarding.List)
				s.GET("/:id", safeguarding.Get)
				s.POST("", safeguarding.Create)
				s.PUT("/:id", safeguarding.Update)
				s.DELETE("/:id", safeguarding.Delete)
				s.POST("/:id/complete", safeguarding.Complete)
			}

			rec := protected.Group("/recruitments")
			{
				rec.GET("", recruitments.List)
				rec.GET("/:id", recruitments.Get)
				rec.POST("", recruitments.Create)
				rec.PUT("/:id", recruitments.Update)
				rec.DELETE("/:id", recruitments.Delete)
				rec.POST("/:id/close", recruitments.Close)
			}

			// Payroll is HR/admin territory
			pay := protected.Group("/payroll-runs")
			{
				pay.GET("", payroll.List)
				pay.GET("/:id", payroll.Get)
				pay.POST("", payroll.Create)
				pay.PUT("/:id", payroll.Update)
				pay.DELETE("/:id", payroll.Delete)
				pay.POST("/:id/submit", payroll.Submit)
				pay.POST("/:id/approve", middleware.RequireRole("admin"), payroll.Approve)
				pay.POST("/:id/reject", middleware.RequireRole("admin"), payroll.Reject)
				pay.POST("/:id/pay", middleware.RequireRole("admin"), payroll.MarkPaid)
			}

			dash := protected.Group("/dashboard")
			{
				dash.GET("/stats", dashboard.Stats)
				dash.GET("/deadlines", dashboard.Deadlines)
			}
		}
	}
}
