package routes

import (
	"log"
	"os"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/controllers"
	"github.com/arysespajayadii/dsc-backend-repo/middlewares"
	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(os.Getenv("SESSION_SECRET")))
	r.Use(sessions.Sessions("dsc_admin", store))

	// Shared services
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service disabled: %v", err)
		push = nil
	}
	feed := services.NewAdminFeed()

	logSvc := services.NewLogService(config.DB)
	nutritionSvc := services.NewNutritionService(config.DB)
	screeningSvc := services.NewScreeningService(config.DB)
	quizSvc := services.NewQuizService(config.DB)
	questionSvc := services.NewQuestionService(config.DB, feed, push)
	reportSvc := services.NewReportService(config.DB)

	logCtl := controllers.NewLogController(logSvc)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc)
	screeningCtl := controllers.NewScreeningController(screeningSvc)
	quizCtl := controllers.NewQuizController(quizSvc)
	questionCtl := controllers.NewQuestionController(questionSvc)
	deviceCtl := controllers.NewDeviceController(push)
	adminCtl := controllers.NewAdminController(questionSvc, reportSvc)
	adminQuizCtl := controllers.NewAdminQuizController(quizSvc)
	realtimeCtl := controllers.NewRealtimeController(feed)

	// Public
	r.GET("/", controllers.HomePage)
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Authenticated app routes
	app := r.Group("/")
	app.Use(middlewares.AuthMiddleware())
	{
		app.POST("/log", logCtl.AddLog)
		app.GET("/logs", logCtl.GetLogs)

		app.GET("/nutrition-log/today", nutritionCtl.GetToday)
		app.POST("/nutrition-log/today", nutritionCtl.UpdateToday)

		app.POST("/screening", screeningCtl.Add)
		app.GET("/screening", screeningCtl.History)

		app.GET("/articles", controllers.ListArticles)
		app.GET("/articles/:id", controllers.GetArticleDetail)

		app.GET("/quiz/for-article/:articleId", quizCtl.ForArticle)
		app.POST("/quiz/submit/:quizId", quizCtl.Submit)

		app.POST("/questions", questionCtl.Ask)
		app.GET("/questions", questionCtl.MyQuestions)

		app.GET("/forum/topics", controllers.GetForumTopics)
		app.GET("/forum/posts/in-topic/:topicId", controllers.GetPostsInTopic)
		app.GET("/forum/post/:postId", controllers.GetPostDetails)
		app.POST("/forum/posts", controllers.CreateForumPost)
		app.POST("/forum/reply/to-post/:postId", controllers.CreateForumReply)

		app.GET("/profile", controllers.GetProfile)
		app.POST("/profile/picture", controllers.UploadProfilePicture)
		app.PUT("/profile/schedule", controllers.UpdateSchedule)
		app.PUT("/profile/birth-data", controllers.UpdateBirthData)
		app.POST("/profile/device", deviceCtl.Register)
		app.POST("/profile/notifications/toggle", deviceCtl.ToggleNotifications)
	}

	// Admin console
	r.POST("/admin/login", adminCtl.Login)
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminRequired())
	{
		admin.GET("/logout", adminCtl.Logout)
		admin.GET("/dashboard", adminCtl.Dashboard)
		admin.POST("/question/:id/answer", adminCtl.AnswerQuestion)

		admin.POST("/articles", controllers.AdminCreateArticle)
		admin.PUT("/articles/:id", controllers.AdminUpdateArticle)
		admin.DELETE("/articles/:id", controllers.AdminDeleteArticle)

		admin.GET("/quiz/manage/:articleId", adminQuizCtl.Manage)
		admin.POST("/quiz/:quizId/questions", adminQuizCtl.AddQuestion)
		admin.PUT("/quiz/question/:questionId/choices", adminQuizCtl.UpdateChoices)

		admin.GET("/homepage", adminCtl.GetHomepage)
		admin.POST("/homepage", adminCtl.UpdateHomepage)

		admin.GET("/reports", adminCtl.GetReports)
		admin.GET("/questions/ws", realtimeCtl.QuestionsWS)

		super := admin.Group("/")
		super.Use(middlewares.SuperadminRequired())
		{
			super.GET("/manage-users", adminCtl.ListAdmins)
			super.POST("/manage-users", adminCtl.CreateAdmin)
			super.POST("/reset-admin-password/:id", adminCtl.ResetAdminPassword)
			super.GET("/app-users", adminCtl.ListAppUsers)
			super.POST("/app-users/reset-password/:id", adminCtl.ResetUserPassword)
			super.POST("/reminders/run", adminCtl.RunReminderSweep)
		}
	}

	return r
}
