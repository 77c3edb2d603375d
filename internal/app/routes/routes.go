package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/learnsetu/lms-backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	customCourseController *controllers.CustomCourseController,
	examController *controllers.ExamController,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- User management routes ---
	users := api.Group("/users")
	{
		users.GET("/fetchAll", userController.GetAllUsers)
		users.PUT("/users/:id/approve", userController.ApproveUser)
		users.PUT("/users/:id/decline", userController.DeclineUser)
		users.DELETE("/users/:id", userController.DeleteUser)
	}

	// --- Catalog browsing routes ---
	courses := api.Group("/courses")
	{
		courses.GET("/", courseController.GetCourseTree)
		courses.GET("/full-modules", courseController.GetCourseModuleSessions)
	}

	// --- Custom course routes ---
	customCourses := api.Group("/custom-courses")
	{
		customCourses.POST("/create", customCourseController.Create)
		customCourses.PUT("/update/:id", customCourseController.Update)
		customCourses.GET("/", customCourseController.List)
		customCourses.GET("/list", customCourseController.List)
		customCourses.GET("/details", customCourseController.GetAll)
		customCourses.GET("/user/:userId", customCourseController.GetByUser)
		customCourses.GET("/user-course/:user_id/:course_id", customCourseController.GetUserCourseDetail)
	}

	// --- Exam routes ---
	exams := api.Group("/exams")
	{
		exams.POST("/create_exam", examController.Create)
		exams.GET("/", examController.GetAll)
		exams.GET("/:id", examController.GetByID)
		exams.PUT("/:id", examController.Update)
		exams.DELETE("/:id", examController.Delete)
	}
}
