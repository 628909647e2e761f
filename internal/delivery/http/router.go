package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"adminhub/internal/delivery/http/controllers"
	"adminhub/internal/delivery/http/middleware"
	"adminhub/internal/domain"
)

// Controllers bundles the controllers wired into the router.
type Controllers struct {
	Auth        *controllers.AuthController
	Event       *controllers.EventController
	Course      *controllers.CourseController
	Exam        *controllers.ExamController
	Competition *controllers.CompetitionController
	User        *controllers.UserController
	Report      *controllers.ReportController
	Enrollment  *controllers.EnrollmentController
}

// NewRouter initializes the HTTP router with all application routes. Every
// route except login and swagger requires a valid admin token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.Create))
	mux.HandleFunc("GET /events", auth(c.Event.List))
	mux.HandleFunc("GET /events/{eventID}", auth(c.Event.Get))
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("PATCH /events/{eventID}/status", auth(c.Event.UpdateStatus))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.Delete))

	// Courses
	mux.HandleFunc("POST /courses", auth(c.Course.Create))
	mux.HandleFunc("GET /courses", auth(c.Course.List))
	mux.HandleFunc("GET /courses/{courseID}", auth(c.Course.Get))
	mux.HandleFunc("PUT /courses/{courseID}", auth(c.Course.Update))
	mux.HandleFunc("PATCH /courses/{courseID}/status", auth(c.Course.UpdateStatus))
	mux.HandleFunc("DELETE /courses/{courseID}", auth(c.Course.Delete))
	mux.HandleFunc("GET /courses/{courseID}/enrollments", auth(c.Enrollment.ListByCourse))

	// Exams
	mux.HandleFunc("POST /exams", auth(c.Exam.Create))
	mux.HandleFunc("GET /exams", auth(c.Exam.List))
	mux.HandleFunc("GET /exams/{examID}", auth(c.Exam.Get))
	mux.HandleFunc("PUT /exams/{examID}", auth(c.Exam.Update))
	mux.HandleFunc("PATCH /exams/{examID}/status", auth(c.Exam.UpdateStatus))
	mux.HandleFunc("DELETE /exams/{examID}", auth(c.Exam.Delete))

	// Competitions
	mux.HandleFunc("POST /competitions", auth(c.Competition.Create))
	mux.HandleFunc("GET /competitions", auth(c.Competition.List))
	mux.HandleFunc("GET /competitions/{competitionID}", auth(c.Competition.Get))
	mux.HandleFunc("PUT /competitions/{competitionID}", auth(c.Competition.Update))
	mux.HandleFunc("PATCH /competitions/{competitionID}/status", auth(c.Competition.UpdateStatus))
	mux.HandleFunc("DELETE /competitions/{competitionID}", auth(c.Competition.Delete))

	// Users
	mux.HandleFunc("POST /users", auth(c.User.Create))
	mux.HandleFunc("GET /users", auth(c.User.List))
	mux.HandleFunc("GET /users/{userID}", auth(c.User.Get))
	mux.HandleFunc("PATCH /users/{userID}/status", auth(c.User.UpdateStatus))
	mux.HandleFunc("DELETE /users/{userID}", auth(c.User.Delete))

	// Reports
	mux.HandleFunc("GET /reports", auth(c.Report.List))
	mux.HandleFunc("GET /reports/{reportID}", auth(c.Report.Get))
	mux.HandleFunc("PATCH /reports/{reportID}/status", auth(c.Report.UpdateStatus))

	// Demo data
	mux.HandleFunc("POST /admin/seed/enrollments", auth(c.Enrollment.Seed))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
