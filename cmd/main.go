package main

import (
	"os"
	"time"

	"github.com/ruby4mag/testtracker-go-backend-ui/internal/auth"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/db"
	"github.com/ruby4mag/testtracker-go-backend-ui/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)



func main() {
	neo4jURI := os.Getenv("NEO4J_URI")
	if neo4jURI == "" {
		neo4jURI = "bolt://localhost:7687"
	}
	neo4jUser := os.Getenv("NEO4J_USER")
	if neo4jUser == "" {
		neo4jUser = "neo4j"
	}
	db.InitNeo4j(neo4jURI, neo4jUser, os.Getenv("NEO4J_PASSWORD"))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		//AllowOrigins: []string{"http://192.168.1.201:3000"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin","Authorization","X-Requested-With", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge: 12 * time.Hour,
	}))



	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/refresh", handlers.RefreshToken)
	r.POST("/reports/ctrf", handlers.ReportCTRF)
	r.GET("/applications/:name/topology", handlers.HandleApplicationTopology)

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/permissions", handlers.GetPermissions)

		protected.GET("/teams", handlers.IndexTeam)
		protected.POST("/teams", handlers.NewTeam)
		protected.GET("/teams/:id", handlers.EditTeam)
		protected.PUT("/teams/:id", handlers.UpdateTeam)

		protected.GET("/applications", handlers.IndexApplication)
		protected.POST("/applications", handlers.NewApplication)
		protected.GET("/applications/:id", handlers.EditApplication)
		protected.PUT("/applications/:id", handlers.UpdateApplication)

		protected.GET ("/testsuites", handlers.IndexTestSuite)
		protected.POST("/testsuites", handlers.NewTestSuite)
		protected.GET("/testsuites/:id", handlers.EditTestSuite)
		protected.PUT("/testsuites/:id", handlers.UpdateTestSuite)

		protected.GET("/executions", handlers.Executions)
		protected.POST("/executions", handlers.NewTestExecution)
		protected.GET("/executions/:id", handlers.ViewTestExecution)
		protected.PUT("/executions/:id", handlers.UpdateTestExecution)

		protected.GET("/testcases", handlers.IndexTestCase)
		protected.POST("/testcases", handlers.NewTestCase)
		protected.GET("/testcases/:id", handlers.EditTestCase)
		protected.PUT("/testcases/:id", handlers.UpdateTestCase)

		protected.GET("/testresults", handlers.IndexTestResult)
		protected.POST("/testresults", handlers.NewTestResult)
		protected.GET("/testresults/:id", handlers.EditTestResult)
		protected.PUT("/testresults/:id", handlers.UpdateTestResult)

		protected.GET("/sunburst", handlers.Sunburst)
		protected.GET("/summary", handlers.Summary)

		protected.GET("/resource", handlers.ProtectedResource)
	}

	r.Run(":8080")
}
