package main

import (
	"fmt"
	"log"

	"github.com/smithbhavsar/ChatpataAI/configs"
	"github.com/smithbhavsar/ChatpataAI/middlewares"
	"github.com/smithbhavsar/ChatpataAI/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedCustomers(); err != nil {
		log.Fatalf("seed customers failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
