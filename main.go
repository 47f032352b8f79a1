package main

import (
	"log"

	"github.com/DouglasReisofc/dashboard-sub002/db"
	"github.com/DouglasReisofc/dashboard-sub002/routes"

	"github.com/gin-gonic/gin"
)

// @title API Dashboard Sub002
// @version 1.0
// @description API du dashboard de vente automatisée via bot de messagerie
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
