package main

import (
	"log"
	"os"

	"Maquinaria/CronJobs"
	"Maquinaria/FiberConfig"
	"Maquinaria/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno")
	}
	setupLogging()

	Models.Connect()

	checker := CronJobs.NewAlertChecker(Models.DB, true)
	if err := checker.Start(); err != nil {
		log.Printf("No se pudo iniciar la revisión de vencimientos: %v\n", err)
	}
	defer checker.Stop()

	FiberConfig.FiberConfig()
}

func setupLogging() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creando directorio de logs: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error abriendo archivo de log: %v\n", err)
		return
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
